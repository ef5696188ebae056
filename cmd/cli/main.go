package main

import "bookmystars_client/internal/app"

func main() {
	app.Run()
}
