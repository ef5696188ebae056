// Package app wires the client together and dispatches CLI commands. All
// user-facing output lives here; the services below it are pure data access.
package app

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"bookmystars_client/internal/api"
	"bookmystars_client/internal/config"
	"bookmystars_client/internal/logger"
	"bookmystars_client/internal/profileflow"
	"bookmystars_client/internal/services"
	"bookmystars_client/internal/session"
)

const usage = `BookMyStars professionals client

Usage:
  bookmystars <command> [flags]

Commands:
  register             create a professionals account
  login                authenticate and store the session
  logout               clear the stored session
  status               show session and profile completion
  save-basic-info      save the basic-info section from a JSON file
  save-style-profile   save the style/physical section from a JSON file
  save-education       save the education section from a JSON file
  save-preferences     save the preferences section from a JSON file
  save-showcase        save the showcase section from a JSON file
  upload-image         upload a profile image
  refdata              list/search reference data (genders, body types, ...)
`

// App holds the wired client components for one CLI invocation.
type App struct {
	cfg      *config.Config
	store    *session.Store
	services *services.ServiceContainer
	flow     *profileflow.Flow
}

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Client.Env)

	store := session.NewStore(cfg)
	client := api.NewClient(cfg, store)
	container := services.NewServiceContainer(client, store)

	a := &App{
		cfg:      cfg,
		store:    store,
		services: container,
		flow:     profileflow.New(store, container),
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	var err error

	switch os.Args[1] {
	case "register":
		err = a.register(ctx, os.Args[2:])
	case "login":
		err = a.login(ctx, os.Args[2:])
	case "logout":
		a.services.Auth.Logout()
		fmt.Println("Logged out")
	case "status":
		err = a.status(ctx)
	case "save-basic-info":
		err = a.saveSection(ctx, os.Args[2:], a.flow.SaveBasicInfo)
	case "save-style-profile":
		err = a.saveSection(ctx, os.Args[2:], a.flow.SaveStyleProfile)
	case "save-education":
		err = a.saveSection(ctx, os.Args[2:], a.flow.SaveEducation)
	case "save-preferences":
		err = a.saveSection(ctx, os.Args[2:], a.flow.SavePreferences)
	case "save-showcase":
		err = a.saveSection(ctx, os.Args[2:], a.flow.SaveShowcase)
	case "upload-image":
		err = a.uploadImage(ctx, os.Args[2:])
	case "refdata":
		err = a.refdata(ctx, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", api.TruncateMessage(err.Error(), 250))
		os.Exit(1)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	phone := fs.String("phone", "", "10-digit phone number")
	password := fs.String("password", "", "password")
	role := fs.String("role", "", "professional role (optional)")
	fs.Parse(args)

	user, err := a.services.Auth.Register(ctx, &services.RegisterRequest{
		FullName: *name,
		Email:    *email,
		PhoneNo:  *phone,
		Password: *password,
		Role:     *role,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Registered professionals id %d. Check your email for the OTP, then log in.\n", user.ProfessionalsID)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	sess, err := a.services.Auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (professionals id %d)\n", sess.User.Email, sess.User.ProfessionalsID)
	return nil
}

func (a *App) status(ctx context.Context) error {
	if !a.store.IsLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}
	sess := a.store.GetUserSession()
	fmt.Printf("Logged in as %s (professionals id %d)\n", sess.User.Email, sess.User.ProfessionalsID)

	init := a.flow.Initialize(ctx)
	if init.Deferred {
		fmt.Println("Profile not created yet; it will be created on first save")
		return nil
	}
	if init.ProfileID > 0 {
		fmt.Printf("Profile id %d, %d%% complete\n", init.ProfileID, a.flow.CompletionPercent())
		for section, done := range a.flow.CompletionStatus() {
			mark := " "
			if done {
				mark = "x"
			}
			fmt.Printf("  [%s] %s\n", mark, section)
		}
	} else {
		fmt.Println("No profile on record yet")
	}
	return nil
}

type sectionSaver func(ctx context.Context, raw map[string]interface{}) *profileflow.SectionResult

func (a *App) saveSection(ctx context.Context, args []string, save sectionSaver) error {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	file := fs.String("file", "", "JSON file with the section payload")
	fs.Parse(args)

	if *file == "" {
		return fmt.Errorf("missing -file flag")
	}
	raw, err := readPayload(*file)
	if err != nil {
		return err
	}

	result := save(ctx, raw)
	if !result.Success {
		if len(result.Errors) > 0 {
			fmt.Println("Validation failed:")
			for _, msg := range result.Errors {
				fmt.Println("  -", msg)
			}
			os.Exit(1)
		}
		return fmt.Errorf("%s", result.Error)
	}

	fmt.Printf("%s (id %d)\n", result.Message, result.ID)
	if result.Warning != "" {
		fmt.Println("Warning:", result.Warning)
	}
	return nil
}

func (a *App) uploadImage(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload-image", flag.ExitOnError)
	id := fs.Int("id", 0, "basic-info id")
	file := fs.String("file", "", "image file")
	fs.Parse(args)

	f, err := os.Open(*file)
	if err != nil {
		return err
	}
	defer f.Close()

	url, err := a.services.BasicInfo.UploadProfileImage(ctx, *id, *file, f)
	if err != nil {
		return err
	}
	fmt.Println("Uploaded:", url)
	return nil
}

func (a *App) refdata(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: refdata <type> list|active|search [-name x]")
	}
	res, ok := services.ResourceByPath(args[0])
	if !ok {
		return fmt.Errorf("unknown reference type %q", args[0])
	}

	fs := flag.NewFlagSet("refdata", flag.ExitOnError)
	name := fs.String("name", "", "search term")
	fs.Parse(args[2:])

	var err error
	switch args[1] {
	case "list":
		all, listErr := a.services.Reference.GetAll(ctx, res)
		err = listErr
		for _, item := range all {
			fmt.Printf("%4d  %s\n", item.ID, item.Name)
		}
	case "active":
		active, listErr := a.services.Reference.GetActive(ctx, res)
		err = listErr
		for _, item := range active {
			fmt.Printf("%4d  %s\n", item.ID, item.Name)
		}
	case "search":
		found, listErr := a.services.Reference.Search(ctx, res, *name)
		err = listErr
		for _, item := range found {
			fmt.Printf("%4d  %s\n", item.ID, item.Name)
		}
	default:
		return fmt.Errorf("unknown refdata action %q", args[1])
	}
	return err
}

func readPayload(path string) (map[string]interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return payload, nil
}
