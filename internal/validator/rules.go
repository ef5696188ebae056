package validator

import (
	"log"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the custom validation functions into the given
// validator instance.
func registerCustomRules(v *validator.Validate) {

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error; the
			// application must not run with silently missing checks.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'phone10': exactly ten digits, the format the backend stores
	mustRegister("phone10", validatePhone10)

	// 'dateymd': calendar date in YYYY-MM-DD
	mustRegister("dateymd", validateDateYMD)

	// 'idref': nested id-reference struct carries a positive id
	mustRegister("idref", validateIDRef)
}

func validatePhone10(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empty values
	}
	if len(value) != 10 {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validateDateYMD(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// validateIDRef accepts the nested {xId: N} reference structs. The rule is
// placed on pointer fields with required, so here the struct exists; it
// fails when the single id field is not a positive integer.
func validateIDRef(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return true // 'required' handles nil
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.Struct || field.NumField() != 1 {
		return false
	}
	id := field.Field(0)
	switch id.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return id.Int() > 0
	default:
		return false
	}
}
