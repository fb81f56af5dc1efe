// Package validation registers the custom binding rules and turns
// validator errors into per-field messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	setupOnce sync.Once
	setupErr  error

	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
)

// Setup registers the custom rules on gin's validator. It is safe to call
// more than once.
func Setup() error {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = errors.New("binding validator is not go-playground/validator")
			return
		}
		Register(v)
	})
	return setupErr
}

// Register adds the tag-name function and the custom rules to v.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(fieldName)
	// Registering a well-formed tag only fails on an empty name.
	_ = v.RegisterValidation("username", validUsername)
	_ = v.RegisterValidation("notnumeric", notNumeric)
}

// fieldName reports fields by their form name so messages line up with the
// submitted keys.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func validUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

func notNumeric(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return true
		}
	}
	return false
}

// FieldErrors maps each failing field to human-readable messages. It returns
// nil when err is not a validation error.
func FieldErrors(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], Message(fe))
	}
	return fields
}

// Message renders a single field error.
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	case "eqfield":
		return "The two password fields didn't match."
	case "datetime":
		return "Enter a valid date."
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	case "notnumeric":
		return "This password is entirely numeric."
	default:
		return "Enter a valid value."
	}
}
