package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	lettersRegex     = regexp.MustCompile(`^[a-zA-Z]*$`)
	// the browser's \s, which also covers \v and Unicode spaces
	letterSpaceRegex = regexp.MustCompile(`^[a-zA-Z\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]*$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields by their wire name so errors line up with form inputs
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("letters", func(fl validator.FieldLevel) bool {
		return lettersRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("letterspace", func(fl validator.FieldLevel) bool {
		return letterSpaceRegex.MatchString(fl.Field().String())
	})

	return v
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// ValidateField checks a single value against a validator tag string and
// returns the message for the first failing rule, or "" when the value passes.
func ValidateField(value, tag string) string {
	if tag == "" {
		return ""
	}

	err := validate.Var(value, tag)
	if err == nil {
		return ""
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		return getErrorMessage(validationErrors[0])
	}
	return err.Error()
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "letters":
		return "Only alphabets are allowed"
	case "letterspace":
		return "Only alphabets and spaces are allowed"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// formats validation errors map into single string
func FormatValidationErrors(errors map[string]string) string {
	var msgs []string
	for field, msg := range errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}
