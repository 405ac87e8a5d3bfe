// Package validation wraps go-playground/validator with the admission
// rules for administrative payloads. Struct collects every field
// violation of a payload instead of stopping at the first.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/partnerhub/admin-api/internal/core/domain"
)

var (
	// login names may only use word characters, dot and dash.
	loginNameRe = regexp.MustCompile(`^[.\w-]+$`)
	// names are unicode letters (accents included) and spaces only.
	lettersSpacesRe = regexp.MustCompile(`^[\p{L} ]+$`)

	passwordDigitRe    = regexp.MustCompile(`\d`)
	passwordNonDigitRe = regexp.MustCompile(`\D`)
	passwordSymbolRe   = regexp.MustCompile(`\W`)
	passwordUpperRe    = regexp.MustCompile(`[A-Z]`)
	passwordLowerRe    = regexp.MustCompile(`[a-z]`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "login_name", validLoginName)
	mustRegister(v, "person_name", validPersonName)
	mustRegister(v, "entity_name", validEntityName)
	mustRegister(v, "strong_password", validPassword)
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

func validLoginName(fl validator.FieldLevel) bool {
	return loginNameRe.MatchString(fl.Field().String())
}

// validPersonName requires a full name: at least two whitespace-separated
// words, letters and spaces only.
func validPersonName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if len(strings.Fields(strings.TrimSpace(name))) < 2 {
		return false
	}
	return lettersSpacesRe.MatchString(name)
}

func validEntityName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	return name != "" && lettersSpacesRe.MatchString(name)
}

// validPassword enforces the full strength rule set: minimum length 8
// with at least one digit, one non-digit, one symbol, one uppercase and
// one lowercase letter.
func validPassword(fl validator.FieldLevel) bool {
	pw := fl.Field().String()
	if len(pw) < 8 {
		return false
	}
	return passwordDigitRe.MatchString(pw) &&
		passwordNonDigitRe.MatchString(pw) &&
		passwordSymbolRe.MatchString(pw) &&
		passwordUpperRe.MatchString(pw) &&
		passwordLowerRe.MatchString(pw)
}

// Struct validates a payload and returns a *domain.ValidationError
// aggregating every failing field, or nil when the payload is clean.
func Struct(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldMessage(fe))
	}
	return &domain.ValidationError{Messages: msgs}
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "login_name":
		return field + " may only contain letters, digits, underscore, dot and dash"
	case "person_name":
		return field + " must be a full name with letters only"
	case "entity_name":
		return field + " must contain letters and spaces only"
	case "strong_password":
		return field + " must have at least 8 characters including upper and lower case letters, a digit and a symbol"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
