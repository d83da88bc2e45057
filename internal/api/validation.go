package api

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/FACorreiaa/go-trip-planner/internal/types"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once

	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)
)

// Validator returns the shared validator with the custom rules registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("travelrange", func(fl validator.FieldLevel) bool {
			_, err := types.ParseRange(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("travelers", func(fl validator.FieldLevel) bool {
			r, err := types.ParseRange(fl.Field().String())
			return err == nil && r.Max <= types.MaxTravelers
		})
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
			return StrongPassword(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// StrongPassword requires six characters with an upper case letter, a lower
// case letter and a digit.
func StrongPassword(p string) bool {
	if len(p) < 6 {
		return false
	}
	var upper, lower, digit bool
	for _, c := range p {
		switch {
		case unicode.IsUpper(c):
			upper = true
		case unicode.IsLower(c):
			lower = true
		case unicode.IsDigit(c):
			digit = true
		}
	}
	return upper && lower && digit
}

// ValidateStruct runs tag validation and flattens failures into one message.
func ValidateStruct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "travelrange":
		return fmt.Sprintf("%s must be a number or a range such as 7-10 or 9+", field)
	case "travelers":
		return fmt.Sprintf("%s must be a number or a range of at most %d people", field, types.MaxTravelers)
	case "username":
		return fmt.Sprintf("%s must be 3-50 characters of letters, numbers and underscores", field)
	case "strongpassword":
		return fmt.Sprintf("%s must be at least 6 characters with upper case, lower case and a number", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min", "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
