package validator

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"medifind/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	// Placeholder rules matching the sign-up form; not a security boundary.
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	agePattern   = regexp.MustCompile(`^\d+$`)
)

const (
	MinAge = 1
	MaxAge = 120
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("age", func(fl validator.FieldLevel) bool {
		_, ok := ParseAge(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Check validates i and converts field failures into an *apperror.ValidationError.
func (cv *CustomValidator) Check(i interface{}) error {
	err := cv.Validate(i)
	if err == nil {
		return nil
	}
	if fields := cv.FormatValidationErrors(err); len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return err
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required", "notblank":
				errors[field] = field + " is required"
			case "email", "looseemail":
				errors[field] = field + " must be a valid email address"
			case "phone":
				errors[field] = field + " must be a valid phone number"
			case "age":
				errors[field] = field + " must be a whole number between 1 and 120"
			case "datetime":
				errors[field] = field + " must match the format " + e.Param()
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// IsPhone reports whether s passes the placeholder phone rule.
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// ParseAge parses a digits-only age string within [MinAge, MaxAge].
func ParseAge(s string) (int, bool) {
	if !agePattern.MatchString(s) {
		return 0, false
	}
	age, err := strconv.Atoi(s)
	if err != nil || age < MinAge || age > MaxAge {
		return 0, false
	}
	return age, true
}
