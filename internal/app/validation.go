package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"quiz-backend/internal/auth"
	"quiz-backend/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	// bcrypt limits by bytes, not characters.
	_ = v.RegisterValidation("password_bytes", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= auth.MaxPasswordBytes
	})
	return v
}

// validateStruct runs tag validation and converts failures into a *domain.ValidationError.
func validateStruct(v any, message string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := domain.NewValidationError(message)
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), describe(fe))
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "password_bytes":
		return fmt.Sprintf("must be at most %d bytes", auth.MaxPasswordBytes)
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
