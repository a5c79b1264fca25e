package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns the services logger with the application log level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report wire names (menu_name, quantity) rather than Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// menuInput carries the menu fields checked by the validator; price rules are checked separately
type menuInput struct {
	Name string `json:"menu_name" validate:"required,max=255"`
}

// saleInput carries the sale fields checked by the validator
type saleInput struct {
	Quantity int `json:"quantity" validate:"min=1"`
}

// validateStruct runs the struct validator and converts the first failure into a ValidationError
func validateStruct(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return NewValidationError(field, fmt.Sprintf("The %s field is required.", field))
	case "max":
		return NewValidationError(field, fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param()))
	case "min":
		return NewValidationError(field, fmt.Sprintf("The %s field must be at least %s.", field, fe.Param()))
	default:
		return NewValidationError(field, fmt.Sprintf("The %s field is invalid.", field))
	}
}
