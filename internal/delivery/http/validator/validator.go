// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"net/http"

	"carttrace/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps a validator instance for echo.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator with the project's custom rules registered.
func New() echo.Validator {
	validate := validator.New()

	// kephone matches local phone numbers, a leading zero plus nine digits.
	_ = validate.RegisterValidation("kephone", func(fl validator.FieldLevel) bool {
		return entity.ValidPhoneNumber(fl.Field().String())
	})

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator. Violations surface as a 400 with the
// validator's field-level detail.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
