// Package validator plugs go-playground/validator into Echo's request
// validation hook.
package validator

import (
	domainerrors "luxe/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a shared validator instance for echo.Echo#Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks the struct tags of a bound request body. Failures surface
// as the localized validation error so clients get a consistent envelope.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
