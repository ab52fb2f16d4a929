// Package validator adapts the shared input validation to echo.
package validator

import (
	"marketdash/internal/validation"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New returns the validator installed on the echo server.
func New() *CustomValidator {
	return &CustomValidator{validate: validation.New()}
}

// Validate checks i against its validate tags.
func (cv *CustomValidator) Validate(i any) error {
	return validation.Check(cv.validate, i)
}
