// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "dipto/internal/domain/errors"
)

// Validator validates request DTOs via their struct tags.
type Validator struct {
	validate *playground.Validate
}

// New creates the echo validator.
func New() *Validator {
	return &Validator{validate: playground.New()}
}

// Validate implements echo.Validator. Failures surface as the shared
// validation error so the error middleware shapes them uniformly.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
