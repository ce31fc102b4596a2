// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"strings"

	domainerrors "aspri/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type requestValidator struct {
	validate *playground.Validate
}

// New builds the request validator used by the Echo server.
func New() *requestValidator {
	return &requestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and maps failures onto the shared validation error.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var validationErrs playground.ValidationErrors
		if errors.As(err, &validationErrs) {
			return domainerrors.ErrValidationFailed.WithDetails(describe(validationErrs))
		}

		return errors.Wrap(err, "request validation failed")
	}

	return nil
}

// describe renders field failures as "Field: rule" pairs readable by API clients.
func describe(validationErrs playground.ValidationErrors) string {
	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		part := fieldErr.Field() + ": " + fieldErr.Tag()
		if fieldErr.Param() != "" {
			part += "=" + fieldErr.Param()
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, "; ")
}
