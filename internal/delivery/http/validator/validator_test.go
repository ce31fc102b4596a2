package validator

import (
	"testing"

	domainerrors "aspri/internal/domain/errors"
	"aspri/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsValidInput(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&usecase.RegisterInput{
		Email:    "budi@example.com",
		Password: "rahasia-sekali",
	})
	assert.NoError(t, err)
}

func TestValidate_RejectsMissingFields(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&usecase.RegisterInput{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "Email")
	assert.Contains(t, appErr.Details(), "Password")
}

func TestValidate_RejectsShortPassword(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&usecase.RegisterInput{
		Email:    "budi@example.com",
		Password: "pendek",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "min=8")
}

func TestValidate_ProfileUpdateEnums(t *testing.T) {
	t.Parallel()

	v := New()
	theme := "dark"
	badTheme := "sepia"

	assert.NoError(t, v.Validate(&usecase.UpdateProfileInput{ThemePreference: &theme}))
	assert.Error(t, v.Validate(&usecase.UpdateProfileInput{ThemePreference: &badTheme}))
	assert.NoError(t, v.Validate(&usecase.UpdateProfileInput{}))
}
