package usecase

import (
	"context"

	"aspri/internal/domain/entity"
)

// UpdateProfileInput is a merge-update: nil fields are left untouched,
// non-nil fields overwrite the stored value.
type UpdateProfileInput struct {
	FullName          *string `json:"full_name"`
	AspriName         *string `json:"aspri_name"`
	AspriPersona      *string `json:"aspri_persona"`
	CallPreference    *string `json:"call_preference"`
	PreferredLanguage *string `json:"preferred_language" validate:"omitempty,oneof=id en"`
	ThemePreference   *string `json:"theme_preference" validate:"omitempty,oneof=light dark"`
}

// CreateProfileInput carries the email used for first-touch provisioning.
type CreateProfileInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ProfileUsecase manages the per-user profile. The authenticated caller id is
// always an explicit parameter supplied by the transport layer, never read
// from ambient state.
type ProfileUsecase interface {
	// GetProfile is a direct lookup with no side effects.
	GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error)

	// CreateProfile provisions a profile with assistant defaults. It is
	// idempotent: an existing profile is returned unchanged.
	CreateProfile(ctx context.Context, userID, email string) (*entity.UserProfile, error)

	// UpdateProfile merges the non-nil fields of input into the stored
	// profile and refreshes its update timestamp.
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.UserProfile, error)
}
