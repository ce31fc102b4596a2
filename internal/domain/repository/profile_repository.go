// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"aspri/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when no profile
// exists for a given key. Callers branch on it explicitly; absence is an
// expected outcome, not an exceptional one.
var ErrProfileNotFound = errors.New("user profile not found")

// ProfileRepository defines the standard operations for user profile
// persistence: a keyed store addressable by unique id and by email.
// The application layer depends on this interface, not the concrete implementation.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its user id.
	FindByID(ctx context.Context, userID string) (*entity.UserProfile, error)

	// FindByEmail retrieves a single profile by its unique email address.
	FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error)

	// Create persists a new profile entity to the storage.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// Update modifies an existing profile entity in the storage.
	Update(ctx context.Context, profile *entity.UserProfile) error
}
