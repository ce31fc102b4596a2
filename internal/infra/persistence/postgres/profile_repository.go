// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"aspri/internal/domain/entity"
	domainerrors "aspri/internal/domain/errors"
	"aspri/internal/domain/repository"
	"aspri/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindByID retrieves a single profile by its user id.
func (repo *profileRepository) FindByID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

// FindByEmail retrieves a single profile by its unique email address.
func (repo *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	return toProfileDomain(&profileM), nil
}

// Create persists a new profile entity to the database.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	// Reflect database-generated timestamps back onto the entity.
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update modifies an existing profile entity in the database.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProfileUpdateFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProfileDomain converts a GORM UserProfileModel to a domain UserProfile entity.
func toProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		UserID:            data.UserID,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		FullName:          data.FullName,
		AspriName:         data.AspriName,
		AspriPersona:      data.AspriPersona,
		CallPreference:    data.CallPreference,
		PreferredLanguage: entity.Language(data.PreferredLanguage),
		ThemePreference:   entity.Theme(data.ThemePreference),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain UserProfile entity to a GORM UserProfileModel.
func fromProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	if data == nil {
		return nil
	}

	return &model.UserProfileModel{
		UserID:            data.UserID,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		FullName:          data.FullName,
		AspriName:         data.AspriName,
		AspriPersona:      data.AspriPersona,
		CallPreference:    data.CallPreference,
		PreferredLanguage: string(data.PreferredLanguage),
		ThemePreference:   string(data.ThemePreference),
		CreatedAt:         data.CreatedAt,
	}
}
