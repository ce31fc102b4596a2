package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "aspri/internal/delivery/context"
	"aspri/internal/domain/entity"
	domainerrors "aspri/internal/domain/errors"
	"aspri/internal/domain/repository"
	"aspri/internal/domain/service"
	"aspri/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile is a direct read with no side effects.
func (srv *profileService) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return profile, nil
}

// CreateProfile provisions a profile with the assistant defaults. It is
// idempotent: when a profile already exists it is returned unchanged.
// Profiles created here carry a random unusable password digest, so the
// password login path stays closed until the account sets a real password.
func (srv *profileService) CreateProfile(ctx context.Context, userID, email string) (*entity.UserProfile, error) {
	existing, err := srv.profileRepo.FindByID(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing profile")
	}

	placeholderHash, err := srv.hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash placeholder password")
	}

	var created *entity.UserProfile

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := entity.NewUserProfile(userID, email, placeholderHash)
		if err != nil {
			return errors.Wrap(err, "failed to build profile")
		}
		profile.ApplyAssistantDefaults()

		if err := profileRepo.Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		created = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create profile",
			slog.String("userID", userID), slog.Any("error", err))

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, errors.Wrap(domainerrors.ErrProfileCreationFailed, err.Error())
	}
	srv.log(ctx).Info("Profile created", slog.String("userID", userID))

	return created, nil
}

// UpdateProfile merges the non-nil fields of input into the stored profile.
// The read and write happen inside one transaction; the update timestamp is
// refreshed even when every field of input is nil.
func (srv *profileService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	var updated *entity.UserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := profileRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "profile update failed")
			}

			return errors.Wrap(err, "failed to find profile by id")
		}

		mergeProfileUpdate(profile, input)
		profile.UpdatedAt = time.Now()

		if err := profileRepo.Update(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to persist profile update")
		}

		updated = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed",
			slog.String("userID", userID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Profile updated", slog.String("userID", userID))

	return updated, nil
}

// mergeProfileUpdate copies every non-nil field of input onto profile.
func mergeProfileUpdate(profile *entity.UserProfile, input *usecase.UpdateProfileInput) {
	if input.FullName != nil {
		profile.FullName = input.FullName
	}
	if input.AspriName != nil {
		profile.AspriName = input.AspriName
	}
	if input.AspriPersona != nil {
		profile.AspriPersona = input.AspriPersona
	}
	if input.CallPreference != nil {
		profile.CallPreference = input.CallPreference
	}
	if input.PreferredLanguage != nil {
		profile.PreferredLanguage = entity.Language(*input.PreferredLanguage)
	}
	if input.ThemePreference != nil {
		profile.ThemePreference = entity.Theme(*input.ThemePreference)
	}
}
