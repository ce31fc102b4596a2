// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

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

const bearerTokenType = "Bearer"

// The only role this core knows; authorization beyond it is out of scope.
const roleUser = "user"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	profileRepo    repository.ProfileRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	googleVerifier service.GoogleVerifier
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ProfileRepo    repository.ProfileRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	GoogleVerifier service.GoogleVerifier `optional:"true"`
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:      params.TxManager,
		profileRepo:    params.ProfileRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		googleVerifier: params.GoogleVerifier,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. The profile is
// persisted inside a single transaction; tokens are issued only after the
// transaction commits, so a persistence failure leaves no partial state and
// no tokens.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Registering new user", slog.String("email", input.Email))

	var registered *entity.UserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		// 1. Reject duplicate emails up front.
		_, err := profileRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration failed")
		}
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		// 2. Hash the password and build the profile with its defaults.
		passwordHash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
		}

		profile, err := entity.NewUserProfile(uuid.NewString(), input.Email, passwordHash)
		if err != nil {
			return errors.Wrap(err, "failed to build profile during registration")
		}

		// 3. Persist.
		if err := profileRepo.Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile during registration")
		}

		registered = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	output, err := srv.issueTokenPair(registered)
	if err != nil {
		srv.log(ctx).Error("Failed to issue tokens after registration", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("User registered successfully",
		slog.String("email", registered.Email), slog.String("userID", registered.UserID))

	return output, nil
}

// Login verifies credentials and issues a fresh token pair. A missing profile
// and a failed password check collapse into the same error so responses
// cannot be used to enumerate registered emails.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Authenticating user", slog.String("email", input.Email))

	profile, err := srv.profileRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	// bcrypt comparison is CPU-bound; it runs outside any transaction.
	if !srv.hasher.Check(input.Password, profile.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	output, err := srv.issueTokenPair(profile)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("User authenticated successfully", slog.String("userID", profile.UserID))

	return output, nil
}

// Logout is a documented no-op: with stateless signed tokens and no
// server-side denylist, a caller-held token stays valid until it expires on
// its own. Real invalidation would need a denylist, which is out of scope.
func (srv *authService) Logout(ctx context.Context, _ *usecase.LogoutInput) error {
	srv.log(ctx).Info("User logged out")

	return nil
}

// RefreshToken validates the presented refresh token and issues a new access
// token. The same refresh token is echoed back unchanged; there is no
// rotation, so a captured refresh token stays usable until its natural expiry.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	if !srv.tokenService.Validate(input.RefreshToken) {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "refresh token rejected")
	}

	claims, err := srv.tokenService.Claims(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "failed to decode refresh token")
	}

	profile, err := srv.profileRepo.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "refresh token subject unknown")
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(profile.UserID, profile.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}
	srv.log(ctx).Debug("Access token refreshed", slog.String("userID", profile.UserID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: input.RefreshToken,
		TokenType:    bearerTokenType,
		ExpiresIn:    srv.tokenService.AccessTokenTTLSeconds(),
		User:         userInfoOf(profile),
	}, nil
}

// GoogleLogin verifies a Google ID token and issues a normal token pair,
// provisioning a profile on first sight. Provisioned accounts get a random
// unusable password digest so the password login path stays closed for them.
func (srv *authService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.AuthOutput, error) {
	if srv.googleVerifier == nil {
		return nil, errors.Wrap(domainerrors.ErrGoogleTokenInvalid, "google sign-in is not configured")
	}

	googleUser, err := srv.googleVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrGoogleTokenInvalid, "failed to verify Google ID token")
	}

	profile, err := srv.profileRepo.FindByEmail(ctx, googleUser.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(err, "failed to find profile by email")
		}

		profile, err = srv.provisionGoogleProfile(ctx, googleUser)
		if err != nil {
			return nil, err
		}
	}

	output, err := srv.issueTokenPair(profile)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Google sign-in successful", slog.String("userID", profile.UserID))

	return output, nil
}

func (srv *authService) provisionGoogleProfile(ctx context.Context, googleUser *service.GoogleUser) (*entity.UserProfile, error) {
	// An unguessable placeholder password keeps the credential invariant while
	// making password login impossible for this account.
	placeholderHash, err := srv.hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash placeholder password")
	}

	var profile *entity.UserProfile

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		newProfile, err := entity.NewUserProfile(uuid.NewString(), googleUser.Email, placeholderHash)
		if err != nil {
			return errors.Wrap(err, "failed to build profile for Google user")
		}
		if googleUser.Name != "" {
			name := googleUser.Name
			newProfile.FullName = &name
		}

		if err := profileRepo.Create(ctx, newProfile); err != nil {
			return errors.Wrap(err, "failed to create profile for Google user")
		}

		profile = newProfile

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to provision Google profile", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Provisioned profile for Google user", slog.String("userID", profile.UserID))

	return profile, nil
}

// issueTokenPair creates one access and one refresh token for the profile.
func (srv *authService) issueTokenPair(profile *entity.UserProfile) (*usecase.AuthOutput, error) {
	accessToken, err := srv.tokenService.GenerateAccessToken(profile.UserID, profile.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	refreshToken, err := srv.tokenService.GenerateRefreshToken(profile.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    bearerTokenType,
		ExpiresIn:    srv.tokenService.AccessTokenTTLSeconds(),
		User:         userInfoOf(profile),
	}, nil
}

func userInfoOf(profile *entity.UserProfile) usecase.UserInfo {
	return usecase.UserInfo{
		UserID: profile.UserID,
		Email:  profile.Email,
		Role:   roleUser,
	}
}
