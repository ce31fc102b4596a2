package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"aspri/internal/domain/entity"
	"aspri/internal/domain/repository"
	"aspri/internal/domain/service"

	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeProfileRepo is an in-memory ProfileRepository keyed by user id.
type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*entity.UserProfile

	createErr error
	updateErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*entity.UserProfile)}
}

func (r *fakeProfileRepo) FindByID(_ context.Context, userID string) (*entity.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	clone := *profile

	return &clone, nil
}

func (r *fakeProfileRepo) FindByEmail(_ context.Context, email string) (*entity.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, profile := range r.profiles {
		if profile.Email == email {
			clone := *profile

			return &clone, nil
		}
	}

	return nil, repository.ErrProfileNotFound
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *entity.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}

	clone := *profile
	r.profiles[profile.UserID] = &clone

	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, profile *entity.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.updateErr != nil {
		return r.updateErr
	}

	if _, ok := r.profiles[profile.UserID]; !ok {
		return repository.ErrProfileNotFound
	}

	clone := *profile
	r.profiles[profile.UserID] = &clone

	return nil
}

// fakeTxManager runs the unit of work directly against the shared repo.
type fakeTxManager struct {
	repo *fakeProfileRepo
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeRepoFactory{repo: m.repo})
}

type fakeRepoFactory struct {
	repo *fakeProfileRepo
}

func (f *fakeRepoFactory) ProfileRepo() repository.ProfileRepository {
	return f.repo
}

// fakeHasher is a deterministic stand-in for the bcrypt hasher.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues recognizable token strings and decodes them back.
type fakeTokenService struct {
	counter int
}

func (s *fakeTokenService) GenerateAccessToken(userID, email string) (string, error) {
	s.counter++

	return "access:" + userID + ":" + email, nil
}

func (s *fakeTokenService) GenerateRefreshToken(userID string) (string, error) {
	s.counter++

	return "refresh:" + userID, nil
}

func (s *fakeTokenService) Validate(tokenString string) bool {
	return strings.HasPrefix(tokenString, "access:") || strings.HasPrefix(tokenString, "refresh:")
}

func (s *fakeTokenService) Claims(tokenString string) (*service.Claims, error) {
	parts := strings.Split(tokenString, ":")
	if len(parts) < 2 {
		return nil, errors.New("malformed token")
	}

	claims := &service.Claims{}
	claims.Subject = parts[1]
	if len(parts) > 2 {
		claims.Email = parts[2]
	}

	return claims, nil
}

func (s *fakeTokenService) IsExpired(string) bool { return false }

func (s *fakeTokenService) AccessTokenTTLSeconds() int64 { return 86400 }

// fakeGoogleVerifier accepts a single configured ID token.
type fakeGoogleVerifier struct {
	validToken string
	user       *service.GoogleUser
}

func (v *fakeGoogleVerifier) VerifyIDToken(_ context.Context, idToken string) (*service.GoogleUser, error) {
	if idToken != v.validToken {
		return nil, errors.New("invalid ID token")
	}

	return v.user, nil
}
