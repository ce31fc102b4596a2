package handler

import (
	"log/slog"
	"net/http"
	"time"

	"aspri/internal/delivery/http/middleware"
	"aspri/internal/delivery/http/response"
	"aspri/internal/domain/entity"
	"aspri/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// ProfileResponse is the profile DTO returned over HTTP. The password digest
// never leaves the server.
type ProfileResponse struct {
	UserID            string    `json:"user_id"`
	Email             string    `json:"email"`
	FullName          *string   `json:"full_name,omitempty"`
	AspriName         *string   `json:"aspri_name,omitempty"`
	AspriPersona      *string   `json:"aspri_persona,omitempty"`
	CallPreference    *string   `json:"call_preference,omitempty"`
	PreferredLanguage string    `json:"preferred_language"`
	ThemePreference   string    `json:"theme_preference"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toProfileResponse(profile *entity.UserProfile) *ProfileResponse {
	return &ProfileResponse{
		UserID:            profile.UserID,
		Email:             profile.Email,
		FullName:          profile.FullName,
		AspriName:         profile.AspriName,
		AspriPersona:      profile.AspriPersona,
		CallPreference:    profile.CallPreference,
		PreferredLanguage: string(profile.PreferredLanguage),
		ThemePreference:   string(profile.ThemePreference),
		CreatedAt:         profile.CreatedAt,
		UpdatedAt:         profile.UpdatedAt,
	}
}

// authenticatedUserID extracts the caller's user id set by the auth middleware.
func authenticatedUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(string)

	return userID, ok && userID != ""
}

// GetProfile handles the request to get the current user's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "Profile retrieved successfully")
}

// CreateProfile provisions a profile for the authenticated user.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CreateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.CreateProfile(c.Request().Context(), userID, input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProfileResponse(profile), "Profile created successfully")
}

// UpdateProfile merges the provided fields into the current user's profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "Profile updated successfully")
}
