// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"aspri/internal/errors"
)

// Language is the user's preferred interface language.
type Language string

// Supported interface languages. Indonesian is the product default.
const (
	LanguageIndonesian Language = "id"
	LanguageEnglish    Language = "en"
)

// Theme is the user's preferred interface theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Assistant persona defaults applied on first-touch profile provisioning.
const (
	DefaultAssistantName    = "ASPRI"
	DefaultAssistantPersona = "Saya adalah asisten pribadi yang membantu Anda mengelola jadwal, catatan, dan keuangan."
	DefaultCallPreference   = "Anda"
)

// UserProfile is the sole persistent entity of the identity core. It carries
// the login credential digest together with the assistant preferences.
//
// UserID and Email are immutable after creation. PasswordHash must never be
// serialized outward; the delivery layer maps this entity to a response DTO
// that omits it.
type UserProfile struct {
	UserID         string  // UUID generated at registration, primary key.
	Email          string  // Unique across all profiles.
	PasswordHash   string  // bcrypt digest, never exposed.
	FullName       *string // Optional display name.
	AspriName      *string // What the user calls the assistant.
	AspriPersona   *string // Free-text persona prompt for the assistant.
	CallPreference *string // How the assistant addresses the user.
	PreferredLanguage Language
	ThemePreference   Theme
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewUserProfile builds a profile with its creation invariants enforced:
// required fields present and enum defaults applied exactly once. It replaces
// ad-hoc field-by-field construction so no code path can produce a profile
// missing its identity or credential.
func NewUserProfile(userID, email, passwordHash string) (*UserProfile, error) {
	if userID == "" {
		return nil, errors.New("user id must not be empty")
	}
	if email == "" {
		return nil, errors.New("email must not be empty")
	}
	if passwordHash == "" {
		return nil, errors.New("password hash must not be empty")
	}

	now := time.Now()

	return &UserProfile{
		UserID:            userID,
		Email:             email,
		PasswordHash:      passwordHash,
		PreferredLanguage: LanguageIndonesian,
		ThemePreference:   ThemeLight,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// ApplyAssistantDefaults fills the assistant persona fields used by
// first-touch provisioning. Fields already set are left alone.
func (p *UserProfile) ApplyAssistantDefaults() {
	if p.AspriName == nil {
		name := DefaultAssistantName
		p.AspriName = &name
	}
	if p.AspriPersona == nil {
		persona := DefaultAssistantPersona
		p.AspriPersona = &persona
	}
	if p.CallPreference == nil {
		pref := DefaultCallPreference
		p.CallPreference = &pref
	}
}
