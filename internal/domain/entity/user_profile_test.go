package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserProfile_Defaults(t *testing.T) {
	profile, err := NewUserProfile("user-1", "a@x.com", "hash")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, "a@x.com", profile.Email)
	assert.Equal(t, "hash", profile.PasswordHash)

	// Enum defaults applied exactly once at construction.
	assert.Equal(t, LanguageIndonesian, profile.PreferredLanguage)
	assert.Equal(t, ThemeLight, profile.ThemePreference)

	// Optional text fields stay unset until the user touches them.
	assert.Nil(t, profile.FullName)
	assert.Nil(t, profile.AspriName)
	assert.Nil(t, profile.AspriPersona)
	assert.Nil(t, profile.CallPreference)
}

func TestNewUserProfile_RequiredFields(t *testing.T) {
	_, err := NewUserProfile("", "a@x.com", "hash")
	assert.Error(t, err)

	_, err = NewUserProfile("user-1", "", "hash")
	assert.Error(t, err)

	_, err = NewUserProfile("user-1", "a@x.com", "")
	assert.Error(t, err)
}

func TestApplyAssistantDefaults(t *testing.T) {
	profile, err := NewUserProfile("user-1", "a@x.com", "hash")
	assert.NoError(t, err)

	profile.ApplyAssistantDefaults()
	assert.Equal(t, DefaultAssistantName, *profile.AspriName)
	assert.Equal(t, DefaultAssistantPersona, *profile.AspriPersona)
	assert.Equal(t, DefaultCallPreference, *profile.CallPreference)
}

func TestApplyAssistantDefaults_KeepsExistingValues(t *testing.T) {
	profile, err := NewUserProfile("user-1", "a@x.com", "hash")
	assert.NoError(t, err)

	custom := "Jarvis"
	profile.AspriName = &custom

	profile.ApplyAssistantDefaults()
	assert.Equal(t, "Jarvis", *profile.AspriName)
	assert.Equal(t, DefaultAssistantPersona, *profile.AspriPersona)
}
