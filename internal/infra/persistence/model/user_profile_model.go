// Package model contains the GORM persistence models mirroring database tables.
package model

import "time"

// UserProfileModel mirrors the 'user_profiles' table. The primary key is the
// application-generated UUID string; email carries a unique index.
type UserProfileModel struct {
	UserID            string  `gorm:"column:user_id;type:varchar(36);primaryKey"`
	Email             string  `gorm:"type:varchar(255);unique;not null"`
	PasswordHash      string  `gorm:"column:password_hash;type:varchar(255);not null"`
	FullName          *string `gorm:"column:full_name;type:varchar(255)"`
	AspriName         *string `gorm:"column:aspri_name;type:varchar(100)"`
	AspriPersona      *string `gorm:"column:aspri_persona;type:text"`
	CallPreference    *string `gorm:"column:call_preference;type:varchar(100)"`
	PreferredLanguage string  `gorm:"column:preferred_language;type:varchar(5);not null;default:id"`
	ThemePreference   string  `gorm:"column:theme_preference;type:varchar(10);not null;default:light"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
