package models

import "time"

type Account struct {
	ID           uint64  `gorm:"primarykey" json:"id"`
	Username     string  `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash string  `gorm:"type:varchar(255);not null" json:"-"`
	SessionToken *string `gorm:"type:varchar(64)" json:"-"`

	// DefaultPassword marks accounts still on a generated password; the
	// client forces a password change on the next login.
	DefaultPassword bool       `json:"default_password"`
	Authenticated   bool       `json:"authenticated"`
	LastLogin       *time.Time `json:"last_login"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
