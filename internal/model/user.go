package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MaxFailedAttempts is the lockout threshold: the account is deactivated once
// this many consecutive logins fail.
const MaxFailedAttempts = 5

// User stores system accounts with a role set.
// Plain players (USER only) may lack credentials and start inactive;
// Dealer/Manager/Admin accounts require email + password and start active.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	Email        *string   `gorm:"uniqueIndex"`
	PasswordHash string
	Roles        pq.StringArray `gorm:"type:text[];not null"`
	IsActive     bool           `gorm:"not null;default:true"`
	// FailedAttempts counts consecutive failed logins; reset on success or reactivation.
	FailedAttempts int `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasRole reports membership of a single role, not tier satisfaction.
func (u *User) HasRole(r Role) bool {
	for _, s := range u.Roles {
		if Role(s) == r {
			return true
		}
	}
	return false
}

// Tier returns the user's effective permission tier.
func (u *User) Tier() int {
	return HighestTier(u.Roles)
}

// HasCredentials reports whether the account can log in at all.
func (u *User) HasCredentials() bool {
	return u.Email != nil && *u.Email != "" && u.PasswordHash != ""
}

// IsLocked reports whether the account hit the failed-login threshold.
func (u *User) IsLocked() bool {
	return u.FailedAttempts >= MaxFailedAttempts
}
