package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JackpotPrize is a jackpot paid out to a user within a session, carrying the
// winning hand as free text. Distinct from Session.Jackpot (the pool amount).
type JackpotPrize struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	SessionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Value     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	WinnerHand *string        `gorm:"type:varchar(100)"`
	Comment   *string
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// HasWinnerHand reports whether the prize records the winning hand.
func (j *JackpotPrize) HasWinnerHand() bool {
	return j.WinnerHand != nil && *j.WinnerHand != ""
}
