package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bono is a fixed positive award granted to a user within a session.
// UserID and SessionID are immutable after creation.
type Bono struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	SessionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Value     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Comment   *string
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
