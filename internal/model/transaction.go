package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Operation types: CASH IN counts positive toward the day, CASH OUT negative.
const (
	OperationCashIn  = "CASH IN"
	OperationCashOut = "CASH OUT"
)

// Payment media.
const (
	MediaDigital = "DIGITAL"
	MediaCash    = "CASH"
)

// Transaction is a cash movement tied to exactly one user and one session.
// UserID and SessionID are immutable after creation.
type Transaction struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	SessionID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Cantidad         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	OperationType    string          `gorm:"type:varchar(20);not null"`
	TransactionMedia string          `gorm:"type:varchar(20);not null"`
	Comment          *string
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

// SignedAmount returns +cantidad for CASH IN and -cantidad for CASH OUT.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.OperationType == OperationCashOut {
		return t.Cantidad.Neg()
	}
	return t.Cantidad
}

// IsIncome reports whether the movement adds money to the house.
func (t *Transaction) IsIncome() bool {
	return t.OperationType == OperationCashIn
}
