package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateTransactionRequest struct {
	UserID           string          `json:"user_id"           validate:"required,uuid"`
	SessionID        string          `json:"session_id"        validate:"required,uuid"`
	Cantidad         decimal.Decimal `json:"cantidad"          validate:"required,gt=0"`
	OperationType    string          `json:"operation_type"    validate:"required,oneof='CASH IN' 'CASH OUT'"`
	TransactionMedia string          `json:"transaction_media" validate:"required,oneof=DIGITAL CASH"`
	Comment          *string         `json:"comment"`
}

// UpdateTransactionRequest deliberately omits user_id and session_id:
// foreign keys are immutable after creation.
type UpdateTransactionRequest struct {
	Cantidad         *decimal.Decimal `json:"cantidad"          validate:"omitempty,gt=0"`
	OperationType    *string          `json:"operation_type"    validate:"omitempty,oneof='CASH IN' 'CASH OUT'"`
	TransactionMedia *string          `json:"transaction_media" validate:"omitempty,oneof=DIGITAL CASH"`
	Comment          *string          `json:"comment"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TransactionResponse struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	SessionID        string          `json:"session_id"`
	Cantidad         decimal.Decimal `json:"cantidad"`
	OperationType    string          `json:"operation_type"`
	TransactionMedia string          `json:"transaction_media"`
	SignedAmount     decimal.Decimal `json:"signed_amount"`
	Comment          *string         `json:"comment"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}
