package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateBonoRequest struct {
	UserID    string          `json:"user_id"    validate:"required,uuid"`
	SessionID string          `json:"session_id" validate:"required,uuid"`
	Value     decimal.Decimal `json:"value"      validate:"required,gt=0"`
	Comment   *string         `json:"comment"`
}

type UpdateBonoRequest struct {
	Value   *decimal.Decimal `json:"value"   validate:"omitempty,gt=0"`
	Comment *string          `json:"comment"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BonoResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	SessionID string          `json:"session_id"`
	Value     decimal.Decimal `json:"value"`
	Comment   *string         `json:"comment"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

type BonoListResponse struct {
	Bonos []BonoResponse `json:"bonos"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
