package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateJackpotPrizeRequest struct {
	UserID     string          `json:"user_id"     validate:"required,uuid"`
	SessionID  string          `json:"session_id"  validate:"required,uuid"`
	Value      decimal.Decimal `json:"value"       validate:"required,gt=0"`
	WinnerHand *string         `json:"winner_hand" validate:"omitempty,max=100"`
	Comment    *string         `json:"comment"`
}

type UpdateJackpotPrizeRequest struct {
	Value      *decimal.Decimal `json:"value"       validate:"omitempty,gt=0"`
	WinnerHand *string          `json:"winner_hand" validate:"omitempty,max=100"`
	Comment    *string          `json:"comment"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type JackpotPrizeResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	SessionID  string          `json:"session_id"`
	Value      decimal.Decimal `json:"value"`
	WinnerHand *string         `json:"winner_hand"`
	Comment    *string         `json:"comment"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

type JackpotPrizeListResponse struct {
	Jackpots []JackpotPrizeResponse `json:"jackpots"`
	Total    int                    `json:"total"`
	Page     int                    `json:"page"`
	Limit    int                    `json:"limit"`
}
