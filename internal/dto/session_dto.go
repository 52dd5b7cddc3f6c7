package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateSessionRequest struct {
	DealerID  string           `json:"dealer_id"  validate:"required,uuid"`
	StartTime *time.Time       `json:"start_time"`
	HourlyPay *decimal.Decimal `json:"hourly_pay" validate:"omitempty,min=0"`
	Comment   *string          `json:"comment"`
}

type UpdateSessionRequest struct {
	DealerID  *string          `json:"dealer_id"  validate:"omitempty,uuid"`
	StartTime *time.Time       `json:"start_time"`
	Jackpot   *decimal.Decimal `json:"jackpot"    validate:"omitempty,min=0"`
	Reik      *decimal.Decimal `json:"reik"       validate:"omitempty,min=0"`
	Tips      *decimal.Decimal `json:"tips"       validate:"omitempty,min=0"`
	HourlyPay *decimal.Decimal `json:"hourly_pay" validate:"omitempty,min=0"`
	Comment   *string          `json:"comment"`
}

// EndSessionRequest closes a shift. Reik and jackpot must both be declared —
// the close is rejected otherwise.
type EndSessionRequest struct {
	Reik    *decimal.Decimal `json:"reik"     validate:"required,min=0"`
	Jackpot *decimal.Decimal `json:"jackpot"  validate:"required,min=0"`
	EndTime *time.Time       `json:"end_time"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SessionResponse struct {
	ID            string          `json:"id"`
	DealerID      string          `json:"dealer_id"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       *time.Time      `json:"end_time"`
	Jackpot       decimal.Decimal `json:"jackpot"`
	Reik          decimal.Decimal `json:"reik"`
	Tips          decimal.Decimal `json:"tips"`
	HourlyPay     decimal.Decimal `json:"hourly_pay"`
	Comment       *string         `json:"comment"`
	IsActive      bool            `json:"is_active"`
	DurationHours *float64        `json:"duration_hours"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

type SessionStatsResponse struct {
	TotalSessions     int64           `json:"total_sessions"`
	ActiveSessions    int64           `json:"active_sessions"`
	CompletedSessions int64           `json:"completed_sessions"`
	TotalJackpot      decimal.Decimal `json:"total_jackpot"`
	TotalReik         decimal.Decimal `json:"total_reik"`
	TotalTips         decimal.Decimal `json:"total_tips"`
	TotalEarnings     decimal.Decimal `json:"total_earnings"`
	AvgDurationHours  float64         `json:"average_duration_hours"`
}
