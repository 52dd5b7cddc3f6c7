package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// UpdateReportRequest edits only the top-level monetary fields and comment.
// The jackpot_wins / bonos breakdown lists are aggregation outputs and are
// never accepted from clients.
type UpdateReportRequest struct {
	Reik      *decimal.Decimal `json:"reik"      validate:"omitempty,min=0"`
	Jackpot   *decimal.Decimal `json:"jackpot"   validate:"omitempty,min=0"`
	Ganancias *decimal.Decimal `json:"ganancias" validate:"omitempty,min=0"`
	Gastos    *decimal.Decimal `json:"gastos"    validate:"omitempty,min=0"`
	Comment   *string          `json:"comment"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ReportEntryResponse struct {
	SourceID string          `json:"source_id"`
	Sum      decimal.Decimal `json:"sum"`
}

type ReportResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Reik         decimal.Decimal       `json:"reik"`
	Jackpot      decimal.Decimal       `json:"jackpot"`
	Ganancias    decimal.Decimal       `json:"ganancias"`
	Gastos       decimal.Decimal       `json:"gastos"`
	Sessions     []string              `json:"sessions"`
	JackpotWins  []ReportEntryResponse `json:"jackpot_wins"`
	Bonos        []ReportEntryResponse `json:"bonos"`
	Comment      *string               `json:"comment"`
	NetProfit    decimal.Decimal       `json:"net_profit"`
	TotalIncome  decimal.Decimal       `json:"total_income"`
	IsProfitable bool                  `json:"is_profitable"`
	ProfitMargin decimal.Decimal       `json:"profit_margin"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
}

type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

type ReportDayProfit struct {
	Date      string          `json:"date"`
	NetProfit decimal.Decimal `json:"net_profit"`
}

type ReportStatsResponse struct {
	TotalReports      int              `json:"total_reports"`
	TotalReik         decimal.Decimal  `json:"total_reik"`
	TotalJackpot      decimal.Decimal  `json:"total_jackpot"`
	TotalGanancias    decimal.Decimal  `json:"total_ganancias"`
	TotalGastos       decimal.Decimal  `json:"total_gastos"`
	TotalNetProfit    decimal.Decimal  `json:"total_net_profit"`
	AvgDailyProfit    decimal.Decimal  `json:"average_daily_profit"`
	ProfitableDays    int              `json:"profitable_days"`
	UnprofitableDays  int              `json:"unprofitable_days"`
	BestDay           *ReportDayProfit `json:"best_day"`
	WorstDay          *ReportDayProfit `json:"worst_day"`
}
