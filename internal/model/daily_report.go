package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ReportEntry is one line of a report breakdown list: the source event id and
// its amount. Breakdown lists are aggregation outputs, never edited directly.
type ReportEntry struct {
	SourceID string          `json:"source_id"`
	Sum      decimal.Decimal `json:"sum"`
}

// DailyReport is the derived per-calendar-day aggregate. One row per date.
// Today's report is rebuilt from source data on every read; past reports are
// persisted once and treated as historical record.
type DailyReport struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date time.Time `gorm:"type:date;uniqueIndex;not null"`

	Reik      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Jackpot   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Ganancias decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Gastos    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	SessionIDs  pq.StringArray `gorm:"type:text[]"`
	JackpotWins []ReportEntry  `gorm:"serializer:json"`
	Bonos       []ReportEntry  `gorm:"serializer:json"`

	Comment   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NetProfit is ganancias minus gastos.
func (r *DailyReport) NetProfit() decimal.Decimal {
	return r.Ganancias.Sub(r.Gastos)
}

// TotalIncome is reik + jackpot + ganancias.
func (r *DailyReport) TotalIncome() decimal.Decimal {
	return r.Reik.Add(r.Jackpot).Add(r.Ganancias)
}

// IsProfitable reports whether the day closed with positive net profit.
func (r *DailyReport) IsProfitable() bool {
	return r.NetProfit().IsPositive()
}

// ProfitMargin is net profit over total income, as a percentage.
// Defined as 0 when total income is 0.
func (r *DailyReport) ProfitMargin() decimal.Decimal {
	total := r.TotalIncome()
	if total.IsZero() {
		return decimal.Zero
	}
	return r.NetProfit().Div(total).Mul(decimal.NewFromInt(100)).Round(2)
}
