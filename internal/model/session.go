package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session represents one dealer work shift. EndTime nil means the shift is
// open; closing it is one-way and requires reik and jackpot to be declared.
type Session struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DealerID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartTime time.Time  `gorm:"not null;index"`
	EndTime   *time.Time `gorm:"index"`
	// Accumulated amounts for the shift. Jackpot here is the pool contribution,
	// not a paid-out prize (see JackpotPrize).
	Jackpot   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Reik      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Tips      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	HourlyPay decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Comment   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the shift is still running.
func (s *Session) IsOpen() bool {
	return s.EndTime == nil
}

// DurationHours returns the shift length in hours, or nil while open.
func (s *Session) DurationHours() *float64 {
	if s.EndTime == nil {
		return nil
	}
	h := s.EndTime.Sub(s.StartTime).Hours()
	return &h
}

// DealerCost is the shift's operating cost: elapsed hours times hourly pay,
// truncated to whole units. Open shifts are measured up to now.
func (s *Session) DealerCost(now time.Time) decimal.Decimal {
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	hours := end.Sub(s.StartTime).Hours()
	if hours < 0 {
		hours = 0
	}
	return decimal.NewFromFloat(hours).Mul(s.HourlyPay).Truncate(0)
}

// TotalEarnings sums the dealer-side amounts of the shift.
func (s *Session) TotalEarnings() decimal.Decimal {
	return s.Jackpot.Add(s.Reik).Add(s.Tips).Add(s.HourlyPay)
}
