package models

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

var (
	ErrInvalidPeriod = errors.New("period must be 'monthly' or 'yearly'")
	ErrInvalidMonth  = errors.New("month must be between 1 and 12")
	ErrMissingYear   = errors.New("year is required")
)

// Budget is a spending ceiling for one category within a time window.
// Month is 0 for yearly budgets; the (user, category, period, year, month)
// tuple is unique, with month 0 standing in for "no month" so the database
// unique key can enforce upsert semantics.
type Budget struct {
	ID        int             `json:"id,omitempty" db:"id,omitempty"`
	UserID    int             `json:"user_id,omitempty" db:"user_id,omitempty"`
	Category  string          `json:"category,omitempty" db:"category,omitempty"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Period    string          `json:"period,omitempty" db:"period,omitempty"`
	Month     int             `json:"month,omitempty" db:"month,omitempty"`
	Year      int             `json:"year,omitempty" db:"year,omitempty"`
	CreatedAt sql.NullString  `json:"created_at,omitempty" db:"created_at,omitempty"`
}

// Normalize trims the category and defaults the period to monthly.
func (b *Budget) Normalize() {
	b.Category = strings.TrimSpace(b.Category)
	b.Period = strings.ToLower(strings.TrimSpace(b.Period))
	if b.Period == "" {
		b.Period = PeriodMonthly
	}
	if b.Period == PeriodYearly {
		b.Month = 0
	}
}

func (b Budget) Validate() error {
	if b.Category == "" {
		return ErrBlankCategory
	}
	if b.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if b.Period != PeriodMonthly && b.Period != PeriodYearly {
		return ErrInvalidPeriod
	}
	if b.Year == 0 {
		return ErrMissingYear
	}
	if b.Period == PeriodMonthly && (b.Month < 1 || b.Month > 12) {
		return ErrInvalidMonth
	}
	return nil
}
