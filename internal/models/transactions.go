package models

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"

	// DateLayout is the calendar-date format used everywhere a transaction
	// date crosses the wire or the database.
	DateLayout = "2006-01-02"
)

var (
	ErrBlankDescription = errors.New("description is required")
	ErrLongDescription  = errors.New("description too long (max 200 characters)")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrInvalidType      = errors.New("type must be 'income' or 'expense'")
	ErrBlankCategory    = errors.New("category is required")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
)

type Transaction struct {
	ID          int             `json:"id,omitempty" db:"id,omitempty"`
	UserID      int             `json:"user_id,omitempty" db:"user_id,omitempty"`
	Description string          `json:"description,omitempty" db:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Type        string          `json:"type,omitempty" db:"type,omitempty"`
	Category    string          `json:"category,omitempty" db:"category,omitempty"`
	Date        string          `json:"date,omitempty" db:"date,omitempty"`
	CreatedAt   sql.NullString  `json:"created_at,omitempty" db:"created_at,omitempty"`
}

// Normalize trims free-text fields and defaults the date to today. Called
// before Validate on every create/update path.
func (t *Transaction) Normalize() {
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)
	t.Type = strings.ToLower(strings.TrimSpace(t.Type))
	t.Date = strings.TrimSpace(t.Date)
	if t.Date == "" {
		t.Date = time.Now().Format(DateLayout)
	}
}

func (t Transaction) Validate() error {
	if t.Description == "" {
		return ErrBlankDescription
	}
	if len(t.Description) > 200 {
		return ErrLongDescription
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return ErrInvalidType
	}
	if t.Category == "" {
		return ErrBlankCategory
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
