package models

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validTransaction() Transaction {
	return Transaction{
		Description: "groceries",
		Amount:      decimal.NewFromInt(50),
		Type:        TypeExpense,
		Category:    "Food",
		Date:        "2025-03-05",
	}
}

func TestTransactionNormalize(t *testing.T) {
	tr := Transaction{
		Description: "  coffee  ",
		Type:        " Expense ",
		Category:    " Food ",
		Date:        "",
	}
	tr.Normalize()

	if tr.Description != "coffee" || tr.Category != "Food" {
		t.Errorf("trim failed: %+v", tr)
	}
	if tr.Type != TypeExpense {
		t.Errorf("type = %q, want %q", tr.Type, TypeExpense)
	}
	if tr.Date != time.Now().Format(DateLayout) {
		t.Errorf("blank date should default to today, got %q", tr.Date)
	}
}

func TestTransactionValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{"valid", func(tr *Transaction) {}, nil},
		{"blank description", func(tr *Transaction) { tr.Description = "" }, ErrBlankDescription},
		{"long description", func(tr *Transaction) { tr.Description = strings.Repeat("x", 201) }, ErrLongDescription},
		{"negative amount", func(tr *Transaction) { tr.Amount = decimal.NewFromInt(-1) }, ErrNegativeAmount},
		{"zero amount ok", func(tr *Transaction) { tr.Amount = decimal.Zero }, nil},
		{"bad type", func(tr *Transaction) { tr.Type = "transfer" }, ErrInvalidType},
		{"blank category", func(tr *Transaction) { tr.Category = "" }, ErrBlankCategory},
		{"bad date", func(tr *Transaction) { tr.Date = "05/03/2025" }, ErrInvalidDate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := validTransaction()
			c.mutate(&tr)
			if err := tr.Validate(); err != c.wantErr {
				t.Errorf("Validate() = %v, want %v", err, c.wantErr)
			}
		})
	}
}

func TestBudgetNormalizeAndValidate(t *testing.T) {
	b := Budget{Category: " Food ", Amount: decimal.NewFromInt(200), Year: 2025, Month: 3}
	b.Normalize()
	if b.Category != "Food" {
		t.Errorf("category = %q", b.Category)
	}
	if b.Period != PeriodMonthly {
		t.Errorf("blank period should default to monthly, got %q", b.Period)
	}
	if err := b.Validate(); err != nil {
		t.Errorf("valid budget rejected: %v", err)
	}

	yearly := Budget{Category: "Travel", Amount: decimal.NewFromInt(1200), Period: "YEARLY", Year: 2025, Month: 7}
	yearly.Normalize()
	if yearly.Period != PeriodYearly {
		t.Errorf("period = %q", yearly.Period)
	}
	if yearly.Month != 0 {
		t.Errorf("yearly budget should drop its month, got %d", yearly.Month)
	}
	if err := yearly.Validate(); err != nil {
		t.Errorf("valid yearly budget rejected: %v", err)
	}
}

func TestBudgetValidateErrors(t *testing.T) {
	cases := []struct {
		name    string
		budget  Budget
		wantErr error
	}{
		{"blank category", Budget{Period: PeriodMonthly, Year: 2025, Month: 1}, ErrBlankCategory},
		{"negative amount", Budget{Category: "Food", Amount: decimal.NewFromInt(-5), Period: PeriodMonthly, Year: 2025, Month: 1}, ErrNegativeAmount},
		{"bad period", Budget{Category: "Food", Period: "weekly", Year: 2025, Month: 1}, ErrInvalidPeriod},
		{"missing year", Budget{Category: "Food", Period: PeriodMonthly, Month: 1}, ErrMissingYear},
		{"month out of range", Budget{Category: "Food", Period: PeriodMonthly, Year: 2025, Month: 13}, ErrInvalidMonth},
		{"monthly without month", Budget{Category: "Food", Period: PeriodMonthly, Year: 2025}, ErrInvalidMonth},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.budget.Validate(); err != c.wantErr {
				t.Errorf("Validate() = %v, want %v", err, c.wantErr)
			}
		})
	}
}
