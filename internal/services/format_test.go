package services

import (
	"encoding/csv"
	"strings"
	"testing"

	"budget_tracker/internal/models"

	"github.com/shopspring/decimal"
)

func TestTransactionsCSV(t *testing.T) {
	txs := []models.Transaction{
		tx("coffee", models.TypeExpense, "Food", "2025-05-01", 4.5),
		tx(`the "big" shop`, models.TypeExpense, "Food", "2025-05-02", 120),
	}

	out := TransactionsCSV(txs)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(records))
	}
	if strings.Join(records[0], ",") != CSVHeader {
		t.Errorf("header = %v", records[0])
	}
	if records[1][4] != "4.50" {
		t.Errorf("amount rendered as %q, want two decimal places", records[1][4])
	}
	if records[2][1] != `the "big" shop` {
		t.Errorf("quoted description round-trip failed: %q", records[2][1])
	}
}

func TestTransactionsCSVEmpty(t *testing.T) {
	out := TransactionsCSV(nil)
	if out != CSVHeader+"\n" {
		t.Errorf("empty export = %q, want header only", out)
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.NewFromFloat(1234.5), "$1234.50"},
		{decimal.Zero, "$0.00"},
		{decimal.NewFromFloat(-30), "-$30.00"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in); got != c.want {
			t.Errorf("FormatCurrency(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(decimal.NewFromFloat(66.666)); got != "66.7%" {
		t.Errorf("FormatPercent = %q, want 66.7%%", got)
	}
}
