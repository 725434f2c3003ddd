package services

import (
	"testing"

	"budget_tracker/internal/models"

	"github.com/shopspring/decimal"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		tx("salary", models.TypeIncome, "Salary", "2025-03-01", 3000),
		tx("groceries", models.TypeExpense, "Food", "2025-03-05", 120),
		tx("bus pass", models.TypeExpense, "Transport", "2025-03-07", 50),
		tx("dinner out", models.TypeExpense, "Food", "2025-04-02", 80),
	}
}

func TestApplyFilter(t *testing.T) {
	txs := sampleTransactions()

	cases := []struct {
		name   string
		filter TransactionFilter
		want   int
	}{
		{"no constraints", TransactionFilter{}, 4},
		{"by type", TransactionFilter{Type: models.TypeExpense}, 3},
		{"by category case-insensitive", TransactionFilter{Category: "food"}, 2},
		{"by date range", TransactionFilter{DateFrom: "2025-03-01", DateTo: "2025-03-31"}, 3},
		{"inclusive bounds", TransactionFilter{DateFrom: "2025-03-05", DateTo: "2025-03-05"}, 1},
		{"conjunctive", TransactionFilter{Type: models.TypeExpense, Category: "Food", DateTo: "2025-03-31"}, 1},
		{"nothing matches", TransactionFilter{Category: "Rent"}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ApplyFilter(txs, c.filter)
			if len(got) != c.want {
				t.Errorf("got %d transactions, want %d", len(got), c.want)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	txs := sampleTransactions()

	if got := Search(txs, ""); len(got) != 4 {
		t.Errorf("empty query: got %d, want 4", len(got))
	}
	if got := Search(txs, "GROC"); len(got) != 1 || got[0].Description != "groceries" {
		t.Errorf("description search failed: %v", got)
	}
	if got := Search(txs, "food"); len(got) != 2 {
		t.Errorf("category search: got %d, want 2", len(got))
	}
	if got := Search(txs, "no such thing"); len(got) != 0 {
		t.Errorf("miss: got %d, want 0", len(got))
	}
}

func TestSortTransactions(t *testing.T) {
	txs := sampleTransactions()

	byDate := SortTransactions(txs, SortByDate, "desc")
	if byDate[0].Date != "2025-04-02" || byDate[3].Date != "2025-03-01" {
		t.Errorf("date desc order wrong: %s .. %s", byDate[0].Date, byDate[3].Date)
	}

	byAmount := SortTransactions(txs, SortByAmount, "asc")
	if !byAmount[0].Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("amount asc: first = %s, want 50", byAmount[0].Amount)
	}
	if !byAmount[3].Amount.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("amount asc: last = %s, want 3000", byAmount[3].Amount)
	}

	// Unknown key falls back to date; unknown order means descending.
	fallback := SortTransactions(txs, "bogus", "sideways")
	if fallback[0].Date != "2025-04-02" {
		t.Errorf("fallback sort: first date = %s, want 2025-04-02", fallback[0].Date)
	}

	// Input order untouched.
	if txs[0].Description != "salary" {
		t.Error("SortTransactions mutated its input")
	}
}

func TestPaginate(t *testing.T) {
	txs := sampleTransactions()

	if got := Paginate(txs, 1, 2); len(got) != 2 || got[0].Description != "salary" {
		t.Errorf("page 1: %v", got)
	}
	if got := Paginate(txs, 2, 2); len(got) != 2 || got[0].Description != "bus pass" {
		t.Errorf("page 2: %v", got)
	}
	if got := Paginate(txs, 3, 2); len(got) != 0 {
		t.Errorf("out-of-range page: got %d, want 0", len(got))
	}
	if got := Paginate(txs, 2, 3); len(got) != 1 {
		t.Errorf("partial last page: got %d, want 1", len(got))
	}
	if got := Paginate(txs, 1, 0); len(got) != 4 {
		t.Errorf("limit 0 returns everything: got %d, want 4", len(got))
	}
	if got := Paginate(txs, 0, 2); len(got) != 2 {
		t.Errorf("page below 1 clamps to 1: got %d, want 2", len(got))
	}
}
