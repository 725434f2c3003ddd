package services

import (
	"sort"
	"strings"

	"budget_tracker/internal/models"
)

// TransactionFilter narrows a transaction list. All set fields must match
// (conjunctive); zero-value fields impose no constraint. Date bounds are
// inclusive and compared lexicographically, which is chronological for
// YYYY-MM-DD strings.
type TransactionFilter struct {
	Type     string
	Category string
	DateFrom string
	DateTo   string
}

func (f TransactionFilter) Matches(t models.Transaction) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Category != "" && !CategoryMatches(f.Category, t.Category) {
		return false
	}
	if f.DateFrom != "" && t.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && t.Date > f.DateTo {
		return false
	}
	return true
}

// ApplyFilter returns the transactions matching f, preserving order.
func ApplyFilter(txs []models.Transaction, f TransactionFilter) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Search keeps transactions whose description or category contains q,
// case-insensitively. An empty query keeps everything.
func Search(txs []models.Transaction, q string) []models.Transaction {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return txs
	}
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(strings.ToLower(t.Category), q) {
			out = append(out, t)
		}
	}
	return out
}

// Sort keys accepted by SortTransactions.
const (
	SortByAmount   = "amount"
	SortByType     = "type"
	SortByCategory = "category"
	SortByDate     = "date"
)

// SortTransactions returns a stably sorted copy. Unknown keys fall back to
// date; any order other than "asc" means descending, the default list order.
func SortTransactions(txs []models.Transaction, sortBy, sortOrder string) []models.Transaction {
	out := make([]models.Transaction, len(txs))
	copy(out, txs)

	var less func(a, b models.Transaction) bool
	switch sortBy {
	case SortByAmount:
		less = func(a, b models.Transaction) bool { return a.Amount.LessThan(b.Amount) }
	case SortByType:
		less = func(a, b models.Transaction) bool { return a.Type < b.Type }
	case SortByCategory:
		less = func(a, b models.Transaction) bool { return a.Category < b.Category }
	default:
		less = func(a, b models.Transaction) bool { return a.Date < b.Date }
	}

	ascending := sortOrder == "asc"
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out
}

// Paginate slices out one page (1-based). Out-of-range pages yield an empty
// slice; limit <= 0 returns the whole list.
func Paginate(txs []models.Transaction, page, limit int) []models.Transaction {
	if limit <= 0 {
		return txs
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(txs) {
		return []models.Transaction{}
	}
	end := start + limit
	if end > len(txs) {
		end = len(txs)
	}
	return txs[start:end]
}
