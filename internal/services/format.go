package services

import (
	"strings"

	"budget_tracker/internal/models"

	"github.com/shopspring/decimal"
)

// CSVHeader is the first line of every transaction export.
const CSVHeader = "Date,Description,Type,Category,Amount"

// TransactionsCSV renders transactions as CSV text, one row per transaction.
// Only the description is quoted (embedded quotes doubled), matching the
// statement format the frontend downloads.
func TransactionsCSV(txs []models.Transaction) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteByte('\n')
	for _, t := range txs {
		b.WriteString(t.Date)
		b.WriteString(`,"`)
		b.WriteString(strings.ReplaceAll(t.Description, `"`, `""`))
		b.WriteString(`",`)
		b.WriteString(t.Type)
		b.WriteByte(',')
		b.WriteString(t.Category)
		b.WriteByte(',')
		b.WriteString(t.Amount.StringFixed(2))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatCurrency renders an amount with the display symbol and a fixed two
// decimal places, e.g. "$1234.50".
func FormatCurrency(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// FormatPercent renders a percentage with one decimal place, e.g. "66.7%".
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}
