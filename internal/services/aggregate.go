package services

import (
	"sort"
	"strings"
	"time"

	"budget_tracker/internal/models"

	"github.com/shopspring/decimal"
)

// The aggregation functions in this file are pure folds over transaction
// slices that callers have already scoped to one owner (and usually a date
// range). They never fail on empty or sparse input; rows whose date does not
// parse are skipped, since the validation boundary rejects them on the way in.

var hundred = decimal.NewFromInt(100)

type Summary struct {
	TotalIncome      decimal.Decimal            `json:"totalIncome"`
	TotalExpense     decimal.Decimal            `json:"totalExpense"`
	Balance          decimal.Decimal            `json:"balance"`
	CategoryExpenses map[string]decimal.Decimal `json:"categoryExpenses"`
	TransactionCount int                        `json:"transactionCount"`
}

type MonthTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type MonthlyReport struct {
	Period           Period                     `json:"period"`
	TotalIncome      decimal.Decimal            `json:"totalIncome"`
	TotalExpense     decimal.Decimal            `json:"totalExpense"`
	NetSavings       decimal.Decimal            `json:"netSavings"`
	CategoryExpenses map[string]decimal.Decimal `json:"categoryExpenses"`
	TransactionCount int                        `json:"transactionCount"`
}

type YearlyReport struct {
	Year             int                        `json:"year"`
	TotalIncome      decimal.Decimal            `json:"totalIncome"`
	TotalExpense     decimal.Decimal            `json:"totalExpense"`
	NetSavings       decimal.Decimal            `json:"netSavings"`
	MonthlyBreakdown map[int]MonthTotals        `json:"monthlyBreakdown"`
	CategoryExpenses map[string]decimal.Decimal `json:"categoryExpenses"`
	TransactionCount int                        `json:"transactionCount"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type BudgetStatus struct {
	BudgetID     int             `json:"budgetId"`
	Category     string          `json:"category"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
	Percentage   decimal.Decimal `json:"percentage"`
	IsOverBudget bool            `json:"isOverBudget"`
}

func txDate(t models.Transaction) (time.Time, bool) {
	d, err := time.Parse(models.DateLayout, t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Summarize reduces a transaction list to income/expense totals, the running
// balance and the per-category expense breakdown.
func Summarize(txs []models.Transaction) Summary {
	s := Summary{
		TotalIncome:      decimal.Zero,
		TotalExpense:     decimal.Zero,
		Balance:          decimal.Zero,
		CategoryExpenses: map[string]decimal.Decimal{},
		TransactionCount: len(txs),
	}
	for _, t := range txs {
		switch t.Type {
		case models.TypeIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case models.TypeExpense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
			s.CategoryExpenses[t.Category] = s.CategoryExpenses[t.Category].Add(t.Amount)
		}
	}
	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// MonthlyComparison partitions one year's transactions by calendar month.
// The result always carries all twelve months, zero-filled where no
// transactions fall.
func MonthlyComparison(txs []models.Transaction, year int) map[int]MonthTotals {
	months := make(map[int]MonthTotals, 12)
	for m := 1; m <= 12; m++ {
		months[m] = MonthTotals{Income: decimal.Zero, Expense: decimal.Zero}
	}
	for _, t := range txs {
		d, ok := txDate(t)
		if !ok || d.Year() != year {
			continue
		}
		mt := months[int(d.Month())]
		switch t.Type {
		case models.TypeIncome:
			mt.Income = mt.Income.Add(t.Amount)
		case models.TypeExpense:
			mt.Expense = mt.Expense.Add(t.Amount)
		}
		months[int(d.Month())] = mt
	}
	return months
}

// BuildMonthlyReport reduces one month's transactions into period totals and
// the category expense breakdown.
func BuildMonthlyReport(txs []models.Transaction, year, month int) MonthlyReport {
	r := MonthlyReport{
		Period:           Period{Year: year, Month: month},
		TotalIncome:      decimal.Zero,
		TotalExpense:     decimal.Zero,
		CategoryExpenses: map[string]decimal.Decimal{},
		TransactionCount: len(txs),
	}
	for _, t := range txs {
		switch t.Type {
		case models.TypeIncome:
			r.TotalIncome = r.TotalIncome.Add(t.Amount)
		case models.TypeExpense:
			r.TotalExpense = r.TotalExpense.Add(t.Amount)
			r.CategoryExpenses[t.Category] = r.CategoryExpenses[t.Category].Add(t.Amount)
		}
	}
	r.NetSavings = r.TotalIncome.Sub(r.TotalExpense)
	return r
}

// BuildYearlyReport combines the monthly partition with grand totals and the
// whole-year category breakdown.
func BuildYearlyReport(txs []models.Transaction, year int) YearlyReport {
	r := YearlyReport{
		Year:             year,
		TotalIncome:      decimal.Zero,
		TotalExpense:     decimal.Zero,
		MonthlyBreakdown: MonthlyComparison(txs, year),
		CategoryExpenses: map[string]decimal.Decimal{},
		TransactionCount: len(txs),
	}
	for _, mt := range r.MonthlyBreakdown {
		r.TotalIncome = r.TotalIncome.Add(mt.Income)
		r.TotalExpense = r.TotalExpense.Add(mt.Expense)
	}
	for _, t := range txs {
		if t.Type != models.TypeExpense {
			continue
		}
		if d, ok := txDate(t); !ok || d.Year() != year {
			continue
		}
		r.CategoryExpenses[t.Category] = r.CategoryExpenses[t.Category].Add(t.Amount)
	}
	r.NetSavings = r.TotalIncome.Sub(r.TotalExpense)
	return r
}

// SpendingTrend buckets expenses by exact calendar date. Only dates with at
// least one expense appear; there is no zero-fill.
func SpendingTrend(txs []models.Transaction) map[string]decimal.Decimal {
	trend := map[string]decimal.Decimal{}
	for _, t := range txs {
		if t.Type != models.TypeExpense {
			continue
		}
		if _, ok := txDate(t); !ok {
			continue
		}
		trend[t.Date] = trend[t.Date].Add(t.Amount)
	}
	return trend
}

// TopCategories groups expenses by category, sorts descending by total and
// truncates to limit. Ties keep first-encountered order.
func TopCategories(txs []models.Transaction, limit int) []CategoryTotal {
	index := map[string]int{}
	var totals []CategoryTotal
	for _, t := range txs {
		if t.Type != models.TypeExpense {
			continue
		}
		i, seen := index[t.Category]
		if !seen {
			index[t.Category] = len(totals)
			totals = append(totals, CategoryTotal{Category: t.Category, Amount: decimal.Zero})
			i = index[t.Category]
		}
		totals[i].Amount = totals[i].Amount.Add(t.Amount)
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Amount.GreaterThan(totals[j].Amount)
	})
	if limit >= 0 && len(totals) > limit {
		totals = totals[:limit]
	}
	return totals
}

// CategoryMatches is the budget-to-transaction category rule: trim, then
// case-fold equality.
func CategoryMatches(budgetCategory, txCategory string) bool {
	return strings.EqualFold(strings.TrimSpace(budgetCategory), strings.TrimSpace(txCategory))
}

func inBudgetWindow(b models.Budget, d time.Time) bool {
	if d.Year() != b.Year {
		return false
	}
	if b.Period == models.PeriodMonthly {
		return int(d.Month()) == b.Month
	}
	return true
}

// BudgetProgress computes spend against each budget's ceiling. Percentage is
// clamped to [0,100]; a zero ceiling reports percentage 0 while IsOverBudget
// still reflects the unclamped comparison spent > amount.
func BudgetProgress(budgets []models.Budget, txs []models.Transaction) []BudgetStatus {
	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := decimal.Zero
		for _, t := range txs {
			if t.Type != models.TypeExpense {
				continue
			}
			if !CategoryMatches(b.Category, t.Category) {
				continue
			}
			d, ok := txDate(t)
			if !ok || !inBudgetWindow(b, d) {
				continue
			}
			spent = spent.Add(t.Amount)
		}

		pct := decimal.Zero
		if !b.Amount.IsZero() {
			pct = spent.Mul(hundred).Div(b.Amount)
			if pct.GreaterThan(hundred) {
				pct = hundred
			}
			if pct.IsNegative() {
				pct = decimal.Zero
			}
		}

		statuses = append(statuses, BudgetStatus{
			BudgetID:     b.ID,
			Category:     b.Category,
			BudgetAmount: b.Amount,
			Spent:        spent,
			Remaining:    b.Amount.Sub(spent),
			Percentage:   pct,
			IsOverBudget: spent.GreaterThan(b.Amount),
		})
	}
	return statuses
}
