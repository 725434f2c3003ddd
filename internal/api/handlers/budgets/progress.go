package budgets

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"budget_tracker/internal/api/handlers"
	"budget_tracker/internal/models"
	"budget_tracker/internal/repositories/sqlconnect"
	"budget_tracker/internal/services"
	"budget_tracker/pkg/utils"
)

// FUNC TO GET BUDGET PROGRESS FOR A MONTH
func GetBudgetProgressHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	userID, ok := handlers.UserIDFromContext(r)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			utils.WriteError(w, "year must be a number", http.StatusBadRequest)
			return
		}
		year = n
	}
	if v := r.URL.Query().Get("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			utils.WriteError(w, "month must be between 1 and 12", http.StatusBadRequest)
			return
		}
		month = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	all, err := FetchBudgets(ctx, db, userID, year, 0)
	if err != nil {
		utils.Logger.Errorf("error fetching budgets for progress: %v", err)
		utils.WriteError(w, "error computing budget progress", http.StatusInternalServerError)
		return
	}

	// Yearly budgets always apply; monthly ones only for the requested month.
	budgets := all[:0]
	for _, b := range all {
		if b.Period == models.PeriodYearly || b.Month == month {
			budgets = append(budgets, b)
		}
	}

	txs, err := handlers.FetchTransactions(ctx, db, userID, services.TransactionFilter{
		Type:     models.TypeExpense,
		DateFrom: fmt.Sprintf("%04d-01-01", year),
		DateTo:   fmt.Sprintf("%04d-12-31", year),
	})
	if err != nil {
		utils.Logger.Errorf("error fetching transactions for progress: %v", err)
		utils.WriteError(w, "error computing budget progress", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"period": map[string]int{"year": year, "month": month},
		"data":   services.BudgetProgress(budgets, txs),
	})
}
