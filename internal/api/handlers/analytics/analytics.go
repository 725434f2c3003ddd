package analytics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"budget_tracker/internal/api/handlers"
	"budget_tracker/internal/api/handlers/transactions"
	"budget_tracker/internal/models"
	"budget_tracker/internal/repositories/sqlconnect"
	"budget_tracker/internal/services"
	"budget_tracker/pkg/utils"
)

// FUNC TO COMPARE INCOME AND EXPENSES ACROSS A YEAR
func MonthlyComparisonHandler(w http.ResponseWriter, r *http.Request) {
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

	year := time.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			utils.WriteError(w, "year must be a number", http.StatusBadRequest)
			return
		}
		year = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	txs, err := handlers.FetchTransactions(ctx, db, userID, services.TransactionFilter{
		DateFrom: strconv.Itoa(year) + "-01-01",
		DateTo:   strconv.Itoa(year) + "-12-31",
	})
	if err != nil {
		utils.Logger.Errorf("error fetching transactions for comparison: %v", err)
		utils.WriteError(w, "error computing monthly comparison", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"year":   year,
		"data":   services.MonthlyComparison(txs, year),
	})
}

// FUNC TO BREAK DOWN EXPENSES BY CATEGORY
func CategoryExpensesHandler(w http.ResponseWriter, r *http.Request) {
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

	filter := transactions.FilterFromRequest(w, r)
	if filter == nil {
		return
	}
	filter.Type = models.TypeExpense
	filter.Category = ""

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	txs, err := handlers.FetchTransactions(ctx, db, userID, *filter)
	if err != nil {
		utils.Logger.Errorf("error fetching transactions for category breakdown: %v", err)
		utils.WriteError(w, "error computing category expenses", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   services.Summarize(txs).CategoryExpenses,
	})
}

// FUNC TO GET DAILY SPENDING TRENDS
func SpendingTrendsHandler(w http.ResponseWriter, r *http.Request) {
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

	months := 6
	if v := r.URL.Query().Get("months"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			utils.WriteError(w, "months must be a positive number", http.StatusBadRequest)
			return
		}
		months = n
	}

	now := time.Now()
	from := now.AddDate(0, -months, 0).Format(models.DateLayout)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	txs, err := handlers.FetchTransactions(ctx, db, userID, services.TransactionFilter{
		Type:     models.TypeExpense,
		DateFrom: from,
		DateTo:   now.Format(models.DateLayout),
	})
	if err != nil {
		utils.Logger.Errorf("error fetching transactions for trends: %v", err)
		utils.WriteError(w, "error computing spending trends", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"months": months,
		"data":   services.SpendingTrend(txs),
	})
}

// FUNC TO RANK THE TOP EXPENSE CATEGORIES
func TopCategoriesHandler(w http.ResponseWriter, r *http.Request) {
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

	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			utils.WriteError(w, "limit must be a positive number", http.StatusBadRequest)
			return
		}
		limit = n
	}

	filter := transactions.FilterFromRequest(w, r)
	if filter == nil {
		return
	}
	filter.Type = models.TypeExpense
	filter.Category = ""

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	txs, err := handlers.FetchTransactions(ctx, db, userID, *filter)
	if err != nil {
		utils.Logger.Errorf("error fetching transactions for top categories: %v", err)
		utils.WriteError(w, "error computing top categories", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   services.TopCategories(txs, limit),
	})
}
