package transactions

import (
	"context"
	"net/http"
	"time"

	"budget_tracker/internal/api/handlers"
	"budget_tracker/internal/repositories/sqlconnect"
	"budget_tracker/internal/services"
	"budget_tracker/pkg/utils"
)

// FUNC TO GET THE TRANSACTIONS SUMMARY
func GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
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

	filter := FilterFromRequest(w, r)
	if filter == nil {
		return
	}
	// The summary covers both types; only the date bounds narrow it.
	filter.Type = ""
	filter.Category = ""

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	txs, err := handlers.FetchTransactions(ctx, db, userID, *filter)
	if err != nil {
		utils.Logger.Errorf("error fetching transactions for summary: %v", err)
		utils.WriteError(w, "error computing summary", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   services.Summarize(txs),
	})
}

// FUNC TO LIST DISTINCT CATEGORIES
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	rows, err := db.QueryContext(ctx, "SELECT DISTINCT category FROM transactions WHERE user_id = ? ORDER BY category", userID)
	if err != nil {
		utils.Logger.Errorf("error fetching categories: %v", err)
		utils.WriteError(w, "error fetching categories", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			utils.Logger.Errorf("error scanning category: %v", err)
			utils.WriteError(w, "error fetching categories", http.StatusInternalServerError)
			return
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		utils.Logger.Errorf("error iterating categories: %v", err)
		utils.WriteError(w, "error fetching categories", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   categories,
	})
}
