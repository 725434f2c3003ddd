package budgets

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"budget_tracker/internal/api/handlers"
	"budget_tracker/internal/models"
	"budget_tracker/internal/repositories/sqlconnect"
	"budget_tracker/pkg/utils"
)

// FetchBudgets loads one owner's budgets, optionally narrowed to a year
// and/or month (0 means no constraint), ordered by category.
func FetchBudgets(ctx context.Context, db *sql.DB, userID, year, month int) ([]models.Budget, error) {
	query := "SELECT id, user_id, category, amount, period, month, year, created_at FROM budgets WHERE user_id = ?"
	args := []interface{}{userID}

	if year != 0 {
		query += " AND year = ?"
		args = append(args, year)
	}
	if month != 0 {
		query += " AND month = ?"
		args = append(args, month)
	}
	query += " ORDER BY category"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Period, &b.Month, &b.Year, &b.CreatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// FUNC TO GET ALL BUDGETS FOR A USER
func GetAllUserBudgets(w http.ResponseWriter, r *http.Request) {
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

	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	budgets, err := FetchBudgets(ctx, db, userID, year, month)
	if err != nil {
		utils.Logger.Errorf("error fetching budgets: %v", err)
		utils.WriteError(w, "error fetching budgets", http.StatusInternalServerError)
		return
	}
	if budgets == nil {
		budgets = []models.Budget{}
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"count":  len(budgets),
		"data":   budgets,
	})
}

// FUNC TO GET ONE BUDGET BY ID
func GetBudgetById(w http.ResponseWriter, r *http.Request) {
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

	budgetID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid budget ID", http.StatusBadRequest)
		return
	}

	userID, ok := handlers.UserIDFromContext(r)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var b models.Budget
	err = db.QueryRowContext(ctx, `
		SELECT id, user_id, category, amount, period, month, year, created_at
		FROM budgets WHERE id = ? AND user_id = ?
	`, budgetID, userID).Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Period, &b.Month, &b.Year, &b.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "budget not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching budget: %v", err)
		utils.WriteError(w, "error fetching budget", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   b,
	})
}

// FUNC TO CREATE OR REPLACE A BUDGET (UPSERT)
func UpsertBudgetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
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

	var b models.Budget
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&b); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	b.Normalize()
	if err := b.Validate(); err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// A matching (category, period, year, month) budget is overwritten
	// rather than duplicated.
	_, err := db.ExecContext(ctx, `
		INSERT INTO budgets (user_id, category, amount, period, month, year)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE amount = VALUES(amount)
	`, userID, b.Category, b.Amount, b.Period, b.Month, b.Year)
	if err != nil {
		utils.Logger.Errorf("failed to upsert budget: %v", err)
		utils.WriteError(w, "error saving budget", http.StatusInternalServerError)
		return
	}

	err = db.QueryRowContext(ctx, `
		SELECT id, created_at FROM budgets
		WHERE user_id = ? AND category = ? AND period = ? AND year = ? AND month = ?
	`, userID, b.Category, b.Period, b.Year, b.Month).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		utils.Logger.Errorf("failed to read back budget: %v", err)
		utils.WriteError(w, "error saving budget", http.StatusInternalServerError)
		return
	}

	b.UserID = userID

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   b,
	})
}

// FUNC TO UPDATE A BUDGET BY ID
func UpdateBudgetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	budgetID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid budget ID", http.StatusBadRequest)
		return
	}

	userID, ok := handlers.UserIDFromContext(r)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var b models.Budget
	err = db.QueryRowContext(ctx, `
		SELECT id, user_id, category, amount, period, month, year, created_at
		FROM budgets WHERE id = ? AND user_id = ?
	`, budgetID, userID).Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Period, &b.Month, &b.Year, &b.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "budget not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching budget: %v", err)
		utils.WriteError(w, "error updating budget", http.StatusInternalServerError)
		return
	}

	// Overlay the submitted fields onto the stored row, then re-validate.
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&b); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	b.ID = budgetID
	b.UserID = userID
	b.Normalize()
	if err := b.Validate(); err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, err = db.ExecContext(ctx, `
		UPDATE budgets SET category = ?, amount = ?, period = ?, month = ?, year = ?
		WHERE id = ? AND user_id = ?
	`, b.Category, b.Amount, b.Period, b.Month, b.Year, budgetID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to update budget: %v", err)
		utils.WriteError(w, "error updating budget", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   b,
	})
}

// FUNC TO DELETE A BUDGET
func DeleteBudgetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	db := sqlconnect.DB
	if db == nil {
		utils.Logger.Error("DB is not initialized")
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	budgetID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid budget ID", http.StatusBadRequest)
		return
	}

	userID, ok := handlers.UserIDFromContext(r)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ExecContext(ctx, "DELETE FROM budgets WHERE id = ? AND user_id = ?", budgetID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to delete budget: %v", err)
		utils.WriteError(w, "error deleting budget", http.StatusInternalServerError)
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		utils.Logger.Errorf("failed to read rows affected: %v", err)
		utils.WriteError(w, "error deleting budget", http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		utils.WriteError(w, "budget not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "budget deleted",
	})
}
