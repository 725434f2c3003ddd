package transactions

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
	"budget_tracker/internal/services"
	"budget_tracker/pkg/utils"
)

// FUNC TO GET ALL TRANSACTIONS FOR A USER
func GetAllUserTransactions(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	transactions, err := handlers.FetchTransactions(ctx, db, userID, *filter)
	if err != nil {
		utils.Logger.Errorf("error fetching transactions: %v", err)
		utils.WriteError(w, "error fetching transactions", http.StatusInternalServerError)
		return
	}

	// Search, sort and paginate in memory so the endpoint can serve the
	// frontend's search-as-you-type box directly.
	transactions = services.Search(transactions, r.URL.Query().Get("search"))
	sortBy, sortOrder := utils.GetSortParams(r)
	transactions = services.SortTransactions(transactions, sortBy, sortOrder)

	total := len(transactions)
	page, limit := utils.GetPaginationParams(r)
	transactions = services.Paginate(transactions, page, limit)

	response := struct {
		Status   string               `json:"status"`
		Count    int                  `json:"count"`
		Total    int                  `json:"total"`
		Page     int                  `json:"page"`
		PageSize int                  `json:"page_size"`
		Data     []models.Transaction `json:"data"`
	}{
		Status:   "success",
		Count:    len(transactions),
		Total:    total,
		Page:     page,
		PageSize: limit,
		Data:     transactions,
	}

	utils.WriteJSON(w, response)
}

// FilterFromRequest validates the filter query parameters, writing a 400 and
// returning nil when they are malformed.
func FilterFromRequest(w http.ResponseWriter, r *http.Request) *services.TransactionFilter {
	f := handlers.FilterFromQuery(r)
	if f.Type != "" && f.Type != models.TypeIncome && f.Type != models.TypeExpense {
		utils.WriteError(w, "type must be 'income' or 'expense'", http.StatusBadRequest)
		return nil
	}
	for _, d := range []string{f.DateFrom, f.DateTo} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(models.DateLayout, d); err != nil {
			utils.WriteError(w, "dates must be in YYYY-MM-DD format", http.StatusBadRequest)
			return nil
		}
	}
	return &f
}

// FUNC TO GET ONE TRANSACTION BY ID
func GetTransactionById(w http.ResponseWriter, r *http.Request) {
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

	transactionID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid transaction ID", http.StatusBadRequest)
		return
	}

	userID, ok := handlers.UserIDFromContext(r)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var t models.Transaction
	err = db.QueryRowContext(ctx, `
		SELECT id, user_id, description, amount, type, category, DATE_FORMAT(date, '%Y-%m-%d'), created_at
		FROM transactions WHERE id = ? AND user_id = ?
	`, transactionID, userID).Scan(&t.ID, &t.UserID, &t.Description, &t.Amount, &t.Type, &t.Category, &t.Date, &t.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.WriteError(w, "transaction not found", http.StatusNotFound)
			return
		}
		utils.Logger.Errorf("error fetching transaction: %v", err)
		utils.WriteError(w, "error fetching transaction", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   t,
	})
}

// FUNC TO CREATE A TRANSACTION
func CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
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

	var t models.Transaction
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&t); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	t.Normalize()
	if err := t.Validate(); err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ExecContext(ctx, `
		INSERT INTO transactions (user_id, description, amount, type, category, date)
		VALUES (?, ?, ?, ?, ?, ?)
	`, userID, t.Description, t.Amount, t.Type, t.Category, t.Date)
	if err != nil {
		utils.Logger.Errorf("failed to insert transaction: %v", err)
		utils.WriteError(w, "error creating transaction", http.StatusInternalServerError)
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		utils.Logger.Errorf("failed to get last insert ID: %v", err)
		utils.WriteError(w, "error creating transaction", http.StatusInternalServerError)
		return
	}

	t.ID = int(id)
	t.UserID = userID

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"data":   t,
	})
}

// FUNC TO UPDATE A TRANSACTION
func UpdateTransactionHandler(w http.ResponseWriter, r *http.Request) {
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

	transactionID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid transaction ID", http.StatusBadRequest)
		return
	}

	userID, ok := handlers.UserIDFromContext(r)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var t models.Transaction
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&t); err != nil {
		utils.WriteError(w, "invalid or unexpected fields in body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	t.Normalize()
	if err := t.Validate(); err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Owner never changes on update.
	res, err := db.ExecContext(ctx, `
		UPDATE transactions
		SET description = ?, amount = ?, type = ?, category = ?, date = ?
		WHERE id = ? AND user_id = ?
	`, t.Description, t.Amount, t.Type, t.Category, t.Date, transactionID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to update transaction: %v", err)
		utils.WriteError(w, "error updating transaction", http.StatusInternalServerError)
		return
	}

	var exists bool
	if affected, err := res.RowsAffected(); err == nil && affected > 0 {
		exists = true
	} else {
		// RowsAffected is 0 for a no-op update of an owned row too, so
		// double-check before reporting not found.
		err = db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM transactions WHERE id = ? AND user_id = ?)", transactionID, userID).Scan(&exists)
		if err != nil {
			utils.Logger.Errorf("failed to check transaction ownership: %v", err)
			utils.WriteError(w, "error updating transaction", http.StatusInternalServerError)
			return
		}
	}
	if !exists {
		utils.WriteError(w, "transaction not found", http.StatusNotFound)
		return
	}

	t.ID = transactionID
	t.UserID = userID

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   t,
	})
}

// FUNC TO DELETE A TRANSACTION
func DeleteTransactionHandler(w http.ResponseWriter, r *http.Request) {
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

	transactionID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid transaction ID", http.StatusBadRequest)
		return
	}

	userID, ok := handlers.UserIDFromContext(r)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ? AND user_id = ?", transactionID, userID)
	if err != nil {
		utils.Logger.Errorf("failed to delete transaction: %v", err)
		utils.WriteError(w, "error deleting transaction", http.StatusInternalServerError)
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		utils.Logger.Errorf("failed to read rows affected: %v", err)
		utils.WriteError(w, "error deleting transaction", http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		utils.WriteError(w, "transaction not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status":  "success",
		"message": "transaction deleted",
	})
}
