package handlers

import (
	"context"
	"database/sql"

	"budget_tracker/internal/models"
	"budget_tracker/internal/services"
)

// FetchTransactions loads one owner's transactions, newest date first,
// narrowed by the optional filter fields. Every aggregate endpoint goes
// through here so owner scoping cannot be forgotten.
func FetchTransactions(ctx context.Context, db *sql.DB, userID int, f services.TransactionFilter) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, description, amount, type, category, DATE_FORMAT(date, '%Y-%m-%d'), created_at
		FROM transactions
		WHERE user_id = ?
	`
	args := []interface{}{userID}

	if f.Type != "" {
		query += " AND type = ?"
		args = append(args, f.Type)
	}
	if f.Category != "" {
		query += " AND category = ?"
		args = append(args, f.Category)
	}
	if f.DateFrom != "" {
		query += " AND date >= ?"
		args = append(args, f.DateFrom)
	}
	if f.DateTo != "" {
		query += " AND date <= ?"
		args = append(args, f.DateTo)
	}

	query += " ORDER BY date DESC, id DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Amount, &t.Type, &t.Category, &t.Date, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
