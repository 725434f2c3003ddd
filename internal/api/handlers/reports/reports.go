package reports

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"budget_tracker/internal/api/handlers"
	"budget_tracker/internal/api/handlers/transactions"
	"budget_tracker/internal/repositories/sqlconnect"
	"budget_tracker/internal/services"
	"budget_tracker/pkg/utils"
)

// FUNC TO EXPORT TRANSACTIONS AS CSV
func ExportCSVHandler(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	txs, err := handlers.FetchTransactions(ctx, db, userID, *filter)
	if err != nil {
		utils.Logger.Errorf("error fetching transactions for export: %v", err)
		utils.WriteError(w, "error exporting transactions", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("transactions-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write([]byte(services.TransactionsCSV(txs)))
}

// FUNC TO BUILD THE MONTHLY REPORT
func MonthlyReportHandler(w http.ResponseWriter, r *http.Request) {
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

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		utils.WriteError(w, "year is required and must be a number", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		utils.WriteError(w, "month is required and must be between 1 and 12", http.StatusBadRequest)
		return
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	txs, err := handlers.FetchTransactions(ctx, db, userID, services.TransactionFilter{
		DateFrom: first.Format("2006-01-02"),
		DateTo:   last.Format("2006-01-02"),
	})
	if err != nil {
		utils.Logger.Errorf("error fetching transactions for monthly report: %v", err)
		utils.WriteError(w, "error building monthly report", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   services.BuildMonthlyReport(txs, year, month),
	})
}

// FUNC TO BUILD THE YEARLY REPORT
func YearlyReportHandler(w http.ResponseWriter, r *http.Request) {
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

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		utils.WriteError(w, "year is required and must be a number", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	txs, err := handlers.FetchTransactions(ctx, db, userID, services.TransactionFilter{
		DateFrom: fmt.Sprintf("%04d-01-01", year),
		DateTo:   fmt.Sprintf("%04d-12-31", year),
	})
	if err != nil {
		utils.Logger.Errorf("error fetching transactions for yearly report: %v", err)
		utils.WriteError(w, "error building yearly report", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]interface{}{
		"status": "success",
		"data":   services.BuildYearlyReport(txs, year),
	})
}
