package routers

import (
	"net/http"

	"budget_tracker/internal/api/handlers/budgets"
)

func budgetsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /budgets", budgets.GetAllUserBudgets)
	mux.HandleFunc("POST /budgets", budgets.UpsertBudgetHandler)

	mux.HandleFunc("GET /budgets/progress", budgets.GetBudgetProgressHandler)

	mux.HandleFunc("GET /budgets/{id}", budgets.GetBudgetById)
	mux.HandleFunc("PUT /budgets/{id}", budgets.UpdateBudgetHandler)
	mux.HandleFunc("DELETE /budgets/{id}", budgets.DeleteBudgetHandler)

	return mux
}
