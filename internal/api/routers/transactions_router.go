package routers

import (
	"net/http"

	"budget_tracker/internal/api/handlers/transactions"
)

func transactionsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /transactions", transactions.GetAllUserTransactions)
	mux.HandleFunc("POST /transactions", transactions.CreateTransactionHandler)

	mux.HandleFunc("GET /transactions/summary", transactions.GetSummaryHandler)
	mux.HandleFunc("GET /transactions/categories", transactions.GetCategoriesHandler)

	mux.HandleFunc("GET /transactions/{id}", transactions.GetTransactionById)
	mux.HandleFunc("PUT /transactions/{id}", transactions.UpdateTransactionHandler)
	mux.HandleFunc("DELETE /transactions/{id}", transactions.DeleteTransactionHandler)

	return mux
}
