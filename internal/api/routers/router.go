package routers

import (
	"net/http"
)

func MainRouter() *http.ServeMux {

	mux := http.NewServeMux()

	uRouter := usersRouter()
	mux.Handle("/users/", uRouter)

	tRouter := transactionsRouter()
	mux.Handle("/transactions", tRouter)
	mux.Handle("/transactions/", tRouter)

	bRouter := budgetsRouter()
	mux.Handle("/budgets", bRouter)
	mux.Handle("/budgets/", bRouter)

	aRouter := analyticsRouter()
	mux.Handle("/analytics/", aRouter)

	rRouter := reportsRouter()
	mux.Handle("/reports/", rRouter)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	return mux
}
