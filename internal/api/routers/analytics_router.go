package routers

import (
	"net/http"

	"budget_tracker/internal/api/handlers/analytics"
)

func analyticsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/analytics/monthly-comparison", analytics.MonthlyComparisonHandler)
	mux.HandleFunc("/analytics/category-expenses", analytics.CategoryExpensesHandler)
	mux.HandleFunc("/analytics/spending-trends", analytics.SpendingTrendsHandler)
	mux.HandleFunc("/analytics/top-categories", analytics.TopCategoriesHandler)

	return mux
}
