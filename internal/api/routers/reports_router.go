package routers

import (
	"net/http"

	"budget_tracker/internal/api/handlers/reports"
)

func reportsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/reports/export/csv", reports.ExportCSVHandler)
	mux.HandleFunc("/reports/monthly", reports.MonthlyReportHandler)
	mux.HandleFunc("/reports/yearly", reports.YearlyReportHandler)

	return mux
}
