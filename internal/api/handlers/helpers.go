package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"budget_tracker/internal/services"
	"budget_tracker/pkg/utils"
)

// UserIDFromContext reads the owner id the JWT middleware stored on the
// request. JWT numeric claims decode as float64.
func UserIDFromContext(r *http.Request) (int, bool) {
	idFloat, ok := r.Context().Value(utils.ContextKey("userId")).(float64)
	if !ok {
		return 0, false
	}
	return int(idFloat), true
}

// FilterFromQuery builds the conjunctive transaction filter from the
// type/category/startDate/endDate query parameters. Absent parameters leave
// the corresponding field unconstrained.
func FilterFromQuery(r *http.Request) services.TransactionFilter {
	q := r.URL.Query()
	return services.TransactionFilter{
		Type:     strings.TrimSpace(q.Get("type")),
		Category: strings.TrimSpace(q.Get("category")),
		DateFrom: strings.TrimSpace(q.Get("startDate")),
		DateTo:   strings.TrimSpace(q.Get("endDate")),
	}
}

func CheckBlankFields(value interface{}) error {
	val := reflect.ValueOf(value)
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if field.Kind() == reflect.String && field.String() == "" {
			return utils.ErrorHandler(errors.New("all fields are required"), "all fields are required")
		}
	}
	return nil
}
