package utils

import (
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
	MaxLimit     = 500
)

// GetPaginationParams reads page/limit query parameters with bounded
// defaults.
func GetPaginationParams(r *http.Request) (page, limit int) {
	page = DefaultPage
	limit = DefaultLimit

	if v := r.URL.Query().Get("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 {
			limit = l
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// GetSortParams reads sortBy/sortOrder query parameters. The default list
// order is newest date first.
func GetSortParams(r *http.Request) (sortBy, sortOrder string) {
	sortBy = r.URL.Query().Get("sortBy")
	if sortBy == "" {
		sortBy = "date"
	}
	sortOrder = r.URL.Query().Get("sortOrder")
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	return sortBy, sortOrder
}
