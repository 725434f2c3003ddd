package utils

import (
	"net/http/httptest"
	"testing"
)

func TestGetPaginationParams(t *testing.T) {
	cases := []struct {
		url       string
		wantPage  int
		wantLimit int
	}{
		{"/transactions", DefaultPage, DefaultLimit},
		{"/transactions?page=3&limit=25", 3, 25},
		{"/transactions?page=0&limit=-5", DefaultPage, DefaultLimit},
		{"/transactions?page=abc&limit=xyz", DefaultPage, DefaultLimit},
		{"/transactions?limit=9999", DefaultPage, MaxLimit},
	}

	for _, c := range cases {
		r := httptest.NewRequest("GET", c.url, nil)
		page, limit := GetPaginationParams(r)
		if page != c.wantPage || limit != c.wantLimit {
			t.Errorf("%s: got (%d, %d), want (%d, %d)", c.url, page, limit, c.wantPage, c.wantLimit)
		}
	}
}

func TestGetSortParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/transactions", nil)
	sortBy, sortOrder := GetSortParams(r)
	if sortBy != "date" || sortOrder != "desc" {
		t.Errorf("defaults: got (%s, %s), want (date, desc)", sortBy, sortOrder)
	}

	r = httptest.NewRequest("GET", "/transactions?sortBy=amount&sortOrder=asc", nil)
	sortBy, sortOrder = GetSortParams(r)
	if sortBy != "amount" || sortOrder != "asc" {
		t.Errorf("got (%s, %s), want (amount, asc)", sortBy, sortOrder)
	}

	r = httptest.NewRequest("GET", "/transactions?sortOrder=upwards", nil)
	_, sortOrder = GetSortParams(r)
	if sortOrder != "desc" {
		t.Errorf("unknown order should fall back to desc, got %s", sortOrder)
	}
}
