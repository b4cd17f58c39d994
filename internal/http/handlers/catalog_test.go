package handlers

import (
	"testing"
	"time"

	"travelsathi/internal/store"
)

func TestFilterMaxPrice(t *testing.T) {
	records := []store.Record{
		{"id": 1, "price_per_day": 45.0},
		{"id": 2, "price_per_day": "85.00"}, // DECIMAL scanned as string in backed mode
		{"id": 3, "price_per_day": 42.0},
	}

	out := filterMaxPrice(records, "50", "price_per_day")
	if len(out) != 2 {
		t.Fatalf("expected 2 records under 50, got %d", len(out))
	}

	if got := filterMaxPrice(records, "", "price_per_day"); len(got) != 3 {
		t.Fatalf("empty maxPrice should pass everything through, got %d", len(got))
	}
	if got := filterMaxPrice(records, "not-a-number", "price_per_day"); len(got) != 3 {
		t.Fatalf("unparsable maxPrice should pass everything through, got %d", len(got))
	}
}

func TestDatePortion(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"time value", time.Date(2025, 12, 15, 8, 0, 0, 0, time.UTC), "2025-12-15"},
		{"rfc3339 string", "2025-12-15T08:00:00Z", "2025-12-15"},
		{"mysql datetime string", "2025-12-15 08:00:00", "2025-12-15"},
		{"short string", "2025", "2025"},
		{"nil", nil, ""},
	}
	for _, tc := range cases {
		if got := datePortion(tc.in); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}
