package store

import (
	"context"
	"errors"
	"fmt"
)

// Mode reports which backend a Store instance runs against. The decision is
// made once at startup and never re-evaluated.
type Mode string

const (
	ModeBacked Mode = "backed"
	ModeMemory Mode = "memory"
)

var (
	// ErrNotFound is returned when no record matches the given id. Update and
	// Delete report it in both modes when zero rows are affected.
	ErrNotFound = errors.New("record not found")

	ErrUnknownTable  = errors.New("unknown table")
	ErrUnknownColumn = errors.New("unknown column")
)

// Record is one row of a collection. Keys are the SQL column names in both
// storage modes.
type Record map[string]any

// Query narrows a FindWhere call. Where entries match exactly, Like entries
// match case-insensitive substrings. OrderBy sorts ascending by the named
// column unless Desc is set. Empty filters return the full collection.
type Query struct {
	Where   map[string]any
	Like    map[string]string
	OrderBy string
	Desc    bool
}

// Store is the generic record store. Both backends implement the same
// contract so route handlers never know which mode the process runs in.
type Store interface {
	FindAll(ctx context.Context, table string) ([]Record, error)
	FindByID(ctx context.Context, table string, id any) (Record, error)
	FindWhere(ctx context.Context, table string, q Query) ([]Record, error)
	Insert(ctx context.Context, table string, data Record) (Record, error)
	Update(ctx context.Context, table string, id any, data Record) (Record, error)
	Delete(ctx context.Context, table string, id any) error
	Mode() Mode
	Close() error
}

// tableColumns enumerates the permitted tables and their columns. Table and
// column names are interpolated into SQL text, so anything outside this map
// is rejected before a query is built.
var tableColumns = map[string]map[string]struct{}{
	"users":     cols("id", "name", "email", "phone", "password", "role", "created_at"),
	"locations": cols("id", "name", "created_at"),
	"cars":      cols("id", "model", "brand", "location", "price_per_day", "car_type", "description", "seating_capacity", "available_cars", "created_at"),
	"flights":   cols("id", "airline", "flight_number", "origin", "destination", "departure_time", "arrival_time", "price", "available_seats", "created_at"),
	"hotels":    cols("id", "name", "location", "rating", "price_per_night", "description", "image", "created_at"),
	"bookings":  cols("id", "user_id", "type", "item_id", "num_persons", "total_amount", "booking_date", "status"),
	"payments":  cols("id", "booking_id", "user_id", "amount", "payment_method", "payment_date", "status"),
}

func cols(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

func checkTable(table string) error {
	if _, ok := tableColumns[table]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	return nil
}

func checkColumn(table, column string) error {
	set, ok := tableColumns[table]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	if _, ok := set[column]; !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownColumn, table, column)
	}
	return nil
}

func checkColumns(table string, data Record) error {
	for k := range data {
		if err := checkColumn(table, k); err != nil {
			return err
		}
	}
	return nil
}
