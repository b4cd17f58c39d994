package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newSQLMock(t *testing.T) (*SQL, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSQL(db), mock
}

func TestSQLFindAllOrdersByID(t *testing.T) {
	s, mock := newSQLMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM cars ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "model", "price_per_day"}).
			AddRow(1, []byte("Camry"), []byte("45.00")).
			AddRow(2, []byte("Civic"), []byte("42.00")))

	cars, err := s.FindAll(context.Background(), "cars")
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(cars) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(cars))
	}
	if cars[0]["model"] != "Camry" {
		t.Fatalf("byte column not normalized to string: %#v", cars[0]["model"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLFindWhereBuildsFilters(t *testing.T) {
	s, mock := newSQLMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM hotels WHERE 1=1 AND location LIKE ? ORDER BY price_per_night")).
		WithArgs("%new%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location"}).
			AddRow(1, []byte("Grand Plaza Hotel"), []byte("New York")))

	hotels, err := s.FindWhere(context.Background(), "hotels", Query{
		Like:    map[string]string{"location": "new"},
		OrderBy: "price_per_night",
	})
	if err != nil {
		t.Fatalf("FindWhere: %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("expected 1 row, got %d", len(hotels))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLFindWhereEqualityAndDescOrder(t *testing.T) {
	s, mock := newSQLMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM bookings WHERE 1=1 AND user_id = ? ORDER BY booking_date DESC")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "status"}).
			AddRow([]byte("b2"), []byte("u1"), []byte("CONFIRMED")).
			AddRow([]byte("b1"), []byte("u1"), []byte("CONFIRMED")))

	bookings, err := s.FindWhere(context.Background(), "bookings", Query{
		Where:   map[string]any{"user_id": "u1"},
		OrderBy: "booking_date",
		Desc:    true,
	})
	if err != nil {
		t.Fatalf("FindWhere: %v", err)
	}
	if len(bookings) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(bookings))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLFindByIDNotFound(t *testing.T) {
	s, mock := newSQLMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM flights WHERE id = ?")).
		WithArgs("42").
		WillReturnRows(sqlmock.NewRows([]string{"id", "airline"}))

	if _, err := s.FindByID(context.Background(), "flights", "42"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLInsertBackendAssignedID(t *testing.T) {
	s, mock := newSQLMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO hotels (location, name, price_per_night) VALUES (?, ?, ?)")).
		WithArgs("Miami", "City Center Inn", 129.99).
		WillReturnResult(sqlmock.NewResult(6, 1))

	rec, err := s.Insert(context.Background(), "hotels", Record{
		"name": "City Center Inn", "location": "Miami", "price_per_night": 129.99,
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if rec["id"] != int64(6) {
		t.Fatalf("expected backend-assigned id 6, got %v", rec["id"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLInsertKeepsCallerSuppliedID(t *testing.T) {
	s, mock := newSQLMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (email, id, name, password, role) VALUES (?, ?, ?, ?, ?)")).
		WithArgs("alice@example.com", "u-abc", "Alice", "hash", "USER").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec, err := s.Insert(context.Background(), "users", Record{
		"id": "u-abc", "name": "Alice", "email": "alice@example.com", "password": "hash", "role": "USER",
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if rec["id"] != "u-abc" {
		t.Fatalf("caller-supplied id replaced: %v", rec["id"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLUpdateMissingRowReportsNotFound(t *testing.T) {
	s, mock := newSQLMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cars SET location = ? WHERE id = ?")).
		WithArgs("Boston", "99").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM cars WHERE id = ?")).
		WithArgs("99").
		WillReturnRows(sqlmock.NewRows([]string{"id", "location"}))

	if _, err := s.Update(context.Background(), "cars", "99", Record{"location": "Boston"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLDeleteZeroRowsReportsNotFound(t *testing.T) {
	s, mock := newSQLMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cars WHERE id = ?")).
		WithArgs("99").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.Delete(context.Background(), "cars", "99"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cars WHERE id = ?")).
		WithArgs("1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Delete(context.Background(), "cars", "1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLRejectsUnknownTableAndColumn(t *testing.T) {
	s, _ := newSQLMock(t)
	ctx := context.Background()

	if _, err := s.FindAll(ctx, "users; DROP TABLE users"); !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
	if _, err := s.FindWhere(ctx, "cars", Query{OrderBy: "price_per_day; --"}); !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
	if _, err := s.Insert(ctx, "cars", Record{"model": "X", "evil) VALUES (1); --": 1}); !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
}
