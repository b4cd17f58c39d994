package store

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"time"
)

// SQL is the backed-mode store over a pooled MySQL connection.
type SQL struct {
	db *sql.DB
}

func NewSQL(db *sql.DB) *SQL {
	return &SQL{db: db}
}

func (s *SQL) Mode() Mode { return ModeBacked }

func (s *SQL) Close() error { return s.db.Close() }

func (s *SQL) FindAll(ctx context.Context, table string) ([]Record, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+table+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (s *SQL) FindByID(ctx context.Context, table string, id any) (Record, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	recs, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNotFound
	}
	return recs[0], nil
}

func (s *SQL) FindWhere(ctx context.Context, table string, q Query) ([]Record, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("SELECT * FROM " + table + " WHERE 1=1")
	args := []any{}

	for _, key := range sortedKeys(q.Where) {
		if err := checkColumn(table, key); err != nil {
			return nil, err
		}
		b.WriteString(" AND " + key + " = ?")
		args = append(args, q.Where[key])
	}
	for _, key := range sortedLikeKeys(q.Like) {
		if err := checkColumn(table, key); err != nil {
			return nil, err
		}
		b.WriteString(" AND " + key + " LIKE ?")
		args = append(args, "%"+q.Like[key]+"%")
	}
	if q.OrderBy != "" {
		if err := checkColumn(table, q.OrderBy); err != nil {
			return nil, err
		}
		b.WriteString(" ORDER BY " + q.OrderBy)
		if q.Desc {
			b.WriteString(" DESC")
		}
	}

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (s *SQL) Insert(ctx context.Context, table string, data Record) (Record, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}
	if err := checkColumns(table, data); err != nil {
		return nil, err
	}

	keys := sortedKeys(data)
	placeholders := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, k := range keys {
		placeholders[i] = "?"
		args[i] = data[k]
	}

	query := "INSERT INTO " + table + " (" + strings.Join(keys, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	out := cloneRecord(data)
	if _, ok := out["id"]; !ok {
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		out["id"] = id
	}
	return out, nil
}

func (s *SQL) Update(ctx context.Context, table string, id any, data Record) (Record, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}
	if err := checkColumns(table, data); err != nil {
		return nil, err
	}

	keys := sortedKeys(data)
	sets := make([]string, len(keys))
	args := make([]any, 0, len(keys)+1)
	for i, k := range keys {
		sets[i] = k + " = ?"
		args = append(args, data[k])
	}
	args = append(args, id)

	if _, err := s.db.ExecContext(ctx, "UPDATE "+table+" SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return nil, err
	}

	// Re-fetch so a no-op update (zero rows affected with the row present) is
	// still distinguishable from a missing row.
	rec, err := s.FindByID(ctx, table, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *SQL) Delete(ctx context.Context, table string, id any) error {
	if err := checkTable(table); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []Record{}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec := make(Record, len(columns))
		for i, col := range columns {
			rec[col] = normalizeValue(values[i])
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// normalizeValue keeps scanned values JSON-friendly. The MySQL driver hands
// back VARCHAR/TEXT/DECIMAL columns as []byte.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case time.Time:
		return x
	default:
		return v
	}
}

func cloneRecord(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// sortedKeys makes the generated SQL deterministic for a given filter set.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedLikeKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
