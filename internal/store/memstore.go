package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Memory is the fallback-mode store: named in-process collections seeded with
// sample data. A single mutex serializes access since the server handles
// requests concurrently.
type Memory struct {
	mu     sync.Mutex
	tables map[string][]Record
	nextID map[string]int64
}

func NewMemory() *Memory {
	m := &Memory{
		tables: make(map[string][]Record),
		nextID: make(map[string]int64),
	}
	for table := range tableColumns {
		m.tables[table] = []Record{}
	}
	for table, records := range seedRecords() {
		m.tables[table] = records
	}
	for table, records := range m.tables {
		m.nextID[table] = int64(len(records)) + 1
	}
	return m
}

func (m *Memory) Mode() Mode { return ModeMemory }

func (m *Memory) Close() error { return nil }

func (m *Memory) FindAll(_ context.Context, table string) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.collection(table)
	if err != nil {
		return nil, err
	}
	return copyRecords(records), nil
}

func (m *Memory) FindByID(_ context.Context, table string, id any) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.collection(table)
	if err != nil {
		return nil, err
	}
	idx := indexByID(records, id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	return cloneRecord(records[idx]), nil
}

func (m *Memory) FindWhere(_ context.Context, table string, q Query) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.collection(table)
	if err != nil {
		return nil, err
	}
	for key := range q.Where {
		if err := checkColumn(table, key); err != nil {
			return nil, err
		}
	}
	for key := range q.Like {
		if err := checkColumn(table, key); err != nil {
			return nil, err
		}
	}
	if q.OrderBy != "" {
		if err := checkColumn(table, q.OrderBy); err != nil {
			return nil, err
		}
	}

	filtered := []Record{}
	for _, rec := range records {
		if matches(rec, q) {
			filtered = append(filtered, cloneRecord(rec))
		}
	}

	if q.OrderBy != "" {
		sort.SliceStable(filtered, func(i, j int) bool {
			less := lessValue(filtered[i][q.OrderBy], filtered[j][q.OrderBy])
			if q.Desc {
				return !less
			}
			return less
		})
	}
	return filtered, nil
}

func (m *Memory) Insert(_ context.Context, table string, data Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.collection(table)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(table, data); err != nil {
		return nil, err
	}

	rec := cloneRecord(data)
	if _, ok := rec["id"]; !ok {
		rec["id"] = m.nextID[table]
		m.nextID[table]++
	}
	m.tables[table] = append(records, rec)
	return cloneRecord(rec), nil
}

func (m *Memory) Update(_ context.Context, table string, id any, data Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.collection(table)
	if err != nil {
		return nil, err
	}
	if err := checkColumns(table, data); err != nil {
		return nil, err
	}
	idx := indexByID(records, id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	for k, v := range data {
		records[idx][k] = v
	}
	return cloneRecord(records[idx]), nil
}

func (m *Memory) Delete(_ context.Context, table string, id any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	records, err := m.collection(table)
	if err != nil {
		return err
	}
	idx := indexByID(records, id)
	if idx < 0 {
		return ErrNotFound
	}
	m.tables[table] = append(records[:idx], records[idx+1:]...)
	return nil
}

func (m *Memory) collection(table string) ([]Record, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}
	return m.tables[table], nil
}

// indexByID compares ids loosely so a path parameter "3" still finds the
// record whose id is the integer 3.
func indexByID(records []Record, id any) int {
	for i, rec := range records {
		if looseEqual(rec["id"], id) {
			return i
		}
	}
	return -1
}

func matches(rec Record, q Query) bool {
	for key, want := range q.Where {
		if !looseEqual(rec[key], want) {
			return false
		}
	}
	for key, sub := range q.Like {
		v, ok := rec[key]
		if !ok || v == nil {
			return false
		}
		if !strings.Contains(strings.ToLower(AsString(v)), strings.ToLower(sub)) {
			return false
		}
	}
	return true
}

func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	fa, okA := AsFloat(a)
	fb, okB := AsFloat(b)
	if okA && okB {
		return fa == fb
	}
	return AsString(a) == AsString(b)
}

// lessValue orders two field values by their natural type: numerically when
// both sides parse as numbers, otherwise lexically.
func lessValue(a, b any) bool {
	fa, okA := AsFloat(a)
	fb, okB := AsFloat(b)
	if okA && okB {
		return fa < fb
	}
	return AsString(a) < AsString(b)
}

// AsFloat reads a numeric field value regardless of backend representation:
// the MySQL driver yields DECIMAL columns as byte slices, JSON bodies yield
// float64, memory seeds hold native Go numbers.
func AsFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	case []byte:
		f, err := strconv.ParseFloat(string(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// AsString renders a field value for comparisons and display.
func AsString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

func copyRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		out[i] = cloneRecord(rec)
	}
	return out
}
