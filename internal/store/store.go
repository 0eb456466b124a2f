// Package store implements a small in-memory record store: named tables of
// typed records with auto-incrementing integer IDs, managed timestamps and
// JSON snapshot export/import. It is deliberately a toy table abstraction —
// no indexing, no constraints beyond ID uniqueness, no persistence.
package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Meta carries the store-managed fields of every record. Domain entities embed
// it so the generic table can assign IDs and refresh timestamps without any
// schema awareness.
type Meta struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordMeta returns the managed fields. It exists so *T satisfies Record[T]
// through Meta embedding.
func (m *Meta) RecordMeta() *Meta { return m }

// Record constrains table element pointers to struct types embedding Meta.
type Record[T any] interface {
	*T
	RecordMeta() *Meta
}

// Database is the process-wide collection of named tables. One RWMutex
// serializes access to every table; operations are short and never block on
// I/O, so a single lock is enough.
type Database struct {
	mu     sync.RWMutex
	tables map[string]snapshotTable
}

// snapshotTable is the untyped view of a table used for export/import and
// counting. Implementations assume the database mutex is already held.
type snapshotTable interface {
	exportLocked() (json.RawMessage, int, error)
	importLocked(rows json.RawMessage, nextID int) error
	resetLocked()
	countLocked() int
}

// NewDatabase creates an empty database with no tables.
func NewDatabase() *Database {
	return &Database{tables: make(map[string]snapshotTable)}
}

// Table is a typed, ordered collection of records inside a Database.
// Records are stored and returned by value; callers never hold a reference
// into the table's backing slice.
type Table[T any, P Record[T]] struct {
	db     *Database
	name   string
	rows   []T
	nextID int
}

// TableOf registers a typed table under name, or returns the existing one.
// Registering the same name with a different record type is a programming
// error and panics.
func TableOf[T any, P Record[T]](db *Database, name string) *Table[T, P] {
	db.mu.Lock()
	defer db.mu.Unlock()

	if existing, ok := db.tables[name]; ok {
		t, ok := existing.(*Table[T, P])
		if !ok {
			panic(fmt.Sprintf("store: table %q already registered with a different record type", name))
		}
		return t
	}

	t := &Table[T, P]{db: db, name: name}
	db.tables[name] = t
	return t
}

// Name returns the table name.
func (t *Table[T, P]) Name() string { return t.name }

// Insert assigns the next ID (starting at 1, strictly increasing), stamps both
// timestamps and appends the record. The stored record is returned.
func (t *Table[T, P]) Insert(v T) T {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	t.nextID++
	now := time.Now()
	m := P(&v).RecordMeta()
	m.ID = t.nextID
	m.CreatedAt = now
	m.UpdatedAt = now

	t.rows = append(t.rows, v)
	return v
}

// FindAll returns records in insertion order starting at offset skip, at most
// limit of them. Out-of-range values yield whatever is available.
func (t *Table[T, P]) FindAll(skip, limit int) []T {
	t.db.mu.RLock()
	defer t.db.mu.RUnlock()

	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if skip >= len(t.rows) {
		return []T{}
	}
	end := skip + limit
	if end > len(t.rows) {
		end = len(t.rows)
	}
	out := make([]T, end-skip)
	copy(out, t.rows[skip:end])
	return out
}

// All returns every record in insertion order.
func (t *Table[T, P]) All() []T {
	t.db.mu.RLock()
	defer t.db.mu.RUnlock()

	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

// FindByID returns the record with the given ID, or false when absent.
// Absence is never an error at this layer.
func (t *Table[T, P]) FindByID(id int) (T, bool) {
	t.db.mu.RLock()
	defer t.db.mu.RUnlock()

	for i := range t.rows {
		if P(&t.rows[i]).RecordMeta().ID == id {
			return t.rows[i], true
		}
	}
	var zero T
	return zero, false
}

// Find returns all records matching pred, preserving insertion order. It is
// the generic form of find-by-field: the caller supplies the equality check.
func (t *Table[T, P]) Find(pred func(T) bool) []T {
	t.db.mu.RLock()
	defer t.db.mu.RUnlock()

	out := []T{}
	for i := range t.rows {
		if pred(t.rows[i]) {
			out = append(out, t.rows[i])
		}
	}
	return out
}

// Update locates the record by ID and applies mutate to a copy of it. ID and
// CreatedAt survive whatever the mutator does; UpdatedAt is refreshed to a
// strictly greater value. Returns false when the ID is absent — no upsert.
func (t *Table[T, P]) Update(id int, mutate func(*T)) (T, bool) {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	for i := range t.rows {
		orig := P(&t.rows[i]).RecordMeta()
		if orig.ID != id {
			continue
		}

		updated := t.rows[i]
		mutate(&updated)

		m := P(&updated).RecordMeta()
		m.ID = orig.ID
		m.CreatedAt = orig.CreatedAt
		now := time.Now()
		// Coarse clocks can report the same instant twice; UpdatedAt must
		// strictly increase across successive updates.
		if !now.After(orig.UpdatedAt) {
			now = orig.UpdatedAt.Add(time.Nanosecond)
		}
		m.UpdatedAt = now

		t.rows[i] = updated
		return updated, true
	}

	var zero T
	return zero, false
}

// Delete removes the record with the given ID and reports whether a removal
// occurred.
func (t *Table[T, P]) Delete(id int) bool {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	for i := range t.rows {
		if P(&t.rows[i]).RecordMeta().ID == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of records currently in the table.
func (t *Table[T, P]) Count() int {
	t.db.mu.RLock()
	defer t.db.mu.RUnlock()
	return len(t.rows)
}

// Clear empties the table and resets its ID counter; the next insert yields 1.
func (t *Table[T, P]) Clear() {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	t.resetLocked()
}

func (t *Table[T, P]) resetLocked() {
	t.rows = nil
	t.nextID = 0
}

func (t *Table[T, P]) countLocked() int { return len(t.rows) }

func (t *Table[T, P]) exportLocked() (json.RawMessage, int, error) {
	rows := t.rows
	if rows == nil {
		rows = []T{}
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("export table %q: %w", t.name, err)
	}
	return raw, t.nextID, nil
}

func (t *Table[T, P]) importLocked(raw json.RawMessage, nextID int) error {
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return fmt.Errorf("import table %q: %w", t.name, err)
	}
	t.rows = rows
	t.nextID = nextID
	return nil
}
