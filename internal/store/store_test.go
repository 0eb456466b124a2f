package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	Meta
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

func newNotesTable(t *testing.T) (*Database, *Table[note, *note]) {
	t.Helper()
	db := NewDatabase()
	return db, TableOf[note](db, "notes")
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	_, notes := newNotesTable(t)

	for i := 1; i <= 5; i++ {
		rec := notes.Insert(note{Title: "n"})
		assert.Equal(t, i, rec.ID)
		assert.False(t, rec.CreatedAt.IsZero())
		assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
	}
	assert.Equal(t, 5, notes.Count())
}

func TestIDsAreNeverReused(t *testing.T) {
	_, notes := newNotesTable(t)

	first := notes.Insert(note{Title: "first"})
	second := notes.Insert(note{Title: "second"})
	require.True(t, notes.Delete(second.ID))

	third := notes.Insert(note{Title: "third"})
	assert.Equal(t, first.ID+2, third.ID)
}

func TestTableOfReturnsExistingTable(t *testing.T) {
	db, notes := newNotesTable(t)
	again := TableOf[note](db, "notes")
	assert.Same(t, notes, again)
}

func TestTableOfPanicsOnTypeMismatch(t *testing.T) {
	db, _ := newNotesTable(t)

	type other struct {
		Meta
		Value int `json:"value"`
	}
	assert.Panics(t, func() {
		TableOf[other](db, "notes")
	})
}

func TestFindByID(t *testing.T) {
	_, notes := newNotesTable(t)
	created := notes.Insert(note{Title: "target"})

	got, ok := notes.FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "target", got.Title)

	_, ok = notes.FindByID(999)
	assert.False(t, ok)
}

func TestFindAllWindow(t *testing.T) {
	_, notes := newNotesTable(t)
	for i := 0; i < 10; i++ {
		notes.Insert(note{Title: "n"})
	}

	window := notes.FindAll(2, 3)
	require.Len(t, window, 3)
	assert.Equal(t, 3, window[0].ID)
	assert.Equal(t, 5, window[2].ID)

	assert.Empty(t, notes.FindAll(100, 10))
	assert.Len(t, notes.FindAll(8, 10), 2)
	assert.Empty(t, notes.FindAll(0, 0))
}

func TestFindPreservesInsertionOrder(t *testing.T) {
	_, notes := newNotesTable(t)
	notes.Insert(note{Title: "a", Body: "keep"})
	notes.Insert(note{Title: "b"})
	notes.Insert(note{Title: "c", Body: "keep"})

	kept := notes.Find(func(n note) bool { return n.Body == "keep" })
	require.Len(t, kept, 2)
	assert.Equal(t, "a", kept[0].Title)
	assert.Equal(t, "c", kept[1].Title)
}

func TestUpdatePreservesIdentityFields(t *testing.T) {
	_, notes := newNotesTable(t)
	created := notes.Insert(note{Title: "before"})

	updated, ok := notes.Update(created.ID, func(n *note) {
		n.Title = "after"
		// A hostile mutator cannot change managed fields.
		n.ID = 42
		n.CreatedAt = time.Time{}
	})
	require.True(t, ok)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "after", updated.Title)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdatedAtStrictlyIncreases(t *testing.T) {
	_, notes := newNotesTable(t)
	rec := notes.Insert(note{Title: "n"})

	prev := rec.UpdatedAt
	for i := 0; i < 50; i++ {
		updated, ok := notes.Update(rec.ID, func(n *note) { n.Body = "v" })
		require.True(t, ok)
		assert.True(t, updated.UpdatedAt.After(prev))
		prev = updated.UpdatedAt
	}
}

func TestUpdateMissingIDIsNotUpsert(t *testing.T) {
	_, notes := newNotesTable(t)

	_, ok := notes.Update(1, func(n *note) { n.Title = "ghost" })
	assert.False(t, ok)
	assert.Zero(t, notes.Count())
}

func TestDeleteIsTerminal(t *testing.T) {
	_, notes := newNotesTable(t)
	rec := notes.Insert(note{Title: "n"})

	assert.True(t, notes.Delete(rec.ID))
	assert.False(t, notes.Delete(rec.ID))

	_, ok := notes.FindByID(rec.ID)
	assert.False(t, ok)
}

func TestClearResetsIDCounter(t *testing.T) {
	_, notes := newNotesTable(t)
	notes.Insert(note{Title: "a"})
	notes.Insert(note{Title: "b"})

	notes.Clear()
	assert.Zero(t, notes.Count())

	rec := notes.Insert(note{Title: "fresh"})
	assert.Equal(t, 1, rec.ID)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	_, notes := newNotesTable(t)
	rec := notes.Insert(note{Title: "original"})

	all := notes.All()
	require.Len(t, all, 1)
	all[0].Title = "mutated"

	got, ok := notes.FindByID(rec.ID)
	require.True(t, ok)
	assert.Equal(t, "original", got.Title)
}
