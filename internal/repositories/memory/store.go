package memory

import (
	"sort"
	"sync"

	"petcare_backend/internal/models"
)

// table keeps rows of one resource keyed by a monotonically increasing id.
type table[T any] struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]T
	setID  func(*T, int64)
}

func newTable[T any](setID func(*T, int64)) *table[T] {
	return &table[T]{rows: make(map[int64]T), setID: setID}
}

func (t *table[T]) insert(row T) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	t.setID(&row, t.nextID)
	t.rows[t.nextID] = row
	return t.nextID
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) replace(id int64, row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.setID(&row, id)
	t.rows[id] = row
	return true
}

func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// filter returns matching rows in id order; a nil keep selects every row.
func (t *table[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]int64, 0, len(t.rows))
	for id, row := range t.rows {
		if keep == nil || keep(row) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

// first returns the lowest-id row that matches.
func (t *table[T]) first(keep func(T) bool) (T, bool) {
	matches := t.filter(keep)
	if len(matches) == 0 {
		var zero T
		return zero, false
	}
	return matches[0], true
}

// Store holds every table so that joined lookups (bookings by trainer or by
// customer) see the same data as the per-resource repositories.
type Store struct {
	customers *table[models.Customer]
	pets      *table[models.Pet]
	trainers  *table[models.Trainer]
	employees *table[models.Employee]
	classes   *table[models.Class]
	bookings  *table[models.Booking]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		customers: newTable(func(c *models.Customer, id int64) { c.ID = id }),
		pets:      newTable(func(p *models.Pet, id int64) { p.ID = id }),
		trainers:  newTable(func(t *models.Trainer, id int64) { t.ID = id }),
		employees: newTable(func(e *models.Employee, id int64) { e.ID = id }),
		classes:   newTable(func(c *models.Class, id int64) { c.ID = id }),
		bookings:  newTable(func(b *models.Booking, id int64) { b.ID = id }),
	}
}
