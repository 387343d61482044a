// Package records holds the in-memory collection every dashboard panel keeps its records in,
// and the aggregate helpers computed over it.
package records

import "sync"

// Position is where a new record is inserted.
type Position int

const (
	Back  Position = iota // append to the end
	Front                 // prepend to the front
)

// Collection is an ordered, in-memory collection of records of kind T.
//
// Ids are assigned as `created-so-far + 1` by a counter that starts at the size of the
// seeded set and is never decremented, so removed ids are never handed out again.
type Collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	created int
	idOf    func(T) int
}

// NewCollection returns a collection seeded with `seed` (kept in the given order).
func NewCollection[T any](idOf func(T) int, seed ...T) *Collection[T] {
	c := &Collection[T]{
		items: append(make([]T, 0, len(seed)), seed...),
		idOf:  idOf,
	}
	c.created = len(seed)
	for _, item := range seed {
		if id := idOf(item); id > c.created {
			c.created = id
		}
	}
	return c
}

// Insert builds a record with the next id and inserts it at pos.
func (c *Collection[T]) Insert(pos Position, build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insert(pos, build)
}

// InsertMany builds n records with consecutive ids and inserts them, in order, at pos.
func (c *Collection[T]) InsertMany(pos Position, n int, build func(i, id int) T) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	batch := make([]T, 0, n)
	for i := 0; i < n; i++ {
		c.created++
		batch = append(batch, build(i, c.created))
	}
	if pos == Front {
		c.items = append(append(make([]T, 0, len(c.items)+n), batch...), c.items...)
	} else {
		c.items = append(c.items, batch...)
	}
	return append([]T(nil), batch...)
}

func (c *Collection[T]) insert(pos Position, build func(id int) T) T {
	c.created++
	item := build(c.created)
	if pos == Front {
		c.items = append([]T{item}, c.items...)
	} else {
		c.items = append(c.items, item)
	}
	return item
}

// Update applies fn in place to the record with the given id.
// It is a no-op returning ok=false when no such record exists.
func (c *Collection[T]) Update(id int, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			fn(&c.items[i])
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes the record with the given id; ids of remaining records are untouched.
func (c *Collection[T]) Remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if c.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// All returns a copy of the records in collection order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append(make([]T, 0, len(c.items)), c.items...)
}

// Filter returns, in collection order, the records matching keep.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// NextID is the id the next inserted record will get.
func (c *Collection[T]) NextID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.created + 1
}
