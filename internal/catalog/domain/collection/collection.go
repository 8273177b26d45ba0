// Package collection holds the session's records in insertion order and
// hands out filtered views as handle slices, so sorting a view never
// disturbs the store itself.
package collection

import "github.com/gtnlabs/gtn/internal/catalog/domain/item"

// Collection is the single owning store of the session's records. It is
// append-only for the session's lifetime: no removal, no in-place
// update, no concurrent access.
type Collection struct {
	records []item.Record
}

// New creates an empty collection.
func New() *Collection {
	return &Collection{}
}

// Add appends a record, preserving insertion order.
func (c *Collection) Add(r item.Record) {
	c.records = append(c.records, r)
}

// AddAll appends records in the given order.
func (c *Collection) AddAll(records []item.Record) {
	c.records = append(c.records, records...)
}

// Len returns the number of records in the store.
func (c *Collection) Len() int {
	return len(c.records)
}

// All returns handles to every record in insertion order. The returned
// slice is the caller's to reorder.
func (c *Collection) All() []item.Record {
	return append([]item.Record(nil), c.records...)
}

// Filter returns handles to records matching the predicate, preserving
// their original relative order.
func (c *Collection) Filter(keep func(item.Record) bool) []item.Record {
	var out []item.Record
	for _, r := range c.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// ByKind returns handles to records of one concrete variant, in order.
func (c *Collection) ByKind(kind item.Kind) []item.Record {
	return c.Filter(func(r item.Record) bool { return r.Kind() == kind })
}

// Tasks returns handles to every record in the task family, in order.
func (c *Collection) Tasks() []*item.Task {
	var out []*item.Task
	for _, r := range c.records {
		if t, ok := r.(*item.Task); ok {
			out = append(out, t)
		}
	}
	return out
}

// Notes returns handles to every record in the note family, in order.
func (c *Collection) Notes() []*item.Note {
	var out []*item.Note
	for _, r := range c.records {
		if n, ok := r.(*item.Note); ok {
			out = append(out, n)
		}
	}
	return out
}

// Goals returns handles to every record in the goal family, in order.
func (c *Collection) Goals() []*item.Goal {
	var out []*item.Goal
	for _, r := range c.records {
		if g, ok := r.(*item.Goal); ok {
			out = append(out, g)
		}
	}
	return out
}
