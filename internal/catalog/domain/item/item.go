// Package item defines the record model: three closed families of
// immutable records (tasks, notes, goals), each rendering a one-line
// summary and a multi-line detail view.
package item

import (
	"errors"

	"github.com/gtnlabs/gtn/internal/shared/domain"
)

// ErrEmptyTitle is returned when a record is constructed without a title.
var ErrEmptyTitle = errors.New("record title cannot be empty")

// Record is the capability set shared by every entry in the catalog.
// Records are immutable after construction; Summary and Details are pure
// projections of state to text and never fail.
type Record interface {
	domain.Entity
	Kind() Kind
	Title() string
	Description() string
	Summary() string
	Details() string
}
