package queries

import (
	"context"

	"github.com/gtnlabs/gtn/internal/catalog/domain/collection"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

// ListNotesQuery contains the parameters for listing notes. Password is
// tried against every protected note in the view; notes it does not
// unlock come back with Locked set and no detail text.
type ListNotesQuery struct {
	Kind     *item.Kind // nil lists the whole note family
	Password string
}

// ListNotesHandler handles the ListNotesQuery.
type ListNotesHandler struct {
	store *collection.Collection
}

// NewListNotesHandler creates a new ListNotesHandler.
func NewListNotesHandler(store *collection.Collection) *ListNotesHandler {
	return &ListNotesHandler{store: store}
}

// Handle executes the ListNotesQuery.
func (h *ListNotesHandler) Handle(_ context.Context, query ListNotesQuery) []NoteDTO {
	notes := h.store.Notes()

	if query.Kind != nil {
		var filtered []*item.Note
		for _, n := range notes {
			if n.Kind() == *query.Kind {
				filtered = append(filtered, n)
			}
		}
		notes = filtered
	}

	dtos := make([]NoteDTO, len(notes))
	for i, n := range notes {
		dtos[i] = toNoteDTO(n, query.Password)
	}
	return dtos
}
