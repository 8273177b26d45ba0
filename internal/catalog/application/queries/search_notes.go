package queries

import (
	"context"

	"github.com/gtnlabs/gtn/internal/catalog/application/services"
	"github.com/gtnlabs/gtn/internal/catalog/domain/collection"
)

// SearchNotesQuery contains the parameters for searching notes. When
// Tag is set the search is an exact, case-sensitive tag match;
// otherwise Text is matched case-insensitively across title,
// description, and tags.
type SearchNotesQuery struct {
	Tag      string
	Text     string
	Password string
}

// SearchNotesHandler handles the SearchNotesQuery.
type SearchNotesHandler struct {
	store    *collection.Collection
	searcher *services.Searcher
}

// NewSearchNotesHandler creates a new SearchNotesHandler.
func NewSearchNotesHandler(store *collection.Collection, searcher *services.Searcher) *SearchNotesHandler {
	return &SearchNotesHandler{store: store, searcher: searcher}
}

// Handle executes the SearchNotesQuery. Zero matches is a defined
// outcome, not an error.
func (h *SearchNotesHandler) Handle(_ context.Context, query SearchNotesQuery) []NoteDTO {
	notes := h.store.Notes()

	if query.Tag != "" {
		notes = h.searcher.SearchByTag(notes, query.Tag)
	} else {
		notes = h.searcher.SearchFullText(notes, query.Text)
	}

	dtos := make([]NoteDTO, len(notes))
	for i, n := range notes {
		dtos[i] = toNoteDTO(n, query.Password)
	}
	return dtos
}
