package queries

import (
	"context"

	"github.com/gtnlabs/gtn/internal/catalog/domain/collection"
)

// ListRecordsHandler returns every record in the session, in insertion
// order, as one-line summaries.
type ListRecordsHandler struct {
	store *collection.Collection
}

// NewListRecordsHandler creates a new ListRecordsHandler.
func NewListRecordsHandler(store *collection.Collection) *ListRecordsHandler {
	return &ListRecordsHandler{store: store}
}

// Handle lists all records.
func (h *ListRecordsHandler) Handle(_ context.Context) []RecordDTO {
	records := h.store.All()
	dtos := make([]RecordDTO, len(records))
	for i, r := range records {
		dtos[i] = toRecordDTO(r)
	}
	return dtos
}
