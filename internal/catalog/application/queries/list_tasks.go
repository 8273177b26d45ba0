package queries

import (
	"context"

	"github.com/gtnlabs/gtn/internal/catalog/application/services"
	"github.com/gtnlabs/gtn/internal/catalog/domain/collection"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

// Sort orders accepted by ListTasksQuery.
const (
	SortByPriority = "priority"
	SortByDeadline = "deadline"
)

// ListTasksQuery contains the parameters for listing tasks.
type ListTasksQuery struct {
	Kind   *item.Kind // nil lists the whole task family
	SortBy string     // "", SortByPriority, or SortByDeadline
}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	store  *collection.Collection
	sorter *services.Sorter
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(store *collection.Collection, sorter *services.Sorter) *ListTasksHandler {
	return &ListTasksHandler{store: store, sorter: sorter}
}

// Handle executes the ListTasksQuery. Sorting reorders only the view
// built here, never the store.
func (h *ListTasksHandler) Handle(_ context.Context, query ListTasksQuery) []TaskDTO {
	tasks := h.store.Tasks()

	if query.Kind != nil {
		var filtered []*item.Task
		for _, t := range tasks {
			if t.Kind() == *query.Kind {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	switch query.SortBy {
	case SortByPriority:
		h.sorter.SortByPriority(tasks)
	case SortByDeadline:
		h.sorter.SortByDeadline(tasks)
	}

	dtos := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = toTaskDTO(t)
	}
	return dtos
}
