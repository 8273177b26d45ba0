package queries

import (
	"context"

	"github.com/gtnlabs/gtn/internal/catalog/application/services"
	"github.com/gtnlabs/gtn/internal/catalog/domain/collection"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

// ListGoalsQuery contains the parameters for listing goals.
type ListGoalsQuery struct {
	Kind           *item.Kind // nil lists the whole goal family
	SortByProgress bool
}

// ListGoalsHandler handles the ListGoalsQuery.
type ListGoalsHandler struct {
	store  *collection.Collection
	sorter *services.Sorter
}

// NewListGoalsHandler creates a new ListGoalsHandler.
func NewListGoalsHandler(store *collection.Collection, sorter *services.Sorter) *ListGoalsHandler {
	return &ListGoalsHandler{store: store, sorter: sorter}
}

// Handle executes the ListGoalsQuery. Sorting reorders only the view
// built here, never the store.
func (h *ListGoalsHandler) Handle(_ context.Context, query ListGoalsQuery) []GoalDTO {
	goals := h.store.Goals()

	if query.Kind != nil {
		var filtered []*item.Goal
		for _, g := range goals {
			if g.Kind() == *query.Kind {
				filtered = append(filtered, g)
			}
		}
		goals = filtered
	}

	if query.SortByProgress {
		h.sorter.SortByProgress(goals)
	}

	dtos := make([]GoalDTO, len(goals))
	for i, g := range goals {
		dtos[i] = toGoalDTO(g)
	}
	return dtos
}
