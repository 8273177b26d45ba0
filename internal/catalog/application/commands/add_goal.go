package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gtnlabs/gtn/internal/catalog/domain/collection"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

// AddGoalCommand contains the data needed to add a goal. Progress is
// stored as given, even out of range; for non-quantifiable goals it only
// feeds the detail view.
type AddGoalCommand struct {
	Kind        item.Kind // KindGoal, KindQuantifiableGoal, or KindNonQuantifiableGoal
	Title       string
	Description string
	Progress    float64
}

// AddGoalResult contains the result of adding a goal.
type AddGoalResult struct {
	RecordID uuid.UUID
	Summary  string
}

// AddGoalHandler handles the AddGoalCommand.
type AddGoalHandler struct {
	store  *collection.Collection
	logger *slog.Logger
}

// NewAddGoalHandler creates a new AddGoalHandler.
func NewAddGoalHandler(store *collection.Collection, logger *slog.Logger) *AddGoalHandler {
	return &AddGoalHandler{store: store, logger: logger}
}

// Handle executes the AddGoalCommand.
func (h *AddGoalHandler) Handle(ctx context.Context, cmd AddGoalCommand) (*AddGoalResult, error) {
	if cmd.Kind.Family() != item.FamilyGoal {
		return nil, ErrWrongFamily
	}

	var (
		g   *item.Goal
		err error
	)
	switch cmd.Kind {
	case item.KindQuantifiableGoal:
		g, err = item.NewQuantifiableGoal(cmd.Title, cmd.Description, cmd.Progress)
	case item.KindNonQuantifiableGoal:
		g, err = item.NewNonQuantifiableGoal(cmd.Title, cmd.Description, cmd.Progress)
	default:
		g, err = item.NewGoal(cmd.Title, cmd.Description, cmd.Progress)
	}
	if err != nil {
		return nil, err
	}

	h.store.Add(g)
	logDomainEvents(ctx, h.logger, g)

	return &AddGoalResult{RecordID: g.ID(), Summary: g.Summary()}, nil
}
