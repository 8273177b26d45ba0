// Package commands contains the write-side handlers: each one builds a
// record variant and appends it to the session collection.
package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gtnlabs/gtn/internal/catalog/domain/collection"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
	"github.com/gtnlabs/gtn/internal/shared/domain"
)

// ErrWrongFamily is returned when a command names a kind outside the
// family its handler builds.
var ErrWrongFamily = errors.New("kind does not belong to this record family")

// AddTaskCommand contains the data needed to add a task.
type AddTaskCommand struct {
	Kind        item.Kind // KindTask, KindRecurringTask, or KindOneTimeTask
	Title       string
	Description string
	Deadline    string
	Priority    int
	Interval    string // recurring tasks only
}

// AddTaskResult contains the result of adding a task.
type AddTaskResult struct {
	RecordID uuid.UUID
	Summary  string
}

// AddTaskHandler handles the AddTaskCommand.
type AddTaskHandler struct {
	store  *collection.Collection
	logger *slog.Logger
}

// NewAddTaskHandler creates a new AddTaskHandler.
func NewAddTaskHandler(store *collection.Collection, logger *slog.Logger) *AddTaskHandler {
	return &AddTaskHandler{store: store, logger: logger}
}

// Handle executes the AddTaskCommand.
func (h *AddTaskHandler) Handle(ctx context.Context, cmd AddTaskCommand) (*AddTaskResult, error) {
	if cmd.Kind.Family() != item.FamilyTask {
		return nil, ErrWrongFamily
	}

	var (
		t   *item.Task
		err error
	)
	switch cmd.Kind {
	case item.KindRecurringTask:
		t, err = item.NewRecurringTask(cmd.Title, cmd.Description, cmd.Deadline, cmd.Priority, cmd.Interval)
	case item.KindOneTimeTask:
		t, err = item.NewOneTimeTask(cmd.Title, cmd.Description, cmd.Deadline, cmd.Priority)
	default:
		t, err = item.NewTask(cmd.Title, cmd.Description, cmd.Deadline, cmd.Priority)
	}
	if err != nil {
		return nil, err
	}

	h.store.Add(t)
	logDomainEvents(ctx, h.logger, t)

	return &AddTaskResult{RecordID: t.ID(), Summary: t.Summary()}, nil
}

// logDomainEvents drains an aggregate's events into the structured log.
func logDomainEvents(ctx context.Context, logger *slog.Logger, root domain.AggregateRoot) {
	for _, evt := range root.DomainEvents() {
		logger.InfoContext(ctx, "domain event",
			"event", evt.EventName(),
			"aggregate_type", evt.AggregateType(),
			"aggregate_id", evt.AggregateID().String(),
		)
	}
	root.ClearDomainEvents()
}
