package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gtnlabs/gtn/internal/catalog/domain/collection"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

// AddNoteCommand contains the data needed to add a note. Tags are
// passed through as given; the interactive layers normalize empty tags
// to "generic" before building the command.
type AddNoteCommand struct {
	Kind        item.Kind // KindNote, KindProtectedNote, or KindPublicNote
	Title       string
	Description string
	Tags        []string
	Password    string // protected notes only
}

// AddNoteResult contains the result of adding a note.
type AddNoteResult struct {
	RecordID uuid.UUID
	Summary  string
}

// AddNoteHandler handles the AddNoteCommand.
type AddNoteHandler struct {
	store  *collection.Collection
	logger *slog.Logger
}

// NewAddNoteHandler creates a new AddNoteHandler.
func NewAddNoteHandler(store *collection.Collection, logger *slog.Logger) *AddNoteHandler {
	return &AddNoteHandler{store: store, logger: logger}
}

// Handle executes the AddNoteCommand.
func (h *AddNoteHandler) Handle(ctx context.Context, cmd AddNoteCommand) (*AddNoteResult, error) {
	if cmd.Kind.Family() != item.FamilyNote {
		return nil, ErrWrongFamily
	}

	var (
		n   *item.Note
		err error
	)
	switch cmd.Kind {
	case item.KindProtectedNote:
		n, err = item.NewProtectedNote(cmd.Title, cmd.Description, cmd.Tags, cmd.Password)
	case item.KindPublicNote:
		n, err = item.NewPublicNote(cmd.Title, cmd.Description, cmd.Tags)
	default:
		n, err = item.NewNote(cmd.Title, cmd.Description, cmd.Tags)
	}
	if err != nil {
		return nil, err
	}

	h.store.Add(n)
	logDomainEvents(ctx, h.logger, n)

	return &AddNoteResult{RecordID: n.ID(), Summary: n.Summary()}, nil
}
