// Package queries contains the read-side handlers. They operate on
// filtered views of the session collection and return DTOs; the store
// itself is never reordered.
package queries

import (
	"github.com/google/uuid"

	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

// RecordDTO is the family-agnostic projection used by "display all".
type RecordDTO struct {
	ID      uuid.UUID
	Kind    string
	Title   string
	Summary string
}

// TaskDTO is a data transfer object for tasks.
type TaskDTO struct {
	ID       uuid.UUID
	Kind     string
	Title    string
	Deadline string
	Priority int
	Interval string
	Summary  string
	Details  string
}

// NoteDTO is a data transfer object for notes. Details is blank while
// Locked is true: a protected note only renders its detail view after
// its password matched.
type NoteDTO struct {
	ID        uuid.UUID
	Kind      string
	Title     string
	Tags      []string
	Protected bool
	Locked    bool
	Summary   string
	Details   string
}

// GoalDTO is a data transfer object for goals.
type GoalDTO struct {
	ID         uuid.UUID
	Kind       string
	Title      string
	Progress   float64
	Quantified bool
	Summary    string
	Details    string
}

func toRecordDTO(r item.Record) RecordDTO {
	return RecordDTO{
		ID:      r.ID(),
		Kind:    r.Kind().String(),
		Title:   r.Title(),
		Summary: r.Summary(),
	}
}

func toTaskDTO(t *item.Task) TaskDTO {
	return TaskDTO{
		ID:       t.ID(),
		Kind:     t.Kind().String(),
		Title:    t.Title(),
		Deadline: t.Deadline(),
		Priority: t.Priority(),
		Interval: t.Interval(),
		Summary:  t.Summary(),
		Details:  t.Details(),
	}
}

func toNoteDTO(n *item.Note, password string) NoteDTO {
	dto := NoteDTO{
		ID:        n.ID(),
		Kind:      n.Kind().String(),
		Title:     n.Title(),
		Tags:      n.Tags(),
		Protected: n.Kind() == item.KindProtectedNote,
		Summary:   n.Summary(),
	}
	if n.CheckPassword(password) {
		dto.Details = n.Details()
	} else {
		dto.Locked = true
	}
	return dto
}

func toGoalDTO(g *item.Goal) GoalDTO {
	return GoalDTO{
		ID:         g.ID(),
		Kind:       g.Kind().String(),
		Title:      g.Title(),
		Progress:   g.Progress(),
		Quantified: g.ProgressValue().Quantified(),
		Summary:    g.Summary(),
		Details:    g.Details(),
	}
}
