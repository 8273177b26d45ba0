package item

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gtnlabs/gtn/internal/shared/domain"
)

// NoDeadline is the literal deadline string for tasks without one. It is
// compared lexicographically like any other deadline, never parsed.
const NoDeadline = "No Deadline"

// Task is a unit of work with a deadline string and a numeric priority.
// The kind tag distinguishes generic, recurring, and one-time tasks;
// only recurring tasks carry an interval.
type Task struct {
	domain.BaseAggregateRoot
	kind        Kind
	title       string
	description string
	deadline    string
	priority    int
	interval    string
}

// NewTask creates a generic task. Deadline and priority are stored as
// given; out-of-range priorities are not rejected.
func NewTask(title, description, deadline string, priority int) (*Task, error) {
	return newTask(KindTask, title, description, deadline, priority, "")
}

// NewRecurringTask creates a task that repeats at a free-text interval.
func NewRecurringTask(title, description, deadline string, priority int, interval string) (*Task, error) {
	return newTask(KindRecurringTask, title, description, deadline, priority, interval)
}

// NewOneTimeTask creates a task distinguished from a generic one only by
// its kind tag.
func NewOneTimeTask(title, description, deadline string, priority int) (*Task, error) {
	return newTask(KindOneTimeTask, title, description, deadline, priority, "")
}

func newTask(kind Kind, title, description, deadline string, priority int, interval string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	t := &Task{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		kind:              kind,
		title:             title,
		description:       description,
		deadline:          deadline,
		priority:          priority,
		interval:          interval,
	}
	t.AddDomainEvent(NewRecordCreated(t.ID(), kind, title))
	return t, nil
}

// RehydrateTask recreates a task from persisted state without
// generating events. Kind must be a task-family kind.
func RehydrateTask(id uuid.UUID, createdAt time.Time, kind Kind,
	title, description, deadline string, priority int, interval string) *Task {
	return &Task{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(domain.RehydrateBaseEntity(id, createdAt)),
		kind:              kind,
		title:             title,
		description:       description,
		deadline:          deadline,
		priority:          priority,
		interval:          interval,
	}
}

func (t *Task) Kind() Kind          { return t.kind }
func (t *Task) Title() string       { return t.title }
func (t *Task) Description() string { return t.description }
func (t *Task) Deadline() string    { return t.deadline }
func (t *Task) Priority() int       { return t.priority }

// Interval returns the recurrence interval; empty for non-recurring kinds.
func (t *Task) Interval() string { return t.interval }

// Summary renders the one-line listing for the task variant.
func (t *Task) Summary() string {
	switch t.kind {
	case KindRecurringTask:
		return fmt.Sprintf("Recurring Task: %s, Deadline: %s, Priority: %d, Interval: %s",
			t.title, t.deadline, t.priority, t.interval)
	case KindOneTimeTask:
		return fmt.Sprintf("One-Time Task: %s, Deadline: %s, Priority: %d",
			t.title, t.deadline, t.priority)
	default:
		return fmt.Sprintf("Task: %s, Deadline: %s, Priority: %d",
			t.title, t.deadline, t.priority)
	}
}

// Details renders the multi-line view. Each variant extends the base
// task block by explicit composition.
func (t *Task) Details() string {
	base := fmt.Sprintf("Title: %s\nDescription: %s\nDeadline: %s\nPriority: %d",
		t.title, t.description, t.deadline, t.priority)
	if t.kind == KindRecurringTask {
		return base + "\nRecurrence Interval: " + t.interval
	}
	return base
}
