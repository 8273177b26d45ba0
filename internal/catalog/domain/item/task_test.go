package item_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

func TestNewTask(t *testing.T) {
	tsk, err := item.NewTask("Finish report", "Quarterly numbers", "2025-03-01", 4)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tsk.ID())
	assert.Equal(t, item.KindTask, tsk.Kind())
	assert.Equal(t, "Finish report", tsk.Title())
	assert.Equal(t, "Quarterly numbers", tsk.Description())
	assert.Equal(t, "2025-03-01", tsk.Deadline())
	assert.Equal(t, 4, tsk.Priority())
	assert.Empty(t, tsk.Interval())
}

func TestNewTask_EmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := item.NewTask(title, "d", item.NoDeadline, 1)
		assert.ErrorIs(t, err, item.ErrEmptyTitle)
	}
}

func TestNewTask_OutOfRangePriorityStoredAsGiven(t *testing.T) {
	tsk, err := item.NewTask("T", "D", item.NoDeadline, 42)

	require.NoError(t, err)
	assert.Equal(t, 42, tsk.Priority())
}

func TestNewTask_EmitsCreatedEvent(t *testing.T) {
	tsk, err := item.NewTask("T", "D", item.NoDeadline, 1)

	require.NoError(t, err)
	events := tsk.DomainEvents()
	require.Len(t, events, 1)

	created, ok := events[0].(item.RecordCreated)
	require.True(t, ok)
	assert.Equal(t, tsk.ID(), created.AggregateID())
	assert.Equal(t, item.EventNameRecordCreated, created.EventName())
	assert.Equal(t, item.KindTask, created.RecordKind)
	assert.Equal(t, "T", created.RecordTitle)
}

func TestTask_Summary(t *testing.T) {
	tests := []struct {
		name string
		task func() (*item.Task, error)
		want string
	}{
		{
			name: "generic",
			task: func() (*item.Task, error) { return item.NewTask("Pay rent", "", "2025-02-01", 9) },
			want: "Task: Pay rent, Deadline: 2025-02-01, Priority: 9",
		},
		{
			name: "recurring",
			task: func() (*item.Task, error) {
				return item.NewRecurringTask("Water plants", "", "No Deadline", 2, "weekly")
			},
			want: "Recurring Task: Water plants, Deadline: No Deadline, Priority: 2, Interval: weekly",
		},
		{
			name: "one-time",
			task: func() (*item.Task, error) { return item.NewOneTimeTask("Dentist", "", "2025-04-10", 5) },
			want: "One-Time Task: Dentist, Deadline: 2025-04-10, Priority: 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tsk, err := tt.task()
			require.NoError(t, err)
			assert.Equal(t, tt.want, tsk.Summary())
		})
	}
}

func TestTask_Details_RecurringExtendsBase(t *testing.T) {
	tsk, err := item.NewRecurringTask("T", "D", "2025-01-01", 5, "weekly")

	require.NoError(t, err)
	assert.Equal(t,
		"Title: T\nDescription: D\nDeadline: 2025-01-01\nPriority: 5\nRecurrence Interval: weekly",
		tsk.Details())
}

func TestTask_Details_OneTimeMatchesGeneric(t *testing.T) {
	generic, err := item.NewTask("T", "D", "2025-01-01", 5)
	require.NoError(t, err)
	oneTime, err := item.NewOneTimeTask("T", "D", "2025-01-01", 5)
	require.NoError(t, err)

	assert.Equal(t, generic.Details(), oneTime.Details())
}
