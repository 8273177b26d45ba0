package loader

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

func testLoader() *Loader {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestParseLine_TaskFamily(t *testing.T) {
	l := testLoader()

	rec, err := l.ParseLine("Task,Buy groceries,Milk and bread,2024-06-01,3")
	require.NoError(t, err)
	task, ok := rec.(*item.Task)
	require.True(t, ok)
	assert.Equal(t, item.KindTask, task.Kind())
	assert.Equal(t, "Buy groceries", task.Title())
	assert.Equal(t, "2024-06-01", task.Deadline())
	assert.Equal(t, 3, task.Priority())

	rec, err = l.ParseLine("OneTimeTask,Dentist,Checkup,2024-07-15,1")
	require.NoError(t, err)
	assert.Equal(t, item.KindOneTimeTask, rec.Kind())
}

func TestParseLine_RecurringIntervalKeepsCommas(t *testing.T) {
	l := testLoader()

	rec, err := l.ParseLine("RecurringTask,Water plants,Balcony,No Deadline,2,Mon, Wed, Fri")
	require.NoError(t, err)
	task := rec.(*item.Task)
	assert.Equal(t, item.KindRecurringTask, task.Kind())
	assert.Equal(t, "Mon, Wed, Fri", task.Interval())
}

func TestParseLine_NoteTagsAndPassword(t *testing.T) {
	l := testLoader()

	rec, err := l.ParseLine("Note,Shopping,Weekly list,home,errands")
	require.NoError(t, err)
	note := rec.(*item.Note)
	assert.Equal(t, []string{"home", "errands"}, note.Tags())

	rec, err = l.ParseLine("ProtectedNote,Diary,Private,personal,secret,pass123")
	require.NoError(t, err)
	note = rec.(*item.Note)
	assert.Equal(t, []string{"personal", "secret"}, note.Tags())
	assert.True(t, note.CheckPassword("pass123"))
	assert.False(t, note.CheckPassword("wrong"))
}

func TestParseLine_EmptyTagBecomesGeneric(t *testing.T) {
	l := testLoader()

	rec, err := l.ParseLine("PublicNote,Announce,Open house,")
	require.NoError(t, err)
	assert.Equal(t, []string{"generic"}, rec.(*item.Note).Tags())
}

func TestParseLine_GoalFamily(t *testing.T) {
	l := testLoader()

	rec, err := l.ParseLine("QuantifiableGoal,Run 100km,Monthly target,0.425")
	require.NoError(t, err)
	goal := rec.(*item.Goal)
	assert.InDelta(t, 0.425, goal.Progress(), 1e-9)

	rec, err = l.ParseLine("NonQuantifiableGoal,Be kinder,Daily practice,0")
	require.NoError(t, err)
	assert.Equal(t, item.ProgressSentinel, rec.(*item.Goal).Progress())
}

func TestParseLine_MalformedNumericsFallBackToZero(t *testing.T) {
	l := testLoader()

	rec, err := l.ParseLine("Task,Vague,No plan,soon,high")
	require.NoError(t, err)
	assert.Equal(t, 0, rec.(*item.Task).Priority())

	rec, err = l.ParseLine("Goal,Fuzzy,No number,lots")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, rec.(*item.Goal).Progress(), 1e-9)
}

func TestParseLine_UnknownKind(t *testing.T) {
	_, err := testLoader().ParseLine("Reminder,Call mom,Sunday")
	assert.Error(t, err)
}

func TestLoad_FileOrderAndSkips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	content := "Task,First,One,2024-01-01,1\n" +
		"\n" +
		"Bogus,Skipped,line\n" +
		"Note,Second,Two,tag\n" +
		"Goal,Third,Three,0.5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, err := testLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "First", records[0].Title())
	assert.Equal(t, "Second", records[1].Title())
	assert.Equal(t, "Third", records[2].Title())
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	records, err := testLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	assert.Empty(t, records)
}
