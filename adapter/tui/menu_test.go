package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gtnlabs/gtn/internal/app"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
	"github.com/gtnlabs/gtn/pkg/config"
)

// promptModel builds a model mid-flow, as if the user had answered
// every prompt with the given values.
func promptModel(t *testing.T, f flow, values []string) (Model, *app.Container) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	container, err := app.NewContainer(context.Background(),
		&config.Config{DataFile: "does-not-exist.txt"}, logger)
	require.NoError(t, err)

	prompts := make([]promptField, len(values))
	for i, v := range values {
		prompts[i] = promptField{value: v}
	}

	return Model{
		container: container,
		mode:      modePrompt,
		flow:      f,
		prompts:   prompts,
		input:     textinput.New(),
	}, container
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "plain", input: "work,home", want: []string{"work", "home"}},
		{name: "trims whitespace", input: " work , home ", want: []string{"work", "home"}},
		{name: "empty tag becomes generic", input: "a,,b", want: []string{"a", "generic", "b"}},
		{name: "whitespace tag becomes generic", input: "a, ,b", want: []string{"a", "generic", "b"}},
		{name: "blank input", input: "", want: nil},
		{name: "whitespace input", input: "   ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitTags(tt.input))
		})
	}
}

func TestKindFromInput(t *testing.T) {
	assert.Equal(t, item.KindTask, taskKindFromInput("regular"))
	assert.Equal(t, item.KindRecurringTask, taskKindFromInput("recurring"))
	assert.Equal(t, item.KindOneTimeTask, taskKindFromInput("one-time"))
	assert.Equal(t, item.KindTask, taskKindFromInput("anything else"))

	assert.Equal(t, item.KindNote, noteKindFromInput("generic"))
	assert.Equal(t, item.KindProtectedNote, noteKindFromInput("Protected"))
	assert.Equal(t, item.KindPublicNote, noteKindFromInput("public"))
	assert.Equal(t, item.KindNote, noteKindFromInput(""))

	assert.Equal(t, item.KindQuantifiableGoal, goalKindFromInput("quantifiable"))
	assert.Equal(t, item.KindNonQuantifiableGoal, goalKindFromInput("non-quantifiable"))
	assert.Equal(t, item.KindGoal, goalKindFromInput("none"))
}

func TestFinishPrompts_AddNoteNormalizesEmptyTags(t *testing.T) {
	m, container := promptModel(t, flowAddNote,
		[]string{"Passwords", "Account notes", "work,,home", "protected", "s3cret"})

	_, _ = m.finishPrompts()

	require.Equal(t, 1, container.Store.Len())
	note := container.Store.Notes()[0]
	assert.Equal(t, item.KindProtectedNote, note.Kind())
	assert.Equal(t, []string{"work", "generic", "home"}, note.Tags())
	assert.True(t, note.CheckPassword("s3cret"))
}

func TestFinishPrompts_AddOneTimeTask(t *testing.T) {
	m, container := promptModel(t, flowAddTask,
		[]string{"File taxes", "Federal return", "2024-04-15", "1", "one-time", ""})

	_, _ = m.finishPrompts()

	require.Equal(t, 1, container.Store.Len())
	task := container.Store.Tasks()[0]
	assert.Equal(t, item.KindOneTimeTask, task.Kind())
	assert.Equal(t, 1, task.Priority())
}

func TestFinishPrompts_AddGoalVariants(t *testing.T) {
	m, container := promptModel(t, flowAddGoal,
		[]string{"Read more", "Twelve books", "0.25", "non-quantifiable"})
	_, _ = m.finishPrompts()

	m2, _ := promptModel(t, flowAddGoal, nil)
	m2.container = container
	m2.prompts = []promptField{
		{value: "Run a 10k"}, {value: ""}, {value: "0.5"}, {value: "none"},
	}
	_, _ = m2.finishPrompts()

	goals := container.Store.Goals()
	require.Len(t, goals, 2)
	assert.Equal(t, item.KindNonQuantifiableGoal, goals[0].Kind())
	assert.Equal(t, item.ProgressSentinel, goals[0].Progress())
	assert.Equal(t, item.KindGoal, goals[1].Kind())
	assert.Equal(t, 0.5, goals[1].Progress())
}
