// Package tui implements the interactive menu on top of the application
// handlers. Navigation is a single bubbletea model with a mode switch.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gtnlabs/gtn/internal/app"
	"github.com/gtnlabs/gtn/internal/catalog/application/commands"
	"github.com/gtnlabs/gtn/internal/catalog/application/queries"
	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

type mode int

const (
	modeMenu mode = iota
	modeOutput
	modeSelect
	modePrompt
	modePassword
)

type flow int

const (
	flowNone flow = iota
	flowAddTask
	flowAddNote
	flowAddGoal
	flowSearchTag
	flowSearchText
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusStyle = lipgloss.NewStyle().Faint(true)
)

var menuEntries = []string{
	"Display all items",
	"Tasks by priority",
	"Tasks by deadline",
	"Notes",
	"Goals by progress",
	"Search notes by tag",
	"Search notes by text",
	"Add a task",
	"Add a note",
	"Add a goal",
	"Show item details",
}

type promptField struct {
	label string
	value string
}

// Model is the interactive menu state machine.
type Model struct {
	container *app.Container

	mode       mode
	menuCursor int

	// modeOutput
	outputTitle string
	lines       []string

	// modeSelect / modePassword
	records      []queries.RecordDTO
	selectCursor int
	pendingTitle string

	// modePrompt
	flow      flow
	prompts   []promptField
	promptIdx int
	input     textinput.Model

	status string
}

// Run starts the interactive menu and blocks until the user quits.
func Run(c *app.Container) error {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 48

	m := Model{
		container: c,
		mode:      modeMenu,
		input:     ti,
		status:    "j/k or arrows to move, enter to select, q to quit",
	}

	_, err := tea.NewProgram(m).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg.String())
		case modeOutput:
			return m.updateOutput(msg.String())
		case modeSelect:
			return m.updateSelect(msg.String())
		case modePrompt:
			return m.updatePrompt(msg.String(), msg)
		case modePassword:
			return m.updatePassword(msg.String(), msg)
		}
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) updateMenu(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		m.menuCursor = clampCursor(m.menuCursor+1, len(menuEntries))
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor = clampCursor(m.menuCursor-1, len(menuEntries))
		}
	case "enter":
		return m.runEntry(m.menuCursor)
	}
	return m, nil
}

func (m Model) runEntry(idx int) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	switch idx {
	case 0:
		records := m.container.ListRecordsHandler.Handle(ctx)
		return m.showOutput("All items", recordLines(records)), nil
	case 1:
		tasks := m.container.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{SortBy: queries.SortByPriority})
		return m.showOutput("Tasks by priority", taskLines(tasks)), nil
	case 2:
		tasks := m.container.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{SortBy: queries.SortByDeadline})
		return m.showOutput("Tasks by deadline", taskLines(tasks)), nil
	case 3:
		notes := m.container.ListNotesHandler.Handle(ctx, queries.ListNotesQuery{})
		return m.showOutput("Notes", noteLines(notes)), nil
	case 4:
		goals := m.container.ListGoalsHandler.Handle(ctx, queries.ListGoalsQuery{SortByProgress: true})
		return m.showOutput("Goals by progress", goalLines(goals)), nil
	case 5:
		return m.startPrompts(flowSearchTag, []promptField{{label: "tag"}}), textinput.Blink
	case 6:
		return m.startPrompts(flowSearchText, []promptField{{label: "search text"}}), textinput.Blink
	case 7:
		return m.startPrompts(flowAddTask, []promptField{
			{label: "title"},
			{label: "description"},
			{label: "deadline", value: item.NoDeadline},
			{label: "priority (1-10)", value: "3"},
			{label: "type (regular/recurring/one-time)", value: "regular"},
			{label: "interval (recurring only)"},
		}), textinput.Blink
	case 8:
		return m.startPrompts(flowAddNote, []promptField{
			{label: "title"},
			{label: "description"},
			{label: "tags (comma-separated)"},
			{label: "type (generic/protected/public)", value: "generic"},
			{label: "password (protected only)"},
		}), textinput.Blink
	case 9:
		return m.startPrompts(flowAddGoal, []promptField{
			{label: "title"},
			{label: "description"},
			{label: "progress (0-1)", value: "0"},
			{label: "type (quantifiable/non-quantifiable/none)", value: "quantifiable"},
		}), textinput.Blink
	case 10:
		m.records = m.container.ListRecordsHandler.Handle(ctx)
		if len(m.records) == 0 {
			m.status = "No items in the session"
			return m, nil
		}
		m.mode = modeSelect
		m.selectCursor = 0
		m.status = "Pick an item and press enter, esc to go back"
		return m, nil
	}
	return m, nil
}

func (m Model) updateOutput(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "enter":
		m.mode = modeMenu
		m.status = "j/k or arrows to move, enter to select, q to quit"
	}
	return m, nil
}

func (m Model) updateSelect(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		m.mode = modeMenu
		m.status = "j/k or arrows to move, enter to select, q to quit"
	case "down", "j":
		m.selectCursor = clampCursor(m.selectCursor+1, len(m.records))
	case "up", "k":
		if m.selectCursor > 0 {
			m.selectCursor = clampCursor(m.selectCursor-1, len(m.records))
		}
	case "enter":
		return m.showDetails(m.records[m.selectCursor], "")
	}
	return m, nil
}

// showDetails renders the detail view for one record. A protected note
// with a wrong or missing password drops into the password prompt.
func (m Model) showDetails(rec queries.RecordDTO, password string) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	kind, err := item.ParseKind(rec.Kind)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	switch kind.Family() {
	case item.FamilyTask:
		for _, t := range m.container.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{}) {
			if t.ID == rec.ID {
				return m.showOutput("Details", strings.Split(t.Details, "\n")), nil
			}
		}
	case item.FamilyNote:
		for _, n := range m.container.ListNotesHandler.Handle(ctx, queries.ListNotesQuery{Password: password}) {
			if n.ID != rec.ID {
				continue
			}
			if n.Locked {
				m.pendingTitle = rec.Title
				m.mode = modePassword
				m.input.SetValue("")
				m.input.Placeholder = "password"
				m.input.EchoMode = textinput.EchoPassword
				m.input.Focus()
				m.status = "Enter the password for " + rec.Title
				return m, textinput.Blink
			}
			return m.showOutput("Details", strings.Split(n.Details, "\n")), nil
		}
	default:
		for _, g := range m.container.ListGoalsHandler.Handle(ctx, queries.ListGoalsQuery{}) {
			if g.ID == rec.ID {
				return m.showOutput("Details", strings.Split(g.Details, "\n")), nil
			}
		}
	}
	m.status = "Item not found"
	return m, nil
}

func (m Model) updatePassword(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m = m.resetInput()
		m.mode = modeSelect
		m.status = "Pick an item and press enter, esc to go back"
		return m, nil
	case "enter":
		password := m.input.Value()
		rec := m.records[m.selectCursor]
		m = m.resetInput()
		next, cmd := m.showDetails(rec, password)
		model := next.(Model)
		if model.mode == modePassword {
			model.status = "Incorrect password for " + rec.Title
			model.input.Focus()
			return model, textinput.Blink
		}
		return model, cmd
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) startPrompts(f flow, fields []promptField) Model {
	m.flow = f
	m.prompts = fields
	m.promptIdx = 0
	m.mode = modePrompt
	m.input.SetValue(fields[0].value)
	m.input.Placeholder = fields[0].label
	m.input.EchoMode = textinput.EchoNormal
	m.input.Focus()
	m.status = "Enter to advance, esc to cancel"
	return m
}

func (m Model) updatePrompt(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m = m.resetInput()
		m.flow = flowNone
		m.mode = modeMenu
		m.status = "Cancelled"
		return m, nil
	case "enter":
		m.prompts[m.promptIdx].value = m.input.Value()
		if m.promptIdx < len(m.prompts)-1 {
			m.promptIdx++
			m.input.SetValue(m.prompts[m.promptIdx].value)
			m.input.Placeholder = m.prompts[m.promptIdx].label
			return m, nil
		}
		return m.finishPrompts()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) finishPrompts() (tea.Model, tea.Cmd) {
	ctx := context.Background()
	f := m.flow
	values := make([]string, len(m.prompts))
	for i, p := range m.prompts {
		values[i] = p.value
	}
	m = m.resetInput()
	m.flow = flowNone

	switch f {
	case flowSearchTag:
		notes := m.container.SearchNotesHandler.Handle(ctx, queries.SearchNotesQuery{Tag: values[0]})
		return m.showOutput("Notes tagged "+values[0], noteLines(notes)), nil

	case flowSearchText:
		notes := m.container.SearchNotesHandler.Handle(ctx, queries.SearchNotesQuery{Text: values[0]})
		return m.showOutput("Notes matching "+values[0], noteLines(notes)), nil

	case flowAddTask:
		kind := taskKindFromInput(values[4])
		priority, err := strconv.Atoi(strings.TrimSpace(values[3]))
		if err != nil {
			m.mode = modeMenu
			m.status = "Invalid priority: " + values[3]
			return m, nil
		}
		result, err := m.container.AddTaskHandler.Handle(ctx, commands.AddTaskCommand{
			Kind:        kind,
			Title:       values[0],
			Description: values[1],
			Deadline:    values[2],
			Priority:    priority,
			Interval:    values[5],
		})
		if err != nil {
			return m.addResult("", err), nil
		}
		return m.addResult(result.Summary, nil), nil

	case flowAddNote:
		result, err := m.container.AddNoteHandler.Handle(ctx, commands.AddNoteCommand{
			Kind:        noteKindFromInput(values[3]),
			Title:       values[0],
			Description: values[1],
			Tags:        splitTags(values[2]),
			Password:    values[4],
		})
		if err != nil {
			return m.addResult("", err), nil
		}
		return m.addResult(result.Summary, nil), nil

	case flowAddGoal:
		kind := goalKindFromInput(values[3])
		progress, err := strconv.ParseFloat(strings.TrimSpace(values[2]), 64)
		if err != nil {
			m.mode = modeMenu
			m.status = "Invalid progress: " + values[2]
			return m, nil
		}
		result, err := m.container.AddGoalHandler.Handle(ctx, commands.AddGoalCommand{
			Kind:        kind,
			Title:       values[0],
			Description: values[1],
			Progress:    progress,
		})
		if err != nil {
			return m.addResult("", err), nil
		}
		return m.addResult(result.Summary, nil), nil
	}

	m.mode = modeMenu
	return m, nil
}

func (m Model) addResult(summary string, err error) Model {
	m.mode = modeMenu
	if err != nil {
		m.status = "Add failed: " + err.Error()
		return m
	}
	m.status = "Added: " + summary
	return m
}

func (m Model) showOutput(title string, lines []string) Model {
	m.mode = modeOutput
	m.outputTitle = title
	m.lines = lines
	m.status = "esc or enter to go back, q to quit"
	return m
}

func (m Model) resetInput() Model {
	m.input.SetValue("")
	m.input.Blur()
	m.input.EchoMode = textinput.EchoNormal
	return m
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("gtn"))
	b.WriteString("\n\n")

	switch m.mode {
	case modeMenu:
		for i, entry := range menuEntries {
			if i == m.menuCursor {
				b.WriteString(cursorStyle.Render("> " + entry))
			} else {
				b.WriteString("  " + entry)
			}
			b.WriteString("\n")
		}
	case modeOutput:
		b.WriteString(titleStyle.Render(m.outputTitle))
		b.WriteString("\n")
		if len(m.lines) == 0 {
			b.WriteString("Nothing to show.\n")
		}
		for _, line := range m.lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
	case modeSelect:
		for i, rec := range m.records {
			if i == m.selectCursor {
				b.WriteString(cursorStyle.Render("> " + rec.Summary))
			} else {
				b.WriteString("  " + rec.Summary)
			}
			b.WriteString("\n")
		}
	case modePrompt, modePassword:
		if m.mode == modePrompt {
			b.WriteString(fmt.Sprintf("%s (%d of %d)\n", m.prompts[m.promptIdx].label, m.promptIdx+1, len(m.prompts)))
		}
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	return b.String()
}

func recordLines(records []queries.RecordDTO) []string {
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.Summary
	}
	return lines
}

func taskLines(tasks []queries.TaskDTO) []string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = t.Summary
	}
	return lines
}

func noteLines(notes []queries.NoteDTO) []string {
	lines := make([]string, len(notes))
	for i, n := range notes {
		lines[i] = n.Summary
	}
	return lines
}

func goalLines(goals []queries.GoalDTO) []string {
	lines := make([]string, len(goals))
	for i, g := range goals {
		lines[i] = g.Summary
	}
	return lines
}

func splitTags(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			parts[i] = "generic"
		}
	}
	return parts
}

// The type prompts accept the variant name (or its first letters) and
// fall back to the family's base kind on anything else.

func taskKindFromInput(v string) item.Kind {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "recurring", "r":
		return item.KindRecurringTask
	case "one-time", "onetime", "o":
		return item.KindOneTimeTask
	default:
		return item.KindTask
	}
}

func noteKindFromInput(v string) item.Kind {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "protected", "pr":
		return item.KindProtectedNote
	case "public", "pu":
		return item.KindPublicNote
	default:
		return item.KindNote
	}
}

func goalKindFromInput(v string) item.Kind {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "quantifiable", "q":
		return item.KindQuantifiableGoal
	case "non-quantifiable", "nonquantifiable", "n":
		return item.KindNonQuantifiableGoal
	default:
		return item.KindGoal
	}
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
