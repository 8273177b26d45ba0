// Package loader reads the flat data file into typed records. The file
// is input only; nothing in the system ever writes it back.
package loader

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

// Loader parses one comma-separated record per line. Malformed numeric
// fields fall back to the zero value and are logged, never fatal; lines
// with an unknown type tag or an empty title are skipped with a warning.
type Loader struct {
	logger *slog.Logger
}

// New creates a new Loader.
func New(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads every record from the file at path, in file order. A
// missing file is not an error; it yields an empty session.
func (l *Loader) Load(ctx context.Context, path string) ([]item.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.InfoContext(ctx, "data file not found, starting empty", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	var records []item.Record
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := l.ParseLine(line)
		if err != nil {
			l.logger.WarnContext(ctx, "skipping malformed record line",
				"path", path, "line", lineNo, "error", err)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	l.logger.InfoContext(ctx, "data file loaded", "path", path, "records", len(records))
	return records, nil
}

// ParseLine builds one record from a comma-separated line.
func (l *Loader) ParseLine(line string) (item.Record, error) {
	fields := strings.Split(line, ",")

	kind, err := item.ParseKind(fields[0])
	if err != nil {
		return nil, err
	}

	switch kind.Family() {
	case item.FamilyTask:
		return l.parseTask(kind, fields)
	case item.FamilyNote:
		return l.parseNote(kind, fields)
	default:
		return l.parseGoal(kind, fields)
	}
}

// Task family: type, title, description, deadline, priority[, interval].
// A recurring interval runs to the end of the line, commas included.
func (l *Loader) parseTask(kind item.Kind, fields []string) (item.Record, error) {
	title := fieldAt(fields, 1)
	description := fieldAt(fields, 2)
	deadline := fieldAt(fields, 3)
	priority := l.parseInt(fieldAt(fields, 4), title)

	switch kind {
	case item.KindRecurringTask:
		interval := ""
		if len(fields) > 5 {
			interval = strings.Join(fields[5:], ",")
		}
		return item.NewRecurringTask(title, description, deadline, priority, interval)
	case item.KindOneTimeTask:
		return item.NewOneTimeTask(title, description, deadline, priority)
	default:
		return item.NewTask(title, description, deadline, priority)
	}
}

// Note family: type, title, description, tags...[, password]. Every
// field between the description and the (protected-only) trailing
// password is a tag; empty tags are normalized to "generic" here, at
// creation time, so the core stores them as given.
func (l *Loader) parseNote(kind item.Kind, fields []string) (item.Record, error) {
	title := fieldAt(fields, 1)
	description := fieldAt(fields, 2)

	rest := []string{}
	if len(fields) > 3 {
		rest = fields[3:]
	}

	if kind == item.KindProtectedNote {
		password := ""
		if len(rest) > 0 {
			password = rest[len(rest)-1]
			rest = rest[:len(rest)-1]
		}
		return item.NewProtectedNote(title, description, normalizeTags(rest), password)
	}
	if kind == item.KindPublicNote {
		return item.NewPublicNote(title, description, normalizeTags(rest))
	}
	return item.NewNote(title, description, normalizeTags(rest))
}

// Goal family: type, title, description, progress.
func (l *Loader) parseGoal(kind item.Kind, fields []string) (item.Record, error) {
	title := fieldAt(fields, 1)
	description := fieldAt(fields, 2)
	progress := l.parseFloat(fieldAt(fields, 3), title)

	switch kind {
	case item.KindQuantifiableGoal:
		return item.NewQuantifiableGoal(title, description, progress)
	case item.KindNonQuantifiableGoal:
		return item.NewNonQuantifiableGoal(title, description, progress)
	default:
		return item.NewGoal(title, description, progress)
	}
}

func (l *Loader) parseInt(s, title string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		l.logger.Warn("malformed priority, using zero", "title", title, "value", s)
		return 0
	}
	return n
}

func (l *Loader) parseFloat(s, title string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		l.logger.Warn("malformed progress, using zero", "title", title, "value", s)
		return 0
	}
	return f
}

func fieldAt(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

func normalizeTags(tags []string) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		if t == "" {
			out[i] = "generic"
		} else {
			out[i] = t
		}
	}
	return out
}
