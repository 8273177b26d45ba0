// Package persistence implements the record repository for the export
// database backends.
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS records (
    id          TEXT PRIMARY KEY,
    kind        TEXT NOT NULL,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    deadline    TEXT NOT NULL DEFAULT '',
    priority    INTEGER NOT NULL DEFAULT 0,
    interval    TEXT NOT NULL DEFAULT '',
    tags        TEXT NOT NULL DEFAULT '',
    password    TEXT NOT NULL DEFAULT '',
    progress    REAL NOT NULL DEFAULT 0,
    created_at  TEXT NOT NULL
)`

// SQLiteRecordRepository implements item.Repository using SQLite.
type SQLiteRecordRepository struct {
	db *sql.DB
}

// NewSQLiteRecordRepository creates a new SQLite record repository.
func NewSQLiteRecordRepository(db *sql.DB) *SQLiteRecordRepository {
	return &SQLiteRecordRepository{db: db}
}

// EnsureSchema creates the records table if it does not exist.
func (r *SQLiteRecordRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("create records table: %w", err)
	}
	return nil
}

// Save upserts a single record.
func (r *SQLiteRecordRepository) Save(ctx context.Context, rec item.Record) error {
	row := toRow(rec)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (id, kind, title, description, deadline, priority, interval, tags, password, progress, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			title = excluded.title,
			description = excluded.description,
			deadline = excluded.deadline,
			priority = excluded.priority,
			interval = excluded.interval,
			tags = excluded.tags,
			password = excluded.password,
			progress = excluded.progress`,
		row.id, row.kind, row.title, row.description, row.deadline,
		row.priority, row.interval, row.tags, row.password, row.progress,
		row.createdAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save record %s: %w", row.id, err)
	}
	return nil
}

// SaveAll upserts records in a single transaction, preserving their
// order for later retrieval.
func (r *SQLiteRecordRepository) SaveAll(ctx context.Context, records []item.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		row := toRow(rec)
		_, err := tx.ExecContext(ctx, `
			INSERT INTO records (id, kind, title, description, deadline, priority, interval, tags, password, progress, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				kind = excluded.kind,
				title = excluded.title,
				description = excluded.description,
				deadline = excluded.deadline,
				priority = excluded.priority,
				interval = excluded.interval,
				tags = excluded.tags,
				password = excluded.password,
				progress = excluded.progress`,
			row.id, row.kind, row.title, row.description, row.deadline,
			row.priority, row.interval, row.tags, row.password, row.progress,
			row.createdAt.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("save record %s: %w", row.id, err)
		}
	}

	return tx.Commit()
}

// FindAll returns every stored record in insertion order.
func (r *SQLiteRecordRepository) FindAll(ctx context.Context) ([]item.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, title, description, deadline, priority, interval, tags, password, progress, created_at
		FROM records
		ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []item.Record
	for rows.Next() {
		var row recordRow
		var createdAt string
		if err := rows.Scan(&row.id, &row.kind, &row.title, &row.description,
			&row.deadline, &row.priority, &row.interval, &row.tags,
			&row.password, &row.progress, &createdAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		row.createdAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for %s: %w", row.id, err)
		}
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// recordRow is the flattened database shape shared by both backends.
type recordRow struct {
	id          string
	kind        string
	title       string
	description string
	deadline    string
	priority    int
	interval    string
	tags        string
	password    string
	progress    float64
	createdAt   time.Time
}

// Tags never contain commas (the source file format is comma-split), so
// a comma join is a safe encoding.
func toRow(rec item.Record) recordRow {
	row := recordRow{
		id:        rec.ID().String(),
		kind:      rec.Kind().String(),
		title:     rec.Title(),
		createdAt: rec.CreatedAt(),
	}
	switch v := rec.(type) {
	case *item.Task:
		row.description = v.Description()
		row.deadline = v.Deadline()
		row.priority = v.Priority()
		row.interval = v.Interval()
	case *item.Note:
		row.description = v.Description()
		row.tags = strings.Join(v.Tags(), ",")
		row.password = v.Password()
	case *item.Goal:
		row.description = v.Description()
		row.progress = v.ProgressValue().Fraction()
	}
	return row
}

func (row recordRow) toRecord() (item.Record, error) {
	id, err := uuid.Parse(row.id)
	if err != nil {
		return nil, fmt.Errorf("parse record id %q: %w", row.id, err)
	}
	kind, err := item.ParseKind(row.kind)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", row.id, err)
	}

	switch kind.Family() {
	case item.FamilyTask:
		return item.RehydrateTask(id, row.createdAt, kind,
			row.title, row.description, row.deadline, row.priority, row.interval), nil
	case item.FamilyNote:
		var tags []string
		if row.tags != "" {
			tags = strings.Split(row.tags, ",")
		}
		return item.RehydrateNote(id, row.createdAt, kind,
			row.title, row.description, tags, row.password), nil
	default:
		return item.RehydrateGoal(id, row.createdAt, kind,
			row.title, row.description, row.progress), nil
	}
}
