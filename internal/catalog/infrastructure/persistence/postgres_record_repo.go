package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS records (
    seq         BIGSERIAL,
    id          TEXT PRIMARY KEY,
    kind        TEXT NOT NULL,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    deadline    TEXT NOT NULL DEFAULT '',
    priority    INTEGER NOT NULL DEFAULT 0,
    interval    TEXT NOT NULL DEFAULT '',
    tags        TEXT NOT NULL DEFAULT '',
    password    TEXT NOT NULL DEFAULT '',
    progress    DOUBLE PRECISION NOT NULL DEFAULT 0,
    created_at  TIMESTAMPTZ NOT NULL
)`

const postgresUpsert = `
INSERT INTO records (id, kind, title, description, deadline, priority, interval, tags, password, progress, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
    kind = EXCLUDED.kind,
    title = EXCLUDED.title,
    description = EXCLUDED.description,
    deadline = EXCLUDED.deadline,
    priority = EXCLUDED.priority,
    interval = EXCLUDED.interval,
    tags = EXCLUDED.tags,
    password = EXCLUDED.password,
    progress = EXCLUDED.progress`

// PostgresRecordRepository implements item.Repository using PostgreSQL.
type PostgresRecordRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRecordRepository creates a new PostgreSQL record repository.
func NewPostgresRecordRepository(pool *pgxpool.Pool) *PostgresRecordRepository {
	return &PostgresRecordRepository{pool: pool}
}

// EnsureSchema creates the records table if it does not exist.
func (r *PostgresRecordRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("create records table: %w", err)
	}
	return nil
}

// Save upserts a single record.
func (r *PostgresRecordRepository) Save(ctx context.Context, rec item.Record) error {
	row := toRow(rec)
	_, err := r.pool.Exec(ctx, postgresUpsert,
		row.id, row.kind, row.title, row.description, row.deadline,
		row.priority, row.interval, row.tags, row.password, row.progress,
		row.createdAt)
	if err != nil {
		return fmt.Errorf("save record %s: %w", row.id, err)
	}
	return nil
}

// SaveAll upserts records in a single transaction, preserving their
// order for later retrieval.
func (r *PostgresRecordRepository) SaveAll(ctx context.Context, records []item.Record) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, rec := range records {
		row := toRow(rec)
		_, err := tx.Exec(ctx, postgresUpsert,
			row.id, row.kind, row.title, row.description, row.deadline,
			row.priority, row.interval, row.tags, row.password, row.progress,
			row.createdAt)
		if err != nil {
			return fmt.Errorf("save record %s: %w", row.id, err)
		}
	}

	return tx.Commit(ctx)
}

// FindAll returns every stored record in insertion order.
func (r *PostgresRecordRepository) FindAll(ctx context.Context) ([]item.Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, kind, title, description, deadline, priority, interval, tags, password, progress, created_at
		FROM records
		ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []item.Record
	for rows.Next() {
		var row recordRow
		if err := rows.Scan(&row.id, &row.kind, &row.title, &row.description,
			&row.deadline, &row.priority, &row.interval, &row.tags,
			&row.password, &row.progress, &row.createdAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
