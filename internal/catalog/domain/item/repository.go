package item

import "context"

// Repository persists records outside the session, used by the export
// command. The flat data file is input-only and never written back.
type Repository interface {
	Save(ctx context.Context, r Record) error
	SaveAll(ctx context.Context, records []Record) error
	FindAll(ctx context.Context) ([]Record, error)
}
