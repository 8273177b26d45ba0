package app

import (
	"context"
	"fmt"

	"github.com/gtnlabs/gtn/internal/catalog/domain/item"
	"github.com/gtnlabs/gtn/internal/catalog/infrastructure/persistence"
	"github.com/gtnlabs/gtn/internal/shared/infrastructure/database"
)

// schemaEnsurer is implemented by both repository backends.
type schemaEnsurer interface {
	item.Repository
	EnsureSchema(ctx context.Context) error
}

// OpenRecordRepository opens the export database selected by url and
// returns a ready repository plus a close func for the underlying
// connection. An empty url falls back to a local SQLite file.
func OpenRecordRepository(ctx context.Context, url string) (item.Repository, func(), error) {
	var (
		repo      schemaEnsurer
		closeConn func()
	)

	switch driver := database.DetectDriver(url); driver {
	case database.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, url)
		if err != nil {
			return nil, nil, err
		}
		repo = persistence.NewPostgresRecordRepository(pool)
		closeConn = pool.Close

	case database.DriverSQLite:
		db, err := database.OpenSQLite(ctx, url)
		if err != nil {
			return nil, nil, err
		}
		repo = persistence.NewSQLiteRecordRepository(db)
		closeConn = func() { db.Close() }

	default:
		return nil, nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	if err := repo.EnsureSchema(ctx); err != nil {
		closeConn()
		return nil, nil, err
	}
	return repo, closeConn, nil
}
