package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"contentcraft/internal/domain/repositories"
)

// TableNames holds the environment-prefixed table names so that prod, dev
// and test data can share a database without colliding.
type TableNames struct {
	Identities string
	Projects   string
	Sections   string
	Revisions  string
	Feedback   string
	Comments   string
}

// NewTableNames builds the table name set for a given prefix (e.g. "dev_")
func NewTableNames(prefix string) TableNames {
	return TableNames{
		Identities: prefix + "identities",
		Projects:   prefix + "projects",
		Sections:   prefix + "sections",
		Revisions:  prefix + "revisions",
		Feedback:   prefix + "feedback",
		Comments:   prefix + "comments",
	}
}

// RepositoryConfig carries the shared state every repository needs
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables TableNames
}

// CreateConnectionPool creates a pgx connection pool and verifies it
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return pool, nil
}

// GetExecutor returns the transaction bound to the context if one exists,
// otherwise the pool. Repositories call this for every query so that the
// same code path works inside and outside a transaction.
func GetExecutor(ctx context.Context, pool *pgxpool.Pool) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return pool
}
