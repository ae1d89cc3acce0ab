package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"contentcraft/internal/domain/repositories"
)

// ProjectLocker serializes generation per project with a session-level
// Postgres advisory lock. The lock lives on a dedicated pooled connection
// so it survives across the autocommit writes generation performs; partial
// results stay visible even when a later section fails.
type ProjectLocker struct {
	pool *pgxpool.Pool
}

// NewProjectLocker creates an advisory-lock based project locker
func NewProjectLocker(pool *pgxpool.Pool) repositories.ProjectLocker {
	return &ProjectLocker{pool: pool}
}

func (l *ProjectLocker) TryLock(ctx context.Context, projectID string) (func(), bool, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("acquiring lock connection: %w", err)
	}

	var locked bool
	err = conn.QueryRow(ctx, `SELECT pg_try_advisory_lock(hashtext($1))`, projectID).Scan(&locked)
	if err != nil {
		conn.Release()
		return nil, false, fmt.Errorf("acquiring project lock: %w", err)
	}
	if !locked {
		conn.Release()
		return nil, false, nil
	}

	release := func() {
		// Unlock with a fresh context: the request context may already be
		// canceled when release runs in a defer.
		if _, err := conn.Exec(context.Background(), `SELECT pg_advisory_unlock(hashtext($1))`, projectID); err != nil {
			slog.Warn("failed to release project lock", "project_id", projectID, "error", err)
		}
		conn.Release()
	}
	return release, true, nil
}
