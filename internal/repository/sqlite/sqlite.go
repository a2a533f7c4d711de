package sqlite

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/garnizeh/pathfinder/internal/db"
	"github.com/garnizeh/pathfinder/pkg/repository"
)

// SQLiteRepo persists store snapshots using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *zap.Logger
	clock  func() time.Time
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.SnapshotRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *zap.Logger) *SQLiteRepo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLiteRepo{conn: conn, logger: logger, clock: time.Now}
}

// execer is satisfied by *sql.Tx; every snapshot write goes through one.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func millis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func nullMillis(t *time.Time) any {
	if t == nil {
		return nil
	}
	return millis(*t)
}

func timePtr(n sql.NullInt64) *time.Time {
	if !n.Valid {
		return nil
	}
	t := fromMillis(n.Int64)
	return &t
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
