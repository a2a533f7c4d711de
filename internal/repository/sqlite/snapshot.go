package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/garnizeh/pathfinder/pkg/models"
)

// snapshotTables are cleared before every save, children first.
var snapshotTables = []string{
	"timeline_events",
	"notes",
	"reminders",
	"interactions",
	"company_contacts",
	"connections",
	"companies",
	"profile",
	"snapshots",
}

// SaveSnapshot replaces every stored row with the contents of s in a single
// transaction.
func (r *SQLiteRepo) SaveSnapshot(ctx context.Context, s *models.Snapshot) error {
	if s == nil {
		return fmt.Errorf("snapshot is nil")
	}

	tx, err := r.conn.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}

	if err := r.writeSnapshot(ctx, tx, s); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}

	r.logger.Debug("snapshot saved",
		zap.Int("companies", len(s.Companies)),
		zap.Int("connections", len(s.Connections)),
		zap.Int("interactions", len(s.Interactions)),
		zap.Int("reminders", len(s.Reminders)),
	)
	return nil
}

func (r *SQLiteRepo) writeSnapshot(ctx context.Context, tx execer, s *models.Snapshot) error {
	for _, table := range snapshotTables {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := insertProfile(ctx, tx, s.Profile); err != nil {
		return err
	}
	for i, c := range s.Companies {
		if err := insertCompany(ctx, tx, i, c); err != nil {
			return err
		}
	}
	for i, c := range s.Connections {
		if err := insertConnection(ctx, tx, i, c); err != nil {
			return err
		}
	}
	for i, l := range s.Links {
		if err := insertLink(ctx, tx, i, l); err != nil {
			return err
		}
	}
	for i, in := range s.Interactions {
		if err := insertInteraction(ctx, tx, i, in); err != nil {
			return err
		}
	}
	for i, rem := range s.Reminders {
		if err := insertReminder(ctx, tx, i, rem); err != nil {
			return err
		}
	}
	for i, n := range s.Notes {
		if err := insertNote(ctx, tx, i, n); err != nil {
			return err
		}
	}
	for i, e := range s.Timeline {
		if err := insertEvent(ctx, tx, i, e); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO snapshots (id, saved) VALUES (1, ?)`, millis(r.clock())); err != nil {
		return fmt.Errorf("record snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads back the last saved snapshot, or nil when none was saved.
func (r *SQLiteRepo) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	var saved int64
	if err := r.conn.QueryRow(ctx, `SELECT saved FROM snapshots WHERE id = 1`).Scan(&saved); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot marker: %w", err)
	}

	s := &models.Snapshot{}
	var err error
	if s.Profile, err = r.loadProfile(ctx); err != nil {
		return nil, err
	}
	if s.Companies, err = r.loadCompanies(ctx); err != nil {
		return nil, err
	}
	if s.Connections, err = r.loadConnections(ctx); err != nil {
		return nil, err
	}
	if s.Links, err = r.loadLinks(ctx); err != nil {
		return nil, err
	}
	if s.Interactions, err = r.loadInteractions(ctx); err != nil {
		return nil, err
	}
	if s.Reminders, err = r.loadReminders(ctx); err != nil {
		return nil, err
	}
	if s.Notes, err = r.loadNotes(ctx); err != nil {
		return nil, err
	}
	if s.Timeline, err = r.loadTimeline(ctx); err != nil {
		return nil, err
	}

	r.logger.Debug("snapshot loaded", zap.Time("saved", fromMillis(saved)))
	return s, nil
}
