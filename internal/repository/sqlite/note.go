package sqlite

import (
	"context"
	"fmt"

	"github.com/garnizeh/pathfinder/pkg/models"
)

func insertNote(ctx context.Context, tx execer, pos int, n models.Note) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO notes (id, position, company_id, content, created, updated) VALUES (?,?,?,?,?,?)`,
		n.ID, pos, n.CompanyID, n.Content, millis(n.CreatedAt), millis(n.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert note %s: %w", n.ID, err)
	}
	return nil
}

func (r *SQLiteRepo) loadNotes(ctx context.Context) ([]models.Note, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, company_id, content, created, updated FROM notes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	out := []models.Note{}
	for rows.Next() {
		var n models.Note
		var created, updated int64
		if err := rows.Scan(&n.ID, &n.CompanyID, &n.Content, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		n.CreatedAt = fromMillis(created)
		n.UpdatedAt = fromMillis(updated)
		out = append(out, n)
	}
	return out, rows.Err()
}

func insertEvent(ctx context.Context, tx execer, pos int, e models.TimelineEvent) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO timeline_events (id, position, company_id, type, title, description, date) VALUES (?,?,?,?,?,?,?)`,
		e.ID, pos, e.CompanyID, string(e.Type), e.Title, e.Description, millis(e.Date))
	if err != nil {
		return fmt.Errorf("insert timeline event %s: %w", e.ID, err)
	}
	return nil
}

func (r *SQLiteRepo) loadTimeline(ctx context.Context) ([]models.TimelineEvent, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, company_id, type, title, description, date FROM timeline_events ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query timeline: %w", err)
	}
	defer rows.Close()

	out := []models.TimelineEvent{}
	for rows.Next() {
		var e models.TimelineEvent
		var typ string
		var date int64
		if err := rows.Scan(&e.ID, &e.CompanyID, &typ, &e.Title, &e.Description, &date); err != nil {
			return nil, fmt.Errorf("scan timeline event: %w", err)
		}
		e.Type = models.EventType(typ)
		e.Date = fromMillis(date)
		out = append(out, e)
	}
	return out, rows.Err()
}
