package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/pathfinder/pkg/models"
)

func insertReminder(ctx context.Context, tx execer, pos int, rem models.Reminder) error {
	q := `INSERT INTO reminders (id, position, company_id, type, reminder_date, message, completed, completed_at, created) VALUES (?,?,?,?,?,?,?,?,?)`
	_, err := tx.ExecContext(ctx, q, rem.ID, pos, rem.CompanyID, string(rem.Type), millis(rem.ReminderDate), rem.Message,
		boolInt(rem.Completed), nullMillis(rem.CompletedAt), millis(rem.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert reminder %s: %w", rem.ID, err)
	}
	return nil
}

func (r *SQLiteRepo) loadReminders(ctx context.Context) ([]models.Reminder, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, company_id, type, reminder_date, message, completed, completed_at, created FROM reminders ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query reminders: %w", err)
	}
	defer rows.Close()

	out := []models.Reminder{}
	for rows.Next() {
		var (
			rem           models.Reminder
			typ           string
			date, created int64
			completed     int
			completedAt   sql.NullInt64
		)
		if err := rows.Scan(&rem.ID, &rem.CompanyID, &typ, &date, &rem.Message, &completed, &completedAt, &created); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		rem.Type = models.ReminderType(typ)
		rem.ReminderDate = fromMillis(date)
		rem.Completed = completed != 0
		rem.CompletedAt = timePtr(completedAt)
		rem.CreatedAt = fromMillis(created)
		out = append(out, rem)
	}
	return out, rows.Err()
}
