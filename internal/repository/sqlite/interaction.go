package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/pathfinder/pkg/models"
)

func insertInteraction(ctx context.Context, tx execer, pos int, in models.Interaction) error {
	q := `INSERT INTO interactions (id, position, connection_id, target_company_id, type, title, description, date, follow_up_needed, follow_up_date, created) VALUES (?,?,?,?,?,?,?,?,?,?,?)`
	_, err := tx.ExecContext(ctx, q, in.ID, pos, in.ConnectionID, in.TargetCompanyID, string(in.Type), in.Title, in.Description,
		millis(in.Date), boolInt(in.FollowUpNeeded), nullMillis(in.FollowUpDate), millis(in.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert interaction %s: %w", in.ID, err)
	}
	return nil
}

func (r *SQLiteRepo) loadInteractions(ctx context.Context) ([]models.Interaction, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, connection_id, target_company_id, type, title, description, date, follow_up_needed, follow_up_date, created FROM interactions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer rows.Close()

	out := []models.Interaction{}
	for rows.Next() {
		var (
			in            models.Interaction
			typ           string
			date, created int64
			followUp      int
			followUpDate  sql.NullInt64
		)
		if err := rows.Scan(&in.ID, &in.ConnectionID, &in.TargetCompanyID, &typ, &in.Title, &in.Description, &date, &followUp, &followUpDate, &created); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		in.Type = models.InteractionType(typ)
		in.Date = fromMillis(date)
		in.FollowUpNeeded = followUp != 0
		in.FollowUpDate = timePtr(followUpDate)
		in.CreatedAt = fromMillis(created)
		out = append(out, in)
	}
	return out, rows.Err()
}
