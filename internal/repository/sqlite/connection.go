package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/pathfinder/pkg/models"
)

func insertConnection(ctx context.Context, tx execer, pos int, c models.Connection) error {
	q := `INSERT INTO connections (id, position, name, company, role, email, phone, linkedin_url, same_school, same_major, mutual_connections, notes, last_contacted, created, updated) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
	_, err := tx.ExecContext(ctx, q, c.ID, pos, c.Name, c.Company, c.Role, c.Email, c.Phone, c.LinkedInURL,
		boolInt(c.SameSchool), boolInt(c.SameMajor), c.MutualConnections, c.Notes, nullMillis(c.LastContacted), millis(c.CreatedAt), millis(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert connection %s: %w", c.ID, err)
	}
	return nil
}

func (r *SQLiteRepo) loadConnections(ctx context.Context) ([]models.Connection, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, company, role, email, phone, linkedin_url, same_school, same_major, mutual_connections, notes, last_contacted, created, updated FROM connections ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query connections: %w", err)
	}
	defer rows.Close()

	out := []models.Connection{}
	for rows.Next() {
		var (
			c                   models.Connection
			sameSchool, sameMaj int
			lastContacted       sql.NullInt64
			created, updated    int64
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Company, &c.Role, &c.Email, &c.Phone, &c.LinkedInURL, &sameSchool, &sameMaj, &c.MutualConnections, &c.Notes, &lastContacted, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan connection: %w", err)
		}
		c.SameSchool = sameSchool != 0
		c.SameMajor = sameMaj != 0
		c.LastContacted = timePtr(lastContacted)
		c.CreatedAt = fromMillis(created)
		c.UpdatedAt = fromMillis(updated)
		out = append(out, c)
	}
	return out, rows.Err()
}
