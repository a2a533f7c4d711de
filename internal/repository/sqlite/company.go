package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/garnizeh/pathfinder/pkg/models"
)

func insertCompany(ctx context.Context, tx execer, pos int, c models.Company) error {
	skills := c.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return fmt.Errorf("encode skills for company %s: %w", c.ID, err)
	}

	q := `INSERT INTO companies (id, position, name, role, url, location, description, required_skills, status, deadline, created, updated) VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`
	if _, err := tx.ExecContext(ctx, q, c.ID, pos, c.Name, c.Role, c.URL, c.Location, c.Description, string(skillsJSON), string(c.Status), nullMillis(c.Deadline), millis(c.CreatedAt), millis(c.UpdatedAt)); err != nil {
		return fmt.Errorf("insert company %s: %w", c.ID, err)
	}
	return nil
}

func (r *SQLiteRepo) loadCompanies(ctx context.Context) ([]models.Company, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, role, url, location, description, required_skills, status, deadline, created, updated FROM companies ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	defer rows.Close()

	out := []models.Company{}
	for rows.Next() {
		var (
			c                models.Company
			skills, status   string
			deadline         sql.NullInt64
			created, updated int64
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Role, &c.URL, &c.Location, &c.Description, &skills, &status, &deadline, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		if err := json.Unmarshal([]byte(skills), &c.RequiredSkills); err != nil {
			return nil, fmt.Errorf("decode skills for company %s: %w", c.ID, err)
		}
		c.Status = models.Status(status)
		c.Deadline = timePtr(deadline)
		c.CreatedAt = fromMillis(created)
		c.UpdatedAt = fromMillis(updated)
		out = append(out, c)
	}
	return out, rows.Err()
}

func insertLink(ctx context.Context, tx execer, pos int, l models.Link) error {
	if _, err := tx.ExecContext(ctx, `INSERT INTO company_contacts (position, company_id, connection_id) VALUES (?,?,?)`, pos, l.CompanyID, l.ConnectionID); err != nil {
		return fmt.Errorf("insert link %s/%s: %w", l.CompanyID, l.ConnectionID, err)
	}
	return nil
}

func (r *SQLiteRepo) loadLinks(ctx context.Context) ([]models.Link, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT company_id, connection_id FROM company_contacts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	out := []models.Link{}
	for rows.Next() {
		var l models.Link
		if err := rows.Scan(&l.CompanyID, &l.ConnectionID); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
