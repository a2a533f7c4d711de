package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/garnizeh/pathfinder/pkg/models"
)

func insertProfile(ctx context.Context, tx execer, p models.UserProfile) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO profile (id, name, email, school, major, graduation_year, updated) VALUES (1, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Email, p.School, p.Major, p.GraduationYear, millis(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *SQLiteRepo) loadProfile(ctx context.Context) (models.UserProfile, error) {
	row := r.conn.QueryRow(ctx, `SELECT name, email, school, major, graduation_year, updated FROM profile WHERE id = 1`)
	var p models.UserProfile
	var updated int64
	if err := row.Scan(&p.Name, &p.Email, &p.School, &p.Major, &p.GraduationYear, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserProfile{}, nil
		}
		return models.UserProfile{}, fmt.Errorf("load profile: %w", err)
	}
	p.UpdatedAt = fromMillis(updated)
	return p, nil
}
