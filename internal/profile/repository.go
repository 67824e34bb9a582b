package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okoskine/routina/internal/recommend"
	"github.com/okoskine/routina/internal/sqlite"
)

// repository handles database operations for user profiles.
type repository struct {
	db *sqlite.Database
}

func newRepository(db *sqlite.Database) *repository {
	return &repository{db: db}
}

func (r *repository) get(ctx context.Context, userID string) (recommend.UserProfile, error) {
	var (
		p          recommend.UserProfile
		experience sql.NullString
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT age, weight_kg, height_m, available_days, stated_goal, experience
		FROM profiles
		WHERE user_id = ?`, userID).Scan(
		&p.Age,
		&p.WeightKg,
		&p.HeightM,
		&p.AvailableDays,
		&p.StatedGoal,
		&experience,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return recommend.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return recommend.UserProfile{}, fmt.Errorf("query profile: %w", err)
	}

	if experience.Valid {
		level := recommend.Level(experience.String)
		p.Experience = &level
	}
	return p, nil
}

func (r *repository) set(ctx context.Context, userID string, p recommend.UserProfile) error {
	// The user row may not exist yet for a fresh session.
	if _, err := r.db.ReadWrite.ExecContext(ctx,
		`INSERT OR IGNORE INTO users (id) VALUES (?)`, userID); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}

	var experience any
	if p.Experience != nil {
		experience = string(*p.Experience)
	}

	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO profiles (user_id, age, weight_kg, height_m, available_days, stated_goal, experience)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			age = excluded.age,
			weight_kg = excluded.weight_kg,
			height_m = excluded.height_m,
			available_days = excluded.available_days,
			stated_goal = excluded.stated_goal,
			experience = excluded.experience,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
		userID,
		p.Age,
		p.WeightKg,
		p.HeightM,
		p.AvailableDays,
		string(p.StatedGoal),
		experience,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
