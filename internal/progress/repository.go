package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/okoskine/routina/internal/sqlite"
)

// repository handles database operations for progress check-ins.
type repository struct {
	db *sqlite.Database
}

func newRepository(db *sqlite.Database) *repository {
	return &repository{db: db}
}

func (r *repository) insert(ctx context.Context, userID string, c Checkin) (int, error) {
	result, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO progress_checkins (user_id, recorded_at, weight_kg, bmi)
		VALUES (?, ?, ?, ?)`,
		userID,
		c.RecordedAt.Format(time.RFC3339),
		c.WeightKg,
		c.BMI,
	)
	if err != nil {
		return 0, fmt.Errorf("insert check-in: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("check-in insert id: %w", err)
	}
	return int(id), nil
}

func (r *repository) list(ctx context.Context, userID string) ([]Checkin, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, recorded_at, weight_kg, bmi
		FROM progress_checkins
		WHERE user_id = ?
		ORDER BY recorded_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query check-ins: %w", err)
	}
	defer rows.Close()

	var checkins []Checkin
	for rows.Next() {
		var (
			c          Checkin
			recordedAt string
		)
		if err = rows.Scan(&c.ID, &recordedAt, &c.WeightKg, &c.BMI); err != nil {
			return nil, fmt.Errorf("scan check-in: %w", err)
		}
		if c.RecordedAt, err = time.Parse(time.RFC3339, recordedAt); err != nil {
			return nil, fmt.Errorf("parse check-in timestamp: %w", err)
		}
		checkins = append(checkins, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate check-ins: %w", err)
	}
	return checkins, nil
}
