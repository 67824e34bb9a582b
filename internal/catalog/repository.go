package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okoskine/routina/internal/recommend"
	"github.com/okoskine/routina/internal/sqlite"
)

// repository handles database operations for the routine catalog.
type repository struct {
	db *sqlite.Database
}

func newRepository(db *sqlite.Database) *repository {
	return &repository{db: db}
}

func (r *repository) list(ctx context.Context) ([]recommend.Routine, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, description, level, goal, intensity, days_per_week, duration_minutes, contraindications
		FROM routines
		WHERE active = 1
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query routines: %w", err)
	}
	defer rows.Close()

	var routines []recommend.Routine
	byID := make(map[int]int)
	for rows.Next() {
		var routine recommend.Routine
		if err = rows.Scan(
			&routine.ID,
			&routine.Name,
			&routine.Description,
			&routine.Level,
			&routine.Goal,
			&routine.Intensity,
			&routine.DaysPerWeek,
			&routine.DurationMinutes,
			&routine.Contraindications,
		); err != nil {
			return nil, fmt.Errorf("scan routine: %w", err)
		}
		byID[routine.ID] = len(routines)
		routines = append(routines, routine)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate routines: %w", err)
	}

	if err = r.attachExercises(ctx, routines, byID); err != nil {
		return nil, err
	}
	return routines, nil
}

// attachExercises loads the ordered exercise lists for the given routines in
// a single query.
func (r *repository) attachExercises(ctx context.Context, routines []recommend.Routine, byID map[int]int) error {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT routine_id, name
		FROM routine_exercises
		ORDER BY routine_id, position`)
	if err != nil {
		return fmt.Errorf("query routine exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			routineID int
			name      string
		)
		if err = rows.Scan(&routineID, &name); err != nil {
			return fmt.Errorf("scan routine exercise: %w", err)
		}
		idx, ok := byID[routineID]
		if !ok {
			// Exercise belongs to an inactive routine.
			continue
		}
		routines[idx].Exercises = append(routines[idx].Exercises, name)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("iterate routine exercises: %w", err)
	}
	return nil
}

func (r *repository) get(ctx context.Context, id int) (recommend.Routine, error) {
	var routine recommend.Routine
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, name, description, level, goal, intensity, days_per_week, duration_minutes, contraindications
		FROM routines
		WHERE id = ? AND active = 1`, id).Scan(
		&routine.ID,
		&routine.Name,
		&routine.Description,
		&routine.Level,
		&routine.Goal,
		&routine.Intensity,
		&routine.DaysPerWeek,
		&routine.DurationMinutes,
		&routine.Contraindications,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return recommend.Routine{}, ErrNotFound
	}
	if err != nil {
		return recommend.Routine{}, fmt.Errorf("query routine: %w", err)
	}

	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT name
		FROM routine_exercises
		WHERE routine_id = ?
		ORDER BY position`, id)
	if err != nil {
		return recommend.Routine{}, fmt.Errorf("query routine exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return recommend.Routine{}, fmt.Errorf("scan routine exercise: %w", err)
		}
		routine.Exercises = append(routine.Exercises, name)
	}
	if err = rows.Err(); err != nil {
		return recommend.Routine{}, fmt.Errorf("iterate routine exercises: %w", err)
	}
	return routine, nil
}
