// Package catalog provides read access to the routine catalog backing the
// recommendation engine.
package catalog

import (
	"context"
	"log/slog"
	"math"

	"github.com/okoskine/routina/internal/errors"
	"github.com/okoskine/routina/internal/recommend"
	"github.com/okoskine/routina/internal/sqlite"
)

// ErrNotFound is returned when a routine does not exist or is inactive.
var ErrNotFound = errors.NewSentinel("routine not found")

// Stats summarizes the active catalog.
type Stats struct {
	Total          int     `json:"total"`
	AvgDuration    float64 `json:"avg_duration_minutes"`
	AvgDaysPerWeek float64 `json:"avg_days_per_week"`
}

// Service handles routine catalog lookups. It satisfies
// recommend.CatalogProvider.
type Service struct {
	repo   *repository
	logger *slog.Logger
}

// NewService creates a new catalog service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newRepository(db),
		logger: logger,
	}
}

// List returns every active routine in ID order.
func (s *Service) List(ctx context.Context) ([]recommend.Routine, error) {
	routines, err := s.repo.list(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list routines")
	}
	return routines, nil
}

// Get returns a single active routine by ID.
func (s *Service) Get(ctx context.Context, id int) (recommend.Routine, error) {
	routine, err := s.repo.get(ctx, id)
	if err != nil {
		return recommend.Routine{}, errors.Wrap(err, "get routine", slog.Int("routine_id", id))
	}
	return routine, nil
}

// Stats computes summary statistics over the active catalog.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	routines, err := s.repo.list(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "list routines for stats")
	}
	if len(routines) == 0 {
		return Stats{}, nil
	}

	var durationSum, daysSum int
	for _, r := range routines {
		durationSum += r.DurationMinutes
		daysSum += r.DaysPerWeek
	}
	total := float64(len(routines))
	return Stats{
		Total:          len(routines),
		AvgDuration:    roundToOneDecimal(float64(durationSum) / total),
		AvgDaysPerWeek: roundToOneDecimal(float64(daysSum) / total),
	}, nil
}

func roundToOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
