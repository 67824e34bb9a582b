package recommend

import (
	"context"
	"log/slog"

	"github.com/okoskine/routina/internal/errors"
)

// Recommend runs the full pipeline for one profile against a catalog
// snapshot: classify, safety-filter, score, rank, select, explain.
//
// A negative alternativesLimit selects DefaultAlternativesLimit. The catalog
// is never mutated. Failures are terminal sentinels; given the same inputs the
// same failure recurs, so retrying is pointless and no step retries.
func Recommend(p UserProfile, catalog []Routine, alternativesLimit int) (Result, error) {
	cp, err := Classify(p)
	if err != nil {
		return Result{}, err
	}

	if len(catalog) == 0 {
		return Result{}, errors.Wrap(ErrNoRoutinesAvailable, "catalog is empty")
	}

	safe, precautions := filterSafe(cp, catalog)
	if len(safe) == 0 {
		return Result{}, &NoSafeRoutineError{Precautions: precautions}
	}

	scored := scoreAll(safe, cp)
	// Scoring excludes nothing today, so this is unreachable, but the scorer
	// contract does not promise that.
	if len(scored) == 0 {
		return Result{}, errors.Wrap(ErrNoCompatibleRoutineFound, "scoring produced empty list")
	}

	if alternativesLimit < 0 {
		alternativesLimit = DefaultAlternativesLimit
	}
	primary, alternatives := selectTop(rank(scored), alternativesLimit)

	return Result{
		Profile:           cp,
		Routine:           primary.Routine,
		Score:             primary.Score,
		Safety:            CheckSafety(cp, primary.Routine),
		Rationale:         buildRationale(cp, primary.Routine),
		Alternatives:      alternatives,
		EstimatedCalories: EstimateCalories(primary.Routine.DurationMinutes, primary.Routine.Intensity, p.WeightKg),
	}, nil
}

// CatalogProvider supplies the routine catalog snapshot. Implementations must
// return a slice the engine may read without further synchronization.
type CatalogProvider interface {
	List(ctx context.Context) ([]Routine, error)
}

// Service handles the business logic for generating recommendations.
type Service struct {
	catalog CatalogProvider
	logger  *slog.Logger
}

// NewService creates a new recommendation service.
func NewService(catalog CatalogProvider, logger *slog.Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// Classify derives a classified profile without touching the catalog.
func (s *Service) Classify(_ context.Context, p UserProfile) (ClassifiedProfile, error) {
	return Classify(p)
}

// RecommendForUser fetches the catalog and runs the recommendation pipeline.
func (s *Service) RecommendForUser(ctx context.Context, p UserProfile, alternativesLimit int) (Result, error) {
	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return Result{}, errors.Wrap(err, "fetch routine catalog")
	}

	result, err := Recommend(p, catalog, alternativesLimit)
	if err != nil {
		return Result{}, err
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "recommendation generated",
		slog.Int("routine_id", result.Routine.ID),
		slog.Float64("score", result.Score),
		slog.Int("alternatives", len(result.Alternatives)),
	)
	return result, nil
}
