// Package progress records weight check-ins over time and summarizes how the
// user's BMI is trending.
package progress

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/okoskine/routina/internal/contexthelpers"
	"github.com/okoskine/routina/internal/errors"
	"github.com/okoskine/routina/internal/profile"
	"github.com/okoskine/routina/internal/recommend"
	"github.com/okoskine/routina/internal/sqlite"
)

// Trend describes the direction the user's BMI has moved between the first
// and the most recent check-in.
type Trend string

const (
	TrendImproving        Trend = "improving"
	TrendWorsening        Trend = "worsening"
	TrendSteady           Trend = "steady"
	TrendInsufficientData Trend = "insufficient_data"
)

// BMI changes smaller than this are reported as steady.
const steadyBMITolerance = 0.1

// Checkin is a single recorded weight measurement.
type Checkin struct {
	ID         int       `json:"id"`
	RecordedAt time.Time `json:"recorded_at"`
	WeightKg   float64   `json:"weight_kg"`
	BMI        float64   `json:"bmi"`
}

// Summary aggregates a user's check-in history.
type Summary struct {
	Total      int     `json:"total"`
	AverageBMI float64 `json:"average_bmi"`
	Trend      Trend   `json:"trend"`
}

// Service records and summarizes progress check-ins for the session user.
type Service struct {
	repo     *repository
	profiles *profile.Service
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new progress service. The profile service supplies the
// stored height used to derive BMI from each check-in weight.
func NewService(db *sqlite.Database, profiles *profile.Service, logger *slog.Logger) *Service {
	return &Service{
		repo:     newRepository(db),
		profiles: profiles,
		logger:   logger,
		now:      time.Now,
	}
}

// Record stores a new weight check-in for the current user. The BMI is
// derived from the weight and the height stored on the user's profile, so a
// profile must exist before the first check-in.
func (s *Service) Record(ctx context.Context, weightKg float64) (Checkin, error) {
	userID := contexthelpers.CurrentUserID(ctx)
	if userID == "" {
		return Checkin{}, profile.ErrNoUser
	}

	p, err := s.profiles.Get(ctx)
	if err != nil {
		return Checkin{}, errors.Wrap(err, "load profile for check-in")
	}

	bmi, err := recommend.BMI(weightKg, p.HeightM)
	if err != nil {
		return Checkin{}, errors.Wrap(err, "compute check-in BMI")
	}

	checkin := Checkin{
		RecordedAt: s.now().UTC().Truncate(time.Second),
		WeightKg:   weightKg,
		BMI:        roundToTwoDecimals(bmi),
	}
	checkin.ID, err = s.repo.insert(ctx, userID, checkin)
	if err != nil {
		return Checkin{}, errors.Wrap(err, "record check-in")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "check-in recorded",
		slog.Float64("weight_kg", weightKg), slog.Float64("bmi", checkin.BMI))
	return checkin, nil
}

// History returns the current user's check-ins in chronological order.
func (s *Service) History(ctx context.Context) ([]Checkin, error) {
	userID := contexthelpers.CurrentUserID(ctx)
	if userID == "" {
		return nil, profile.ErrNoUser
	}

	checkins, err := s.repo.list(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list check-ins")
	}
	return checkins, nil
}

// Summarize aggregates the current user's history. With fewer than two
// check-ins the trend is reported as insufficient data.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	checkins, err := s.History(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Total: len(checkins), Trend: TrendInsufficientData}
	if len(checkins) == 0 {
		return summary, nil
	}

	var bmiSum float64
	for _, c := range checkins {
		bmiSum += c.BMI
	}
	summary.AverageBMI = roundToTwoDecimals(bmiSum / float64(len(checkins)))

	if len(checkins) >= 2 {
		summary.Trend = trendBetween(checkins[0].BMI, checkins[len(checkins)-1].BMI)
	}
	return summary, nil
}

func trendBetween(first, last float64) Trend {
	switch delta := last - first; {
	case math.Abs(delta) < steadyBMITolerance:
		return TrendSteady
	case delta < 0:
		return TrendImproving
	default:
		return TrendWorsening
	}
}

func roundToTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}
