// Package profile stores the per-user biometric and lifestyle profile that
// feeds the recommendation engine.
package profile

import (
	"context"
	"log/slog"

	"github.com/okoskine/routina/internal/contexthelpers"
	"github.com/okoskine/routina/internal/errors"
	"github.com/okoskine/routina/internal/recommend"
	"github.com/okoskine/routina/internal/sqlite"
)

var (
	// ErrNotFound is returned when the user has not filled in a profile yet.
	ErrNotFound = errors.NewSentinel("profile not found")
	// ErrNoUser is returned when the request carries no session user.
	ErrNoUser = errors.NewSentinel("no current user")
)

// Service handles profile persistence for the session user.
type Service struct {
	repo   *repository
	logger *slog.Logger
}

// NewService creates a new profile service.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newRepository(db),
		logger: logger,
	}
}

// Get retrieves the stored profile for the current user.
func (s *Service) Get(ctx context.Context) (recommend.UserProfile, error) {
	userID := contexthelpers.CurrentUserID(ctx)
	if userID == "" {
		return recommend.UserProfile{}, ErrNoUser
	}

	p, err := s.repo.get(ctx, userID)
	if err != nil {
		return recommend.UserProfile{}, errors.Wrap(err, "get profile")
	}
	return p, nil
}

// Set stores the profile for the current user, replacing any previous one.
func (s *Service) Set(ctx context.Context, p recommend.UserProfile) error {
	userID := contexthelpers.CurrentUserID(ctx)
	if userID == "" {
		return ErrNoUser
	}

	if err := s.repo.set(ctx, userID, p); err != nil {
		return errors.Wrap(err, "set profile")
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "profile saved",
		slog.Int("age", p.Age), slog.Int("available_days", p.AvailableDays))
	return nil
}
