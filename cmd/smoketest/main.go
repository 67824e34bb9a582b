// Command smoketest exercises a running server end to end: it fills in a
// profile, requests a recommendation, and records a progress check-in.
//
// Usage: smoketest <hostname>
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/okoskine/routina/internal/e2etest"
	"github.com/okoskine/routina/internal/logging"
	"github.com/okoskine/routina/internal/recommend"
	"github.com/okoskine/routina/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const testTimeout = 10 * time.Second

// TestCatalog checks the read-only endpoints concurrently.
func TestCatalog(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var routines []recommend.Routine
		status, err := client.GetJSON(ctx, "/api/routines", &routines)
		if err != nil {
			return fmt.Errorf("list routines: %w", err)
		}
		if status != http.StatusOK {
			return fmt.Errorf("list routines: status %d", status)
		}
		if len(routines) == 0 {
			return fmt.Errorf("list routines: empty catalog")
		}
		return nil
	})
	g.Go(func() error {
		var stats struct {
			Total int `json:"total"`
		}
		status, err := client.GetJSON(ctx, "/api/routines/stats", &stats)
		if err != nil {
			return fmt.Errorf("catalog stats: %w", err)
		}
		if status != http.StatusOK {
			return fmt.Errorf("catalog stats: status %d", status)
		}
		if stats.Total == 0 {
			return fmt.Errorf("catalog stats: no routines counted")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("catalog checks: %w", err)
	}
	return nil
}

// TestRecommendationFlow walks the main user journey.
func TestRecommendationFlow(client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	profile := recommend.UserProfile{
		Age:           34,
		WeightKg:      82,
		HeightM:       1.78,
		AvailableDays: 4,
		StatedGoal:    recommend.GoalMuscleGain,
	}
	status, err := client.PutJSON(ctx, "/api/profile", profile, nil)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("save profile: status %d", status)
	}

	var result recommend.Result
	if status, err = client.PostJSON(ctx, "/api/recommendations", nil, &result); err != nil {
		return fmt.Errorf("request recommendation: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("request recommendation: status %d", status)
	}
	if result.Routine.Name == "" {
		return fmt.Errorf("request recommendation: empty routine")
	}

	var checkin struct {
		BMI float64 `json:"bmi"`
	}
	if status, err = client.PostJSON(ctx, "/api/progress/checkins", map[string]float64{"weight_kg": profile.WeightKg}, &checkin); err != nil {
		return fmt.Errorf("record check-in: %w", err)
	}
	if status != http.StatusCreated {
		return fmt.Errorf("record check-in: status %d", status)
	}
	if checkin.BMI == 0 {
		return fmt.Errorf("record check-in: missing BMI")
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestCatalog(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing catalog", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestRecommendationFlow(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing recommendation flow", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
