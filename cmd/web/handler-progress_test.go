package main

import (
	"net/http"
	"testing"

	"github.com/okoskine/routina/internal/e2etest"
	"github.com/okoskine/routina/internal/recommend"
	"github.com/okoskine/routina/internal/testhelpers"
)

func Test_application_progress(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	t.Run("check-in requires a profile", func(t *testing.T) {
		var errResp struct {
			Kind string `json:"kind"`
		}
		status, err := client.PostJSON(ctx, "/api/progress/checkins", map[string]float64{"weight_kg": 82}, &errResp)
		if err != nil {
			t.Fatalf("Failed to post check-in: %v", err)
		}
		if status != http.StatusNotFound {
			t.Errorf("status = %d, want %d", status, http.StatusNotFound)
		}
		if got, want := errResp.Kind, "profile_not_found"; got != want {
			t.Errorf("kind = %q, want %q", got, want)
		}
	})

	profile := recommend.UserProfile{
		Age:           34,
		WeightKg:      82,
		HeightM:       1.78,
		AvailableDays: 4,
		StatedGoal:    recommend.GoalWeightLoss,
	}
	if status, err := client.PutJSON(ctx, "/api/profile", profile, nil); err != nil || status != http.StatusOK {
		t.Fatalf("Failed to save profile: status=%d err=%v", status, err)
	}

	t.Run("records check-ins", func(t *testing.T) {
		var checkin struct {
			ID  int     `json:"id"`
			BMI float64 `json:"bmi"`
		}
		status, err := client.PostJSON(ctx, "/api/progress/checkins", map[string]float64{"weight_kg": 82}, &checkin)
		if err != nil {
			t.Fatalf("Failed to post check-in: %v", err)
		}
		if status != http.StatusCreated {
			t.Fatalf("status = %d, want %d", status, http.StatusCreated)
		}
		if got, want := checkin.BMI, 25.88; got != want {
			t.Errorf("bmi = %v, want %v", got, want)
		}
	})

	t.Run("rejects non-positive weight", func(t *testing.T) {
		status, err := client.PostJSON(ctx, "/api/progress/checkins", map[string]float64{"weight_kg": 0}, nil)
		if err != nil {
			t.Fatalf("Failed to post check-in: %v", err)
		}
		if status != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want %d", status, http.StatusUnprocessableEntity)
		}
	})

	t.Run("summarizes the history", func(t *testing.T) {
		if status, err := client.PostJSON(ctx, "/api/progress/checkins", map[string]float64{"weight_kg": 79.5}, nil); err != nil || status != http.StatusCreated {
			t.Fatalf("Failed to post check-in: status=%d err=%v", status, err)
		}

		var history []struct {
			WeightKg float64 `json:"weight_kg"`
		}
		status, err := client.GetJSON(ctx, "/api/progress", &history)
		if err != nil {
			t.Fatalf("Failed to get history: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("status = %d, want %d", status, http.StatusOK)
		}
		if got, want := len(history), 2; got != want {
			t.Fatalf("got %d check-ins, want %d", got, want)
		}

		var summary struct {
			Total      int     `json:"total"`
			AverageBMI float64 `json:"average_bmi"`
			Trend      string  `json:"trend"`
		}
		if status, err = client.GetJSON(ctx, "/api/progress/summary", &summary); err != nil {
			t.Fatalf("Failed to get summary: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("status = %d, want %d", status, http.StatusOK)
		}
		if got, want := summary.Total, 2; got != want {
			t.Errorf("total = %d, want %d", got, want)
		}
		if got, want := summary.Trend, "improving"; got != want {
			t.Errorf("trend = %q, want %q", got, want)
		}
	})
}
