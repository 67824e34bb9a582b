package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/okoskine/routina/internal/e2etest"
	"github.com/okoskine/routina/internal/testhelpers"
)

type routineJSON struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DescriptionHTML string   `json:"description_html"`
	Level           string   `json:"level"`
	Exercises       []string `json:"exercises"`
}

func Test_application_routines(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	t.Run("lists the seeded catalog", func(t *testing.T) {
		var routines []routineJSON
		status, err := client.GetJSON(ctx, "/api/routines", &routines)
		if err != nil {
			t.Fatalf("Failed to list routines: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("status = %d, want %d", status, http.StatusOK)
		}
		if got, want := len(routines), 10; got != want {
			t.Fatalf("got %d routines, want %d", got, want)
		}
		first := routines[0]
		if got, want := first.Name, "Gentle Cardio"; got != want {
			t.Errorf("first routine = %q, want %q", got, want)
		}
		if !strings.HasPrefix(first.DescriptionHTML, "<p>") {
			t.Errorf("expected rendered description, got %q", first.DescriptionHTML)
		}
	})

	t.Run("gets a single routine", func(t *testing.T) {
		var routine routineJSON
		status, err := client.GetJSON(ctx, "/api/routines/3", &routine)
		if err != nil {
			t.Fatalf("Failed to get routine: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("status = %d, want %d", status, http.StatusOK)
		}
		if got, want := routine.Name, "Advanced Muscle Building"; got != want {
			t.Errorf("routine = %q, want %q", got, want)
		}
		if len(routine.Exercises) == 0 {
			t.Error("expected the routine to include exercises")
		}
	})

	t.Run("missing routine returns not found", func(t *testing.T) {
		var errResp struct {
			Kind string `json:"kind"`
		}
		status, err := client.GetJSON(ctx, "/api/routines/999", &errResp)
		if err != nil {
			t.Fatalf("Failed to get routine: %v", err)
		}
		if status != http.StatusNotFound {
			t.Errorf("status = %d, want %d", status, http.StatusNotFound)
		}
		if got, want := errResp.Kind, "routine_not_found"; got != want {
			t.Errorf("kind = %q, want %q", got, want)
		}
	})

	t.Run("reports catalog stats", func(t *testing.T) {
		var stats struct {
			Total          int     `json:"total"`
			AvgDuration    float64 `json:"avg_duration_minutes"`
			AvgDaysPerWeek float64 `json:"avg_days_per_week"`
		}
		status, err := client.GetJSON(ctx, "/api/routines/stats", &stats)
		if err != nil {
			t.Fatalf("Failed to get stats: %v", err)
		}
		if status != http.StatusOK {
			t.Fatalf("status = %d, want %d", status, http.StatusOK)
		}
		if got, want := stats.Total, 10; got != want {
			t.Errorf("total = %d, want %d", got, want)
		}
		if got, want := stats.AvgDuration, 41.5; got != want {
			t.Errorf("avg duration = %v, want %v", got, want)
		}
	})
}
