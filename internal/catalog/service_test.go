package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/okoskine/routina/internal/catalog"
	"github.com/okoskine/routina/internal/errors"
	"github.com/okoskine/routina/internal/recommend"
	"github.com/okoskine/routina/internal/sqlite"
	"github.com/okoskine/routina/internal/testhelpers"
)

func newTestService(t *testing.T) *catalog.Service {
	t.Helper()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})
	return catalog.NewService(db, logger)
}

func TestService_List(t *testing.T) {
	svc := newTestService(t)

	routines, err := svc.List(t.Context())
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if got, want := len(routines), 10; got != want {
		t.Fatalf("List() returned %d routines, want %d seed fixtures", got, want)
	}

	// IDs come back in catalog order.
	for i, r := range routines {
		if r.ID != i+1 {
			t.Errorf("routine at index %d has ID %d, want %d", i, r.ID, i+1)
		}
	}

	first := routines[0]
	want := recommend.Routine{
		ID:              1,
		Name:            "Gentle Cardio",
		Description:     first.Description, // free text, asserted non-empty below
		Level:           recommend.LevelBeginner,
		Goal:            recommend.GoalMaintenance,
		Intensity:       recommend.IntensityLow,
		DaysPerWeek:     3,
		DurationMinutes: 30,
		Exercises: []string{
			"Brisk walk (15 min)",
			"Stationary bike (10 min)",
			"Stretching (5 min)",
		},
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("first routine mismatch (-want +got):\n%s", diff)
	}
	if first.Description == "" {
		t.Error("expected seeded routine to have a description")
	}
}

func TestService_Get(t *testing.T) {
	svc := newTestService(t)

	routine, err := svc.Get(t.Context(), 3)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if got, want := routine.Name, "Advanced Muscle Building"; got != want {
		t.Errorf("Name = %q, want %q", got, want)
	}
	if got, want := routine.Level, recommend.LevelAdvanced; got != want {
		t.Errorf("Level = %v, want %v", got, want)
	}
	if len(routine.Exercises) == 0 {
		t.Error("expected routine to include its exercise list")
	}
}

func TestService_GetMissing(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Get(t.Context(), 999); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestService_Stats(t *testing.T) {
	svc := newTestService(t)

	stats, err := svc.Stats(t.Context())
	if err != nil {
		t.Fatalf("Stats() unexpected error: %v", err)
	}
	want := catalog.Stats{Total: 10, AvgDuration: 41.5, AvgDaysPerWeek: 4.0}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}
