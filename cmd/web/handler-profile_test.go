package main

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/okoskine/routina/internal/e2etest"
	"github.com/okoskine/routina/internal/recommend"
	"github.com/okoskine/routina/internal/testhelpers"
)

func Test_application_profile(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	t.Run("GET before saving returns not found", func(t *testing.T) {
		var errResp struct {
			Kind string `json:"kind"`
		}
		status, err := client.GetJSON(ctx, "/api/profile", &errResp)
		if err != nil {
			t.Fatalf("Failed to get profile: %v", err)
		}
		if status != http.StatusNotFound {
			t.Errorf("status = %d, want %d", status, http.StatusNotFound)
		}
		if got, want := errResp.Kind, "profile_not_found"; got != want {
			t.Errorf("kind = %q, want %q", got, want)
		}
	})

	t.Run("rejects invalid profile", func(t *testing.T) {
		invalid := recommend.UserProfile{
			Age:           45,
			WeightKg:      95,
			HeightM:       1.7,
			AvailableDays: 9,
			StatedGoal:    recommend.GoalWeightLoss,
		}
		status, err := client.PutJSON(ctx, "/api/profile", invalid, nil)
		if err != nil {
			t.Fatalf("Failed to put profile: %v", err)
		}
		if status != http.StatusUnprocessableEntity {
			t.Errorf("status = %d, want %d", status, http.StatusUnprocessableEntity)
		}
	})

	t.Run("saves and returns the profile", func(t *testing.T) {
		want := recommend.UserProfile{
			Age:           45,
			WeightKg:      95,
			HeightM:       1.7,
			AvailableDays: 3,
			StatedGoal:    recommend.GoalWeightLoss,
		}
		status, err := client.PutJSON(ctx, "/api/profile", want, nil)
		if err != nil {
			t.Fatalf("Failed to put profile: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("status = %d, want %d", status, http.StatusOK)
		}

		var got recommend.UserProfile
		if status, err = client.GetJSON(ctx, "/api/profile", &got); err != nil {
			t.Fatalf("Failed to get profile: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("status = %d, want %d", status, http.StatusOK)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("profile mismatch (-want +got):\n%s", diff)
		}
	})
}
