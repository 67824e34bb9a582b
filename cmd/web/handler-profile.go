package main

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/okoskine/routina/internal/recommend"
)

const (
	minAge = 10
	maxAge = 120
)

func validateProfile(p recommend.UserProfile) error {
	if p.Age < minAge || p.Age > maxAge {
		return fmt.Errorf("age must be between %d and %d", minAge, maxAge)
	}
	if p.WeightKg <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if p.HeightM <= 0 {
		return fmt.Errorf("height must be positive")
	}
	if p.AvailableDays < 1 || p.AvailableDays > 7 {
		return fmt.Errorf("available days must be between 1 and 7")
	}
	validGoals := []recommend.Goal{
		recommend.GoalWeightLoss, recommend.GoalMuscleGain, recommend.GoalMaintenance,
		recommend.GoalEndurance, recommend.GoalFlexibility, recommend.GoalGeneralHealth,
	}
	if !slices.Contains(validGoals, p.StatedGoal) {
		return fmt.Errorf("unknown goal %q", p.StatedGoal)
	}
	if p.Experience != nil {
		validLevels := []recommend.Level{
			recommend.LevelBeginner, recommend.LevelIntermediate, recommend.LevelAdvanced,
		}
		if !slices.Contains(validLevels, *p.Experience) {
			return fmt.Errorf("unknown experience level %q", *p.Experience)
		}
	}
	return nil
}

func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	p, err := app.profileService.Get(r.Context())
	if err != nil {
		app.engineError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, p)
}

func (app *application) profilePUT(w http.ResponseWriter, r *http.Request) {
	var p recommend.UserProfile
	if !app.decodeJSON(w, r, &p) {
		return
	}

	if err := validateProfile(p); err != nil {
		app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := app.profileService.Set(r.Context(), p); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, p)
}
