package main

import (
	"net/http"

	"github.com/okoskine/routina/internal/progress"
)

type checkinRequest struct {
	WeightKg float64 `json:"weight_kg"`
}

func (app *application) progressGET(w http.ResponseWriter, r *http.Request) {
	history, err := app.progressService.History(r.Context())
	if err != nil {
		app.engineError(w, r, err)
		return
	}
	if history == nil {
		history = []progress.Checkin{}
	}
	app.writeJSON(w, r, http.StatusOK, history)
}

func (app *application) progressSummaryGET(w http.ResponseWriter, r *http.Request) {
	summary, err := app.progressService.Summarize(r.Context())
	if err != nil {
		app.engineError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, summary)
}

func (app *application) checkinPOST(w http.ResponseWriter, r *http.Request) {
	var req checkinRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}
	if req.WeightKg <= 0 {
		app.clientError(w, r, http.StatusUnprocessableEntity, "weight must be positive")
		return
	}

	checkin, err := app.progressService.Record(r.Context(), req.WeightKg)
	if err != nil {
		app.engineError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, checkin)
}
