package main

import (
	"net/http"

	"github.com/okoskine/routina/internal/recommend"
)

type recommendationRequest struct {
	// Profile, when present, is used for this request only and is not
	// persisted. Absent, the stored profile is used.
	Profile *recommend.UserProfile `json:"profile"`
	// AlternativesLimit caps the number of alternatives. Negative or absent
	// means the default, zero means none.
	AlternativesLimit *int `json:"alternatives_limit"`
}

func (app *application) recommendationPOST(w http.ResponseWriter, r *http.Request) {
	// The body is optional, an empty POST uses the stored profile and the
	// default alternatives limit.
	req := recommendationRequest{}
	if r.ContentLength > 0 {
		if !app.decodeJSON(w, r, &req) {
			return
		}
	}
	limit := -1
	if req.AlternativesLimit != nil {
		limit = *req.AlternativesLimit
	}

	var p recommend.UserProfile
	if req.Profile != nil {
		if err := validateProfile(*req.Profile); err != nil {
			app.clientError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		p = *req.Profile
	} else {
		var err error
		if p, err = app.profileService.Get(r.Context()); err != nil {
			app.engineError(w, r, err)
			return
		}
	}

	result, err := app.recommendService.RecommendForUser(r.Context(), p, limit)
	if err != nil {
		app.engineError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, result)
}
