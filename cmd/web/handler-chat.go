package main

import (
	"net/http"
	"strings"

	"github.com/okoskine/routina/internal/assistant"
	"github.com/okoskine/routina/internal/errors"
	"github.com/okoskine/routina/internal/profile"
)

type chatRequest struct {
	Message string            `json:"message"`
	History assistant.History `json:"history"`
}

type chatResponse struct {
	Reply   string            `json:"reply"`
	History assistant.History `json:"history"`
}

// chatPOST answers a coaching question. When the user has a profile, the
// classified profile and current recommendation are passed along as context
// for the model.
func (app *application) chatPOST(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		app.clientError(w, r, http.StatusUnprocessableEntity, "message must not be empty")
		return
	}

	assistantReq := assistant.Request{
		History: req.History,
		Message: req.Message,
	}
	if p, err := app.profileService.Get(r.Context()); err == nil {
		if classified, err := app.recommendService.Classify(r.Context(), p); err == nil {
			assistantReq.Profile = &classified
		}
		if result, err := app.recommendService.RecommendForUser(r.Context(), p, 0); err == nil {
			assistantReq.Routine = &result.Routine
		}
	} else if !errors.Is(err, profile.ErrNotFound) {
		app.engineError(w, r, err)
		return
	}

	reply, history, err := app.assistantService.Reply(r.Context(), assistantReq)
	if err != nil {
		app.engineError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, chatResponse{Reply: reply, History: history})
}
