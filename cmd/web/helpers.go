package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/okoskine/routina/internal/assistant"
	"github.com/okoskine/routina/internal/catalog"
	"github.com/okoskine/routina/internal/errors"
	"github.com/okoskine/routina/internal/profile"
	"github.com/okoskine/routina/internal/recommend"
)

// maxRequestBodyBytes caps JSON request bodies.
const maxRequestBodyBytes = 1 << 20

// errorResponse is the JSON shape of every non-2xx response.
type errorResponse struct {
	Error       string   `json:"error"`
	Kind        string   `json:"kind,omitempty"`
	Precautions []string `json:"precautions,omitempty"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", errors.SlogError(err))
	}
}

func (app *application) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		app.clientError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError, errorResponse{
		Error: http.StatusText(http.StatusInternalServerError),
	})
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.writeJSON(w, r, status, errorResponse{Error: message})
}

// engineError translates domain errors into API responses. Anything
// unrecognized is a server error.
func (app *application) engineError(w http.ResponseWriter, r *http.Request, err error) {
	var noSafe *recommend.NoSafeRoutineError

	switch {
	case errors.Is(err, profile.ErrNotFound):
		app.writeJSON(w, r, http.StatusNotFound, errorResponse{
			Error: "profile not found, fill in your profile first",
			Kind:  "profile_not_found",
		})
	case errors.Is(err, catalog.ErrNotFound):
		app.writeJSON(w, r, http.StatusNotFound, errorResponse{
			Error: "routine not found",
			Kind:  "routine_not_found",
		})
	case errors.Is(err, recommend.ErrMissingProfileData):
		app.writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{
			Error: "profile is missing required data",
			Kind:  "missing_profile_data",
		})
	case errors.Is(err, recommend.ErrInvalidInput):
		app.writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{
			Error: "profile contains invalid values",
			Kind:  "invalid_input",
		})
	case errors.Is(err, recommend.ErrNoRoutinesAvailable):
		app.writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{
			Error: "no routines available",
			Kind:  "no_routines_available",
		})
	case errors.As(err, &noSafe):
		app.writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{
			Error:       "no safe routine found for this profile",
			Kind:        "no_safe_routine",
			Precautions: noSafe.Precautions,
		})
	case errors.Is(err, recommend.ErrNoCompatibleRoutineFound):
		app.writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{
			Error: "no compatible routine found for this profile",
			Kind:  "no_compatible_routine",
		})
	case errors.Is(err, assistant.ErrNotConfigured):
		app.writeJSON(w, r, http.StatusServiceUnavailable, errorResponse{
			Error: "assistant is not configured",
			Kind:  "assistant_not_configured",
		})
	default:
		app.serverError(w, r, err)
	}
}
