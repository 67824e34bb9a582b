package main

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/okoskine/routina/internal/recommend"
)

// routineResponse augments a catalog routine with its description rendered
// from Markdown to HTML.
type routineResponse struct {
	recommend.Routine
	DescriptionHTML string `json:"description_html"`
}

func (app *application) renderRoutine(routine recommend.Routine) (routineResponse, error) {
	var buf bytes.Buffer
	if err := app.markdown.Convert([]byte(routine.Description), &buf); err != nil {
		return routineResponse{}, err
	}
	return routineResponse{Routine: routine, DescriptionHTML: buf.String()}, nil
}

func (app *application) routinesGET(w http.ResponseWriter, r *http.Request) {
	routines, err := app.catalogService.List(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	response := make([]routineResponse, 0, len(routines))
	for _, routine := range routines {
		rendered, err := app.renderRoutine(routine)
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		response = append(response, rendered)
	}
	app.writeJSON(w, r, http.StatusOK, response)
}

func (app *application) routineGET(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		app.clientError(w, r, http.StatusNotFound, "routine not found")
		return
	}

	routine, err := app.catalogService.Get(r.Context(), id)
	if err != nil {
		app.engineError(w, r, err)
		return
	}

	rendered, err := app.renderRoutine(routine)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, rendered)
}

func (app *application) routineStatsGET(w http.ResponseWriter, r *http.Request) {
	stats, err := app.catalogService.Stats(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, stats)
}
