package main

import (
	"log/slog"
	"net/http"

	"github.com/okoskine/routina/internal/errors"
	"github.com/rs/cors"
)

func (app *application) routes() (http.Handler, error) {
	mux := http.NewServeMux()

	// CSRF protection using Go 1.25's CrossOriginProtection. A malformed
	// configured origin fails startup rather than silently losing its trust.
	protection := http.NewCrossOriginProtection()
	for _, origin := range app.allowedOrigins {
		if err := protection.AddTrustedOrigin(origin); err != nil {
			return nil, errors.Wrap(err, "add trusted origin", slog.String("origin", origin))
		}
	}

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(protection.Handler(app.timeout(next))))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.sessionUser(shared(next)))))
		}
	)

	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))

	mux.Handle("GET /api/routines", session(http.HandlerFunc(app.routinesGET)))
	mux.Handle("GET /api/routines/stats", session(http.HandlerFunc(app.routineStatsGET)))
	mux.Handle("GET /api/routines/{id}", session(http.HandlerFunc(app.routineGET)))

	mux.Handle("GET /api/profile", session(http.HandlerFunc(app.profileGET)))
	mux.Handle("PUT /api/profile", session(http.HandlerFunc(app.profilePUT)))

	mux.Handle("POST /api/recommendations", session(http.HandlerFunc(app.recommendationPOST)))

	mux.Handle("GET /api/progress", session(http.HandlerFunc(app.progressGET)))
	mux.Handle("GET /api/progress/summary", session(http.HandlerFunc(app.progressSummaryGET)))
	mux.Handle("POST /api/progress/checkins", session(http.HandlerFunc(app.checkinPOST)))

	mux.Handle("POST /api/chat", session(http.HandlerFunc(app.chatPOST)))

	if len(app.allowedOrigins) > 0 {
		return cors.New(cors.Options{
			AllowedOrigins:   app.allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
		}).Handler(mux), nil
	}
	return mux, nil
}
