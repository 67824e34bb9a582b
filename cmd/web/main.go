package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"github.com/okoskine/routina/internal/assistant"
	"github.com/okoskine/routina/internal/catalog"
	"github.com/okoskine/routina/internal/envstruct"
	"github.com/okoskine/routina/internal/errors"
	"github.com/okoskine/routina/internal/flightrecorder"
	"github.com/okoskine/routina/internal/logging"
	"github.com/okoskine/routina/internal/profile"
	"github.com/okoskine/routina/internal/progress"
	"github.com/okoskine/routina/internal/recommend"
	"github.com/okoskine/routina/internal/sqlite"
	"github.com/yuin/goldmark"
)

type application struct {
	logger           *slog.Logger
	sessionManager   *scs.SessionManager
	catalogService   *catalog.Service
	profileService   *profile.Service
	recommendService *recommend.Service
	progressService  *progress.Service
	assistantService *assistant.Service
	flightRecorder   *flightrecorder.Service
	markdown         goldmark.Markdown
	allowedOrigins   []string
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"ROUTINA_ADDR" envDefault:"localhost:4000"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"ROUTINA_SQLITE_URL" envDefault:"./routina.sqlite3"`
	// OpenAIAPIKey enables the coaching assistant. Leave empty to run without it.
	OpenAIAPIKey string `env:"ROUTINA_OPENAI_API_KEY" envDefault:""`
	// TracesDir is where timeout flight-recorder traces are written. Empty disables capture.
	TracesDir string `env:"ROUTINA_TRACES_DIR" envDefault:""`
	// AllowedOrigin is an optional browser origin allowed to call the API cross-origin.
	AllowedOrigin string `env:"ROUTINA_ALLOWED_ORIGIN" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	var recorder *flightrecorder.Service
	if cfg.TracesDir != "" {
		if recorder, err = flightrecorder.New(flightrecorder.Config{
			Logger:          logger,
			TracesDirectory: cfg.TracesDir,
		}); err != nil {
			return errors.Wrap(err, "new flight recorder")
		}
		if err = recorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer recorder.Stop(ctx)
	}

	catalogService := catalog.NewService(db, logger)
	profileService := profile.NewService(db, logger)

	app := application{
		logger:           logger,
		sessionManager:   initializeSessionManager(db),
		catalogService:   catalogService,
		profileService:   profileService,
		recommendService: recommend.NewService(catalogService, logger),
		progressService:  progress.NewService(db, profileService, logger),
		assistantService: assistant.NewService(cfg.OpenAIAPIKey, logger),
		flightRecorder:   recorder,
		markdown:         goldmark.New(),
		allowedOrigins:   nil,
	}
	if cfg.AllowedOrigin != "" {
		app.allowedOrigins = []string{cfg.AllowedOrigin}
	}

	handler, err := app.routes()
	if err != nil {
		return errors.Wrap(err, "configure routes")
	}
	if err = app.configureAndStartServer(ctx, cfg.Addr, handler); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 30 * 24 * time.Hour                                           //nolint:mnd // month
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	// A missing .env file is fine, the environment may be set by other means.
	_ = godotenv.Load()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
