package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/sentrytools"
	"github.com/xdoubleu/essentia/v2/pkg/threading"

	"calproxy/internal/config"
	"calproxy/internal/jobs"
	"calproxy/internal/services"
	"calproxy/pkg/gcal"
)

type Application struct {
	logger   *slog.Logger
	config   config.Config
	services *services.Services
	jobQueue *threading.JobQueue
}

func main() {
	startupLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := config.New(startupLogger)
	if err := cfg.Validate(); err != nil {
		startupLogger.Error("invalid configuration", logging.ErrAttr(err))
		os.Exit(1)
	}

	logger := slog.New(sentrytools.NewLogHandler(cfg.Env,
		slog.NewTextHandler(os.Stdout,
			//nolint:exhaustruct //other fields are optional
			&slog.HandlerOptions{Level: cfg.LogLevel()})))

	client, err := gcal.New(context.Background(), logger, cfg.APIKey)
	if err != nil {
		logger.Error("failed to create calendar client", logging.ErrAttr(err))
		os.Exit(1)
	}

	app := NewApplication(logger, cfg, client)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,  //nolint:mnd //no magic number
		WriteTimeout: 10 * time.Second, //nolint:mnd //no magic number
	}
	err = httptools.Serve(logger, srv, cfg.Env)
	if err != nil {
		logger.Error("failed to serve server", logging.ErrAttr(err))
	}
}

func NewApplication(
	logger *slog.Logger,
	cfg config.Config,
	client gcal.Client,
) *Application {
	//nolint:mnd //no magic number
	jobQueue := threading.NewJobQueue(logger, 1, 10)

	app := &Application{
		logger:   logger,
		config:   cfg,
		services: services.New(logger, cfg, client),
		jobQueue: jobQueue,
	}

	// the first refresh runs before the listener binds, the recurring
	// job only covers subsequent cycles
	if err := app.services.Events.Refresh(context.Background()); err != nil {
		logger.Error("initial event fetch failed", logging.ErrAttr(err))
	}

	err := jobQueue.AddJob(
		jobs.NewRefreshJob(app.services.Events, cfg.RefreshInterval),
		app.services.Events.UpdateJobState,
	)
	if err != nil {
		panic(err)
	}

	return app
}
