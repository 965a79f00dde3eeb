// Package server wires the artfolio backend together: configuration,
// logging, the PostgreSQL pool and schema, services, the two upload
// pipelines, Prometheus metrics and the HTTP API. It also handles
// graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/artfolio/internal/dbx"
	"github.com/dmitrijs2005/artfolio/internal/logging"
	"github.com/dmitrijs2005/artfolio/internal/server/config"
	"github.com/dmitrijs2005/artfolio/internal/server/ingest"
	"github.com/dmitrijs2005/artfolio/internal/server/metrics"
	"github.com/dmitrijs2005/artfolio/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/artfolio/internal/server/rest"
	"github.com/dmitrijs2005/artfolio/internal/server/services"
	"github.com/dmitrijs2005/artfolio/internal/server/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Seams for tests.
var (
	openDB               = dbx.OpenPostgres
	newRepositoryManager = func() repomanager.RepositoryManager {
		return repomanager.NewPostgresRepositoryManager()
	}
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   *rest.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.New(os.Stdout, c.Production)

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	observer, err := metrics.NewPrometheusObserver("artfolio", registry)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("metrics init error: %w", err)
	}

	opts := []ingest.Option{
		ingest.WithPolicy(ingest.Policy{Quality: c.ImageQuality, MaxDimension: c.MaxImageDimension}),
		ingest.WithObserver(observer),
		ingest.WithLogger(logger),
	}
	blob := ingest.NewPipeline("s3", storage.NewS3Store(c), opts...)
	localStore := storage.NewLocalStore(c.UploadDir, storage.DefaultURLPrefix, c.Production)
	local := ingest.NewPipeline("local", localStore, opts...)

	api := rest.NewServer(c.HTTPAddr, rest.Deps{
		Artworks:    services.NewArtworkService(db, rm),
		Events:      services.NewEventService(db, rm),
		Users:       services.NewUserService(db, rm, c),
		Upload:      blob,
		LocalUpload: local,
		Logger:      logger,
		Metrics:     observer,
		Gatherer:    registry,
		DB:          db,
		Production:  c.Production,
		UploadDir:   localStore.Dir(),
		CORSOrigins: c.CORSAllowedOrigins,
	})

	if c.Production && !c.StorageConfigured() {
		logger.Warn(ctx, "blob storage credential missing, /api/upload will fail")
	}

	return &App{config: c, logger: logger, db: db, http: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.http.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "production", app.config.Production)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "db close", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}
