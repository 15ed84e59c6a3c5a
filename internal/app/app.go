package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"alb-analytics/internal/aggregators"
	"alb-analytics/internal/classifiers"
	"alb-analytics/internal/converters"
	internalhttp "alb-analytics/internal/http"
	"alb-analytics/internal/ingestors"
	"alb-analytics/internal/models"
	"alb-analytics/internal/normalizers"
	"alb-analytics/internal/objectfilters"
	"alb-analytics/internal/progress"
	"alb-analytics/internal/reports"
	"alb-analytics/internal/shared/configs"
	"alb-analytics/internal/shared/filestorages"
	"alb-analytics/internal/shared/loggers"
	"alb-analytics/internal/shared/objectstorages"
	"alb-analytics/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	reportService reports.ReportService
	exportService converters.ExportService
}

// New creates and initializes a new App instance.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "alb-analytics").
		Logger()

	// Initialize local storage
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logObjectStore := stores.NewLogObjectStore(fileStorage)
	statReportStore := stores.NewStatReportStore(fileStorage)
	logExportStore := stores.NewLogExportStore(fileStorage)

	// Initialize object storage
	objectStorage, err := objectstorages.New(ctx, objectstorages.Config{
		Provider:        config.ObjectStorage.Provider,
		Bucket:          config.ObjectStorage.Bucket,
		Region:          config.ObjectStorage.Region,
		EndpointURL:     config.ObjectStorage.EndpointURL,
		ForcePathStyle:  config.ObjectStorage.ForcePathStyle,
		AccessKeyID:     config.ObjectStorage.AccessKeyID,
		SecretAccessKey: config.ObjectStorage.SecretAccessKey,
		SessionToken:    config.ObjectStorage.SessionToken,
		CredentialsFile: config.ObjectStorage.CredentialsFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}

	progressLogger := appLogger.With().Str(loggers.FieldComponent, "progress").Logger()
	observer := progress.NewLogObserver(progressLogger, time.Duration(config.Progress.IntervalMs)*time.Millisecond)

	// Initialize ingestionService
	layout := models.ALBLayout{
		AccountID:  config.ALB.AccountID,
		Region:     config.ALB.Region,
		ExternalLB: config.ALB.ExternalLB,
		InternalLB: config.ALB.InternalLB,
	}
	ingestionService := ingestors.NewIngestionService(objectStorage, objectfilters.NewObjectFilter(), logObjectStore, layout,
		ingestors.DownloadOptions{
			Concurrency:       config.Download.Concurrency,
			RequestsPerSecond: config.Download.RequestsPerSecond,
		}, observer)

	// Initialize aggregation service
	statAggregator := aggregators.NewStatAggregator(
		classifiers.NewServiceClassifier(classifiers.DefaultRules()),
		normalizers.NewURLNormalizer(normalizers.DefaultRules()),
	)
	aggregationService := aggregators.NewAggregationService(statAggregator, observer)

	reportService := reports.NewReportService(ingestionService, aggregationService, logObjectStore, statReportStore, observer)
	exportService := converters.NewExportService(ingestionService, logObjectStore, logExportStore, converters.NewALBCSVConverter(), observer)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(reportService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		server:        server,
		reportService: reportService,
		exportService: exportService,
	}, nil
}

func (app *App) Logger() loggers.Logger { return app.appLogger }

func (app *App) ReportService() reports.ReportService { return app.reportService }

func (app *App) ExportService() converters.ExportService { return app.exportService }

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting alb-analytics service on port %d (log_level=%s, file_storage_root_dir=%s, bucket=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.ObjectStorage.Bucket)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
