package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"alb-analytics/internal/app"
	"alb-analytics/internal/ingestors"
	"alb-analytics/internal/models"
	"alb-analytics/internal/progress"
	"alb-analytics/internal/reports"
	"alb-analytics/internal/shared/configs"
	"alb-analytics/internal/shared/loggers"
	"alb-analytics/internal/shared/ulid"

	"github.com/spf13/cobra"
)

// runtime is what every command needs: the wired application and a context
// carrying the run's logger and id, canceled on SIGINT or SIGTERM.
type runtime struct {
	app    *app.App
	ctx    context.Context
	cancel context.CancelFunc
}

func newRuntime(cmd *cobra.Command) (*runtime, error) {
	envFile, _ := cmd.Flags().GetString(flagEnvFile)
	if envFile != "" {
		if err := configs.LoadDotEnv(envFile); err != nil {
			return nil, err
		}
	}

	configPath, _ := cmd.Flags().GetString(flagConfig)
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) && !cmd.Flags().Changed(flagConfig) {
			configPath = ""
		}
	}
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	application, err := app.New(ctx, cfg)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	runID := ulid.NewULID()
	ctx = application.Logger().With().
		Str(loggers.FieldComponent, cmd.Name()).
		Str(loggers.FieldRunID, runID).
		Logger().WithContext(ctx)
	ctx = progress.WithRunID(ctx, runID)

	return &runtime{app: application, ctx: ctx, cancel: cancel}, nil
}

// selection reads the load balancer flags of cmd.
func selection(cmd *cobra.Command) models.ALBSelection {
	external, _ := cmd.Flags().GetBool(flagExternal)
	internal, _ := cmd.Flags().GetBool(flagInternal)
	return models.ALBSelection{External: external, Internal: internal}
}

// windowRequest parses the positional start and end arguments.
func windowRequest(cmd *cobra.Command, args []string, sel models.ALBSelection) (reports.Request, error) {
	forceDownload, _ := cmd.Flags().GetBool(flagForceDownload)
	req, svcErr := reports.NewRequest(args[0], args[1], sel, forceDownload)
	if svcErr != nil {
		return reports.Request{}, svcErr
	}
	return req, nil
}

func ingestRequest(req reports.Request) ingestors.IngestRequest {
	return ingestors.IngestRequest{
		Window:        req.Window,
		Selection:     req.Selection,
		ForceDownload: req.ForceDownload,
	}
}
