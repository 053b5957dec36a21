package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"photo_archive/internal/artifact"
	"photo_archive/internal/config"
	"photo_archive/internal/processor"
	"photo_archive/internal/scheduler"
	"photo_archive/internal/server"
	"photo_archive/internal/storage/sqlite"
	"photo_archive/internal/weather"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the processed archive as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var source processor.ArtifactSource
	if cfg.Artifact.URL != "" {
		source = artifact.NewHTTPSource(artifact.Config{
			URL:            cfg.Artifact.URL,
			Timeout:        cfg.Artifact.Timeout,
			MaxAttempts:    cfg.Artifact.Retry.MaxAttempts,
			InitialBackoff: cfg.Artifact.Retry.InitialBackoff,
			MaxBackoff:     cfg.Artifact.Retry.MaxBackoff,
		}, logger)
	} else {
		source = artifact.NewFileSource(cfg.Artifact.Path)
	}

	var resolver processor.WeatherResolver
	if cfg.Weather.Enabled() {
		var store weather.Store
		if cfg.Weather.CachePath != "" {
			db, err := sqlite.Open(cfg.Weather.CachePath)
			if err != nil {
				return fmt.Errorf("open weather cache: %w", err)
			}
			defer db.Close()

			cache := sqlite.NewWeatherCache(db)
			if err := cache.Init(ctx); err != nil {
				return fmt.Errorf("init weather cache: %w", err)
			}
			store = cache
		}

		resolver = weather.New(weather.Config{
			BaseURL: cfg.Weather.BaseURL,
			APIKey:  cfg.Weather.APIKey,
			Timeout: cfg.Weather.Timeout,
		}, store, logger)
	} else {
		logger.Info("no weather provider key configured, summaries render as placeholder")
	}

	service := processor.NewService(source, resolver, logger, processor.Config{
		DefaultLocation: cfg.Location.Name,
		DefaultLat:      cfg.Location.Lat,
		DefaultLng:      cfg.Location.Lng,
	})

	holder := processor.NewHolder()
	refresher := processor.NewRefresher(service, holder)
	sched := scheduler.NewScheduler(refresher, cfg.Serve.RefreshInterval, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
		}
	}()

	srv := server.New(server.Config{Addr: cfg.Serve.Addr}, holder, logger)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
