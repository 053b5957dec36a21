package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"photo_archive/internal/aggregator"
	"photo_archive/internal/config"
	"photo_archive/internal/domain"
	"photo_archive/internal/publisher"
)

var watchContent bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Aggregate content files into the day-array artifact",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild()
	},
}

func init() {
	buildCmd.Flags().BoolVar(&watchContent, "watch", false, "keep running and rebuild on content changes")
}

func runBuild() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := setupLogger(cfg.LogLevel)

	agg := aggregator.New(aggregator.Config{
		ContentDir: cfg.Content.Dir,
		Glob:       cfg.Content.Glob,
		OutputPath: cfg.Artifact.Output,
	}, logger)

	var builder aggregator.Builder = agg

	if cfg.Publisher.Enabled() {
		pub, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.Publisher.URL,
			Exchange:   cfg.Publisher.Exchange,
			RoutingKey: cfg.Publisher.RoutingKey,
			QueueName:  cfg.Publisher.QueueName,
		}, logger)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		defer pub.Close()

		builder = &publishingBuilder{builder: agg, publisher: pub}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := builder.Build(ctx); err != nil {
		return err
	}

	if !watchContent {
		return nil
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	watcher := aggregator.NewWatcher(cfg.Content.Dir, builder, cfg.Content.WatchDebounce, logger)
	if err := watcher.Watch(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// publishingBuilder announces each successful build.
type publishingBuilder struct {
	builder   aggregator.Builder
	publisher *publisher.RabbitMQ
}

func (b *publishingBuilder) Build(ctx context.Context) (*domain.BuildStats, error) {
	stats, err := b.builder.Build(ctx)
	if err != nil {
		return nil, err
	}
	if err := b.publisher.Publish(ctx, stats); err != nil {
		return stats, fmt.Errorf("publish build event: %w", err)
	}
	return stats, nil
}
