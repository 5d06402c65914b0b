package worker

import (
	"context"
	"fmt"
	"log/slog"

	"careerbridge/internal/config"
	"careerbridge/internal/mail"
	"careerbridge/pkg/logger"
	"careerbridge/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the background worker pool.
type Options struct {
	// MaxWorkers bounds concurrent notification deliveries.
	MaxWorkers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers: cfg.Notifier.MaxWorkers,
	}
}

// Start creates and starts the River client with the notification worker
// registered. The returned client must be stopped on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	strg storage.Storage,
	mailer mail.Mailer,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewNotificationWorker(strg, mailer))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
