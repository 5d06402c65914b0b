package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"careerbridge/internal/config"
	"careerbridge/internal/mail"
	"careerbridge/internal/ops"
	"careerbridge/internal/worker"
	"careerbridge/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupOpsServer(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	server, err := ops.NewServer(ops.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create ops server", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting ops server...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start ops server", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping ops server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop ops server", zap.Error(err))
		}
	}
}

// serveCommand constructs the 'serve' subcommand that starts the background
// notification workers and the operational HTTP server.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts background workers and the operational HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			stopOpsServer := setupOpsServer(ctx, cfg)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mailer := mail.NewClient(mail.Options{
				BaseURL:       cfg.Mailer.BaseURL,
				APIKey:        cfg.Mailer.APIKey,
				SenderName:    cfg.Mailer.SenderName,
				SenderAddress: cfg.Mailer.SenderAddress,
				Timeout:       cfg.Mailer.Timeout,
			})

			riverClient, err := worker.Start(ctx, strg.Pool, strg, mailer, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}

			stopOpsServer(shutdownCtx)
		},
	}

	return cmd
}
