package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/roster/internal/config"
	"github.com/bornholm/roster/internal/setup"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.ErrorContext(ctx, "could not load .env file", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}

	conf, err := config.Parse()
	if err != nil {
		slog.ErrorContext(ctx, "could not parse config", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}

	logger := slog.New(slogx.ContextHandler{
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     slog.Level(conf.Logger.Level),
			AddSource: true,
		}),
	})

	slog.SetDefault(logger)

	slog.DebugContext(ctx, "using configuration", slog.Any("config", conf))

	sentryEnabled, err := setup.SetupSentryFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not setup sentry", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}

	if sentryEnabled {
		defer sentry.Flush(2 * time.Second)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.InfoContext(ctx, "use ctrl+c to interrupt")
		<-sig
		cancel()
	}()

	if err := setup.SeedFromConfig(ctx, conf); err != nil {
		slog.ErrorContext(ctx, "could not seed task store", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}

	server, err := setup.NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not setup http server", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}

	slog.InfoContext(ctx, "starting server", slog.Any("address", conf.HTTP.Address))

	if err := server.Run(ctx); err != nil {
		slog.Error("could not run server", slog.Any("error", errors.WithStack(err)))
		if sentryEnabled {
			sentry.CaptureException(err)
			sentry.Flush(2 * time.Second)
		}
		os.Exit(1)
	}
}
