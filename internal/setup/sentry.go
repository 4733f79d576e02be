package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/roster/internal/build"
	"github.com/bornholm/roster/internal/config"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// SetupSentryFromConfig initializes error reporting. It returns false when
// no DSN is configured.
func SetupSentryFromConfig(ctx context.Context, conf *config.Config) (bool, error) {
	if conf.Sentry.DSN == "" {
		return false, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         conf.Sentry.DSN,
		Environment: conf.Sentry.Environment,
		Release:     build.ProjectVersion,
	})
	if err != nil {
		return false, errors.WithStack(err)
	}

	slog.InfoContext(ctx, "sentry error reporting enabled", slog.String("environment", conf.Sentry.Environment))

	return true, nil
}
