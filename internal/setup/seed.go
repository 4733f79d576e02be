package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/roster/internal/config"
	"github.com/bornholm/roster/internal/seed"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// SeedFromConfig creates the configured event tasks when the store is empty.
func SeedFromConfig(ctx context.Context, conf *config.Config) error {
	if conf.Event.SeedFile == "" {
		return nil
	}

	store, err := getTaskStoreFromConfig(ctx, conf)
	if err != nil {
		return errors.Wrap(err, "could not create task store from config")
	}

	planner, err := getPlannerFromConfig(ctx, conf)
	if err != nil {
		return errors.Wrap(err, "could not create planner from config")
	}

	file, err := seed.Load(afero.NewOsFs(), conf.Event.SeedFile)
	if err != nil {
		return errors.WithStack(err)
	}

	created, err := seed.Apply(ctx, store, planner.Engine(), file, conf.Event.Actor)
	if err != nil {
		return errors.Wrapf(err, "could not seed tasks from '%s'", conf.Event.SeedFile)
	}

	slog.DebugContext(ctx, "seed applied", slog.String("file", conf.Event.SeedFile), slog.Int("created", created))

	return nil
}
