package setup

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/bornholm/roster/internal/adapter/cache"
	"github.com/bornholm/roster/internal/adapter/firestore"
	"github.com/bornholm/roster/internal/adapter/gorm"
	"github.com/bornholm/roster/internal/adapter/memory"
	"github.com/bornholm/roster/internal/config"
	"github.com/bornholm/roster/internal/core/port"
	"github.com/pkg/errors"
)

var TaskStore = NewRegistry[port.TaskStore]()

func init() {
	TaskStore.Register("memory", func(u *url.URL) (port.TaskStore, error) {
		return memory.NewTaskStore(), nil
	})

	TaskStore.Register("firestore", func(u *url.URL) (port.TaskStore, error) {
		store, err := firestore.NewTaskStoreFromURL(context.Background(), u)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return store, nil
	})
}

var getTaskStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.TaskStore, error) {
	u, err := url.Parse(conf.Storage.URI)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse storage uri '%s'", conf.Storage.URI)
	}

	var store port.TaskStore

	switch u.Scheme {
	case "sqlite":
		db, err := getGormDatabaseFromConfig(ctx, conf)
		if err != nil {
			return nil, errors.Wrap(err, "could not create gorm database from config")
		}

		store = gorm.NewTaskStore(db)

	default:
		store, err = TaskStore.From(conf.Storage.URI)
		if err != nil {
			return nil, errors.Wrapf(err, "could not retrieve task store for uri '%s'", conf.Storage.URI)
		}
	}

	if conf.Storage.Cache.Enabled {
		slog.DebugContext(ctx, "task store cache enabled", slog.Int("size", conf.Storage.Cache.Size), slog.Duration("ttl", conf.Storage.Cache.TTL))
		store = cache.NewTaskStore(store, conf.Storage.Cache.Size, conf.Storage.Cache.TTL)
	}

	return store, nil
})
