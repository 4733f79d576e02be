package setup

import (
	"context"
	"testing"

	"github.com/bornholm/roster/internal/adapter/cache"
	"github.com/bornholm/roster/internal/config"
	"github.com/pkg/errors"
)

func TestSQLiteDSN(t *testing.T) {
	type testCase struct {
		URI         string
		ExpectedDSN string
		ShouldFail  bool
	}

	testCases := []testCase{
		{URI: "sqlite://data.sqlite", ExpectedDSN: "data.sqlite"},
		{URI: "sqlite:///var/lib/roster/data.sqlite", ExpectedDSN: "/var/lib/roster/data.sqlite"},
		{URI: "sqlite://file::memory:?cache=shared", ExpectedDSN: "file::memory:?cache=shared"},
		{URI: "sqlite://", ShouldFail: true},
	}

	for _, tc := range testCases {
		t.Run(tc.URI, func(t *testing.T) {
			dsn, err := sqliteDSN(tc.URI)
			if tc.ShouldFail {
				if err == nil {
					t.Errorf("err: expected an error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedDSN, dsn; e != g {
				t.Errorf("dsn: expected %s, got %s", e, g)
			}
		})
	}
}

func TestTaskStoreRegistry(t *testing.T) {
	store, err := TaskStore.From("memory://")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if store == nil {
		t.Fatalf("store: expected a store, got nil")
	}

	if _, err := TaskStore.From("unknown://"); !errors.Is(err, ErrSchemeNotRegistered) {
		t.Errorf("err: expected ErrSchemeNotRegistered, got %+v", err)
	}
}

func TestTaskStoreFromConfigWithCache(t *testing.T) {
	conf := &config.Config{}
	conf.Storage.URI = "memory://"
	conf.Storage.Cache.Enabled = true
	conf.Storage.Cache.Size = 8

	store, err := getTaskStoreFromConfig(context.Background(), conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, ok := store.(*cache.TaskStore); !ok {
		t.Errorf("store: expected *cache.TaskStore, got %T", store)
	}
}
