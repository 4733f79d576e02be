package config

import (
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := slog.LevelInfo, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected %v, got %v", e, g)
	}

	if e, g := "sqlite://data.sqlite", conf.Storage.URI; e != g {
		t.Errorf("conf.Storage.URI: expected %s, got %s", e, g)
	}

	if e, g := "Buffet Service", conf.Event.MasterSection; e != g {
		t.Errorf("conf.Event.MasterSection: expected %s, got %s", e, g)
	}

	if e, g := true, conf.HTTP.MCP.Enabled; e != g {
		t.Errorf("conf.HTTP.MCP.Enabled: expected %v, got %v", e, g)
	}

	if e, g := "", conf.Sentry.DSN; e != g {
		t.Errorf("conf.Sentry.DSN: expected %q, got %q", e, g)
	}
}

func TestParseFromEnv(t *testing.T) {
	t.Setenv("ROSTER_LOGGER_LEVEL", "debug")
	t.Setenv("ROSTER_STORAGE_URI", "memory://")
	t.Setenv("ROSTER_STORAGE_CACHE_TTL", "1m")
	t.Setenv("ROSTER_EVENT_DAYS", "Wednesday,Thursday")
	t.Setenv("ROSTER_HTTP_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := slog.LevelDebug, conf.Logger.Level; e != g {
		t.Errorf("conf.Logger.Level: expected %v, got %v", e, g)
	}

	if e, g := "memory://", conf.Storage.URI; e != g {
		t.Errorf("conf.Storage.URI: expected %s, got %s", e, g)
	}

	if e, g := time.Minute, conf.Storage.Cache.TTL; e != g {
		t.Errorf("conf.Storage.Cache.TTL: expected %v, got %v", e, g)
	}

	if e, g := []string{"Wednesday", "Thursday"}, conf.Event.Days; !slices.Equal(e, g) {
		t.Errorf("conf.Event.Days: expected %v, got %v", e, g)
	}

	if e, g := 2, len(conf.HTTP.CORS.AllowedOrigins); e != g {
		t.Errorf("len(conf.HTTP.CORS.AllowedOrigins): expected %d, got %d", e, g)
	}
}
