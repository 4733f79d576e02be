package setup

import (
	"context"

	"github.com/bornholm/roster/internal/config"
	"github.com/bornholm/roster/internal/http"
	"github.com/bornholm/roster/internal/http/handler/metrics"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithAllowedOrigins(conf.HTTP.CORS.AllowedOrigins...),
		http.WithMount("/api/v1/", api),
		http.WithMount("/metrics/", metrics.NewHandler()),
	}

	if conf.HTTP.MCP.Enabled {
		mcp, err := getMCPHandlerFromConfig(ctx, conf)
		if err != nil {
			return nil, errors.Wrap(err, "could not configure mcp handler from config")
		}

		options = append(options, http.WithMount("/mcp", mcp))
	}

	if users := getHTTPUsers(conf); len(users) > 0 || !conf.HTTP.Auth.AllowAnonymous {
		options = append(options, http.WithBasicAuth(conf.HTTP.Auth.AllowAnonymous, users...))
	}

	if conf.HTTP.RateLimit.Enabled {
		options = append(options, http.WithRateLimit(http.RateLimit{
			TrustHeaders: conf.HTTP.RateLimit.TrustHeaders,
			Interval:     conf.HTTP.RateLimit.Interval,
			MaxBurst:     conf.HTTP.RateLimit.MaxBurst,
			CacheSize:    conf.HTTP.RateLimit.CacheSize,
			CacheTTL:     conf.HTTP.RateLimit.CacheTTL,
		}))
	}

	server := http.NewServer(options...)

	return server, nil
}

func getHTTPUsers(conf *config.Config) []http.User {
	users := make([]http.User, 0, 2)

	if reader := conf.HTTP.Auth.Reader; reader.Username != "" {
		users = append(users, http.User{Username: reader.Username, Password: reader.Password})
	}

	if writer := conf.HTTP.Auth.Writer; writer.Username != "" {
		users = append(users, http.User{Username: writer.Username, Password: writer.Password, CanWrite: true})
	}

	return users
}
