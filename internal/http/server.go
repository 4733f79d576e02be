package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/roster/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	sloghttp "github.com/samber/slog-http"
)

type Server struct {
	opts *Options
}

// Run starts the server and blocks until ctx is canceled or the listener
// fails.
func (s *Server) Run(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return errors.WithStack(err)
	}

	server := &http.Server{
		Addr:              s.opts.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		slog.InfoContext(ctx, "http server listening", slog.String("address", s.opts.Address), slog.String("baseURL", s.opts.BaseURL))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- errors.WithStack(err)
		}

		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	slog.InfoContext(ctx, "shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "could not shutdown http server", slogx.Error(errors.WithStack(err)))
		return errors.WithStack(err)
	}

	return nil
}

// Handler returns the root handler with every mount and middleware applied.
func (s *Server) Handler() (http.Handler, error) {
	basePath := "/"
	if s.opts.BaseURL != "" {
		baseURL, err := url.Parse(s.opts.BaseURL)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse base url '%s'", s.opts.BaseURL)
		}

		if baseURL.Path != "" {
			basePath = baseURL.Path
		}
	}

	mux := http.NewServeMux()

	for prefix, h := range s.opts.Mounts {
		pattern := strings.TrimSuffix(basePath, "/") + "/" + strings.TrimPrefix(prefix, "/")
		mux.Handle(pattern, http.StripPrefix(strings.TrimSuffix(pattern, "/"), h))
	}

	var handler http.Handler = mux

	if s.opts.Auth != nil {
		handler = s.basicAuth(handler)
	}

	if s.opts.RateLimit != nil {
		handler = ratelimit.Middleware(
			ratelimit.WithTrustHeaders(s.opts.RateLimit.TrustHeaders),
			ratelimit.WithRate(s.opts.RateLimit.Interval, s.opts.RateLimit.MaxBurst),
			ratelimit.WithCache(s.opts.RateLimit.CacheSize, s.opts.RateLimit.CacheTTL),
			ratelimit.WithMethods(http.MethodPost, http.MethodPut),
		)(handler)
	}

	if len(s.opts.AllowedOrigins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins:   s.opts.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}).Handler(handler)
	}

	handler = sloghttp.Recovery(handler)
	handler = sloghttp.New(slog.Default())(handler)

	return handler, nil
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)
	return &Server{
		opts: opts,
	}
}
