package http

import (
	"net/http"
	"time"
)

type User struct {
	Username string
	Password string
	CanWrite bool
}

type Auth struct {
	AllowAnonymous bool
	Users          []User
}

type RateLimit struct {
	TrustHeaders bool
	Interval     time.Duration
	MaxBurst     int
	CacheSize    int
	CacheTTL     time.Duration
}

type Options struct {
	Address        string
	BaseURL        string
	Auth           *Auth
	AllowedOrigins []string
	RateLimit      *RateLimit
	Mounts         map[string]http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:        ":3002",
		BaseURL:        "",
		AllowedOrigins: []string{},
		Mounts:         map[string]http.Handler{},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

func WithAllowedOrigins(origins ...string) OptionFunc {
	return func(opts *Options) {
		opts.AllowedOrigins = origins
	}
}

func WithRateLimit(rateLimit RateLimit) OptionFunc {
	return func(opts *Options) {
		opts.RateLimit = &rateLimit
	}
}

// WithBasicAuth protects the mounted handlers. Anonymous requests are
// accepted for reads when allowAnonymous is set.
func WithBasicAuth(allowAnonymous bool, users ...User) OptionFunc {
	return func(opts *Options) {
		opts.Auth = &Auth{
			AllowAnonymous: allowAnonymous,
			Users:          users,
		}
	}
}
