package ratelimit

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

type Options struct {
	TrustHeaders bool
	Interval     time.Duration
	MaxBurst     int
	CacheSize    int
	TTL          time.Duration
	// Methods limited by the middleware, every method when empty
	Methods []string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		TrustHeaders: false,
		Interval:     time.Second,
		MaxBurst:     10,
		CacheSize:    1024,
		TTL:          10 * time.Minute,
		Methods:      []string{},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithTrustHeaders(trust bool) OptionFunc {
	return func(opts *Options) {
		opts.TrustHeaders = trust
	}
}

func WithRate(interval time.Duration, maxBurst int) OptionFunc {
	return func(opts *Options) {
		opts.Interval = interval
		opts.MaxBurst = maxBurst
	}
}

func WithCache(size int, ttl time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.CacheSize = size
		opts.TTL = ttl
	}
}

func WithMethods(methods ...string) OptionFunc {
	return func(opts *Options) {
		opts.Methods = methods
	}
}

// Middleware limits the request rate per remote address.
func Middleware(funcs ...OptionFunc) func(http.Handler) http.Handler {
	opts := NewOptions(funcs...)

	cache := expirable.NewLRU[string, *rate.Limiter](opts.CacheSize, nil, opts.TTL)

	getLimiter := func(remoteAddr string) *rate.Limiter {
		limiter, exists := cache.Get(remoteAddr)
		if !exists {
			limiter = rate.NewLimiter(rate.Every(opts.Interval), opts.MaxBurst)
			cache.Add(remoteAddr, limiter)
		}

		return limiter
	}

	isLimited := func(r *http.Request) bool {
		if len(opts.Methods) == 0 {
			return true
		}

		for _, m := range opts.Methods {
			if m == r.Method {
				return true
			}
		}

		return false
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isLimited(r) {
				next.ServeHTTP(w, r)
				return
			}

			limiter := getLimiter(remoteAddr(r, opts.TrustHeaders))

			reservation := limiter.Reserve()
			if !reservation.OK() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()

				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(opts.MaxBurst))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%.0f", limiter.Tokens()))

			next.ServeHTTP(w, r)
		})
	}
}

func remoteAddr(r *http.Request, trustHeaders bool) string {
	if trustHeaders {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			ips := strings.Split(xff, ",")
			return strings.TrimSpace(ips[0])
		}

		if xri := r.Header.Get("X-Real-Ip"); xri != "" {
			return xri
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
