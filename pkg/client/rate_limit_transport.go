package client

import (
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RateLimitTransport retries requests rejected with 429 Too Many Requests.
// Such requests were never processed by the server, so retrying a write is
// safe. Every other response is returned as is.
type RateLimitTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Base
	if transport == nil {
		transport = http.DefaultTransport
	}

	for attempt := 0; ; attempt++ {
		res, err := transport.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if res.StatusCode != http.StatusTooManyRequests || attempt >= t.MaxRetries {
			return res, nil
		}

		if req.Body != nil && req.GetBody == nil {
			return res, nil
		}

		io.Copy(io.Discard, res.Body)
		res.Body.Close()

		waitTime := t.getWaitTime(res)

		slog.WarnContext(req.Context(), "rate limited (429)", slog.Duration("wait_time", waitTime), slog.Int("attempt", attempt+1), slog.Int("max_retries", t.MaxRetries))

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(waitTime):
		}

		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, errors.Wrap(err, "could not rewind request body")
			}

			req.Body = body
		}
	}
}

func (t *RateLimitTransport) getWaitTime(res *http.Response) time.Duration {
	if retryAfter := res.Header.Get("Retry-After"); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			wait := time.Duration(seconds) * time.Second
			jitter := time.Duration(rand.Float64() * float64(wait) / 4)
			return wait + jitter
		}

		if date, err := http.ParseTime(retryAfter); err == nil {
			return time.Until(date)
		}
	}

	return t.DefaultWait
}
