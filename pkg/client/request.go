package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bornholm/roster/internal/http/handler/api"
	"github.com/pkg/errors"
)

func (c *Client) request(ctx context.Context, method string, path string, header http.Header, body io.Reader, result io.Writer) error {
	url, err := url.Parse(path)
	if err != nil {
		return errors.WithStack(err)
	}

	url.Scheme = c.baseURL.Scheme
	url.Host = c.baseURL.Host
	url.User = c.baseURL.User
	url.Path = c.baseURL.JoinPath("/api/v1", url.Path).Path

	slogAttrs := []any{
		slog.String("method", method),
		slog.String("path", url.Path),
		slog.String("host", url.Host),
	}
	if url.User != nil {
		slogAttrs = append(slogAttrs, slog.String("username", url.User.Username()))
	}

	slog.DebugContext(ctx, "new client request", slogAttrs...)

	req, err := http.NewRequestWithContext(ctx, method, url.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}

	for k, v := range header {
		req.Header[k] = v
	}

	if url.User != nil {
		password, _ := url.User.Password()
		req.SetBasicAuth(url.User.Username(), password)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusBadRequest {
		return errors.WithStack(decodeError(res))
	}

	if _, err := io.Copy(result, res.Body); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) jsonRequest(ctx context.Context, method string, path string, payload any, result any) error {
	var (
		body   io.Reader
		header = http.Header{}
	)

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.WithStack(err)
		}

		body = bytes.NewReader(data)
		header.Set("Content-Type", "application/json")
	}

	var buff bytes.Buffer

	if err := c.request(ctx, method, path, header, body, &buff); err != nil {
		return errors.WithStack(err)
	}

	if err := json.Unmarshal(buff.Bytes(), result); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func decodeError(res *http.Response) *Error {
	clientErr := &Error{
		StatusCode: res.StatusCode,
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	if err != nil {
		return clientErr
	}

	var errRes api.ErrorResponse
	if err := json.Unmarshal(data, &errRes); err != nil {
		return clientErr
	}

	clientErr.Kind = errRes.Error.Kind
	clientErr.Message = errRes.Error.Message

	return clientErr
}
