package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds every request; after it the call fails with a
// NetworkError. Retry policy belongs to the caller, not here.
const DefaultTimeout = 10 * time.Second

// Client is a thin JSON accessor for the REST store. It maps requests and
// responses and nothing else: no retries, no caching, no business rules.
type Client struct {
	base string
	http *http.Client
	log  *slog.Logger
}

func NewClient(base string, timeout time.Duration, log *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	_, err := c.do(ctx, http.MethodGet, path, query, nil, out)
	return err
}

// GetWithHeader is Get plus access to response headers, for endpoints that
// return collection metadata such as X-Total-Count.
func (c *Client) GetWithHeader(ctx context.Context, path string, query url.Values, out any) (http.Header, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPost, path, nil, body, out)
	return err
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPatch, path, nil, body, out)
	return err
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (http.Header, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: u, Err: err}
	}
	defer res.Body.Close()

	c.log.Debug("rest", "method", method, "url", u, "status", res.StatusCode)

	switch {
	case res.StatusCode == http.StatusNotFound:
		return res.Header, &NotFoundError{URL: u}
	case res.StatusCode < 200 || res.StatusCode > 299:
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return res.Header, &ServerError{URL: u, Status: res.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			// a malformed payload is indistinguishable from a broken server
			return res.Header, &ServerError{URL: u, Status: res.StatusCode, Body: "malformed payload: " + err.Error()}
		}
	}
	return res.Header, nil
}
