// Package api is the typed REST client for the shop backend. Credentials are
// injected at this single request-construction boundary; a 401 anywhere
// invalidates the session before the error reaches the caller. There is no
// automatic retry: failed requests surface immediately and the caller
// refetches on its own terms.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"laban/internal/apierror"
	"laban/internal/session"
)

// Client talks to the backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sess       *session.Session
	breaker    *Breaker
	logger     zerolog.Logger
}

// NewClient builds a client for the given base URL. The session provides the
// bearer token for every request except login.
func NewClient(baseURL string, timeout time.Duration, sess *session.Session, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		sess:       sess,
		breaker:    NewBreaker(DefaultBreakerConfig()),
		logger:     logger,
	}
}

// Session exposes the session bound to this client.
func (c *Client) Session() *session.Session { return c.sess }

// errTransport marks failures that never produced an HTTP response; only
// those (and 5xx) count against the circuit breaker.
type errTransport struct{ err error }

func (e *errTransport) Error() string { return e.err.Error() }
func (e *errTransport) Unwrap() error { return e.err }

// do performs one request. body is JSON-encoded when non-nil; out is filled
// from a 2xx JSON response when non-nil. Only transport failures and 5xx
// count against the breaker; a rejected form must not open the circuit.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var appErr error
	err := c.breaker.Execute(func() error {
		err := c.doOnce(ctx, method, path, query, body, out)
		if err == nil {
			return nil
		}
		var te *errTransport
		if errors.As(err, &te) {
			return err
		}
		var ae *apierror.APIError
		if errors.As(err, &ae) && ae.StatusCode >= 500 {
			return err
		}
		appErr = err
		return nil
	})
	if err != nil {
		var te *errTransport
		if errors.As(err, &te) {
			c.logger.Error().Str("method", method).Str("path", path).Err(te.err).Msg("backend unreachable")
			return fmt.Errorf("%s: %w", apierror.MessageGenerique, te.err)
		}
		return err
	}
	return appErr
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if jeton := c.sess.Jeton(); jeton != "" && path != cheminLogin {
		req.Header.Set("Authorization", "Bearer "+jeton)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &errTransport{err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("api call")

	if resp.StatusCode == http.StatusUnauthorized {
		// Global 401 policy: clear credentials once, whoever sees it first.
		c.sess.Invalider()
		return apierror.ErrNonAutorise
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errTransport{err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := apierror.Decode(resp.StatusCode, raw)
		if resp.StatusCode >= 500 {
			c.logger.Error().Str("path", path).Int("status", resp.StatusCode).Str("detail", apiErr.Detail).Msg("backend error")
		}
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("api: decode response: %w", err)
		}
	}
	return nil
}
