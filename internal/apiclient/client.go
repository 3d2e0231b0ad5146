package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TokenSource supplies the bearer credential for authenticated calls. An
// empty string means the call goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client is a typed HTTP client for the booking API. All methods issue a
// single request, never retry, and bind responses to the contract's field
// names.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *logrus.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) { c.log = log }
}

func New(baseURL string, tokens TokenSource, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request and decodes the JSON response into out (skipped when
// out is nil). Transport failures, timeouts included, come back wrapped; auth
// and not-found statuses map to their sentinel errors.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{"method": method, "path": path}).WithError(err).Warn("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WithFields(logrus.Fields{"method": method, "path": path, "status": resp.StatusCode}).Warn("api error")
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
		case http.StatusNotFound:
			return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
		default:
			return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func readErrorMessage(body io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
