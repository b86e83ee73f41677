package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/RobinJosephDev/AdminUILinux/pkg/serrors"
)

// TokenSource supplies the bearer token for every request. session.Session
// satisfies it.
type TokenSource interface {
	Token() (string, error)
}

// Client is the HTTP core shared by the resource, upload and email
// clients. A missing token is a local precondition failure: no request is
// attempted.
type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenSource
	log    *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *logrus.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "httpapi: invalid base URL")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		base:   base,
		http:   &http.Client{Timeout: timeout},
		tokens: tokens,
		log:    log,
	}, nil
}

func (c *Client) endpoint(path string) string {
	return c.base.String() + "/" + strings.TrimLeft(path, "/")
}

// ResolveFileURL resolves a relative upload URL against the API origin
// (the base URL without its path, e.g. "/api" stripped).
func (c *Client) ResolveFileURL(fileURL string) string {
	if fileURL == "" || strings.HasPrefix(fileURL, "http") {
		return fileURL
	}
	origin := &url.URL{Scheme: c.base.Scheme, Host: c.base.Host}
	return origin.String() + fileURL
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	token, err := c.tokens.Token()
	if err != nil {
		return &serrors.AuthError{Reason: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return errors.Wrapf(err, "httpapi: %s %s", method, path)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).Errorf("httpapi: %s %s failed", method, path)
		return errors.Wrapf(err, "httpapi: %s %s", method, path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return &serrors.AuthError{Reason: "token rejected by backend"}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "httpapi: decoding %s %s response", method, path)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "httpapi: encoding %s %s request", method, path)
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(body), out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}
