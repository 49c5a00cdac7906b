package easycontrols

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"github.com/nerrad567/easycontrols-gateway/internal/frame"
	"github.com/nerrad567/easycontrols-gateway/internal/infrastructure/config"
)

const (
	// passwordLabel is the form field the login page posts.
	passwordLabel = "v00402"

	loginPath = "/info.htm"
	writePath = "/info.htm"

	// maxPageSize bounds a single XML page.
	maxPageSize = 1 << 20
)

// Logger is the logging interface used by the client.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}

// Client talks to one ventilation unit.
//
// Thread Safety: All methods are safe for concurrent use; logins are
// serialised.
type Client struct {
	baseURL    string
	password   string
	pages      []string
	httpClient *http.Client
	logger     Logger

	loginMu sync.Mutex
}

// New creates a client from the device configuration. It does not contact
// the unit; the first request logs in on demand.
//
// Returns:
//   - *Client: client ready for use
//   - error: if the configured URL cannot be parsed
func New(cfg config.DeviceConfig) (*Client, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid device url %q", ErrRequestFailed, cfg.URL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		password: cfg.Password,
		pages:    append([]string(nil), cfg.Pages...),
		httpClient: &http.Client{
			Timeout: cfg.GetRequestTimeout(),
			Jar:     jar,
		},
		logger: noopLogger{},
	}, nil
}

// SetLogger sets the logger for the client.
func (c *Client) SetLogger(logger Logger) {
	if logger == nil {
		logger = noopLogger{}
	}
	c.logger = logger
}

// Pages returns the configured page names.
func (c *Client) Pages() []string {
	return append([]string(nil), c.pages...)
}

// Login authenticates with the configured password.
func (c *Client) Login(ctx context.Context) error {
	c.loginMu.Lock()
	defer c.loginMu.Unlock()

	form := url.Values{passwordLabel: {c.password}}
	if _, err := c.do(ctx, loginPath, form, true); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	c.logger.Debug("logged in to ventilation unit", "url", c.baseURL)
	return nil
}

// FetchPage returns the raw XML document of one data page.
func (c *Client) FetchPage(ctx context.Context, page string) ([]byte, error) {
	if page == "" || strings.ContainsAny(page, "/?#") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPage, page)
	}
	path := "/data/" + page + ".xml"
	return c.post(ctx, path, url.Values{"xml": {path}})
}

// Fetch reads every configured page and merges them into one frame.
// Later pages win on duplicate labels. Any failing page fails the fetch;
// a malformed page yields an error wrapping frame.ErrMalformedDocument.
func (c *Client) Fetch(ctx context.Context) (*frame.Frame, error) {
	merged := frame.New("")
	for _, page := range c.pages {
		doc, err := c.FetchPage(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("fetching page %s: %w", page, err)
		}
		f, err := frame.Parse(doc)
		if err != nil {
			return nil, fmt.Errorf("parsing page %s: %w", page, err)
		}
		merged.Merge(f)
	}
	return merged, nil
}

// Write posts label/value pairs to the unit. Values must already be in the
// unit's textual format.
func (c *Client) Write(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return ErrNothingToWrite
	}
	form := make(url.Values, len(values))
	for label, v := range values {
		form.Set(label, v)
	}
	if _, err := c.post(ctx, writePath, form); err != nil {
		return fmt.Errorf("writing %d values: %w", len(values), err)
	}
	return nil
}

// HealthCheck verifies the unit answers HTTP at all.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("device health check: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}
	return nil
}

// post sends a form and retries once after a fresh login when the session
// has expired.
func (c *Client) post(ctx context.Context, path string, form url.Values) ([]byte, error) {
	body, err := c.do(ctx, path, form, false)
	if !errors.Is(err, ErrUnauthorized) {
		return body, err
	}

	c.logger.Debug("device session expired, logging in again", "path", path)
	if err := c.Login(ctx); err != nil {
		return nil, err
	}
	return c.do(ctx, path, form, false)
}

// do sends one form post. A landing on the login page counts as
// unauthorized unless the request is the login itself.
func (c *Client) do(ctx context.Context, path string, form url.Values, login bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrRequestFailed, err)
	}
	if len(body) > maxPageSize {
		return nil, fmt.Errorf("%w: page too large (over %d bytes)", ErrRequestFailed, maxPageSize)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case !login && isLoginPage(resp):
		return nil, fmt.Errorf("%w: redirected to login page", ErrUnauthorized)
	case resp.StatusCode != http.StatusOK:
		c.logger.Warn("unexpected device response", "path", path, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}
	return body, nil
}

// isLoginPage reports whether the request ended on the unit's login page
// after redirects.
func isLoginPage(resp *http.Response) bool {
	if resp.Request == nil || resp.Request.URL == nil {
		return false
	}
	p := strings.ToLower(resp.Request.URL.Path)
	return strings.HasSuffix(p, "/login.htm") || strings.HasSuffix(p, "/login.html")
}
