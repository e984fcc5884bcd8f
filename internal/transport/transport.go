// Package transport performs authenticated GET requests against the Habitica API.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"google.golang.org/api/googleapi"

	"habitask/internal/credentials"
)

const (
	// HeaderUser carries the Habitica user ID.
	HeaderUser = "x-api-user"

	// HeaderKey carries the Habitica API token.
	HeaderKey = "x-api-key"

	// HeaderClient identifies the calling application to Habitica.
	HeaderClient = "x-client"

	// DefaultTimeout bounds a single request including the body read.
	DefaultTimeout = 30 * time.Second

	// DefaultAppName is appended to the user ID in the x-client header.
	DefaultAppName = "habitask"
)

// Fetcher fetches a JSON document from a URL.
// Implementations must return either a syntactically valid document or an error.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (json.RawMessage, error)
}

// HTTPFetcher implements Fetcher over net/http with Habitica auth headers.
type HTTPFetcher struct {
	creds   credentials.Credentials
	client  *http.Client
	appName string
	logger  *log.Logger
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *HTTPFetcher) {
		f.client = c
	}
}

// WithTimeout sets the HTTP client timeout. Zero keeps the default.
// A client passed through WithHTTPClient is copied, not modified.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) {
		if d > 0 {
			c := *f.client
			c.Timeout = d
			f.client = &c
		}
	}
}

// WithAppName overrides the application name sent in x-client.
func WithAppName(name string) Option {
	return func(f *HTTPFetcher) {
		f.appName = name
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) Option {
	return func(f *HTTPFetcher) {
		f.logger = l
	}
}

// NewHTTPFetcher creates a fetcher that authenticates with creds.
func NewHTTPFetcher(creds credentials.Credentials, opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		creds:   creds,
		client:  &http.Client{Timeout: DefaultTimeout},
		appName: DefaultAppName,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = log.New(io.Discard)
	}
	return f
}

// Fetch issues a GET to url and returns the response body once it is
// known to be valid JSON.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Message: "invalid request", Err: err}
	}
	f.setHeaders(req)

	f.logger.Debug("request", "method", req.Method, "url", url)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	f.logger.Debug("response", "status", resp.StatusCode, "url", url)

	// Habitica's envelope is not Google's, so only Code and Body of the
	// resulting *googleapi.Error are meaningful.
	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, statusError(resp.StatusCode, err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Message: "failed to read response body", StatusCode: resp.StatusCode, Err: err}
	}

	if !json.Valid(body) {
		return nil, &Error{Message: "response body is not valid JSON", StatusCode: resp.StatusCode}
	}

	return json.RawMessage(body), nil
}

func (f *HTTPFetcher) setHeaders(req *http.Request) {
	req.Header.Set(HeaderUser, f.creds.UserID())
	req.Header.Set(HeaderKey, f.creds.APIToken())
	req.Header.Set(HeaderClient, fmt.Sprintf("%s-%s", f.creds.UserID(), f.appName))
	req.Header.Set("Accept", "application/json")
}

// apiErrorBody is Habitica's error envelope.
type apiErrorBody struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusError builds an Error for a non-2xx response, preferring the
// message from Habitica's error envelope when present.
func statusError(code int, err error) *Error {
	msg := fmt.Sprintf("unexpected status %d %s", code, http.StatusText(code))

	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Body != "" {
		var body apiErrorBody
		if json.Unmarshal([]byte(gerr.Body), &body) == nil && body.Message != "" {
			msg = fmt.Sprintf("%s: %s", msg, body.Message)
		}
	}

	return &Error{Message: msg, StatusCode: code, Err: err}
}
