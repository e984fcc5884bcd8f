// Package habitica implements the service.Service interface using the Habitica v3 API.
package habitica

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"habitask/internal/config"
	"habitask/internal/credentials"
	"habitask/internal/logging"
	"habitask/internal/tasks"
	"habitask/internal/transport"
)

const (
	// DefaultBaseURL is the Habitica API v3 root.
	DefaultBaseURL = config.DefaultBaseURL

	// userTasksPath is the "all tasks of the authenticated user" resource.
	userTasksPath = "/tasks/user"
)

// Client implements service.Service on top of a transport.Fetcher.
type Client struct {
	fetcher transport.Fetcher
	baseURL string
	logger  *log.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the debug logger.
func WithLogger(l *log.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a Habitica client from configuration.
// Requires credentials to be present in cfg.
func New(cfg *config.Config, logger *log.Logger) (*Client, error) {
	if !cfg.HasCredentials() {
		return nil, errors.New("not logged in: no credentials (run: habitask login)")
	}
	if logger == nil {
		logger = logging.Discard()
	}

	creds := credentials.New(cfg.UserID, cfg.APIToken)
	logger.Debug("using credentials", "creds", creds)

	fetcher := transport.NewHTTPFetcher(creds,
		transport.WithTimeout(cfg.Timeout),
		transport.WithLogger(logger),
	)
	return NewClient(fetcher, cfg.BaseURL, WithLogger(logger)), nil
}

// NewClient creates a client over any Fetcher. An empty baseURL means
// DefaultBaseURL.
func NewClient(fetcher transport.Fetcher, baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UserTasksURL returns the URL of the user's task list.
func (c *Client) UserTasksURL() string {
	return c.baseURL + userTasksPath
}

// AllTasks returns all of the user's tasks (habits, dailies, to-dos, rewards).
func (c *Client) AllTasks(ctx context.Context) (tasks.Tasks, error) {
	const op = "get all tasks"

	doc, err := c.fetcher.Fetch(ctx, c.UserTasksURL())
	if err != nil {
		return tasks.Tasks{}, &Error{Op: op, Kind: KindTransport, Err: err}
	}

	all, err := tasks.Decode(doc)
	if err != nil {
		return tasks.Tasks{}, &Error{Op: op, Kind: KindDecode, Err: err}
	}

	c.logger.Debug("decoded tasks", "count", all.Len())
	return all, nil
}

// Kind classifies a client failure.
type Kind int

const (
	// KindTransport covers connection failures, non-2xx statuses and
	// bodies that are not JSON.
	KindTransport Kind = iota + 1

	// KindDecode covers responses that do not match the task model.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the single failure type returned by Client operations.
// Use errors.As to reach the underlying *transport.Error or *tasks.DecodeError.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Unauthorized reports whether the failure was a rejected credential.
func (e *Error) Unauthorized() bool {
	var terr *transport.Error
	return errors.As(e.Err, &terr) && terr.Unauthorized()
}

// UserMessage returns a short description suitable for the CLI.
func (e *Error) UserMessage() string {
	if e.Unauthorized() {
		return "credentials rejected (run: habitask login)"
	}

	if errors.Is(e.Err, context.DeadlineExceeded) {
		return "request timed out"
	}

	var derr *tasks.DecodeError
	if errors.As(e.Err, &derr) {
		return "unexpected response: " + strings.TrimPrefix(derr.Error(), "decode tasks: ")
	}

	return e.Err.Error()
}
