package awscore

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	awshttp "github.com/canceraiddev/aws-core-go/transport/http"
)

// Client dispatches requests. It holds only the external collaborators:
// an HTTP transport, a clock, and a logger. It owns no per-service or
// per-identity state, so a single Client is safe for concurrent use
// across services and credentials.
type Client struct {
	httpClient awshttp.ClientDo
	clock      func() time.Time
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP transport. The default is a plain
// http.Client with no timeout; deadlines are the caller's to impose via
// context or a configured client.
func WithHTTPClient(c awshttp.ClientDo) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithClock replaces the time source used to stamp and sign requests.
func WithClock(clock func() time.Time) Option {
	return func(cl *Client) { cl.clock = clock }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(cl *Client) { cl.logger = logger }
}

// New returns a Client ready for use.
func New(opts ...Option) *Client {
	cl := &Client{
		httpClient: &http.Client{},
		clock:      time.Now,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}
