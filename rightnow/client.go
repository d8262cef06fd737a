package rightnow

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	endpointPath   = "/api/endpoint"
	defaultTimeout = 30 * time.Second
)

// Client represents a RightNow Community API client
type Client struct {
	baseURL    string
	endpoint   string
	signer     *Signer
	httpClient *http.Client
	logger     zerolog.Logger
	debug      bool
}

// NewClient creates a new RightNow client for the community at host
func NewClient(host string, opts ...Option) (*Client, error) {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if u, err := url.Parse(host); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid host %q", ErrInvalidConfig, host)
	}

	o := clientOptions{
		timeout: defaultTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}

	return &Client{
		baseURL:    host,
		endpoint:   host + endpointPath,
		signer:     NewSigner(o.apiKey, o.secretKey, o.user, o.version),
		httpClient: httpClient,
		logger:     o.logger,
		debug:      o.debug,
	}, nil
}

// Host returns the base URL the client talks to
func (c *Client) Host() string {
	return c.baseURL
}

// User returns the default identity requests are permissioned as
func (c *Client) User() string {
	return c.signer.user
}

// Version returns the API version sent with every request
func (c *Client) Version() string {
	return c.signer.version
}
