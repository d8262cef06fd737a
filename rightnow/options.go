package rightnow

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	apiKey     string
	secretKey  string
	user       string
	version    string
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
	debug      bool
}

// WithCredentials sets the API key and the secret used to sign requests.
func WithCredentials(apiKey, secretKey string) Option {
	return func(o *clientOptions) {
		o.apiKey = apiKey
		o.secretKey = secretKey
	}
}

// WithUser sets the default identity requests are permissioned as.
func WithUser(user string) Option {
	return func(o *clientOptions) {
		o.user = user
	}
}

// WithVersion sets the API version string.
func WithVersion(version string) Option {
	return func(o *clientOptions) {
		o.version = version
	}
}

// WithTimeout sets the HTTP client timeout. Ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithLogger sets the logger used by the client.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithDebug logs every raw response body at debug level.
func WithDebug(debug bool) Option {
	return func(o *clientOptions) {
		o.debug = debug
	}
}

// CallOption configures a single API call.
type CallOption func(*callOptions)

type callOptions struct {
	as   string
	verb string
}

// As permissions the call as user instead of the client's default identity.
// An empty user is treated as unset and the default identity is used.
func As(user string) CallOption {
	return func(o *callOptions) {
		o.as = user
	}
}

// Verb sets the HTTP method of the call, http.MethodGet (default) or http.MethodPost.
func Verb(method string) CallOption {
	return func(o *callOptions) {
		o.verb = method
	}
}

func newCallOptions(opts []CallOption) callOptions {
	o := callOptions{verb: http.MethodGet}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
