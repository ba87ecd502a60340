package httpclient

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ParthKapoor-dev/better-axios/logger"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultAuthHeader = "Authorization"
	defaultAuthPrefix = "Bearer "
)

// Config configures the HTTP client.
type Config struct {
	// BaseURL is the root prepended to all relative request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`

	// Timeout is the default request timeout. Defaults to 10s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// AuthHeader is the header name the auth token is written to.
	// Defaults to "Authorization".
	AuthHeader string `yaml:"auth_header" mapstructure:"auth_header"`

	// AuthPrefix is prepended to the token value. Defaults to "Bearer "
	// (trailing space significant). Set to a single space-free value such
	// as "Token " to match non-standard APIs.
	AuthPrefix string `yaml:"auth_prefix" mapstructure:"auth_prefix"`

	// RequestIDHeader, when non-empty, names a header stamped with a fresh
	// UUID on every request that does not already carry one.
	RequestIDHeader string `yaml:"request_id_header" mapstructure:"request_id_header"`

	// PropagateTrace injects W3C trace context from the call's context into
	// the outgoing headers using the global OpenTelemetry propagator.
	PropagateTrace bool `yaml:"propagate_trace" mapstructure:"propagate_trace"`

	// OnSuccess is the global success hook, invoked after every settled 2xx
	// call unless overridden or skipped per call.
	OnSuccess func(*Response) `yaml:"-" mapstructure:"-"`

	// OnError is the global error hook, invoked before a failure is
	// returned unless overridden or skipped per call.
	OnError func(*Error) `yaml:"-" mapstructure:"-"`

	// RequestInterceptor runs after auth injection and may modify or
	// replace the outgoing request. Returning an error aborts the call.
	RequestInterceptor func(*http.Request) (*http.Request, error) `yaml:"-" mapstructure:"-"`

	// ResponseInterceptor runs on the raw response before classification
	// and may modify or replace it. Returning an error aborts the call.
	ResponseInterceptor func(*http.Response) (*http.Response, error) `yaml:"-" mapstructure:"-"`

	// Logger receives request/outcome debug logs and hook panic reports.
	// Nil disables logging.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.AuthHeader == "" {
		c.AuthHeader = defaultAuthHeader
	}
	if c.AuthPrefix == "" {
		c.AuthPrefix = defaultAuthPrefix
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("httpclient: base_url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if c.AuthHeader == "" {
		return fmt.Errorf("httpclient: auth_header must not be empty")
	}
	return nil
}
