package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultServerURL is where the classification service listens when run
	// locally with its development server.
	DefaultServerURL = "http://127.0.0.1:5000"

	// DefaultTimeout bounds every request to the classification service.
	// Classification performs WHOIS and DNS lookups server-side, so this is
	// more generous than a typical API call.
	DefaultTimeout = 30 * time.Second

	// DefaultConcurrency is the number of URLs classified at once by
	// `phishcheck check` when several URLs are given.
	DefaultConcurrency = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "phishcheck"

	// DefaultUserAgent identifies phishcheck in HTTP requests.
	DefaultUserAgent = "phishcheck/1.0 (+https://github.com/nao1215/phishcheck)"
)

// BlockMode selects the wire format of the block action.
type BlockMode string

const (
	// BlockModeForm posts a form-encoded url and reads a "blocked" boolean.
	// This is the canonical, cache-aware variant.
	BlockModeForm BlockMode = "form"

	// BlockModeJSON posts {"url": ...} and reads a "message" string.
	BlockModeJSON BlockMode = "json"
)

// Endpoints holds the request paths of the classification service.
type Endpoints struct {
	Predict        string `yaml:"predict,omitempty"`
	Block          string `yaml:"block,omitempty"`
	BlockJSON      string `yaml:"block_json,omitempty"`
	BlockedURLs    string `yaml:"blocked_urls,omitempty"`
	SubmitFeedback string `yaml:"submit_feedback,omitempty"`
	Feedback       string `yaml:"feedback,omitempty"`
}

// DefaultEndpoints returns the paths served by the classification service.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Predict:        "/predict",
		Block:          "/block",
		BlockJSON:      "/block-url",
		BlockedURLs:    "/get-blocked-urls",
		SubmitFeedback: "/submit-feedback",
		Feedback:       "/feedback",
	}
}

// merge overrides e with every non-empty path of other.
func (e *Endpoints) merge(other Endpoints) {
	for _, p := range []struct {
		dst *string
		src string
	}{
		{&e.Predict, other.Predict},
		{&e.Block, other.Block},
		{&e.BlockJSON, other.BlockJSON},
		{&e.BlockedURLs, other.BlockedURLs},
		{&e.SubmitFeedback, other.SubmitFeedback},
		{&e.Feedback, other.Feedback},
	} {
		if p.src != "" {
			*p.dst = p.src
		}
	}
}

// validate checks that every path is absolute.
func (e Endpoints) validate() error {
	for name, p := range map[string]string{
		"predict":         e.Predict,
		"block":           e.Block,
		"block_json":      e.BlockJSON,
		"blocked_urls":    e.BlockedURLs,
		"submit_feedback": e.SubmitFeedback,
		"feedback":        e.Feedback,
	} {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEndpoint, name, p)
		}
	}
	return nil
}

// Config holds all configuration options for phishcheck.
// This struct is populated from defaults, the config file, the environment
// and CLI flags, then passed through the application via dependency
// injection rather than global state.
type Config struct {
	// ServerURL is the base URL of the classification service.
	ServerURL string

	// Endpoints are the request paths joined to ServerURL.
	Endpoints Endpoints

	// Timeout bounds each HTTP request, including reading the body.
	Timeout time.Duration

	// BlockMode selects the block endpoint variant.
	BlockMode BlockMode

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	// When empty, requests use the environment's HTTP proxy settings.
	ProxyAddress string

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string

	// Headers are extra HTTP headers added to every request, e.g. an
	// Authorization header for a protected deployment.
	Headers map[string]string

	// Concurrency limits parallel classification in batch checks.
	Concurrency int

	// Verbose enables debug level logging.
	Verbose bool

	// LogJSON switches the log output to JSON lines.
	LogJSON bool

	// LogFile, when set, sends logs to a size-rotated file instead of stderr.
	LogFile string

	// JSONOutput renders views as JSON. Mutually exclusive with MarkdownOutput.
	JSONOutput bool

	// MarkdownOutput renders views as Markdown. Mutually exclusive with JSONOutput.
	MarkdownOutput bool

	// PrintOnly prints the navigation target instead of opening a browser.
	PrintOnly bool

	// DataDir is where the local storage database lives.
	// Defaults to the XDG data directory (~/.local/share/phishcheck on Linux).
	DataDir string

	// ConfigFilePath is the configuration file given by the user, if any.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (server URL, timeout,
// endpoint paths). This also serves as documentation of the defaults.
func NewConfig() *Config {
	return &Config{
		ServerURL:   DefaultServerURL,
		Endpoints:   DefaultEndpoints(),
		Timeout:     DefaultTimeout,
		BlockMode:   BlockModeForm,
		UserAgent:   DefaultUserAgent,
		Headers:     make(map[string]string),
		Concurrency: DefaultConcurrency,
		DataDir:     XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for phishcheck.
// On Linux: ~/.local/share/phishcheck
// On macOS: ~/Library/Application Support/phishcheck
// On Windows: %LOCALAPPDATA%\phishcheck
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for phishcheck.
// On Linux: ~/.config/phishcheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a specific sentinel error.
func (c *Config) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil || c.ServerURL == "" || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidServerURL
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.BlockMode != BlockModeForm && c.BlockMode != BlockModeJSON {
		return ErrInvalidBlockMode
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.JSONOutput && c.MarkdownOutput {
		return ErrConflictingOutputFormats
	}

	return c.Endpoints.validate()
}

// ApplyFile merges values from a configuration file into c.
// Zero values in the file leave the current setting untouched.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if f.Server != "" {
		c.ServerURL = f.Server
	}
	if f.Timeout > 0 {
		c.Timeout = f.Timeout
	}
	if f.BlockMode != "" {
		c.BlockMode = BlockMode(f.BlockMode)
	}
	if f.Proxy != "" {
		c.ProxyAddress = f.Proxy
	}
	if f.UserAgent != "" {
		c.UserAgent = f.UserAgent
	}
	if f.Concurrency > 0 {
		c.Concurrency = f.Concurrency
	}
	if f.DataDir != "" {
		c.DataDir = f.DataDir
	}
	if len(f.Headers) > 0 {
		if c.Headers == nil {
			c.Headers = make(map[string]string)
		}
		for k, v := range f.Headers {
			c.Headers[k] = v
		}
	}
	c.Endpoints.merge(f.Endpoints)
}
