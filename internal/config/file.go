package config

import "time"

// File represents the structure of the .phishcheck configuration file.
type File struct {
	// Server is the base URL of the classification service.
	Server string `yaml:"server,omitempty"`

	// Timeout is a Go duration string such as "30s".
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// BlockMode is "form" (default) or "json".
	BlockMode string `yaml:"block_mode,omitempty"`

	// Proxy is an optional SOCKS5 proxy address ("host:port").
	Proxy string `yaml:"proxy,omitempty"`

	// UserAgent overrides the default User-Agent header.
	UserAgent string `yaml:"user_agent,omitempty"`

	// Headers are extra headers sent with every request.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Concurrency limits parallel classification in batch checks.
	Concurrency int `yaml:"concurrency,omitempty"`

	// DataDir overrides the local storage directory.
	DataDir string `yaml:"data_dir,omitempty"`

	// Endpoints overrides individual request paths.
	Endpoints Endpoints `yaml:"endpoints,omitempty"`
}
