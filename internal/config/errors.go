package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidServerURL is returned when the classification service URL
	// is empty, unparsable, or not http/https.
	ErrInvalidServerURL = errors.New("invalid server URL: must be an absolute http or https URL")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A zero timeout would leave a request without response hanging forever.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidBlockMode is returned when the block mode is neither form nor json.
	ErrInvalidBlockMode = errors.New("invalid block mode: must be \"form\" or \"json\"")

	// ErrInvalidConcurrency is returned when the batch concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingOutputFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingOutputFormats = errors.New("conflicting output formats: --json and --markdown cannot be used together")

	// ErrInvalidEndpoint is returned when an endpoint path is empty or relative.
	ErrInvalidEndpoint = errors.New("invalid endpoint path: must start with \"/\"")
)
