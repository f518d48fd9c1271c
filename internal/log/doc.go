// Package log provides secure logging for phishcheck, built on top of the
// standard slog package.
//
// The SecureHandler sanitizes log output before it is written:
//   - Authentication headers and API keys configured for the classifier
//   - Credentials embedded in checked URLs (user:password@host)
//   - Token-like query parameters in checked URLs (?token=..., ?session_id=...)
//
// Phishing URLs frequently carry stolen or bait credentials, so the URL
// itself is kept readable while its secrets are masked. Logs may be shared
// when reporting a false verdict, and they should not leak what a victim
// typed into a lure.
//
// # Usage
//
//	logger, closer, err := log.New(log.Options{Verbose: true})
//	if err != nil { ... }
//	defer closer.Close()
//	slog.SetDefault(logger)
package log
