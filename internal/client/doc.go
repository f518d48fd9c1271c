// Package client talks to the phishing classification service.
//
// The service exposes a small HTTP API: classify a URL, block a URL (in a
// form-encoded and a JSON flavor), list blocked URLs, submit feedback and
// look up the feedback recorded for a URL. Client wraps each call with a
// typed request and response so the rest of phishcheck never deals with
// form encoding or JSON field names.
//
// Design decision: Every request goes through one http.Client built by
// newHTTPClient. It carries a cookie jar because the service keeps the last
// classified URL in a session cookie, and a header-injecting transport so
// the User-Agent, configured extra headers and the per-request
// X-Request-ID are applied uniformly, including on redirects.
//
// An optional SOCKS5 proxy can be configured for deployments that are only
// reachable through a bastion or Tor.
package client
