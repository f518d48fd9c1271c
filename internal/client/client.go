package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/nao1215/phishcheck/internal/config"
	"github.com/nao1215/phishcheck/internal/model"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 1 << 20

// Client calls the classification service.
// It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	endpoints  config.Endpoints
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client built from the configuration.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client for the service described by cfg.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.ServerURL, "/"))
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidServerURL, cfg.ServerURL)
	}

	hc, err := newHTTPClient(transportOptions{
		timeout:      cfg.Timeout,
		proxyAddress: cfg.ProxyAddress,
		userAgent:    cfg.UserAgent,
		headers:      cfg.Headers,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    base,
		endpoints:  cfg.Endpoints,
		httpClient: hc,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Classify asks the service for a verdict on candidateURL.
func (c *Client) Classify(ctx context.Context, candidateURL string) (*model.Verdict, error) {
	form := url.Values{"url": {candidateURL}}

	var verdict model.Verdict
	if err := c.postForm(ctx, c.endpoints.Predict, form, &verdict); err != nil {
		return nil, fmt.Errorf("classify %q: %w", candidateURL, err)
	}
	if verdict.Label == "" {
		return nil, fmt.Errorf("classify %q: %w: missing result", candidateURL, ErrMalformedResponse)
	}
	return &verdict, nil
}

// Block asks the service to block targetURL using the form-encoded variant.
func (c *Client) Block(ctx context.Context, targetURL string) (*model.BlockAck, error) {
	form := url.Values{"url": {targetURL}}

	var ack model.BlockAck
	if err := c.postForm(ctx, c.endpoints.Block, form, &ack); err != nil {
		return nil, fmt.Errorf("block %q: %w", targetURL, err)
	}
	return &ack, nil
}

// BlockJSON asks the service to block targetURL using the JSON variant.
//
// When the service rejects the request but still explains why, the decoded
// message is returned together with an ErrUnexpectedStatus error.
func (c *Client) BlockJSON(ctx context.Context, targetURL string) (*model.BlockMessage, error) {
	body := map[string]string{"url": targetURL}

	var msg model.BlockMessage
	if err := c.postJSON(ctx, c.endpoints.BlockJSON, body, &msg); err != nil {
		err = fmt.Errorf("block %q: %w", targetURL, err)
		if msg.Message == "" {
			return nil, err
		}
		return &msg, err
	}
	return &msg, nil
}

// ListBlocked returns the URLs the service has blocked, in server order.
func (c *Client) ListBlocked(ctx context.Context) ([]string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.endpoints.BlockedURLs, nil)
	if err != nil {
		return nil, err
	}

	var list model.BlockedList
	if err := c.do(req, &list); err != nil {
		return nil, fmt.Errorf("list blocked URLs: %w", err)
	}
	if list.URLs == nil {
		list.URLs = []string{}
	}
	return list.URLs, nil
}

// SubmitFeedback sends a feedback record to the service.
func (c *Client) SubmitFeedback(ctx context.Context, record model.FeedbackRecord) error {
	var ack model.BlockMessage
	if err := c.postJSON(ctx, c.endpoints.SubmitFeedback, record, &ack); err != nil {
		return fmt.Errorf("submit feedback for %q: %w", record.URL, err)
	}
	return nil
}

// FeedbackSummary returns the feedback votes recorded for targetURL.
// When the service has no feedback, the summary's Found is false and Message
// holds the service's explanation.
func (c *Client) FeedbackSummary(ctx context.Context, targetURL string) (*model.FeedbackSummary, error) {
	path := strings.TrimRight(c.endpoints.Feedback, "/") + "/" + url.PathEscape(targetURL)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var raw struct {
		model.FeedbackSummary
		SafeVotes       *int `json:"safe_votes"`
		SuspiciousVotes *int `json:"suspicious_votes"`
	}
	if err := c.do(req, &raw); err != nil {
		return nil, fmt.Errorf("feedback for %q: %w", targetURL, err)
	}

	summary := raw.FeedbackSummary
	if raw.SafeVotes != nil || raw.SuspiciousVotes != nil {
		summary.Found = true
		if raw.SafeVotes != nil {
			summary.SafeVotes = *raw.SafeVotes
		}
		if raw.SuspiciousVotes != nil {
			summary.SuspiciousVotes = *raw.SuspiciousVotes
		}
	}
	return &summary, nil
}

// postForm sends form as an application/x-www-form-urlencoded POST.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

// postJSON sends body as a JSON POST.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// newRequest builds a request for path relative to the base URL.
// path may already contain escaped segments.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	target := c.baseURL.String() + path
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do sends req and decodes the JSON response into out.
//
// A non-2xx response is reported as ErrUnexpectedStatus, but its body is
// still decoded into out when possible so callers can surface the service's
// own message.
func (c *Client) do(req *http.Request, out any) error {
	requestID, _ := RequestIDFromContext(req.Context())
	c.logger.Debug("service request",
		"method", req.Method,
		"url", req.URL.String(),
		"request_id", requestID,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("service response",
		"status", resp.StatusCode,
		"bytes", len(data),
		"request_id", requestID,
	)

	decodeErr := json.Unmarshal(data, out)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	if decodeErr != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, decodeErr)
	}
	return nil
}
