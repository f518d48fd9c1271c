package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/nao1215/phishcheck/internal/client"
	"github.com/nao1215/phishcheck/internal/config"
	"github.com/nao1215/phishcheck/internal/model"
	"github.com/nao1215/phishcheck/internal/view"
)

// Service is the classification service. client.Client satisfies it.
type Service interface {
	Classify(ctx context.Context, candidateURL string) (*model.Verdict, error)
	Block(ctx context.Context, targetURL string) (*model.BlockAck, error)
	BlockJSON(ctx context.Context, targetURL string) (*model.BlockMessage, error)
	ListBlocked(ctx context.Context) ([]string, error)
	SubmitFeedback(ctx context.Context, record model.FeedbackRecord) error
	FeedbackSummary(ctx context.Context, targetURL string) (*model.FeedbackSummary, error)
}

// BlockCache is the client-side record of blocked URLs.
// blocklist.Cache satisfies it.
type BlockCache interface {
	IsBlocked(u string) bool
	RecordBlocked(ctx context.Context, u string) error
}

// Controller drives one phishcheck session.
// It is safe for concurrent use.
type Controller struct {
	service   Service
	cache     BlockCache
	navigator Navigator
	notifier  Notifier
	blockMode config.BlockMode
	logger    *slog.Logger

	// concurrency limits parallel classification in CheckAll.
	concurrency int

	mu    sync.Mutex
	state view.State
	// seq is the sequence number of the latest classification request.
	seq uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithNavigator sets how RedirectToSite opens URLs.
// The default discards the target.
func WithNavigator(n Navigator) Option {
	return func(c *Controller) {
		if n != nil {
			c.navigator = n
		}
	}
}

// WithNotifier sets where user-facing alerts go.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithBlockMode selects the block endpoint variant.
func WithBlockMode(mode config.BlockMode) Option {
	return func(c *Controller) {
		if mode != "" {
			c.blockMode = mode
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithConcurrency sets the maximum number of concurrent classifications in CheckAll.
// Default is config.DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// New creates a Controller in the initial view state.
func New(service Service, cache BlockCache, opts ...Option) *Controller {
	c := &Controller{
		service:     service,
		cache:       cache,
		navigator:   PrintNavigator{},
		notifier:    discardNotifier{},
		blockMode:   config.BlockModeForm,
		logger:      slog.Default(),
		concurrency: config.DefaultConcurrency,
		state:       view.NewState(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns a copy of the current view state.
func (c *Controller) State() view.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// ShowSection switches the visible section.
func (c *Controller) ShowSection(name string) (view.State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := view.ShowSection(c.state, name)
	if err != nil {
		return c.state.Clone(), err
	}
	c.state = s
	return c.state.Clone(), nil
}

// CheckURL classifies candidateURL and renders the verdict.
//
// If another CheckURL is started before this one receives its answer, the
// answer is discarded and ErrSuperseded is returned. On a classification
// failure the user is alerted, the view returns to home and the error is
// returned.
func (c *Controller) CheckURL(ctx context.Context, candidateURL string) (view.State, error) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state.Input = candidateURL
	c.mu.Unlock()

	requestID := uuid.NewString()
	logger := c.logger.With("request_id", requestID, "seq", seq)
	logger.Debug("classifying URL", "url", candidateURL)

	verdict, err := c.service.Classify(client.WithRequestID(ctx, requestID), candidateURL)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		logger.Debug("discarding stale classification", "latest_seq", c.seq)
		return c.state.Clone(), ErrSuperseded
	}

	if err != nil {
		logger.Warn("classification failed", "url", candidateURL, "error", err)
		c.notifier.Alert(AlertClassifyFailed)
		c.state.Section = view.SectionHome
		return c.state.Clone(), err
	}

	logger.Info("classification complete", "url", verdict.URL, "label", verdict.Label)
	c.state = view.RenderVerdict(c.state, *verdict, c.cache.IsBlocked)
	return c.state.Clone(), nil
}

// BlockSite asks the service to block the URL shown in the result view.
//
// On success the URL is recorded in the block cache. Whatever the outcome,
// the view returns to home and the input is cleared afterwards, unless a
// newer CheckURL replaced the view while the block request was in flight.
// In that case the newer view is kept.
func (c *Controller) BlockSite(ctx context.Context) (view.State, error) {
	c.mu.Lock()
	s := c.state.Clone()
	seq := c.seq
	c.mu.Unlock()

	if s.Section != view.SectionResult || !s.Block.Visible || s.Block.Disabled {
		return s, fmt.Errorf("%w: block", ErrActionUnavailable)
	}
	target := strings.TrimSpace(s.ResultURL)

	var err error
	switch c.blockMode {
	case config.BlockModeJSON:
		err = c.blockJSON(ctx, target)
	default:
		err = c.blockForm(ctx, target)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		c.logger.Debug("keeping newer view after block", "url", target, "seq", seq, "latest_seq", c.seq)
		return c.state.Clone(), err
	}

	c.state = view.ClearInput(c.state)
	c.state.Section = view.SectionHome
	return c.state.Clone(), err
}

// blockForm uses the form-encoded block endpoint.
func (c *Controller) blockForm(ctx context.Context, target string) error {
	ack, err := c.service.Block(ctx, target)
	if err != nil || !ack.Blocked {
		c.logger.Warn("block failed", "url", target, "error", err)
		c.notifier.Alert(AlertBlockFailed)
		if err == nil {
			err = errors.New("service declined the request")
		}
		return fmt.Errorf("%w: %w", ErrBlockFailed, err)
	}

	c.recordBlocked(ctx, target)
	c.notifier.Alert(AlertBlocked)
	return nil
}

// blockJSON uses the JSON block endpoint and relays the service's message.
func (c *Controller) blockJSON(ctx context.Context, target string) error {
	msg, err := c.service.BlockJSON(ctx, target)

	if msg != nil && msg.Message != "" {
		c.notifier.Alert(msg.Message)
	} else {
		c.notifier.Alert(AlertBlockFailed)
	}

	if err != nil {
		c.logger.Warn("block failed", "url", target, "error", err)
		return fmt.Errorf("%w: %w", ErrBlockFailed, err)
	}

	c.recordBlocked(ctx, target)
	return nil
}

// recordBlocked adds target to the cache. A cache write failure is logged
// only; the service already blocked the URL.
func (c *Controller) recordBlocked(ctx context.Context, target string) {
	if err := c.cache.RecordBlocked(ctx, target); err != nil {
		c.logger.Warn("failed to record blocked URL locally", "url", target, "error", err)
	}
}

// RedirectToSite opens the URL shown in the result view and returns the
// target that was opened.
func (c *Controller) RedirectToSite(ctx context.Context) (string, error) {
	s := c.State()
	if s.Section != view.SectionResult || !s.Navigate.Visible {
		return "", fmt.Errorf("%w: navigate", ErrActionUnavailable)
	}

	target := NavigationTarget(s.ResultURL)
	c.logger.Debug("navigating", "target", target)
	if err := c.navigator.Navigate(ctx, target); err != nil {
		return target, err
	}
	return target, nil
}

// SubmitFeedback sends the user's opinion about targetURL.
//
// An empty or unknown selection alerts the user and returns
// model.ErrNoFeedbackSelected without contacting the service. Service
// failures are logged only and nil is returned.
func (c *Controller) SubmitFeedback(ctx context.Context, selection, reason, targetURL string) error {
	choice, err := model.ParseFeedbackChoice(selection)
	if err != nil {
		c.notifier.Alert(AlertSelectFeedback)
		return err
	}

	record := model.FeedbackRecord{URL: targetURL, Feedback: choice, Reason: reason}
	if err := c.service.SubmitFeedback(ctx, record); err != nil {
		c.logger.Warn("error submitting feedback", "url", targetURL, "error", err)
		return nil
	}

	c.notifier.Alert(AlertFeedbackThanks)
	return nil
}

// LookupFeedback returns the feedback the service has recorded for targetURL.
func (c *Controller) LookupFeedback(ctx context.Context, targetURL string) (*model.FeedbackSummary, error) {
	return c.service.FeedbackSummary(ctx, targetURL)
}

// ListBlocked fetches the service's block list and opens the overlay.
// On failure the overlay stays hidden and the error is returned.
func (c *Controller) ListBlocked(ctx context.Context) (view.State, error) {
	urls, err := c.service.ListBlocked(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.logger.Warn("failed to list blocked URLs", "error", err)
		return c.state.Clone(), err
	}

	c.state = view.RenderBlockedList(c.state, urls)
	return c.state.Clone(), nil
}

// CloseBlockedList hides the blocked-sites overlay.
func (c *Controller) CloseBlockedList() view.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = view.CloseOverlay(c.state)
	return c.state.Clone()
}
