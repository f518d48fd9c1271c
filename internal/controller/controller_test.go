package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nao1215/phishcheck/internal/blocklist"
	"github.com/nao1215/phishcheck/internal/client"
	"github.com/nao1215/phishcheck/internal/config"
	"github.com/nao1215/phishcheck/internal/log"
	"github.com/nao1215/phishcheck/internal/model"
	"github.com/nao1215/phishcheck/internal/storage"
	"github.com/nao1215/phishcheck/internal/view"
)

// recordingNotifier collects alerts.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingNotifier) Alert(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

func (r *recordingNotifier) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

// memCache is an in-memory BlockCache.
type memCache struct {
	mu   sync.Mutex
	urls map[string]bool
}

func newMemCache(urls ...string) *memCache {
	c := &memCache{urls: make(map[string]bool)}
	for _, u := range urls {
		c.urls[u] = true
	}
	return c
}

func (m *memCache) IsBlocked(u string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.urls[u]
}

func (m *memCache) RecordBlocked(_ context.Context, u string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urls[u] = true
	return nil
}

// fakeService is a Service whose behavior is set per test.
type fakeService struct {
	classify        func(ctx context.Context, u string) (*model.Verdict, error)
	block           func(ctx context.Context, u string) (*model.BlockAck, error)
	blockJSON       func(ctx context.Context, u string) (*model.BlockMessage, error)
	listBlocked     func(ctx context.Context) ([]string, error)
	submitFeedback  func(ctx context.Context, r model.FeedbackRecord) error
	feedbackSummary func(ctx context.Context, u string) (*model.FeedbackSummary, error)
}

func (f *fakeService) Classify(ctx context.Context, u string) (*model.Verdict, error) {
	return f.classify(ctx, u)
}

func (f *fakeService) Block(ctx context.Context, u string) (*model.BlockAck, error) {
	return f.block(ctx, u)
}

func (f *fakeService) BlockJSON(ctx context.Context, u string) (*model.BlockMessage, error) {
	return f.blockJSON(ctx, u)
}

func (f *fakeService) ListBlocked(ctx context.Context) ([]string, error) {
	return f.listBlocked(ctx)
}

func (f *fakeService) SubmitFeedback(ctx context.Context, r model.FeedbackRecord) error {
	return f.submitFeedback(ctx, r)
}

func (f *fakeService) FeedbackSummary(ctx context.Context, u string) (*model.FeedbackSummary, error) {
	return f.feedbackSummary(ctx, u)
}

// echoVerdict returns a classify func answering label for every URL.
func echoVerdict(label string, reasons ...string) func(context.Context, string) (*model.Verdict, error) {
	return func(_ context.Context, u string) (*model.Verdict, error) {
		return &model.Verdict{Label: label, URL: u, Reasons: reasons}, nil
	}
}

// fakeServer is an httptest server speaking the classification API.
type fakeServer struct {
	*httptest.Server

	verdicts      map[string]model.Verdict
	blockAnswer   bool
	blockedURLs   []string
	feedbackCalls atomic.Int32
	blockCalls    atomic.Int32
	lastRequestID atomic.Value
}

func newFakeServer(t *testing.T, setup ...func(*fakeServer)) *fakeServer {
	t.Helper()

	fs := &fakeServer{verdicts: make(map[string]model.Verdict), blockAnswer: true}
	for _, f := range setup {
		f(fs)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /predict", func(w http.ResponseWriter, r *http.Request) {
		fs.lastRequestID.Store(r.Header.Get(client.RequestIDHeader))
		_ = r.ParseForm()
		v, ok := fs.verdicts[r.PostForm.Get("url")]
		if !ok {
			http.Error(w, "unknown", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(v)
	})
	mux.HandleFunc("POST /block", func(w http.ResponseWriter, _ *http.Request) {
		fs.blockCalls.Add(1)
		_ = json.NewEncoder(w).Encode(model.BlockAck{Blocked: fs.blockAnswer})
	})
	mux.HandleFunc("POST /block-url", func(w http.ResponseWriter, r *http.Request) {
		fs.blockCalls.Add(1)
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["url"] == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(model.BlockMessage{Status: "error", Message: "No URL provided"})
			return
		}
		_ = json.NewEncoder(w).Encode(model.BlockMessage{Status: "success", Message: "URL blocked"})
	})
	mux.HandleFunc("GET /get-blocked-urls", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(model.BlockedList{URLs: fs.blockedURLs})
	})
	mux.HandleFunc("POST /submit-feedback", func(w http.ResponseWriter, _ *http.Request) {
		fs.feedbackCalls.Add(1)
		_ = json.NewEncoder(w).Encode(model.BlockMessage{Status: "success", Message: "Feedback submitted successfully."})
	})
	fs.Server = httptest.NewServer(mux)
	t.Cleanup(fs.Close)
	return fs
}

// newHTTPController creates a Controller talking to fs through a real client.
func newHTTPController(t *testing.T, fs *fakeServer, cache BlockCache, opts ...Option) (*Controller, *recordingNotifier) {
	t.Helper()

	cfg := config.NewConfig()
	cfg.ServerURL = fs.URL
	cfg.Timeout = 5 * time.Second
	svc, err := client.New(cfg, client.WithLogger(log.Discard()))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	notifier := &recordingNotifier{}
	opts = append([]Option{WithNotifier(notifier), WithLogger(log.Discard())}, opts...)
	return New(svc, cache, opts...), notifier
}

// TestCheckURL tests classification and rendering.
func TestCheckURL(t *testing.T) {
	t.Parallel()

	t.Run("legitimate verdict shows navigate", func(t *testing.T) {
		t.Parallel()

		fs := newFakeServer(t, func(fs *fakeServer) {
			fs.verdicts["example.com"] = model.Verdict{Label: "Legitimate", URL: "example.com", Reasons: []string{}}
		})
		c, _ := newHTTPController(t, fs, newMemCache())

		s, err := c.CheckURL(context.Background(), "example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Section != view.SectionResult || !s.Navigate.Visible || s.Block.Visible || s.ShowReasons {
			t.Errorf("unexpected state %+v", s)
		}
		if id, _ := fs.lastRequestID.Load().(string); id == "" {
			t.Error("expected request ID header to be sent")
		}
	})

	t.Run("phishing verdict shows block", func(t *testing.T) {
		t.Parallel()

		fs := newFakeServer(t, func(fs *fakeServer) {
			fs.verdicts["bad-login.example"] = model.Verdict{
				Label:   "Phishing",
				URL:     "bad-login.example",
				Reasons: []string{"suspicious domain age", "login form on non-HTTPS"},
			}
		})
		c, _ := newHTTPController(t, fs, newMemCache())

		s, err := c.CheckURL(context.Background(), "bad-login.example")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.Block.Visible || s.Block.Disabled || s.Block.Text != view.BlockButtonText {
			t.Errorf("unexpected block control %+v", s.Block)
		}
		if len(s.Reasons) != 2 || s.Reasons[0] != "suspicious domain age" {
			t.Errorf("unexpected reasons %v", s.Reasons)
		}
	})

	t.Run("already blocked URL disables block", func(t *testing.T) {
		t.Parallel()

		fs := newFakeServer(t, func(fs *fakeServer) {
			fs.verdicts["bad-login.example"] = model.Verdict{Label: "Phishing", URL: "bad-login.example"}
		})
		c, _ := newHTTPController(t, fs, newMemCache("bad-login.example"))

		s, err := c.CheckURL(context.Background(), "bad-login.example")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.Block.Disabled || s.Block.Text != view.AlreadyBlockedText {
			t.Errorf("unexpected block control %+v", s.Block)
		}
	})

	t.Run("failure alerts and returns home", func(t *testing.T) {
		t.Parallel()

		fs := newFakeServer(t)
		c, notifier := newHTTPController(t, fs, newMemCache())

		s, err := c.CheckURL(context.Background(), "unknown.example")
		if !errors.Is(err, client.ErrUnexpectedStatus) {
			t.Errorf("expected ErrUnexpectedStatus, got %v", err)
		}
		if s.Section != view.SectionHome {
			t.Errorf("expected home section, got %q", s.Section)
		}
		if notifier.last() != AlertClassifyFailed {
			t.Errorf("expected failure alert, got %q", notifier.last())
		}
	})
}

// TestCheckURL_StaleResponseIsDiscarded tests that a late answer never
// overwrites the verdict of a newer request.
func TestCheckURL_StaleResponseIsDiscarded(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})
	svc := &fakeService{
		classify: func(_ context.Context, u string) (*model.Verdict, error) {
			if u == "slow.example" {
				close(started)
				<-release
				return &model.Verdict{Label: "Phishing", URL: u}, nil
			}
			return &model.Verdict{Label: "Legitimate", URL: u}, nil
		},
	}
	c := New(svc, newMemCache(), WithLogger(log.Discard()))

	type outcome struct {
		state view.State
		err   error
	}
	slow := make(chan outcome, 1)
	go func() {
		s, err := c.CheckURL(context.Background(), "slow.example")
		slow <- outcome{s, err}
	}()

	<-started
	if _, err := c.CheckURL(context.Background(), "fast.example"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	close(release)

	got := <-slow
	if !errors.Is(got.err, ErrSuperseded) {
		t.Errorf("expected ErrSuperseded, got %v", got.err)
	}

	s := c.State()
	if s.ResultURL != "fast.example" || !s.Navigate.Visible {
		t.Errorf("expected newer verdict to remain, got %+v", s)
	}
}

// TestBlockSite_LateReplyKeepsNewerView tests that a block reply arriving
// after a newer classification does not reset the newer view.
func TestBlockSite_LateReplyKeepsNewerView(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})
	svc := &fakeService{
		classify: func(_ context.Context, u string) (*model.Verdict, error) {
			if u == "bad.example" {
				return &model.Verdict{Label: "Phishing", URL: u}, nil
			}
			return &model.Verdict{Label: "Legitimate", URL: u}, nil
		},
		block: func(_ context.Context, _ string) (*model.BlockAck, error) {
			close(started)
			<-release
			return &model.BlockAck{Blocked: true}, nil
		},
	}
	cache := newMemCache()
	notifier := &recordingNotifier{}
	c := New(svc, cache, WithNotifier(notifier), WithLogger(log.Discard()))

	ctx := context.Background()
	if _, err := c.CheckURL(ctx, "bad.example"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	blocked := make(chan error, 1)
	go func() {
		_, err := c.BlockSite(ctx)
		blocked <- err
	}()

	<-started
	if _, err := c.CheckURL(ctx, "newer.example"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	close(release)

	if err := <-blocked; err != nil {
		t.Fatalf("unexpected block error: %v", err)
	}

	s := c.State()
	if s.Section != view.SectionResult || s.ResultURL != "newer.example" || s.Input != "newer.example" {
		t.Errorf("expected newer verdict to remain, got section=%s result_url=%q input=%q",
			s.Section, s.ResultURL, s.Input)
	}
	if !cache.IsBlocked("bad.example") {
		t.Error("expected bad.example to be recorded as blocked")
	}
	if notifier.last() != AlertBlocked {
		t.Errorf("expected %q alert, got %q", AlertBlocked, notifier.last())
	}
}

// TestBlockSite tests the block action in both modes.
func TestBlockSite(t *testing.T) {
	t.Parallel()

	t.Run("successful block records URL and resets", func(t *testing.T) {
		t.Parallel()

		fs := newFakeServer(t, func(fs *fakeServer) {
			fs.verdicts["bad-login.example"] = model.Verdict{Label: "Phishing", URL: "bad-login.example"}
		})

		st, err := storage.Open(t.TempDir(), storage.DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open storage: %v", err)
		}
		t.Cleanup(func() { _ = st.Close() })
		cache, err := blocklist.Load(context.Background(), st, blocklist.WithLogger(log.Discard()))
		if err != nil {
			t.Fatalf("failed to load cache: %v", err)
		}

		c, notifier := newHTTPController(t, fs, cache)
		ctx := context.Background()
		if _, err := c.CheckURL(ctx, "bad-login.example"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		s, err := c.BlockSite(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cache.IsBlocked("bad-login.example") {
			t.Error("expected URL in cache")
		}
		if notifier.last() != AlertBlocked {
			t.Errorf("expected success alert, got %q", notifier.last())
		}
		if s.Section != view.SectionHome || s.Input != "" || s.ResultURL != "" {
			t.Errorf("expected reset to home with empty input, got %+v", s)
		}

		// Classifying again now shows the disabled control.
		s, err = c.CheckURL(ctx, "bad-login.example")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.Block.Disabled {
			t.Error("expected block control disabled after blocking")
		}
	})

	t.Run("declined block alerts failure and still resets", func(t *testing.T) {
		t.Parallel()

		fs := newFakeServer(t, func(fs *fakeServer) {
			fs.blockAnswer = false
			fs.verdicts["bad-login.example"] = model.Verdict{Label: "Phishing", URL: "bad-login.example"}
		})
		cache := newMemCache()
		c, notifier := newHTTPController(t, fs, cache)
		ctx := context.Background()
		if _, err := c.CheckURL(ctx, "bad-login.example"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		s, err := c.BlockSite(ctx)
		if !errors.Is(err, ErrBlockFailed) {
			t.Errorf("expected ErrBlockFailed, got %v", err)
		}
		if cache.IsBlocked("bad-login.example") {
			t.Error("expected URL not cached")
		}
		if notifier.last() != AlertBlockFailed {
			t.Errorf("expected failure alert, got %q", notifier.last())
		}
		if s.Section != view.SectionHome || s.Input != "" {
			t.Errorf("expected reset to home, got %+v", s)
		}
	})

	t.Run("transport failure alerts failure and still resets", func(t *testing.T) {
		t.Parallel()

		svc := &fakeService{
			classify: echoVerdict("Phishing"),
			block: func(context.Context, string) (*model.BlockAck, error) {
				return nil, errors.New("connection refused")
			},
		}
		notifier := &recordingNotifier{}
		c := New(svc, newMemCache(), WithNotifier(notifier), WithLogger(log.Discard()))
		ctx := context.Background()
		if _, err := c.CheckURL(ctx, "x.example"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		s, err := c.BlockSite(ctx)
		if !errors.Is(err, ErrBlockFailed) {
			t.Errorf("expected ErrBlockFailed, got %v", err)
		}
		if notifier.last() != AlertBlockFailed {
			t.Errorf("expected failure alert, got %q", notifier.last())
		}
		if s.Section != view.SectionHome {
			t.Errorf("expected home section, got %q", s.Section)
		}
	})

	t.Run("json mode relays server message and records", func(t *testing.T) {
		t.Parallel()

		fs := newFakeServer(t, func(fs *fakeServer) {
			fs.verdicts["bad-login.example"] = model.Verdict{Label: "Phishing", URL: "bad-login.example"}
		})
		cache := newMemCache()
		c, notifier := newHTTPController(t, fs, cache, WithBlockMode(config.BlockModeJSON))
		ctx := context.Background()
		if _, err := c.CheckURL(ctx, "bad-login.example"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		s, err := c.BlockSite(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if notifier.last() != "URL blocked" {
			t.Errorf("expected server message, got %q", notifier.last())
		}
		if !cache.IsBlocked("bad-login.example") {
			t.Error("expected URL in cache")
		}
		if s.Section != view.SectionHome {
			t.Errorf("expected home section, got %q", s.Section)
		}
	})

	t.Run("json mode rejection relays message without recording", func(t *testing.T) {
		t.Parallel()

		fs := newFakeServer(t, func(fs *fakeServer) {
			fs.verdicts[""] = model.Verdict{Label: "Phishing", URL: ""}
		})
		cache := newMemCache()
		c, notifier := newHTTPController(t, fs, cache, WithBlockMode(config.BlockModeJSON))
		ctx := context.Background()
		if _, err := c.CheckURL(ctx, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := c.BlockSite(ctx); !errors.Is(err, ErrBlockFailed) {
			t.Errorf("expected ErrBlockFailed, got %v", err)
		}
		if notifier.last() != "No URL provided" {
			t.Errorf("expected server message, got %q", notifier.last())
		}
		if cache.IsBlocked("") {
			t.Error("expected nothing cached")
		}
	})

	t.Run("unavailable for non-phishing verdict", func(t *testing.T) {
		t.Parallel()

		fs := newFakeServer(t, func(fs *fakeServer) {
			fs.verdicts["example.com"] = model.Verdict{Label: "Legitimate", URL: "example.com"}
		})
		c, _ := newHTTPController(t, fs, newMemCache())
		ctx := context.Background()
		if _, err := c.CheckURL(ctx, "example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := c.BlockSite(ctx); !errors.Is(err, ErrActionUnavailable) {
			t.Errorf("expected ErrActionUnavailable, got %v", err)
		}
		if fs.blockCalls.Load() != 0 {
			t.Error("expected no block request")
		}
	})

	t.Run("unavailable when already blocked", func(t *testing.T) {
		t.Parallel()

		svc := &fakeService{classify: echoVerdict("Phishing")}
		c := New(svc, newMemCache("x.example"), WithLogger(log.Discard()))
		ctx := context.Background()
		if _, err := c.CheckURL(ctx, "x.example"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := c.BlockSite(ctx); !errors.Is(err, ErrActionUnavailable) {
			t.Errorf("expected ErrActionUnavailable, got %v", err)
		}
	})
}

// TestRedirectToSite tests the navigate action.
func TestRedirectToSite(t *testing.T) {
	t.Parallel()

	t.Run("adds https scheme", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		svc := &fakeService{classify: echoVerdict("Legitimate")}
		c := New(svc, newMemCache(), WithNavigator(PrintNavigator{Output: &out}), WithLogger(log.Discard()))
		ctx := context.Background()
		if _, err := c.CheckURL(ctx, "example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		target, err := c.RedirectToSite(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if target != "https://example.com" {
			t.Errorf("expected https://example.com, got %q", target)
		}
		if out.String() != "https://example.com\n" {
			t.Errorf("unexpected navigator output %q", out.String())
		}
	})

	t.Run("unavailable for phishing verdict", func(t *testing.T) {
		t.Parallel()

		svc := &fakeService{classify: echoVerdict("Phishing")}
		c := New(svc, newMemCache(), WithLogger(log.Discard()))
		ctx := context.Background()
		if _, err := c.CheckURL(ctx, "bad.example"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := c.RedirectToSite(ctx); !errors.Is(err, ErrActionUnavailable) {
			t.Errorf("expected ErrActionUnavailable, got %v", err)
		}
	})
}

// TestNavigationTarget tests scheme prefixing.
func TestNavigationTarget(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		want  string
	}{
		{"example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com/path", "https://example.com/path"},
		{"ftp://example.com", "https://ftp://example.com"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			if got := NavigationTarget(tc.input); got != tc.want {
				t.Errorf("NavigationTarget(%q) = %q, expected %q", tc.input, got, tc.want)
			}
		})
	}
}

// TestSubmitFeedback tests the feedback submitter.
func TestSubmitFeedback(t *testing.T) {
	t.Parallel()

	t.Run("no selection prompts without network call", func(t *testing.T) {
		t.Parallel()

		fs := newFakeServer(t)
		c, notifier := newHTTPController(t, fs, newMemCache())

		err := c.SubmitFeedback(context.Background(), "", "looks odd", "x.example")
		if !errors.Is(err, model.ErrNoFeedbackSelected) {
			t.Errorf("expected ErrNoFeedbackSelected, got %v", err)
		}
		if fs.feedbackCalls.Load() != 0 {
			t.Error("expected no network call")
		}
		if notifier.last() != AlertSelectFeedback {
			t.Errorf("expected prompt, got %q", notifier.last())
		}
	})

	t.Run("valid selection is sent and acknowledged", func(t *testing.T) {
		t.Parallel()

		fs := newFakeServer(t)
		c, notifier := newHTTPController(t, fs, newMemCache())

		if err := c.SubmitFeedback(context.Background(), "suspicious", "fake bank", "x.example"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fs.feedbackCalls.Load() != 1 {
			t.Errorf("expected one call, got %d", fs.feedbackCalls.Load())
		}
		if notifier.last() != AlertFeedbackThanks {
			t.Errorf("expected thanks, got %q", notifier.last())
		}
	})

	t.Run("transport failure is silent", func(t *testing.T) {
		t.Parallel()

		svc := &fakeService{
			submitFeedback: func(context.Context, model.FeedbackRecord) error {
				return errors.New("connection refused")
			},
		}
		notifier := &recordingNotifier{}
		c := New(svc, newMemCache(), WithNotifier(notifier), WithLogger(log.Discard()))

		if err := c.SubmitFeedback(context.Background(), "safe", "", "x.example"); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
		if len(notifier.messages) != 0 {
			t.Errorf("expected no alerts, got %v", notifier.messages)
		}
	})
}

// TestListBlocked tests the blocked-list viewer.
func TestListBlocked(t *testing.T) {
	t.Parallel()

	t.Run("renders server list", func(t *testing.T) {
		t.Parallel()

		fs := newFakeServer(t, func(fs *fakeServer) {
			fs.blockedURLs = []string{"b.example", "a.example"}
		})
		c, _ := newHTTPController(t, fs, newMemCache())

		s, err := c.ListBlocked(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !s.OverlayVisible || len(s.BlockedList) != 2 || s.BlockedList[0] != "b.example" {
			t.Errorf("unexpected overlay %+v", s)
		}

		s = c.CloseBlockedList()
		if s.OverlayVisible {
			t.Error("expected overlay closed")
		}
	})

	t.Run("empty list renders placeholder", func(t *testing.T) {
		t.Parallel()

		fs := newFakeServer(t)
		c, _ := newHTTPController(t, fs, newMemCache())

		s, err := c.ListBlocked(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.BlockedList) != 1 || s.BlockedList[0] != view.NoBlockedPlaceholder {
			t.Errorf("expected placeholder, got %v", s.BlockedList)
		}
	})

	t.Run("failure leaves overlay hidden", func(t *testing.T) {
		t.Parallel()

		svc := &fakeService{
			listBlocked: func(context.Context) ([]string, error) { return nil, errors.New("down") },
		}
		c := New(svc, newMemCache(), WithLogger(log.Discard()))

		s, err := c.ListBlocked(context.Background())
		if err == nil {
			t.Error("expected error")
		}
		if s.OverlayVisible {
			t.Error("expected overlay hidden")
		}
	})
}

// TestShowSection tests section switching through the controller.
func TestShowSection(t *testing.T) {
	t.Parallel()

	c := New(&fakeService{}, newMemCache(), WithLogger(log.Discard()))
	if _, err := c.ShowSection("result"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := c.ShowSection("nowhere")
	if !errors.Is(err, view.ErrUnknownSection) {
		t.Errorf("expected ErrUnknownSection, got %v", err)
	}
	if s.Section != view.SectionResult {
		t.Errorf("expected unchanged section, got %q", s.Section)
	}
}

// TestLookupFeedback tests the feedback lookup passthrough.
func TestLookupFeedback(t *testing.T) {
	t.Parallel()

	svc := &fakeService{
		feedbackSummary: func(_ context.Context, u string) (*model.FeedbackSummary, error) {
			return &model.FeedbackSummary{SafeVotes: 1, Found: u == "x.example"}, nil
		},
	}
	c := New(svc, newMemCache(), WithLogger(log.Discard()))

	s, err := c.LookupFeedback(context.Background(), "x.example")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Found {
		t.Error("expected feedback found")
	}
}
