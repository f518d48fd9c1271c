package report

import (
	"fmt"
	"io"

	"github.com/nao1215/phishcheck/internal/config"
	"github.com/nao1215/phishcheck/internal/model"
	"github.com/nao1215/phishcheck/internal/view"
)

// Writer defines the interface for view output.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// WriteView outputs the visible parts of s.
	// Returns the number of bytes written and any error encountered.
	WriteView(s view.State) (int, error)

	// WriteAlert outputs a user-facing notification.
	WriteAlert(message string) (int, error)

	// WriteFeedbackSummary outputs the feedback recorded for url.
	WriteFeedbackSummary(url string, summary *model.FeedbackSummary) (int, error)
}

// New returns the Writer selected by cfg: JSON, Markdown, or simple text.
func New(output io.Writer, cfg *config.Config) Writer {
	switch {
	case cfg.JSONOutput:
		return NewJSONWriter(output)
	case cfg.MarkdownOutput:
		return NewMarkdownWriter(output)
	default:
		return NewSimpleWriter(output, WithVerbose(cfg.Verbose))
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// feedbackLine summarizes the votes in summary as one sentence.
func feedbackLine(summary *model.FeedbackSummary) string {
	if summary == nil || !summary.Found {
		if summary != nil && summary.Message != "" {
			return summary.Message
		}
		return "No feedback found for this URL."
	}
	return fmt.Sprintf("%d safe, %d suspicious (%d total)",
		summary.SafeVotes, summary.SuspiciousVotes, summary.TotalVotes())
}
