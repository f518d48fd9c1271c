package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nao1215/phishcheck/internal/model"
	"github.com/nao1215/phishcheck/internal/view"
)

// ruleWidth is the width of the horizontal separators.
const ruleWidth = 70

// SimpleWriter outputs human-readable text.
// This format is designed for terminal display with a colored verdict and
// clear section formatting.
//
// Design decision: Color comes from fatih/color, which turns itself off
// when stdout is not a terminal or NO_COLOR is set, so piping the output to
// a file yields plain text without extra flags.
type SimpleWriter struct {
	baseWriter

	// verbose enables additional detail in the output.
	verbose bool

	danger *color.Color
	safe   *color.Color
	muted  *color.Color
	notice *color.Color
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// WithColor forces colored output on or off regardless of the terminal.
func WithColor(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		for _, c := range []*color.Color{w.danger, w.safe, w.muted, w.notice} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		danger:     color.New(color.FgRed, color.Bold),
		safe:       color.New(color.FgGreen, color.Bold),
		muted:      color.New(color.Faint),
		notice:     color.New(color.FgYellow),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteView outputs the visible parts of s in human-readable format.
func (w *SimpleWriter) WriteView(s view.State) (int, error) {
	var sb strings.Builder

	switch s.Section {
	case view.SectionResult:
		w.writeResult(&sb, s)
	case view.SectionHome:
		if w.verbose {
			sb.WriteString(w.muted.Sprint("Enter a URL to check.") + "\n")
		}
	}

	if s.OverlayVisible {
		w.writeBlockedList(&sb, s)
	}

	return io.WriteString(w.output, sb.String())
}

// writeResult writes the verdict, reasons and available actions.
func (w *SimpleWriter) writeResult(sb *strings.Builder, s view.State) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")

	label := w.safe.Sprint(s.ResultText)
	if model.IsPhishingLabel(s.ResultText) {
		label = w.danger.Sprint(s.ResultText)
	}
	fmt.Fprintf(sb, "Result: %s\n", label)
	fmt.Fprintf(sb, "URL:    %s\n", s.ResultURL)

	if s.ShowReasons {
		sb.WriteString("\n")
		sb.WriteString(view.ReasonsHeading + "\n")
		for _, reason := range s.Reasons {
			fmt.Fprintf(sb, "  * %s\n", reason)
		}
	}

	sb.WriteString("\n")
	sb.WriteString("Actions:\n")
	if s.Block.Visible {
		if s.Block.Disabled {
			fmt.Fprintf(sb, "  %s\n", w.muted.Sprintf("[%s]", s.Block.Text))
		} else {
			fmt.Fprintf(sb, "  [%s]\n", s.Block.Text)
		}
	}
	if s.Navigate.Visible {
		fmt.Fprintf(sb, "  [%s]\n", s.Navigate.Text)
	}

	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
}

// writeBlockedList writes the blocked-sites overlay.
func (w *SimpleWriter) writeBlockedList(sb *strings.Builder, s view.State) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("BLOCKED SITES\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	for _, u := range s.BlockedList {
		fmt.Fprintf(sb, "  - %s\n", u)
	}
}

// WriteAlert outputs message as a highlighted notice line.
func (w *SimpleWriter) WriteAlert(message string) (int, error) {
	return io.WriteString(w.output, w.notice.Sprint(">> "+message)+"\n")
}

// WriteFeedbackSummary outputs the community feedback recorded for url.
func (w *SimpleWriter) WriteFeedbackSummary(url string, summary *model.FeedbackSummary) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Feedback for %s\n", url)
	fmt.Fprintf(&sb, "  Votes:  %s\n", feedbackLine(summary))
	if summary != nil && summary.Found && summary.Reason != "" {
		fmt.Fprintf(&sb, "  Reason: %s\n", summary.Reason)
	}

	return io.WriteString(w.output, sb.String())
}
