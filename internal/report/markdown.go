package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/phishcheck/internal/model"
	"github.com/nao1215/phishcheck/internal/view"
)

// MarkdownWriter outputs views in Markdown format.
// This format is designed for sharing a verdict in an issue or a chat.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteView outputs the visible parts of s in Markdown format.
func (w *MarkdownWriter) WriteView(s view.State) (int, error) {
	md := markdown.NewMarkdown(w.output)

	if s.Section == view.SectionResult {
		w.writeResult(md, s)
	}
	if s.OverlayVisible {
		w.writeBlockedList(md, s)
	}

	return len(md.String()), md.Build()
}

// writeResult writes the verdict table, alert, reasons and actions.
func (w *MarkdownWriter) writeResult(md *markdown.Markdown, s view.State) {
	md.H1("URL Verdict")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", "`" + s.ResultURL + "`"},
			{"Result", "**" + s.ResultText + "**"},
		},
	})
	md.PlainText("")

	if model.IsPhishingLabel(s.ResultText) {
		md.Cautionf("`%s` was classified as phishing. Do not enter credentials on this site.", s.ResultURL)
	} else {
		md.Tip("No phishing characteristics were detected.")
	}
	md.PlainText("")

	if s.ShowReasons {
		md.H2("Reasons")
		md.PlainText("")
		md.BulletList(s.Reasons...)
		md.PlainText("")
	}

	var actions []string
	if s.Block.Visible {
		action := s.Block.Text
		if s.Block.Disabled {
			action += " (unavailable)"
		}
		actions = append(actions, action)
	}
	if s.Navigate.Visible {
		actions = append(actions, s.Navigate.Text)
	}
	md.H2("Actions")
	md.PlainText("")
	md.BulletList(actions...)
	md.PlainText("")
}

// writeBlockedList writes the blocked-sites overlay as a numbered table.
func (w *MarkdownWriter) writeBlockedList(md *markdown.Markdown, s view.State) {
	md.H2("Blocked Sites")
	md.PlainText("")

	if len(s.BlockedList) == 1 && s.BlockedList[0] == view.NoBlockedPlaceholder {
		md.PlainText(view.NoBlockedPlaceholder)
		md.PlainText("")
		return
	}

	rows := make([][]string, len(s.BlockedList))
	for i, u := range s.BlockedList {
		rows[i] = []string{strconv.Itoa(i + 1), "`" + u + "`"}
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "URL"},
		Rows:   rows,
	})
	md.PlainText("")
}

// WriteAlert outputs message as a Markdown note.
func (w *MarkdownWriter) WriteAlert(message string) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.Note(message)
	md.PlainText("")
	return len(md.String()), md.Build()
}

// WriteFeedbackSummary outputs the feedback recorded for url in Markdown format.
func (w *MarkdownWriter) WriteFeedbackSummary(url string, summary *model.FeedbackSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("Community Feedback")
	md.PlainText("")

	if summary == nil || !summary.Found {
		md.PlainTextf("`%s`: %s", url, feedbackLine(summary))
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	reason := summary.Reason
	if reason == "" {
		reason = "-"
	}
	md.Table(markdown.TableSet{
		Header: []string{"URL", "Safe", "Suspicious", "Reason"},
		Rows: [][]string{{
			"`" + url + "`",
			strconv.Itoa(summary.SafeVotes),
			strconv.Itoa(summary.SuspiciousVotes),
			reason,
		}},
	})
	md.PlainText("")
	return len(md.String()), md.Build()
}
