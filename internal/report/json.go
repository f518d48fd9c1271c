package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/phishcheck/internal/model"
	"github.com/nao1215/phishcheck/internal/view"
)

// JSONWriter outputs views in JSON format, one document per line.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// alertDocument is the JSON shape of an alert.
type alertDocument struct {
	Alert string `json:"alert"`
}

// feedbackDocument is the JSON shape of a feedback lookup.
type feedbackDocument struct {
	URL   string `json:"url"`
	Found bool   `json:"found"`
	*model.FeedbackSummary
}

// WriteView outputs s in JSON format.
func (w *JSONWriter) WriteView(s view.State) (int, error) {
	return w.writeJSON(s)
}

// WriteAlert outputs message as {"alert": message}.
func (w *JSONWriter) WriteAlert(message string) (int, error) {
	return w.writeJSON(alertDocument{Alert: message})
}

// WriteFeedbackSummary outputs the feedback recorded for url in JSON format.
func (w *JSONWriter) WriteFeedbackSummary(url string, summary *model.FeedbackSummary) (int, error) {
	if summary == nil {
		summary = &model.FeedbackSummary{}
	}
	return w.writeJSON(feedbackDocument{URL: url, Found: summary.Found, FeedbackSummary: summary})
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
