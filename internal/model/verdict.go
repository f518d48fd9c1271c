package model

import (
	"golang.org/x/text/cases"
)

// PhishingLabel is the classifier label that selects the block action.
const PhishingLabel = "phishing"

// Verdict is the classifier's judgment on a single URL.
// Exactly one Verdict is current per view; a new request overwrites it.
type Verdict struct {
	// Label is the classification result, e.g. "Phishing", "Not phishing"
	// or "Suspicious". Only a case-insensitive match on "phishing" is
	// significant to the client.
	Label string `json:"result"`

	// URL is the URL as echoed back by the classifier.
	URL string `json:"url"`

	// Reasons are the human-readable reasons behind the label, in the
	// order the classifier produced them. May be empty.
	Reasons []string `json:"reasons,omitempty"`

	// BlockOption is the server's own hint whether blocking makes sense.
	// It is informational only; the label alone selects the action control.
	BlockOption bool `json:"block_option,omitempty"`
}

// IsPhishing reports whether the label equals "phishing" ignoring case.
func (v Verdict) IsPhishing() bool {
	return IsPhishingLabel(v.Label)
}

// IsPhishingLabel compares label against PhishingLabel using Unicode
// case folding, so "Phishing", "PHISHING" and "phishing" all match.
// Folding is wider than lowercasing: the long s (U+017F) folds to "s", so
// "phiſhing" matches as well. For ASCII labels the result is the same as
// comparing lowercased strings.
// A cases.Caser is stateful, so a fresh one is created per call.
func IsPhishingLabel(label string) bool {
	return cases.Fold().String(label) == PhishingLabel
}

// BlockAck is the response of the form-encoded block endpoint.
type BlockAck struct {
	// Blocked is true when the server accepted the block request.
	Blocked bool `json:"blocked"`
}

// BlockMessage is the response of the JSON block endpoint.
type BlockMessage struct {
	// Status is "success" or "error".
	Status string `json:"status,omitempty"`

	// Message is a human-readable acknowledgement shown to the user as-is.
	Message string `json:"message"`
}

// BlockedList is the server's authoritative list of blocked URLs.
type BlockedList struct {
	URLs []string `json:"blocked_urls"`
}
