package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFeedbackSelected is returned when feedback is submitted without a choice.
var ErrNoFeedbackSelected = errors.New("please select your feedback")

// FeedbackChoice is the enumerated correctness rating a user gives a verdict.
type FeedbackChoice string

const (
	// FeedbackSafe means the user believes the URL is safe.
	FeedbackSafe FeedbackChoice = "safe"

	// FeedbackSuspicious means the user believes the URL is suspicious.
	FeedbackSuspicious FeedbackChoice = "suspicious"
)

// ParseFeedbackChoice converts a user selection into a FeedbackChoice.
// An empty or unknown selection yields ErrNoFeedbackSelected, the same
// outcome as submitting the form without any radio button checked.
func ParseFeedbackChoice(selection string) (FeedbackChoice, error) {
	switch FeedbackChoice(strings.ToLower(strings.TrimSpace(selection))) {
	case FeedbackSafe:
		return FeedbackSafe, nil
	case FeedbackSuspicious:
		return FeedbackSuspicious, nil
	case "":
		return "", ErrNoFeedbackSelected
	default:
		return "", fmt.Errorf("%w: unknown choice %q (use %q or %q)",
			ErrNoFeedbackSelected, selection, FeedbackSafe, FeedbackSuspicious)
	}
}

// FeedbackRecord is a single feedback submission. It is transient:
// sent once and discarded.
type FeedbackRecord struct {
	URL      string         `json:"url"`
	Feedback FeedbackChoice `json:"feedback"`
	Reason   string         `json:"reason"`
}

// FeedbackSummary holds the votes the server has collected for a URL.
// When the server has no record, Found is false and Message explains why.
type FeedbackSummary struct {
	SafeVotes       int    `json:"safe_votes"`
	SuspiciousVotes int    `json:"suspicious_votes"`
	Reason          string `json:"reason"`
	Message         string `json:"message,omitempty"`

	// Found is derived by the client, not sent by the server.
	Found bool `json:"-"`
}

// TotalVotes returns the number of votes of both kinds.
func (s FeedbackSummary) TotalVotes() int {
	return s.SafeVotes + s.SuspiciousVotes
}
