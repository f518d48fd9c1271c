package view

import (
	"errors"
	"fmt"
	"slices"

	"github.com/nao1215/phishcheck/internal/model"
)

// ErrUnknownSection is returned by ShowSection for names other than home and result.
var ErrUnknownSection = errors.New("unknown section")

// Section identifies one of the mutually exclusive views.
type Section string

const (
	// SectionHome is the URL entry view.
	SectionHome Section = "home"

	// SectionResult is the verdict view.
	SectionResult Section = "result"
)

// Texts shown by the view.
const (
	BlockButtonText      = "Block This URL"
	AlreadyBlockedText   = "URL Already Blocked"
	NavigateButtonText   = "Visit Site"
	ReasonsHeading       = "Reasons:"
	NoBlockedPlaceholder = "No sites blocked."
)

// Button is the visible state of an action control.
type Button struct {
	Visible  bool   `json:"visible"`
	Disabled bool   `json:"disabled"`
	Text     string `json:"text,omitempty"`
}

// State is everything a phishcheck session shows.
type State struct {
	// Section is the currently visible section.
	Section Section `json:"section"`

	// Input is the URL typed into the home section.
	Input string `json:"input"`

	// ResultText is the verdict label shown in the result section.
	ResultText string `json:"result_text"`

	// ResultURL is the classified URL shown in the result section.
	ResultURL string `json:"result_url"`

	// Reasons lists why the classifier reached its verdict.
	Reasons []string `json:"reasons"`

	// ShowReasons reports whether the reasons heading and list are shown.
	// It is false when there are no reasons.
	ShowReasons bool `json:"show_reasons"`

	// Block is the "block this URL" control.
	Block Button `json:"block"`

	// Navigate is the "proceed to site" control.
	Navigate Button `json:"navigate"`

	// OverlayVisible reports whether the blocked-sites overlay is open.
	OverlayVisible bool `json:"overlay_visible"`

	// BlockedList holds the overlay entries.
	BlockedList []string `json:"blocked_list"`
}

// NewState returns the initial state: home visible, overlay hidden.
func NewState() State {
	return State{
		Section:  SectionHome,
		Reasons:  []string{},
		Block:    Button{Text: BlockButtonText},
		Navigate: Button{Text: NavigateButtonText},
	}
}

// ParseSection converts a section name into a Section.
func ParseSection(name string) (Section, error) {
	switch s := Section(name); s {
	case SectionHome, SectionResult:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
}

// ShowSection makes exactly the named section visible.
// For unknown names the state is returned unchanged along with ErrUnknownSection.
// The overlay is not affected.
func ShowSection(s State, name string) (State, error) {
	section, err := ParseSection(name)
	if err != nil {
		return s, err
	}
	s.Section = section
	return s, nil
}

// RenderVerdict writes v into the result section and switches to it.
//
// Exactly one of the block and navigate controls ends up visible. For a
// phishing verdict the block control is disabled when isBlocked reports the
// URL as already blocked. Reasons are rebuilt from v on every call.
func RenderVerdict(s State, v model.Verdict, isBlocked func(string) bool) State {
	s.ResultText = v.Label
	s.ResultURL = v.URL

	s.Reasons = slices.Clone(v.Reasons)
	if s.Reasons == nil {
		s.Reasons = []string{}
	}
	s.ShowReasons = len(s.Reasons) > 0

	if v.IsPhishing() {
		blocked := isBlocked != nil && isBlocked(v.URL)
		s.Block = Button{Visible: true, Disabled: blocked, Text: BlockButtonText}
		if blocked {
			s.Block.Text = AlreadyBlockedText
		}
		s.Navigate.Visible = false
	} else {
		s.Block.Visible = false
		s.Navigate = Button{Visible: true, Text: NavigateButtonText}
	}

	s.Section = SectionResult
	return s
}

// ClearInput empties the URL input and the result slots.
// Control visibility is left as is; it is rebuilt by the next RenderVerdict.
func ClearInput(s State) State {
	s.Input = ""
	s.ResultText = ""
	s.ResultURL = ""
	s.Reasons = []string{}
	s.ShowReasons = false
	return s
}

// RenderBlockedList fills the overlay with urls, in order, and opens it.
// An empty list renders a single placeholder entry.
func RenderBlockedList(s State, urls []string) State {
	if len(urls) == 0 {
		s.BlockedList = []string{NoBlockedPlaceholder}
	} else {
		s.BlockedList = slices.Clone(urls)
	}
	s.OverlayVisible = true
	return s
}

// CloseOverlay hides the blocked-sites overlay.
func CloseOverlay(s State) State {
	s.OverlayVisible = false
	return s
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.Reasons = slices.Clone(s.Reasons)
	s.BlockedList = slices.Clone(s.BlockedList)
	return s
}
