package model

import (
	"encoding/json"
	"testing"
)

// TestIsPhishingLabel tests the case-insensitive label comparison.
func TestIsPhishingLabel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		label    string
		expected bool
	}{
		{"phishing", true},
		{"Phishing", true},
		{"PHISHING", true},
		{"pHiShInG", true},
		{"Not phishing", false},
		{"Suspicious", false},
		{"Legitimate", false},
		{"", false},
		{" phishing", false},
		{"phishings", false},
		{"phi\u017fhing", true},
	}

	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			t.Parallel()
			if got := IsPhishingLabel(tc.label); got != tc.expected {
				t.Errorf("IsPhishingLabel(%q) = %v, expected %v", tc.label, got, tc.expected)
			}
		})
	}
}

// TestVerdictDecode tests decoding of the classifier response body.
func TestVerdictDecode(t *testing.T) {
	t.Parallel()

	t.Run("decodes all fields", func(t *testing.T) {
		t.Parallel()

		body := `{"result":"Phishing","url":"bad-login.example","reasons":["suspicious domain age","login form on non-HTTPS"],"block_option":true}`

		var v Verdict
		if err := json.Unmarshal([]byte(body), &v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Label != "Phishing" {
			t.Errorf("expected label Phishing, got %q", v.Label)
		}
		if v.URL != "bad-login.example" {
			t.Errorf("expected url bad-login.example, got %q", v.URL)
		}
		if len(v.Reasons) != 2 || v.Reasons[0] != "suspicious domain age" {
			t.Errorf("unexpected reasons: %v", v.Reasons)
		}
		if !v.IsPhishing() {
			t.Error("expected IsPhishing to be true")
		}
	})

	t.Run("missing reasons is empty", func(t *testing.T) {
		t.Parallel()

		var v Verdict
		if err := json.Unmarshal([]byte(`{"result":"Legitimate","url":"example.com"}`), &v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(v.Reasons) != 0 {
			t.Errorf("expected no reasons, got %v", v.Reasons)
		}
		if v.IsPhishing() {
			t.Error("expected IsPhishing to be false")
		}
	})
}
