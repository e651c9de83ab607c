package sanitize_test

import (
	"strings"
	"testing"

	"github.com/gradientm/gradientm-chat/internal/service/sanitize"
)

func TestCleanRemovesCitationMarkers(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"single marker", "We offer consulting. [doc1]", "We offer consulting."},
		{"multi-digit marker", "See our pricing page [doc42].", "See our pricing page."},
		{"several markers", "A [doc1] B [doc2] C. [doc3]", "A B C."},
		{"marker mid-sentence", "Our team [doc7] is global.", "Our team is global."},
		{"no markers", "Nothing to strip here.", "Nothing to strip here."},
		{"empty input", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitize.Clean(tc.in)
			if got != tc.want {
				t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanLeavesNonCitationBracketsAlone(t *testing.T) {
	got := sanitize.Clean("See [document 1] and [docs].")
	if got != "See [document 1] and [docs]." {
		t.Fatalf("unexpected rewrite: %q", got)
	}
}

func TestCleanCollapsesWhitespace(t *testing.T) {
	got := sanitize.Clean("  Hello\t\nworld  .  ")
	if got != "Hello world." {
		t.Fatalf("Clean = %q, want %q", got, "Hello world.")
	}
	if strings.Contains(got, "  ") {
		t.Fatal("output contains a double space")
	}
	if strings.Contains(got, " .") {
		t.Fatal("output contains a space before a period")
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"We offer consulting. [doc1]",
		"Spread  out   text [doc2] more .",
		"",
		"plain",
	}
	for _, in := range inputs {
		once := sanitize.Clean(in)
		twice := sanitize.Clean(once)
		if once != twice {
			t.Fatalf("Clean not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}
