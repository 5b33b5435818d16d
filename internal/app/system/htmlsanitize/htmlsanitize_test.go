package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/mentorhub/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	if got := htmlsanitize.Sanitize("Looking for a backend mentor!"); got != "Looking for a backend mentor!" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	got := htmlsanitize.Sanitize("<p>Hello</p><script>alert('xss')</script>")
	if got != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesOnclick(t *testing.T) {
	in := `<button onclick="alert('xss')">Click</button>`
	if got := htmlsanitize.Sanitize(in); strings.Contains(got, "onclick") {
		t.Errorf("expected onclick stripped, got %q", got)
	}
}

func TestSanitize_KeepsBasicFormatting(t *testing.T) {
	in := "<p><strong>3 years</strong> of <em>Go</em></p>"
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("expected safe HTML preserved, got %q", got)
	}
}

func TestSanitizeTrimmed(t *testing.T) {
	got := htmlsanitize.SanitizeTrimmed("  <script>x</script> nice post  ")
	if got != "nice post" {
		t.Errorf("expected trimmed sanitized text, got %q", got)
	}
}
