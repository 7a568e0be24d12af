package htmlsanitize_test

import (
	"testing"

	"github.com/dalemusser/impacthub/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	if got := htmlsanitize.Sanitize("Mutirão de limpeza"); got != "Mutirão de limpeza" {
		t.Errorf("plain text must pass through, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	got := htmlsanitize.Sanitize("<p>Oi</p><script>alert('xss')</script>")
	if got != "<p>Oi</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestStrip_RemovesAllMarkup(t *testing.T) {
	got := htmlsanitize.Strip("<b>bold</b> text")
	if got != "bold text" {
		t.Errorf("expected markup stripped, got %q", got)
	}
}
