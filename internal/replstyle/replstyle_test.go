package replstyle

import "testing"

func TestStylerDisabledPassesThroughText(t *testing.T) {
	s := New(false)
	if got := s.Prompt("malisp> "); got != "malisp> " {
		t.Errorf("disabled styler should pass prompt through unchanged, got %q", got)
	}
	if got := s.Value("42"); got != "42" {
		t.Errorf("disabled styler should pass value through unchanged, got %q", got)
	}
	if got := s.Error("boom"); got != "boom" {
		t.Errorf("disabled styler should pass error through unchanged, got %q", got)
	}
}

func TestStylerWantColorButNotATTYStaysPlain(t *testing.T) {
	// In a test binary stdout is not a terminal, so even wantColor=true
	// must not apply ANSI codes.
	s := New(true)
	if got := s.Value("42"); got != "42" {
		t.Errorf("non-tty stdout should force plain output, got %q", got)
	}
}
