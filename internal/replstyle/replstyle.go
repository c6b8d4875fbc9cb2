// Package replstyle provides TTY-aware ANSI styling for cmd/malisp's REPL
// output: the prompt, printed values, and error lines. It never touches
// interpreter semantics — it only decorates the strings the core already
// produced.
package replstyle

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Styler decides whether to apply ANSI styling and formats REPL output
// accordingly.
type Styler struct {
	enabled bool
}

// New builds a Styler. wantColor is the user's configured preference
// (internal/config.Config.ColorEnabled); it is further gated on stdout
// actually being a terminal, so piped or redirected output stays plain.
func New(wantColor bool) *Styler {
	return &Styler{enabled: wantColor && isatty.IsTerminal(os.Stdout.Fd())}
}

// Prompt renders the REPL prompt string.
func (s *Styler) Prompt(text string) string {
	if !s.enabled {
		return text
	}
	return promptStyle.Render(text)
}

// Value renders a successfully evaluated, printed value.
func (s *Styler) Value(text string) string {
	if !s.enabled {
		return text
	}
	return valueStyle.Render(text)
}

// Error renders an "error: ..." line.
func (s *Styler) Error(text string) string {
	if !s.enabled {
		return text
	}
	return errorStyle.Render(text)
}
