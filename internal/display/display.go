// Package display renders parse failures for a terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for error output.
type Styles struct {
	// Label is the style for the leading "error" (bold red).
	Label lipgloss.Style

	// Code is the style for the bracketed error code name (yellow).
	Code lipgloss.Style

	// Message is the style for the translated message.
	Message lipgloss.Style
}

// DefaultStyles returns the standard styles for error output, colored as
// stdout allows.
func DefaultStyles() Styles {
	return newStyles(lipgloss.DefaultRenderer())
}

// Error writes one line describing a failure, e.g.
// "error[AlreadySet]: Argument has already been set: --force". An empty code
// omits the brackets.
func Error(w io.Writer, s Styles, code, message string) error {
	var b strings.Builder

	b.WriteString(s.Label.Render("error"))

	if code != "" {
		b.WriteString("[" + s.Code.Render(code) + "]")
	}

	b.WriteString(": ")
	b.WriteString(s.Message.Render(message))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("writing error output: %w", err)
	}

	return nil
}

// PlainStyles returns styles that add no escape codes.
func PlainStyles() Styles {
	return Styles{
		Label:   lipgloss.NewStyle(),
		Code:    lipgloss.NewStyle(),
		Message: lipgloss.NewStyle(),
	}
}

// StylesFor returns the standard styles for output written to w. Colors are
// dropped unless w is a terminal that supports them.
func StylesFor(w io.Writer) Styles {
	return newStyles(lipgloss.NewRenderer(w))
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Label:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")), // Red
		Code:    r.NewStyle().Foreground(lipgloss.Color("3")),            // Yellow
		Message: r.NewStyle(),
	}
}
