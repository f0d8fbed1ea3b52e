// Package tui provides the terminal collaborators for interactive
// prompting: styled line output, plain line input, and non-echoed secret
// input into protected memory.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"envctl.dev/go/credctl/internal/secret"
)

// Terminal is the surface the prompt flow talks to. Read methods return
// io.EOF when the user signals end-of-input (Ctrl-D, closed pipe).
type Terminal interface {
	// Write renders text without a trailing newline (prompt prefixes).
	Write(text string)

	// WriteLine renders text followed by a newline.
	WriteLine(text string)

	// WriteStyled renders a styled line followed by a newline.
	WriteStyled(text string, style lipgloss.Style)

	// ReadLine reads one line of plain text, without the line ending.
	ReadLine() (string, error)

	// ReadSecret reads one line without echoing and returns it as a
	// protected secret. The caller owns the buffer and must Destroy it.
	ReadSecret() (*secret.Buffer, error)

	// Wrap reflows text to the current terminal width.
	Wrap(text string) string
}
