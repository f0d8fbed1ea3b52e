package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"

	"envctl.dev/go/credctl/internal/secret"
)

// Console implements Terminal on the process's real terminal. Prompts and
// messages go to stderr so stdout stays machine-consumable.
type Console struct {
	out   io.Writer
	in    *os.File
	color bool

	// shared reader for non-terminal stdin to avoid buffering issues
	// across multiple reads
	stdin *bufio.Reader
}

// NewConsole creates a console on stdin/stderr. Styling is applied only
// when enabled and stderr is a terminal.
func NewConsole(color bool) *Console {
	return &Console{
		out:   os.Stderr,
		in:    os.Stdin,
		color: color && term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Write renders text without a trailing newline
func (c *Console) Write(text string) {
	fmt.Fprint(c.out, text)
}

// WriteLine renders text followed by a newline
func (c *Console) WriteLine(text string) {
	fmt.Fprintln(c.out, text)
}

// WriteStyled renders a styled line followed by a newline
func (c *Console) WriteStyled(text string, style lipgloss.Style) {
	if !c.color {
		fmt.Fprintln(c.out, text)
		return
	}
	fmt.Fprintln(c.out, style.Render(text))
}

// ReadLine reads one line of plain text
func (c *Console) ReadLine() (string, error) {
	line, err := c.readRaw()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadSecret reads one line without echoing and moves it straight into a
// protected buffer. The intermediate slice from the terminal read is
// zeroed by secret.FromBytes.
func (c *Console) ReadSecret() (*secret.Buffer, error) {
	fd := int(c.in.Fd())
	if !term.IsTerminal(fd) {
		// Not a terminal, read from stdin directly
		line, err := c.readRaw()
		if err != nil {
			return nil, err
		}
		return secret.FromBytes([]byte(line)), nil
	}

	password, err := term.ReadPassword(fd)
	fmt.Fprintln(c.out) // New line after password input

	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read password: %w", err)
	}

	return secret.FromBytes(password), nil
}

// Wrap reflows text to the current terminal width
func (c *Console) Wrap(text string) string {
	return wordwrap.String(text, c.width())
}

func (c *Console) width() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 80
	}
	return width
}

// readRaw reads one line from stdin through the shared reader.
// Handles both \n and \r\n line endings.
func (c *Console) readRaw() (string, error) {
	if c.stdin == nil {
		c.stdin = bufio.NewReader(c.in)
	}

	line, err := c.stdin.ReadString('\n')
	if err != nil {
		if err == io.EOF && line == "" {
			return "", io.EOF
		}
		if err != io.EOF {
			return "", err
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
