// Package prompt implements the interactive credential-collection flow:
// caption and message, a non-empty username, a non-empty secret, and an
// optional confirmation pass compared in constant time.
package prompt

import (
	"envctl.dev/go/credctl/internal/i18n"
	"envctl.dev/go/credctl/internal/secret"
	"envctl.dev/go/credctl/internal/tui"
)

// Credential is a collected username/secret pair. The caller owns it and
// must Destroy it when done; the prompt flow keeps no reference.
type Credential struct {
	Username string
	Secret   *secret.Buffer
}

// Destroy wipes the credential's secret
func (c *Credential) Destroy() {
	if c != nil && c.Secret != nil {
		c.Secret.Destroy()
	}
}

// Request describes one credential-collection run
type Request struct {
	// Caption is an optional highlighted header line
	Caption string
	// Message is an optional informational line, wrapped to the terminal
	Message string
	// Username, when non-empty, skips the username prompt
	Username string
	// Confirm requests a second secret entry that must match the first
	Confirm bool
	// Options is carried through untouched
	Options Options
}

// Result is the outcome of a collection run. Cancellation is a
// first-class outcome, not an error: end-of-input at any required step,
// or a confirmation mismatch, sets Cancelled and leaves Credential nil.
// No secret read during a cancelled run survives it.
type Result struct {
	Credential *Credential
	Cancelled  bool
}

// Prompter drives the credential-collection flow on a Terminal
type Prompter struct {
	term tui.Terminal
}

// New creates a Prompter on the given terminal
func New(term tui.Terminal) *Prompter {
	return &Prompter{term: term}
}

func cancelled() *Result {
	return &Result{Cancelled: true}
}

// Collect runs the interactive flow described by req. It blocks on each
// prompt until the terminal returns a line or end-of-input. Empty input
// at the username or password step re-issues the same prompt; any read
// failure is treated the same as end-of-input.
func (p *Prompter) Collect(req Request) *Result {
	if req.Caption != "" {
		p.term.WriteStyled(req.Caption, tui.StyleCaption)
	}
	if req.Message != "" {
		p.term.WriteStyled(p.term.Wrap(req.Message), tui.StyleInfo)
	}

	username := req.Username
	for username == "" {
		p.term.Write(i18n.T("prompt.username"))
		line, err := p.term.ReadLine()
		if err != nil {
			return cancelled()
		}
		username = line
	}

	var pass *secret.Buffer
	for pass == nil {
		p.term.Write(i18n.T("prompt.password", username))
		s, err := p.term.ReadSecret()
		if err != nil {
			return cancelled()
		}
		if s.Len() == 0 {
			s.Destroy()
			continue
		}
		pass = s
	}

	if req.Confirm {
		p.term.Write(i18n.T("prompt.password_again", username))
		again, err := p.term.ReadSecret()
		if err != nil {
			pass.Destroy()
			return cancelled()
		}

		match := secret.Equal(pass, again)
		again.Destroy()

		if !match {
			p.term.WriteStyled(i18n.T("prompt.mismatch"), tui.StyleError)
			pass.Destroy()
			return cancelled()
		}
	}

	// Visual separator between the prompt block and whatever follows
	p.term.WriteLine("")

	return &Result{
		Credential: &Credential{
			Username: username,
			Secret:   pass,
		},
	}
}
