package prompt

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"envctl.dev/go/credctl/internal/i18n"
	"envctl.dev/go/credctl/internal/secret"
)

// scriptTerminal replays scripted input and records everything written.
// Exhausting a script signals end-of-input, like Ctrl-D on a console.
type scriptTerminal struct {
	lines   []string
	secrets []string

	writes      []string
	secretReads int
	issued      []*secret.Buffer
}

func (s *scriptTerminal) Write(text string)     { s.writes = append(s.writes, text) }
func (s *scriptTerminal) WriteLine(text string) { s.writes = append(s.writes, text+"\n") }
func (s *scriptTerminal) WriteStyled(text string, _ lipgloss.Style) {
	s.writes = append(s.writes, text+"\n")
}

func (s *scriptTerminal) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptTerminal) ReadSecret() (*secret.Buffer, error) {
	s.secretReads++
	if len(s.secrets) == 0 {
		return nil, io.EOF
	}
	buf := secret.FromBytes([]byte(s.secrets[0]))
	s.secrets = s.secrets[1:]
	s.issued = append(s.issued, buf)
	return buf, nil
}

func (s *scriptTerminal) Wrap(text string) string { return text }

func (s *scriptTerminal) output() string { return strings.Join(s.writes, "") }

func (s *scriptTerminal) countWrites(text string) int {
	n := 0
	for _, w := range s.writes {
		if strings.Contains(w, text) {
			n++
		}
	}
	return n
}

// allIssuedDestroyed reports whether every secret handed out by the
// terminal was wiped
func (s *scriptTerminal) allIssuedDestroyed() bool {
	for _, buf := range s.issued {
		if buf.With(func([]byte) error { return nil }) != secret.ErrDestroyed {
			return false
		}
	}
	return true
}

func mustSecretString(t *testing.T, buf *secret.Buffer) string {
	t.Helper()
	var out string
	if err := buf.With(func(data []byte) error {
		out = string(data)
		return nil
	}); err != nil {
		t.Fatalf("read secret: %v", err)
	}
	return out
}

func TestCollect(t *testing.T) {
	t.Run("username and secret without confirmation", func(t *testing.T) {
		term := &scriptTerminal{lines: []string{"alice"}, secrets: []string{"Pass1"}}
		result := New(term).Collect(Request{})

		if result.Cancelled {
			t.Fatal("unexpected cancellation")
		}
		defer result.Credential.Destroy()

		if result.Credential.Username != "alice" {
			t.Errorf("username: got %q, want %q", result.Credential.Username, "alice")
		}
		if got := mustSecretString(t, result.Credential.Secret); got != "Pass1" {
			t.Errorf("secret: got %q, want %q", got, "Pass1")
		}
	})

	t.Run("preset username skips username prompt", func(t *testing.T) {
		term := &scriptTerminal{secrets: []string{"Pass1"}}
		result := New(term).Collect(Request{Username: "bob"})

		if result.Cancelled {
			t.Fatal("unexpected cancellation")
		}
		defer result.Credential.Destroy()

		if result.Credential.Username != "bob" {
			t.Errorf("username: got %q, want %q", result.Credential.Username, "bob")
		}
		if n := term.countWrites(i18n.T("prompt.username")); n != 0 {
			t.Errorf("username prompt emitted %d times, want 0", n)
		}
	})

	t.Run("end of input at username cancels before any secret", func(t *testing.T) {
		term := &scriptTerminal{}
		result := New(term).Collect(Request{})

		if !result.Cancelled {
			t.Fatal("expected cancellation")
		}
		if result.Credential != nil {
			t.Error("cancelled result must carry no credential")
		}
		if term.secretReads != 0 {
			t.Errorf("secret requested %d times after username EOF, want 0", term.secretReads)
		}
	})

	t.Run("empty username re-issues identical prompt", func(t *testing.T) {
		term := &scriptTerminal{lines: []string{"", "bob"}, secrets: []string{"Pass1"}}
		result := New(term).Collect(Request{})

		if result.Cancelled {
			t.Fatal("unexpected cancellation")
		}
		defer result.Credential.Destroy()

		if result.Credential.Username != "bob" {
			t.Errorf("username: got %q, want %q", result.Credential.Username, "bob")
		}
		if n := term.countWrites(i18n.T("prompt.username")); n != 2 {
			t.Errorf("username prompt emitted %d times, want 2", n)
		}
	})

	t.Run("empty secret re-issues prompt and wipes the empty read", func(t *testing.T) {
		term := &scriptTerminal{lines: []string{"alice"}, secrets: []string{"", "Pass1"}}
		result := New(term).Collect(Request{})

		if result.Cancelled {
			t.Fatal("unexpected cancellation")
		}

		want := i18n.T("prompt.password", "alice")
		if n := term.countWrites(want); n != 2 {
			t.Errorf("password prompt emitted %d times, want 2", n)
		}

		// The rejected empty read must already be wiped; the accepted
		// secret is still live until the credential is destroyed.
		if err := term.issued[0].With(func([]byte) error { return nil }); err != secret.ErrDestroyed {
			t.Error("empty secret read was not wiped")
		}

		result.Credential.Destroy()
		if !term.allIssuedDestroyed() {
			t.Error("secret survived credential destruction")
		}
	})

	t.Run("end of input at password cancels", func(t *testing.T) {
		term := &scriptTerminal{lines: []string{"alice"}}
		result := New(term).Collect(Request{})

		if !result.Cancelled {
			t.Fatal("expected cancellation")
		}
	})

	t.Run("matching confirmation returns credential", func(t *testing.T) {
		term := &scriptTerminal{lines: []string{"alice"}, secrets: []string{"Pass1", "Pass1"}}
		result := New(term).Collect(Request{Confirm: true})

		if result.Cancelled {
			t.Fatal("unexpected cancellation")
		}

		if result.Credential.Username != "alice" {
			t.Errorf("username: got %q, want %q", result.Credential.Username, "alice")
		}
		if got := mustSecretString(t, result.Credential.Secret); got != "Pass1" {
			t.Errorf("secret: got %q, want %q", got, "Pass1")
		}

		// The confirmation buffer is never part of the result
		if err := term.issued[1].With(func([]byte) error { return nil }); err != secret.ErrDestroyed {
			t.Error("confirmation secret was not wiped")
		}

		result.Credential.Destroy()
	})

	t.Run("mismatched confirmation cancels and wipes both secrets", func(t *testing.T) {
		term := &scriptTerminal{lines: []string{"alice"}, secrets: []string{"Pass1", "Pass2"}}
		result := New(term).Collect(Request{Confirm: true})

		if !result.Cancelled {
			t.Fatal("expected cancellation")
		}
		if result.Credential != nil {
			t.Error("cancelled result must carry no credential")
		}
		if n := term.countWrites(i18n.T("prompt.mismatch")); n != 1 {
			t.Errorf("mismatch message emitted %d times, want 1", n)
		}
		if !term.allIssuedDestroyed() {
			t.Error("a secret escaped the cancelled flow")
		}
	})

	t.Run("end of input at confirmation wipes first secret", func(t *testing.T) {
		term := &scriptTerminal{lines: []string{"alice"}, secrets: []string{"Pass1"}}
		result := New(term).Collect(Request{Confirm: true})

		if !result.Cancelled {
			t.Fatal("expected cancellation")
		}
		if !term.allIssuedDestroyed() {
			t.Error("a secret escaped the cancelled flow")
		}
	})

	t.Run("caption and message precede prompts", func(t *testing.T) {
		term := &scriptTerminal{lines: []string{"alice"}, secrets: []string{"Pass1"}}
		result := New(term).Collect(Request{
			Caption: "Repository access",
			Message: "Authentication is required to push.",
		})
		defer result.Credential.Destroy()

		out := term.output()
		caption := strings.Index(out, "Repository access")
		message := strings.Index(out, "Authentication is required to push.")
		user := strings.Index(out, i18n.T("prompt.username"))

		if caption < 0 || message < 0 || user < 0 {
			t.Fatalf("missing output, got %q", out)
		}
		if !(caption < message && message < user) {
			t.Errorf("output out of order: %q", out)
		}
	})

	t.Run("empty caption and message emit nothing extra", func(t *testing.T) {
		term := &scriptTerminal{lines: []string{"alice"}, secrets: []string{"Pass1"}}
		result := New(term).Collect(Request{})
		defer result.Credential.Destroy()

		if term.writes[0] != i18n.T("prompt.username") {
			t.Errorf("first write: got %q, want username prompt", term.writes[0])
		}
	})

	t.Run("trailing blank line after success", func(t *testing.T) {
		term := &scriptTerminal{lines: []string{"alice"}, secrets: []string{"Pass1"}}
		result := New(term).Collect(Request{})
		defer result.Credential.Destroy()

		if last := term.writes[len(term.writes)-1]; last != "\n" {
			t.Errorf("last write: got %q, want blank line", last)
		}
	})

	t.Run("whitespace secret is accepted", func(t *testing.T) {
		term := &scriptTerminal{lines: []string{"alice"}, secrets: []string{"   "}}
		result := New(term).Collect(Request{})

		if result.Cancelled {
			t.Fatal("whitespace-only secret must not be rejected")
		}
		result.Credential.Destroy()
	})

	t.Run("options are carried without altering the flow", func(t *testing.T) {
		term := &scriptTerminal{lines: []string{"alice"}, secrets: []string{"Pass1"}}
		result := New(term).Collect(Request{
			Options: Options{
				AllowedKinds:       KindUserPass | KindDomainUser,
				HideRememberOption: true,
			},
		})

		if result.Cancelled {
			t.Fatal("unexpected cancellation")
		}
		result.Credential.Destroy()
	})
}

func TestCredentialKind(t *testing.T) {
	combined := KindUserPass | KindCertificate

	if !combined.Has(KindUserPass) {
		t.Error("combined mask should include KindUserPass")
	}
	if !combined.Has(KindCertificate) {
		t.Error("combined mask should include KindCertificate")
	}
	if combined.Has(KindDomainUser) {
		t.Error("combined mask should not include KindDomainUser")
	}
}
