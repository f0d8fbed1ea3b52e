package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"envctl.dev/go/credctl/internal/i18n"
	"envctl.dev/go/credctl/internal/prompt"
	"envctl.dev/go/credctl/internal/tui"
)

var (
	askCaption      string
	askMessage      string
	askUser         string
	askConfirm      bool
	askSecretOnly   bool
	askHideRemember bool
	askAllow        []string
)

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askCaption, "caption", "", "highlighted header line shown before the prompt")
	askCmd.Flags().StringVar(&askMessage, "message", "", "informational text, wrapped to the terminal width")
	askCmd.Flags().StringVar(&askUser, "user", "", "username (skips the username prompt)")
	askCmd.Flags().BoolVar(&askConfirm, "confirm", false, "ask for the password twice and require a match")
	askCmd.Flags().BoolVar(&askSecretOnly, "secret-only", false, "write only the secret to stdout")
	askCmd.Flags().BoolVar(&askHideRemember, "hide-remember", false, "suppress remember-me style options")
	askCmd.Flags().StringSliceVar(&askAllow, "allow", nil, "allowed credential kinds: userpass, domain, certificate")
}

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Prompt for a credential",
	Long: `Prompt for a username and password on the terminal.

Prompts are written to stderr; the collected username and secret are
written to stdout, one per line, for the calling program to consume.
End-of-input (Ctrl-D) at any prompt cancels the whole flow with exit
code 1 and nothing on stdout.

Examples:
  credctl ask
  credctl ask --user alice --confirm
  credctl ask --caption "Registry login" --message "Push access requires authentication." --secret-only`,
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	kinds, err := parseKinds(askAllow)
	if err != nil {
		return err
	}

	confirm := askConfirm || cfg.Prompt.Confirm

	term := tui.NewConsole(colorEnabled())
	result := prompt.New(term).Collect(prompt.Request{
		Caption:  askCaption,
		Message:  askMessage,
		Username: askUser,
		Confirm:  confirm,
		Options: prompt.Options{
			AllowedKinds:       kinds,
			HideRememberOption: askHideRemember,
		},
	})

	if result.Cancelled {
		fmt.Fprintln(os.Stderr, i18n.T("prompt.cancelled"))
		os.Exit(1)
	}

	cred := result.Credential
	defer cred.Destroy()

	if !askSecretOnly {
		fmt.Fprintln(os.Stdout, cred.Username)
	}

	// Write the secret straight from protected memory, no intermediate
	// string.
	err = cred.Secret.With(func(data []byte) error {
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
		_, err := os.Stdout.Write([]byte("\n"))
		return err
	})
	if err != nil {
		return fmt.Errorf("write secret: %w", err)
	}

	return nil
}

func parseKinds(names []string) (prompt.CredentialKind, error) {
	if len(names) == 0 {
		return prompt.KindUserPass, nil
	}

	var kinds prompt.CredentialKind
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "userpass":
			kinds |= prompt.KindUserPass
		case "domain":
			kinds |= prompt.KindDomainUser
		case "certificate", "cert":
			kinds |= prompt.KindCertificate
		default:
			return 0, fmt.Errorf("unknown credential kind: %s", name)
		}
	}

	return kinds, nil
}
