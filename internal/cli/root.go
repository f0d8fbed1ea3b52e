// Package cli implements the credctl command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"envctl.dev/go/credctl/internal/config"
	"envctl.dev/go/credctl/internal/i18n"
)

var (
	version  = "dev"
	cfgFile  string
	langFlag string
	noColor  bool

	cfg = config.Default()
)

func SetVersion(v string) {
	version = v
}

// RootCmd is the root command, exported for documentation generation
var RootCmd = &cobra.Command{
	Use:   "credctl",
	Short: "Collect credentials interactively without leaking them",
	Long: `credctl - interactive credential collection for shells and scripts

Prompts for a username and password on the terminal, keeps the password
in page-locked memory, and never echoes or logs it. Prompts are written
to stderr so the collected credential can be consumed from stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.LoadFrom(cfgFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}

		lang := langFlag
		if lang == "" {
			lang = cfg.Prompt.Lang
		}
		i18n.Init(lang)

		return nil
	},
}

// For internal use, keep an alias
var rootCmd = RootCmd

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.config/credctl/config.toml)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "language for messages (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
}

// colorEnabled resolves the color mode from flags, environment and config
func colorEnabled() bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}

	switch cfg.UI.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return true // "auto": the console checks for a tty itself
	}
}
