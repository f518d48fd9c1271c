package main

import (
	"fmt"
	"os"

	"github.com/nao1215/phishcheck/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for phishcheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phishcheck",
		Short: "Check URLs against a phishing classification service",
		Long: `phishcheck submits URLs to a phishing classification service and shows
the verdict together with the reasons behind it.

For a phishing verdict the site can be blocked; for any other verdict it
can be opened in the browser. URLs blocked from this machine are remembered
locally so they are not offered for blocking again.

Settings are read from .phishcheck (YAML), then .env and PHISHCHECK_*
environment variables, then command line flags, each overriding the last.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	flags := cmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	flags.Bool("log-json", false, "Write logs as JSON lines")
	flags.String("log-file", "", "Write logs to a size-rotated file instead of stderr")
	flags.StringP("config", "c", "",
		"Configuration file path (default: .phishcheck in current or home directory)")
	flags.String("env-file", ".env", "Optional .env file with PHISHCHECK_* variables")
	flags.StringP("server", "s", config.DefaultServerURL, "Base URL of the classification service")
	flags.DurationP("timeout", "t", config.DefaultTimeout, "Timeout for each request to the service")
	flags.String("block-mode", string(config.BlockModeForm), "Block endpoint variant: form or json")
	flags.String("proxy", "", "SOCKS5 proxy address (host:port) for reaching the service")
	flags.String("data-dir", "", "Directory of the local block list (default: XDG data directory)")
	flags.BoolP("json", "j", false, "Output JSON (mutually exclusive with --markdown)")
	flags.BoolP("markdown", "m", false, "Output Markdown (mutually exclusive with --json)")
	flags.Bool("print-only", false, "Print the URL instead of opening a browser")

	// Add subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewBlockCmd())
	cmd.AddCommand(NewGoCmd())
	cmd.AddCommand(NewBlockedCmd())
	cmd.AddCommand(NewFeedbackCmd())
	cmd.AddCommand(NewShellCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
