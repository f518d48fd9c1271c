package main

import (
	"github.com/spf13/cobra"
)

// NewGoCmd creates the go command.
func NewGoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "go <url>",
		Short: "Classify a URL and open it if it is not phishing",
		Long: `Go classifies the URL first and opens it in the default browser unless
the verdict is phishing. URLs without a scheme are opened with https://.

Use --print-only to print the URL instead of launching a browser.

Examples:
  phishcheck go example.com
  phishcheck go --print-only example.com`,
		Args: cobra.ExactArgs(1),
		RunE: runGoCmd,
	}
}

// runGoCmd executes the go command.
func runGoCmd(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signalContext(cmd.Context(), a.logger)
	defer cancel()

	s, err := a.controller.CheckURL(ctx, args[0])
	if err != nil {
		return err
	}
	if err := a.render(s); err != nil {
		return err
	}

	target, err := a.controller.RedirectToSite(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("opened site", "target", target)
	return nil
}
