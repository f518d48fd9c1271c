package main

import (
	"github.com/spf13/cobra"
)

// NewBlockCmd creates the block command.
func NewBlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "block <url>",
		Short: "Classify a URL and block it if it is phishing",
		Long: `Block classifies the URL first and, if the verdict is phishing and the
URL has not been blocked from this machine before, asks the service to
block it. The blocked URL is remembered in the local block list.

Examples:
  phishcheck block login-paypa1.example
  phishcheck block --block-mode json login-paypa1.example`,
		Args: cobra.ExactArgs(1),
		RunE: runBlockCmd,
	}
}

// runBlockCmd executes the block command.
func runBlockCmd(cmd *cobra.Command, args []string) error {
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

	_, err = a.controller.BlockSite(ctx)
	return err
}
