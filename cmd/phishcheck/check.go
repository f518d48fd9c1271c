package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nao1215/phishcheck/internal/config"
	"github.com/nao1215/phishcheck/internal/controller"
	"github.com/spf13/cobra"
)

// errBatchAction is returned when --block or --go is combined with several URLs.
var errBatchAction = errors.New("--block and --go can only be used with a single URL")

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <url> [url...]",
		Short: "Classify one or more URLs",
		Long: `Check sends each URL to the classification service and shows the verdict.

For a phishing verdict the reasons are listed and the site can be blocked.
For any other verdict the site can be opened in the browser.

Examples:
  # Check a single URL
  phishcheck check login-paypa1.example

  # Check and block it right away if it is phishing
  phishcheck check --block login-paypa1.example

  # Check several URLs concurrently
  phishcheck check --concurrency 8 a.example b.example c.example

  # Output JSON
  phishcheck check --json login-paypa1.example`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheckCmd,
	}

	cmd.Flags().Bool("block", false, "Block the URL if the verdict allows it")
	cmd.Flags().Bool("go", false, "Open the URL if the verdict allows it")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of URLs classified at the same time")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	doBlock, err := cmd.Flags().GetBool("block")
	if err != nil {
		return err
	}
	doGo, err := cmd.Flags().GetBool("go")
	if err != nil {
		return err
	}
	if len(args) > 1 && (doBlock || doGo) {
		return errBatchAction
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signalContext(cmd.Context(), a.logger)
	defer cancel()

	if len(args) > 1 {
		return runBatchCheck(ctx, a, args)
	}

	s, err := a.controller.CheckURL(ctx, args[0])
	if err != nil {
		return err
	}
	if err := a.render(s); err != nil {
		return err
	}

	switch {
	case doBlock:
		_, err = a.controller.BlockSite(ctx)
		return err
	case doGo:
		_, err = a.controller.RedirectToSite(ctx)
		return err
	}
	return nil
}

// runBatchCheck classifies args concurrently and renders them in order.
func runBatchCheck(ctx context.Context, a *app, args []string) error {
	results, err := a.controller.CheckAll(ctx, args)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			if _, err := a.writer.WriteAlert(fmt.Sprintf("%s: %s", r.URL, controller.AlertClassifyFailed)); err != nil {
				return err
			}
			continue
		}
		if err := a.render(r.State); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d URLs could not be checked", failed, len(results))
	}
	return nil
}
