package main

import (
	"github.com/nao1215/phishcheck/internal/blocklist"
	"github.com/nao1215/phishcheck/internal/view"
	"github.com/spf13/cobra"
)

// NewBlockedCmd creates the blocked command.
func NewBlockedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocked",
		Short: "List blocked sites",
		Long: `Blocked lists the sites the classification service has blocked.

With --local it lists the sites blocked from this machine instead, read
from the local block list without contacting the service.`,
		Args: cobra.NoArgs,
		RunE: runBlockedCmd,
	}

	cmd.Flags().Bool("local", false, "List the local block list instead of the service's")

	return cmd
}

// runBlockedCmd executes the blocked command.
func runBlockedCmd(cmd *cobra.Command, _ []string) error {
	local, err := cmd.Flags().GetBool("local")
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signalContext(cmd.Context(), a.logger)
	defer cancel()

	if local {
		item, err := a.store.Stat(ctx, blocklist.StorageKey)
		if err != nil {
			return err
		}
		if item != nil {
			a.logger.Info("local block list", "entries", a.cache.Len(), "updated_at", item.UpdatedAt)
		}
		return a.render(view.RenderBlockedList(a.controller.State(), a.cache.URLs()))
	}

	s, err := a.controller.ListBlocked(ctx)
	if err != nil {
		return err
	}
	return a.render(s)
}
