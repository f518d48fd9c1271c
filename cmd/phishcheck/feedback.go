package main

import (
	"github.com/spf13/cobra"
)

// NewFeedbackCmd creates the feedback command and its subcommands.
func NewFeedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Send or show user feedback about a URL",
		Long: `Feedback records whether you think a URL is safe or suspicious, or shows
what other users have said about it.

Examples:
  phishcheck feedback submit --choice suspicious --reason "asks for my card" login-paypa1.example
  phishcheck feedback show login-paypa1.example`,
	}

	cmd.AddCommand(newFeedbackSubmitCmd())
	cmd.AddCommand(newFeedbackShowCmd())

	return cmd
}

func newFeedbackSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit <url>",
		Short: "Send feedback about a URL",
		Args:  cobra.ExactArgs(1),
		RunE:  runFeedbackSubmitCmd,
	}

	cmd.Flags().String("choice", "", "Your opinion: safe or suspicious")
	cmd.Flags().String("reason", "", "Optional free-text reason")

	return cmd
}

// runFeedbackSubmitCmd executes the feedback submit command.
func runFeedbackSubmitCmd(cmd *cobra.Command, args []string) error {
	choice, err := cmd.Flags().GetString("choice")
	if err != nil {
		return err
	}
	reason, err := cmd.Flags().GetString("reason")
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

	return a.controller.SubmitFeedback(ctx, choice, reason, args[0])
}

func newFeedbackShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <url>",
		Short: "Show the feedback recorded for a URL",
		Args:  cobra.ExactArgs(1),
		RunE:  runFeedbackShowCmd,
	}
}

// runFeedbackShowCmd executes the feedback show command.
func runFeedbackShowCmd(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signalContext(cmd.Context(), a.logger)
	defer cancel()

	summary, err := a.controller.LookupFeedback(ctx, args[0])
	if err != nil {
		return err
	}
	_, err = a.writer.WriteFeedbackSummary(args[0], summary)
	return err
}
