package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/phishcheck/internal/controller"
	"github.com/nao1215/phishcheck/internal/view"
	"github.com/spf13/cobra"
)

// Shell prompts.
const (
	urlPrompt      = "url> "
	actionPrompt   = "action> "
	feedbackPrompt = "feedback (safe/suspicious)> "
	reasonPrompt   = "reason> "
)

// NewShellCmd creates the shell command.
func NewShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Check URLs interactively",
		Long: `Shell starts an interactive session that works like the browser popup.

Enter a URL to classify it. On the result screen choose an action:
  b  block the site (phishing verdicts only)
  g  open the site (non-phishing verdicts only)
  f  send feedback about the verdict
  l  list blocked sites
  h  return to the URL prompt
  q  quit

At the URL prompt, "l" lists blocked sites and "q" quits.`,
		Args: cobra.NoArgs,
		RunE: runShellCmd,
	}
}

// runShellCmd executes the shell command.
func runShellCmd(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signalContext(cmd.Context(), a.logger)
	defer cancel()

	sh := &shell{
		app: a,
		in:  bufio.NewScanner(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
	return sh.run(ctx)
}

// shell drives the controller from line-based input.
type shell struct {
	app *app
	in  *bufio.Scanner
	out io.Writer
}

// errQuit ends the shell loop without an error.
var errQuit = errors.New("quit")

// run reads commands until the input ends, the user quits, or ctx is done.
func (sh *shell) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch sh.app.controller.State().Section {
		case view.SectionResult:
			err = sh.resultStep(ctx)
		default:
			err = sh.homeStep(ctx)
		}

		switch {
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
	}
}

// homeStep reads a URL and classifies it.
func (sh *shell) homeStep(ctx context.Context) error {
	line, err := sh.prompt(urlPrompt)
	if err != nil {
		return err
	}

	switch line {
	case "":
		return nil
	case "q", "quit", "exit":
		return errQuit
	case "l":
		return sh.listBlocked(ctx)
	}

	s, err := sh.app.controller.CheckURL(ctx, line)
	if err != nil {
		// The user has already been alerted; stay at the URL prompt.
		sh.app.logger.Debug("check failed", "error", err)
		return nil
	}
	return sh.app.render(s)
}

// resultStep offers the actions available for the current verdict.
func (sh *shell) resultStep(ctx context.Context) error {
	s := sh.app.controller.State()
	line, err := sh.prompt(actionMenu(s) + "\n" + actionPrompt)
	if err != nil {
		return err
	}

	switch line {
	case "b":
		if _, err := sh.app.controller.BlockSite(ctx); err != nil {
			sh.reportActionError(err)
		}
	case "g":
		if _, err := sh.app.controller.RedirectToSite(ctx); err != nil {
			sh.reportActionError(err)
			return nil
		}
		_, err = sh.app.controller.ShowSection(string(view.SectionHome))
		return err
	case "f":
		return sh.feedback(ctx, s.ResultURL)
	case "l":
		return sh.listBlocked(ctx)
	case "h":
		_, err = sh.app.controller.ShowSection(string(view.SectionHome))
		return err
	case "q":
		return errQuit
	default:
		_, err = fmt.Fprintf(sh.out, "unknown action %q\n", line)
		return err
	}
	return nil
}

// feedback asks for a rating and reason and submits them for target.
func (sh *shell) feedback(ctx context.Context, target string) error {
	choice, err := sh.prompt(feedbackPrompt)
	if err != nil {
		return err
	}
	reason, err := sh.prompt(reasonPrompt)
	if err != nil {
		return err
	}
	if err := sh.app.controller.SubmitFeedback(ctx, choice, reason, target); err != nil {
		sh.app.logger.Debug("feedback not sent", "error", err)
	}
	return nil
}

// listBlocked shows the blocked-sites overlay and closes it again.
func (sh *shell) listBlocked(ctx context.Context) error {
	s, err := sh.app.controller.ListBlocked(ctx)
	if err != nil {
		_, werr := sh.app.writer.WriteAlert("Could not load the blocked sites.")
		return werr
	}
	if err := sh.app.render(s); err != nil {
		return err
	}
	sh.app.controller.CloseBlockedList()
	return nil
}

// reportActionError tells the user about a failed action. Block failures
// have already raised an alert.
func (sh *shell) reportActionError(err error) {
	sh.app.logger.Debug("action failed", "error", err)
	if errors.Is(err, controller.ErrBlockFailed) {
		return
	}
	if _, werr := sh.app.writer.WriteAlert(err.Error()); werr != nil {
		sh.app.logger.Error("failed to write alert", "error", werr)
	}
}

// prompt writes p and returns the next trimmed input line.
// It returns io.EOF once the input is exhausted.
func (sh *shell) prompt(p string) (string, error) {
	if _, err := io.WriteString(sh.out, p); err != nil {
		return "", err
	}
	if !sh.in.Scan() {
		if err := sh.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(sh.in.Text()), nil
}

// actionMenu lists the actions available in s.
func actionMenu(s view.State) string {
	actions := make([]string, 0, 6)
	if s.Block.Visible && !s.Block.Disabled {
		actions = append(actions, "[b]lock")
	}
	if s.Navigate.Visible {
		actions = append(actions, "[g]o")
	}
	actions = append(actions, "[f]eedback", "[l]ist blocked", "[h]ome", "[q]uit")
	return strings.Join(actions, "  ")
}
