package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/memory"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/formbridge"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/guestbook"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/page"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Read and moderate comments",
}

var commentsListCmd = &cobra.Command{
	Use:   "list <post-id>",
	Short: "Print a post's comment thread",
	Args:  cobra.ExactArgs(1),
	RunE:  runCommentsList,
}

var commentsDeleteCmd = &cobra.Command{
	Use:   "delete <comment-id>",
	Short: "Delete a comment",
	Long: `Delete a comment.

Guests authorize with the password they commented with:
  codemasterpiece comments delete c_123 --password 1234

Signed-in authors and admins use the configured session cookie and omit it.`,
	Args: cobra.ExactArgs(1),
	RunE: runCommentsDelete,
}

var guestbookCmd = &cobra.Command{
	Use:   "guestbook",
	Short: "Read and moderate the guestbook",
}

var guestbookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List guestbook entries",
	Args:  cobra.NoArgs,
	RunE:  runGuestbookList,
}

var guestbookDeleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete a guestbook entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runGuestbookDelete,
}

var (
	guestPassword string
	guestbookPage int
	guestbookSize int
)

func init() {
	commentsDeleteCmd.Flags().StringVar(&guestPassword, "password", "", "guest password")
	commentsCmd.AddCommand(commentsListCmd, commentsDeleteCmd)
	rootCmd.AddCommand(commentsCmd)

	guestbookListCmd.Flags().IntVar(&guestbookPage, "page", 0, "zero-based page number")
	guestbookListCmd.Flags().IntVar(&guestbookSize, "size", 0, "page size (server default when 0)")
	guestbookDeleteCmd.Flags().StringVar(&guestPassword, "password", "", "guest password")
	guestbookCmd.AddCommand(guestbookListCmd, guestbookDeleteCmd)
	rootCmd.AddCommand(guestbookCmd)
}

func runCommentsList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	th, err := app.Client().ListComments(app.Context(cmd.Context()), args[0])
	if err != nil {
		return fmt.Errorf("failed to list comments: %w", err)
	}
	return render(cmd, thread(th), th)
}

func runCommentsDelete(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	env := app.Client().DeleteComment(app.Context(cmd.Context()), args[0], guestPassword)
	return reportForm(cmd, app.Logger, env.Err(), "Comment deleted.")
}

func runGuestbookList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	p, err := app.Client().ListGuestbook(app.Context(cmd.Context()), guestbookPage, guestbookSize)
	if err != nil {
		return fmt.Errorf("failed to list guestbook: %w", err)
	}
	if p == nil {
		p = &page.Page[guestbook.Entry]{}
	}
	return render(cmd, entryPage(*p), p)
}

func runGuestbookDelete(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	env := app.Client().DeleteGuestbookEntry(app.Context(cmd.Context()), args[0], guestPassword)
	return reportForm(cmd, app.Logger, env.Err(), "Entry deleted.")
}

// reportForm renders the outcome of a password-authorized delete the way
// the site's delete dialog does: field errors next to the flag, anything
// else as a notice.
func reportForm(cmd *cobra.Command, logger zerolog.Logger, failure *result.Error, done string) error {
	if failure == nil {
		fmt.Fprintln(cmd.OutOrStdout(), done)
		return nil
	}

	form := memory.NewForm("guestPassword")
	notifier := &consoleNotifier{w: cmd.ErrOrStderr()}
	rest := formbridge.New(logger).Handle(form, notifier, failure)
	if rest != nil {
		return fmt.Errorf("%s", rest.Code)
	}

	errs := form.Errors()
	paths := make([]string, 0, len(errs))
	for path := range errs {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s %s: %s\n", crossMark, flagFor(path), errs[path])
	}
	return fmt.Errorf("%s", failure.Code)
}

func flagFor(path string) string {
	if path == "guestPassword" {
		return "--password"
	}
	return path
}

// consoleNotifier prints failures that have no field to attach to.
type consoleNotifier struct {
	w io.Writer
}

var _ ports.Notifier = (*consoleNotifier)(nil)

func (n *consoleNotifier) Notify(err *result.Error) {
	fmt.Fprintf(n.w, "  %s %s\n", crossMark, err.Message)
}
