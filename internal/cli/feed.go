package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"hr-dashboard/internal/activity"
	"hr-dashboard/internal/display"
	"hr-dashboard/internal/screen"
)

var (
	feedUnread   bool
	feedMarkRead bool
)

var feedCmd = &cobra.Command{
	Use:   "feed [employee]",
	Short: "Show an employee's activity feed",
	Long: `Show the notifications delivered to one employee, newest first, rendered
from that employee's point of view.

Examples:
  hrdash feed bob@example.com
  hrdash feed "Bob Jones" --unread --mark-read`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			return a.printFeed(cmd.Context(), cmd.OutOrStdout(), args[0], feedUnread, feedMarkRead)
		})
	},
}

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.Flags().BoolVarP(&feedUnread, "unread", "u", false, "Only unread notifications")
	feedCmd.Flags().BoolVar(&feedMarkRead, "mark-read", false, "Mark the feed read after showing it")
}

func (a *app) printFeed(ctx context.Context, w io.Writer, ref string, unreadOnly, markRead bool) error {
	employee, err := a.findEmployee(ctx, ref)
	if err != nil {
		return err
	}

	items, err := a.store.Notifications.ListForRecipient(ctx, employee.ID, unreadOnly)
	if err != nil {
		return fmt.Errorf("failed to load feed: %w", err)
	}

	dir, err := screen.Directory(ctx, a.store)
	if err != nil {
		return err
	}
	formatter := activity.NewFormatter(dir, employee.ID)

	fmt.Fprintln(w, a.styles.Title.Render("Feed for "+employee.Name))
	if len(items) == 0 {
		fmt.Fprintln(w, a.styles.Muted.Render("  Nothing new."))
		fmt.Fprintln(w)
		return nil
	}

	now := time.Now()
	for _, n := range items {
		marker := "  "
		if !n.Read {
			marker = "• "
		}
		style := a.styles.RecordStyle(n)
		when := a.styles.Muted.Render(display.RelativeTime(n.CreatedAt, now))
		fmt.Fprintf(w, "%s%s  %s\n", marker, style.Render(formatter.Format(n.Activity)), when)
	}
	fmt.Fprintln(w)

	if markRead {
		count, err := a.store.Notifications.MarkAllRead(ctx, employee.ID)
		if err != nil {
			return fmt.Errorf("failed to mark feed read: %w", err)
		}
		fmt.Fprintln(w, a.styles.Muted.Render(fmt.Sprintf("%d notification(s) marked read", count)))
	}
	return nil
}
