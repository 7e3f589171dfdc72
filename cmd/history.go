package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardcycle/cardcycle/internal/calendar"
	"github.com/cardcycle/cardcycle/internal/store"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded day outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			kind, _ := cmd.Flags().GetString("kind")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			switch kind {
			case "", store.KindCompleted, store.KindSkipped:
			default:
				return fmt.Errorf("invalid --kind %q (want %s or %s)", kind, store.KindCompleted, store.KindSkipped)
			}
			for _, d := range []string{from, to} {
				if d == "" {
					continue
				}
				if _, err := calendar.Parse(d); err != nil {
					return fmt.Errorf("invalid day %q (want YYYY-MM-DD)", d)
				}
			}

			return withApp(cmd, func(a *app) error {
				entries, err := a.days.Entries(cmd.Context(), store.QueryOpts{
					Limit: limit,
					Kind:  kind,
					From:  from,
					To:    to,
				})
				if err != nil {
					return fmt.Errorf("query day log: %w", err)
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No days recorded.")
					return nil
				}

				fmt.Fprintf(out, "%-6s  %-10s  %-9s  %s\n", "Seq", "Day", "Outcome", "Recorded")
				fmt.Fprintln(out, strings.Repeat("─", 52))
				for _, e := range entries {
					fmt.Fprintf(out, "%-6d  %-10s  %-9s  %s\n", e.Sequence, e.Day, e.Kind,
						e.RecordedAt.In(a.loc).Format("2006-01-02 15:04"))
				}
				return nil
			})
		},
	}
	cmd.Flags().Int("limit", 30, "Show at most this many most recent entries (0 = all)")
	cmd.Flags().String("kind", "", "Only show completed or skipped days")
	cmd.Flags().String("from", "", "First day to include (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Last day to include (YYYY-MM-DD)")
	return cmd
}
