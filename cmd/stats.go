package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardcycle/cardcycle/internal/cards"
	"github.com/cardcycle/cardcycle/internal/store"
	"github.com/cardcycle/cardcycle/internal/ui/theme"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show card counts per level and day totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				ctx := cmd.Context()
				out := cmd.OutOrStdout()

				fmt.Fprintln(out, theme.Title.Render("Cards"))
				total := 0
				for level := cards.LevelDraft; level <= cards.LevelFinished; level++ {
					n, err := a.cards.CountAt(ctx, level)
					if err != nil {
						return err
					}
					total += n
					fmt.Fprintf(out, "  %s %-9s %4d\n", theme.Level(level).Render("●"), cards.LevelName(level), n)
				}
				fmt.Fprintf(out, "  %-11s %4d\n", "total", total)

				completed, err := a.days.Entries(ctx, store.QueryOpts{Kind: store.KindCompleted})
				if err != nil {
					return err
				}
				skipped, err := a.days.Entries(ctx, store.QueryOpts{Kind: store.KindSkipped})
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, theme.Title.Render("Days"))
				fmt.Fprintf(out, "  %-11s %4d\n", "completed", len(completed))
				fmt.Fprintf(out, "  %-11s %4d\n", "skipped", len(skipped))
				fmt.Fprintf(out, "  %-11s %4d\n", "cycle day", a.sched.CycleIndex(ctx)+1)
				return nil
			})
		},
	}
}
