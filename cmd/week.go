package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardcycle/cardcycle/internal/ui/week"
)

func newWeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show this week's review days and levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			forecast, _ := cmd.Flags().GetInt("forecast")
			return withApp(cmd, func(a *app) error {
				ctx := cmd.Context()
				out := cmd.OutOrStdout()

				fmt.Fprintln(out, week.Render(a.sched.Week(ctx, a.weekStart)))
				if forecast > 0 {
					fmt.Fprintln(out)
					for _, p := range a.sched.Forecast(ctx, forecast) {
						n, err := a.cards.NumberOfDueCards(ctx, p.Levels)
						if err != nil {
							return err
						}
						fmt.Fprintf(out, "%s %s  %-12s %3d cards\n", p.Day, p.Day.Weekday().String()[:3], p.Levels, n)
					}
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, week.Legend())
				return nil
			})
		},
	}
	cmd.Flags().Int("forecast", 0, "Also list the next N days with their levels and due cards")
	return cmd
}
