package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardcycle/cardcycle/internal/spacedrep"
	"github.com/cardcycle/cardcycle/internal/ui/theme"
)

func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's levels and review status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(cmd)
		},
	}
}

func runToday(cmd *cobra.Command) error {
	return withApp(cmd, func(a *app) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		today := a.sched.Today()
		state := a.sched.CompletionState(ctx, today)
		levels := a.sched.LevelsForToday(ctx)
		due, err := a.cards.NumberOfDueCards(ctx, levels)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%s  %s", today, today.Weekday())))
		fmt.Fprintf(out, "Cycle day:  %d/%d\n", a.sched.CycleIndex(ctx)+1, spacedrep.CycleLength)
		fmt.Fprintf(out, "Levels:     %s\n", renderLevels(levels))
		fmt.Fprintf(out, "Status:     %s\n", state)

		switch {
		case state == spacedrep.StateCompleted:
			fmt.Fprintln(out, theme.Correct.Render("Today's review is complete."))
		case state == spacedrep.StateSkipped:
			fmt.Fprintln(out, theme.Hint.Render("Today was skipped."))
		case due == 0:
			fmt.Fprintln(out, theme.Hint.Render("No cards due. Run `cardcycle review` to complete the day."))
		default:
			fmt.Fprintf(out, "Due cards:  %d\n", due)
		}
		return nil
	})
}

// renderLevels draws a level set with each level in its color.
func renderLevels(levels spacedrep.LevelSet) string {
	s := ""
	for i, l := range levels {
		if i > 0 {
			s += " "
		}
		s += theme.Level(l).Render(fmt.Sprint(l))
	}
	return s
}
