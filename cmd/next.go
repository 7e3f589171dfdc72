package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cardcycle/cardcycle/internal/calendar"
	"github.com/cardcycle/cardcycle/internal/spacedrep"
)

func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next [level]",
		Short: "Show when a level (default every level) is next reviewed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := make([]int, 0, spacedrep.MaxLevel)
			if len(args) == 1 {
				l, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid level %q", args[0])
				}
				levels = append(levels, l)
			} else {
				for l := spacedrep.MinLevel; l <= spacedrep.MaxLevel; l++ {
					levels = append(levels, l)
				}
			}

			return withApp(cmd, func(a *app) error {
				ctx := cmd.Context()
				out := cmd.OutOrStdout()
				today := a.sched.Today()
				for _, l := range levels {
					day, ok, err := a.sched.NextReviewDate(ctx, l)
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintf(out, "level %d is not scheduled (levels %d-%d are)\n", l, spacedrep.MinLevel, spacedrep.MaxLevel)
						continue
					}
					fmt.Fprintf(out, "level %s  %s  %s\n", renderLevels(spacedrep.LevelSet{l}), day, relativeDay(today, day))
				}
				return nil
			})
		},
	}
}

func relativeDay(today, day calendar.Day) string {
	switch n := calendar.DaysBetween(today, day); n {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", n)
	}
}
