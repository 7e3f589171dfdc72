package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete [YYYY-MM-DD]",
		Short: "Mark a day (default today) as completed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				day, err := parseDayArg(a, args)
				if err != nil {
					return err
				}
				changed, err := a.sched.MarkCompleted(cmd.Context(), day)
				if err != nil {
					return err
				}
				reportMark(cmd, day.String(), "completed", changed)
				return nil
			})
		},
	}
}

func newSkipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skip [YYYY-MM-DD]",
		Short: "Mark a day (default today) as skipped",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				day, err := parseDayArg(a, args)
				if err != nil {
					return err
				}
				changed, err := a.sched.MarkSkipped(cmd.Context(), day)
				if err != nil {
					return err
				}
				reportMark(cmd, day.String(), "skipped", changed)
				return nil
			})
		},
	}
}

func newBackfillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill",
		Short: "Skip past days on which no cards were due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				skipped, err := a.sched.BackfillSkips(cmd.Context())
				for _, d := range skipped {
					fmt.Fprintf(cmd.OutOrStdout(), "%s skipped\n", d)
				}
				if err != nil {
					return err
				}
				if len(skipped) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to backfill.")
				}
				return nil
			})
		},
	}
}

func reportMark(cmd *cobra.Command, day, as string, changed bool) {
	if changed {
		fmt.Fprintf(cmd.OutOrStdout(), "%s marked %s\n", day, as)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s already recorded, unchanged\n", day)
}
