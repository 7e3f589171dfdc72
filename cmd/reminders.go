package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newRemindersCmd() *cobra.Command {
	remindersCmd := &cobra.Command{
		Use:   "reminders",
		Short: "Manage daily review reminders",
	}

	addCmd := &cobra.Command{
		Use:   "add <HH:MM>",
		Short: "Add a daily reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hour, minute, err := parseClock(args[0])
			if err != nil {
				return err
			}
			badge, _ := cmd.Flags().GetBool("badge")
			sound, _ := cmd.Flags().GetBool("sound")

			return withApp(cmd, func(a *app) error {
				r, err := a.reminders.Add(cmd.Context(), hour, minute, badge, sound)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added reminder %d at %s\n", r.ID, r.Clock())
				return nil
			})
		},
	}
	addCmd.Flags().Bool("badge", true, "Show a badge count")
	addCmd.Flags().Bool("sound", true, "Play a sound")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				list, err := a.reminders.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(list) == 0 {
					fmt.Fprintln(out, "No reminders.")
					return nil
				}
				fmt.Fprintf(out, "%-5s  %-5s  %-5s  %-5s  %s\n", "ID", "Time", "Badge", "Sound", "On")
				for _, r := range list {
					fmt.Fprintf(out, "%-5d  %-5s  %-5s  %-5s  %s\n", r.ID, r.Clock(), check(r.Badge), check(r.Sound), check(r.Enabled))
				}
				return nil
			})
		},
	}

	setEnabled := func(use, short string, enabled bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid reminder id %q", args[0])
				}
				return withApp(cmd, func(a *app) error {
					return a.reminders.SetEnabled(cmd.Context(), id, enabled)
				})
			},
		}
	}

	removeCmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid reminder id %q", args[0])
			}
			return withApp(cmd, func(a *app) error {
				return a.reminders.Remove(cmd.Context(), id)
			})
		},
	}

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the notifications that should be scheduled now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				plan, err := a.reminders.Plan(cmd.Context(), a.sched, a.cards, time.Now().In(a.loc))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(plan) == 0 {
					fmt.Fprintln(out, "Nothing to schedule.")
					return nil
				}
				for _, n := range plan {
					fmt.Fprintf(out, "%s  badge=%d sound=%s  %s\n", n.At.Format("2006-01-02 15:04"), n.Badge, check(n.Sound), n.Body)
				}
				return nil
			})
		},
	}

	remindersCmd.AddCommand(
		addCmd,
		listCmd,
		setEnabled("enable", "Turn a reminder on", true),
		setEnabled("disable", "Turn a reminder off", false),
		removeCmd,
		planCmd,
	)
	return remindersCmd
}

// parseClock parses "H:MM" or "HH:MM".
func parseClock(s string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	hour, err = strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(m)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}

func check(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}
