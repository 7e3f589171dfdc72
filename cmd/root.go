package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cardcycle/cardcycle/internal/store"
)

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cardcycle",
		Short:        "Level-based flashcard review scheduler",
		Long:         "cardcycle schedules flashcard reviews on a fixed 64-day cycle of levels and keeps a log of completed and skipped days.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToday(cmd)
		},
	}

	root.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CARDCYCLE_DB env var)")
	root.PersistentFlags().String("config", "", "Path to TOML config file")

	root.AddCommand(
		newTodayCmd(),
		newCompleteCmd(),
		newSkipCmd(),
		newBackfillCmd(),
		newNextCmd(),
		newWeekCmd(),
		newCardsCmd(),
		newReviewCmd(),
		newRemindersCmd(),
		newExportCmd(),
		newImportCmd(),
		newHistoryCmd(),
		newStatsCmd(),
		newVersionCmd(),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path (CARDCYCLE_DB or store.path), then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
