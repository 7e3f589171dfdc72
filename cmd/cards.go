package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardcycle/cardcycle/internal/cards"
)

func newCardsCmd() *cobra.Command {
	cardsCmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage flashcards",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a card at level 1 (or as a draft)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			front, _ := cmd.Flags().GetString("front")
			back, _ := cmd.Flags().GetString("back")
			draft, _ := cmd.Flags().GetBool("draft")

			return withApp(cmd, func(a *app) error {
				add := a.cards.Add
				if draft {
					add = a.cards.AddDraft
				}
				c, err := add(cmd.Context(), name, front, back)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added card %q (%s) to %s\n", c.Name, c.ID, cards.LevelName(c.Level))
				return nil
			})
		},
	}
	addCmd.Flags().String("name", "", "Card name (default: next number)")
	addCmd.Flags().String("front", "", "Front side text")
	addCmd.Flags().String("back", "", "Back side text")
	addCmd.Flags().Bool("draft", false, "Keep the card out of reviews until moved")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List cards (optionally at one level)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetInt("level")

			return withApp(cmd, func(a *app) error {
				ctx := cmd.Context()
				var (
					list []cards.Card
					err  error
				)
				if level >= 0 {
					list, err = a.cards.Deck(ctx, level)
				} else {
					list, err = a.cards.All(ctx)
				}
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(list) == 0 {
					fmt.Fprintln(out, "No cards found.")
					return nil
				}
				cards.SortByName(list)

				fmt.Fprintf(out, "%-36s  %-16s  %-9s  %s\n", "ID", "Name", "Level", "Front")
				fmt.Fprintln(out, strings.Repeat("─", 90))
				for _, c := range list {
					front := c.Front
					if len(front) > 24 {
						front = front[:21] + "..."
					}
					fmt.Fprintf(out, "%-36s  %-16s  %-9s  %s\n", c.ID, c.Name, cards.LevelName(c.Level), front)
				}
				fmt.Fprintf(out, "\n%d cards\n", len(list))
				return nil
			})
		},
	}
	listCmd.Flags().Int("level", -1, "Only list cards at this level (0 drafts, 8 finished)")

	moveCmd := &cobra.Command{
		Use:   "move <id> <level>",
		Short: "Move a card to a level (0-8)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid level %q", args[1])
			}
			return withApp(cmd, func(a *app) error {
				if err := a.cards.Move(cmd.Context(), args[0], level); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", args[0], cards.LevelName(level))
				return nil
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				if err := a.cards.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}

	cardsCmd.AddCommand(addCmd, listCmd, moveCmd, deleteCmd)
	return cardsCmd
}
