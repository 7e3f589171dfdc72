package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardcycle/cardcycle/internal/cards"
	"github.com/cardcycle/cardcycle/internal/session"
	"github.com/cardcycle/cardcycle/internal/spacedrep"
	"github.com/cardcycle/cardcycle/internal/ui/components"
	"github.com/cardcycle/cardcycle/internal/ui/theme"
)

func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review today's cards",
		Long:  "Review today's cards one by one. Press Enter to flip a card, then answer y (knew it), n (did not) or q (stop for now).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				ctx := cmd.Context()
				out := cmd.OutOrStdout()

				today := a.sched.Today()
				if st := a.sched.CompletionState(ctx, today); st.Persisted() {
					fmt.Fprintf(out, "Today is already %s.\n", st)
					return nil
				}

				shuffle := a.cfg.Review.Shuffle
				if cmd.Flags().Changed("shuffle") {
					shuffle, _ = cmd.Flags().GetBool("shuffle")
				}

				levels := a.sched.LevelsForToday(ctx)
				s, err := session.Start(ctx, a.cards, a.sched, levels, session.Options{Shuffle: shuffle})
				if err != nil {
					return err
				}
				return runReview(ctx, s, levels, cmd.InOrStdin(), out)
			})
		},
	}
	cmd.Flags().Bool("shuffle", true, "Shuffle the deck (overrides review.shuffle)")
	return cmd
}

func runReview(ctx context.Context, s *session.Session, levels spacedrep.LevelSet, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Reviewing levels %s\n", renderLevels(levels))
	scanner := bufio.NewScanner(in)

	for !s.Done() {
		card, _ := s.Current()
		sum := session.BuildSummary(s)
		fmt.Fprintln(out)
		fmt.Fprintln(out, components.NewProgressBar("Progress", sum.Reviewed, sum.Reviewed+s.Remaining(), 50).View())
		fmt.Fprintln(out, theme.Card.Render(cardFace(card, card.Front)))
		fmt.Fprint(out, theme.Hint.Render("Enter to flip"))
		if !scanner.Scan() {
			break
		}
		fmt.Fprintln(out, theme.Card.Render(cardFace(card, card.Back)))

		correct, quit, ok := askAnswer(scanner, out)
		if !ok || quit {
			break
		}
		if err := s.Answer(ctx, correct); err != nil {
			return err
		}
		if correct {
			fmt.Fprintln(out, theme.Correct.Render("✓ moved up"))
		} else {
			fmt.Fprintln(out, theme.Incorrect.Render("✗ back to level 1"))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read answer: %w", err)
	}

	sum := session.BuildSummary(s)
	fmt.Fprintln(out)
	if sum.Completed {
		fmt.Fprintln(out, theme.Correct.Render("All done for today!"))
	} else {
		fmt.Fprintln(out, theme.Hint.Render("Review paused. Run `cardcycle review` again to continue."))
	}
	fmt.Fprintf(out, "Reviewed %d cards, %d correct (%.0f%%).\n", sum.Reviewed, sum.Correct, sum.Accuracy*100)
	return nil
}

func askAnswer(scanner *bufio.Scanner, out io.Writer) (correct, quit, ok bool) {
	for {
		fmt.Fprint(out, "Did you know it? [y/n/q] ")
		if !scanner.Scan() {
			return false, false, false
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return true, false, true
		case "n", "no":
			return false, false, true
		case "q", "quit":
			return false, true, true
		}
	}
}

func cardFace(c cards.Card, text string) string {
	if text == "" {
		text = "(empty)"
	}
	return theme.Hint.Render(fmt.Sprintf("#%s  %s", c.Name, cards.LevelName(c.Level))) + "\n\n" + theme.Body.Render(text)
}
