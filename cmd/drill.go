package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathmedha/medha/internal/problemgen"
	"github.com/mathmedha/medha/internal/quiz"
	"github.com/mathmedha/medha/internal/rewards"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Play a journey in plain line mode",
	Long: "Plays one timed journey without the full-screen interface: type each " +
		"answer and press Enter. Rewards and history are recorded as usual.",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var result *quiz.Summary
		sess := quiz.New(quiz.Options{
			Duration:  e.cfg.Duration,
			Generator: problemgen.New(e.cfg.Gen),
			Events:    e.store.EventRepo(),
			Settings:  e.settings,
			Speaker:   e.speaker,
			Logger:    slog.Default(),
			OnResults: func(s quiz.Summary) { result = &s },
		})

		out := cmd.OutOrStdout()
		err = drill(ctx, sess, cmd.InOrStdin(), out)
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(out, "\nJourney abandoned.")
			return nil
		}
		if err != nil {
			return err
		}
		if result != nil {
			printSummary(out, *result, sess.SessionRewards())
		}
		return nil
	},
}

// drill runs sess to completion reading one answer per line from in.
func drill(ctx context.Context, sess *quiz.Session, in io.Reader, out io.Writer) error {
	prompt := func(s *quiz.Session) {
		fmt.Fprintf(out, "[%ds] %s = ", s.Countdown().Remaining(), s.Question().Display)
	}
	runner := quiz.NewRunner(sess, nil)
	runner.OnOutcome = func(s *quiz.Session, o quiz.Outcome) {
		fmt.Fprintln(out, verdict(o))
		prompt(s)
	}

	fmt.Fprintf(out, "You have %d seconds. Type each answer and press Enter.\n\n", sess.Countdown().Total())
	fmt.Fprintf(out, "%s = ", sess.Question().Display)

	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			judged, err := runner.Type(ctx, strings.TrimSpace(sc.Text()))
			if err != nil {
				return
			}
			if !judged && runner.Do(ctx, prompt) != nil {
				return
			}
		}
	}()

	err := runner.Run(ctx)
	fmt.Fprintln(out)
	return err
}

func verdict(o quiz.Outcome) string {
	var b strings.Builder
	if o.Correct {
		b.WriteString("  ✓ correct!")
	} else {
		fmt.Fprintf(&b, "  ✗ %s = %d", o.Question.Display, o.Question.Answer())
	}
	for _, e := range o.Events {
		switch e.Kind {
		case quiz.BadgeGranted:
			b.WriteString("  ✪ badge!")
		case quiz.StarGranted:
			b.WriteString("  ★ golden star!")
		case quiz.PlanetRevealed:
			fmt.Fprintf(&b, "  ◉ %s!", rewards.Journey[e.Index].Name)
		case quiz.CelebrationEntered:
			b.WriteString("  ✺ galaxy conquered!")
		}
	}
	return b.String()
}

func printSummary(w io.Writer, s quiz.Summary, awards []rewards.Award) {
	fmt.Fprintln(w, "Time's up!")
	fmt.Fprintf(w, "  answered %d, correct %d (%.0f%%), best streak %d\n",
		s.TotalAttempted, s.TotalCorrect, s.Accuracy()*100, s.BestStreak)
	fmt.Fprintf(w, "  ★ %d  ✪ %d  ◉ %d/%d\n", s.Stars, s.Badges, s.PlanetsRevealed, len(rewards.Journey))
	for _, a := range awards {
		fmt.Fprintf(w, "  %s %s %s · %s\n", a.Type.Icon(), a.Rarity.DisplayName(), a.Name, a.Reason)
	}
}
