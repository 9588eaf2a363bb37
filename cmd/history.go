package cmd

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/mathmedha/medha/internal/rewards"
	"github.com/mathmedha/medha/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent journeys and lifetime rewards",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()
		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query journeys: %w", err)
		}
		counts, total, err := repo.RewardCounts(ctx)
		if err != nil {
			return fmt.Errorf("count rewards: %w", err)
		}

		printHistory(cmd.OutOrStdout(), sessions, counts, total)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Number of journeys to show")
}

// openStore opens the database named by flags and environment without
// the rest of the app setup.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	path, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func printHistory(w io.Writer, sessions []store.SessionSummaryRecord, counts map[string]int, total int) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No journeys yet.")
	} else {
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers("WHEN", "ANSWERED", "CORRECT", "ACCURACY", "STREAK", "★", "✪", "◉")
		for _, s := range sessions {
			acc := 0.0
			if s.Attempted > 0 {
				acc = float64(s.Correct) / float64(s.Attempted) * 100
			}
			t.Row(
				s.Timestamp.Local().Format("2006-01-02 15:04"),
				strconv.Itoa(s.Attempted),
				strconv.Itoa(s.Correct),
				fmt.Sprintf("%.0f%%", acc),
				strconv.Itoa(s.BestStreak),
				strconv.Itoa(s.Stars),
				strconv.Itoa(s.Badges),
				strconv.Itoa(s.Planets),
			)
		}
		fmt.Fprintln(w, t.String())
	}

	fmt.Fprintf(w, "\nLifetime rewards: %d\n", total)
	for _, rt := range rewards.AllRewardTypes() {
		fmt.Fprintf(w, "  %s %-12s %d\n", rt.Icon(), rt.DisplayName(), counts[string(rt)])
	}
}
