package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/abhisek/mathgarden/internal/ledger"
	"github.com/abhisek/mathgarden/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show player statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		return printStats(cmd.Context(), cmd.OutOrStdout(), st)
	},
}

// printStats writes the stats report. Answer totals come from the
// event log; the ledger supplies everything the log does not record.
func printStats(ctx context.Context, w io.Writer, st *store.Store) error {
	svc, err := ledger.Load(ctx, st.LedgerRepo(), st.EventRepo())
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	l := svc.Ledger()

	total, correct, err := st.EventRepo().AnswerTotals(ctx)
	if err != nil {
		return fmt.Errorf("answer totals: %w", err)
	}
	accuracy := 0
	if total > 0 {
		accuracy = correct * 100 / total
	}

	fmt.Fprintln(w, "Player")
	fmt.Fprintf(w, "  Stars:               %d\n", l.Stars)
	fmt.Fprintf(w, "  Best streak:         %d\n", l.BestStreak)
	fmt.Fprintf(w, "  Questions answered:  %d\n", total)
	fmt.Fprintf(w, "  Correct answers:     %d (%d%%)\n", correct, accuracy)
	fmt.Fprintf(w, "  Time attack record:  %d\n", l.Stats.TimeAttackHighScore)
	fmt.Fprintf(w, "  Garden:              level %d (%s)\n", l.Garden.Level, ledger.StageName(l.Garden.TreeStage))
	fmt.Fprintf(w, "  Achievements:        %d/%d\n", len(l.Achievements), len(ledger.AchievementCatalog()))

	sessions, err := st.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{Limit: 10})
	if err != nil {
		return fmt.Errorf("query sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil
	}

	fmt.Fprintln(w, "\nRecent games")
	for _, s := range sessions {
		fmt.Fprintf(w, "  %s  %-11s  %2d answered  ⭐ %-3d  %3ds\n",
			s.Timestamp.Format("2006-01-02 15:04"),
			s.Mode, s.QuestionsAnswered, s.StarsEarned, s.DurationSecs)
	}
	return nil
}
