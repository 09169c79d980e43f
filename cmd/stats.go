package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/sumleap/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent practice sessions",
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

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		sessions, err := st.EventRepo().RecentSessions(ctx, 20)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-14s %-8s %-10s %-9s %s\n", "DATE", "TIME", "PROBLEMS", "CORRECT", "RESULT")
		for _, s := range sessions {
			result := "completed"
			if s.Action == store.ActionEndEarly {
				result = "ended early"
			}
			mins := s.DurationSecs / 60
			secs := s.DurationSecs % 60
			fmt.Printf("%-14s %-8s %-10d %-9d %s\n",
				s.Timestamp.Format("Jan 02, 2006"),
				fmt.Sprintf("%d:%02d", mins, secs),
				s.Answered, s.Correct, result)
		}
		return nil
	},
}
