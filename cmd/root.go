package cmd

import (
	"os"

	"github.com/abhisek/sumleap/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sumleap",
	Short: "Abacus mental-math practice for kids",
	Long:  "Sumleap is a terminal practice app for abacus and mental arithmetic, with guided help when a problem gets sticky.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SUMLEAP_DB env var)")
	rootCmd.PersistentFlags().String("player", "", "Player name (overrides SUMLEAP_PLAYER env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(remoteCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SUMLEAP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("SUMLEAP_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolvePlayer returns the player identity used to key plans and events.
func resolvePlayer(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("player"); p != "" {
		return p
	}
	if p := os.Getenv("SUMLEAP_PLAYER"); p != "" {
		return p
	}
	return "player"
}
