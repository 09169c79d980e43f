package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/abhisek/sumleap/internal/app"
	"github.com/abhisek/sumleap/internal/cheer"
	"github.com/abhisek/sumleap/internal/problemgen"
	"github.com/abhisek/sumleap/internal/remote"
	"github.com/abhisek/sumleap/internal/screens/practice"
	"github.com/abhisek/sumleap/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := practice.Deps{
		Generator: problemgen.New(time.Now().UnixNano()),
		Events:    st.EventRepo(),
		Plans:     st.PlanRepo(),
		Cheer:     buildCheer(),
		PlayerID:  resolvePlayer(cmd),
	}

	// The control socket is best effort; practice works fine without a
	// companion surface attached.
	if listener, err := remote.Listen(remote.DefaultSocketPath()); err == nil {
		defer listener.Close()
		deps.Remote = listener.Requests()
	} else {
		fmt.Fprintln(os.Stderr, "remote control disabled:", err)
	}

	return app.Run(app.Options{Practice: deps})
}

// buildCheer prefers the Anthropic provider when a key is configured and
// always keeps the static pool as fallback.
func buildCheer() *cheer.Service {
	fallback := cheer.NewStaticProvider(time.Now().UnixNano())
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		if p, err := cheer.NewAnthropicProvider(key, cheer.DefaultConfig()); err == nil {
			return cheer.NewService(p, fallback)
		}
	}
	return cheer.NewService(fallback, fallback)
}
