package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/obinna/studymate/internal/app"
	"github.com/obinna/studymate/internal/chat"
	"github.com/obinna/studymate/internal/llm"
	"github.com/obinna/studymate/internal/progress"
	"github.com/obinna/studymate/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	engine := progress.New(st.StateRepo(), time.Now)

	opts := app.Options{Engine: engine}

	provider, err := llm.NewProviderFromEnv(ctx, st.LLMLogRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The AI assistant will be unavailable.")
	} else {
		// The TUI drives progress tracking itself, so no tracker here.
		opts.Relay = chat.NewRelay(provider, nil, chat.DefaultRelayConfig(), time.Now)
	}

	return app.Run(opts)
}
