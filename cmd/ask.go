package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/obinna/studymate/internal/chat"
	"github.com/obinna/studymate/internal/llm"
	"github.com/obinna/studymate/internal/progress"
	"github.com/obinna/studymate/internal/store"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the AI study assistant a one-shot question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		question := strings.Join(args, " ")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.LLMLogRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		engine := progress.New(st.StateRepo(), time.Now)
		relay := chat.NewRelay(provider, engine, chat.DefaultRelayConfig(), time.Now)

		reply, err := relay.Send(ctx, question)
		if err != nil {
			return err
		}
		if reply == nil {
			return fmt.Errorf("empty question")
		}

		fmt.Println(reply.Text)
		return nil
	},
}
