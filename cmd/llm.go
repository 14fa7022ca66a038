package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/skillforge/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		entries, err := s.RequestLog().Recent(ctx, limit)
		if err != nil {
			return fmt.Errorf("query request log: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No LLM requests recorded.")
			return nil
		}

		// Header.
		fmt.Printf("%-19s  %-10s  %-14s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Timestamp", "Provider", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 105))

		for _, e := range entries {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-19s  %-10s  %-14s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				e.Provider,
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. lesson-content, grade)")

	llmCmd.AddCommand(llmListCmd)
}
