package cmd

import (
	"github.com/abhisek/skillforge/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillforge",
	Short: "Skill progression engine",
	Long:  "Skillforge — dependency-gated skill graph, mastery tracking, spaced review, and AI-generated lesson content.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLFORGE_DB env var)")

	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(exerciseCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then SKILLFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
