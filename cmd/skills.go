package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/skillforge/internal/app"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List skills currently unlocked for a learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		a, err := app.New(cmd.Context(), dbPath, app.Options{SkipProvider: true})
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		unlocked, err := a.Mastery.UnlockedSkills(ctx, userID)
		if err != nil {
			return fmt.Errorf("resolve unlocked skills: %w", err)
		}
		if len(unlocked) == 0 {
			fmt.Println("No skills unlocked yet.")
			return nil
		}

		fmt.Printf("%-24s  %-32s  %-10s  %8s  %8s\n",
			"ID", "Name", "Difficulty", "Mastery", "Mastered")
		fmt.Println(strings.Repeat("─", 92))

		for _, s := range unlocked {
			level := 0
			mastered := ""
			p, err := a.Store.Progress().Get(ctx, userID, s.ID)
			switch {
			case err == nil:
				level = p.MasteryLevel
				if p.IsMastered {
					mastered = "✓"
				}
			case errors.Is(err, store.ErrNotFound):
				// Unlocked through the graph but never practiced.
			default:
				return fmt.Errorf("load progress: %w", err)
			}

			name := s.Name
			if len(name) > 32 {
				name = name[:29] + "..."
			}
			fmt.Printf("%-24s  %-32s  %-10s  %7d%%  %8s\n",
				s.ID, name, s.Difficulty, level, mastered)
		}

		fmt.Printf("\n%d skills unlocked\n", len(unlocked))
		return nil
	},
}

func init() {
	skillsCmd.Flags().StringP("user", "u", "", "Learner ID")
}
