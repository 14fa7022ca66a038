package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/skillforge/internal/app"
	"github.com/abhisek/skillforge/internal/skillgraph"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Show the skill prerequisite graph as dependency tiers",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		skills, err := a.Store.Catalog().Skills(ctx)
		if err != nil {
			return fmt.Errorf("load skills: %w", err)
		}
		if len(skills) == 0 {
			fmt.Println("No skills in the catalog. Run `skillforge import` first.")
			return nil
		}

		g, err := skillgraph.Build(skills)
		if err != nil {
			return fmt.Errorf("build graph: %w", err)
		}
		if err := g.Validate(); err != nil {
			return fmt.Errorf("invalid skill graph: %w", err)
		}

		tiers, err := g.Tiers()
		if err != nil {
			return err
		}

		for i, tier := range tiers {
			fmt.Printf("Tier %d\n", i)
			fmt.Println(strings.Repeat("─", 60))
			for _, s := range tier {
				prereq := "-"
				if len(s.Prerequisites) > 0 {
					prereq = strings.Join(s.Prerequisites, ", ")
				}
				fmt.Printf("  %-24s  %-10s  needs: %s\n", s.ID, s.Difficulty, prereq)
			}
			fmt.Println()
		}

		fmt.Printf("%d skills in %d tiers\n", len(skills), len(tiers))
		return nil
	},
}
