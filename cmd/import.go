package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/skillforge/internal/app"
	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/skillgraph"
	"github.com/spf13/cobra"
)

// importDoc is the authored catalog file format. Re-importing an
// existing row updates it in place.
type importDoc struct {
	Categories []struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		DisplayOrder int    `json:"display_order"`
		Active       *bool  `json:"active"`
	} `json:"categories"`
	Skills []struct {
		ID               string   `json:"id"`
		CategoryID       string   `json:"category_id"`
		Name             string   `json:"name"`
		Difficulty       string   `json:"difficulty"`
		XPReward         int      `json:"xp_reward"`
		MasteryThreshold int      `json:"mastery_threshold"`
		Active           *bool    `json:"active"`
		Prerequisites    []string `json:"prerequisites"`
	} `json:"skills"`
	Lessons []struct {
		ID       string `json:"id"`
		SkillID  string `json:"skill_id"`
		Title    string `json:"title"`
		Position int    `json:"position"`
	} `json:"lessons"`
	Exercises []struct {
		ID            string   `json:"id"`
		SkillID       string   `json:"skill_id"`
		Type          string   `json:"type"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Rubric        string   `json:"rubric"`
		PassingScore  int      `json:"passing_score"`
		MaxAttempts   int      `json:"max_attempts"`
	} `json:"exercises"`
}

var importCmd = &cobra.Command{
	Use:   "import <catalog.json>",
	Short: "Import or update an authored skill catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read catalog file: %w", err)
		}

		var doc importDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse catalog file: %w", err)
		}

		// Validate the prerequisite graph before touching the store so
		// a cyclic or dangling catalog never lands in the database.
		skills := make([]catalog.Skill, 0, len(doc.Skills))
		for _, s := range doc.Skills {
			skills = append(skills, catalog.Skill{
				ID:            s.ID,
				Prerequisites: s.Prerequisites,
			})
		}
		g, err := skillgraph.Build(skills)
		if err != nil {
			return fmt.Errorf("invalid catalog: %w", err)
		}
		if err := g.Validate(); err != nil {
			return fmt.Errorf("invalid catalog: %w", err)
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
		repo := a.Store.Catalog()

		for _, c := range doc.Categories {
			active := true
			if c.Active != nil {
				active = *c.Active
			}
			err := repo.ImportCategory(ctx, catalog.Category{
				ID:           c.ID,
				Name:         c.Name,
				DisplayOrder: c.DisplayOrder,
				Active:       active,
			})
			if err != nil {
				return fmt.Errorf("import category %s: %w", c.ID, err)
			}
		}

		for _, s := range doc.Skills {
			active := true
			if s.Active != nil {
				active = *s.Active
			}
			err := repo.ImportSkill(ctx, catalog.Skill{
				ID:               s.ID,
				CategoryID:       s.CategoryID,
				Name:             s.Name,
				Difficulty:       catalog.Difficulty(s.Difficulty),
				XPReward:         s.XPReward,
				MasteryThreshold: s.MasteryThreshold,
				Active:           active,
				Prerequisites:    s.Prerequisites,
			})
			if err != nil {
				return fmt.Errorf("import skill %s: %w", s.ID, err)
			}
		}

		for _, l := range doc.Lessons {
			err := repo.ImportLesson(ctx, catalog.Lesson{
				ID:       l.ID,
				SkillID:  l.SkillID,
				Title:    l.Title,
				Position: l.Position,
			})
			if err != nil {
				return fmt.Errorf("import lesson %s: %w", l.ID, err)
			}
		}

		for _, e := range doc.Exercises {
			err := repo.ImportExercise(ctx, catalog.Exercise{
				ID:            e.ID,
				SkillID:       e.SkillID,
				Type:          catalog.ExerciseType(e.Type),
				Question:      e.Question,
				Options:       e.Options,
				CorrectAnswer: e.CorrectAnswer,
				Rubric:        e.Rubric,
				PassingScore:  e.PassingScore,
				MaxAttempts:   e.MaxAttempts,
			})
			if err != nil {
				return fmt.Errorf("import exercise %s: %w", e.ID, err)
			}
		}

		fmt.Printf("Imported %d categories, %d skills, %d lessons, %d exercises\n",
			len(doc.Categories), len(doc.Skills), len(doc.Lessons), len(doc.Exercises))
		return nil
	},
}
