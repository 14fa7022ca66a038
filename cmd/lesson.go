package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/skillforge/internal/app"
	"github.com/abhisek/skillforge/internal/content"
	"github.com/spf13/cobra"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "View and complete lessons",
}

var lessonShowCmd = &cobra.Command{
	Use:   "show <lesson-id>",
	Short: "Print a lesson, generating its content when missing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonID := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		a, err := app.New(cmd.Context(), dbPath, app.Options{})
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		sections, err := a.Content.EnsureLessonContent(ctx, lessonID)
		if err != nil {
			var genErr *content.GenerationError
			if errors.As(err, &genErr) {
				return fmt.Errorf("lesson content generation failed: %w", err)
			}
			return err
		}

		sep := strings.Repeat("─", 60)
		for _, sec := range sections {
			fmt.Println(sep)
			if sec.Title != "" {
				fmt.Println(sec.Title)
				fmt.Println(sep)
			}
			switch sec.Kind {
			case content.KindText:
				fmt.Println(sec.Body)
			case content.KindQuiz:
				for i, q := range sec.Questions {
					fmt.Printf("%d. %s\n", i+1, q.Prompt)
					for _, opt := range q.Options {
						fmt.Printf("   - %s\n", opt)
					}
				}
			}
			fmt.Println()
		}
		return nil
	},
}

var lessonCompleteCmd = &cobra.Command{
	Use:   "complete <lesson-id>",
	Short: "Record a lesson completion and recompute skill progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonID := args[0]
		userID, _ := cmd.Flags().GetString("user")
		timeSpent, _ := cmd.Flags().GetInt("time")
		score, _ := cmd.Flags().GetInt("score")
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
		res, err := a.Mastery.RecordLessonCompletion(ctx, userID, lessonID, timeSpent, score)
		if err != nil {
			return err
		}

		if res.AlreadyCompleted {
			fmt.Println("Already completed; nothing changed.")
		} else {
			fmt.Printf("Lesson complete! +%d XP (total %d, level %d)\n",
				res.XPAwarded, res.TotalXP, res.Level)
		}
		fmt.Printf("Skill mastery: %d%%\n", res.MasteryLevel)
		if res.NewlyMastered {
			fmt.Println("Skill mastered!")
		}
		for _, id := range res.UnlockedSkills {
			fmt.Printf("Unlocked: %s\n", id)
		}
		return nil
	},
}

func init() {
	lessonCompleteCmd.Flags().StringP("user", "u", "", "Learner ID")
	lessonCompleteCmd.Flags().Int("time", 0, "Time spent in seconds")
	lessonCompleteCmd.Flags().Int("score", 0, "Self-reported comprehension score (0-100)")

	lessonCmd.AddCommand(lessonShowCmd)
	lessonCmd.AddCommand(lessonCompleteCmd)
}
