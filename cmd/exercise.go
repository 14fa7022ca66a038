package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/skillforge/internal/app"
	"github.com/abhisek/skillforge/internal/mastery"
	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Submit exercise answers",
}

var exerciseSubmitCmd = &cobra.Command{
	Use:   "submit <exercise-id>",
	Short: "Grade an answer and record the attempt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID := args[0]
		userID, _ := cmd.Flags().GetString("user")
		answer, _ := cmd.Flags().GetString("answer")
		timeSpent, _ := cmd.Flags().GetInt("time")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}
		if answer == "" {
			return fmt.Errorf("--answer is required")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		// Open-form exercises need the provider; closed-form grading
		// ignores it.
		a, err := app.New(cmd.Context(), dbPath, app.Options{})
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		res, err := a.Mastery.RecordExerciseAttempt(ctx, userID, exerciseID, answer, timeSpent)
		if err != nil {
			if errors.Is(err, mastery.ErrAttemptLimit) {
				fmt.Println("No attempts remaining for this exercise.")
				return nil
			}
			return err
		}

		fb := res.Feedback
		fmt.Printf("Verdict: %s (score %d)\n", fb.Verdict, fb.Score)
		if fb.Message != "" {
			fmt.Println(fb.Message)
		}
		if fb.Suggestion != "" {
			fmt.Printf("Hint: %s\n", fb.Suggestion)
		}
		if fb.AIGraded {
			fmt.Println("(graded by AI)")
		}

		fmt.Printf("Attempt #%d recorded. Skill mastery: %d%%\n",
			res.Attempt.AttemptNumber, res.MasteryLevel)
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
	exerciseSubmitCmd.Flags().StringP("user", "u", "", "Learner ID")
	exerciseSubmitCmd.Flags().StringP("answer", "a", "", "Submitted answer")
	exerciseSubmitCmd.Flags().Int("time", 0, "Time spent in seconds")

	exerciseCmd.AddCommand(exerciseSubmitCmd)
}
