package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/skillforge/internal/app"
	"github.com/abhisek/skillforge/internal/spacedrep"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Spaced review queue",
}

var reviewDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List items due for review, most overdue first",
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
		now := time.Now()
		due, err := a.Scheduler.DueForReview(ctx, userID, now)
		if err != nil {
			return fmt.Errorf("query due reviews: %w", err)
		}
		if len(due) == 0 {
			fmt.Println("Nothing due for review. 🎉")
			return nil
		}

		fmt.Printf("%-36s  %-10s  %8s  %6s  %5s\n",
			"Item", "Type", "Overdue", "Ease", "Reps")
		fmt.Println(strings.Repeat("─", 75))

		for _, r := range due {
			fmt.Printf("%-36s  %-10s  %6.1fd  %6.2f  %5d\n",
				r.ItemID, r.ItemType, r.OverdueDays(now), r.EaseFactor, r.Repetitions)
		}

		fmt.Printf("\n%d items due\n", len(due))
		return nil
	},
}

var reviewRecordCmd = &cobra.Command{
	Use:   "record <item-id>",
	Short: "Record a review outcome and reschedule the item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID := args[0]
		userID, _ := cmd.Flags().GetString("user")
		itemType, _ := cmd.Flags().GetString("type")
		correct, _ := cmd.Flags().GetBool("correct")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}
		if itemType != string(spacedrep.ItemLesson) && itemType != string(spacedrep.ItemExercise) {
			return fmt.Errorf("--type must be %q or %q", spacedrep.ItemLesson, spacedrep.ItemExercise)
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
		state, err := a.Scheduler.RecordReview(ctx, userID, itemID, spacedrep.ItemType(itemType), correct, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Next review: %s (interval %dd, ease %.2f)\n",
			state.ReviewAt.Local().Format("2006-01-02"), state.IntervalDays, state.EaseFactor)
		return nil
	},
}

func init() {
	reviewDueCmd.Flags().StringP("user", "u", "", "Learner ID")
	reviewRecordCmd.Flags().StringP("user", "u", "", "Learner ID")
	reviewRecordCmd.Flags().String("type", string(spacedrep.ItemLesson), "Item type (lesson or exercise)")
	reviewRecordCmd.Flags().Bool("correct", false, "Whether the item was recalled correctly")

	reviewCmd.AddCommand(reviewDueCmd)
	reviewCmd.AddCommand(reviewRecordCmd)
}
