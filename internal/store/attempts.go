package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/skillforge/ent"
	entattempt "github.com/abhisek/skillforge/ent/exerciseattempt"
)

// attemptRepo implements AttemptRepo backed by ent.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Append(ctx context.Context, a *Attempt) error {
	create := r.client.ExerciseAttempt.Create().
		SetID(uuid.NewString()).
		SetUserID(a.UserID).
		SetExerciseID(a.ExerciseID).
		SetAttemptNumber(a.AttemptNumber).
		SetAnswer(a.Answer).
		SetScore(a.Score).
		SetCorrect(a.Correct).
		SetTimeSpentSecs(a.TimeSpentSecs)
	if len(a.Feedback) > 0 {
		create.SetFeedback(a.Feedback)
	}
	if !a.SubmittedAt.IsZero() {
		create.SetSubmittedAt(a.SubmittedAt)
	}

	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("append attempt %s/%s #%d: %w", a.UserID, a.ExerciseID, a.AttemptNumber, err)
	}
	return nil
}

func (r *attemptRepo) LastAttemptNumber(ctx context.Context, userID, exerciseID string) (int, error) {
	row, err := r.client.ExerciseAttempt.Query().
		Where(
			entattempt.UserID(userID),
			entattempt.ExerciseID(exerciseID),
		).
		Order(ent.Desc(entattempt.FieldAttemptNumber)).
		First(ctx)
	if ent.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query attempts %s/%s: %w", userID, exerciseID, err)
	}
	return row.AttemptNumber, nil
}

func (r *attemptRepo) CorrectExerciseIDs(ctx context.Context, userID string, exerciseIDs []string) ([]string, error) {
	if len(exerciseIDs) == 0 {
		return nil, nil
	}
	rows, err := r.client.ExerciseAttempt.Query().
		Where(
			entattempt.UserID(userID),
			entattempt.ExerciseIDIn(exerciseIDs...),
			entattempt.Correct(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query correct attempts for %s: %w", userID, err)
	}

	seen := make(map[string]bool, len(rows))
	var ids []string
	for _, row := range rows {
		if !seen[row.ExerciseID] {
			seen[row.ExerciseID] = true
			ids = append(ids, row.ExerciseID)
		}
	}
	return ids, nil
}

func (r *attemptRepo) ForExercise(ctx context.Context, userID, exerciseID string) ([]Attempt, error) {
	rows, err := r.client.ExerciseAttempt.Query().
		Where(
			entattempt.UserID(userID),
			entattempt.ExerciseID(exerciseID),
		).
		Order(ent.Asc(entattempt.FieldAttemptNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts %s/%s: %w", userID, exerciseID, err)
	}
	out := make([]Attempt, 0, len(rows))
	for _, row := range rows {
		out = append(out, Attempt{
			ID:            row.ID,
			UserID:        row.UserID,
			ExerciseID:    row.ExerciseID,
			AttemptNumber: row.AttemptNumber,
			Answer:        row.Answer,
			Score:         row.Score,
			Correct:       row.Correct,
			Feedback:      row.Feedback,
			TimeSpentSecs: row.TimeSpentSecs,
			SubmittedAt:   row.SubmittedAt,
		})
	}
	return out, nil
}
