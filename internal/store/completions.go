package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/skillforge/ent"
	entcompletion "github.com/abhisek/skillforge/ent/lessoncompletion"
)

// completionRepo implements CompletionRepo backed by ent.
type completionRepo struct {
	client *ent.Client
}

func (r *completionRepo) Create(ctx context.Context, c *Completion) (bool, error) {
	exists, err := r.client.LessonCompletion.Query().
		Where(
			entcompletion.UserID(c.UserID),
			entcompletion.LessonID(c.LessonID),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check completion %s/%s: %w", c.UserID, c.LessonID, err)
	}
	if exists {
		return false, nil
	}

	create := r.client.LessonCompletion.Create().
		SetID(uuid.NewString()).
		SetUserID(c.UserID).
		SetLessonID(c.LessonID).
		SetTimeSpentSecs(c.TimeSpentSecs).
		SetComprehensionScore(c.ComprehensionScore)
	if !c.CompletedAt.IsZero() {
		create.SetCompletedAt(c.CompletedAt)
	}

	// The unique (user_id, lesson_id) index backstops the existence
	// check: a racing duplicate insert fails instead of double-counting.
	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("create completion %s/%s: %w", c.UserID, c.LessonID, err)
	}
	return true, nil
}

func (r *completionRepo) CompletedLessonIDs(ctx context.Context, userID string, lessonIDs []string) ([]string, error) {
	if len(lessonIDs) == 0 {
		return nil, nil
	}
	rows, err := r.client.LessonCompletion.Query().
		Where(
			entcompletion.UserID(userID),
			entcompletion.LessonIDIn(lessonIDs...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completions for %s: %w", userID, err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.LessonID)
	}
	return ids, nil
}
