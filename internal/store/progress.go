package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/skillforge/ent"
	entprogress "github.com/abhisek/skillforge/ent/userskillprogress"
)

// progressRepo implements ProgressRepo backed by ent.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, userID, skillID string) (*Progress, error) {
	row, err := r.client.UserSkillProgress.Query().
		Where(entprogress.UserID(userID), entprogress.SkillID(skillID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("progress %s/%s: %w", userID, skillID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get progress %s/%s: %w", userID, skillID, err)
	}
	return progressFromRow(row), nil
}

func (r *progressRepo) ForUser(ctx context.Context, userID string) ([]Progress, error) {
	rows, err := r.client.UserSkillProgress.Query().
		Where(entprogress.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress for %s: %w", userID, err)
	}
	out := make([]Progress, 0, len(rows))
	for _, row := range rows {
		out = append(out, *progressFromRow(row))
	}
	return out, nil
}

// Upsert writes the row in one statement keyed on (user_id, skill_id),
// so a concurrent retry cannot leave a duplicate pair.
func (r *progressRepo) Upsert(ctx context.Context, p *Progress) error {
	create := r.client.UserSkillProgress.Create().
		SetID(uuid.NewString()).
		SetUserID(p.UserID).
		SetSkillID(p.SkillID).
		SetMasteryLevel(p.MasteryLevel).
		SetIsUnlocked(p.IsUnlocked).
		SetIsMastered(p.IsMastered).
		SetTotalXpEarned(p.TotalXPEarned).
		SetLessonsCompleted(p.LessonsCompleted).
		SetExercisesCompleted(p.ExercisesCompleted)
	if p.FirstUnlockedAt != nil {
		create.SetFirstUnlockedAt(*p.FirstUnlockedAt)
	}
	if p.MasteredAt != nil {
		create.SetMasteredAt(*p.MasteredAt)
	}
	if p.LastPracticedAt != nil {
		create.SetLastPracticedAt(*p.LastPracticedAt)
	}

	err := create.
		OnConflictColumns(entprogress.FieldUserID, entprogress.FieldSkillID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert progress %s/%s: %w", p.UserID, p.SkillID, err)
	}
	return nil
}

func progressFromRow(row *ent.UserSkillProgress) *Progress {
	return &Progress{
		UserID:             row.UserID,
		SkillID:            row.SkillID,
		MasteryLevel:       row.MasteryLevel,
		IsUnlocked:         row.IsUnlocked,
		IsMastered:         row.IsMastered,
		TotalXPEarned:      row.TotalXpEarned,
		LessonsCompleted:   row.LessonsCompleted,
		ExercisesCompleted: row.ExercisesCompleted,
		FirstUnlockedAt:    row.FirstUnlockedAt,
		MasteredAt:         row.MasteredAt,
		LastPracticedAt:    row.LastPracticedAt,
	}
}
