package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/skillforge/ent"
	entexercise "github.com/abhisek/skillforge/ent/exercise"
	entlesson "github.com/abhisek/skillforge/ent/lesson"
	entskill "github.com/abhisek/skillforge/ent/skill"
	entskillcategory "github.com/abhisek/skillforge/ent/skillcategory"
	"github.com/abhisek/skillforge/internal/catalog"
)

// catalogRepo implements CatalogRepo backed by ent.
type catalogRepo struct {
	client *ent.Client
}

func (r *catalogRepo) Categories(ctx context.Context) ([]catalog.Category, error) {
	rows, err := r.client.SkillCategory.Query().
		Order(ent.Asc(entskillcategory.FieldDisplayOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	out := make([]catalog.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, catalog.Category{
			ID:           row.ID,
			Name:         row.Name,
			DisplayOrder: row.DisplayOrder,
			Active:       row.Active,
		})
	}
	return out, nil
}

func (r *catalogRepo) Skills(ctx context.Context) ([]catalog.Skill, error) {
	rows, err := r.client.Skill.Query().
		Order(ent.Asc(entskill.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	out := make([]catalog.Skill, 0, len(rows))
	for _, row := range rows {
		out = append(out, skillFromRow(row))
	}
	return out, nil
}

func (r *catalogRepo) Skill(ctx context.Context, id string) (*catalog.Skill, error) {
	row, err := r.client.Skill.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("skill %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get skill %s: %w", id, err)
	}
	s := skillFromRow(row)
	return &s, nil
}

func (r *catalogRepo) Lesson(ctx context.Context, id string) (*catalog.Lesson, error) {
	row, err := r.client.Lesson.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("lesson %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson %s: %w", id, err)
	}
	l := lessonFromRow(row)
	return &l, nil
}

func (r *catalogRepo) Exercise(ctx context.Context, id string) (*catalog.Exercise, error) {
	row, err := r.client.Exercise.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("exercise %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get exercise %s: %w", id, err)
	}
	e := exerciseFromRow(row)
	return &e, nil
}

func (r *catalogRepo) SkillLessons(ctx context.Context, skillID string) ([]catalog.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Where(entlesson.SkillID(skillID)).
		Order(ent.Asc(entlesson.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons for skill %s: %w", skillID, err)
	}
	out := make([]catalog.Lesson, 0, len(rows))
	for _, row := range rows {
		out = append(out, lessonFromRow(row))
	}
	return out, nil
}

func (r *catalogRepo) SkillExercises(ctx context.Context, skillID string) ([]catalog.Exercise, error) {
	rows, err := r.client.Exercise.Query().
		Where(entexercise.SkillID(skillID)).
		Order(ent.Asc(entexercise.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exercises for skill %s: %w", skillID, err)
	}
	out := make([]catalog.Exercise, 0, len(rows))
	for _, row := range rows {
		out = append(out, exerciseFromRow(row))
	}
	return out, nil
}

func (r *catalogRepo) SaveLessonContent(ctx context.Context, lessonID string, content json.RawMessage) error {
	n, err := r.client.Lesson.Update().
		Where(entlesson.ID(lessonID)).
		SetContent(content).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save content for lesson %s: %w", lessonID, err)
	}
	if n == 0 {
		return fmt.Errorf("lesson %s: %w", lessonID, ErrNotFound)
	}
	return nil
}

func (r *catalogRepo) ImportCategory(ctx context.Context, c catalog.Category) error {
	err := r.client.SkillCategory.Create().
		SetID(c.ID).
		SetName(c.Name).
		SetDisplayOrder(c.DisplayOrder).
		SetActive(c.Active).
		OnConflictColumns(entskillcategory.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("import category %s: %w", c.ID, err)
	}
	return nil
}

func (r *catalogRepo) ImportSkill(ctx context.Context, s catalog.Skill) error {
	err := r.client.Skill.Create().
		SetID(s.ID).
		SetCategoryID(s.CategoryID).
		SetName(s.Name).
		SetDifficulty(entskill.Difficulty(s.Difficulty)).
		SetXpReward(s.XPReward).
		SetMasteryThreshold(s.MasteryThreshold).
		SetActive(s.Active).
		SetPrerequisites(s.Prerequisites).
		OnConflictColumns(entskill.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("import skill %s: %w", s.ID, err)
	}
	return nil
}

func (r *catalogRepo) ImportLesson(ctx context.Context, l catalog.Lesson) error {
	create := r.client.Lesson.Create().
		SetID(l.ID).
		SetSkillID(l.SkillID).
		SetTitle(l.Title).
		SetPosition(l.Position)
	if len(l.Content) > 0 {
		create.SetContent(l.Content)
	}
	err := create.
		OnConflictColumns(entlesson.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("import lesson %s: %w", l.ID, err)
	}
	return nil
}

func (r *catalogRepo) ImportExercise(ctx context.Context, e catalog.Exercise) error {
	err := r.client.Exercise.Create().
		SetID(e.ID).
		SetSkillID(e.SkillID).
		SetType(entexercise.Type(e.Type)).
		SetQuestion(e.Question).
		SetOptions(e.Options).
		SetCorrectAnswer(e.CorrectAnswer).
		SetRubric(e.Rubric).
		SetPassingScore(e.PassingScore).
		SetMaxAttempts(e.MaxAttempts).
		OnConflictColumns(entexercise.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("import exercise %s: %w", e.ID, err)
	}
	return nil
}

func skillFromRow(row *ent.Skill) catalog.Skill {
	return catalog.Skill{
		ID:               row.ID,
		CategoryID:       row.CategoryID,
		Name:             row.Name,
		Difficulty:       catalog.Difficulty(row.Difficulty),
		XPReward:         row.XpReward,
		MasteryThreshold: row.MasteryThreshold,
		Active:           row.Active,
		Prerequisites:    row.Prerequisites,
	}
}

func lessonFromRow(row *ent.Lesson) catalog.Lesson {
	return catalog.Lesson{
		ID:       row.ID,
		SkillID:  row.SkillID,
		Title:    row.Title,
		Position: row.Position,
		Content:  row.Content,
	}
}

func exerciseFromRow(row *ent.Exercise) catalog.Exercise {
	return catalog.Exercise{
		ID:            row.ID,
		SkillID:       row.SkillID,
		Type:          catalog.ExerciseType(row.Type),
		Question:      row.Question,
		Options:       row.Options,
		CorrectAnswer: row.CorrectAnswer,
		Rubric:        row.Rubric,
		PassingScore:  row.PassingScore,
		MaxAttempts:   row.MaxAttempts,
	}
}
