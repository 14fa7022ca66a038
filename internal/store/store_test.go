package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/spacedrep"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedCatalog(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	repo := s.Catalog()

	if err := repo.ImportCategory(ctx, catalog.Category{ID: "c1", Name: "Basics", Active: true}); err != nil {
		t.Fatalf("import category: %v", err)
	}
	if err := repo.ImportSkill(ctx, catalog.Skill{
		ID: "s1", CategoryID: "c1", Name: "Variables",
		Difficulty: catalog.DifficultyBeginner, XPReward: 50,
		MasteryThreshold: 80, Active: true,
	}); err != nil {
		t.Fatalf("import skill: %v", err)
	}
	if err := repo.ImportLesson(ctx, catalog.Lesson{ID: "l1", SkillID: "s1", Title: "Intro", Position: 1}); err != nil {
		t.Fatalf("import lesson: %v", err)
	}
	if err := repo.ImportExercise(ctx, catalog.Exercise{
		ID: "e1", SkillID: "s1", Type: catalog.TypeMultipleChoice,
		Question: "Pick a", Options: []string{"a", "b"}, CorrectAnswer: "a",
		PassingScore: 70, MaxAttempts: 3,
	}); err != nil {
		t.Fatalf("import exercise: %v", err)
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	s := openTestStore(t)
	seedCatalog(t, s)
	ctx := context.Background()
	repo := s.Catalog()

	skill, err := repo.Skill(ctx, "s1")
	if err != nil {
		t.Fatalf("get skill: %v", err)
	}
	if skill.Name != "Variables" || skill.MasteryThreshold != 80 {
		t.Errorf("skill = %+v", skill)
	}

	lessons, err := repo.SkillLessons(ctx, "s1")
	if err != nil || len(lessons) != 1 {
		t.Fatalf("skill lessons: %v %v", lessons, err)
	}

	if _, err := repo.Skill(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing skill: err = %v, want ErrNotFound", err)
	}
}

func TestImportSkill_UpsertsInPlace(t *testing.T) {
	s := openTestStore(t)
	seedCatalog(t, s)
	ctx := context.Background()
	repo := s.Catalog()

	if err := repo.ImportSkill(ctx, catalog.Skill{
		ID: "s1", CategoryID: "c1", Name: "Variables and Types",
		Difficulty: catalog.DifficultyIntermediate, XPReward: 75,
		MasteryThreshold: 90, Active: true,
	}); err != nil {
		t.Fatalf("re-import skill: %v", err)
	}

	skill, err := repo.Skill(ctx, "s1")
	if err != nil {
		t.Fatalf("get skill: %v", err)
	}
	if skill.Name != "Variables and Types" || skill.MasteryThreshold != 90 {
		t.Errorf("skill after re-import = %+v", skill)
	}

	skills, err := repo.Skills(ctx)
	if err != nil || len(skills) != 1 {
		t.Fatalf("skills = %v, want a single upserted row", skills)
	}
}

func TestSaveLessonContent(t *testing.T) {
	s := openTestStore(t)
	seedCatalog(t, s)
	ctx := context.Background()
	repo := s.Catalog()

	content := []byte(`[{"type":"text","body":"hi"}]`)
	if err := repo.SaveLessonContent(ctx, "l1", content); err != nil {
		t.Fatalf("save content: %v", err)
	}

	lesson, err := repo.Lesson(ctx, "l1")
	if err != nil {
		t.Fatalf("get lesson: %v", err)
	}
	if string(lesson.Content) != string(content) {
		t.Errorf("content = %s", lesson.Content)
	}

	if err := repo.SaveLessonContent(ctx, "nope", content); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing lesson: err = %v, want ErrNotFound", err)
	}
}

func TestProgressUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Progress()

	if _, err := repo.Get(ctx, "u1", "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty get: err = %v, want ErrNotFound", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	p := &Progress{
		UserID: "u1", SkillID: "s1",
		MasteryLevel: 50, IsUnlocked: true,
		TotalXPEarned: 50, LessonsCompleted: 1,
		FirstUnlockedAt: &now,
	}
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	p.MasteryLevel = 100
	p.IsMastered = true
	p.MasteredAt = &now
	if err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.Get(ctx, "u1", "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.MasteryLevel != 100 || !got.IsMastered || got.MasteredAt == nil {
		t.Errorf("progress = %+v", got)
	}

	all, err := repo.ForUser(ctx, "u1")
	if err != nil || len(all) != 1 {
		t.Fatalf("ForUser = %v, want one row", all)
	}
}

func TestCompletionIdempotence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Completions()

	created, err := repo.Create(ctx, &Completion{UserID: "u1", LessonID: "l1", TimeSpentSecs: 60, ComprehensionScore: 90})
	if err != nil || !created {
		t.Fatalf("first create = %v, %v", created, err)
	}

	created, err = repo.Create(ctx, &Completion{UserID: "u1", LessonID: "l1"})
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if created {
		t.Error("second create reported a new row")
	}

	ids, err := repo.CompletedLessonIDs(ctx, "u1", []string{"l1", "l2"})
	if err != nil {
		t.Fatalf("completed IDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != "l1" {
		t.Errorf("ids = %v, want [l1]", ids)
	}
}

func TestAttemptNumbering(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Attempts()

	n, err := repo.LastAttemptNumber(ctx, "u1", "e1")
	if err != nil || n != 0 {
		t.Fatalf("empty last attempt = %d, %v", n, err)
	}

	for i := 1; i <= 3; i++ {
		err := repo.Append(ctx, &Attempt{
			UserID: "u1", ExerciseID: "e1", AttemptNumber: i,
			Answer: "x", Score: i * 30, Correct: i == 3,
		})
		if err != nil {
			t.Fatalf("append #%d: %v", i, err)
		}
	}

	n, err = repo.LastAttemptNumber(ctx, "u1", "e1")
	if err != nil || n != 3 {
		t.Fatalf("last attempt = %d, %v, want 3", n, err)
	}

	correct, err := repo.CorrectExerciseIDs(ctx, "u1", []string{"e1", "e2"})
	if err != nil {
		t.Fatalf("correct IDs: %v", err)
	}
	if len(correct) != 1 || correct[0] != "e1" {
		t.Errorf("correct = %v, want [e1]", correct)
	}

	attempts, err := repo.ForExercise(ctx, "u1", "e1")
	if err != nil || len(attempts) != 3 {
		t.Fatalf("attempts = %v", attempts)
	}
	if attempts[0].AttemptNumber != 1 || attempts[2].AttemptNumber != 3 {
		t.Error("attempts not in ascending order")
	}
}

func TestReviewRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Reviews()
	now := time.Now().UTC().Truncate(time.Second)

	got, err := repo.Get(ctx, "u1", "l1", spacedrep.ItemLesson)
	if err != nil || got != nil {
		t.Fatalf("empty get = %v, %v, want nil/nil", got, err)
	}

	state := spacedrep.NewReviewState("u1", "l1", spacedrep.ItemLesson, now.AddDate(0, 0, -2))
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Saving again after an update must hit the same row.
	state.Apply(true, now.AddDate(0, 0, -1))
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	got, err = repo.Get(ctx, "u1", "l1", spacedrep.ItemLesson)
	if err != nil || got == nil {
		t.Fatalf("get: %v %v", got, err)
	}
	if got.Repetitions != 1 || got.IntervalDays != 3 {
		t.Errorf("state = %+v", got)
	}

	due, err := repo.Due(ctx, "u1", now.AddDate(0, 0, 10))
	if err != nil || len(due) != 1 {
		t.Fatalf("due = %v, %v", due, err)
	}
}
