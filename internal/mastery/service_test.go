package mastery

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/evaluate"
	"github.com/abhisek/skillforge/internal/spacedrep"
	"github.com/abhisek/skillforge/internal/store"
)

// fakeCatalog is an in-memory CatalogRepo.
type fakeCatalog struct {
	skills    map[string]catalog.Skill
	lessons   map[string]catalog.Lesson
	exercises map[string]catalog.Exercise
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		skills:    make(map[string]catalog.Skill),
		lessons:   make(map[string]catalog.Lesson),
		exercises: make(map[string]catalog.Exercise),
	}
}

func (f *fakeCatalog) Categories(context.Context) ([]catalog.Category, error) { return nil, nil }

func (f *fakeCatalog) Skills(context.Context) ([]catalog.Skill, error) {
	var out []catalog.Skill
	for _, s := range f.skills {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeCatalog) Skill(_ context.Context, id string) (*catalog.Skill, error) {
	s, ok := f.skills[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &s, nil
}

func (f *fakeCatalog) Lesson(_ context.Context, id string) (*catalog.Lesson, error) {
	l, ok := f.lessons[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &l, nil
}

func (f *fakeCatalog) Exercise(_ context.Context, id string) (*catalog.Exercise, error) {
	e, ok := f.exercises[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &e, nil
}

func (f *fakeCatalog) SkillLessons(_ context.Context, skillID string) ([]catalog.Lesson, error) {
	var out []catalog.Lesson
	for _, l := range f.lessons {
		if l.SkillID == skillID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeCatalog) SkillExercises(_ context.Context, skillID string) ([]catalog.Exercise, error) {
	var out []catalog.Exercise
	for _, e := range f.exercises {
		if e.SkillID == skillID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeCatalog) SaveLessonContent(context.Context, string, json.RawMessage) error { return nil }

func (f *fakeCatalog) ImportCategory(context.Context, catalog.Category) error { return nil }
func (f *fakeCatalog) ImportSkill(_ context.Context, s catalog.Skill) error {
	f.skills[s.ID] = s
	return nil
}
func (f *fakeCatalog) ImportLesson(_ context.Context, l catalog.Lesson) error {
	f.lessons[l.ID] = l
	return nil
}
func (f *fakeCatalog) ImportExercise(_ context.Context, e catalog.Exercise) error {
	f.exercises[e.ID] = e
	return nil
}

// fakeProgress is an in-memory ProgressRepo.
type fakeProgress struct {
	rows map[string]*store.Progress
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{rows: make(map[string]*store.Progress)}
}

func (f *fakeProgress) Get(_ context.Context, userID, skillID string) (*store.Progress, error) {
	p, ok := f.rows[userID+"|"+skillID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProgress) ForUser(_ context.Context, userID string) ([]store.Progress, error) {
	var out []store.Progress
	for _, p := range f.rows {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProgress) Upsert(_ context.Context, p *store.Progress) error {
	cp := *p
	f.rows[p.UserID+"|"+p.SkillID] = &cp
	return nil
}

// fakeCompletions is an in-memory CompletionRepo.
type fakeCompletions struct {
	rows map[string]bool
}

func newFakeCompletions() *fakeCompletions {
	return &fakeCompletions{rows: make(map[string]bool)}
}

func (f *fakeCompletions) Create(_ context.Context, c *store.Completion) (bool, error) {
	k := c.UserID + "|" + c.LessonID
	if f.rows[k] {
		return false, nil
	}
	f.rows[k] = true
	return true, nil
}

func (f *fakeCompletions) CompletedLessonIDs(_ context.Context, userID string, lessonIDs []string) ([]string, error) {
	var out []string
	for _, id := range lessonIDs {
		if f.rows[userID+"|"+id] {
			out = append(out, id)
		}
	}
	return out, nil
}

// fakeAttempts is an in-memory AttemptRepo.
type fakeAttempts struct {
	rows []store.Attempt
}

func (f *fakeAttempts) Append(_ context.Context, a *store.Attempt) error {
	f.rows = append(f.rows, *a)
	return nil
}

func (f *fakeAttempts) LastAttemptNumber(_ context.Context, userID, exerciseID string) (int, error) {
	last := 0
	for _, a := range f.rows {
		if a.UserID == userID && a.ExerciseID == exerciseID && a.AttemptNumber > last {
			last = a.AttemptNumber
		}
	}
	return last, nil
}

func (f *fakeAttempts) CorrectExerciseIDs(_ context.Context, userID string, exerciseIDs []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, a := range f.rows {
		if a.UserID == userID && a.Correct && slices.Contains(exerciseIDs, a.ExerciseID) && !seen[a.ExerciseID] {
			seen[a.ExerciseID] = true
			out = append(out, a.ExerciseID)
		}
	}
	return out, nil
}

func (f *fakeAttempts) ForExercise(_ context.Context, userID, exerciseID string) ([]store.Attempt, error) {
	var out []store.Attempt
	for _, a := range f.rows {
		if a.UserID == userID && a.ExerciseID == exerciseID {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeReviews is an in-memory spacedrep.Store.
type fakeReviews struct {
	rows map[string]*spacedrep.ReviewState
}

func newFakeReviews() *fakeReviews {
	return &fakeReviews{rows: make(map[string]*spacedrep.ReviewState)}
}

func (f *fakeReviews) Get(_ context.Context, userID, itemID string, itemType spacedrep.ItemType) (*spacedrep.ReviewState, error) {
	rs, ok := f.rows[userID+"|"+itemID+"|"+string(itemType)]
	if !ok {
		return nil, nil
	}
	cp := *rs
	return &cp, nil
}

func (f *fakeReviews) Save(_ context.Context, state *spacedrep.ReviewState) error {
	cp := *state
	f.rows[state.UserID+"|"+state.ItemID+"|"+string(state.ItemType)] = &cp
	return nil
}

func (f *fakeReviews) Due(_ context.Context, _ string, _ time.Time) ([]spacedrep.ReviewState, error) {
	return nil, nil
}

type fixture struct {
	svc     *Service
	catalog *fakeCatalog
	prog    *fakeProgress
	reviews *fakeReviews
}

// newFixture seeds two skills: A (3 lessons, no prereqs) and B
// (prereq A). A's threshold is 100, so all three lessons must be done.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := newFakeCatalog()
	ctx := context.Background()

	c.ImportSkill(ctx, catalog.Skill{
		ID: "a", CategoryID: "c1", Name: "A",
		XPReward: 50, MasteryThreshold: 100, Active: true,
	})
	c.ImportSkill(ctx, catalog.Skill{
		ID: "b", CategoryID: "c1", Name: "B",
		XPReward: 50, MasteryThreshold: 80, Active: true,
		Prerequisites: []string{"a"},
	})
	for _, id := range []string{"a1", "a2", "a3"} {
		c.ImportLesson(ctx, catalog.Lesson{ID: id, SkillID: "a", Title: id})
	}
	c.ImportLesson(ctx, catalog.Lesson{ID: "b1", SkillID: "b", Title: "b1"})

	prog := newFakeProgress()
	reviews := newFakeReviews()
	svc := NewService(Config{
		Catalog:     c,
		Progress:    prog,
		Completions: newFakeCompletions(),
		Attempts:    &fakeAttempts{},
		Evaluator:   evaluate.NewEvaluator(nil, evaluate.DefaultConfig()),
		Scheduler:   spacedrep.NewScheduler(reviews),
	})
	return &fixture{svc: svc, catalog: c, prog: prog, reviews: reviews}
}

func TestRecordLessonCompletion_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.RecordLessonCompletion(ctx, "u1", "a1", 60, 90)
	if err != nil {
		t.Fatalf("first completion: %v", err)
	}
	if first.AlreadyCompleted || first.XPAwarded != 50 {
		t.Errorf("first = %+v, want 50 XP", first)
	}
	if first.MasteryLevel != 33 {
		t.Errorf("mastery = %d, want 33 (1 of 3)", first.MasteryLevel)
	}

	second, err := f.svc.RecordLessonCompletion(ctx, "u1", "a1", 10, 50)
	if err != nil {
		t.Fatalf("repeat completion: %v", err)
	}
	if !second.AlreadyCompleted {
		t.Error("repeat not flagged as already completed")
	}
	if second.XPAwarded != 0 {
		t.Errorf("repeat awarded %d XP", second.XPAwarded)
	}
	if second.TotalXP != 50 {
		t.Errorf("TotalXP = %d, want unchanged 50", second.TotalXP)
	}
}

func TestMasteryCascadeUnlocksDependent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var res *CompletionResult
	var err error
	for _, lesson := range []string{"a1", "a2", "a3"} {
		res, err = f.svc.RecordLessonCompletion(ctx, "u1", lesson, 60, 90)
		if err != nil {
			t.Fatalf("complete %s: %v", lesson, err)
		}
	}

	if res.MasteryLevel != 100 {
		t.Errorf("mastery = %d, want 100", res.MasteryLevel)
	}
	if !res.NewlyMastered {
		t.Error("third lesson should cross the mastery threshold")
	}
	if len(res.UnlockedSkills) != 1 || res.UnlockedSkills[0] != "b" {
		t.Errorf("unlocked = %v, want [b]", res.UnlockedSkills)
	}

	bProg, err := f.prog.Get(ctx, "u1", "b")
	if err != nil {
		t.Fatalf("progress for b: %v", err)
	}
	if !bProg.IsUnlocked || bProg.FirstUnlockedAt == nil {
		t.Errorf("b progress = %+v, want unlocked", bProg)
	}

	aProg, _ := f.prog.Get(ctx, "u1", "a")
	if aProg.MasteredAt == nil || !aProg.IsMastered {
		t.Errorf("a progress = %+v, want mastered", aProg)
	}
}

func TestMasteryBelowThresholdDoesNotCascade(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, lesson := range []string{"a1", "a2"} {
		if _, err := f.svc.RecordLessonCompletion(ctx, "u1", lesson, 60, 90); err != nil {
			t.Fatal(err)
		}
	}

	aProg, err := f.prog.Get(ctx, "u1", "a")
	if err != nil {
		t.Fatal(err)
	}
	if aProg.MasteryLevel != 67 {
		t.Errorf("mastery = %d, want 67", aProg.MasteryLevel)
	}
	if aProg.IsMastered {
		t.Error("67%% must not count as mastered at threshold 100")
	}
	if _, err := f.prog.Get(ctx, "u1", "b"); !errors.Is(err, store.ErrNotFound) {
		t.Error("b should not be unlocked yet")
	}
}

func TestMasteryMonotonic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Master skill A, then add a new lesson to its denominator. A
	// recompute drops the level but mastery must not regress.
	for _, lesson := range []string{"a1", "a2", "a3"} {
		if _, err := f.svc.RecordLessonCompletion(ctx, "u1", lesson, 60, 90); err != nil {
			t.Fatal(err)
		}
	}
	f.catalog.ImportLesson(ctx, catalog.Lesson{ID: "a4", SkillID: "a", Title: "a4"})

	if _, err := f.svc.RecordLessonCompletion(ctx, "u1", "a4", 60, 90); err != nil {
		t.Fatal(err)
	}

	aProg, err := f.prog.Get(ctx, "u1", "a")
	if err != nil {
		t.Fatal(err)
	}
	if !aProg.IsMastered {
		t.Error("is_mastered regressed after denominator change")
	}
	if aProg.MasteryLevel != 100 {
		t.Errorf("mastery = %d, want 100 after completing all 4", aProg.MasteryLevel)
	}
}

func TestCompletionCreatesReviewSchedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.RecordLessonCompletion(ctx, "u1", "a1", 60, 90); err != nil {
		t.Fatal(err)
	}

	rs, err := f.reviews.Get(ctx, "u1", "a1", spacedrep.ItemLesson)
	if err != nil || rs == nil {
		t.Fatalf("review state = %v, %v, want created", rs, err)
	}
	if rs.IntervalDays != 1 || rs.EaseFactor != 2.5 {
		t.Errorf("review state = %+v", rs)
	}
}

func TestRecordExerciseAttempt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.catalog.ImportExercise(ctx, catalog.Exercise{
		ID: "ex1", SkillID: "b", Type: catalog.TypeMultipleChoice,
		Question: "Pick", Options: []string{"x", "y"}, CorrectAnswer: "x",
		PassingScore: 70, MaxAttempts: 2,
	})

	wrong, err := f.svc.RecordExerciseAttempt(ctx, "u1", "ex1", "y", 30)
	if err != nil {
		t.Fatalf("wrong attempt: %v", err)
	}
	if wrong.Attempt.AttemptNumber != 1 || wrong.Attempt.Correct {
		t.Errorf("attempt = %+v", wrong.Attempt)
	}
	if wrong.Feedback.Verdict != evaluate.VerdictIncorrect {
		t.Errorf("verdict = %s", wrong.Feedback.Verdict)
	}

	right, err := f.svc.RecordExerciseAttempt(ctx, "u1", "ex1", "x", 20)
	if err != nil {
		t.Fatalf("right attempt: %v", err)
	}
	if right.Attempt.AttemptNumber != 2 || !right.Attempt.Correct {
		t.Errorf("attempt = %+v", right.Attempt)
	}

	// Max attempts (2) is exhausted.
	_, err = f.svc.RecordExerciseAttempt(ctx, "u1", "ex1", "x", 5)
	if !errors.Is(err, ErrAttemptLimit) {
		t.Errorf("err = %v, want ErrAttemptLimit", err)
	}

	rs, err := f.reviews.Get(ctx, "u1", "ex1", spacedrep.ItemExercise)
	if err != nil || rs == nil {
		t.Errorf("correct attempt should create review state, got %v %v", rs, err)
	}
}

func TestUnlockedSkills_ZeroPrereqWithoutProgressRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	unlocked, err := f.svc.UnlockedSkills(ctx, "fresh-user")
	if err != nil {
		t.Fatalf("UnlockedSkills: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0].ID != "a" {
		ids := make([]string, len(unlocked))
		for i, s := range unlocked {
			ids[i] = s.ID
		}
		t.Errorf("unlocked = %v, want [a]", ids)
	}
}

func TestUnlockedSkills_AfterMastery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, lesson := range []string{"a1", "a2", "a3"} {
		if _, err := f.svc.RecordLessonCompletion(ctx, "u1", lesson, 60, 90); err != nil {
			t.Fatal(err)
		}
	}

	unlocked, err := f.svc.UnlockedSkills(ctx, "u1")
	if err != nil {
		t.Fatalf("UnlockedSkills: %v", err)
	}
	ids := make([]string, len(unlocked))
	for i, s := range unlocked {
		ids[i] = s.ID
	}
	slices.Sort(ids)
	if !slices.Equal(ids, []string{"a", "b"}) {
		t.Errorf("unlocked = %v, want [a b]", ids)
	}
}
