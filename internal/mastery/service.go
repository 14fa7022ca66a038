package mastery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/evaluate"
	"github.com/abhisek/skillforge/internal/skillgraph"
	"github.com/abhisek/skillforge/internal/spacedrep"
	"github.com/abhisek/skillforge/internal/store"
	"github.com/abhisek/skillforge/internal/xp"
)

// ErrAttemptLimit is returned when an exercise's max attempt count has
// been exhausted.
var ErrAttemptLimit = errors.New("attempt limit reached")

// Service is the mastery tracker: it records completions and attempts,
// recomputes derived progress, and cascades unlocks on mastery
// transitions.
type Service struct {
	catalog     store.CatalogRepo
	progress    store.ProgressRepo
	completions store.CompletionRepo
	attempts    store.AttemptRepo
	evaluator   *evaluate.Evaluator
	scheduler   *spacedrep.Scheduler
	now         func() time.Time
}

// Config wires the service's collaborators. Now defaults to time.Now.
type Config struct {
	Catalog     store.CatalogRepo
	Progress    store.ProgressRepo
	Completions store.CompletionRepo
	Attempts    store.AttemptRepo
	Evaluator   *evaluate.Evaluator
	Scheduler   *spacedrep.Scheduler
	Now         func() time.Time
}

// NewService creates a mastery tracker.
func NewService(cfg Config) *Service {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		catalog:     cfg.Catalog,
		progress:    cfg.Progress,
		completions: cfg.Completions,
		attempts:    cfg.Attempts,
		evaluator:   cfg.Evaluator,
		scheduler:   cfg.Scheduler,
		now:         now,
	}
}

// CompletionResult reports the effect of one lesson completion.
type CompletionResult struct {
	AlreadyCompleted bool
	XPAwarded        int
	TotalXP          int
	Level            int
	MasteryLevel     int
	NewlyMastered    bool
	UnlockedSkills   []string
}

// AttemptResult reports the effect of one exercise attempt.
type AttemptResult struct {
	Attempt        store.Attempt
	Feedback       *evaluate.Feedback
	MasteryLevel   int
	NewlyMastered  bool
	UnlockedSkills []string
}

// RecordLessonCompletion marks a lesson finished and recomputes the
// owning skill's progress. Re-completing an already-completed lesson is
// a no-op write: no XP is re-awarded and mastery cannot regress.
func (s *Service) RecordLessonCompletion(ctx context.Context, userID, lessonID string, timeSpentSecs, comprehensionScore int) (*CompletionResult, error) {
	lesson, err := s.catalog.Lesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	skill, err := s.catalog.Skill(ctx, lesson.SkillID)
	if err != nil {
		return nil, err
	}

	created, err := s.completions.Create(ctx, &store.Completion{
		UserID:             userID,
		LessonID:           lessonID,
		TimeSpentSecs:      timeSpentSecs,
		ComprehensionScore: comprehensionScore,
		CompletedAt:        s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("record completion: %w", err)
	}

	if !created {
		prog, err := s.progress.Get(ctx, userID, skill.ID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		res := &CompletionResult{AlreadyCompleted: true}
		if prog != nil {
			res.MasteryLevel = prog.MasteryLevel
			res.TotalXP = prog.TotalXPEarned
			res.Level = xp.Level(prog.TotalXPEarned)
		}
		return res, nil
	}

	rec, err := s.recompute(ctx, userID, skill, skill.XPReward)
	if err != nil {
		return nil, err
	}

	if s.scheduler != nil {
		if err := s.scheduler.Ensure(ctx, userID, lessonID, spacedrep.ItemLesson, s.now()); err != nil {
			return nil, err
		}
	}

	return &CompletionResult{
		XPAwarded:      skill.XPReward,
		TotalXP:        rec.progress.TotalXPEarned,
		Level:          xp.Level(rec.progress.TotalXPEarned),
		MasteryLevel:   rec.progress.MasteryLevel,
		NewlyMastered:  rec.newlyMastered,
		UnlockedSkills: rec.unlocked,
	}, nil
}

// RecordExerciseAttempt grades a submission, appends an immutable
// attempt record, and recomputes progress. Exhausted attempts return
// ErrAttemptLimit before any grading happens.
func (s *Service) RecordExerciseAttempt(ctx context.Context, userID, exerciseID, answer string, timeSpentSecs int) (*AttemptResult, error) {
	ex, err := s.catalog.Exercise(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	skill, err := s.catalog.Skill(ctx, ex.SkillID)
	if err != nil {
		return nil, err
	}

	last, err := s.attempts.LastAttemptNumber(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}
	if ex.MaxAttempts > 0 && last >= ex.MaxAttempts {
		return nil, fmt.Errorf("exercise %s: %w (%d of %d)", exerciseID, ErrAttemptLimit, last, ex.MaxAttempts)
	}

	feedback, err := s.evaluator.Evaluate(ctx, *ex, answer)
	if err != nil {
		return nil, err
	}

	feedbackJSON, err := json.Marshal(feedback)
	if err != nil {
		return nil, fmt.Errorf("encode feedback: %w", err)
	}

	attempt := store.Attempt{
		UserID:        userID,
		ExerciseID:    exerciseID,
		AttemptNumber: last + 1,
		Answer:        answer,
		Score:         feedback.Score,
		Correct:       feedback.UnlockNext,
		Feedback:      feedbackJSON,
		TimeSpentSecs: timeSpentSecs,
		SubmittedAt:   s.now(),
	}
	if err := s.attempts.Append(ctx, &attempt); err != nil {
		return nil, err
	}

	rec, err := s.recompute(ctx, userID, skill, 0)
	if err != nil {
		return nil, err
	}

	if feedback.UnlockNext && s.scheduler != nil {
		if err := s.scheduler.Ensure(ctx, userID, exerciseID, spacedrep.ItemExercise, s.now()); err != nil {
			return nil, err
		}
	}

	return &AttemptResult{
		Attempt:        attempt,
		Feedback:       feedback,
		MasteryLevel:   rec.progress.MasteryLevel,
		NewlyMastered:  rec.newlyMastered,
		UnlockedSkills: rec.unlocked,
	}, nil
}

type recomputeResult struct {
	progress      *store.Progress
	newlyMastered bool
	unlocked      []string
}

// recompute derives the skill's progress row from the full completed
// set, never from incremental deltas, so retried or out-of-order writes
// always converge on the same numbers.
func (s *Service) recompute(ctx context.Context, userID string, skill *catalog.Skill, xpDelta int) (*recomputeResult, error) {
	lessons, err := s.catalog.SkillLessons(ctx, skill.ID)
	if err != nil {
		return nil, err
	}
	exercises, err := s.catalog.SkillExercises(ctx, skill.ID)
	if err != nil {
		return nil, err
	}

	lessonIDs := make([]string, len(lessons))
	for i, l := range lessons {
		lessonIDs[i] = l.ID
	}
	exerciseIDs := make([]string, len(exercises))
	for i, e := range exercises {
		exerciseIDs[i] = e.ID
	}

	completedLessons, err := s.completions.CompletedLessonIDs(ctx, userID, lessonIDs)
	if err != nil {
		return nil, err
	}
	correctExercises, err := s.attempts.CorrectExerciseIDs(ctx, userID, exerciseIDs)
	if err != nil {
		return nil, err
	}

	total := len(lessons) + len(exercises)
	completed := len(completedLessons) + len(correctExercises)
	level := 0
	if total > 0 {
		level = int(math.Round(100 * float64(completed) / float64(total)))
	}

	now := s.now()
	prog, err := s.progress.Get(ctx, userID, skill.ID)
	if errors.Is(err, store.ErrNotFound) {
		prog = &store.Progress{UserID: userID, SkillID: skill.ID}
	} else if err != nil {
		return nil, err
	}

	// Practicing a skill implies it is unlocked.
	if !prog.IsUnlocked {
		prog.IsUnlocked = true
		prog.FirstUnlockedAt = &now
	}
	prog.MasteryLevel = level
	prog.LessonsCompleted = len(completedLessons)
	prog.ExercisesCompleted = len(correctExercises)
	prog.TotalXPEarned += xpDelta
	prog.LastPracticedAt = &now

	newlyMastered := false
	if !prog.IsMastered && level >= skill.MasteryThreshold {
		prog.IsMastered = true
		prog.MasteredAt = &now
		newlyMastered = true
	}

	if err := s.progress.Upsert(ctx, prog); err != nil {
		return nil, err
	}

	res := &recomputeResult{progress: prog, newlyMastered: newlyMastered}
	if newlyMastered {
		unlocked, err := s.cascadeUnlocks(ctx, userID, skill.ID)
		if err != nil {
			return nil, err
		}
		res.unlocked = unlocked
	}
	return res, nil
}

// cascadeUnlocks unlocks every dependent of the just-mastered skill
// whose full prerequisite set is now satisfied. The just-mastered skill
// is passed as an override so the cascade does not depend on reading
// back the progress row written a moment ago.
func (s *Service) cascadeUnlocks(ctx context.Context, userID, masteredSkillID string) ([]string, error) {
	graph, err := s.loadGraph(ctx)
	if err != nil {
		return nil, err
	}

	mastered, err := s.masteredSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	var unlocked []string
	for _, dep := range graph.Dependents(masteredSkillID) {
		if !graph.IsUnlockable(dep.ID, mastered, masteredSkillID) {
			continue
		}

		now := s.now()
		prog, err := s.progress.Get(ctx, userID, dep.ID)
		if errors.Is(err, store.ErrNotFound) {
			prog = &store.Progress{UserID: userID, SkillID: dep.ID}
		} else if err != nil {
			return nil, err
		}
		if prog.IsUnlocked {
			continue
		}

		prog.IsUnlocked = true
		prog.FirstUnlockedAt = &now
		if err := s.progress.Upsert(ctx, prog); err != nil {
			return nil, err
		}
		unlocked = append(unlocked, dep.ID)
	}
	return unlocked, nil
}

// UnlockedSkills returns every skill the user can currently practice:
// explicitly unlocked rows plus skills whose prerequisites are all
// mastered. Zero-prereq skills count as unlocked without needing a
// progress row. One batched progress load and one in-memory graph pass.
func (s *Service) UnlockedSkills(ctx context.Context, userID string) ([]catalog.Skill, error) {
	graph, err := s.loadGraph(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.progress.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	unlockedRows := make(map[string]bool, len(rows))
	mastered := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.IsUnlocked {
			unlockedRows[row.SkillID] = true
		}
		if row.IsMastered {
			mastered[row.SkillID] = true
		}
	}

	var out []catalog.Skill
	for _, skill := range graph.Skills() {
		if !skill.Active {
			continue
		}
		if unlockedRows[skill.ID] || graph.IsUnlockable(skill.ID, mastered, "") {
			out = append(out, skill)
		}
	}
	return out, nil
}

func (s *Service) masteredSet(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := s.progress.ForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	mastered := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.IsMastered {
			mastered[row.SkillID] = true
		}
	}
	return mastered, nil
}

func (s *Service) loadGraph(ctx context.Context) (*skillgraph.Graph, error) {
	skills, err := s.catalog.Skills(ctx)
	if err != nil {
		return nil, err
	}
	graph, err := skillgraph.Build(skills)
	if err != nil {
		return nil, fmt.Errorf("build skill graph: %w", err)
	}
	return graph, nil
}
