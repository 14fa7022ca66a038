package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/abhisek/skillforge/internal/catalog"
	"github.com/abhisek/skillforge/internal/llm"
	"github.com/abhisek/skillforge/internal/spacedrep"
)

// ErrNotFound is returned when a referenced row does not exist. Callers
// propagate it rather than defaulting silently.
var ErrNotFound = errors.New("not found")

// Progress is the per-user, per-skill derived progress row.
type Progress struct {
	UserID             string
	SkillID            string
	MasteryLevel       int
	IsUnlocked         bool
	IsMastered         bool
	TotalXPEarned      int
	LessonsCompleted   int
	ExercisesCompleted int
	FirstUnlockedAt    *time.Time
	MasteredAt         *time.Time
	LastPracticedAt    *time.Time
}

// Completion records one finished lesson.
type Completion struct {
	UserID             string
	LessonID           string
	TimeSpentSecs      int
	ComprehensionScore int
	CompletedAt        time.Time
}

// Attempt is one immutable exercise grading record.
type Attempt struct {
	ID            string
	UserID        string
	ExerciseID    string
	AttemptNumber int
	Answer        string
	Score         int
	Correct       bool
	Feedback      json.RawMessage
	TimeSpentSecs int
	SubmittedAt   time.Time
}

// RequestLogEntry is one recorded call to the generation capability.
type RequestLogEntry struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	CreatedAt    time.Time
}

// CatalogRepo reads the authored skill catalog and writes generated
// lesson content back through it.
type CatalogRepo interface {
	Categories(ctx context.Context) ([]catalog.Category, error)
	Skills(ctx context.Context) ([]catalog.Skill, error)
	Skill(ctx context.Context, id string) (*catalog.Skill, error)
	Lesson(ctx context.Context, id string) (*catalog.Lesson, error)
	Exercise(ctx context.Context, id string) (*catalog.Exercise, error)
	SkillLessons(ctx context.Context, skillID string) ([]catalog.Lesson, error)
	SkillExercises(ctx context.Context, skillID string) ([]catalog.Exercise, error)
	SaveLessonContent(ctx context.Context, lessonID string, content json.RawMessage) error

	// Import upserts authored catalog rows. Used by the import command.
	ImportCategory(ctx context.Context, c catalog.Category) error
	ImportSkill(ctx context.Context, s catalog.Skill) error
	ImportLesson(ctx context.Context, l catalog.Lesson) error
	ImportExercise(ctx context.Context, e catalog.Exercise) error
}

// ProgressRepo manages UserSkillProgress rows.
type ProgressRepo interface {
	// Get returns ErrNotFound when no row exists for the pair.
	Get(ctx context.Context, userID, skillID string) (*Progress, error)
	ForUser(ctx context.Context, userID string) ([]Progress, error)
	Upsert(ctx context.Context, p *Progress) error
}

// CompletionRepo manages lesson completion rows.
type CompletionRepo interface {
	// Create inserts a completion. Returns false with no error when a
	// row for the (user, lesson) pair already exists.
	Create(ctx context.Context, c *Completion) (bool, error)
	// CompletedLessonIDs filters lessonIDs down to those the user has
	// completed.
	CompletedLessonIDs(ctx context.Context, userID string, lessonIDs []string) ([]string, error)
}

// AttemptRepo manages the append-only exercise attempt log.
type AttemptRepo interface {
	Append(ctx context.Context, a *Attempt) error
	// LastAttemptNumber returns 0 when the user has never attempted the
	// exercise.
	LastAttemptNumber(ctx context.Context, userID, exerciseID string) (int, error)
	// CorrectExerciseIDs filters exerciseIDs down to those the user has
	// answered correctly at least once.
	CorrectExerciseIDs(ctx context.Context, userID string, exerciseIDs []string) ([]string, error)
	ForExercise(ctx context.Context, userID, exerciseID string) ([]Attempt, error)
}

// ReviewRepo persists spaced-review state. Satisfies spacedrep.Store.
type ReviewRepo interface {
	Get(ctx context.Context, userID, itemID string, itemType spacedrep.ItemType) (*spacedrep.ReviewState, error)
	Save(ctx context.Context, state *spacedrep.ReviewState) error
	Due(ctx context.Context, userID string, now time.Time) ([]spacedrep.ReviewState, error)
}

// RequestLogRepo persists LLM request records. Satisfies llm.RequestLog.
type RequestLogRepo interface {
	Append(ctx context.Context, rec llm.RequestRecord) error
	Recent(ctx context.Context, limit int) ([]RequestLogEntry, error)
}
