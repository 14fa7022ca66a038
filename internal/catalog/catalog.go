// Package catalog defines the content entities the engine consumes:
// categories, skills, lessons, and exercises. The catalog is authored by
// content administrators outside this engine; everything here is
// read-mostly (the one exception is the lesson-content write-through
// performed by the ingestion layer).
package catalog

import "encoding/json"

// Difficulty is a skill's difficulty tier.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Category groups skills for display.
type Category struct {
	ID           string
	Name         string
	DisplayOrder int
	Active       bool
}

// Skill is a unit of competency and a node in the prerequisite DAG.
type Skill struct {
	ID               string
	CategoryID       string
	Name             string
	Difficulty       Difficulty
	XPReward         int
	MasteryThreshold int // percentage, 0-100
	Active           bool
	Prerequisites    []string
}

// Lesson belongs to exactly one skill. Content holds the persisted
// lesson document (validated sections, or a legacy plain string); nil
// means no content has been generated yet.
type Lesson struct {
	ID       string
	SkillID  string
	Title    string
	Position int
	Content  json.RawMessage
}

// ExerciseType distinguishes closed-form types, which are graded
// deterministically, from open-form types, which are delegated to the
// text-generation collaborator.
type ExerciseType string

const (
	TypeMultipleChoice ExerciseType = "multiple_choice"
	TypeTrueFalse      ExerciseType = "true_false"
	TypeShortAnswer    ExerciseType = "short_answer"
	TypeCode           ExerciseType = "code"
)

// ClosedForm reports whether the type has a deterministic grading path.
func (t ExerciseType) ClosedForm() bool {
	return t == TypeMultipleChoice || t == TypeTrueFalse
}

// Exercise belongs to exactly one skill.
type Exercise struct {
	ID            string
	SkillID       string
	Type          ExerciseType
	Question      string
	Options       []string
	CorrectAnswer string
	Rubric        string
	PassingScore  int
	MaxAttempts   int
}
