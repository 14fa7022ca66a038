// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Exercise is the predicate function for exercise builders.
type Exercise func(*sql.Selector)

// ExerciseAttempt is the predicate function for exerciseattempt builders.
type ExerciseAttempt func(*sql.Selector)

// LLMRequestLog is the predicate function for llmrequestlog builders.
type LLMRequestLog func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// LessonCompletion is the predicate function for lessoncompletion builders.
type LessonCompletion func(*sql.Selector)

// ReviewSchedule is the predicate function for reviewschedule builders.
type ReviewSchedule func(*sql.Selector)

// Skill is the predicate function for skill builders.
type Skill func(*sql.Selector)

// SkillCategory is the predicate function for skillcategory builders.
type SkillCategory func(*sql.Selector)

// UserSkillProgress is the predicate function for userskillprogress builders.
type UserSkillProgress func(*sql.Selector)
