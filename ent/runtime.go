// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/skillforge/ent/exercise"
	"github.com/abhisek/skillforge/ent/exerciseattempt"
	"github.com/abhisek/skillforge/ent/lesson"
	"github.com/abhisek/skillforge/ent/lessoncompletion"
	"github.com/abhisek/skillforge/ent/llmrequestlog"
	"github.com/abhisek/skillforge/ent/reviewschedule"
	"github.com/abhisek/skillforge/ent/schema"
	"github.com/abhisek/skillforge/ent/skill"
	"github.com/abhisek/skillforge/ent/skillcategory"
	"github.com/abhisek/skillforge/ent/userskillprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	exerciseFields := schema.Exercise{}.Fields()
	_ = exerciseFields
	// exerciseDescSkillID is the schema descriptor for skill_id field.
	exerciseDescSkillID := exerciseFields[1].Descriptor()
	// exercise.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	exercise.SkillIDValidator = exerciseDescSkillID.Validators[0].(func(string) error)
	// exerciseDescQuestion is the schema descriptor for question field.
	exerciseDescQuestion := exerciseFields[3].Descriptor()
	// exercise.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	exercise.QuestionValidator = exerciseDescQuestion.Validators[0].(func(string) error)
	// exerciseDescPassingScore is the schema descriptor for passing_score field.
	exerciseDescPassingScore := exerciseFields[7].Descriptor()
	// exercise.DefaultPassingScore holds the default value on creation for the passing_score field.
	exercise.DefaultPassingScore = exerciseDescPassingScore.Default.(int)
	// exerciseDescMaxAttempts is the schema descriptor for max_attempts field.
	exerciseDescMaxAttempts := exerciseFields[8].Descriptor()
	// exercise.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	exercise.DefaultMaxAttempts = exerciseDescMaxAttempts.Default.(int)
	// exerciseDescID is the schema descriptor for id field.
	exerciseDescID := exerciseFields[0].Descriptor()
	// exercise.IDValidator is a validator for the "id" field. It is called by the builders before save.
	exercise.IDValidator = exerciseDescID.Validators[0].(func(string) error)
	exerciseattemptFields := schema.ExerciseAttempt{}.Fields()
	_ = exerciseattemptFields
	// exerciseattemptDescUserID is the schema descriptor for user_id field.
	exerciseattemptDescUserID := exerciseattemptFields[1].Descriptor()
	// exerciseattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	exerciseattempt.UserIDValidator = exerciseattemptDescUserID.Validators[0].(func(string) error)
	// exerciseattemptDescExerciseID is the schema descriptor for exercise_id field.
	exerciseattemptDescExerciseID := exerciseattemptFields[2].Descriptor()
	// exerciseattempt.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	exerciseattempt.ExerciseIDValidator = exerciseattemptDescExerciseID.Validators[0].(func(string) error)
	// exerciseattemptDescAttemptNumber is the schema descriptor for attempt_number field.
	exerciseattemptDescAttemptNumber := exerciseattemptFields[3].Descriptor()
	// exerciseattempt.AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	exerciseattempt.AttemptNumberValidator = exerciseattemptDescAttemptNumber.Validators[0].(func(int) error)
	// exerciseattemptDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	exerciseattemptDescTimeSpentSecs := exerciseattemptFields[8].Descriptor()
	// exerciseattempt.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	exerciseattempt.DefaultTimeSpentSecs = exerciseattemptDescTimeSpentSecs.Default.(int)
	// exerciseattemptDescSubmittedAt is the schema descriptor for submitted_at field.
	exerciseattemptDescSubmittedAt := exerciseattemptFields[9].Descriptor()
	// exerciseattempt.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	exerciseattempt.DefaultSubmittedAt = exerciseattemptDescSubmittedAt.Default.(func() time.Time)
	// exerciseattemptDescID is the schema descriptor for id field.
	exerciseattemptDescID := exerciseattemptFields[0].Descriptor()
	// exerciseattempt.IDValidator is a validator for the "id" field. It is called by the builders before save.
	exerciseattempt.IDValidator = exerciseattemptDescID.Validators[0].(func(string) error)
	llmrequestlogFields := schema.LLMRequestLog{}.Fields()
	_ = llmrequestlogFields
	// llmrequestlogDescProvider is the schema descriptor for provider field.
	llmrequestlogDescProvider := llmrequestlogFields[0].Descriptor()
	// llmrequestlog.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestlog.ProviderValidator = llmrequestlogDescProvider.Validators[0].(func(string) error)
	// llmrequestlogDescPurpose is the schema descriptor for purpose field.
	llmrequestlogDescPurpose := llmrequestlogFields[2].Descriptor()
	// llmrequestlog.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestlog.DefaultPurpose = llmrequestlogDescPurpose.Default.(string)
	// llmrequestlogDescInputTokens is the schema descriptor for input_tokens field.
	llmrequestlogDescInputTokens := llmrequestlogFields[3].Descriptor()
	// llmrequestlog.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestlog.DefaultInputTokens = llmrequestlogDescInputTokens.Default.(int)
	// llmrequestlogDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequestlogDescOutputTokens := llmrequestlogFields[4].Descriptor()
	// llmrequestlog.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestlog.DefaultOutputTokens = llmrequestlogDescOutputTokens.Default.(int)
	// llmrequestlogDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequestlogDescLatencyMs := llmrequestlogFields[5].Descriptor()
	// llmrequestlog.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestlog.DefaultLatencyMs = llmrequestlogDescLatencyMs.Default.(int64)
	// llmrequestlogDescCreatedAt is the schema descriptor for created_at field.
	llmrequestlogDescCreatedAt := llmrequestlogFields[8].Descriptor()
	// llmrequestlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequestlog.DefaultCreatedAt = llmrequestlogDescCreatedAt.Default.(func() time.Time)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescSkillID is the schema descriptor for skill_id field.
	lessonDescSkillID := lessonFields[1].Descriptor()
	// lesson.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	lesson.SkillIDValidator = lessonDescSkillID.Validators[0].(func(string) error)
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[2].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescPosition is the schema descriptor for position field.
	lessonDescPosition := lessonFields[3].Descriptor()
	// lesson.DefaultPosition holds the default value on creation for the position field.
	lesson.DefaultPosition = lessonDescPosition.Default.(int)
	// lessonDescID is the schema descriptor for id field.
	lessonDescID := lessonFields[0].Descriptor()
	// lesson.IDValidator is a validator for the "id" field. It is called by the builders before save.
	lesson.IDValidator = lessonDescID.Validators[0].(func(string) error)
	lessoncompletionFields := schema.LessonCompletion{}.Fields()
	_ = lessoncompletionFields
	// lessoncompletionDescUserID is the schema descriptor for user_id field.
	lessoncompletionDescUserID := lessoncompletionFields[1].Descriptor()
	// lessoncompletion.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	lessoncompletion.UserIDValidator = lessoncompletionDescUserID.Validators[0].(func(string) error)
	// lessoncompletionDescLessonID is the schema descriptor for lesson_id field.
	lessoncompletionDescLessonID := lessoncompletionFields[2].Descriptor()
	// lessoncompletion.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessoncompletion.LessonIDValidator = lessoncompletionDescLessonID.Validators[0].(func(string) error)
	// lessoncompletionDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	lessoncompletionDescTimeSpentSecs := lessoncompletionFields[3].Descriptor()
	// lessoncompletion.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	lessoncompletion.DefaultTimeSpentSecs = lessoncompletionDescTimeSpentSecs.Default.(int)
	// lessoncompletionDescComprehensionScore is the schema descriptor for comprehension_score field.
	lessoncompletionDescComprehensionScore := lessoncompletionFields[4].Descriptor()
	// lessoncompletion.DefaultComprehensionScore holds the default value on creation for the comprehension_score field.
	lessoncompletion.DefaultComprehensionScore = lessoncompletionDescComprehensionScore.Default.(int)
	// lessoncompletionDescCompletedAt is the schema descriptor for completed_at field.
	lessoncompletionDescCompletedAt := lessoncompletionFields[5].Descriptor()
	// lessoncompletion.DefaultCompletedAt holds the default value on creation for the completed_at field.
	lessoncompletion.DefaultCompletedAt = lessoncompletionDescCompletedAt.Default.(func() time.Time)
	// lessoncompletionDescID is the schema descriptor for id field.
	lessoncompletionDescID := lessoncompletionFields[0].Descriptor()
	// lessoncompletion.IDValidator is a validator for the "id" field. It is called by the builders before save.
	lessoncompletion.IDValidator = lessoncompletionDescID.Validators[0].(func(string) error)
	reviewscheduleFields := schema.ReviewSchedule{}.Fields()
	_ = reviewscheduleFields
	// reviewscheduleDescUserID is the schema descriptor for user_id field.
	reviewscheduleDescUserID := reviewscheduleFields[1].Descriptor()
	// reviewschedule.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewschedule.UserIDValidator = reviewscheduleDescUserID.Validators[0].(func(string) error)
	// reviewscheduleDescItemID is the schema descriptor for item_id field.
	reviewscheduleDescItemID := reviewscheduleFields[2].Descriptor()
	// reviewschedule.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewschedule.ItemIDValidator = reviewscheduleDescItemID.Validators[0].(func(string) error)
	// reviewscheduleDescEaseFactor is the schema descriptor for ease_factor field.
	reviewscheduleDescEaseFactor := reviewscheduleFields[5].Descriptor()
	// reviewschedule.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	reviewschedule.DefaultEaseFactor = reviewscheduleDescEaseFactor.Default.(float64)
	// reviewscheduleDescIntervalDays is the schema descriptor for interval_days field.
	reviewscheduleDescIntervalDays := reviewscheduleFields[6].Descriptor()
	// reviewschedule.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewschedule.DefaultIntervalDays = reviewscheduleDescIntervalDays.Default.(int)
	// reviewscheduleDescRepetitions is the schema descriptor for repetitions field.
	reviewscheduleDescRepetitions := reviewscheduleFields[7].Descriptor()
	// reviewschedule.DefaultRepetitions holds the default value on creation for the repetitions field.
	reviewschedule.DefaultRepetitions = reviewscheduleDescRepetitions.Default.(int)
	// reviewscheduleDescID is the schema descriptor for id field.
	reviewscheduleDescID := reviewscheduleFields[0].Descriptor()
	// reviewschedule.IDValidator is a validator for the "id" field. It is called by the builders before save.
	reviewschedule.IDValidator = reviewscheduleDescID.Validators[0].(func(string) error)
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescCategoryID is the schema descriptor for category_id field.
	skillDescCategoryID := skillFields[1].Descriptor()
	// skill.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	skill.CategoryIDValidator = skillDescCategoryID.Validators[0].(func(string) error)
	// skillDescName is the schema descriptor for name field.
	skillDescName := skillFields[2].Descriptor()
	// skill.NameValidator is a validator for the "name" field. It is called by the builders before save.
	skill.NameValidator = skillDescName.Validators[0].(func(string) error)
	// skillDescXpReward is the schema descriptor for xp_reward field.
	skillDescXpReward := skillFields[4].Descriptor()
	// skill.DefaultXpReward holds the default value on creation for the xp_reward field.
	skill.DefaultXpReward = skillDescXpReward.Default.(int)
	// skillDescMasteryThreshold is the schema descriptor for mastery_threshold field.
	skillDescMasteryThreshold := skillFields[5].Descriptor()
	// skill.DefaultMasteryThreshold holds the default value on creation for the mastery_threshold field.
	skill.DefaultMasteryThreshold = skillDescMasteryThreshold.Default.(int)
	// skillDescActive is the schema descriptor for active field.
	skillDescActive := skillFields[6].Descriptor()
	// skill.DefaultActive holds the default value on creation for the active field.
	skill.DefaultActive = skillDescActive.Default.(bool)
	// skillDescID is the schema descriptor for id field.
	skillDescID := skillFields[0].Descriptor()
	// skill.IDValidator is a validator for the "id" field. It is called by the builders before save.
	skill.IDValidator = skillDescID.Validators[0].(func(string) error)
	skillcategoryFields := schema.SkillCategory{}.Fields()
	_ = skillcategoryFields
	// skillcategoryDescName is the schema descriptor for name field.
	skillcategoryDescName := skillcategoryFields[1].Descriptor()
	// skillcategory.NameValidator is a validator for the "name" field. It is called by the builders before save.
	skillcategory.NameValidator = skillcategoryDescName.Validators[0].(func(string) error)
	// skillcategoryDescDisplayOrder is the schema descriptor for display_order field.
	skillcategoryDescDisplayOrder := skillcategoryFields[2].Descriptor()
	// skillcategory.DefaultDisplayOrder holds the default value on creation for the display_order field.
	skillcategory.DefaultDisplayOrder = skillcategoryDescDisplayOrder.Default.(int)
	// skillcategoryDescActive is the schema descriptor for active field.
	skillcategoryDescActive := skillcategoryFields[3].Descriptor()
	// skillcategory.DefaultActive holds the default value on creation for the active field.
	skillcategory.DefaultActive = skillcategoryDescActive.Default.(bool)
	// skillcategoryDescID is the schema descriptor for id field.
	skillcategoryDescID := skillcategoryFields[0].Descriptor()
	// skillcategory.IDValidator is a validator for the "id" field. It is called by the builders before save.
	skillcategory.IDValidator = skillcategoryDescID.Validators[0].(func(string) error)
	userskillprogressFields := schema.UserSkillProgress{}.Fields()
	_ = userskillprogressFields
	// userskillprogressDescUserID is the schema descriptor for user_id field.
	userskillprogressDescUserID := userskillprogressFields[1].Descriptor()
	// userskillprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userskillprogress.UserIDValidator = userskillprogressDescUserID.Validators[0].(func(string) error)
	// userskillprogressDescSkillID is the schema descriptor for skill_id field.
	userskillprogressDescSkillID := userskillprogressFields[2].Descriptor()
	// userskillprogress.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	userskillprogress.SkillIDValidator = userskillprogressDescSkillID.Validators[0].(func(string) error)
	// userskillprogressDescMasteryLevel is the schema descriptor for mastery_level field.
	userskillprogressDescMasteryLevel := userskillprogressFields[3].Descriptor()
	// userskillprogress.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	userskillprogress.DefaultMasteryLevel = userskillprogressDescMasteryLevel.Default.(int)
	// userskillprogressDescIsUnlocked is the schema descriptor for is_unlocked field.
	userskillprogressDescIsUnlocked := userskillprogressFields[4].Descriptor()
	// userskillprogress.DefaultIsUnlocked holds the default value on creation for the is_unlocked field.
	userskillprogress.DefaultIsUnlocked = userskillprogressDescIsUnlocked.Default.(bool)
	// userskillprogressDescIsMastered is the schema descriptor for is_mastered field.
	userskillprogressDescIsMastered := userskillprogressFields[5].Descriptor()
	// userskillprogress.DefaultIsMastered holds the default value on creation for the is_mastered field.
	userskillprogress.DefaultIsMastered = userskillprogressDescIsMastered.Default.(bool)
	// userskillprogressDescTotalXpEarned is the schema descriptor for total_xp_earned field.
	userskillprogressDescTotalXpEarned := userskillprogressFields[6].Descriptor()
	// userskillprogress.DefaultTotalXpEarned holds the default value on creation for the total_xp_earned field.
	userskillprogress.DefaultTotalXpEarned = userskillprogressDescTotalXpEarned.Default.(int)
	// userskillprogressDescLessonsCompleted is the schema descriptor for lessons_completed field.
	userskillprogressDescLessonsCompleted := userskillprogressFields[7].Descriptor()
	// userskillprogress.DefaultLessonsCompleted holds the default value on creation for the lessons_completed field.
	userskillprogress.DefaultLessonsCompleted = userskillprogressDescLessonsCompleted.Default.(int)
	// userskillprogressDescExercisesCompleted is the schema descriptor for exercises_completed field.
	userskillprogressDescExercisesCompleted := userskillprogressFields[8].Descriptor()
	// userskillprogress.DefaultExercisesCompleted holds the default value on creation for the exercises_completed field.
	userskillprogress.DefaultExercisesCompleted = userskillprogressDescExercisesCompleted.Default.(int)
	// userskillprogressDescID is the schema descriptor for id field.
	userskillprogressDescID := userskillprogressFields[0].Descriptor()
	// userskillprogress.IDValidator is a validator for the "id" field. It is called by the builders before save.
	userskillprogress.IDValidator = userskillprogressDescID.Validators[0].(func(string) error)
}
