// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExercisesColumns holds the columns for the "exercises" table.
	ExercisesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"multiple_choice", "true_false", "short_answer", "code"}},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "correct_answer", Type: field.TypeString, Nullable: true},
		{Name: "rubric", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "passing_score", Type: field.TypeInt, Default: 70},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
	}
	// ExercisesTable holds the schema information for the "exercises" table.
	ExercisesTable = &schema.Table{
		Name:       "exercises",
		Columns:    ExercisesColumns,
		PrimaryKey: []*schema.Column{ExercisesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exercise_skill_id",
				Unique:  false,
				Columns: []*schema.Column{ExercisesColumns[1]},
			},
		},
	}
	// ExerciseAttemptsColumns holds the columns for the "exercise_attempts" table.
	ExerciseAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "exercise_id", Type: field.TypeString},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "score", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "feedback", Type: field.TypeJSON, Nullable: true},
		{Name: "time_spent_secs", Type: field.TypeInt, Default: 0},
		{Name: "submitted_at", Type: field.TypeTime},
	}
	// ExerciseAttemptsTable holds the schema information for the "exercise_attempts" table.
	ExerciseAttemptsTable = &schema.Table{
		Name:       "exercise_attempts",
		Columns:    ExerciseAttemptsColumns,
		PrimaryKey: []*schema.Column{ExerciseAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exerciseattempt_user_id_exercise_id",
				Unique:  false,
				Columns: []*schema.Column{ExerciseAttemptsColumns[1], ExerciseAttemptsColumns[2]},
			},
			{
				Name:    "exerciseattempt_user_id_exercise_id_attempt_number",
				Unique:  true,
				Columns: []*schema.Column{ExerciseAttemptsColumns[1], ExerciseAttemptsColumns[2], ExerciseAttemptsColumns[3]},
			},
		},
	}
	// LlmRequestLogsColumns holds the columns for the "llm_request_logs" table.
	LlmRequestLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LlmRequestLogsTable holds the schema information for the "llm_request_logs" table.
	LlmRequestLogsTable = &schema.Table{
		Name:       "llm_request_logs",
		Columns:    LlmRequestLogsColumns,
		PrimaryKey: []*schema.Column{LlmRequestLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestlog_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestLogsColumns[3]},
			},
			{
				Name:    "llmrequestlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestLogsColumns[9]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "content", Type: field.TypeJSON, Nullable: true},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_skill_id",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[1]},
			},
		},
	}
	// LessonCompletionsColumns holds the columns for the "lesson_completions" table.
	LessonCompletionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "time_spent_secs", Type: field.TypeInt, Default: 0},
		{Name: "comprehension_score", Type: field.TypeInt, Default: 0},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// LessonCompletionsTable holds the schema information for the "lesson_completions" table.
	LessonCompletionsTable = &schema.Table{
		Name:       "lesson_completions",
		Columns:    LessonCompletionsColumns,
		PrimaryKey: []*schema.Column{LessonCompletionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessoncompletion_user_id_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{LessonCompletionsColumns[1], LessonCompletionsColumns[2]},
			},
			{
				Name:    "lessoncompletion_user_id",
				Unique:  false,
				Columns: []*schema.Column{LessonCompletionsColumns[1]},
			},
		},
	}
	// ReviewSchedulesColumns holds the columns for the "review_schedules" table.
	ReviewSchedulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "item_type", Type: field.TypeEnum, Enums: []string{"lesson", "exercise"}},
		{Name: "review_at", Type: field.TypeTime},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
	}
	// ReviewSchedulesTable holds the schema information for the "review_schedules" table.
	ReviewSchedulesTable = &schema.Table{
		Name:       "review_schedules",
		Columns:    ReviewSchedulesColumns,
		PrimaryKey: []*schema.Column{ReviewSchedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewschedule_user_id_item_id_item_type",
				Unique:  true,
				Columns: []*schema.Column{ReviewSchedulesColumns[1], ReviewSchedulesColumns[2], ReviewSchedulesColumns[3]},
			},
			{
				Name:    "reviewschedule_user_id_review_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewSchedulesColumns[1], ReviewSchedulesColumns[4]},
			},
		},
	}
	// SkillsColumns holds the columns for the "skills" table.
	SkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "category_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeEnum, Enums: []string{"beginner", "intermediate", "advanced"}, Default: "beginner"},
		{Name: "xp_reward", Type: field.TypeInt, Default: 50},
		{Name: "mastery_threshold", Type: field.TypeInt, Default: 80},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "prerequisites", Type: field.TypeJSON, Nullable: true},
	}
	// SkillsTable holds the schema information for the "skills" table.
	SkillsTable = &schema.Table{
		Name:       "skills",
		Columns:    SkillsColumns,
		PrimaryKey: []*schema.Column{SkillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skill_category_id",
				Unique:  false,
				Columns: []*schema.Column{SkillsColumns[1]},
			},
		},
	}
	// SkillCategoriesColumns holds the columns for the "skill_categories" table.
	SkillCategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// SkillCategoriesTable holds the schema information for the "skill_categories" table.
	SkillCategoriesTable = &schema.Table{
		Name:       "skill_categories",
		Columns:    SkillCategoriesColumns,
		PrimaryKey: []*schema.Column{SkillCategoriesColumns[0]},
	}
	// UserSkillProgressesColumns holds the columns for the "user_skill_progresses" table.
	UserSkillProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "mastery_level", Type: field.TypeInt, Default: 0},
		{Name: "is_unlocked", Type: field.TypeBool, Default: false},
		{Name: "is_mastered", Type: field.TypeBool, Default: false},
		{Name: "total_xp_earned", Type: field.TypeInt, Default: 0},
		{Name: "lessons_completed", Type: field.TypeInt, Default: 0},
		{Name: "exercises_completed", Type: field.TypeInt, Default: 0},
		{Name: "first_unlocked_at", Type: field.TypeTime, Nullable: true},
		{Name: "mastered_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_practiced_at", Type: field.TypeTime, Nullable: true},
	}
	// UserSkillProgressesTable holds the schema information for the "user_skill_progresses" table.
	UserSkillProgressesTable = &schema.Table{
		Name:       "user_skill_progresses",
		Columns:    UserSkillProgressesColumns,
		PrimaryKey: []*schema.Column{UserSkillProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userskillprogress_user_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{UserSkillProgressesColumns[1], UserSkillProgressesColumns[2]},
			},
			{
				Name:    "userskillprogress_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSkillProgressesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExercisesTable,
		ExerciseAttemptsTable,
		LlmRequestLogsTable,
		LessonsTable,
		LessonCompletionsTable,
		ReviewSchedulesTable,
		SkillsTable,
		SkillCategoriesTable,
		UserSkillProgressesTable,
	}
)

func init() {
}
