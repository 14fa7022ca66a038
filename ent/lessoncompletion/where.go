// Code generated by ent, DO NOT EDIT.

package lessoncompletion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEQ(FieldUserID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEQ(FieldLessonID, v))
}

// TimeSpentSecs applies equality check predicate on the "time_spent_secs" field. It's identical to TimeSpentSecsEQ.
func TimeSpentSecs(v int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// ComprehensionScore applies equality check predicate on the "comprehension_score" field. It's identical to ComprehensionScoreEQ.
func ComprehensionScore(v int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEQ(FieldComprehensionScore, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEQ(FieldCompletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldContainsFold(FieldUserID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldContainsFold(FieldLessonID, v))
}

// TimeSpentSecsEQ applies the EQ predicate on the "time_spent_secs" field.
func TimeSpentSecsEQ(v int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsNEQ applies the NEQ predicate on the "time_spent_secs" field.
func TimeSpentSecsNEQ(v int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldNEQ(FieldTimeSpentSecs, v))
}

// TimeSpentSecsIn applies the In predicate on the "time_spent_secs" field.
func TimeSpentSecsIn(vs ...int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsNotIn applies the NotIn predicate on the "time_spent_secs" field.
func TimeSpentSecsNotIn(vs ...int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldNotIn(FieldTimeSpentSecs, vs...))
}

// TimeSpentSecsGT applies the GT predicate on the "time_spent_secs" field.
func TimeSpentSecsGT(v int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldGT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsGTE applies the GTE predicate on the "time_spent_secs" field.
func TimeSpentSecsGTE(v int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldGTE(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLT applies the LT predicate on the "time_spent_secs" field.
func TimeSpentSecsLT(v int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldLT(FieldTimeSpentSecs, v))
}

// TimeSpentSecsLTE applies the LTE predicate on the "time_spent_secs" field.
func TimeSpentSecsLTE(v int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldLTE(FieldTimeSpentSecs, v))
}

// ComprehensionScoreEQ applies the EQ predicate on the "comprehension_score" field.
func ComprehensionScoreEQ(v int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEQ(FieldComprehensionScore, v))
}

// ComprehensionScoreNEQ applies the NEQ predicate on the "comprehension_score" field.
func ComprehensionScoreNEQ(v int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldNEQ(FieldComprehensionScore, v))
}

// ComprehensionScoreIn applies the In predicate on the "comprehension_score" field.
func ComprehensionScoreIn(vs ...int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldIn(FieldComprehensionScore, vs...))
}

// ComprehensionScoreNotIn applies the NotIn predicate on the "comprehension_score" field.
func ComprehensionScoreNotIn(vs ...int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldNotIn(FieldComprehensionScore, vs...))
}

// ComprehensionScoreGT applies the GT predicate on the "comprehension_score" field.
func ComprehensionScoreGT(v int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldGT(FieldComprehensionScore, v))
}

// ComprehensionScoreGTE applies the GTE predicate on the "comprehension_score" field.
func ComprehensionScoreGTE(v int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldGTE(FieldComprehensionScore, v))
}

// ComprehensionScoreLT applies the LT predicate on the "comprehension_score" field.
func ComprehensionScoreLT(v int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldLT(FieldComprehensionScore, v))
}

// ComprehensionScoreLTE applies the LTE predicate on the "comprehension_score" field.
func ComprehensionScoreLTE(v int) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldLTE(FieldComprehensionScore, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.FieldLTE(FieldCompletedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonCompletion) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonCompletion) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonCompletion) predicate.LessonCompletion {
	return predicate.LessonCompletion(sql.NotPredicates(p))
}
