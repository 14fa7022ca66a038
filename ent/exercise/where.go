// Code generated by ent, DO NOT EDIT.

package exercise

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContainsFold(FieldID, id))
}

// SkillID applies equality check predicate on the "skill_id" field. It's identical to SkillIDEQ.
func SkillID(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldSkillID, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldQuestion, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldCorrectAnswer, v))
}

// Rubric applies equality check predicate on the "rubric" field. It's identical to RubricEQ.
func Rubric(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldRubric, v))
}

// PassingScore applies equality check predicate on the "passing_score" field. It's identical to PassingScoreEQ.
func PassingScore(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldPassingScore, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldMaxAttempts, v))
}

// SkillIDEQ applies the EQ predicate on the "skill_id" field.
func SkillIDEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldSkillID, v))
}

// SkillIDNEQ applies the NEQ predicate on the "skill_id" field.
func SkillIDNEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldSkillID, v))
}

// SkillIDIn applies the In predicate on the "skill_id" field.
func SkillIDIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldSkillID, vs...))
}

// SkillIDNotIn applies the NotIn predicate on the "skill_id" field.
func SkillIDNotIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldSkillID, vs...))
}

// SkillIDGT applies the GT predicate on the "skill_id" field.
func SkillIDGT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldSkillID, v))
}

// SkillIDGTE applies the GTE predicate on the "skill_id" field.
func SkillIDGTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldSkillID, v))
}

// SkillIDLT applies the LT predicate on the "skill_id" field.
func SkillIDLT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldSkillID, v))
}

// SkillIDLTE applies the LTE predicate on the "skill_id" field.
func SkillIDLTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldSkillID, v))
}

// SkillIDContains applies the Contains predicate on the "skill_id" field.
func SkillIDContains(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContains(FieldSkillID, v))
}

// SkillIDHasPrefix applies the HasPrefix predicate on the "skill_id" field.
func SkillIDHasPrefix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasPrefix(FieldSkillID, v))
}

// SkillIDHasSuffix applies the HasSuffix predicate on the "skill_id" field.
func SkillIDHasSuffix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasSuffix(FieldSkillID, v))
}

// SkillIDEqualFold applies the EqualFold predicate on the "skill_id" field.
func SkillIDEqualFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEqualFold(FieldSkillID, v))
}

// SkillIDContainsFold applies the ContainsFold predicate on the "skill_id" field.
func SkillIDContainsFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContainsFold(FieldSkillID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldType, vs...))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContainsFold(FieldQuestion, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.Exercise {
	return predicate.Exercise(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.Exercise {
	return predicate.Exercise(sql.FieldNotNull(FieldOptions))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerIsNil applies the IsNil predicate on the "correct_answer" field.
func CorrectAnswerIsNil() predicate.Exercise {
	return predicate.Exercise(sql.FieldIsNull(FieldCorrectAnswer))
}

// CorrectAnswerNotNil applies the NotNil predicate on the "correct_answer" field.
func CorrectAnswerNotNil() predicate.Exercise {
	return predicate.Exercise(sql.FieldNotNull(FieldCorrectAnswer))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// RubricEQ applies the EQ predicate on the "rubric" field.
func RubricEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldRubric, v))
}

// RubricNEQ applies the NEQ predicate on the "rubric" field.
func RubricNEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldRubric, v))
}

// RubricIn applies the In predicate on the "rubric" field.
func RubricIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldRubric, vs...))
}

// RubricNotIn applies the NotIn predicate on the "rubric" field.
func RubricNotIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldRubric, vs...))
}

// RubricGT applies the GT predicate on the "rubric" field.
func RubricGT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldRubric, v))
}

// RubricGTE applies the GTE predicate on the "rubric" field.
func RubricGTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldRubric, v))
}

// RubricLT applies the LT predicate on the "rubric" field.
func RubricLT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldRubric, v))
}

// RubricLTE applies the LTE predicate on the "rubric" field.
func RubricLTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldRubric, v))
}

// RubricContains applies the Contains predicate on the "rubric" field.
func RubricContains(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContains(FieldRubric, v))
}

// RubricHasPrefix applies the HasPrefix predicate on the "rubric" field.
func RubricHasPrefix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasPrefix(FieldRubric, v))
}

// RubricHasSuffix applies the HasSuffix predicate on the "rubric" field.
func RubricHasSuffix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasSuffix(FieldRubric, v))
}

// RubricIsNil applies the IsNil predicate on the "rubric" field.
func RubricIsNil() predicate.Exercise {
	return predicate.Exercise(sql.FieldIsNull(FieldRubric))
}

// RubricNotNil applies the NotNil predicate on the "rubric" field.
func RubricNotNil() predicate.Exercise {
	return predicate.Exercise(sql.FieldNotNull(FieldRubric))
}

// RubricEqualFold applies the EqualFold predicate on the "rubric" field.
func RubricEqualFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEqualFold(FieldRubric, v))
}

// RubricContainsFold applies the ContainsFold predicate on the "rubric" field.
func RubricContainsFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContainsFold(FieldRubric, v))
}

// PassingScoreEQ applies the EQ predicate on the "passing_score" field.
func PassingScoreEQ(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldPassingScore, v))
}

// PassingScoreNEQ applies the NEQ predicate on the "passing_score" field.
func PassingScoreNEQ(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldPassingScore, v))
}

// PassingScoreIn applies the In predicate on the "passing_score" field.
func PassingScoreIn(vs ...int) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldPassingScore, vs...))
}

// PassingScoreNotIn applies the NotIn predicate on the "passing_score" field.
func PassingScoreNotIn(vs ...int) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldPassingScore, vs...))
}

// PassingScoreGT applies the GT predicate on the "passing_score" field.
func PassingScoreGT(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldPassingScore, v))
}

// PassingScoreGTE applies the GTE predicate on the "passing_score" field.
func PassingScoreGTE(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldPassingScore, v))
}

// PassingScoreLT applies the LT predicate on the "passing_score" field.
func PassingScoreLT(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldPassingScore, v))
}

// PassingScoreLTE applies the LTE predicate on the "passing_score" field.
func PassingScoreLTE(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldPassingScore, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldMaxAttempts, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Exercise) predicate.Exercise {
	return predicate.Exercise(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Exercise) predicate.Exercise {
	return predicate.Exercise(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Exercise) predicate.Exercise {
	return predicate.Exercise(sql.NotPredicates(p))
}
