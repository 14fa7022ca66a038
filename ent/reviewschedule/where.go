// Code generated by ent, DO NOT EDIT.

package reviewschedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skillforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldUserID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldItemID, v))
}

// ReviewAt applies equality check predicate on the "review_at" field. It's identical to ReviewAtEQ.
func ReviewAt(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldReviewAt, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldEaseFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldIntervalDays, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldRepetitions, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldLastReviewedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldContainsFold(FieldUserID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldContainsFold(FieldItemID, v))
}

// ItemTypeEQ applies the EQ predicate on the "item_type" field.
func ItemTypeEQ(v ItemType) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldItemType, v))
}

// ItemTypeNEQ applies the NEQ predicate on the "item_type" field.
func ItemTypeNEQ(v ItemType) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldItemType, v))
}

// ItemTypeIn applies the In predicate on the "item_type" field.
func ItemTypeIn(vs ...ItemType) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldItemType, vs...))
}

// ItemTypeNotIn applies the NotIn predicate on the "item_type" field.
func ItemTypeNotIn(vs ...ItemType) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldItemType, vs...))
}

// ReviewAtEQ applies the EQ predicate on the "review_at" field.
func ReviewAtEQ(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldReviewAt, v))
}

// ReviewAtNEQ applies the NEQ predicate on the "review_at" field.
func ReviewAtNEQ(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldReviewAt, v))
}

// ReviewAtIn applies the In predicate on the "review_at" field.
func ReviewAtIn(vs ...time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldReviewAt, vs...))
}

// ReviewAtNotIn applies the NotIn predicate on the "review_at" field.
func ReviewAtNotIn(vs ...time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldReviewAt, vs...))
}

// ReviewAtGT applies the GT predicate on the "review_at" field.
func ReviewAtGT(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldReviewAt, v))
}

// ReviewAtGTE applies the GTE predicate on the "review_at" field.
func ReviewAtGTE(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldReviewAt, v))
}

// ReviewAtLT applies the LT predicate on the "review_at" field.
func ReviewAtLT(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldReviewAt, v))
}

// ReviewAtLTE applies the LTE predicate on the "review_at" field.
func ReviewAtLTE(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldReviewAt, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldRepetitions, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.FieldNotNull(FieldLastReviewedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewSchedule) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewSchedule) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewSchedule) predicate.ReviewSchedule {
	return predicate.ReviewSchedule(sql.NotPredicates(p))
}
