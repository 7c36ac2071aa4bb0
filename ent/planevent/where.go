// Code generated by ent, DO NOT EDIT.

package planevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/GRCJP/assurit-test-simulator-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Learner applies equality check predicate on the "learner" field. It's identical to LearnerEQ.
func Learner(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldLearner, v))
}

// Bank applies equality check predicate on the "bank" field. It's identical to BankEQ.
func Bank(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldBank, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldPhase, v))
}

// TotalDaily applies equality check predicate on the "total_daily" field. It's identical to TotalDailyEQ.
func TotalDaily(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTotalDaily, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerEQ applies the EQ predicate on the "learner" field.
func LearnerEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldLearner, v))
}

// LearnerNEQ applies the NEQ predicate on the "learner" field.
func LearnerNEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldLearner, v))
}

// LearnerIn applies the In predicate on the "learner" field.
func LearnerIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldLearner, vs...))
}

// LearnerNotIn applies the NotIn predicate on the "learner" field.
func LearnerNotIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldLearner, vs...))
}

// LearnerGT applies the GT predicate on the "learner" field.
func LearnerGT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldLearner, v))
}

// LearnerGTE applies the GTE predicate on the "learner" field.
func LearnerGTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldLearner, v))
}

// LearnerLT applies the LT predicate on the "learner" field.
func LearnerLT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldLearner, v))
}

// LearnerLTE applies the LTE predicate on the "learner" field.
func LearnerLTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldLearner, v))
}

// LearnerContains applies the Contains predicate on the "learner" field.
func LearnerContains(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContains(FieldLearner, v))
}

// LearnerHasPrefix applies the HasPrefix predicate on the "learner" field.
func LearnerHasPrefix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasPrefix(FieldLearner, v))
}

// LearnerHasSuffix applies the HasSuffix predicate on the "learner" field.
func LearnerHasSuffix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasSuffix(FieldLearner, v))
}

// LearnerEqualFold applies the EqualFold predicate on the "learner" field.
func LearnerEqualFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEqualFold(FieldLearner, v))
}

// LearnerContainsFold applies the ContainsFold predicate on the "learner" field.
func LearnerContainsFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContainsFold(FieldLearner, v))
}

// BankEQ applies the EQ predicate on the "bank" field.
func BankEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldBank, v))
}

// BankNEQ applies the NEQ predicate on the "bank" field.
func BankNEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldBank, v))
}

// BankIn applies the In predicate on the "bank" field.
func BankIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldBank, vs...))
}

// BankNotIn applies the NotIn predicate on the "bank" field.
func BankNotIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldBank, vs...))
}

// BankGT applies the GT predicate on the "bank" field.
func BankGT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldBank, v))
}

// BankGTE applies the GTE predicate on the "bank" field.
func BankGTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldBank, v))
}

// BankLT applies the LT predicate on the "bank" field.
func BankLT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldBank, v))
}

// BankLTE applies the LTE predicate on the "bank" field.
func BankLTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldBank, v))
}

// BankContains applies the Contains predicate on the "bank" field.
func BankContains(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContains(FieldBank, v))
}

// BankHasPrefix applies the HasPrefix predicate on the "bank" field.
func BankHasPrefix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasPrefix(FieldBank, v))
}

// BankHasSuffix applies the HasSuffix predicate on the "bank" field.
func BankHasSuffix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasSuffix(FieldBank, v))
}

// BankEqualFold applies the EqualFold predicate on the "bank" field.
func BankEqualFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEqualFold(FieldBank, v))
}

// BankContainsFold applies the ContainsFold predicate on the "bank" field.
func BankContainsFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContainsFold(FieldBank, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldContainsFold(FieldPhase, v))
}

// TotalDailyEQ applies the EQ predicate on the "total_daily" field.
func TotalDailyEQ(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldEQ(FieldTotalDaily, v))
}

// TotalDailyNEQ applies the NEQ predicate on the "total_daily" field.
func TotalDailyNEQ(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNEQ(FieldTotalDaily, v))
}

// TotalDailyIn applies the In predicate on the "total_daily" field.
func TotalDailyIn(vs ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldIn(FieldTotalDaily, vs...))
}

// TotalDailyNotIn applies the NotIn predicate on the "total_daily" field.
func TotalDailyNotIn(vs ...int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldNotIn(FieldTotalDaily, vs...))
}

// TotalDailyGT applies the GT predicate on the "total_daily" field.
func TotalDailyGT(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGT(FieldTotalDaily, v))
}

// TotalDailyGTE applies the GTE predicate on the "total_daily" field.
func TotalDailyGTE(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldGTE(FieldTotalDaily, v))
}

// TotalDailyLT applies the LT predicate on the "total_daily" field.
func TotalDailyLT(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLT(FieldTotalDaily, v))
}

// TotalDailyLTE applies the LTE predicate on the "total_daily" field.
func TotalDailyLTE(v int) predicate.PlanEvent {
	return predicate.PlanEvent(sql.FieldLTE(FieldTotalDaily, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlanEvent) predicate.PlanEvent {
	return predicate.PlanEvent(sql.NotPredicates(p))
}
