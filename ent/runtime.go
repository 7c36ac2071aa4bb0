// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/GRCJP/assurit-test-simulator-sub000/ent/attemptevent"
	"github.com/GRCJP/assurit-test-simulator-sub000/ent/planevent"
	"github.com/GRCJP/assurit-test-simulator-sub000/ent/schema"
	"github.com/GRCJP/assurit-test-simulator-sub000/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescLearner is the schema descriptor for learner field.
	attempteventDescLearner := attempteventFields[0].Descriptor()
	// attemptevent.LearnerValidator is a validator for the "learner" field. It is called by the builders before save.
	attemptevent.LearnerValidator = attempteventDescLearner.Validators[0].(func(string) error)
	// attempteventDescBank is the schema descriptor for bank field.
	attempteventDescBank := attempteventFields[1].Descriptor()
	// attemptevent.BankValidator is a validator for the "bank" field. It is called by the builders before save.
	attemptevent.BankValidator = attempteventDescBank.Validators[0].(func(string) error)
	// attempteventDescQuestionID is the schema descriptor for question_id field.
	attempteventDescQuestionID := attempteventFields[3].Descriptor()
	// attemptevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attemptevent.QuestionIDValidator = attempteventDescQuestionID.Validators[0].(func(string) error)
	// attempteventDescDomain is the schema descriptor for domain field.
	attempteventDescDomain := attempteventFields[4].Descriptor()
	// attemptevent.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	attemptevent.DomainValidator = attempteventDescDomain.Validators[0].(func(string) error)
	// attempteventDescTimeMs is the schema descriptor for time_ms field.
	attempteventDescTimeMs := attempteventFields[6].Descriptor()
	// attemptevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	attemptevent.DefaultTimeMs = attempteventDescTimeMs.Default.(int)
	planeventMixin := schema.PlanEvent{}.Mixin()
	planeventMixinFields0 := planeventMixin[0].Fields()
	_ = planeventMixinFields0
	planeventFields := schema.PlanEvent{}.Fields()
	_ = planeventFields
	// planeventDescTimestamp is the schema descriptor for timestamp field.
	planeventDescTimestamp := planeventMixinFields0[1].Descriptor()
	// planevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	planevent.DefaultTimestamp = planeventDescTimestamp.Default.(func() time.Time)
	// planeventDescLearner is the schema descriptor for learner field.
	planeventDescLearner := planeventFields[0].Descriptor()
	// planevent.LearnerValidator is a validator for the "learner" field. It is called by the builders before save.
	planevent.LearnerValidator = planeventDescLearner.Validators[0].(func(string) error)
	// planeventDescBank is the schema descriptor for bank field.
	planeventDescBank := planeventFields[1].Descriptor()
	// planevent.BankValidator is a validator for the "bank" field. It is called by the builders before save.
	planevent.BankValidator = planeventDescBank.Validators[0].(func(string) error)
	// planeventDescPhase is the schema descriptor for phase field.
	planeventDescPhase := planeventFields[2].Descriptor()
	// planevent.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	planevent.PhaseValidator = planeventDescPhase.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescLearner is the schema descriptor for learner field.
	snapshotDescLearner := snapshotFields[0].Descriptor()
	// snapshot.LearnerValidator is a validator for the "learner" field. It is called by the builders before save.
	snapshot.LearnerValidator = snapshotDescLearner.Validators[0].(func(string) error)
	// snapshotDescBank is the schema descriptor for bank field.
	snapshotDescBank := snapshotFields[1].Descriptor()
	// snapshot.BankValidator is a validator for the "bank" field. It is called by the builders before save.
	snapshot.BankValidator = snapshotDescBank.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[3].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
