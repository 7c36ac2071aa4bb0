// Code generated by ent, DO NOT EDIT.

package planevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the planevent type in the database.
	Label = "plan_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLearner holds the string denoting the learner field in the database.
	FieldLearner = "learner"
	// FieldBank holds the string denoting the bank field in the database.
	FieldBank = "bank"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldTotalDaily holds the string denoting the total_daily field in the database.
	FieldTotalDaily = "total_daily"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// Table holds the table name of the planevent in the database.
	Table = "plan_events"
)

// Columns holds all SQL columns for planevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldLearner,
	FieldBank,
	FieldPhase,
	FieldTotalDaily,
	FieldPlan,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// LearnerValidator is a validator for the "learner" field. It is called by the builders before save.
	LearnerValidator func(string) error
	// BankValidator is a validator for the "bank" field. It is called by the builders before save.
	BankValidator func(string) error
	// PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	PhaseValidator func(string) error
)

// OrderOption defines the ordering options for the PlanEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByLearner orders the results by the learner field.
func ByLearner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearner, opts...).ToFunc()
}

// ByBank orders the results by the bank field.
func ByBank(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBank, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByTotalDaily orders the results by the total_daily field.
func ByTotalDaily(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalDaily, opts...).ToFunc()
}
