// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/GRCJP/assurit-test-simulator-sub000/ent/planevent"
)

// PlanEvent is the model entity for the PlanEvent schema.
type PlanEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Learner identifier
	Learner string `json:"learner,omitempty"`
	// Question bank identifier
	Bank string `json:"bank,omitempty"`
	// coverage, pressure or exam_readiness
	Phase string `json:"phase,omitempty"`
	// Questions budgeted for the day
	TotalDaily int `json:"total_daily,omitempty"`
	// Full daily plan as JSON
	Plan         map[string]interface{} `json:"plan,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlanEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case planevent.FieldPlan:
			values[i] = new([]byte)
		case planevent.FieldID, planevent.FieldSequence, planevent.FieldTotalDaily:
			values[i] = new(sql.NullInt64)
		case planevent.FieldLearner, planevent.FieldBank, planevent.FieldPhase:
			values[i] = new(sql.NullString)
		case planevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlanEvent fields.
func (_m *PlanEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case planevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case planevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case planevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case planevent.FieldLearner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner", values[i])
			} else if value.Valid {
				_m.Learner = value.String
			}
		case planevent.FieldBank:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bank", values[i])
			} else if value.Valid {
				_m.Bank = value.String
			}
		case planevent.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case planevent.FieldTotalDaily:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_daily", values[i])
			} else if value.Valid {
				_m.TotalDaily = int(value.Int64)
			}
		case planevent.FieldPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Plan); err != nil {
					return fmt.Errorf("unmarshal field plan: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlanEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PlanEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlanEvent.
// Note that you need to call PlanEvent.Unwrap() before calling this method if this PlanEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlanEvent) Update() *PlanEventUpdateOne {
	return NewPlanEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlanEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlanEvent) Unwrap() *PlanEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlanEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlanEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PlanEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("learner=")
	builder.WriteString(_m.Learner)
	builder.WriteString(", ")
	builder.WriteString("bank=")
	builder.WriteString(_m.Bank)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("total_daily=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalDaily))
	builder.WriteString(", ")
	builder.WriteString("plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.Plan))
	builder.WriteByte(')')
	return builder.String()
}

// PlanEvents is a parsable slice of PlanEvent.
type PlanEvents []*PlanEvent
