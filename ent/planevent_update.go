// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GRCJP/assurit-test-simulator-sub000/ent/planevent"
	"github.com/GRCJP/assurit-test-simulator-sub000/ent/predicate"
)

// PlanEventUpdate is the builder for updating PlanEvent entities.
type PlanEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlanEventMutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdate) Where(ps ...predicate.PlanEvent) *PlanEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearner sets the "learner" field.
func (_u *PlanEventUpdate) SetLearner(v string) *PlanEventUpdate {
	_u.mutation.SetLearner(v)
	return _u
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableLearner(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetLearner(*v)
	}
	return _u
}

// SetBank sets the "bank" field.
func (_u *PlanEventUpdate) SetBank(v string) *PlanEventUpdate {
	_u.mutation.SetBank(v)
	return _u
}

// SetNillableBank sets the "bank" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableBank(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetBank(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *PlanEventUpdate) SetPhase(v string) *PlanEventUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillablePhase(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetTotalDaily sets the "total_daily" field.
func (_u *PlanEventUpdate) SetTotalDaily(v int) *PlanEventUpdate {
	_u.mutation.ResetTotalDaily()
	_u.mutation.SetTotalDaily(v)
	return _u
}

// SetNillableTotalDaily sets the "total_daily" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableTotalDaily(v *int) *PlanEventUpdate {
	if v != nil {
		_u.SetTotalDaily(*v)
	}
	return _u
}

// AddTotalDaily adds value to the "total_daily" field.
func (_u *PlanEventUpdate) AddTotalDaily(v int) *PlanEventUpdate {
	_u.mutation.AddTotalDaily(v)
	return _u
}

// SetPlan sets the "plan" field.
func (_u *PlanEventUpdate) SetPlan(v map[string]interface{}) *PlanEventUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdate) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanEventUpdate) check() error {
	if v, ok := _u.mutation.Learner(); ok {
		if err := planevent.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.learner": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bank(); ok {
		if err := planevent.BankValidator(v); err != nil {
			return &ValidationError{Name: "bank", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.bank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := planevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Learner(); ok {
		_spec.SetField(planevent.FieldLearner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bank(); ok {
		_spec.SetField(planevent.FieldBank, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(planevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalDaily(); ok {
		_spec.SetField(planevent.FieldTotalDaily, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDaily(); ok {
		_spec.AddField(planevent.FieldTotalDaily, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(planevent.FieldPlan, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanEventUpdateOne is the builder for updating a single PlanEvent entity.
type PlanEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanEventMutation
}

// SetLearner sets the "learner" field.
func (_u *PlanEventUpdateOne) SetLearner(v string) *PlanEventUpdateOne {
	_u.mutation.SetLearner(v)
	return _u
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableLearner(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetLearner(*v)
	}
	return _u
}

// SetBank sets the "bank" field.
func (_u *PlanEventUpdateOne) SetBank(v string) *PlanEventUpdateOne {
	_u.mutation.SetBank(v)
	return _u
}

// SetNillableBank sets the "bank" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableBank(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetBank(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *PlanEventUpdateOne) SetPhase(v string) *PlanEventUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillablePhase(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetTotalDaily sets the "total_daily" field.
func (_u *PlanEventUpdateOne) SetTotalDaily(v int) *PlanEventUpdateOne {
	_u.mutation.ResetTotalDaily()
	_u.mutation.SetTotalDaily(v)
	return _u
}

// SetNillableTotalDaily sets the "total_daily" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableTotalDaily(v *int) *PlanEventUpdateOne {
	if v != nil {
		_u.SetTotalDaily(*v)
	}
	return _u
}

// AddTotalDaily adds value to the "total_daily" field.
func (_u *PlanEventUpdateOne) AddTotalDaily(v int) *PlanEventUpdateOne {
	_u.mutation.AddTotalDaily(v)
	return _u
}

// SetPlan sets the "plan" field.
func (_u *PlanEventUpdateOne) SetPlan(v map[string]interface{}) *PlanEventUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdateOne) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdateOne) Where(ps ...predicate.PlanEvent) *PlanEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanEventUpdateOne) Select(field string, fields ...string) *PlanEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanEvent entity.
func (_u *PlanEventUpdateOne) Save(ctx context.Context) (*PlanEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdateOne) SaveX(ctx context.Context) *PlanEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanEventUpdateOne) check() error {
	if v, ok := _u.mutation.Learner(); ok {
		if err := planevent.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.learner": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bank(); ok {
		if err := planevent.BankValidator(v); err != nil {
			return &ValidationError{Name: "bank", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.bank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := planevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanEventUpdateOne) sqlSave(ctx context.Context) (_node *PlanEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, planevent.FieldID)
		for _, f := range fields {
			if !planevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != planevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Learner(); ok {
		_spec.SetField(planevent.FieldLearner, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bank(); ok {
		_spec.SetField(planevent.FieldBank, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(planevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalDaily(); ok {
		_spec.SetField(planevent.FieldTotalDaily, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDaily(); ok {
		_spec.AddField(planevent.FieldTotalDaily, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(planevent.FieldPlan, field.TypeJSON, value)
	}
	_node = &PlanEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
