// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/GRCJP/assurit-test-simulator-sub000/ent/planevent"
)

// PlanEventCreate is the builder for creating a PlanEvent entity.
type PlanEventCreate struct {
	config
	mutation *PlanEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PlanEventCreate) SetSequence(v int64) *PlanEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PlanEventCreate) SetTimestamp(v time.Time) *PlanEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableTimestamp(v *time.Time) *PlanEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearner sets the "learner" field.
func (_c *PlanEventCreate) SetLearner(v string) *PlanEventCreate {
	_c.mutation.SetLearner(v)
	return _c
}

// SetBank sets the "bank" field.
func (_c *PlanEventCreate) SetBank(v string) *PlanEventCreate {
	_c.mutation.SetBank(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *PlanEventCreate) SetPhase(v string) *PlanEventCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetTotalDaily sets the "total_daily" field.
func (_c *PlanEventCreate) SetTotalDaily(v int) *PlanEventCreate {
	_c.mutation.SetTotalDaily(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *PlanEventCreate) SetPlan(v map[string]interface{}) *PlanEventCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// Mutation returns the PlanEventMutation object of the builder.
func (_c *PlanEventCreate) Mutation() *PlanEventMutation {
	return _c.mutation
}

// Save creates the PlanEvent in the database.
func (_c *PlanEventCreate) Save(ctx context.Context) (*PlanEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanEventCreate) SaveX(ctx context.Context) *PlanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := planevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PlanEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PlanEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Learner(); !ok {
		return &ValidationError{Name: "learner", err: errors.New(`ent: missing required field "PlanEvent.learner"`)}
	}
	if v, ok := _c.mutation.Learner(); ok {
		if err := planevent.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.learner": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Bank(); !ok {
		return &ValidationError{Name: "bank", err: errors.New(`ent: missing required field "PlanEvent.bank"`)}
	}
	if v, ok := _c.mutation.Bank(); ok {
		if err := planevent.BankValidator(v); err != nil {
			return &ValidationError{Name: "bank", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.bank": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "PlanEvent.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := planevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalDaily(); !ok {
		return &ValidationError{Name: "total_daily", err: errors.New(`ent: missing required field "PlanEvent.total_daily"`)}
	}
	if _, ok := _c.mutation.Plan(); !ok {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required field "PlanEvent.plan"`)}
	}
	return nil
}

func (_c *PlanEventCreate) sqlSave(ctx context.Context) (*PlanEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlanEventCreate) createSpec() (*PlanEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(planevent.Table, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(planevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(planevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Learner(); ok {
		_spec.SetField(planevent.FieldLearner, field.TypeString, value)
		_node.Learner = value
	}
	if value, ok := _c.mutation.Bank(); ok {
		_spec.SetField(planevent.FieldBank, field.TypeString, value)
		_node.Bank = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(planevent.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.TotalDaily(); ok {
		_spec.SetField(planevent.FieldTotalDaily, field.TypeInt, value)
		_node.TotalDaily = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(planevent.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	return _node, _spec
}

// PlanEventCreateBulk is the builder for creating many PlanEvent entities in bulk.
type PlanEventCreateBulk struct {
	config
	err      error
	builders []*PlanEventCreate
}

// Save creates the PlanEvent entities in the database.
func (_c *PlanEventCreateBulk) Save(ctx context.Context) ([]*PlanEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PlanEventCreateBulk) SaveX(ctx context.Context) []*PlanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
