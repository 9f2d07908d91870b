// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathgarden/ent/rewardevent"
)

// RewardEventCreate is the builder for creating a RewardEvent entity.
type RewardEventCreate struct {
	config
	mutation *RewardEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RewardEventCreate) SetSequence(v int64) *RewardEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RewardEventCreate) SetTimestamp(v time.Time) *RewardEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableTimestamp(v *time.Time) *RewardEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *RewardEventCreate) SetSource(v string) *RewardEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *RewardEventCreate) SetAmount(v int) *RewardEventCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetBalance sets the "balance" field.
func (_c *RewardEventCreate) SetBalance(v int) *RewardEventCreate {
	_c.mutation.SetBalance(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *RewardEventCreate) SetDetail(v string) *RewardEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableDetail(v *string) *RewardEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// Mutation returns the RewardEventMutation object of the builder.
func (_c *RewardEventCreate) Mutation() *RewardEventMutation {
	return _c.mutation
}

// Save creates the RewardEvent in the database.
func (_c *RewardEventCreate) Save(ctx context.Context) (*RewardEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RewardEventCreate) SaveX(ctx context.Context) *RewardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RewardEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := rewardevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RewardEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RewardEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RewardEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "RewardEvent.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := rewardevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "RewardEvent.amount"`)}
	}
	if _, ok := _c.mutation.Balance(); !ok {
		return &ValidationError{Name: "balance", err: errors.New(`ent: missing required field "RewardEvent.balance"`)}
	}
	return nil
}

func (_c *RewardEventCreate) sqlSave(ctx context.Context) (*RewardEvent, error) {
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

func (_c *RewardEventCreate) createSpec() (*RewardEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RewardEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rewardevent.Table, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(rewardevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(rewardevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(rewardevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(rewardevent.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Balance(); ok {
		_spec.SetField(rewardevent.FieldBalance, field.TypeInt, value)
		_node.Balance = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(rewardevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	return _node, _spec
}

// RewardEventCreateBulk is the builder for creating many RewardEvent entities in bulk.
type RewardEventCreateBulk struct {
	config
	err      error
	builders []*RewardEventCreate
}

// Save creates the RewardEvent entities in the database.
func (_c *RewardEventCreateBulk) Save(ctx context.Context) ([]*RewardEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RewardEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RewardEventMutation)
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
func (_c *RewardEventCreateBulk) SaveX(ctx context.Context) []*RewardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
