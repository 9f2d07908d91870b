// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathgarden/ent/predicate"
	"github.com/abhisek/mathgarden/ent/rewardevent"
)

// RewardEventUpdate is the builder for updating RewardEvent entities.
type RewardEventUpdate struct {
	config
	hooks    []Hook
	mutation *RewardEventMutation
}

// Where appends a list predicates to the RewardEventUpdate builder.
func (_u *RewardEventUpdate) Where(ps ...predicate.RewardEvent) *RewardEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *RewardEventUpdate) SetSource(v string) *RewardEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableSource(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *RewardEventUpdate) SetAmount(v int) *RewardEventUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableAmount(v *int) *RewardEventUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *RewardEventUpdate) AddAmount(v int) *RewardEventUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetBalance sets the "balance" field.
func (_u *RewardEventUpdate) SetBalance(v int) *RewardEventUpdate {
	_u.mutation.ResetBalance()
	_u.mutation.SetBalance(v)
	return _u
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableBalance(v *int) *RewardEventUpdate {
	if v != nil {
		_u.SetBalance(*v)
	}
	return _u
}

// AddBalance adds value to the "balance" field.
func (_u *RewardEventUpdate) AddBalance(v int) *RewardEventUpdate {
	_u.mutation.AddBalance(v)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *RewardEventUpdate) SetDetail(v string) *RewardEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableDetail(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *RewardEventUpdate) ClearDetail() *RewardEventUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the RewardEventMutation object of the builder.
func (_u *RewardEventUpdate) Mutation() *RewardEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RewardEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RewardEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardEventUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := rewardevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rewardevent.Table, rewardevent.Columns, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(rewardevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(rewardevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(rewardevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Balance(); ok {
		_spec.SetField(rewardevent.FieldBalance, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalance(); ok {
		_spec.AddField(rewardevent.FieldBalance, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(rewardevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(rewardevent.FieldDetail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rewardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RewardEventUpdateOne is the builder for updating a single RewardEvent entity.
type RewardEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RewardEventMutation
}

// SetSource sets the "source" field.
func (_u *RewardEventUpdateOne) SetSource(v string) *RewardEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableSource(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *RewardEventUpdateOne) SetAmount(v int) *RewardEventUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableAmount(v *int) *RewardEventUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *RewardEventUpdateOne) AddAmount(v int) *RewardEventUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetBalance sets the "balance" field.
func (_u *RewardEventUpdateOne) SetBalance(v int) *RewardEventUpdateOne {
	_u.mutation.ResetBalance()
	_u.mutation.SetBalance(v)
	return _u
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableBalance(v *int) *RewardEventUpdateOne {
	if v != nil {
		_u.SetBalance(*v)
	}
	return _u
}

// AddBalance adds value to the "balance" field.
func (_u *RewardEventUpdateOne) AddBalance(v int) *RewardEventUpdateOne {
	_u.mutation.AddBalance(v)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *RewardEventUpdateOne) SetDetail(v string) *RewardEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableDetail(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *RewardEventUpdateOne) ClearDetail() *RewardEventUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// Mutation returns the RewardEventMutation object of the builder.
func (_u *RewardEventUpdateOne) Mutation() *RewardEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RewardEventUpdate builder.
func (_u *RewardEventUpdateOne) Where(ps ...predicate.RewardEvent) *RewardEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RewardEventUpdateOne) Select(field string, fields ...string) *RewardEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RewardEvent entity.
func (_u *RewardEventUpdateOne) Save(ctx context.Context) (*RewardEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardEventUpdateOne) SaveX(ctx context.Context) *RewardEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RewardEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardEventUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := rewardevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardEventUpdateOne) sqlSave(ctx context.Context) (_node *RewardEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rewardevent.Table, rewardevent.Columns, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RewardEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rewardevent.FieldID)
		for _, f := range fields {
			if !rewardevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rewardevent.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(rewardevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(rewardevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(rewardevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Balance(); ok {
		_spec.SetField(rewardevent.FieldBalance, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBalance(); ok {
		_spec.AddField(rewardevent.FieldBalance, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(rewardevent.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(rewardevent.FieldDetail, field.TypeString)
	}
	_node = &RewardEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rewardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
