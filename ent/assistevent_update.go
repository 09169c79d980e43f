// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/sumleap/ent/assistevent"
	"github.com/abhisek/sumleap/ent/predicate"
)

// AssistEventUpdate is the builder for updating AssistEvent entities.
type AssistEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssistEventMutation
}

// Where appends a list predicates to the AssistEventUpdate builder.
func (_u *AssistEventUpdate) Where(ps ...predicate.AssistEvent) *AssistEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlotID sets the "slot_id" field.
func (_u *AssistEventUpdate) SetSlotID(v string) *AssistEventUpdate {
	_u.mutation.SetSlotID(v)
	return _u
}

// SetNillableSlotID sets the "slot_id" field if the given value is not nil.
func (_u *AssistEventUpdate) SetNillableSlotID(v *string) *AssistEventUpdate {
	if v != nil {
		_u.SetSlotID(*v)
	}
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *AssistEventUpdate) SetFromState(v string) *AssistEventUpdate {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *AssistEventUpdate) SetNillableFromState(v *string) *AssistEventUpdate {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// SetToState sets the "to_state" field.
func (_u *AssistEventUpdate) SetToState(v string) *AssistEventUpdate {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *AssistEventUpdate) SetNillableToState(v *string) *AssistEventUpdate {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *AssistEventUpdate) SetTrigger(v string) *AssistEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *AssistEventUpdate) SetNillableTrigger(v *string) *AssistEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// Mutation returns the AssistEventMutation object of the builder.
func (_u *AssistEventUpdate) Mutation() *AssistEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssistEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssistEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssistEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssistEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssistEventUpdate) check() error {
	if v, ok := _u.mutation.SlotID(); ok {
		if err := assistevent.SlotIDValidator(v); err != nil {
			return &ValidationError{Name: "slot_id", err: fmt.Errorf(`ent: validator failed for field "AssistEvent.slot_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromState(); ok {
		if err := assistevent.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`ent: validator failed for field "AssistEvent.from_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToState(); ok {
		if err := assistevent.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`ent: validator failed for field "AssistEvent.to_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := assistevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "AssistEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *AssistEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assistevent.Table, assistevent.Columns, sqlgraph.NewFieldSpec(assistevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SlotID(); ok {
		_spec.SetField(assistevent.FieldSlotID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(assistevent.FieldFromState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(assistevent.FieldToState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(assistevent.FieldTrigger, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assistevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssistEventUpdateOne is the builder for updating a single AssistEvent entity.
type AssistEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssistEventMutation
}

// SetSlotID sets the "slot_id" field.
func (_u *AssistEventUpdateOne) SetSlotID(v string) *AssistEventUpdateOne {
	_u.mutation.SetSlotID(v)
	return _u
}

// SetNillableSlotID sets the "slot_id" field if the given value is not nil.
func (_u *AssistEventUpdateOne) SetNillableSlotID(v *string) *AssistEventUpdateOne {
	if v != nil {
		_u.SetSlotID(*v)
	}
	return _u
}

// SetFromState sets the "from_state" field.
func (_u *AssistEventUpdateOne) SetFromState(v string) *AssistEventUpdateOne {
	_u.mutation.SetFromState(v)
	return _u
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (_u *AssistEventUpdateOne) SetNillableFromState(v *string) *AssistEventUpdateOne {
	if v != nil {
		_u.SetFromState(*v)
	}
	return _u
}

// SetToState sets the "to_state" field.
func (_u *AssistEventUpdateOne) SetToState(v string) *AssistEventUpdateOne {
	_u.mutation.SetToState(v)
	return _u
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (_u *AssistEventUpdateOne) SetNillableToState(v *string) *AssistEventUpdateOne {
	if v != nil {
		_u.SetToState(*v)
	}
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *AssistEventUpdateOne) SetTrigger(v string) *AssistEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *AssistEventUpdateOne) SetNillableTrigger(v *string) *AssistEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// Mutation returns the AssistEventMutation object of the builder.
func (_u *AssistEventUpdateOne) Mutation() *AssistEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssistEventUpdate builder.
func (_u *AssistEventUpdateOne) Where(ps ...predicate.AssistEvent) *AssistEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssistEventUpdateOne) Select(field string, fields ...string) *AssistEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssistEvent entity.
func (_u *AssistEventUpdateOne) Save(ctx context.Context) (*AssistEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssistEventUpdateOne) SaveX(ctx context.Context) *AssistEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssistEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssistEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssistEventUpdateOne) check() error {
	if v, ok := _u.mutation.SlotID(); ok {
		if err := assistevent.SlotIDValidator(v); err != nil {
			return &ValidationError{Name: "slot_id", err: fmt.Errorf(`ent: validator failed for field "AssistEvent.slot_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromState(); ok {
		if err := assistevent.FromStateValidator(v); err != nil {
			return &ValidationError{Name: "from_state", err: fmt.Errorf(`ent: validator failed for field "AssistEvent.from_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToState(); ok {
		if err := assistevent.ToStateValidator(v); err != nil {
			return &ValidationError{Name: "to_state", err: fmt.Errorf(`ent: validator failed for field "AssistEvent.to_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := assistevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "AssistEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *AssistEventUpdateOne) sqlSave(ctx context.Context) (_node *AssistEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assistevent.Table, assistevent.Columns, sqlgraph.NewFieldSpec(assistevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssistEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assistevent.FieldID)
		for _, f := range fields {
			if !assistevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assistevent.FieldID {
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
	if value, ok := _u.mutation.SlotID(); ok {
		_spec.SetField(assistevent.FieldSlotID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromState(); ok {
		_spec.SetField(assistevent.FieldFromState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToState(); ok {
		_spec.SetField(assistevent.FieldToState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(assistevent.FieldTrigger, field.TypeString, value)
	}
	_node = &AssistEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assistevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
