// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/sumleap/ent/plansnapshot"
	"github.com/abhisek/sumleap/ent/predicate"
)

// PlanSnapshotUpdate is the builder for updating PlanSnapshot entities.
type PlanSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *PlanSnapshotMutation
}

// Where appends a list predicates to the PlanSnapshotUpdate builder.
func (_u *PlanSnapshotUpdate) Where(ps ...predicate.PlanSnapshot) *PlanSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *PlanSnapshotUpdate) SetPlanID(v string) *PlanSnapshotUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *PlanSnapshotUpdate) SetNillablePlanID(v *string) *PlanSnapshotUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *PlanSnapshotUpdate) SetSequence(v int64) *PlanSnapshotUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PlanSnapshotUpdate) SetNillableSequence(v *int64) *PlanSnapshotUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PlanSnapshotUpdate) AddSequence(v int64) *PlanSnapshotUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *PlanSnapshotUpdate) SetTimestamp(v time.Time) *PlanSnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *PlanSnapshotUpdate) SetNillableTimestamp(v *time.Time) *PlanSnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *PlanSnapshotUpdate) SetData(v map[string]interface{}) *PlanSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the PlanSnapshotMutation object of the builder.
func (_u *PlanSnapshotUpdate) Mutation() *PlanSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanSnapshotUpdate) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := plansnapshot.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanSnapshot.plan_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plansnapshot.Table, plansnapshot.Columns, sqlgraph.NewFieldSpec(plansnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(plansnapshot.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(plansnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(plansnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(plansnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(plansnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plansnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanSnapshotUpdateOne is the builder for updating a single PlanSnapshot entity.
type PlanSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanSnapshotMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *PlanSnapshotUpdateOne) SetPlanID(v string) *PlanSnapshotUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *PlanSnapshotUpdateOne) SetNillablePlanID(v *string) *PlanSnapshotUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *PlanSnapshotUpdateOne) SetSequence(v int64) *PlanSnapshotUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *PlanSnapshotUpdateOne) SetNillableSequence(v *int64) *PlanSnapshotUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *PlanSnapshotUpdateOne) AddSequence(v int64) *PlanSnapshotUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *PlanSnapshotUpdateOne) SetTimestamp(v time.Time) *PlanSnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *PlanSnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *PlanSnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *PlanSnapshotUpdateOne) SetData(v map[string]interface{}) *PlanSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the PlanSnapshotMutation object of the builder.
func (_u *PlanSnapshotUpdateOne) Mutation() *PlanSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanSnapshotUpdate builder.
func (_u *PlanSnapshotUpdateOne) Where(ps ...predicate.PlanSnapshot) *PlanSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanSnapshotUpdateOne) Select(field string, fields ...string) *PlanSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanSnapshot entity.
func (_u *PlanSnapshotUpdateOne) Save(ctx context.Context) (*PlanSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanSnapshotUpdateOne) SaveX(ctx context.Context) *PlanSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := plansnapshot.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanSnapshot.plan_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *PlanSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plansnapshot.Table, plansnapshot.Columns, sqlgraph.NewFieldSpec(plansnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plansnapshot.FieldID)
		for _, f := range fields {
			if !plansnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plansnapshot.FieldID {
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
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(plansnapshot.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(plansnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(plansnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(plansnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(plansnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &PlanSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plansnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
