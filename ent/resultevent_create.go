// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/sumleap/ent/resultevent"
)

// ResultEventCreate is the builder for creating a ResultEvent entity.
type ResultEventCreate struct {
	config
	mutation *ResultEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ResultEventCreate) SetSequence(v int64) *ResultEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ResultEventCreate) SetTimestamp(v time.Time) *ResultEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableTimestamp(v *time.Time) *ResultEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetPlanID sets the "plan_id" field.
func (_c *ResultEventCreate) SetPlanID(v string) *ResultEventCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetPlayerID sets the "player_id" field.
func (_c *ResultEventCreate) SetPlayerID(v string) *ResultEventCreate {
	_c.mutation.SetPlayerID(v)
	return _c
}

// SetSlotID sets the "slot_id" field.
func (_c *ResultEventCreate) SetSlotID(v string) *ResultEventCreate {
	_c.mutation.SetSlotID(v)
	return _c
}

// SetPartIndex sets the "part_index" field.
func (_c *ResultEventCreate) SetPartIndex(v int) *ResultEventCreate {
	_c.mutation.SetPartIndex(v)
	return _c
}

// SetSlotIndex sets the "slot_index" field.
func (_c *ResultEventCreate) SetSlotIndex(v int) *ResultEventCreate {
	_c.mutation.SetSlotIndex(v)
	return _c
}

// SetEpoch sets the "epoch" field.
func (_c *ResultEventCreate) SetEpoch(v int) *ResultEventCreate {
	_c.mutation.SetEpoch(v)
	return _c
}

// SetNillableEpoch sets the "epoch" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableEpoch(v *int) *ResultEventCreate {
	if v != nil {
		_c.SetEpoch(*v)
	}
	return _c
}

// SetProblemText sets the "problem_text" field.
func (_c *ResultEventCreate) SetProblemText(v string) *ResultEventCreate {
	_c.mutation.SetProblemText(v)
	return _c
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_c *ResultEventCreate) SetExpectedAnswer(v int) *ResultEventCreate {
	_c.mutation.SetExpectedAnswer(v)
	return _c
}

// SetGivenAnswer sets the "given_answer" field.
func (_c *ResultEventCreate) SetGivenAnswer(v int) *ResultEventCreate {
	_c.mutation.SetGivenAnswer(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ResultEventCreate) SetCorrect(v bool) *ResultEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetResponseMs sets the "response_ms" field.
func (_c *ResultEventCreate) SetResponseMs(v int64) *ResultEventCreate {
	_c.mutation.SetResponseMs(v)
	return _c
}

// SetWrongAttempts sets the "wrong_attempts" field.
func (_c *ResultEventCreate) SetWrongAttempts(v int) *ResultEventCreate {
	_c.mutation.SetWrongAttempts(v)
	return _c
}

// SetNillableWrongAttempts sets the "wrong_attempts" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableWrongAttempts(v *int) *ResultEventCreate {
	if v != nil {
		_c.SetWrongAttempts(*v)
	}
	return _c
}

// SetUsedHelp sets the "used_help" field.
func (_c *ResultEventCreate) SetUsedHelp(v bool) *ResultEventCreate {
	_c.mutation.SetUsedHelp(v)
	return _c
}

// SetNillableUsedHelp sets the "used_help" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableUsedHelp(v *bool) *ResultEventCreate {
	if v != nil {
		_c.SetUsedHelp(*v)
	}
	return _c
}

// SetIsRetry sets the "is_retry" field.
func (_c *ResultEventCreate) SetIsRetry(v bool) *ResultEventCreate {
	_c.mutation.SetIsRetry(v)
	return _c
}

// SetNillableIsRetry sets the "is_retry" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableIsRetry(v *bool) *ResultEventCreate {
	if v != nil {
		_c.SetIsRetry(*v)
	}
	return _c
}

// SetOriginalSlot sets the "original_slot" field.
func (_c *ResultEventCreate) SetOriginalSlot(v int) *ResultEventCreate {
	_c.mutation.SetOriginalSlot(v)
	return _c
}

// SetNillableOriginalSlot sets the "original_slot" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableOriginalSlot(v *int) *ResultEventCreate {
	if v != nil {
		_c.SetOriginalSlot(*v)
	}
	return _c
}

// Mutation returns the ResultEventMutation object of the builder.
func (_c *ResultEventCreate) Mutation() *ResultEventMutation {
	return _c.mutation
}

// Save creates the ResultEvent in the database.
func (_c *ResultEventCreate) Save(ctx context.Context) (*ResultEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultEventCreate) SaveX(ctx context.Context) *ResultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := resultevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Epoch(); !ok {
		v := resultevent.DefaultEpoch
		_c.mutation.SetEpoch(v)
	}
	if _, ok := _c.mutation.WrongAttempts(); !ok {
		v := resultevent.DefaultWrongAttempts
		_c.mutation.SetWrongAttempts(v)
	}
	if _, ok := _c.mutation.UsedHelp(); !ok {
		v := resultevent.DefaultUsedHelp
		_c.mutation.SetUsedHelp(v)
	}
	if _, ok := _c.mutation.IsRetry(); !ok {
		v := resultevent.DefaultIsRetry
		_c.mutation.SetIsRetry(v)
	}
	if _, ok := _c.mutation.OriginalSlot(); !ok {
		v := resultevent.DefaultOriginalSlot
		_c.mutation.SetOriginalSlot(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResultEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ResultEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "ResultEvent.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := resultevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlayerID(); !ok {
		return &ValidationError{Name: "player_id", err: errors.New(`ent: missing required field "ResultEvent.player_id"`)}
	}
	if v, ok := _c.mutation.PlayerID(); ok {
		if err := resultevent.PlayerIDValidator(v); err != nil {
			return &ValidationError{Name: "player_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.player_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SlotID(); !ok {
		return &ValidationError{Name: "slot_id", err: errors.New(`ent: missing required field "ResultEvent.slot_id"`)}
	}
	if v, ok := _c.mutation.SlotID(); ok {
		if err := resultevent.SlotIDValidator(v); err != nil {
			return &ValidationError{Name: "slot_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.slot_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PartIndex(); !ok {
		return &ValidationError{Name: "part_index", err: errors.New(`ent: missing required field "ResultEvent.part_index"`)}
	}
	if _, ok := _c.mutation.SlotIndex(); !ok {
		return &ValidationError{Name: "slot_index", err: errors.New(`ent: missing required field "ResultEvent.slot_index"`)}
	}
	if _, ok := _c.mutation.Epoch(); !ok {
		return &ValidationError{Name: "epoch", err: errors.New(`ent: missing required field "ResultEvent.epoch"`)}
	}
	if _, ok := _c.mutation.ProblemText(); !ok {
		return &ValidationError{Name: "problem_text", err: errors.New(`ent: missing required field "ResultEvent.problem_text"`)}
	}
	if v, ok := _c.mutation.ProblemText(); ok {
		if err := resultevent.ProblemTextValidator(v); err != nil {
			return &ValidationError{Name: "problem_text", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.problem_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpectedAnswer(); !ok {
		return &ValidationError{Name: "expected_answer", err: errors.New(`ent: missing required field "ResultEvent.expected_answer"`)}
	}
	if _, ok := _c.mutation.GivenAnswer(); !ok {
		return &ValidationError{Name: "given_answer", err: errors.New(`ent: missing required field "ResultEvent.given_answer"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ResultEvent.correct"`)}
	}
	if _, ok := _c.mutation.ResponseMs(); !ok {
		return &ValidationError{Name: "response_ms", err: errors.New(`ent: missing required field "ResultEvent.response_ms"`)}
	}
	if _, ok := _c.mutation.WrongAttempts(); !ok {
		return &ValidationError{Name: "wrong_attempts", err: errors.New(`ent: missing required field "ResultEvent.wrong_attempts"`)}
	}
	if _, ok := _c.mutation.UsedHelp(); !ok {
		return &ValidationError{Name: "used_help", err: errors.New(`ent: missing required field "ResultEvent.used_help"`)}
	}
	if _, ok := _c.mutation.IsRetry(); !ok {
		return &ValidationError{Name: "is_retry", err: errors.New(`ent: missing required field "ResultEvent.is_retry"`)}
	}
	if _, ok := _c.mutation.OriginalSlot(); !ok {
		return &ValidationError{Name: "original_slot", err: errors.New(`ent: missing required field "ResultEvent.original_slot"`)}
	}
	return nil
}

func (_c *ResultEventCreate) sqlSave(ctx context.Context) (*ResultEvent, error) {
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

func (_c *ResultEventCreate) createSpec() (*ResultEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ResultEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resultevent.Table, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(resultevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(resultevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(resultevent.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.PlayerID(); ok {
		_spec.SetField(resultevent.FieldPlayerID, field.TypeString, value)
		_node.PlayerID = value
	}
	if value, ok := _c.mutation.SlotID(); ok {
		_spec.SetField(resultevent.FieldSlotID, field.TypeString, value)
		_node.SlotID = value
	}
	if value, ok := _c.mutation.PartIndex(); ok {
		_spec.SetField(resultevent.FieldPartIndex, field.TypeInt, value)
		_node.PartIndex = value
	}
	if value, ok := _c.mutation.SlotIndex(); ok {
		_spec.SetField(resultevent.FieldSlotIndex, field.TypeInt, value)
		_node.SlotIndex = value
	}
	if value, ok := _c.mutation.Epoch(); ok {
		_spec.SetField(resultevent.FieldEpoch, field.TypeInt, value)
		_node.Epoch = value
	}
	if value, ok := _c.mutation.ProblemText(); ok {
		_spec.SetField(resultevent.FieldProblemText, field.TypeString, value)
		_node.ProblemText = value
	}
	if value, ok := _c.mutation.ExpectedAnswer(); ok {
		_spec.SetField(resultevent.FieldExpectedAnswer, field.TypeInt, value)
		_node.ExpectedAnswer = value
	}
	if value, ok := _c.mutation.GivenAnswer(); ok {
		_spec.SetField(resultevent.FieldGivenAnswer, field.TypeInt, value)
		_node.GivenAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(resultevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.ResponseMs(); ok {
		_spec.SetField(resultevent.FieldResponseMs, field.TypeInt64, value)
		_node.ResponseMs = value
	}
	if value, ok := _c.mutation.WrongAttempts(); ok {
		_spec.SetField(resultevent.FieldWrongAttempts, field.TypeInt, value)
		_node.WrongAttempts = value
	}
	if value, ok := _c.mutation.UsedHelp(); ok {
		_spec.SetField(resultevent.FieldUsedHelp, field.TypeBool, value)
		_node.UsedHelp = value
	}
	if value, ok := _c.mutation.IsRetry(); ok {
		_spec.SetField(resultevent.FieldIsRetry, field.TypeBool, value)
		_node.IsRetry = value
	}
	if value, ok := _c.mutation.OriginalSlot(); ok {
		_spec.SetField(resultevent.FieldOriginalSlot, field.TypeInt, value)
		_node.OriginalSlot = value
	}
	return _node, _spec
}

// ResultEventCreateBulk is the builder for creating many ResultEvent entities in bulk.
type ResultEventCreateBulk struct {
	config
	err      error
	builders []*ResultEventCreate
}

// Save creates the ResultEvent entities in the database.
func (_c *ResultEventCreateBulk) Save(ctx context.Context) ([]*ResultEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResultEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultEventMutation)
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
func (_c *ResultEventCreateBulk) SaveX(ctx context.Context) []*ResultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
