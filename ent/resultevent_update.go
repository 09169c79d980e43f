// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/sumleap/ent/predicate"
	"github.com/abhisek/sumleap/ent/resultevent"
)

// ResultEventUpdate is the builder for updating ResultEvent entities.
type ResultEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResultEventMutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdate) Where(ps ...predicate.ResultEvent) *ResultEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlayerID sets the "player_id" field.
func (_u *ResultEventUpdate) SetPlayerID(v string) *ResultEventUpdate {
	_u.mutation.SetPlayerID(v)
	return _u
}

// SetNillablePlayerID sets the "player_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillablePlayerID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetPlayerID(*v)
	}
	return _u
}

// SetSlotID sets the "slot_id" field.
func (_u *ResultEventUpdate) SetSlotID(v string) *ResultEventUpdate {
	_u.mutation.SetSlotID(v)
	return _u
}

// SetNillableSlotID sets the "slot_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableSlotID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetSlotID(*v)
	}
	return _u
}

// SetPartIndex sets the "part_index" field.
func (_u *ResultEventUpdate) SetPartIndex(v int) *ResultEventUpdate {
	_u.mutation.ResetPartIndex()
	_u.mutation.SetPartIndex(v)
	return _u
}

// SetNillablePartIndex sets the "part_index" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillablePartIndex(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetPartIndex(*v)
	}
	return _u
}

// AddPartIndex adds value to the "part_index" field.
func (_u *ResultEventUpdate) AddPartIndex(v int) *ResultEventUpdate {
	_u.mutation.AddPartIndex(v)
	return _u
}

// SetSlotIndex sets the "slot_index" field.
func (_u *ResultEventUpdate) SetSlotIndex(v int) *ResultEventUpdate {
	_u.mutation.ResetSlotIndex()
	_u.mutation.SetSlotIndex(v)
	return _u
}

// SetNillableSlotIndex sets the "slot_index" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableSlotIndex(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetSlotIndex(*v)
	}
	return _u
}

// AddSlotIndex adds value to the "slot_index" field.
func (_u *ResultEventUpdate) AddSlotIndex(v int) *ResultEventUpdate {
	_u.mutation.AddSlotIndex(v)
	return _u
}

// SetEpoch sets the "epoch" field.
func (_u *ResultEventUpdate) SetEpoch(v int) *ResultEventUpdate {
	_u.mutation.ResetEpoch()
	_u.mutation.SetEpoch(v)
	return _u
}

// SetNillableEpoch sets the "epoch" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableEpoch(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetEpoch(*v)
	}
	return _u
}

// AddEpoch adds value to the "epoch" field.
func (_u *ResultEventUpdate) AddEpoch(v int) *ResultEventUpdate {
	_u.mutation.AddEpoch(v)
	return _u
}

// SetProblemText sets the "problem_text" field.
func (_u *ResultEventUpdate) SetProblemText(v string) *ResultEventUpdate {
	_u.mutation.SetProblemText(v)
	return _u
}

// SetNillableProblemText sets the "problem_text" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableProblemText(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetProblemText(*v)
	}
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *ResultEventUpdate) SetExpectedAnswer(v int) *ResultEventUpdate {
	_u.mutation.ResetExpectedAnswer()
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableExpectedAnswer(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// AddExpectedAnswer adds value to the "expected_answer" field.
func (_u *ResultEventUpdate) AddExpectedAnswer(v int) *ResultEventUpdate {
	_u.mutation.AddExpectedAnswer(v)
	return _u
}

// SetGivenAnswer sets the "given_answer" field.
func (_u *ResultEventUpdate) SetGivenAnswer(v int) *ResultEventUpdate {
	_u.mutation.ResetGivenAnswer()
	_u.mutation.SetGivenAnswer(v)
	return _u
}

// SetNillableGivenAnswer sets the "given_answer" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableGivenAnswer(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetGivenAnswer(*v)
	}
	return _u
}

// AddGivenAnswer adds value to the "given_answer" field.
func (_u *ResultEventUpdate) AddGivenAnswer(v int) *ResultEventUpdate {
	_u.mutation.AddGivenAnswer(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResultEventUpdate) SetCorrect(v bool) *ResultEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableCorrect(v *bool) *ResultEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetResponseMs sets the "response_ms" field.
func (_u *ResultEventUpdate) SetResponseMs(v int64) *ResultEventUpdate {
	_u.mutation.ResetResponseMs()
	_u.mutation.SetResponseMs(v)
	return _u
}

// SetNillableResponseMs sets the "response_ms" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableResponseMs(v *int64) *ResultEventUpdate {
	if v != nil {
		_u.SetResponseMs(*v)
	}
	return _u
}

// AddResponseMs adds value to the "response_ms" field.
func (_u *ResultEventUpdate) AddResponseMs(v int64) *ResultEventUpdate {
	_u.mutation.AddResponseMs(v)
	return _u
}

// SetWrongAttempts sets the "wrong_attempts" field.
func (_u *ResultEventUpdate) SetWrongAttempts(v int) *ResultEventUpdate {
	_u.mutation.ResetWrongAttempts()
	_u.mutation.SetWrongAttempts(v)
	return _u
}

// SetNillableWrongAttempts sets the "wrong_attempts" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableWrongAttempts(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetWrongAttempts(*v)
	}
	return _u
}

// AddWrongAttempts adds value to the "wrong_attempts" field.
func (_u *ResultEventUpdate) AddWrongAttempts(v int) *ResultEventUpdate {
	_u.mutation.AddWrongAttempts(v)
	return _u
}

// SetUsedHelp sets the "used_help" field.
func (_u *ResultEventUpdate) SetUsedHelp(v bool) *ResultEventUpdate {
	_u.mutation.SetUsedHelp(v)
	return _u
}

// SetNillableUsedHelp sets the "used_help" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableUsedHelp(v *bool) *ResultEventUpdate {
	if v != nil {
		_u.SetUsedHelp(*v)
	}
	return _u
}

// SetIsRetry sets the "is_retry" field.
func (_u *ResultEventUpdate) SetIsRetry(v bool) *ResultEventUpdate {
	_u.mutation.SetIsRetry(v)
	return _u
}

// SetNillableIsRetry sets the "is_retry" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableIsRetry(v *bool) *ResultEventUpdate {
	if v != nil {
		_u.SetIsRetry(*v)
	}
	return _u
}

// SetOriginalSlot sets the "original_slot" field.
func (_u *ResultEventUpdate) SetOriginalSlot(v int) *ResultEventUpdate {
	_u.mutation.ResetOriginalSlot()
	_u.mutation.SetOriginalSlot(v)
	return _u
}

// SetNillableOriginalSlot sets the "original_slot" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableOriginalSlot(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetOriginalSlot(*v)
	}
	return _u
}

// AddOriginalSlot adds value to the "original_slot" field.
func (_u *ResultEventUpdate) AddOriginalSlot(v int) *ResultEventUpdate {
	_u.mutation.AddOriginalSlot(v)
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdate) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdate) check() error {
	if v, ok := _u.mutation.PlayerID(); ok {
		if err := resultevent.PlayerIDValidator(v); err != nil {
			return &ValidationError{Name: "player_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.player_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlotID(); ok {
		if err := resultevent.SlotIDValidator(v); err != nil {
			return &ValidationError{Name: "slot_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.slot_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemText(); ok {
		if err := resultevent.ProblemTextValidator(v); err != nil {
			return &ValidationError{Name: "problem_text", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.problem_text": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlayerID(); ok {
		_spec.SetField(resultevent.FieldPlayerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlotID(); ok {
		_spec.SetField(resultevent.FieldSlotID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartIndex(); ok {
		_spec.SetField(resultevent.FieldPartIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPartIndex(); ok {
		_spec.AddField(resultevent.FieldPartIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SlotIndex(); ok {
		_spec.SetField(resultevent.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlotIndex(); ok {
		_spec.AddField(resultevent.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Epoch(); ok {
		_spec.SetField(resultevent.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEpoch(); ok {
		_spec.AddField(resultevent.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProblemText(); ok {
		_spec.SetField(resultevent.FieldProblemText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(resultevent.FieldExpectedAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpectedAnswer(); ok {
		_spec.AddField(resultevent.FieldExpectedAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GivenAnswer(); ok {
		_spec.SetField(resultevent.FieldGivenAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGivenAnswer(); ok {
		_spec.AddField(resultevent.FieldGivenAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(resultevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseMs(); ok {
		_spec.SetField(resultevent.FieldResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseMs(); ok {
		_spec.AddField(resultevent.FieldResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WrongAttempts(); ok {
		_spec.SetField(resultevent.FieldWrongAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongAttempts(); ok {
		_spec.AddField(resultevent.FieldWrongAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsedHelp(); ok {
		_spec.SetField(resultevent.FieldUsedHelp, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsRetry(); ok {
		_spec.SetField(resultevent.FieldIsRetry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OriginalSlot(); ok {
		_spec.SetField(resultevent.FieldOriginalSlot, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOriginalSlot(); ok {
		_spec.AddField(resultevent.FieldOriginalSlot, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultEventUpdateOne is the builder for updating a single ResultEvent entity.
type ResultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultEventMutation
}

// SetPlayerID sets the "player_id" field.
func (_u *ResultEventUpdateOne) SetPlayerID(v string) *ResultEventUpdateOne {
	_u.mutation.SetPlayerID(v)
	return _u
}

// SetNillablePlayerID sets the "player_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillablePlayerID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetPlayerID(*v)
	}
	return _u
}

// SetSlotID sets the "slot_id" field.
func (_u *ResultEventUpdateOne) SetSlotID(v string) *ResultEventUpdateOne {
	_u.mutation.SetSlotID(v)
	return _u
}

// SetNillableSlotID sets the "slot_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableSlotID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetSlotID(*v)
	}
	return _u
}

// SetPartIndex sets the "part_index" field.
func (_u *ResultEventUpdateOne) SetPartIndex(v int) *ResultEventUpdateOne {
	_u.mutation.ResetPartIndex()
	_u.mutation.SetPartIndex(v)
	return _u
}

// SetNillablePartIndex sets the "part_index" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillablePartIndex(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetPartIndex(*v)
	}
	return _u
}

// AddPartIndex adds value to the "part_index" field.
func (_u *ResultEventUpdateOne) AddPartIndex(v int) *ResultEventUpdateOne {
	_u.mutation.AddPartIndex(v)
	return _u
}

// SetSlotIndex sets the "slot_index" field.
func (_u *ResultEventUpdateOne) SetSlotIndex(v int) *ResultEventUpdateOne {
	_u.mutation.ResetSlotIndex()
	_u.mutation.SetSlotIndex(v)
	return _u
}

// SetNillableSlotIndex sets the "slot_index" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableSlotIndex(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetSlotIndex(*v)
	}
	return _u
}

// AddSlotIndex adds value to the "slot_index" field.
func (_u *ResultEventUpdateOne) AddSlotIndex(v int) *ResultEventUpdateOne {
	_u.mutation.AddSlotIndex(v)
	return _u
}

// SetEpoch sets the "epoch" field.
func (_u *ResultEventUpdateOne) SetEpoch(v int) *ResultEventUpdateOne {
	_u.mutation.ResetEpoch()
	_u.mutation.SetEpoch(v)
	return _u
}

// SetNillableEpoch sets the "epoch" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableEpoch(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetEpoch(*v)
	}
	return _u
}

// AddEpoch adds value to the "epoch" field.
func (_u *ResultEventUpdateOne) AddEpoch(v int) *ResultEventUpdateOne {
	_u.mutation.AddEpoch(v)
	return _u
}

// SetProblemText sets the "problem_text" field.
func (_u *ResultEventUpdateOne) SetProblemText(v string) *ResultEventUpdateOne {
	_u.mutation.SetProblemText(v)
	return _u
}

// SetNillableProblemText sets the "problem_text" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableProblemText(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetProblemText(*v)
	}
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *ResultEventUpdateOne) SetExpectedAnswer(v int) *ResultEventUpdateOne {
	_u.mutation.ResetExpectedAnswer()
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableExpectedAnswer(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// AddExpectedAnswer adds value to the "expected_answer" field.
func (_u *ResultEventUpdateOne) AddExpectedAnswer(v int) *ResultEventUpdateOne {
	_u.mutation.AddExpectedAnswer(v)
	return _u
}

// SetGivenAnswer sets the "given_answer" field.
func (_u *ResultEventUpdateOne) SetGivenAnswer(v int) *ResultEventUpdateOne {
	_u.mutation.ResetGivenAnswer()
	_u.mutation.SetGivenAnswer(v)
	return _u
}

// SetNillableGivenAnswer sets the "given_answer" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableGivenAnswer(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetGivenAnswer(*v)
	}
	return _u
}

// AddGivenAnswer adds value to the "given_answer" field.
func (_u *ResultEventUpdateOne) AddGivenAnswer(v int) *ResultEventUpdateOne {
	_u.mutation.AddGivenAnswer(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResultEventUpdateOne) SetCorrect(v bool) *ResultEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableCorrect(v *bool) *ResultEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetResponseMs sets the "response_ms" field.
func (_u *ResultEventUpdateOne) SetResponseMs(v int64) *ResultEventUpdateOne {
	_u.mutation.ResetResponseMs()
	_u.mutation.SetResponseMs(v)
	return _u
}

// SetNillableResponseMs sets the "response_ms" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableResponseMs(v *int64) *ResultEventUpdateOne {
	if v != nil {
		_u.SetResponseMs(*v)
	}
	return _u
}

// AddResponseMs adds value to the "response_ms" field.
func (_u *ResultEventUpdateOne) AddResponseMs(v int64) *ResultEventUpdateOne {
	_u.mutation.AddResponseMs(v)
	return _u
}

// SetWrongAttempts sets the "wrong_attempts" field.
func (_u *ResultEventUpdateOne) SetWrongAttempts(v int) *ResultEventUpdateOne {
	_u.mutation.ResetWrongAttempts()
	_u.mutation.SetWrongAttempts(v)
	return _u
}

// SetNillableWrongAttempts sets the "wrong_attempts" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableWrongAttempts(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetWrongAttempts(*v)
	}
	return _u
}

// AddWrongAttempts adds value to the "wrong_attempts" field.
func (_u *ResultEventUpdateOne) AddWrongAttempts(v int) *ResultEventUpdateOne {
	_u.mutation.AddWrongAttempts(v)
	return _u
}

// SetUsedHelp sets the "used_help" field.
func (_u *ResultEventUpdateOne) SetUsedHelp(v bool) *ResultEventUpdateOne {
	_u.mutation.SetUsedHelp(v)
	return _u
}

// SetNillableUsedHelp sets the "used_help" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableUsedHelp(v *bool) *ResultEventUpdateOne {
	if v != nil {
		_u.SetUsedHelp(*v)
	}
	return _u
}

// SetIsRetry sets the "is_retry" field.
func (_u *ResultEventUpdateOne) SetIsRetry(v bool) *ResultEventUpdateOne {
	_u.mutation.SetIsRetry(v)
	return _u
}

// SetNillableIsRetry sets the "is_retry" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableIsRetry(v *bool) *ResultEventUpdateOne {
	if v != nil {
		_u.SetIsRetry(*v)
	}
	return _u
}

// SetOriginalSlot sets the "original_slot" field.
func (_u *ResultEventUpdateOne) SetOriginalSlot(v int) *ResultEventUpdateOne {
	_u.mutation.ResetOriginalSlot()
	_u.mutation.SetOriginalSlot(v)
	return _u
}

// SetNillableOriginalSlot sets the "original_slot" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableOriginalSlot(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetOriginalSlot(*v)
	}
	return _u
}

// AddOriginalSlot adds value to the "original_slot" field.
func (_u *ResultEventUpdateOne) AddOriginalSlot(v int) *ResultEventUpdateOne {
	_u.mutation.AddOriginalSlot(v)
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdateOne) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdateOne) Where(ps ...predicate.ResultEvent) *ResultEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultEventUpdateOne) Select(field string, fields ...string) *ResultEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResultEvent entity.
func (_u *ResultEventUpdateOne) Save(ctx context.Context) (*ResultEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdateOne) SaveX(ctx context.Context) *ResultEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdateOne) check() error {
	if v, ok := _u.mutation.PlayerID(); ok {
		if err := resultevent.PlayerIDValidator(v); err != nil {
			return &ValidationError{Name: "player_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.player_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SlotID(); ok {
		if err := resultevent.SlotIDValidator(v); err != nil {
			return &ValidationError{Name: "slot_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.slot_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProblemText(); ok {
		if err := resultevent.ProblemTextValidator(v); err != nil {
			return &ValidationError{Name: "problem_text", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.problem_text": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdateOne) sqlSave(ctx context.Context) (_node *ResultEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resultevent.FieldID)
		for _, f := range fields {
			if !resultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resultevent.FieldID {
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
	if value, ok := _u.mutation.PlayerID(); ok {
		_spec.SetField(resultevent.FieldPlayerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SlotID(); ok {
		_spec.SetField(resultevent.FieldSlotID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartIndex(); ok {
		_spec.SetField(resultevent.FieldPartIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPartIndex(); ok {
		_spec.AddField(resultevent.FieldPartIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SlotIndex(); ok {
		_spec.SetField(resultevent.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlotIndex(); ok {
		_spec.AddField(resultevent.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Epoch(); ok {
		_spec.SetField(resultevent.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEpoch(); ok {
		_spec.AddField(resultevent.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProblemText(); ok {
		_spec.SetField(resultevent.FieldProblemText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(resultevent.FieldExpectedAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExpectedAnswer(); ok {
		_spec.AddField(resultevent.FieldExpectedAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GivenAnswer(); ok {
		_spec.SetField(resultevent.FieldGivenAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGivenAnswer(); ok {
		_spec.AddField(resultevent.FieldGivenAnswer, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(resultevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseMs(); ok {
		_spec.SetField(resultevent.FieldResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResponseMs(); ok {
		_spec.AddField(resultevent.FieldResponseMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.WrongAttempts(); ok {
		_spec.SetField(resultevent.FieldWrongAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongAttempts(); ok {
		_spec.AddField(resultevent.FieldWrongAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsedHelp(); ok {
		_spec.SetField(resultevent.FieldUsedHelp, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsRetry(); ok {
		_spec.SetField(resultevent.FieldIsRetry, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OriginalSlot(); ok {
		_spec.SetField(resultevent.FieldOriginalSlot, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOriginalSlot(); ok {
		_spec.AddField(resultevent.FieldOriginalSlot, field.TypeInt, value)
	}
	_node = &ResultEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
