// Code generated by ent, DO NOT EDIT.

package assistevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/sumleap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldTimestamp, v))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldPlanID, v))
}

// SlotID applies equality check predicate on the "slot_id" field. It's identical to SlotIDEQ.
func SlotID(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldSlotID, v))
}

// FromState applies equality check predicate on the "from_state" field. It's identical to FromStateEQ.
func FromState(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldFromState, v))
}

// ToState applies equality check predicate on the "to_state" field. It's identical to ToStateEQ.
func ToState(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldToState, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldTrigger, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLTE(FieldTimestamp, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldContainsFold(FieldPlanID, v))
}

// SlotIDEQ applies the EQ predicate on the "slot_id" field.
func SlotIDEQ(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldSlotID, v))
}

// SlotIDNEQ applies the NEQ predicate on the "slot_id" field.
func SlotIDNEQ(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNEQ(FieldSlotID, v))
}

// SlotIDIn applies the In predicate on the "slot_id" field.
func SlotIDIn(vs ...string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldIn(FieldSlotID, vs...))
}

// SlotIDNotIn applies the NotIn predicate on the "slot_id" field.
func SlotIDNotIn(vs ...string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNotIn(FieldSlotID, vs...))
}

// SlotIDGT applies the GT predicate on the "slot_id" field.
func SlotIDGT(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGT(FieldSlotID, v))
}

// SlotIDGTE applies the GTE predicate on the "slot_id" field.
func SlotIDGTE(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGTE(FieldSlotID, v))
}

// SlotIDLT applies the LT predicate on the "slot_id" field.
func SlotIDLT(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLT(FieldSlotID, v))
}

// SlotIDLTE applies the LTE predicate on the "slot_id" field.
func SlotIDLTE(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLTE(FieldSlotID, v))
}

// SlotIDContains applies the Contains predicate on the "slot_id" field.
func SlotIDContains(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldContains(FieldSlotID, v))
}

// SlotIDHasPrefix applies the HasPrefix predicate on the "slot_id" field.
func SlotIDHasPrefix(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldHasPrefix(FieldSlotID, v))
}

// SlotIDHasSuffix applies the HasSuffix predicate on the "slot_id" field.
func SlotIDHasSuffix(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldHasSuffix(FieldSlotID, v))
}

// SlotIDEqualFold applies the EqualFold predicate on the "slot_id" field.
func SlotIDEqualFold(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEqualFold(FieldSlotID, v))
}

// SlotIDContainsFold applies the ContainsFold predicate on the "slot_id" field.
func SlotIDContainsFold(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldContainsFold(FieldSlotID, v))
}

// FromStateEQ applies the EQ predicate on the "from_state" field.
func FromStateEQ(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldFromState, v))
}

// FromStateNEQ applies the NEQ predicate on the "from_state" field.
func FromStateNEQ(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNEQ(FieldFromState, v))
}

// FromStateIn applies the In predicate on the "from_state" field.
func FromStateIn(vs ...string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldIn(FieldFromState, vs...))
}

// FromStateNotIn applies the NotIn predicate on the "from_state" field.
func FromStateNotIn(vs ...string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNotIn(FieldFromState, vs...))
}

// FromStateGT applies the GT predicate on the "from_state" field.
func FromStateGT(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGT(FieldFromState, v))
}

// FromStateGTE applies the GTE predicate on the "from_state" field.
func FromStateGTE(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGTE(FieldFromState, v))
}

// FromStateLT applies the LT predicate on the "from_state" field.
func FromStateLT(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLT(FieldFromState, v))
}

// FromStateLTE applies the LTE predicate on the "from_state" field.
func FromStateLTE(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLTE(FieldFromState, v))
}

// FromStateContains applies the Contains predicate on the "from_state" field.
func FromStateContains(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldContains(FieldFromState, v))
}

// FromStateHasPrefix applies the HasPrefix predicate on the "from_state" field.
func FromStateHasPrefix(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldHasPrefix(FieldFromState, v))
}

// FromStateHasSuffix applies the HasSuffix predicate on the "from_state" field.
func FromStateHasSuffix(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldHasSuffix(FieldFromState, v))
}

// FromStateEqualFold applies the EqualFold predicate on the "from_state" field.
func FromStateEqualFold(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEqualFold(FieldFromState, v))
}

// FromStateContainsFold applies the ContainsFold predicate on the "from_state" field.
func FromStateContainsFold(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldContainsFold(FieldFromState, v))
}

// ToStateEQ applies the EQ predicate on the "to_state" field.
func ToStateEQ(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldToState, v))
}

// ToStateNEQ applies the NEQ predicate on the "to_state" field.
func ToStateNEQ(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNEQ(FieldToState, v))
}

// ToStateIn applies the In predicate on the "to_state" field.
func ToStateIn(vs ...string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldIn(FieldToState, vs...))
}

// ToStateNotIn applies the NotIn predicate on the "to_state" field.
func ToStateNotIn(vs ...string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNotIn(FieldToState, vs...))
}

// ToStateGT applies the GT predicate on the "to_state" field.
func ToStateGT(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGT(FieldToState, v))
}

// ToStateGTE applies the GTE predicate on the "to_state" field.
func ToStateGTE(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGTE(FieldToState, v))
}

// ToStateLT applies the LT predicate on the "to_state" field.
func ToStateLT(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLT(FieldToState, v))
}

// ToStateLTE applies the LTE predicate on the "to_state" field.
func ToStateLTE(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLTE(FieldToState, v))
}

// ToStateContains applies the Contains predicate on the "to_state" field.
func ToStateContains(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldContains(FieldToState, v))
}

// ToStateHasPrefix applies the HasPrefix predicate on the "to_state" field.
func ToStateHasPrefix(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldHasPrefix(FieldToState, v))
}

// ToStateHasSuffix applies the HasSuffix predicate on the "to_state" field.
func ToStateHasSuffix(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldHasSuffix(FieldToState, v))
}

// ToStateEqualFold applies the EqualFold predicate on the "to_state" field.
func ToStateEqualFold(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEqualFold(FieldToState, v))
}

// ToStateContainsFold applies the ContainsFold predicate on the "to_state" field.
func ToStateContainsFold(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldContainsFold(FieldToState, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.AssistEvent {
	return predicate.AssistEvent(sql.FieldContainsFold(FieldTrigger, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssistEvent) predicate.AssistEvent {
	return predicate.AssistEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssistEvent) predicate.AssistEvent {
	return predicate.AssistEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssistEvent) predicate.AssistEvent {
	return predicate.AssistEvent(sql.NotPredicates(p))
}
