// Code generated by ent, DO NOT EDIT.

package resultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/sumleap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldPlanID, v))
}

// PlayerID applies equality check predicate on the "player_id" field. It's identical to PlayerIDEQ.
func PlayerID(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldPlayerID, v))
}

// SlotID applies equality check predicate on the "slot_id" field. It's identical to SlotIDEQ.
func SlotID(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSlotID, v))
}

// PartIndex applies equality check predicate on the "part_index" field. It's identical to PartIndexEQ.
func PartIndex(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldPartIndex, v))
}

// SlotIndex applies equality check predicate on the "slot_index" field. It's identical to SlotIndexEQ.
func SlotIndex(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSlotIndex, v))
}

// Epoch applies equality check predicate on the "epoch" field. It's identical to EpochEQ.
func Epoch(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldEpoch, v))
}

// ProblemText applies equality check predicate on the "problem_text" field. It's identical to ProblemTextEQ.
func ProblemText(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldProblemText, v))
}

// ExpectedAnswer applies equality check predicate on the "expected_answer" field. It's identical to ExpectedAnswerEQ.
func ExpectedAnswer(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldExpectedAnswer, v))
}

// GivenAnswer applies equality check predicate on the "given_answer" field. It's identical to GivenAnswerEQ.
func GivenAnswer(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldGivenAnswer, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldCorrect, v))
}

// ResponseMs applies equality check predicate on the "response_ms" field. It's identical to ResponseMsEQ.
func ResponseMs(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldResponseMs, v))
}

// WrongAttempts applies equality check predicate on the "wrong_attempts" field. It's identical to WrongAttemptsEQ.
func WrongAttempts(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldWrongAttempts, v))
}

// UsedHelp applies equality check predicate on the "used_help" field. It's identical to UsedHelpEQ.
func UsedHelp(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldUsedHelp, v))
}

// IsRetry applies equality check predicate on the "is_retry" field. It's identical to IsRetryEQ.
func IsRetry(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldIsRetry, v))
}

// OriginalSlot applies equality check predicate on the "original_slot" field. It's identical to OriginalSlotEQ.
func OriginalSlot(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldOriginalSlot, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldTimestamp, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldPlanID, v))
}

// PlayerIDEQ applies the EQ predicate on the "player_id" field.
func PlayerIDEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldPlayerID, v))
}

// PlayerIDNEQ applies the NEQ predicate on the "player_id" field.
func PlayerIDNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldPlayerID, v))
}

// PlayerIDIn applies the In predicate on the "player_id" field.
func PlayerIDIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldPlayerID, vs...))
}

// PlayerIDNotIn applies the NotIn predicate on the "player_id" field.
func PlayerIDNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldPlayerID, vs...))
}

// PlayerIDGT applies the GT predicate on the "player_id" field.
func PlayerIDGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldPlayerID, v))
}

// PlayerIDGTE applies the GTE predicate on the "player_id" field.
func PlayerIDGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldPlayerID, v))
}

// PlayerIDLT applies the LT predicate on the "player_id" field.
func PlayerIDLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldPlayerID, v))
}

// PlayerIDLTE applies the LTE predicate on the "player_id" field.
func PlayerIDLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldPlayerID, v))
}

// PlayerIDContains applies the Contains predicate on the "player_id" field.
func PlayerIDContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldPlayerID, v))
}

// PlayerIDHasPrefix applies the HasPrefix predicate on the "player_id" field.
func PlayerIDHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldPlayerID, v))
}

// PlayerIDHasSuffix applies the HasSuffix predicate on the "player_id" field.
func PlayerIDHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldPlayerID, v))
}

// PlayerIDEqualFold applies the EqualFold predicate on the "player_id" field.
func PlayerIDEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldPlayerID, v))
}

// PlayerIDContainsFold applies the ContainsFold predicate on the "player_id" field.
func PlayerIDContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldPlayerID, v))
}

// SlotIDEQ applies the EQ predicate on the "slot_id" field.
func SlotIDEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSlotID, v))
}

// SlotIDNEQ applies the NEQ predicate on the "slot_id" field.
func SlotIDNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldSlotID, v))
}

// SlotIDIn applies the In predicate on the "slot_id" field.
func SlotIDIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldSlotID, vs...))
}

// SlotIDNotIn applies the NotIn predicate on the "slot_id" field.
func SlotIDNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldSlotID, vs...))
}

// SlotIDGT applies the GT predicate on the "slot_id" field.
func SlotIDGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldSlotID, v))
}

// SlotIDGTE applies the GTE predicate on the "slot_id" field.
func SlotIDGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldSlotID, v))
}

// SlotIDLT applies the LT predicate on the "slot_id" field.
func SlotIDLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldSlotID, v))
}

// SlotIDLTE applies the LTE predicate on the "slot_id" field.
func SlotIDLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldSlotID, v))
}

// SlotIDContains applies the Contains predicate on the "slot_id" field.
func SlotIDContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldSlotID, v))
}

// SlotIDHasPrefix applies the HasPrefix predicate on the "slot_id" field.
func SlotIDHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldSlotID, v))
}

// SlotIDHasSuffix applies the HasSuffix predicate on the "slot_id" field.
func SlotIDHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldSlotID, v))
}

// SlotIDEqualFold applies the EqualFold predicate on the "slot_id" field.
func SlotIDEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldSlotID, v))
}

// SlotIDContainsFold applies the ContainsFold predicate on the "slot_id" field.
func SlotIDContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldSlotID, v))
}

// PartIndexEQ applies the EQ predicate on the "part_index" field.
func PartIndexEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldPartIndex, v))
}

// PartIndexNEQ applies the NEQ predicate on the "part_index" field.
func PartIndexNEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldPartIndex, v))
}

// PartIndexIn applies the In predicate on the "part_index" field.
func PartIndexIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldPartIndex, vs...))
}

// PartIndexNotIn applies the NotIn predicate on the "part_index" field.
func PartIndexNotIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldPartIndex, vs...))
}

// PartIndexGT applies the GT predicate on the "part_index" field.
func PartIndexGT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldPartIndex, v))
}

// PartIndexGTE applies the GTE predicate on the "part_index" field.
func PartIndexGTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldPartIndex, v))
}

// PartIndexLT applies the LT predicate on the "part_index" field.
func PartIndexLT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldPartIndex, v))
}

// PartIndexLTE applies the LTE predicate on the "part_index" field.
func PartIndexLTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldPartIndex, v))
}

// SlotIndexEQ applies the EQ predicate on the "slot_index" field.
func SlotIndexEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSlotIndex, v))
}

// SlotIndexNEQ applies the NEQ predicate on the "slot_index" field.
func SlotIndexNEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldSlotIndex, v))
}

// SlotIndexIn applies the In predicate on the "slot_index" field.
func SlotIndexIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldSlotIndex, vs...))
}

// SlotIndexNotIn applies the NotIn predicate on the "slot_index" field.
func SlotIndexNotIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldSlotIndex, vs...))
}

// SlotIndexGT applies the GT predicate on the "slot_index" field.
func SlotIndexGT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldSlotIndex, v))
}

// SlotIndexGTE applies the GTE predicate on the "slot_index" field.
func SlotIndexGTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldSlotIndex, v))
}

// SlotIndexLT applies the LT predicate on the "slot_index" field.
func SlotIndexLT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldSlotIndex, v))
}

// SlotIndexLTE applies the LTE predicate on the "slot_index" field.
func SlotIndexLTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldSlotIndex, v))
}

// EpochEQ applies the EQ predicate on the "epoch" field.
func EpochEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldEpoch, v))
}

// EpochNEQ applies the NEQ predicate on the "epoch" field.
func EpochNEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldEpoch, v))
}

// EpochIn applies the In predicate on the "epoch" field.
func EpochIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldEpoch, vs...))
}

// EpochNotIn applies the NotIn predicate on the "epoch" field.
func EpochNotIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldEpoch, vs...))
}

// EpochGT applies the GT predicate on the "epoch" field.
func EpochGT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldEpoch, v))
}

// EpochGTE applies the GTE predicate on the "epoch" field.
func EpochGTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldEpoch, v))
}

// EpochLT applies the LT predicate on the "epoch" field.
func EpochLT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldEpoch, v))
}

// EpochLTE applies the LTE predicate on the "epoch" field.
func EpochLTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldEpoch, v))
}

// ProblemTextEQ applies the EQ predicate on the "problem_text" field.
func ProblemTextEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldProblemText, v))
}

// ProblemTextNEQ applies the NEQ predicate on the "problem_text" field.
func ProblemTextNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldProblemText, v))
}

// ProblemTextIn applies the In predicate on the "problem_text" field.
func ProblemTextIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldProblemText, vs...))
}

// ProblemTextNotIn applies the NotIn predicate on the "problem_text" field.
func ProblemTextNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldProblemText, vs...))
}

// ProblemTextGT applies the GT predicate on the "problem_text" field.
func ProblemTextGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldProblemText, v))
}

// ProblemTextGTE applies the GTE predicate on the "problem_text" field.
func ProblemTextGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldProblemText, v))
}

// ProblemTextLT applies the LT predicate on the "problem_text" field.
func ProblemTextLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldProblemText, v))
}

// ProblemTextLTE applies the LTE predicate on the "problem_text" field.
func ProblemTextLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldProblemText, v))
}

// ProblemTextContains applies the Contains predicate on the "problem_text" field.
func ProblemTextContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldProblemText, v))
}

// ProblemTextHasPrefix applies the HasPrefix predicate on the "problem_text" field.
func ProblemTextHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldProblemText, v))
}

// ProblemTextHasSuffix applies the HasSuffix predicate on the "problem_text" field.
func ProblemTextHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldProblemText, v))
}

// ProblemTextEqualFold applies the EqualFold predicate on the "problem_text" field.
func ProblemTextEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldProblemText, v))
}

// ProblemTextContainsFold applies the ContainsFold predicate on the "problem_text" field.
func ProblemTextContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldProblemText, v))
}

// ExpectedAnswerEQ applies the EQ predicate on the "expected_answer" field.
func ExpectedAnswerEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldExpectedAnswer, v))
}

// ExpectedAnswerNEQ applies the NEQ predicate on the "expected_answer" field.
func ExpectedAnswerNEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldExpectedAnswer, v))
}

// ExpectedAnswerIn applies the In predicate on the "expected_answer" field.
func ExpectedAnswerIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldExpectedAnswer, vs...))
}

// ExpectedAnswerNotIn applies the NotIn predicate on the "expected_answer" field.
func ExpectedAnswerNotIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldExpectedAnswer, vs...))
}

// ExpectedAnswerGT applies the GT predicate on the "expected_answer" field.
func ExpectedAnswerGT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldExpectedAnswer, v))
}

// ExpectedAnswerGTE applies the GTE predicate on the "expected_answer" field.
func ExpectedAnswerGTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldExpectedAnswer, v))
}

// ExpectedAnswerLT applies the LT predicate on the "expected_answer" field.
func ExpectedAnswerLT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldExpectedAnswer, v))
}

// ExpectedAnswerLTE applies the LTE predicate on the "expected_answer" field.
func ExpectedAnswerLTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldExpectedAnswer, v))
}

// GivenAnswerEQ applies the EQ predicate on the "given_answer" field.
func GivenAnswerEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldGivenAnswer, v))
}

// GivenAnswerNEQ applies the NEQ predicate on the "given_answer" field.
func GivenAnswerNEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldGivenAnswer, v))
}

// GivenAnswerIn applies the In predicate on the "given_answer" field.
func GivenAnswerIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldGivenAnswer, vs...))
}

// GivenAnswerNotIn applies the NotIn predicate on the "given_answer" field.
func GivenAnswerNotIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldGivenAnswer, vs...))
}

// GivenAnswerGT applies the GT predicate on the "given_answer" field.
func GivenAnswerGT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldGivenAnswer, v))
}

// GivenAnswerGTE applies the GTE predicate on the "given_answer" field.
func GivenAnswerGTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldGivenAnswer, v))
}

// GivenAnswerLT applies the LT predicate on the "given_answer" field.
func GivenAnswerLT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldGivenAnswer, v))
}

// GivenAnswerLTE applies the LTE predicate on the "given_answer" field.
func GivenAnswerLTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldGivenAnswer, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldCorrect, v))
}

// ResponseMsEQ applies the EQ predicate on the "response_ms" field.
func ResponseMsEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldResponseMs, v))
}

// ResponseMsNEQ applies the NEQ predicate on the "response_ms" field.
func ResponseMsNEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldResponseMs, v))
}

// ResponseMsIn applies the In predicate on the "response_ms" field.
func ResponseMsIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldResponseMs, vs...))
}

// ResponseMsNotIn applies the NotIn predicate on the "response_ms" field.
func ResponseMsNotIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldResponseMs, vs...))
}

// ResponseMsGT applies the GT predicate on the "response_ms" field.
func ResponseMsGT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldResponseMs, v))
}

// ResponseMsGTE applies the GTE predicate on the "response_ms" field.
func ResponseMsGTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldResponseMs, v))
}

// ResponseMsLT applies the LT predicate on the "response_ms" field.
func ResponseMsLT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldResponseMs, v))
}

// ResponseMsLTE applies the LTE predicate on the "response_ms" field.
func ResponseMsLTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldResponseMs, v))
}

// WrongAttemptsEQ applies the EQ predicate on the "wrong_attempts" field.
func WrongAttemptsEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldWrongAttempts, v))
}

// WrongAttemptsNEQ applies the NEQ predicate on the "wrong_attempts" field.
func WrongAttemptsNEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldWrongAttempts, v))
}

// WrongAttemptsIn applies the In predicate on the "wrong_attempts" field.
func WrongAttemptsIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldWrongAttempts, vs...))
}

// WrongAttemptsNotIn applies the NotIn predicate on the "wrong_attempts" field.
func WrongAttemptsNotIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldWrongAttempts, vs...))
}

// WrongAttemptsGT applies the GT predicate on the "wrong_attempts" field.
func WrongAttemptsGT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldWrongAttempts, v))
}

// WrongAttemptsGTE applies the GTE predicate on the "wrong_attempts" field.
func WrongAttemptsGTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldWrongAttempts, v))
}

// WrongAttemptsLT applies the LT predicate on the "wrong_attempts" field.
func WrongAttemptsLT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldWrongAttempts, v))
}

// WrongAttemptsLTE applies the LTE predicate on the "wrong_attempts" field.
func WrongAttemptsLTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldWrongAttempts, v))
}

// UsedHelpEQ applies the EQ predicate on the "used_help" field.
func UsedHelpEQ(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldUsedHelp, v))
}

// UsedHelpNEQ applies the NEQ predicate on the "used_help" field.
func UsedHelpNEQ(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldUsedHelp, v))
}

// IsRetryEQ applies the EQ predicate on the "is_retry" field.
func IsRetryEQ(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldIsRetry, v))
}

// IsRetryNEQ applies the NEQ predicate on the "is_retry" field.
func IsRetryNEQ(v bool) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldIsRetry, v))
}

// OriginalSlotEQ applies the EQ predicate on the "original_slot" field.
func OriginalSlotEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldOriginalSlot, v))
}

// OriginalSlotNEQ applies the NEQ predicate on the "original_slot" field.
func OriginalSlotNEQ(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldOriginalSlot, v))
}

// OriginalSlotIn applies the In predicate on the "original_slot" field.
func OriginalSlotIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldOriginalSlot, vs...))
}

// OriginalSlotNotIn applies the NotIn predicate on the "original_slot" field.
func OriginalSlotNotIn(vs ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldOriginalSlot, vs...))
}

// OriginalSlotGT applies the GT predicate on the "original_slot" field.
func OriginalSlotGT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldOriginalSlot, v))
}

// OriginalSlotGTE applies the GTE predicate on the "original_slot" field.
func OriginalSlotGTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldOriginalSlot, v))
}

// OriginalSlotLT applies the LT predicate on the "original_slot" field.
func OriginalSlotLT(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldOriginalSlot, v))
}

// OriginalSlotLTE applies the LTE predicate on the "original_slot" field.
func OriginalSlotLTE(v int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldOriginalSlot, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.NotPredicates(p))
}
