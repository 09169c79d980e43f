// Code generated by ent, DO NOT EDIT.

package resultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the resultevent type in the database.
	Label = "result_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldPlayerID holds the string denoting the player_id field in the database.
	FieldPlayerID = "player_id"
	// FieldSlotID holds the string denoting the slot_id field in the database.
	FieldSlotID = "slot_id"
	// FieldPartIndex holds the string denoting the part_index field in the database.
	FieldPartIndex = "part_index"
	// FieldSlotIndex holds the string denoting the slot_index field in the database.
	FieldSlotIndex = "slot_index"
	// FieldEpoch holds the string denoting the epoch field in the database.
	FieldEpoch = "epoch"
	// FieldProblemText holds the string denoting the problem_text field in the database.
	FieldProblemText = "problem_text"
	// FieldExpectedAnswer holds the string denoting the expected_answer field in the database.
	FieldExpectedAnswer = "expected_answer"
	// FieldGivenAnswer holds the string denoting the given_answer field in the database.
	FieldGivenAnswer = "given_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldResponseMs holds the string denoting the response_ms field in the database.
	FieldResponseMs = "response_ms"
	// FieldWrongAttempts holds the string denoting the wrong_attempts field in the database.
	FieldWrongAttempts = "wrong_attempts"
	// FieldUsedHelp holds the string denoting the used_help field in the database.
	FieldUsedHelp = "used_help"
	// FieldIsRetry holds the string denoting the is_retry field in the database.
	FieldIsRetry = "is_retry"
	// FieldOriginalSlot holds the string denoting the original_slot field in the database.
	FieldOriginalSlot = "original_slot"
	// Table holds the table name of the resultevent in the database.
	Table = "result_events"
)

// Columns holds all SQL columns for resultevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldPlanID,
	FieldPlayerID,
	FieldSlotID,
	FieldPartIndex,
	FieldSlotIndex,
	FieldEpoch,
	FieldProblemText,
	FieldExpectedAnswer,
	FieldGivenAnswer,
	FieldCorrect,
	FieldResponseMs,
	FieldWrongAttempts,
	FieldUsedHelp,
	FieldIsRetry,
	FieldOriginalSlot,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	PlanIDValidator func(string) error
	// PlayerIDValidator is a validator for the "player_id" field. It is called by the builders before save.
	PlayerIDValidator func(string) error
	// SlotIDValidator is a validator for the "slot_id" field. It is called by the builders before save.
	SlotIDValidator func(string) error
	// DefaultEpoch holds the default value on creation for the "epoch" field.
	DefaultEpoch int
	// ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	ProblemTextValidator func(string) error
	// DefaultWrongAttempts holds the default value on creation for the "wrong_attempts" field.
	DefaultWrongAttempts int
	// DefaultUsedHelp holds the default value on creation for the "used_help" field.
	DefaultUsedHelp bool
	// DefaultIsRetry holds the default value on creation for the "is_retry" field.
	DefaultIsRetry bool
	// DefaultOriginalSlot holds the default value on creation for the "original_slot" field.
	DefaultOriginalSlot int
)

// OrderOption defines the ordering options for the ResultEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByPlayerID orders the results by the player_id field.
func ByPlayerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlayerID, opts...).ToFunc()
}

// BySlotID orders the results by the slot_id field.
func BySlotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotID, opts...).ToFunc()
}

// ByPartIndex orders the results by the part_index field.
func ByPartIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartIndex, opts...).ToFunc()
}

// BySlotIndex orders the results by the slot_index field.
func BySlotIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotIndex, opts...).ToFunc()
}

// ByEpoch orders the results by the epoch field.
func ByEpoch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEpoch, opts...).ToFunc()
}

// ByProblemText orders the results by the problem_text field.
func ByProblemText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProblemText, opts...).ToFunc()
}

// ByExpectedAnswer orders the results by the expected_answer field.
func ByExpectedAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedAnswer, opts...).ToFunc()
}

// ByGivenAnswer orders the results by the given_answer field.
func ByGivenAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGivenAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByResponseMs orders the results by the response_ms field.
func ByResponseMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseMs, opts...).ToFunc()
}

// ByWrongAttempts orders the results by the wrong_attempts field.
func ByWrongAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrongAttempts, opts...).ToFunc()
}

// ByUsedHelp orders the results by the used_help field.
func ByUsedHelp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsedHelp, opts...).ToFunc()
}

// ByIsRetry orders the results by the is_retry field.
func ByIsRetry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRetry, opts...).ToFunc()
}

// ByOriginalSlot orders the results by the original_slot field.
func ByOriginalSlot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalSlot, opts...).ToFunc()
}
