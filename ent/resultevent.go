// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/sumleap/ent/resultevent"
)

// ResultEvent is the model entity for the ResultEvent schema.
type ResultEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Session plan this event belongs to
	PlanID string `json:"plan_id,omitempty"`
	// Who answered
	PlayerID string `json:"player_id,omitempty"`
	// Plan slot this problem occupies
	SlotID string `json:"slot_id,omitempty"`
	// Part position within the plan
	PartIndex int `json:"part_index,omitempty"`
	// Slot position within the part
	SlotIndex int `json:"slot_index,omitempty"`
	// 0 = original pass, >0 = retry pass
	Epoch int `json:"epoch,omitempty"`
	// The problem as shown, e.g. "3 + 5 - 2"
	ProblemText string `json:"problem_text,omitempty"`
	// The canonical correct answer
	ExpectedAnswer int `json:"expected_answer,omitempty"`
	// What the learner entered
	GivenAnswer int `json:"given_answer,omitempty"`
	// Whether the answer was correct
	Correct bool `json:"correct,omitempty"`
	// Milliseconds to answer, pauses excluded
	ResponseMs int64 `json:"response_ms,omitempty"`
	// Incorrect submissions before this one
	WrongAttempts int `json:"wrong_attempts,omitempty"`
	// Whether help mode was entered for this attempt
	UsedHelp bool `json:"used_help,omitempty"`
	// True for redo results, which never move the cursor
	IsRetry bool `json:"is_retry,omitempty"`
	// For redos, the slot index of the original result
	OriginalSlot int `json:"original_slot,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResultEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resultevent.FieldCorrect, resultevent.FieldUsedHelp, resultevent.FieldIsRetry:
			values[i] = new(sql.NullBool)
		case resultevent.FieldID, resultevent.FieldSequence, resultevent.FieldPartIndex, resultevent.FieldSlotIndex, resultevent.FieldEpoch, resultevent.FieldExpectedAnswer, resultevent.FieldGivenAnswer, resultevent.FieldResponseMs, resultevent.FieldWrongAttempts, resultevent.FieldOriginalSlot:
			values[i] = new(sql.NullInt64)
		case resultevent.FieldPlanID, resultevent.FieldPlayerID, resultevent.FieldSlotID, resultevent.FieldProblemText:
			values[i] = new(sql.NullString)
		case resultevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResultEvent fields.
func (_m *ResultEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resultevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case resultevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case resultevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case resultevent.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case resultevent.FieldPlayerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field player_id", values[i])
			} else if value.Valid {
				_m.PlayerID = value.String
			}
		case resultevent.FieldSlotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slot_id", values[i])
			} else if value.Valid {
				_m.SlotID = value.String
			}
		case resultevent.FieldPartIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field part_index", values[i])
			} else if value.Valid {
				_m.PartIndex = int(value.Int64)
			}
		case resultevent.FieldSlotIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field slot_index", values[i])
			} else if value.Valid {
				_m.SlotIndex = int(value.Int64)
			}
		case resultevent.FieldEpoch:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field epoch", values[i])
			} else if value.Valid {
				_m.Epoch = int(value.Int64)
			}
		case resultevent.FieldProblemText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field problem_text", values[i])
			} else if value.Valid {
				_m.ProblemText = value.String
			}
		case resultevent.FieldExpectedAnswer:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field expected_answer", values[i])
			} else if value.Valid {
				_m.ExpectedAnswer = int(value.Int64)
			}
		case resultevent.FieldGivenAnswer:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field given_answer", values[i])
			} else if value.Valid {
				_m.GivenAnswer = int(value.Int64)
			}
		case resultevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case resultevent.FieldResponseMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_ms", values[i])
			} else if value.Valid {
				_m.ResponseMs = value.Int64
			}
		case resultevent.FieldWrongAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wrong_attempts", values[i])
			} else if value.Valid {
				_m.WrongAttempts = int(value.Int64)
			}
		case resultevent.FieldUsedHelp:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field used_help", values[i])
			} else if value.Valid {
				_m.UsedHelp = value.Bool
			}
		case resultevent.FieldIsRetry:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_retry", values[i])
			} else if value.Valid {
				_m.IsRetry = value.Bool
			}
		case resultevent.FieldOriginalSlot:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field original_slot", values[i])
			} else if value.Valid {
				_m.OriginalSlot = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResultEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ResultEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResultEvent.
// Note that you need to call ResultEvent.Unwrap() before calling this method if this ResultEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResultEvent) Update() *ResultEventUpdateOne {
	return NewResultEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResultEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResultEvent) Unwrap() *ResultEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResultEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResultEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ResultEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("player_id=")
	builder.WriteString(_m.PlayerID)
	builder.WriteString(", ")
	builder.WriteString("slot_id=")
	builder.WriteString(_m.SlotID)
	builder.WriteString(", ")
	builder.WriteString("part_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.PartIndex))
	builder.WriteString(", ")
	builder.WriteString("slot_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.SlotIndex))
	builder.WriteString(", ")
	builder.WriteString("epoch=")
	builder.WriteString(fmt.Sprintf("%v", _m.Epoch))
	builder.WriteString(", ")
	builder.WriteString("problem_text=")
	builder.WriteString(_m.ProblemText)
	builder.WriteString(", ")
	builder.WriteString("expected_answer=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedAnswer))
	builder.WriteString(", ")
	builder.WriteString("given_answer=")
	builder.WriteString(fmt.Sprintf("%v", _m.GivenAnswer))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("response_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseMs))
	builder.WriteString(", ")
	builder.WriteString("wrong_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.WrongAttempts))
	builder.WriteString(", ")
	builder.WriteString("used_help=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsedHelp))
	builder.WriteString(", ")
	builder.WriteString("is_retry=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRetry))
	builder.WriteString(", ")
	builder.WriteString("original_slot=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalSlot))
	builder.WriteByte(')')
	return builder.String()
}

// ResultEvents is a parsable slice of ResultEvent.
type ResultEvents []*ResultEvent
