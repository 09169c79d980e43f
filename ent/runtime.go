// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/sumleap/ent/assistevent"
	"github.com/abhisek/sumleap/ent/plansnapshot"
	"github.com/abhisek/sumleap/ent/resultevent"
	"github.com/abhisek/sumleap/ent/schema"
	"github.com/abhisek/sumleap/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assisteventMixin := schema.AssistEvent{}.Mixin()
	assisteventMixinFields0 := assisteventMixin[0].Fields()
	_ = assisteventMixinFields0
	assisteventFields := schema.AssistEvent{}.Fields()
	_ = assisteventFields
	// assisteventDescTimestamp is the schema descriptor for timestamp field.
	assisteventDescTimestamp := assisteventMixinFields0[1].Descriptor()
	// assistevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assistevent.DefaultTimestamp = assisteventDescTimestamp.Default.(func() time.Time)
	// assisteventDescPlanID is the schema descriptor for plan_id field.
	assisteventDescPlanID := assisteventMixinFields0[2].Descriptor()
	// assistevent.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	assistevent.PlanIDValidator = assisteventDescPlanID.Validators[0].(func(string) error)
	// assisteventDescSlotID is the schema descriptor for slot_id field.
	assisteventDescSlotID := assisteventFields[0].Descriptor()
	// assistevent.SlotIDValidator is a validator for the "slot_id" field. It is called by the builders before save.
	assistevent.SlotIDValidator = assisteventDescSlotID.Validators[0].(func(string) error)
	// assisteventDescFromState is the schema descriptor for from_state field.
	assisteventDescFromState := assisteventFields[1].Descriptor()
	// assistevent.FromStateValidator is a validator for the "from_state" field. It is called by the builders before save.
	assistevent.FromStateValidator = assisteventDescFromState.Validators[0].(func(string) error)
	// assisteventDescToState is the schema descriptor for to_state field.
	assisteventDescToState := assisteventFields[2].Descriptor()
	// assistevent.ToStateValidator is a validator for the "to_state" field. It is called by the builders before save.
	assistevent.ToStateValidator = assisteventDescToState.Validators[0].(func(string) error)
	// assisteventDescTrigger is the schema descriptor for trigger field.
	assisteventDescTrigger := assisteventFields[3].Descriptor()
	// assistevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	assistevent.TriggerValidator = assisteventDescTrigger.Validators[0].(func(string) error)
	plansnapshotFields := schema.PlanSnapshot{}.Fields()
	_ = plansnapshotFields
	// plansnapshotDescPlanID is the schema descriptor for plan_id field.
	plansnapshotDescPlanID := plansnapshotFields[0].Descriptor()
	// plansnapshot.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	plansnapshot.PlanIDValidator = plansnapshotDescPlanID.Validators[0].(func(string) error)
	// plansnapshotDescTimestamp is the schema descriptor for timestamp field.
	plansnapshotDescTimestamp := plansnapshotFields[2].Descriptor()
	// plansnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	plansnapshot.DefaultTimestamp = plansnapshotDescTimestamp.Default.(func() time.Time)
	resulteventMixin := schema.ResultEvent{}.Mixin()
	resulteventMixinFields0 := resulteventMixin[0].Fields()
	_ = resulteventMixinFields0
	resulteventFields := schema.ResultEvent{}.Fields()
	_ = resulteventFields
	// resulteventDescTimestamp is the schema descriptor for timestamp field.
	resulteventDescTimestamp := resulteventMixinFields0[1].Descriptor()
	// resultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	resultevent.DefaultTimestamp = resulteventDescTimestamp.Default.(func() time.Time)
	// resulteventDescPlanID is the schema descriptor for plan_id field.
	resulteventDescPlanID := resulteventMixinFields0[2].Descriptor()
	// resultevent.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	resultevent.PlanIDValidator = resulteventDescPlanID.Validators[0].(func(string) error)
	// resulteventDescPlayerID is the schema descriptor for player_id field.
	resulteventDescPlayerID := resulteventFields[0].Descriptor()
	// resultevent.PlayerIDValidator is a validator for the "player_id" field. It is called by the builders before save.
	resultevent.PlayerIDValidator = resulteventDescPlayerID.Validators[0].(func(string) error)
	// resulteventDescSlotID is the schema descriptor for slot_id field.
	resulteventDescSlotID := resulteventFields[1].Descriptor()
	// resultevent.SlotIDValidator is a validator for the "slot_id" field. It is called by the builders before save.
	resultevent.SlotIDValidator = resulteventDescSlotID.Validators[0].(func(string) error)
	// resulteventDescEpoch is the schema descriptor for epoch field.
	resulteventDescEpoch := resulteventFields[4].Descriptor()
	// resultevent.DefaultEpoch holds the default value on creation for the epoch field.
	resultevent.DefaultEpoch = resulteventDescEpoch.Default.(int)
	// resulteventDescProblemText is the schema descriptor for problem_text field.
	resulteventDescProblemText := resulteventFields[5].Descriptor()
	// resultevent.ProblemTextValidator is a validator for the "problem_text" field. It is called by the builders before save.
	resultevent.ProblemTextValidator = resulteventDescProblemText.Validators[0].(func(string) error)
	// resulteventDescWrongAttempts is the schema descriptor for wrong_attempts field.
	resulteventDescWrongAttempts := resulteventFields[10].Descriptor()
	// resultevent.DefaultWrongAttempts holds the default value on creation for the wrong_attempts field.
	resultevent.DefaultWrongAttempts = resulteventDescWrongAttempts.Default.(int)
	// resulteventDescUsedHelp is the schema descriptor for used_help field.
	resulteventDescUsedHelp := resulteventFields[11].Descriptor()
	// resultevent.DefaultUsedHelp holds the default value on creation for the used_help field.
	resultevent.DefaultUsedHelp = resulteventDescUsedHelp.Default.(bool)
	// resulteventDescIsRetry is the schema descriptor for is_retry field.
	resulteventDescIsRetry := resulteventFields[12].Descriptor()
	// resultevent.DefaultIsRetry holds the default value on creation for the is_retry field.
	resultevent.DefaultIsRetry = resulteventDescIsRetry.Default.(bool)
	// resulteventDescOriginalSlot is the schema descriptor for original_slot field.
	resulteventDescOriginalSlot := resulteventFields[13].Descriptor()
	// resultevent.DefaultOriginalSlot holds the default value on creation for the original_slot field.
	resultevent.DefaultOriginalSlot = resulteventDescOriginalSlot.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescPlanID is the schema descriptor for plan_id field.
	sessioneventDescPlanID := sessioneventMixinFields0[2].Descriptor()
	// sessionevent.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	sessionevent.PlanIDValidator = sessioneventDescPlanID.Validators[0].(func(string) error)
	// sessioneventDescPlayerID is the schema descriptor for player_id field.
	sessioneventDescPlayerID := sessioneventFields[0].Descriptor()
	// sessionevent.PlayerIDValidator is a validator for the "player_id" field. It is called by the builders before save.
	sessionevent.PlayerIDValidator = sessioneventDescPlayerID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescAnswered is the schema descriptor for answered field.
	sessioneventDescAnswered := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultAnswered holds the default value on creation for the answered field.
	sessionevent.DefaultAnswered = sessioneventDescAnswered.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
