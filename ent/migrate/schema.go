// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssistEventsColumns holds the columns for the "assist_events" table.
	AssistEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "slot_id", Type: field.TypeString},
		{Name: "from_state", Type: field.TypeString},
		{Name: "to_state", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
	}
	// AssistEventsTable holds the schema information for the "assist_events" table.
	AssistEventsTable = &schema.Table{
		Name:       "assist_events",
		Columns:    AssistEventsColumns,
		PrimaryKey: []*schema.Column{AssistEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assistevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssistEventsColumns[1]},
			},
			{
				Name:    "assistevent_plan_id",
				Unique:  false,
				Columns: []*schema.Column{AssistEventsColumns[3]},
			},
			{
				Name:    "assistevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssistEventsColumns[2]},
			},
			{
				Name:    "assistevent_to_state",
				Unique:  false,
				Columns: []*schema.Column{AssistEventsColumns[6]},
			},
		},
	}
	// PlanSnapshotsColumns holds the columns for the "plan_snapshots" table.
	PlanSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// PlanSnapshotsTable holds the schema information for the "plan_snapshots" table.
	PlanSnapshotsTable = &schema.Table{
		Name:       "plan_snapshots",
		Columns:    PlanSnapshotsColumns,
		PrimaryKey: []*schema.Column{PlanSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "plansnapshot_plan_id",
				Unique:  false,
				Columns: []*schema.Column{PlanSnapshotsColumns[1]},
			},
			{
				Name:    "plansnapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{PlanSnapshotsColumns[2]},
			},
		},
	}
	// ResultEventsColumns holds the columns for the "result_events" table.
	ResultEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "player_id", Type: field.TypeString},
		{Name: "slot_id", Type: field.TypeString},
		{Name: "part_index", Type: field.TypeInt},
		{Name: "slot_index", Type: field.TypeInt},
		{Name: "epoch", Type: field.TypeInt, Default: 0},
		{Name: "problem_text", Type: field.TypeString},
		{Name: "expected_answer", Type: field.TypeInt},
		{Name: "given_answer", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "response_ms", Type: field.TypeInt64},
		{Name: "wrong_attempts", Type: field.TypeInt, Default: 0},
		{Name: "used_help", Type: field.TypeBool, Default: false},
		{Name: "is_retry", Type: field.TypeBool, Default: false},
		{Name: "original_slot", Type: field.TypeInt, Default: 0},
	}
	// ResultEventsTable holds the schema information for the "result_events" table.
	ResultEventsTable = &schema.Table{
		Name:       "result_events",
		Columns:    ResultEventsColumns,
		PrimaryKey: []*schema.Column{ResultEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resultevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[1]},
			},
			{
				Name:    "resultevent_plan_id",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[3]},
			},
			{
				Name:    "resultevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[2]},
			},
			{
				Name:    "resultevent_slot_id",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[5]},
			},
			{
				Name:    "resultevent_correct",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[12]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "player_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "answered", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "part_health", Type: field.TypeJSON, Nullable: true},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_plan_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssistEventsTable,
		PlanSnapshotsTable,
		ResultEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
