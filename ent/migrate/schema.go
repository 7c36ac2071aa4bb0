// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner", Type: field.TypeString},
		{Name: "bank", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "question_id", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_learner_bank",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[6]},
			},
			{
				Name:    "attemptevent_domain",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[7]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[8]},
			},
		},
	}
	// PlanEventsColumns holds the columns for the "plan_events" table.
	PlanEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner", Type: field.TypeString},
		{Name: "bank", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "total_daily", Type: field.TypeInt},
		{Name: "plan", Type: field.TypeJSON},
	}
	// PlanEventsTable holds the schema information for the "plan_events" table.
	PlanEventsTable = &schema.Table{
		Name:       "plan_events",
		Columns:    PlanEventsColumns,
		PrimaryKey: []*schema.Column{PlanEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "planevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[1]},
			},
			{
				Name:    "planevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[2]},
			},
			{
				Name:    "planevent_learner_bank",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[3], PlanEventsColumns[4]},
			},
			{
				Name:    "planevent_phase",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner", Type: field.TypeString},
		{Name: "bank", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_learner_bank_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[2], SnapshotsColumns[4]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		PlanEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
