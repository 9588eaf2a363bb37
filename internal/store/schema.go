package store

import (
	"context"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table definitions in the shape ent's migrator expects. Every event table
// carries the shared sequence and timestamp columns.

var (
	sessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "attempted", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "best_streak", Type: field.TypeInt, Default: 0},
		{Name: "stars", Type: field.TypeInt, Default: 0},
		{Name: "badges", Type: field.TypeInt, Default: 0},
		{Name: "planets", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	sessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    sessionEventsColumns,
		PrimaryKey: []*schema.Column{sessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "sessionevent_session_id", Columns: []*schema.Column{sessionEventsColumns[3]}},
			{Name: "sessionevent_action", Columns: []*schema.Column{sessionEventsColumns[4]}},
		},
	}

	rewardEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "reward_type", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "rarity", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
	}
	rewardEventsTable = &schema.Table{
		Name:       "reward_events",
		Columns:    rewardEventsColumns,
		PrimaryKey: []*schema.Column{rewardEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "rewardevent_session_id", Columns: []*schema.Column{rewardEventsColumns[3]}},
			{Name: "rewardevent_reward_type", Columns: []*schema.Column{rewardEventsColumns[4]}},
		},
	}

	snapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	snapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    snapshotsColumns,
		PrimaryKey: []*schema.Column{snapshotsColumns[0]},
	}

	tables = []*schema.Table{
		sessionEventsTable,
		rewardEventsTable,
		snapshotsTable,
	}
)

// migrate creates or updates all tables.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}
