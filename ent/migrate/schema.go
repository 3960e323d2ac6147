// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActionStatsColumns holds the columns for the "action_stats" table.
	ActionStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "summary_count", Type: field.TypeInt, Default: 0},
		{Name: "quiz_count", Type: field.TypeInt, Default: 0},
		{Name: "plan_count", Type: field.TypeInt, Default: 0},
	}
	// ActionStatsTable holds the schema information for the "action_stats" table.
	ActionStatsTable = &schema.Table{
		Name:       "action_stats",
		Columns:    ActionStatsColumns,
		PrimaryKey: []*schema.Column{ActionStatsColumns[0]},
	}
	// HistoryEntriesColumns holds the columns for the "history_entries" table.
	HistoryEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "entry_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"summary", "quiz"}},
		{Name: "title", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// HistoryEntriesTable holds the schema information for the "history_entries" table.
	HistoryEntriesTable = &schema.Table{
		Name:       "history_entries",
		Columns:    HistoryEntriesColumns,
		PrimaryKey: []*schema.Column{HistoryEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "historyentry_category_created_at",
				Unique:  false,
				Columns: []*schema.Column{HistoryEntriesColumns[2], HistoryEntriesColumns[5]},
			},
			{
				Name:    "historyentry_entry_id",
				Unique:  true,
				Columns: []*schema.Column{HistoryEntriesColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// PreferencesColumns holds the columns for the "preferences" table.
	PreferencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "language", Type: field.TypeString, Default: "en"},
	}
	// PreferencesTable holds the schema information for the "preferences" table.
	PreferencesTable = &schema.Table{
		Name:       "preferences",
		Columns:    PreferencesColumns,
		PrimaryKey: []*schema.Column{PreferencesColumns[0]},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "level", Type: field.TypeInt, Default: 1},
		{Name: "badges", Type: field.TypeJSON, Nullable: true},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "last_active", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActionStatsTable,
		HistoryEntriesTable,
		LlmRequestEventsTable,
		PreferencesTable,
		ProfilesTable,
	}
)

func init() {
}
