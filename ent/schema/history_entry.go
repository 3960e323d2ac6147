package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HistoryEntry is a saved past result (summary or quiz). Each category keeps
// at most the 20 most recent entries; older ones are pruned on save.
type HistoryEntry struct {
	ent.Schema
}

func (HistoryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("entry_id").
			NotEmpty().
			Comment("Stable UUID assigned on save"),
		field.Enum("category").
			Values("summary", "quiz"),
		field.String("title").
			Comment("Display title or topic"),
		field.Text("payload").
			Comment("Full result content as a JSON document"),
		field.Time("created_at").
			Default(time.Now),
	}
}

func (HistoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category", "created_at"),
		index.Fields("entry_id").Unique(),
	}
}
