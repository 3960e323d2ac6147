package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Preference stores per-installation settings. Singleton row.
type Preference struct {
	ent.Schema
}

func (Preference) Fields() []ent.Field {
	return []ent.Field{
		field.String("language").
			Default("en").
			Comment("UI language code: ar, en, fr, es"),
	}
}
