package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ActionStats counts completed actions per kind. Singleton row, created
// lazily with all counts zero; counts only ever increment.
type ActionStats struct {
	ent.Schema
}

func (ActionStats) Fields() []ent.Field {
	return []ent.Field{
		field.Int("summary_count").
			Default(0).
			NonNegative(),
		field.Int("quiz_count").
			Default(0).
			NonNegative(),
		field.Int("plan_count").
			Default(0).
			NonNegative(),
	}
}
