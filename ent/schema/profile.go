package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile holds the single learner's gamification state. Exactly one row
// exists per installation; it is created lazily on first read.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.Int("xp").
			Default(0).
			NonNegative().
			Comment("Cumulative experience points, never decreases"),
		field.Int("level").
			Default(1).
			Positive().
			Comment("Tier derived from xp via floor(1+sqrt(xp/100)), never decreases"),
		field.JSON("badges", []map[string]any{}).
			Optional().
			Comment("Unlocked badge snapshots in unlock order, unique by badge id"),
		field.Int("streak").
			Default(0).
			Comment("Carried field, not computed by any current operation"),
		field.Time("last_active").
			Default(time.Now).
			Comment("Timestamp of the most recent XP-earning action"),
	}
}
