// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActionStats is the predicate function for actionstats builders.
type ActionStats func(*sql.Selector)

// HistoryEntry is the predicate function for historyentry builders.
type HistoryEntry func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Preference is the predicate function for preference builders.
type Preference func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)
