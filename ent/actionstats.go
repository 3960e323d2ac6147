// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/amink/durus/ent/actionstats"
)

// ActionStats is the model entity for the ActionStats schema.
type ActionStats struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SummaryCount holds the value of the "summary_count" field.
	SummaryCount int `json:"summary_count,omitempty"`
	// QuizCount holds the value of the "quiz_count" field.
	QuizCount int `json:"quiz_count,omitempty"`
	// PlanCount holds the value of the "plan_count" field.
	PlanCount    int `json:"plan_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActionStats) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case actionstats.FieldID, actionstats.FieldSummaryCount, actionstats.FieldQuizCount, actionstats.FieldPlanCount:
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActionStats fields.
func (_m *ActionStats) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case actionstats.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case actionstats.FieldSummaryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field summary_count", values[i])
			} else if value.Valid {
				_m.SummaryCount = int(value.Int64)
			}
		case actionstats.FieldQuizCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_count", values[i])
			} else if value.Valid {
				_m.QuizCount = int(value.Int64)
			}
		case actionstats.FieldPlanCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field plan_count", values[i])
			} else if value.Valid {
				_m.PlanCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActionStats.
// This includes values selected through modifiers, order, etc.
func (_m *ActionStats) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ActionStats.
// Note that you need to call ActionStats.Unwrap() before calling this method if this ActionStats
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActionStats) Update() *ActionStatsUpdateOne {
	return NewActionStatsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActionStats entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActionStats) Unwrap() *ActionStats {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActionStats is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActionStats) String() string {
	var builder strings.Builder
	builder.WriteString("ActionStats(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("summary_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SummaryCount))
	builder.WriteString(", ")
	builder.WriteString("quiz_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizCount))
	builder.WriteString(", ")
	builder.WriteString("plan_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanCount))
	builder.WriteByte(')')
	return builder.String()
}

// ActionStatsSlice is a parsable slice of ActionStats.
type ActionStatsSlice []*ActionStats
