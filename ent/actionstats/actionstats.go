// Code generated by ent, DO NOT EDIT.

package actionstats

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the actionstats type in the database.
	Label = "action_stats"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSummaryCount holds the string denoting the summary_count field in the database.
	FieldSummaryCount = "summary_count"
	// FieldQuizCount holds the string denoting the quiz_count field in the database.
	FieldQuizCount = "quiz_count"
	// FieldPlanCount holds the string denoting the plan_count field in the database.
	FieldPlanCount = "plan_count"
	// Table holds the table name of the actionstats in the database.
	Table = "action_stats"
)

// Columns holds all SQL columns for actionstats fields.
var Columns = []string{
	FieldID,
	FieldSummaryCount,
	FieldQuizCount,
	FieldPlanCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSummaryCount holds the default value on creation for the "summary_count" field.
	DefaultSummaryCount int
	// SummaryCountValidator is a validator for the "summary_count" field. It is called by the builders before save.
	SummaryCountValidator func(int) error
	// DefaultQuizCount holds the default value on creation for the "quiz_count" field.
	DefaultQuizCount int
	// QuizCountValidator is a validator for the "quiz_count" field. It is called by the builders before save.
	QuizCountValidator func(int) error
	// DefaultPlanCount holds the default value on creation for the "plan_count" field.
	DefaultPlanCount int
	// PlanCountValidator is a validator for the "plan_count" field. It is called by the builders before save.
	PlanCountValidator func(int) error
)

// OrderOption defines the ordering options for the ActionStats queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySummaryCount orders the results by the summary_count field.
func BySummaryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryCount, opts...).ToFunc()
}

// ByQuizCount orders the results by the quiz_count field.
func ByQuizCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizCount, opts...).ToFunc()
}

// ByPlanCount orders the results by the plan_count field.
func ByPlanCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanCount, opts...).ToFunc()
}
