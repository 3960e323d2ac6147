// Code generated by ent, DO NOT EDIT.

package actionstats

import (
	"entgo.io/ent/dialect/sql"
	"github.com/amink/durus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldLTE(FieldID, id))
}

// SummaryCount applies equality check predicate on the "summary_count" field. It's identical to SummaryCountEQ.
func SummaryCount(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldEQ(FieldSummaryCount, v))
}

// QuizCount applies equality check predicate on the "quiz_count" field. It's identical to QuizCountEQ.
func QuizCount(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldEQ(FieldQuizCount, v))
}

// PlanCount applies equality check predicate on the "plan_count" field. It's identical to PlanCountEQ.
func PlanCount(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldEQ(FieldPlanCount, v))
}

// SummaryCountEQ applies the EQ predicate on the "summary_count" field.
func SummaryCountEQ(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldEQ(FieldSummaryCount, v))
}

// SummaryCountNEQ applies the NEQ predicate on the "summary_count" field.
func SummaryCountNEQ(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldNEQ(FieldSummaryCount, v))
}

// SummaryCountIn applies the In predicate on the "summary_count" field.
func SummaryCountIn(vs ...int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldIn(FieldSummaryCount, vs...))
}

// SummaryCountNotIn applies the NotIn predicate on the "summary_count" field.
func SummaryCountNotIn(vs ...int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldNotIn(FieldSummaryCount, vs...))
}

// SummaryCountGT applies the GT predicate on the "summary_count" field.
func SummaryCountGT(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldGT(FieldSummaryCount, v))
}

// SummaryCountGTE applies the GTE predicate on the "summary_count" field.
func SummaryCountGTE(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldGTE(FieldSummaryCount, v))
}

// SummaryCountLT applies the LT predicate on the "summary_count" field.
func SummaryCountLT(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldLT(FieldSummaryCount, v))
}

// SummaryCountLTE applies the LTE predicate on the "summary_count" field.
func SummaryCountLTE(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldLTE(FieldSummaryCount, v))
}

// QuizCountEQ applies the EQ predicate on the "quiz_count" field.
func QuizCountEQ(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldEQ(FieldQuizCount, v))
}

// QuizCountNEQ applies the NEQ predicate on the "quiz_count" field.
func QuizCountNEQ(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldNEQ(FieldQuizCount, v))
}

// QuizCountIn applies the In predicate on the "quiz_count" field.
func QuizCountIn(vs ...int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldIn(FieldQuizCount, vs...))
}

// QuizCountNotIn applies the NotIn predicate on the "quiz_count" field.
func QuizCountNotIn(vs ...int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldNotIn(FieldQuizCount, vs...))
}

// QuizCountGT applies the GT predicate on the "quiz_count" field.
func QuizCountGT(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldGT(FieldQuizCount, v))
}

// QuizCountGTE applies the GTE predicate on the "quiz_count" field.
func QuizCountGTE(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldGTE(FieldQuizCount, v))
}

// QuizCountLT applies the LT predicate on the "quiz_count" field.
func QuizCountLT(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldLT(FieldQuizCount, v))
}

// QuizCountLTE applies the LTE predicate on the "quiz_count" field.
func QuizCountLTE(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldLTE(FieldQuizCount, v))
}

// PlanCountEQ applies the EQ predicate on the "plan_count" field.
func PlanCountEQ(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldEQ(FieldPlanCount, v))
}

// PlanCountNEQ applies the NEQ predicate on the "plan_count" field.
func PlanCountNEQ(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldNEQ(FieldPlanCount, v))
}

// PlanCountIn applies the In predicate on the "plan_count" field.
func PlanCountIn(vs ...int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldIn(FieldPlanCount, vs...))
}

// PlanCountNotIn applies the NotIn predicate on the "plan_count" field.
func PlanCountNotIn(vs ...int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldNotIn(FieldPlanCount, vs...))
}

// PlanCountGT applies the GT predicate on the "plan_count" field.
func PlanCountGT(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldGT(FieldPlanCount, v))
}

// PlanCountGTE applies the GTE predicate on the "plan_count" field.
func PlanCountGTE(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldGTE(FieldPlanCount, v))
}

// PlanCountLT applies the LT predicate on the "plan_count" field.
func PlanCountLT(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldLT(FieldPlanCount, v))
}

// PlanCountLTE applies the LTE predicate on the "plan_count" field.
func PlanCountLTE(v int) predicate.ActionStats {
	return predicate.ActionStats(sql.FieldLTE(FieldPlanCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActionStats) predicate.ActionStats {
	return predicate.ActionStats(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActionStats) predicate.ActionStats {
	return predicate.ActionStats(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActionStats) predicate.ActionStats {
	return predicate.ActionStats(sql.NotPredicates(p))
}
