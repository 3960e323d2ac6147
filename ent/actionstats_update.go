// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amink/durus/ent/actionstats"
	"github.com/amink/durus/ent/predicate"
)

// ActionStatsUpdate is the builder for updating ActionStats entities.
type ActionStatsUpdate struct {
	config
	hooks    []Hook
	mutation *ActionStatsMutation
}

// Where appends a list predicates to the ActionStatsUpdate builder.
func (_u *ActionStatsUpdate) Where(ps ...predicate.ActionStats) *ActionStatsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSummaryCount sets the "summary_count" field.
func (_u *ActionStatsUpdate) SetSummaryCount(v int) *ActionStatsUpdate {
	_u.mutation.ResetSummaryCount()
	_u.mutation.SetSummaryCount(v)
	return _u
}

// SetNillableSummaryCount sets the "summary_count" field if the given value is not nil.
func (_u *ActionStatsUpdate) SetNillableSummaryCount(v *int) *ActionStatsUpdate {
	if v != nil {
		_u.SetSummaryCount(*v)
	}
	return _u
}

// AddSummaryCount adds value to the "summary_count" field.
func (_u *ActionStatsUpdate) AddSummaryCount(v int) *ActionStatsUpdate {
	_u.mutation.AddSummaryCount(v)
	return _u
}

// SetQuizCount sets the "quiz_count" field.
func (_u *ActionStatsUpdate) SetQuizCount(v int) *ActionStatsUpdate {
	_u.mutation.ResetQuizCount()
	_u.mutation.SetQuizCount(v)
	return _u
}

// SetNillableQuizCount sets the "quiz_count" field if the given value is not nil.
func (_u *ActionStatsUpdate) SetNillableQuizCount(v *int) *ActionStatsUpdate {
	if v != nil {
		_u.SetQuizCount(*v)
	}
	return _u
}

// AddQuizCount adds value to the "quiz_count" field.
func (_u *ActionStatsUpdate) AddQuizCount(v int) *ActionStatsUpdate {
	_u.mutation.AddQuizCount(v)
	return _u
}

// SetPlanCount sets the "plan_count" field.
func (_u *ActionStatsUpdate) SetPlanCount(v int) *ActionStatsUpdate {
	_u.mutation.ResetPlanCount()
	_u.mutation.SetPlanCount(v)
	return _u
}

// SetNillablePlanCount sets the "plan_count" field if the given value is not nil.
func (_u *ActionStatsUpdate) SetNillablePlanCount(v *int) *ActionStatsUpdate {
	if v != nil {
		_u.SetPlanCount(*v)
	}
	return _u
}

// AddPlanCount adds value to the "plan_count" field.
func (_u *ActionStatsUpdate) AddPlanCount(v int) *ActionStatsUpdate {
	_u.mutation.AddPlanCount(v)
	return _u
}

// Mutation returns the ActionStatsMutation object of the builder.
func (_u *ActionStatsUpdate) Mutation() *ActionStatsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActionStatsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionStatsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActionStatsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionStatsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionStatsUpdate) check() error {
	if v, ok := _u.mutation.SummaryCount(); ok {
		if err := actionstats.SummaryCountValidator(v); err != nil {
			return &ValidationError{Name: "summary_count", err: fmt.Errorf(`ent: validator failed for field "ActionStats.summary_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizCount(); ok {
		if err := actionstats.QuizCountValidator(v); err != nil {
			return &ValidationError{Name: "quiz_count", err: fmt.Errorf(`ent: validator failed for field "ActionStats.quiz_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanCount(); ok {
		if err := actionstats.PlanCountValidator(v); err != nil {
			return &ValidationError{Name: "plan_count", err: fmt.Errorf(`ent: validator failed for field "ActionStats.plan_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ActionStatsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionstats.Table, actionstats.Columns, sqlgraph.NewFieldSpec(actionstats.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SummaryCount(); ok {
		_spec.SetField(actionstats.FieldSummaryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSummaryCount(); ok {
		_spec.AddField(actionstats.FieldSummaryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizCount(); ok {
		_spec.SetField(actionstats.FieldQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizCount(); ok {
		_spec.AddField(actionstats.FieldQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlanCount(); ok {
		_spec.SetField(actionstats.FieldPlanCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlanCount(); ok {
		_spec.AddField(actionstats.FieldPlanCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionstats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActionStatsUpdateOne is the builder for updating a single ActionStats entity.
type ActionStatsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActionStatsMutation
}

// SetSummaryCount sets the "summary_count" field.
func (_u *ActionStatsUpdateOne) SetSummaryCount(v int) *ActionStatsUpdateOne {
	_u.mutation.ResetSummaryCount()
	_u.mutation.SetSummaryCount(v)
	return _u
}

// SetNillableSummaryCount sets the "summary_count" field if the given value is not nil.
func (_u *ActionStatsUpdateOne) SetNillableSummaryCount(v *int) *ActionStatsUpdateOne {
	if v != nil {
		_u.SetSummaryCount(*v)
	}
	return _u
}

// AddSummaryCount adds value to the "summary_count" field.
func (_u *ActionStatsUpdateOne) AddSummaryCount(v int) *ActionStatsUpdateOne {
	_u.mutation.AddSummaryCount(v)
	return _u
}

// SetQuizCount sets the "quiz_count" field.
func (_u *ActionStatsUpdateOne) SetQuizCount(v int) *ActionStatsUpdateOne {
	_u.mutation.ResetQuizCount()
	_u.mutation.SetQuizCount(v)
	return _u
}

// SetNillableQuizCount sets the "quiz_count" field if the given value is not nil.
func (_u *ActionStatsUpdateOne) SetNillableQuizCount(v *int) *ActionStatsUpdateOne {
	if v != nil {
		_u.SetQuizCount(*v)
	}
	return _u
}

// AddQuizCount adds value to the "quiz_count" field.
func (_u *ActionStatsUpdateOne) AddQuizCount(v int) *ActionStatsUpdateOne {
	_u.mutation.AddQuizCount(v)
	return _u
}

// SetPlanCount sets the "plan_count" field.
func (_u *ActionStatsUpdateOne) SetPlanCount(v int) *ActionStatsUpdateOne {
	_u.mutation.ResetPlanCount()
	_u.mutation.SetPlanCount(v)
	return _u
}

// SetNillablePlanCount sets the "plan_count" field if the given value is not nil.
func (_u *ActionStatsUpdateOne) SetNillablePlanCount(v *int) *ActionStatsUpdateOne {
	if v != nil {
		_u.SetPlanCount(*v)
	}
	return _u
}

// AddPlanCount adds value to the "plan_count" field.
func (_u *ActionStatsUpdateOne) AddPlanCount(v int) *ActionStatsUpdateOne {
	_u.mutation.AddPlanCount(v)
	return _u
}

// Mutation returns the ActionStatsMutation object of the builder.
func (_u *ActionStatsUpdateOne) Mutation() *ActionStatsMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActionStatsUpdate builder.
func (_u *ActionStatsUpdateOne) Where(ps ...predicate.ActionStats) *ActionStatsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActionStatsUpdateOne) Select(field string, fields ...string) *ActionStatsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActionStats entity.
func (_u *ActionStatsUpdateOne) Save(ctx context.Context) (*ActionStats, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionStatsUpdateOne) SaveX(ctx context.Context) *ActionStats {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActionStatsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionStatsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionStatsUpdateOne) check() error {
	if v, ok := _u.mutation.SummaryCount(); ok {
		if err := actionstats.SummaryCountValidator(v); err != nil {
			return &ValidationError{Name: "summary_count", err: fmt.Errorf(`ent: validator failed for field "ActionStats.summary_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizCount(); ok {
		if err := actionstats.QuizCountValidator(v); err != nil {
			return &ValidationError{Name: "quiz_count", err: fmt.Errorf(`ent: validator failed for field "ActionStats.quiz_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanCount(); ok {
		if err := actionstats.PlanCountValidator(v); err != nil {
			return &ValidationError{Name: "plan_count", err: fmt.Errorf(`ent: validator failed for field "ActionStats.plan_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ActionStatsUpdateOne) sqlSave(ctx context.Context) (_node *ActionStats, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionstats.Table, actionstats.Columns, sqlgraph.NewFieldSpec(actionstats.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActionStats.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actionstats.FieldID)
		for _, f := range fields {
			if !actionstats.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actionstats.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SummaryCount(); ok {
		_spec.SetField(actionstats.FieldSummaryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSummaryCount(); ok {
		_spec.AddField(actionstats.FieldSummaryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizCount(); ok {
		_spec.SetField(actionstats.FieldQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizCount(); ok {
		_spec.AddField(actionstats.FieldQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlanCount(); ok {
		_spec.SetField(actionstats.FieldPlanCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlanCount(); ok {
		_spec.AddField(actionstats.FieldPlanCount, field.TypeInt, value)
	}
	_node = &ActionStats{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionstats.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
