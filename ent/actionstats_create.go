// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amink/durus/ent/actionstats"
)

// ActionStatsCreate is the builder for creating a ActionStats entity.
type ActionStatsCreate struct {
	config
	mutation *ActionStatsMutation
	hooks    []Hook
}

// SetSummaryCount sets the "summary_count" field.
func (_c *ActionStatsCreate) SetSummaryCount(v int) *ActionStatsCreate {
	_c.mutation.SetSummaryCount(v)
	return _c
}

// SetNillableSummaryCount sets the "summary_count" field if the given value is not nil.
func (_c *ActionStatsCreate) SetNillableSummaryCount(v *int) *ActionStatsCreate {
	if v != nil {
		_c.SetSummaryCount(*v)
	}
	return _c
}

// SetQuizCount sets the "quiz_count" field.
func (_c *ActionStatsCreate) SetQuizCount(v int) *ActionStatsCreate {
	_c.mutation.SetQuizCount(v)
	return _c
}

// SetNillableQuizCount sets the "quiz_count" field if the given value is not nil.
func (_c *ActionStatsCreate) SetNillableQuizCount(v *int) *ActionStatsCreate {
	if v != nil {
		_c.SetQuizCount(*v)
	}
	return _c
}

// SetPlanCount sets the "plan_count" field.
func (_c *ActionStatsCreate) SetPlanCount(v int) *ActionStatsCreate {
	_c.mutation.SetPlanCount(v)
	return _c
}

// SetNillablePlanCount sets the "plan_count" field if the given value is not nil.
func (_c *ActionStatsCreate) SetNillablePlanCount(v *int) *ActionStatsCreate {
	if v != nil {
		_c.SetPlanCount(*v)
	}
	return _c
}

// Mutation returns the ActionStatsMutation object of the builder.
func (_c *ActionStatsCreate) Mutation() *ActionStatsMutation {
	return _c.mutation
}

// Save creates the ActionStats in the database.
func (_c *ActionStatsCreate) Save(ctx context.Context) (*ActionStats, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActionStatsCreate) SaveX(ctx context.Context) *ActionStats {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionStatsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionStatsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActionStatsCreate) defaults() {
	if _, ok := _c.mutation.SummaryCount(); !ok {
		v := actionstats.DefaultSummaryCount
		_c.mutation.SetSummaryCount(v)
	}
	if _, ok := _c.mutation.QuizCount(); !ok {
		v := actionstats.DefaultQuizCount
		_c.mutation.SetQuizCount(v)
	}
	if _, ok := _c.mutation.PlanCount(); !ok {
		v := actionstats.DefaultPlanCount
		_c.mutation.SetPlanCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActionStatsCreate) check() error {
	if _, ok := _c.mutation.SummaryCount(); !ok {
		return &ValidationError{Name: "summary_count", err: errors.New(`ent: missing required field "ActionStats.summary_count"`)}
	}
	if v, ok := _c.mutation.SummaryCount(); ok {
		if err := actionstats.SummaryCountValidator(v); err != nil {
			return &ValidationError{Name: "summary_count", err: fmt.Errorf(`ent: validator failed for field "ActionStats.summary_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizCount(); !ok {
		return &ValidationError{Name: "quiz_count", err: errors.New(`ent: missing required field "ActionStats.quiz_count"`)}
	}
	if v, ok := _c.mutation.QuizCount(); ok {
		if err := actionstats.QuizCountValidator(v); err != nil {
			return &ValidationError{Name: "quiz_count", err: fmt.Errorf(`ent: validator failed for field "ActionStats.quiz_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlanCount(); !ok {
		return &ValidationError{Name: "plan_count", err: errors.New(`ent: missing required field "ActionStats.plan_count"`)}
	}
	if v, ok := _c.mutation.PlanCount(); ok {
		if err := actionstats.PlanCountValidator(v); err != nil {
			return &ValidationError{Name: "plan_count", err: fmt.Errorf(`ent: validator failed for field "ActionStats.plan_count": %w`, err)}
		}
	}
	return nil
}

func (_c *ActionStatsCreate) sqlSave(ctx context.Context) (*ActionStats, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActionStatsCreate) createSpec() (*ActionStats, *sqlgraph.CreateSpec) {
	var (
		_node = &ActionStats{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actionstats.Table, sqlgraph.NewFieldSpec(actionstats.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SummaryCount(); ok {
		_spec.SetField(actionstats.FieldSummaryCount, field.TypeInt, value)
		_node.SummaryCount = value
	}
	if value, ok := _c.mutation.QuizCount(); ok {
		_spec.SetField(actionstats.FieldQuizCount, field.TypeInt, value)
		_node.QuizCount = value
	}
	if value, ok := _c.mutation.PlanCount(); ok {
		_spec.SetField(actionstats.FieldPlanCount, field.TypeInt, value)
		_node.PlanCount = value
	}
	return _node, _spec
}

// ActionStatsCreateBulk is the builder for creating many ActionStats entities in bulk.
type ActionStatsCreateBulk struct {
	config
	err      error
	builders []*ActionStatsCreate
}

// Save creates the ActionStats entities in the database.
func (_c *ActionStatsCreateBulk) Save(ctx context.Context) ([]*ActionStats, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActionStats, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActionStatsMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ActionStatsCreateBulk) SaveX(ctx context.Context) []*ActionStats {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionStatsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionStatsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
