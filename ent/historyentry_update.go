// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/amink/durus/ent/historyentry"
	"github.com/amink/durus/ent/predicate"
)

// HistoryEntryUpdate is the builder for updating HistoryEntry entities.
type HistoryEntryUpdate struct {
	config
	hooks    []Hook
	mutation *HistoryEntryMutation
}

// Where appends a list predicates to the HistoryEntryUpdate builder.
func (_u *HistoryEntryUpdate) Where(ps ...predicate.HistoryEntry) *HistoryEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntryID sets the "entry_id" field.
func (_u *HistoryEntryUpdate) SetEntryID(v string) *HistoryEntryUpdate {
	_u.mutation.SetEntryID(v)
	return _u
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (_u *HistoryEntryUpdate) SetNillableEntryID(v *string) *HistoryEntryUpdate {
	if v != nil {
		_u.SetEntryID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *HistoryEntryUpdate) SetCategory(v historyentry.Category) *HistoryEntryUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *HistoryEntryUpdate) SetNillableCategory(v *historyentry.Category) *HistoryEntryUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *HistoryEntryUpdate) SetTitle(v string) *HistoryEntryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *HistoryEntryUpdate) SetNillableTitle(v *string) *HistoryEntryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *HistoryEntryUpdate) SetPayload(v string) *HistoryEntryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *HistoryEntryUpdate) SetNillablePayload(v *string) *HistoryEntryUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HistoryEntryUpdate) SetCreatedAt(v time.Time) *HistoryEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HistoryEntryUpdate) SetNillableCreatedAt(v *time.Time) *HistoryEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the HistoryEntryMutation object of the builder.
func (_u *HistoryEntryUpdate) Mutation() *HistoryEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HistoryEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HistoryEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HistoryEntryUpdate) check() error {
	if v, ok := _u.mutation.EntryID(); ok {
		if err := historyentry.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "HistoryEntry.entry_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := historyentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "HistoryEntry.category": %w`, err)}
		}
	}
	return nil
}

func (_u *HistoryEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(historyentry.Table, historyentry.Columns, sqlgraph.NewFieldSpec(historyentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntryID(); ok {
		_spec.SetField(historyentry.FieldEntryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(historyentry.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(historyentry.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(historyentry.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(historyentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{historyentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HistoryEntryUpdateOne is the builder for updating a single HistoryEntry entity.
type HistoryEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HistoryEntryMutation
}

// SetEntryID sets the "entry_id" field.
func (_u *HistoryEntryUpdateOne) SetEntryID(v string) *HistoryEntryUpdateOne {
	_u.mutation.SetEntryID(v)
	return _u
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (_u *HistoryEntryUpdateOne) SetNillableEntryID(v *string) *HistoryEntryUpdateOne {
	if v != nil {
		_u.SetEntryID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *HistoryEntryUpdateOne) SetCategory(v historyentry.Category) *HistoryEntryUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *HistoryEntryUpdateOne) SetNillableCategory(v *historyentry.Category) *HistoryEntryUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *HistoryEntryUpdateOne) SetTitle(v string) *HistoryEntryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *HistoryEntryUpdateOne) SetNillableTitle(v *string) *HistoryEntryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *HistoryEntryUpdateOne) SetPayload(v string) *HistoryEntryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *HistoryEntryUpdateOne) SetNillablePayload(v *string) *HistoryEntryUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HistoryEntryUpdateOne) SetCreatedAt(v time.Time) *HistoryEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HistoryEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *HistoryEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the HistoryEntryMutation object of the builder.
func (_u *HistoryEntryUpdateOne) Mutation() *HistoryEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the HistoryEntryUpdate builder.
func (_u *HistoryEntryUpdateOne) Where(ps ...predicate.HistoryEntry) *HistoryEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HistoryEntryUpdateOne) Select(field string, fields ...string) *HistoryEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HistoryEntry entity.
func (_u *HistoryEntryUpdateOne) Save(ctx context.Context) (*HistoryEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HistoryEntryUpdateOne) SaveX(ctx context.Context) *HistoryEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HistoryEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HistoryEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HistoryEntryUpdateOne) check() error {
	if v, ok := _u.mutation.EntryID(); ok {
		if err := historyentry.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "HistoryEntry.entry_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := historyentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "HistoryEntry.category": %w`, err)}
		}
	}
	return nil
}

func (_u *HistoryEntryUpdateOne) sqlSave(ctx context.Context) (_node *HistoryEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(historyentry.Table, historyentry.Columns, sqlgraph.NewFieldSpec(historyentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HistoryEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, historyentry.FieldID)
		for _, f := range fields {
			if !historyentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != historyentry.FieldID {
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
	if value, ok := _u.mutation.EntryID(); ok {
		_spec.SetField(historyentry.FieldEntryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(historyentry.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(historyentry.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(historyentry.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(historyentry.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &HistoryEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{historyentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
