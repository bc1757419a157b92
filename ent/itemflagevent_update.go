// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brighted/nable/ent/itemflagevent"
	"github.com/brighted/nable/ent/predicate"
)

// ItemFlagEventUpdate is the builder for updating ItemFlagEvent entities.
type ItemFlagEventUpdate struct {
	config
	hooks    []Hook
	mutation *ItemFlagEventMutation
}

// Where appends a list predicates to the ItemFlagEventUpdate builder.
func (_u *ItemFlagEventUpdate) Where(ps ...predicate.ItemFlagEvent) *ItemFlagEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ItemFlagEventUpdate) SetQuestionID(v string) *ItemFlagEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ItemFlagEventUpdate) SetNillableQuestionID(v *string) *ItemFlagEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ItemFlagEventUpdate) SetReason(v string) *ItemFlagEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ItemFlagEventUpdate) SetNillableReason(v *string) *ItemFlagEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetFlagCount sets the "flag_count" field.
func (_u *ItemFlagEventUpdate) SetFlagCount(v int) *ItemFlagEventUpdate {
	_u.mutation.ResetFlagCount()
	_u.mutation.SetFlagCount(v)
	return _u
}

// SetNillableFlagCount sets the "flag_count" field if the given value is not nil.
func (_u *ItemFlagEventUpdate) SetNillableFlagCount(v *int) *ItemFlagEventUpdate {
	if v != nil {
		_u.SetFlagCount(*v)
	}
	return _u
}

// AddFlagCount adds value to the "flag_count" field.
func (_u *ItemFlagEventUpdate) AddFlagCount(v int) *ItemFlagEventUpdate {
	_u.mutation.AddFlagCount(v)
	return _u
}

// SetArchived sets the "archived" field.
func (_u *ItemFlagEventUpdate) SetArchived(v bool) *ItemFlagEventUpdate {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *ItemFlagEventUpdate) SetNillableArchived(v *bool) *ItemFlagEventUpdate {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ItemFlagEventUpdate) SetSessionID(v string) *ItemFlagEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ItemFlagEventUpdate) SetNillableSessionID(v *string) *ItemFlagEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ItemFlagEventUpdate) ClearSessionID() *ItemFlagEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ItemFlagEventMutation object of the builder.
func (_u *ItemFlagEventUpdate) Mutation() *ItemFlagEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemFlagEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemFlagEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemFlagEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemFlagEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemFlagEventUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := itemflagevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ItemFlagEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := itemflagevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ItemFlagEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemFlagEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemflagevent.Table, itemflagevent.Columns, sqlgraph.NewFieldSpec(itemflagevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(itemflagevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(itemflagevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.FlagCount(); ok {
		_spec.SetField(itemflagevent.FieldFlagCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFlagCount(); ok {
		_spec.AddField(itemflagevent.FieldFlagCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(itemflagevent.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(itemflagevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(itemflagevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemflagevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemFlagEventUpdateOne is the builder for updating a single ItemFlagEvent entity.
type ItemFlagEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemFlagEventMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *ItemFlagEventUpdateOne) SetQuestionID(v string) *ItemFlagEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ItemFlagEventUpdateOne) SetNillableQuestionID(v *string) *ItemFlagEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ItemFlagEventUpdateOne) SetReason(v string) *ItemFlagEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ItemFlagEventUpdateOne) SetNillableReason(v *string) *ItemFlagEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetFlagCount sets the "flag_count" field.
func (_u *ItemFlagEventUpdateOne) SetFlagCount(v int) *ItemFlagEventUpdateOne {
	_u.mutation.ResetFlagCount()
	_u.mutation.SetFlagCount(v)
	return _u
}

// SetNillableFlagCount sets the "flag_count" field if the given value is not nil.
func (_u *ItemFlagEventUpdateOne) SetNillableFlagCount(v *int) *ItemFlagEventUpdateOne {
	if v != nil {
		_u.SetFlagCount(*v)
	}
	return _u
}

// AddFlagCount adds value to the "flag_count" field.
func (_u *ItemFlagEventUpdateOne) AddFlagCount(v int) *ItemFlagEventUpdateOne {
	_u.mutation.AddFlagCount(v)
	return _u
}

// SetArchived sets the "archived" field.
func (_u *ItemFlagEventUpdateOne) SetArchived(v bool) *ItemFlagEventUpdateOne {
	_u.mutation.SetArchived(v)
	return _u
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_u *ItemFlagEventUpdateOne) SetNillableArchived(v *bool) *ItemFlagEventUpdateOne {
	if v != nil {
		_u.SetArchived(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ItemFlagEventUpdateOne) SetSessionID(v string) *ItemFlagEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ItemFlagEventUpdateOne) SetNillableSessionID(v *string) *ItemFlagEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ItemFlagEventUpdateOne) ClearSessionID() *ItemFlagEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ItemFlagEventMutation object of the builder.
func (_u *ItemFlagEventUpdateOne) Mutation() *ItemFlagEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemFlagEventUpdate builder.
func (_u *ItemFlagEventUpdateOne) Where(ps ...predicate.ItemFlagEvent) *ItemFlagEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemFlagEventUpdateOne) Select(field string, fields ...string) *ItemFlagEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ItemFlagEvent entity.
func (_u *ItemFlagEventUpdateOne) Save(ctx context.Context) (*ItemFlagEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemFlagEventUpdateOne) SaveX(ctx context.Context) *ItemFlagEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemFlagEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemFlagEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemFlagEventUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := itemflagevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ItemFlagEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := itemflagevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ItemFlagEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemFlagEventUpdateOne) sqlSave(ctx context.Context) (_node *ItemFlagEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemflagevent.Table, itemflagevent.Columns, sqlgraph.NewFieldSpec(itemflagevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ItemFlagEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itemflagevent.FieldID)
		for _, f := range fields {
			if !itemflagevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itemflagevent.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(itemflagevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(itemflagevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.FlagCount(); ok {
		_spec.SetField(itemflagevent.FieldFlagCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFlagCount(); ok {
		_spec.AddField(itemflagevent.FieldFlagCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Archived(); ok {
		_spec.SetField(itemflagevent.FieldArchived, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(itemflagevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(itemflagevent.FieldSessionID, field.TypeString)
	}
	_node = &ItemFlagEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemflagevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
