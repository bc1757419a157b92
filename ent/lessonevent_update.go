// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brighted/nable/ent/lessonevent"
	"github.com/brighted/nable/ent/predicate"
)

// LessonEventUpdate is the builder for updating LessonEvent entities.
type LessonEventUpdate struct {
	config
	hooks    []Hook
	mutation *LessonEventMutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdate) Where(ps ...predicate.LessonEvent) *LessonEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LessonEventUpdate) SetSessionID(v string) *LessonEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableSessionID(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LessonEventUpdate) SetUserID(v string) *LessonEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableUserID(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *LessonEventUpdate) SetSkillID(v string) *LessonEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableSkillID(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *LessonEventUpdate) SetLessonTitle(v string) *LessonEventUpdate {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableLessonTitle(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *LessonEventUpdate) SetSource(v string) *LessonEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableSource(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *LessonEventUpdate) SetErrorType(v string) *LessonEventUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableErrorType(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// SetPracticeAttempted sets the "practice_attempted" field.
func (_u *LessonEventUpdate) SetPracticeAttempted(v bool) *LessonEventUpdate {
	_u.mutation.SetPracticeAttempted(v)
	return _u
}

// SetNillablePracticeAttempted sets the "practice_attempted" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillablePracticeAttempted(v *bool) *LessonEventUpdate {
	if v != nil {
		_u.SetPracticeAttempted(*v)
	}
	return _u
}

// SetPracticeCorrect sets the "practice_correct" field.
func (_u *LessonEventUpdate) SetPracticeCorrect(v bool) *LessonEventUpdate {
	_u.mutation.SetPracticeCorrect(v)
	return _u
}

// SetNillablePracticeCorrect sets the "practice_correct" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillablePracticeCorrect(v *bool) *LessonEventUpdate {
	if v != nil {
		_u.SetPracticeCorrect(*v)
	}
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdate) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lessonevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := lessonevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := lessonevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonTitle(); ok {
		if err := lessonevent.LessonTitleValidator(v); err != nil {
			return &ValidationError{Name: "lesson_title", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := lessonevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lessonevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(lessonevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(lessonevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(lessonevent.FieldLessonTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lessonevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(lessonevent.FieldErrorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PracticeAttempted(); ok {
		_spec.SetField(lessonevent.FieldPracticeAttempted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PracticeCorrect(); ok {
		_spec.SetField(lessonevent.FieldPracticeCorrect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonEventUpdateOne is the builder for updating a single LessonEvent entity.
type LessonEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *LessonEventUpdateOne) SetSessionID(v string) *LessonEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableSessionID(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LessonEventUpdateOne) SetUserID(v string) *LessonEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableUserID(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *LessonEventUpdateOne) SetSkillID(v string) *LessonEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableSkillID(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetLessonTitle sets the "lesson_title" field.
func (_u *LessonEventUpdateOne) SetLessonTitle(v string) *LessonEventUpdateOne {
	_u.mutation.SetLessonTitle(v)
	return _u
}

// SetNillableLessonTitle sets the "lesson_title" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableLessonTitle(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetLessonTitle(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *LessonEventUpdateOne) SetSource(v string) *LessonEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableSource(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *LessonEventUpdateOne) SetErrorType(v string) *LessonEventUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableErrorType(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// SetPracticeAttempted sets the "practice_attempted" field.
func (_u *LessonEventUpdateOne) SetPracticeAttempted(v bool) *LessonEventUpdateOne {
	_u.mutation.SetPracticeAttempted(v)
	return _u
}

// SetNillablePracticeAttempted sets the "practice_attempted" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillablePracticeAttempted(v *bool) *LessonEventUpdateOne {
	if v != nil {
		_u.SetPracticeAttempted(*v)
	}
	return _u
}

// SetPracticeCorrect sets the "practice_correct" field.
func (_u *LessonEventUpdateOne) SetPracticeCorrect(v bool) *LessonEventUpdateOne {
	_u.mutation.SetPracticeCorrect(v)
	return _u
}

// SetNillablePracticeCorrect sets the "practice_correct" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillablePracticeCorrect(v *bool) *LessonEventUpdateOne {
	if v != nil {
		_u.SetPracticeCorrect(*v)
	}
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdateOne) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdateOne) Where(ps ...predicate.LessonEvent) *LessonEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonEventUpdateOne) Select(field string, fields ...string) *LessonEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonEvent entity.
func (_u *LessonEventUpdateOne) Save(ctx context.Context) (*LessonEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdateOne) SaveX(ctx context.Context) *LessonEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lessonevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := lessonevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := lessonevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonTitle(); ok {
		if err := lessonevent.LessonTitleValidator(v); err != nil {
			return &ValidationError{Name: "lesson_title", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.lesson_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := lessonevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdateOne) sqlSave(ctx context.Context) (_node *LessonEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonevent.FieldID)
		for _, f := range fields {
			if !lessonevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lessonevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(lessonevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(lessonevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonTitle(); ok {
		_spec.SetField(lessonevent.FieldLessonTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lessonevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(lessonevent.FieldErrorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PracticeAttempted(); ok {
		_spec.SetField(lessonevent.FieldPracticeAttempted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PracticeCorrect(); ok {
		_spec.SetField(lessonevent.FieldPracticeCorrect, field.TypeBool, value)
	}
	_node = &LessonEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
