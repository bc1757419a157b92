// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/brighted/nable/ent/answerevent"
	"github.com/brighted/nable/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnswerEventUpdate) SetUserID(v string) *AnswerEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableUserID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdate) SetQuestionID(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *AnswerEventUpdate) SetObjectiveID(v string) *AnswerEventUpdate {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableObjectiveID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetSkillIds sets the "skill_ids" field.
func (_u *AnswerEventUpdate) SetSkillIds(v []string) *AnswerEventUpdate {
	_u.mutation.SetSkillIds(v)
	return _u
}

// AppendSkillIds appends value to the "skill_ids" field.
func (_u *AnswerEventUpdate) AppendSkillIds(v []string) *AnswerEventUpdate {
	_u.mutation.AppendSkillIds(v)
	return _u
}

// SetSelectedIndex sets the "selected_index" field.
func (_u *AnswerEventUpdate) SetSelectedIndex(v int) *AnswerEventUpdate {
	_u.mutation.ResetSelectedIndex()
	_u.mutation.SetSelectedIndex(v)
	return _u
}

// SetNillableSelectedIndex sets the "selected_index" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSelectedIndex(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetSelectedIndex(*v)
	}
	return _u
}

// AddSelectedIndex adds value to the "selected_index" field.
func (_u *AnswerEventUpdate) AddSelectedIndex(v int) *AnswerEventUpdate {
	_u.mutation.AddSelectedIndex(v)
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *AnswerEventUpdate) SetCorrectIndex(v int) *AnswerEventUpdate {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrectIndex(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *AnswerEventUpdate) AddCorrectIndex(v int) *AnswerEventUpdate {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdate) SetTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeMs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdate) AddTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdate) SetDifficulty(v float64) *AnswerEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableDifficulty(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AnswerEventUpdate) AddDifficulty(v float64) *AnswerEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *AnswerEventUpdate) SetErrorType(v string) *AnswerEventUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableErrorType(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// SetErrorRule sets the "error_rule" field.
func (_u *AnswerEventUpdate) SetErrorRule(v string) *AnswerEventUpdate {
	_u.mutation.SetErrorRule(v)
	return _u
}

// SetNillableErrorRule sets the "error_rule" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableErrorRule(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetErrorRule(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := answerevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(answerevent.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillIds(); ok {
		_spec.SetField(answerevent.FieldSkillIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkillIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answerevent.FieldSkillIds, value)
		})
	}
	if value, ok := _u.mutation.SelectedIndex(); ok {
		_spec.SetField(answerevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedIndex(); ok {
		_spec.AddField(answerevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(answerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(answerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(answerevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(answerevent.FieldErrorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorRule(); ok {
		_spec.SetField(answerevent.FieldErrorRule, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnswerEventUpdateOne) SetUserID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableUserID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdateOne) SetQuestionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetObjectiveID sets the "objective_id" field.
func (_u *AnswerEventUpdateOne) SetObjectiveID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetObjectiveID(v)
	return _u
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableObjectiveID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetObjectiveID(*v)
	}
	return _u
}

// SetSkillIds sets the "skill_ids" field.
func (_u *AnswerEventUpdateOne) SetSkillIds(v []string) *AnswerEventUpdateOne {
	_u.mutation.SetSkillIds(v)
	return _u
}

// AppendSkillIds appends value to the "skill_ids" field.
func (_u *AnswerEventUpdateOne) AppendSkillIds(v []string) *AnswerEventUpdateOne {
	_u.mutation.AppendSkillIds(v)
	return _u
}

// SetSelectedIndex sets the "selected_index" field.
func (_u *AnswerEventUpdateOne) SetSelectedIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetSelectedIndex()
	_u.mutation.SetSelectedIndex(v)
	return _u
}

// SetNillableSelectedIndex sets the "selected_index" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSelectedIndex(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSelectedIndex(*v)
	}
	return _u
}

// AddSelectedIndex adds value to the "selected_index" field.
func (_u *AnswerEventUpdateOne) AddSelectedIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.AddSelectedIndex(v)
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *AnswerEventUpdateOne) SetCorrectIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrectIndex(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *AnswerEventUpdateOne) AddCorrectIndex(v int) *AnswerEventUpdateOne {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdateOne) SetTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeMs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdateOne) AddTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdateOne) SetDifficulty(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableDifficulty(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AnswerEventUpdateOne) AddDifficulty(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *AnswerEventUpdateOne) SetErrorType(v string) *AnswerEventUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableErrorType(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// SetErrorRule sets the "error_rule" field.
func (_u *AnswerEventUpdateOne) SetErrorRule(v string) *AnswerEventUpdateOne {
	_u.mutation.SetErrorRule(v)
	return _u
}

// SetNillableErrorRule sets the "error_rule" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableErrorRule(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetErrorRule(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := answerevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ObjectiveID(); ok {
		_spec.SetField(answerevent.FieldObjectiveID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillIds(); ok {
		_spec.SetField(answerevent.FieldSkillIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkillIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answerevent.FieldSkillIds, value)
		})
	}
	if value, ok := _u.mutation.SelectedIndex(); ok {
		_spec.SetField(answerevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedIndex(); ok {
		_spec.AddField(answerevent.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(answerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(answerevent.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(answerevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(answerevent.FieldErrorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorRule(); ok {
		_spec.SetField(answerevent.FieldErrorRule, field.TypeString, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
