// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brighted/nable/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnswerEventCreate) SetSequence(v int64) *AnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerEventCreate) SetTimestamp(v time.Time) *AnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimestamp(v *time.Time) *AnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AnswerEventCreate) SetSessionID(v string) *AnswerEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AnswerEventCreate) SetUserID(v string) *AnswerEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AnswerEventCreate) SetQuestionID(v string) *AnswerEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetObjectiveID sets the "objective_id" field.
func (_c *AnswerEventCreate) SetObjectiveID(v string) *AnswerEventCreate {
	_c.mutation.SetObjectiveID(v)
	return _c
}

// SetNillableObjectiveID sets the "objective_id" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableObjectiveID(v *string) *AnswerEventCreate {
	if v != nil {
		_c.SetObjectiveID(*v)
	}
	return _c
}

// SetSkillIds sets the "skill_ids" field.
func (_c *AnswerEventCreate) SetSkillIds(v []string) *AnswerEventCreate {
	_c.mutation.SetSkillIds(v)
	return _c
}

// SetSelectedIndex sets the "selected_index" field.
func (_c *AnswerEventCreate) SetSelectedIndex(v int) *AnswerEventCreate {
	_c.mutation.SetSelectedIndex(v)
	return _c
}

// SetCorrectIndex sets the "correct_index" field.
func (_c *AnswerEventCreate) SetCorrectIndex(v int) *AnswerEventCreate {
	_c.mutation.SetCorrectIndex(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AnswerEventCreate) SetCorrect(v bool) *AnswerEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *AnswerEventCreate) SetTimeMs(v int) *AnswerEventCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AnswerEventCreate) SetDifficulty(v float64) *AnswerEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *AnswerEventCreate) SetErrorType(v string) *AnswerEventCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableErrorType(v *string) *AnswerEventCreate {
	if v != nil {
		_c.SetErrorType(*v)
	}
	return _c
}

// SetErrorRule sets the "error_rule" field.
func (_c *AnswerEventCreate) SetErrorRule(v string) *AnswerEventCreate {
	_c.mutation.SetErrorRule(v)
	return _c
}

// SetNillableErrorRule sets the "error_rule" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableErrorRule(v *string) *AnswerEventCreate {
	if v != nil {
		_c.SetErrorRule(*v)
	}
	return _c
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_c *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return _c.mutation
}

// Save creates the AnswerEvent in the database.
func (_c *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ObjectiveID(); !ok {
		v := answerevent.DefaultObjectiveID
		_c.mutation.SetObjectiveID(v)
	}
	if _, ok := _c.mutation.ErrorType(); !ok {
		v := answerevent.DefaultErrorType
		_c.mutation.SetErrorType(v)
	}
	if _, ok := _c.mutation.ErrorRule(); !ok {
		v := answerevent.DefaultErrorRule
		_c.mutation.SetErrorRule(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AnswerEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := answerevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AnswerEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectiveID(); !ok {
		return &ValidationError{Name: "objective_id", err: errors.New(`ent: missing required field "AnswerEvent.objective_id"`)}
	}
	if _, ok := _c.mutation.SkillIds(); !ok {
		return &ValidationError{Name: "skill_ids", err: errors.New(`ent: missing required field "AnswerEvent.skill_ids"`)}
	}
	if _, ok := _c.mutation.SelectedIndex(); !ok {
		return &ValidationError{Name: "selected_index", err: errors.New(`ent: missing required field "AnswerEvent.selected_index"`)}
	}
	if _, ok := _c.mutation.CorrectIndex(); !ok {
		return &ValidationError{Name: "correct_index", err: errors.New(`ent: missing required field "AnswerEvent.correct_index"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnswerEvent.correct"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "AnswerEvent.time_ms"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "AnswerEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.ErrorType(); !ok {
		return &ValidationError{Name: "error_type", err: errors.New(`ent: missing required field "AnswerEvent.error_type"`)}
	}
	if _, ok := _c.mutation.ErrorRule(); !ok {
		return &ValidationError{Name: "error_rule", err: errors.New(`ent: missing required field "AnswerEvent.error_rule"`)}
	}
	return nil
}

func (_c *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
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

func (_c *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.ObjectiveID(); ok {
		_spec.SetField(answerevent.FieldObjectiveID, field.TypeString, value)
		_node.ObjectiveID = value
	}
	if value, ok := _c.mutation.SkillIds(); ok {
		_spec.SetField(answerevent.FieldSkillIds, field.TypeJSON, value)
		_node.SkillIds = value
	}
	if value, ok := _c.mutation.SelectedIndex(); ok {
		_spec.SetField(answerevent.FieldSelectedIndex, field.TypeInt, value)
		_node.SelectedIndex = value
	}
	if value, ok := _c.mutation.CorrectIndex(); ok {
		_spec.SetField(answerevent.FieldCorrectIndex, field.TypeInt, value)
		_node.CorrectIndex = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(answerevent.FieldErrorType, field.TypeString, value)
		_node.ErrorType = value
	}
	if value, ok := _c.mutation.ErrorRule(); ok {
		_spec.SetField(answerevent.FieldErrorRule, field.TypeString, value)
		_node.ErrorRule = value
	}
	return _node, _spec
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
}

// Save creates the AnswerEvent entities in the database.
func (_c *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
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
func (_c *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
