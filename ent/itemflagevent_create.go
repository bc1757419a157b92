// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brighted/nable/ent/itemflagevent"
)

// ItemFlagEventCreate is the builder for creating a ItemFlagEvent entity.
type ItemFlagEventCreate struct {
	config
	mutation *ItemFlagEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ItemFlagEventCreate) SetSequence(v int64) *ItemFlagEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ItemFlagEventCreate) SetTimestamp(v time.Time) *ItemFlagEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ItemFlagEventCreate) SetNillableTimestamp(v *time.Time) *ItemFlagEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ItemFlagEventCreate) SetQuestionID(v string) *ItemFlagEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ItemFlagEventCreate) SetReason(v string) *ItemFlagEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetFlagCount sets the "flag_count" field.
func (_c *ItemFlagEventCreate) SetFlagCount(v int) *ItemFlagEventCreate {
	_c.mutation.SetFlagCount(v)
	return _c
}

// SetArchived sets the "archived" field.
func (_c *ItemFlagEventCreate) SetArchived(v bool) *ItemFlagEventCreate {
	_c.mutation.SetArchived(v)
	return _c
}

// SetNillableArchived sets the "archived" field if the given value is not nil.
func (_c *ItemFlagEventCreate) SetNillableArchived(v *bool) *ItemFlagEventCreate {
	if v != nil {
		_c.SetArchived(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ItemFlagEventCreate) SetSessionID(v string) *ItemFlagEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ItemFlagEventCreate) SetNillableSessionID(v *string) *ItemFlagEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the ItemFlagEventMutation object of the builder.
func (_c *ItemFlagEventCreate) Mutation() *ItemFlagEventMutation {
	return _c.mutation
}

// Save creates the ItemFlagEvent in the database.
func (_c *ItemFlagEventCreate) Save(ctx context.Context) (*ItemFlagEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemFlagEventCreate) SaveX(ctx context.Context) *ItemFlagEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemFlagEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemFlagEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemFlagEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := itemflagevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Archived(); !ok {
		v := itemflagevent.DefaultArchived
		_c.mutation.SetArchived(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemFlagEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ItemFlagEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ItemFlagEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ItemFlagEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := itemflagevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ItemFlagEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "ItemFlagEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := itemflagevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ItemFlagEvent.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FlagCount(); !ok {
		return &ValidationError{Name: "flag_count", err: errors.New(`ent: missing required field "ItemFlagEvent.flag_count"`)}
	}
	if _, ok := _c.mutation.Archived(); !ok {
		return &ValidationError{Name: "archived", err: errors.New(`ent: missing required field "ItemFlagEvent.archived"`)}
	}
	return nil
}

func (_c *ItemFlagEventCreate) sqlSave(ctx context.Context) (*ItemFlagEvent, error) {
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

func (_c *ItemFlagEventCreate) createSpec() (*ItemFlagEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ItemFlagEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(itemflagevent.Table, sqlgraph.NewFieldSpec(itemflagevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(itemflagevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(itemflagevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(itemflagevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(itemflagevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.FlagCount(); ok {
		_spec.SetField(itemflagevent.FieldFlagCount, field.TypeInt, value)
		_node.FlagCount = value
	}
	if value, ok := _c.mutation.Archived(); ok {
		_spec.SetField(itemflagevent.FieldArchived, field.TypeBool, value)
		_node.Archived = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(itemflagevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// ItemFlagEventCreateBulk is the builder for creating many ItemFlagEvent entities in bulk.
type ItemFlagEventCreateBulk struct {
	config
	err      error
	builders []*ItemFlagEventCreate
}

// Save creates the ItemFlagEvent entities in the database.
func (_c *ItemFlagEventCreateBulk) Save(ctx context.Context) ([]*ItemFlagEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ItemFlagEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemFlagEventMutation)
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
func (_c *ItemFlagEventCreateBulk) SaveX(ctx context.Context) []*ItemFlagEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemFlagEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemFlagEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
