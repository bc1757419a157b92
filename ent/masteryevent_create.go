// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brighted/nable/ent/masteryevent"
)

// MasteryEventCreate is the builder for creating a MasteryEvent entity.
type MasteryEventCreate struct {
	config
	mutation *MasteryEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *MasteryEventCreate) SetSequence(v int64) *MasteryEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MasteryEventCreate) SetTimestamp(v time.Time) *MasteryEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MasteryEventCreate) SetNillableTimestamp(v *time.Time) *MasteryEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *MasteryEventCreate) SetUserID(v string) *MasteryEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *MasteryEventCreate) SetSkillID(v string) *MasteryEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetMasteryBefore sets the "mastery_before" field.
func (_c *MasteryEventCreate) SetMasteryBefore(v float64) *MasteryEventCreate {
	_c.mutation.SetMasteryBefore(v)
	return _c
}

// SetMasteryAfter sets the "mastery_after" field.
func (_c *MasteryEventCreate) SetMasteryAfter(v float64) *MasteryEventCreate {
	_c.mutation.SetMasteryAfter(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *MasteryEventCreate) SetConfidence(v float64) *MasteryEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetHalfLifeDays sets the "half_life_days" field.
func (_c *MasteryEventCreate) SetHalfLifeDays(v float64) *MasteryEventCreate {
	_c.mutation.SetHalfLifeDays(v)
	return _c
}

// SetStreak sets the "streak" field.
func (_c *MasteryEventCreate) SetStreak(v int) *MasteryEventCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *MasteryEventCreate) SetNillableStreak(v *int) *MasteryEventCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *MasteryEventCreate) SetTrigger(v string) *MasteryEventCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *MasteryEventCreate) SetSessionID(v string) *MasteryEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *MasteryEventCreate) SetNillableSessionID(v *string) *MasteryEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_c *MasteryEventCreate) Mutation() *MasteryEventMutation {
	return _c.mutation
}

// Save creates the MasteryEvent in the database.
func (_c *MasteryEventCreate) Save(ctx context.Context) (*MasteryEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryEventCreate) SaveX(ctx context.Context) *MasteryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := masteryevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := masteryevent.DefaultStreak
		_c.mutation.SetStreak(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MasteryEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MasteryEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MasteryEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := masteryevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "MasteryEvent.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryBefore(); !ok {
		return &ValidationError{Name: "mastery_before", err: errors.New(`ent: missing required field "MasteryEvent.mastery_before"`)}
	}
	if _, ok := _c.mutation.MasteryAfter(); !ok {
		return &ValidationError{Name: "mastery_after", err: errors.New(`ent: missing required field "MasteryEvent.mastery_after"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "MasteryEvent.confidence"`)}
	}
	if _, ok := _c.mutation.HalfLifeDays(); !ok {
		return &ValidationError{Name: "half_life_days", err: errors.New(`ent: missing required field "MasteryEvent.half_life_days"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "MasteryEvent.streak"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "MasteryEvent.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := masteryevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_c *MasteryEventCreate) sqlSave(ctx context.Context) (*MasteryEvent, error) {
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

func (_c *MasteryEventCreate) createSpec() (*MasteryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryevent.Table, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(masteryevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(masteryevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(masteryevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.MasteryBefore(); ok {
		_spec.SetField(masteryevent.FieldMasteryBefore, field.TypeFloat64, value)
		_node.MasteryBefore = value
	}
	if value, ok := _c.mutation.MasteryAfter(); ok {
		_spec.SetField(masteryevent.FieldMasteryAfter, field.TypeFloat64, value)
		_node.MasteryAfter = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(masteryevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.HalfLifeDays(); ok {
		_spec.SetField(masteryevent.FieldHalfLifeDays, field.TypeFloat64, value)
		_node.HalfLifeDays = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(masteryevent.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(masteryevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// MasteryEventCreateBulk is the builder for creating many MasteryEvent entities in bulk.
type MasteryEventCreateBulk struct {
	config
	err      error
	builders []*MasteryEventCreate
}

// Save creates the MasteryEvent entities in the database.
func (_c *MasteryEventCreateBulk) Save(ctx context.Context) ([]*MasteryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryEventMutation)
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
func (_c *MasteryEventCreateBulk) SaveX(ctx context.Context) []*MasteryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
