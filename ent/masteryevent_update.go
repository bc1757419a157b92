// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brighted/nable/ent/masteryevent"
	"github.com/brighted/nable/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MasteryEventUpdate) SetUserID(v string) *MasteryEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableUserID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *MasteryEventUpdate) SetSkillID(v string) *MasteryEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSkillID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetMasteryBefore sets the "mastery_before" field.
func (_u *MasteryEventUpdate) SetMasteryBefore(v float64) *MasteryEventUpdate {
	_u.mutation.ResetMasteryBefore()
	_u.mutation.SetMasteryBefore(v)
	return _u
}

// SetNillableMasteryBefore sets the "mastery_before" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableMasteryBefore(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetMasteryBefore(*v)
	}
	return _u
}

// AddMasteryBefore adds value to the "mastery_before" field.
func (_u *MasteryEventUpdate) AddMasteryBefore(v float64) *MasteryEventUpdate {
	_u.mutation.AddMasteryBefore(v)
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *MasteryEventUpdate) SetMasteryAfter(v float64) *MasteryEventUpdate {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableMasteryAfter(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *MasteryEventUpdate) AddMasteryAfter(v float64) *MasteryEventUpdate {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MasteryEventUpdate) SetConfidence(v float64) *MasteryEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableConfidence(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MasteryEventUpdate) AddConfidence(v float64) *MasteryEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetHalfLifeDays sets the "half_life_days" field.
func (_u *MasteryEventUpdate) SetHalfLifeDays(v float64) *MasteryEventUpdate {
	_u.mutation.ResetHalfLifeDays()
	_u.mutation.SetHalfLifeDays(v)
	return _u
}

// SetNillableHalfLifeDays sets the "half_life_days" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableHalfLifeDays(v *float64) *MasteryEventUpdate {
	if v != nil {
		_u.SetHalfLifeDays(*v)
	}
	return _u
}

// AddHalfLifeDays adds value to the "half_life_days" field.
func (_u *MasteryEventUpdate) AddHalfLifeDays(v float64) *MasteryEventUpdate {
	_u.mutation.AddHalfLifeDays(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *MasteryEventUpdate) SetStreak(v int) *MasteryEventUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableStreak(v *int) *MasteryEventUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *MasteryEventUpdate) AddStreak(v int) *MasteryEventUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *MasteryEventUpdate) SetTrigger(v string) *MasteryEventUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableTrigger(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdate) SetSessionID(v string) *MasteryEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSessionID(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MasteryEventUpdate) ClearSessionID() *MasteryEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := masteryevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := masteryevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(masteryevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryBefore(); ok {
		_spec.SetField(masteryevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryBefore(); ok {
		_spec.AddField(masteryevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(masteryevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(masteryevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(masteryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(masteryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HalfLifeDays(); ok {
		_spec.SetField(masteryevent.FieldHalfLifeDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHalfLifeDays(); ok {
		_spec.AddField(masteryevent.FieldHalfLifeDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(masteryevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(masteryevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(masteryevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *MasteryEventUpdateOne) SetUserID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableUserID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *MasteryEventUpdateOne) SetSkillID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSkillID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetMasteryBefore sets the "mastery_before" field.
func (_u *MasteryEventUpdateOne) SetMasteryBefore(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetMasteryBefore()
	_u.mutation.SetMasteryBefore(v)
	return _u
}

// SetNillableMasteryBefore sets the "mastery_before" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableMasteryBefore(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetMasteryBefore(*v)
	}
	return _u
}

// AddMasteryBefore adds value to the "mastery_before" field.
func (_u *MasteryEventUpdateOne) AddMasteryBefore(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddMasteryBefore(v)
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *MasteryEventUpdateOne) SetMasteryAfter(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableMasteryAfter(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *MasteryEventUpdateOne) AddMasteryAfter(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MasteryEventUpdateOne) SetConfidence(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableConfidence(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MasteryEventUpdateOne) AddConfidence(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetHalfLifeDays sets the "half_life_days" field.
func (_u *MasteryEventUpdateOne) SetHalfLifeDays(v float64) *MasteryEventUpdateOne {
	_u.mutation.ResetHalfLifeDays()
	_u.mutation.SetHalfLifeDays(v)
	return _u
}

// SetNillableHalfLifeDays sets the "half_life_days" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableHalfLifeDays(v *float64) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetHalfLifeDays(*v)
	}
	return _u
}

// AddHalfLifeDays adds value to the "half_life_days" field.
func (_u *MasteryEventUpdateOne) AddHalfLifeDays(v float64) *MasteryEventUpdateOne {
	_u.mutation.AddHalfLifeDays(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *MasteryEventUpdateOne) SetStreak(v int) *MasteryEventUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableStreak(v *int) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *MasteryEventUpdateOne) AddStreak(v int) *MasteryEventUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *MasteryEventUpdateOne) SetTrigger(v string) *MasteryEventUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableTrigger(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MasteryEventUpdateOne) SetSessionID(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSessionID(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *MasteryEventUpdateOne) ClearSessionID() *MasteryEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := masteryevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Trigger(); ok {
		if err := masteryevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(masteryevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryBefore(); ok {
		_spec.SetField(masteryevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryBefore(); ok {
		_spec.AddField(masteryevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(masteryevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(masteryevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(masteryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(masteryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HalfLifeDays(); ok {
		_spec.SetField(masteryevent.FieldHalfLifeDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHalfLifeDays(); ok {
		_spec.AddField(masteryevent.FieldHalfLifeDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(masteryevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(masteryevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(masteryevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(masteryevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(masteryevent.FieldSessionID, field.TypeString)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
