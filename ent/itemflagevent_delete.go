// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brighted/nable/ent/itemflagevent"
	"github.com/brighted/nable/ent/predicate"
)

// ItemFlagEventDelete is the builder for deleting a ItemFlagEvent entity.
type ItemFlagEventDelete struct {
	config
	hooks    []Hook
	mutation *ItemFlagEventMutation
}

// Where appends a list predicates to the ItemFlagEventDelete builder.
func (_d *ItemFlagEventDelete) Where(ps ...predicate.ItemFlagEvent) *ItemFlagEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ItemFlagEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ItemFlagEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ItemFlagEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(itemflagevent.Table, sqlgraph.NewFieldSpec(itemflagevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ItemFlagEventDeleteOne is the builder for deleting a single ItemFlagEvent entity.
type ItemFlagEventDeleteOne struct {
	_d *ItemFlagEventDelete
}

// Where appends a list predicates to the ItemFlagEventDelete builder.
func (_d *ItemFlagEventDeleteOne) Where(ps ...predicate.ItemFlagEvent) *ItemFlagEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ItemFlagEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{itemflagevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ItemFlagEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
