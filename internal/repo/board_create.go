// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hongik-triple/acnelog_backend/internal/repo/board"
)

// BoardCreate is the builder for creating a Board entity.
type BoardCreate struct {
	config
	mutation *BoardMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *BoardCreate) SetCreatedAt(v time.Time) *BoardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BoardCreate) SetNillableCreatedAt(v *time.Time) *BoardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BoardCreate) SetUpdatedAt(v time.Time) *BoardCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BoardCreate) SetNillableUpdatedAt(v *time.Time) *BoardCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *BoardCreate) SetDeletedAt(v time.Time) *BoardCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *BoardCreate) SetNillableDeletedAt(v *time.Time) *BoardCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *BoardCreate) SetTitle(v string) *BoardCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *BoardCreate) SetContent(v string) *BoardCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetPinned sets the "pinned" field.
func (_c *BoardCreate) SetPinned(v bool) *BoardCreate {
	_c.mutation.SetPinned(v)
	return _c
}

// SetNillablePinned sets the "pinned" field if the given value is not nil.
func (_c *BoardCreate) SetNillablePinned(v *bool) *BoardCreate {
	if v != nil {
		_c.SetPinned(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BoardCreate) SetID(v uuid.UUID) *BoardCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BoardCreate) SetNillableID(v *uuid.UUID) *BoardCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BoardMutation object of the builder.
func (_c *BoardCreate) Mutation() *BoardMutation {
	return _c.mutation
}

// Save creates the Board in the database.
func (_c *BoardCreate) Save(ctx context.Context) (*Board, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BoardCreate) SaveX(ctx context.Context) *Board {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BoardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BoardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BoardCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := board.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := board.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Pinned(); !ok {
		v := board.DefaultPinned
		_c.mutation.SetPinned(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := board.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BoardCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Board.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Board.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Board.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := board.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Board.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`repo: missing required field "Board.content"`)}
	}
	if _, ok := _c.mutation.Pinned(); !ok {
		return &ValidationError{Name: "pinned", err: errors.New(`repo: missing required field "Board.pinned"`)}
	}
	return nil
}

func (_c *BoardCreate) sqlSave(ctx context.Context) (*Board, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BoardCreate) createSpec() (*Board, *sqlgraph.CreateSpec) {
	var (
		_node = &Board{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(board.Table, sqlgraph.NewFieldSpec(board.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(board.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(board.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(board.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(board.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(board.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Pinned(); ok {
		_spec.SetField(board.FieldPinned, field.TypeBool, value)
		_node.Pinned = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Board.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BoardUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BoardCreate) OnConflict(opts ...sql.ConflictOption) *BoardUpsertOne {
	_c.conflict = opts
	return &BoardUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Board.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BoardCreate) OnConflictColumns(columns ...string) *BoardUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BoardUpsertOne{
		create: _c,
	}
}

type (
	// BoardUpsertOne is the builder for "upsert"-ing
	//  one Board node.
	BoardUpsertOne struct {
		create *BoardCreate
	}

	// BoardUpsert is the "OnConflict" setter.
	BoardUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *BoardUpsert) SetUpdatedAt(v time.Time) *BoardUpsert {
	u.Set(board.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BoardUpsert) UpdateUpdatedAt() *BoardUpsert {
	u.SetExcluded(board.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *BoardUpsert) SetDeletedAt(v time.Time) *BoardUpsert {
	u.Set(board.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *BoardUpsert) UpdateDeletedAt() *BoardUpsert {
	u.SetExcluded(board.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *BoardUpsert) ClearDeletedAt() *BoardUpsert {
	u.SetNull(board.FieldDeletedAt)
	return u
}

// SetTitle sets the "title" field.
func (u *BoardUpsert) SetTitle(v string) *BoardUpsert {
	u.Set(board.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *BoardUpsert) UpdateTitle() *BoardUpsert {
	u.SetExcluded(board.FieldTitle)
	return u
}

// SetContent sets the "content" field.
func (u *BoardUpsert) SetContent(v string) *BoardUpsert {
	u.Set(board.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *BoardUpsert) UpdateContent() *BoardUpsert {
	u.SetExcluded(board.FieldContent)
	return u
}

// SetPinned sets the "pinned" field.
func (u *BoardUpsert) SetPinned(v bool) *BoardUpsert {
	u.Set(board.FieldPinned, v)
	return u
}

// UpdatePinned sets the "pinned" field to the value that was provided on create.
func (u *BoardUpsert) UpdatePinned() *BoardUpsert {
	u.SetExcluded(board.FieldPinned)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Board.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(board.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BoardUpsertOne) UpdateNewValues() *BoardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(board.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(board.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Board.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BoardUpsertOne) Ignore() *BoardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BoardUpsertOne) DoNothing() *BoardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BoardCreate.OnConflict
// documentation for more info.
func (u *BoardUpsertOne) Update(set func(*BoardUpsert)) *BoardUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BoardUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BoardUpsertOne) SetUpdatedAt(v time.Time) *BoardUpsertOne {
	return u.Update(func(s *BoardUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BoardUpsertOne) UpdateUpdatedAt() *BoardUpsertOne {
	return u.Update(func(s *BoardUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *BoardUpsertOne) SetDeletedAt(v time.Time) *BoardUpsertOne {
	return u.Update(func(s *BoardUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *BoardUpsertOne) UpdateDeletedAt() *BoardUpsertOne {
	return u.Update(func(s *BoardUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *BoardUpsertOne) ClearDeletedAt() *BoardUpsertOne {
	return u.Update(func(s *BoardUpsert) {
		s.ClearDeletedAt()
	})
}

// SetTitle sets the "title" field.
func (u *BoardUpsertOne) SetTitle(v string) *BoardUpsertOne {
	return u.Update(func(s *BoardUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *BoardUpsertOne) UpdateTitle() *BoardUpsertOne {
	return u.Update(func(s *BoardUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *BoardUpsertOne) SetContent(v string) *BoardUpsertOne {
	return u.Update(func(s *BoardUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *BoardUpsertOne) UpdateContent() *BoardUpsertOne {
	return u.Update(func(s *BoardUpsert) {
		s.UpdateContent()
	})
}

// SetPinned sets the "pinned" field.
func (u *BoardUpsertOne) SetPinned(v bool) *BoardUpsertOne {
	return u.Update(func(s *BoardUpsert) {
		s.SetPinned(v)
	})
}

// UpdatePinned sets the "pinned" field to the value that was provided on create.
func (u *BoardUpsertOne) UpdatePinned() *BoardUpsertOne {
	return u.Update(func(s *BoardUpsert) {
		s.UpdatePinned()
	})
}

// Exec executes the query.
func (u *BoardUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BoardCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BoardUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BoardUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: BoardUpsertOne.ID is not supported by MySQL driver. Use BoardUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BoardUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BoardCreateBulk is the builder for creating many Board entities in bulk.
type BoardCreateBulk struct {
	config
	err      error
	builders []*BoardCreate
	conflict []sql.ConflictOption
}

// Save creates the Board entities in the database.
func (_c *BoardCreateBulk) Save(ctx context.Context) ([]*Board, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Board, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BoardMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *BoardCreateBulk) SaveX(ctx context.Context) []*Board {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BoardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BoardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Board.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BoardUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *BoardCreateBulk) OnConflict(opts ...sql.ConflictOption) *BoardUpsertBulk {
	_c.conflict = opts
	return &BoardUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Board.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BoardCreateBulk) OnConflictColumns(columns ...string) *BoardUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BoardUpsertBulk{
		create: _c,
	}
}

// BoardUpsertBulk is the builder for "upsert"-ing
// a bulk of Board nodes.
type BoardUpsertBulk struct {
	create *BoardCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Board.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(board.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BoardUpsertBulk) UpdateNewValues() *BoardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(board.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(board.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Board.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BoardUpsertBulk) Ignore() *BoardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BoardUpsertBulk) DoNothing() *BoardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BoardCreateBulk.OnConflict
// documentation for more info.
func (u *BoardUpsertBulk) Update(set func(*BoardUpsert)) *BoardUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BoardUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BoardUpsertBulk) SetUpdatedAt(v time.Time) *BoardUpsertBulk {
	return u.Update(func(s *BoardUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BoardUpsertBulk) UpdateUpdatedAt() *BoardUpsertBulk {
	return u.Update(func(s *BoardUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *BoardUpsertBulk) SetDeletedAt(v time.Time) *BoardUpsertBulk {
	return u.Update(func(s *BoardUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *BoardUpsertBulk) UpdateDeletedAt() *BoardUpsertBulk {
	return u.Update(func(s *BoardUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *BoardUpsertBulk) ClearDeletedAt() *BoardUpsertBulk {
	return u.Update(func(s *BoardUpsert) {
		s.ClearDeletedAt()
	})
}

// SetTitle sets the "title" field.
func (u *BoardUpsertBulk) SetTitle(v string) *BoardUpsertBulk {
	return u.Update(func(s *BoardUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *BoardUpsertBulk) UpdateTitle() *BoardUpsertBulk {
	return u.Update(func(s *BoardUpsert) {
		s.UpdateTitle()
	})
}

// SetContent sets the "content" field.
func (u *BoardUpsertBulk) SetContent(v string) *BoardUpsertBulk {
	return u.Update(func(s *BoardUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *BoardUpsertBulk) UpdateContent() *BoardUpsertBulk {
	return u.Update(func(s *BoardUpsert) {
		s.UpdateContent()
	})
}

// SetPinned sets the "pinned" field.
func (u *BoardUpsertBulk) SetPinned(v bool) *BoardUpsertBulk {
	return u.Update(func(s *BoardUpsert) {
		s.SetPinned(v)
	})
}

// UpdatePinned sets the "pinned" field to the value that was provided on create.
func (u *BoardUpsertBulk) UpdatePinned() *BoardUpsertBulk {
	return u.Update(func(s *BoardUpsert) {
		s.UpdatePinned()
	})
}

// Exec executes the query.
func (u *BoardUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the BoardCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for BoardCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BoardUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
