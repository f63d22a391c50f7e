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
	"github.com/hongik-triple/acnelog_backend/internal/repo/diagnosis"
	"github.com/hongik-triple/acnelog_backend/internal/repo/member"
)

// MemberCreate is the builder for creating a Member entity.
type MemberCreate struct {
	config
	mutation *MemberMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MemberCreate) SetCreatedAt(v time.Time) *MemberCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MemberCreate) SetNillableCreatedAt(v *time.Time) *MemberCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MemberCreate) SetUpdatedAt(v time.Time) *MemberCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MemberCreate) SetNillableUpdatedAt(v *time.Time) *MemberCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *MemberCreate) SetDeletedAt(v time.Time) *MemberCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *MemberCreate) SetNillableDeletedAt(v *time.Time) *MemberCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *MemberCreate) SetName(v string) *MemberCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *MemberCreate) SetEmail(v string) *MemberCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *MemberCreate) SetProvider(v member.Provider) *MemberCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetProviderID sets the "provider_id" field.
func (_c *MemberCreate) SetProviderID(v string) *MemberCreate {
	_c.mutation.SetProviderID(v)
	return _c
}

// SetProfileImageURL sets the "profile_image_url" field.
func (_c *MemberCreate) SetProfileImageURL(v string) *MemberCreate {
	_c.mutation.SetProfileImageURL(v)
	return _c
}

// SetNillableProfileImageURL sets the "profile_image_url" field if the given value is not nil.
func (_c *MemberCreate) SetNillableProfileImageURL(v *string) *MemberCreate {
	if v != nil {
		_c.SetProfileImageURL(*v)
	}
	return _c
}

// SetSkinType sets the "skin_type" field.
func (_c *MemberCreate) SetSkinType(v string) *MemberCreate {
	_c.mutation.SetSkinType(v)
	return _c
}

// SetNillableSkinType sets the "skin_type" field if the given value is not nil.
func (_c *MemberCreate) SetNillableSkinType(v *string) *MemberCreate {
	if v != nil {
		_c.SetSkinType(*v)
	}
	return _c
}

// SetLastLoginAt sets the "last_login_at" field.
func (_c *MemberCreate) SetLastLoginAt(v time.Time) *MemberCreate {
	_c.mutation.SetLastLoginAt(v)
	return _c
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_c *MemberCreate) SetNillableLastLoginAt(v *time.Time) *MemberCreate {
	if v != nil {
		_c.SetLastLoginAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MemberCreate) SetID(v uuid.UUID) *MemberCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MemberCreate) SetNillableID(v *uuid.UUID) *MemberCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddDiagnosisIDs adds the "diagnoses" edge to the Diagnosis entity by IDs.
func (_c *MemberCreate) AddDiagnosisIDs(ids ...uuid.UUID) *MemberCreate {
	_c.mutation.AddDiagnosisIDs(ids...)
	return _c
}

// AddDiagnoses adds the "diagnoses" edges to the Diagnosis entity.
func (_c *MemberCreate) AddDiagnoses(v ...*Diagnosis) *MemberCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDiagnosisIDs(ids...)
}

// Mutation returns the MemberMutation object of the builder.
func (_c *MemberCreate) Mutation() *MemberMutation {
	return _c.mutation
}

// Save creates the Member in the database.
func (_c *MemberCreate) Save(ctx context.Context) (*Member, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemberCreate) SaveX(ctx context.Context) *Member {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemberCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := member.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := member.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := member.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemberCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Member.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Member.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Member.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := member.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Member.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "Member.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := member.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Member.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`repo: missing required field "Member.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := member.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "Member.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProviderID(); !ok {
		return &ValidationError{Name: "provider_id", err: errors.New(`repo: missing required field "Member.provider_id"`)}
	}
	if v, ok := _c.mutation.ProviderID(); ok {
		if err := member.ProviderIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_id", err: fmt.Errorf(`repo: validator failed for field "Member.provider_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ProfileImageURL(); ok {
		if err := member.ProfileImageURLValidator(v); err != nil {
			return &ValidationError{Name: "profile_image_url", err: fmt.Errorf(`repo: validator failed for field "Member.profile_image_url": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SkinType(); ok {
		if err := member.SkinTypeValidator(v); err != nil {
			return &ValidationError{Name: "skin_type", err: fmt.Errorf(`repo: validator failed for field "Member.skin_type": %w`, err)}
		}
	}
	return nil
}

func (_c *MemberCreate) sqlSave(ctx context.Context) (*Member, error) {
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

func (_c *MemberCreate) createSpec() (*Member, *sqlgraph.CreateSpec) {
	var (
		_node = &Member{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(member.Table, sqlgraph.NewFieldSpec(member.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(member.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(member.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(member.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(member.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(member.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(member.FieldProvider, field.TypeEnum, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ProviderID(); ok {
		_spec.SetField(member.FieldProviderID, field.TypeString, value)
		_node.ProviderID = value
	}
	if value, ok := _c.mutation.ProfileImageURL(); ok {
		_spec.SetField(member.FieldProfileImageURL, field.TypeString, value)
		_node.ProfileImageURL = &value
	}
	if value, ok := _c.mutation.SkinType(); ok {
		_spec.SetField(member.FieldSkinType, field.TypeString, value)
		_node.SkinType = &value
	}
	if value, ok := _c.mutation.LastLoginAt(); ok {
		_spec.SetField(member.FieldLastLoginAt, field.TypeTime, value)
		_node.LastLoginAt = &value
	}
	if nodes := _c.mutation.DiagnosesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   member.DiagnosesTable,
			Columns: []string{member.DiagnosesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(diagnosis.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Member.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MemberUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MemberCreate) OnConflict(opts ...sql.ConflictOption) *MemberUpsertOne {
	_c.conflict = opts
	return &MemberUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Member.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MemberCreate) OnConflictColumns(columns ...string) *MemberUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MemberUpsertOne{
		create: _c,
	}
}

type (
	// MemberUpsertOne is the builder for "upsert"-ing
	//  one Member node.
	MemberUpsertOne struct {
		create *MemberCreate
	}

	// MemberUpsert is the "OnConflict" setter.
	MemberUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MemberUpsert) SetUpdatedAt(v time.Time) *MemberUpsert {
	u.Set(member.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MemberUpsert) UpdateUpdatedAt() *MemberUpsert {
	u.SetExcluded(member.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *MemberUpsert) SetDeletedAt(v time.Time) *MemberUpsert {
	u.Set(member.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *MemberUpsert) UpdateDeletedAt() *MemberUpsert {
	u.SetExcluded(member.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *MemberUpsert) ClearDeletedAt() *MemberUpsert {
	u.SetNull(member.FieldDeletedAt)
	return u
}

// SetName sets the "name" field.
func (u *MemberUpsert) SetName(v string) *MemberUpsert {
	u.Set(member.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MemberUpsert) UpdateName() *MemberUpsert {
	u.SetExcluded(member.FieldName)
	return u
}

// SetEmail sets the "email" field.
func (u *MemberUpsert) SetEmail(v string) *MemberUpsert {
	u.Set(member.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *MemberUpsert) UpdateEmail() *MemberUpsert {
	u.SetExcluded(member.FieldEmail)
	return u
}

// SetProvider sets the "provider" field.
func (u *MemberUpsert) SetProvider(v member.Provider) *MemberUpsert {
	u.Set(member.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *MemberUpsert) UpdateProvider() *MemberUpsert {
	u.SetExcluded(member.FieldProvider)
	return u
}

// SetProviderID sets the "provider_id" field.
func (u *MemberUpsert) SetProviderID(v string) *MemberUpsert {
	u.Set(member.FieldProviderID, v)
	return u
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *MemberUpsert) UpdateProviderID() *MemberUpsert {
	u.SetExcluded(member.FieldProviderID)
	return u
}

// SetProfileImageURL sets the "profile_image_url" field.
func (u *MemberUpsert) SetProfileImageURL(v string) *MemberUpsert {
	u.Set(member.FieldProfileImageURL, v)
	return u
}

// UpdateProfileImageURL sets the "profile_image_url" field to the value that was provided on create.
func (u *MemberUpsert) UpdateProfileImageURL() *MemberUpsert {
	u.SetExcluded(member.FieldProfileImageURL)
	return u
}

// ClearProfileImageURL clears the value of the "profile_image_url" field.
func (u *MemberUpsert) ClearProfileImageURL() *MemberUpsert {
	u.SetNull(member.FieldProfileImageURL)
	return u
}

// SetSkinType sets the "skin_type" field.
func (u *MemberUpsert) SetSkinType(v string) *MemberUpsert {
	u.Set(member.FieldSkinType, v)
	return u
}

// UpdateSkinType sets the "skin_type" field to the value that was provided on create.
func (u *MemberUpsert) UpdateSkinType() *MemberUpsert {
	u.SetExcluded(member.FieldSkinType)
	return u
}

// ClearSkinType clears the value of the "skin_type" field.
func (u *MemberUpsert) ClearSkinType() *MemberUpsert {
	u.SetNull(member.FieldSkinType)
	return u
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *MemberUpsert) SetLastLoginAt(v time.Time) *MemberUpsert {
	u.Set(member.FieldLastLoginAt, v)
	return u
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *MemberUpsert) UpdateLastLoginAt() *MemberUpsert {
	u.SetExcluded(member.FieldLastLoginAt)
	return u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *MemberUpsert) ClearLastLoginAt() *MemberUpsert {
	u.SetNull(member.FieldLastLoginAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Member.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(member.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MemberUpsertOne) UpdateNewValues() *MemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(member.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(member.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Member.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MemberUpsertOne) Ignore() *MemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MemberUpsertOne) DoNothing() *MemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MemberCreate.OnConflict
// documentation for more info.
func (u *MemberUpsertOne) Update(set func(*MemberUpsert)) *MemberUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MemberUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MemberUpsertOne) SetUpdatedAt(v time.Time) *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MemberUpsertOne) UpdateUpdatedAt() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *MemberUpsertOne) SetDeletedAt(v time.Time) *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *MemberUpsertOne) UpdateDeletedAt() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *MemberUpsertOne) ClearDeletedAt() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.ClearDeletedAt()
	})
}

// SetName sets the "name" field.
func (u *MemberUpsertOne) SetName(v string) *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MemberUpsertOne) UpdateName() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateName()
	})
}

// SetEmail sets the "email" field.
func (u *MemberUpsertOne) SetEmail(v string) *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *MemberUpsertOne) UpdateEmail() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateEmail()
	})
}

// SetProvider sets the "provider" field.
func (u *MemberUpsertOne) SetProvider(v member.Provider) *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *MemberUpsertOne) UpdateProvider() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateProvider()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *MemberUpsertOne) SetProviderID(v string) *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *MemberUpsertOne) UpdateProviderID() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateProviderID()
	})
}

// SetProfileImageURL sets the "profile_image_url" field.
func (u *MemberUpsertOne) SetProfileImageURL(v string) *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.SetProfileImageURL(v)
	})
}

// UpdateProfileImageURL sets the "profile_image_url" field to the value that was provided on create.
func (u *MemberUpsertOne) UpdateProfileImageURL() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateProfileImageURL()
	})
}

// ClearProfileImageURL clears the value of the "profile_image_url" field.
func (u *MemberUpsertOne) ClearProfileImageURL() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.ClearProfileImageURL()
	})
}

// SetSkinType sets the "skin_type" field.
func (u *MemberUpsertOne) SetSkinType(v string) *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.SetSkinType(v)
	})
}

// UpdateSkinType sets the "skin_type" field to the value that was provided on create.
func (u *MemberUpsertOne) UpdateSkinType() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateSkinType()
	})
}

// ClearSkinType clears the value of the "skin_type" field.
func (u *MemberUpsertOne) ClearSkinType() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.ClearSkinType()
	})
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *MemberUpsertOne) SetLastLoginAt(v time.Time) *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.SetLastLoginAt(v)
	})
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *MemberUpsertOne) UpdateLastLoginAt() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateLastLoginAt()
	})
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *MemberUpsertOne) ClearLastLoginAt() *MemberUpsertOne {
	return u.Update(func(s *MemberUpsert) {
		s.ClearLastLoginAt()
	})
}

// Exec executes the query.
func (u *MemberUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MemberCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MemberUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MemberUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MemberUpsertOne.ID is not supported by MySQL driver. Use MemberUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MemberUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MemberCreateBulk is the builder for creating many Member entities in bulk.
type MemberCreateBulk struct {
	config
	err      error
	builders []*MemberCreate
	conflict []sql.ConflictOption
}

// Save creates the Member entities in the database.
func (_c *MemberCreateBulk) Save(ctx context.Context) ([]*Member, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Member, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemberMutation)
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
func (_c *MemberCreateBulk) SaveX(ctx context.Context) []*Member {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Member.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MemberUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MemberCreateBulk) OnConflict(opts ...sql.ConflictOption) *MemberUpsertBulk {
	_c.conflict = opts
	return &MemberUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Member.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MemberCreateBulk) OnConflictColumns(columns ...string) *MemberUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MemberUpsertBulk{
		create: _c,
	}
}

// MemberUpsertBulk is the builder for "upsert"-ing
// a bulk of Member nodes.
type MemberUpsertBulk struct {
	create *MemberCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Member.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(member.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MemberUpsertBulk) UpdateNewValues() *MemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(member.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(member.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Member.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MemberUpsertBulk) Ignore() *MemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MemberUpsertBulk) DoNothing() *MemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MemberCreateBulk.OnConflict
// documentation for more info.
func (u *MemberUpsertBulk) Update(set func(*MemberUpsert)) *MemberUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MemberUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MemberUpsertBulk) SetUpdatedAt(v time.Time) *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MemberUpsertBulk) UpdateUpdatedAt() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *MemberUpsertBulk) SetDeletedAt(v time.Time) *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *MemberUpsertBulk) UpdateDeletedAt() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *MemberUpsertBulk) ClearDeletedAt() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.ClearDeletedAt()
	})
}

// SetName sets the "name" field.
func (u *MemberUpsertBulk) SetName(v string) *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MemberUpsertBulk) UpdateName() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateName()
	})
}

// SetEmail sets the "email" field.
func (u *MemberUpsertBulk) SetEmail(v string) *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *MemberUpsertBulk) UpdateEmail() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateEmail()
	})
}

// SetProvider sets the "provider" field.
func (u *MemberUpsertBulk) SetProvider(v member.Provider) *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *MemberUpsertBulk) UpdateProvider() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateProvider()
	})
}

// SetProviderID sets the "provider_id" field.
func (u *MemberUpsertBulk) SetProviderID(v string) *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.SetProviderID(v)
	})
}

// UpdateProviderID sets the "provider_id" field to the value that was provided on create.
func (u *MemberUpsertBulk) UpdateProviderID() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateProviderID()
	})
}

// SetProfileImageURL sets the "profile_image_url" field.
func (u *MemberUpsertBulk) SetProfileImageURL(v string) *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.SetProfileImageURL(v)
	})
}

// UpdateProfileImageURL sets the "profile_image_url" field to the value that was provided on create.
func (u *MemberUpsertBulk) UpdateProfileImageURL() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateProfileImageURL()
	})
}

// ClearProfileImageURL clears the value of the "profile_image_url" field.
func (u *MemberUpsertBulk) ClearProfileImageURL() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.ClearProfileImageURL()
	})
}

// SetSkinType sets the "skin_type" field.
func (u *MemberUpsertBulk) SetSkinType(v string) *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.SetSkinType(v)
	})
}

// UpdateSkinType sets the "skin_type" field to the value that was provided on create.
func (u *MemberUpsertBulk) UpdateSkinType() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateSkinType()
	})
}

// ClearSkinType clears the value of the "skin_type" field.
func (u *MemberUpsertBulk) ClearSkinType() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.ClearSkinType()
	})
}

// SetLastLoginAt sets the "last_login_at" field.
func (u *MemberUpsertBulk) SetLastLoginAt(v time.Time) *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.SetLastLoginAt(v)
	})
}

// UpdateLastLoginAt sets the "last_login_at" field to the value that was provided on create.
func (u *MemberUpsertBulk) UpdateLastLoginAt() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.UpdateLastLoginAt()
	})
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (u *MemberUpsertBulk) ClearLastLoginAt() *MemberUpsertBulk {
	return u.Update(func(s *MemberUpsert) {
		s.ClearLastLoginAt()
	})
}

// Exec executes the query.
func (u *MemberUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MemberCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MemberCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MemberUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
