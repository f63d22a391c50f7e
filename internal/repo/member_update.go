// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hongik-triple/acnelog_backend/internal/repo/diagnosis"
	"github.com/hongik-triple/acnelog_backend/internal/repo/member"
	"github.com/hongik-triple/acnelog_backend/internal/repo/predicate"
)

// MemberUpdate is the builder for updating Member entities.
type MemberUpdate struct {
	config
	hooks    []Hook
	mutation *MemberMutation
}

// Where appends a list predicates to the MemberUpdate builder.
func (_u *MemberUpdate) Where(ps ...predicate.Member) *MemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MemberUpdate) SetUpdatedAt(v time.Time) *MemberUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MemberUpdate) SetDeletedAt(v time.Time) *MemberUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MemberUpdate) SetNillableDeletedAt(v *time.Time) *MemberUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MemberUpdate) ClearDeletedAt() *MemberUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *MemberUpdate) SetName(v string) *MemberUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MemberUpdate) SetNillableName(v *string) *MemberUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *MemberUpdate) SetEmail(v string) *MemberUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *MemberUpdate) SetNillableEmail(v *string) *MemberUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *MemberUpdate) SetProvider(v member.Provider) *MemberUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *MemberUpdate) SetNillableProvider(v *member.Provider) *MemberUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *MemberUpdate) SetProviderID(v string) *MemberUpdate {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *MemberUpdate) SetNillableProviderID(v *string) *MemberUpdate {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetProfileImageURL sets the "profile_image_url" field.
func (_u *MemberUpdate) SetProfileImageURL(v string) *MemberUpdate {
	_u.mutation.SetProfileImageURL(v)
	return _u
}

// SetNillableProfileImageURL sets the "profile_image_url" field if the given value is not nil.
func (_u *MemberUpdate) SetNillableProfileImageURL(v *string) *MemberUpdate {
	if v != nil {
		_u.SetProfileImageURL(*v)
	}
	return _u
}

// ClearProfileImageURL clears the value of the "profile_image_url" field.
func (_u *MemberUpdate) ClearProfileImageURL() *MemberUpdate {
	_u.mutation.ClearProfileImageURL()
	return _u
}

// SetSkinType sets the "skin_type" field.
func (_u *MemberUpdate) SetSkinType(v string) *MemberUpdate {
	_u.mutation.SetSkinType(v)
	return _u
}

// SetNillableSkinType sets the "skin_type" field if the given value is not nil.
func (_u *MemberUpdate) SetNillableSkinType(v *string) *MemberUpdate {
	if v != nil {
		_u.SetSkinType(*v)
	}
	return _u
}

// ClearSkinType clears the value of the "skin_type" field.
func (_u *MemberUpdate) ClearSkinType() *MemberUpdate {
	_u.mutation.ClearSkinType()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *MemberUpdate) SetLastLoginAt(v time.Time) *MemberUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *MemberUpdate) SetNillableLastLoginAt(v *time.Time) *MemberUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *MemberUpdate) ClearLastLoginAt() *MemberUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// AddDiagnosisIDs adds the "diagnoses" edge to the Diagnosis entity by IDs.
func (_u *MemberUpdate) AddDiagnosisIDs(ids ...uuid.UUID) *MemberUpdate {
	_u.mutation.AddDiagnosisIDs(ids...)
	return _u
}

// AddDiagnoses adds the "diagnoses" edges to the Diagnosis entity.
func (_u *MemberUpdate) AddDiagnoses(v ...*Diagnosis) *MemberUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDiagnosisIDs(ids...)
}

// Mutation returns the MemberMutation object of the builder.
func (_u *MemberUpdate) Mutation() *MemberMutation {
	return _u.mutation
}

// ClearDiagnoses clears all "diagnoses" edges to the Diagnosis entity.
func (_u *MemberUpdate) ClearDiagnoses() *MemberUpdate {
	_u.mutation.ClearDiagnoses()
	return _u
}

// RemoveDiagnosisIDs removes the "diagnoses" edge to Diagnosis entities by IDs.
func (_u *MemberUpdate) RemoveDiagnosisIDs(ids ...uuid.UUID) *MemberUpdate {
	_u.mutation.RemoveDiagnosisIDs(ids...)
	return _u
}

// RemoveDiagnoses removes "diagnoses" edges to Diagnosis entities.
func (_u *MemberUpdate) RemoveDiagnoses(v ...*Diagnosis) *MemberUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDiagnosisIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemberUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MemberUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := member.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemberUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := member.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Member.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := member.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Member.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := member.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "Member.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProviderID(); ok {
		if err := member.ProviderIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_id", err: fmt.Errorf(`repo: validator failed for field "Member.provider_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProfileImageURL(); ok {
		if err := member.ProfileImageURLValidator(v); err != nil {
			return &ValidationError{Name: "profile_image_url", err: fmt.Errorf(`repo: validator failed for field "Member.profile_image_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkinType(); ok {
		if err := member.SkinTypeValidator(v); err != nil {
			return &ValidationError{Name: "skin_type", err: fmt.Errorf(`repo: validator failed for field "Member.skin_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(member.Table, member.Columns, sqlgraph.NewFieldSpec(member.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(member.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(member.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(member.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(member.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(member.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(member.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(member.FieldProviderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProfileImageURL(); ok {
		_spec.SetField(member.FieldProfileImageURL, field.TypeString, value)
	}
	if _u.mutation.ProfileImageURLCleared() {
		_spec.ClearField(member.FieldProfileImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.SkinType(); ok {
		_spec.SetField(member.FieldSkinType, field.TypeString, value)
	}
	if _u.mutation.SkinTypeCleared() {
		_spec.ClearField(member.FieldSkinType, field.TypeString)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(member.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(member.FieldLastLoginAt, field.TypeTime)
	}
	if _u.mutation.DiagnosesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDiagnosesIDs(); len(nodes) > 0 && !_u.mutation.DiagnosesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DiagnosesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{member.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemberUpdateOne is the builder for updating a single Member entity.
type MemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemberMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MemberUpdateOne) SetUpdatedAt(v time.Time) *MemberUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MemberUpdateOne) SetDeletedAt(v time.Time) *MemberUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MemberUpdateOne) SetNillableDeletedAt(v *time.Time) *MemberUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MemberUpdateOne) ClearDeletedAt() *MemberUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *MemberUpdateOne) SetName(v string) *MemberUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MemberUpdateOne) SetNillableName(v *string) *MemberUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *MemberUpdateOne) SetEmail(v string) *MemberUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *MemberUpdateOne) SetNillableEmail(v *string) *MemberUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *MemberUpdateOne) SetProvider(v member.Provider) *MemberUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *MemberUpdateOne) SetNillableProvider(v *member.Provider) *MemberUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetProviderID sets the "provider_id" field.
func (_u *MemberUpdateOne) SetProviderID(v string) *MemberUpdateOne {
	_u.mutation.SetProviderID(v)
	return _u
}

// SetNillableProviderID sets the "provider_id" field if the given value is not nil.
func (_u *MemberUpdateOne) SetNillableProviderID(v *string) *MemberUpdateOne {
	if v != nil {
		_u.SetProviderID(*v)
	}
	return _u
}

// SetProfileImageURL sets the "profile_image_url" field.
func (_u *MemberUpdateOne) SetProfileImageURL(v string) *MemberUpdateOne {
	_u.mutation.SetProfileImageURL(v)
	return _u
}

// SetNillableProfileImageURL sets the "profile_image_url" field if the given value is not nil.
func (_u *MemberUpdateOne) SetNillableProfileImageURL(v *string) *MemberUpdateOne {
	if v != nil {
		_u.SetProfileImageURL(*v)
	}
	return _u
}

// ClearProfileImageURL clears the value of the "profile_image_url" field.
func (_u *MemberUpdateOne) ClearProfileImageURL() *MemberUpdateOne {
	_u.mutation.ClearProfileImageURL()
	return _u
}

// SetSkinType sets the "skin_type" field.
func (_u *MemberUpdateOne) SetSkinType(v string) *MemberUpdateOne {
	_u.mutation.SetSkinType(v)
	return _u
}

// SetNillableSkinType sets the "skin_type" field if the given value is not nil.
func (_u *MemberUpdateOne) SetNillableSkinType(v *string) *MemberUpdateOne {
	if v != nil {
		_u.SetSkinType(*v)
	}
	return _u
}

// ClearSkinType clears the value of the "skin_type" field.
func (_u *MemberUpdateOne) ClearSkinType() *MemberUpdateOne {
	_u.mutation.ClearSkinType()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *MemberUpdateOne) SetLastLoginAt(v time.Time) *MemberUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *MemberUpdateOne) SetNillableLastLoginAt(v *time.Time) *MemberUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *MemberUpdateOne) ClearLastLoginAt() *MemberUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// AddDiagnosisIDs adds the "diagnoses" edge to the Diagnosis entity by IDs.
func (_u *MemberUpdateOne) AddDiagnosisIDs(ids ...uuid.UUID) *MemberUpdateOne {
	_u.mutation.AddDiagnosisIDs(ids...)
	return _u
}

// AddDiagnoses adds the "diagnoses" edges to the Diagnosis entity.
func (_u *MemberUpdateOne) AddDiagnoses(v ...*Diagnosis) *MemberUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDiagnosisIDs(ids...)
}

// Mutation returns the MemberMutation object of the builder.
func (_u *MemberUpdateOne) Mutation() *MemberMutation {
	return _u.mutation
}

// ClearDiagnoses clears all "diagnoses" edges to the Diagnosis entity.
func (_u *MemberUpdateOne) ClearDiagnoses() *MemberUpdateOne {
	_u.mutation.ClearDiagnoses()
	return _u
}

// RemoveDiagnosisIDs removes the "diagnoses" edge to Diagnosis entities by IDs.
func (_u *MemberUpdateOne) RemoveDiagnosisIDs(ids ...uuid.UUID) *MemberUpdateOne {
	_u.mutation.RemoveDiagnosisIDs(ids...)
	return _u
}

// RemoveDiagnoses removes "diagnoses" edges to Diagnosis entities.
func (_u *MemberUpdateOne) RemoveDiagnoses(v ...*Diagnosis) *MemberUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDiagnosisIDs(ids...)
}

// Where appends a list predicates to the MemberUpdate builder.
func (_u *MemberUpdateOne) Where(ps ...predicate.Member) *MemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemberUpdateOne) Select(field string, fields ...string) *MemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Member entity.
func (_u *MemberUpdateOne) Save(ctx context.Context) (*Member, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemberUpdateOne) SaveX(ctx context.Context) *Member {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MemberUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := member.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemberUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := member.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Member.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := member.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Member.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := member.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "Member.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProviderID(); ok {
		if err := member.ProviderIDValidator(v); err != nil {
			return &ValidationError{Name: "provider_id", err: fmt.Errorf(`repo: validator failed for field "Member.provider_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProfileImageURL(); ok {
		if err := member.ProfileImageURLValidator(v); err != nil {
			return &ValidationError{Name: "profile_image_url", err: fmt.Errorf(`repo: validator failed for field "Member.profile_image_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkinType(); ok {
		if err := member.SkinTypeValidator(v); err != nil {
			return &ValidationError{Name: "skin_type", err: fmt.Errorf(`repo: validator failed for field "Member.skin_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MemberUpdateOne) sqlSave(ctx context.Context) (_node *Member, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(member.Table, member.Columns, sqlgraph.NewFieldSpec(member.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Member.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, member.FieldID)
		for _, f := range fields {
			if !member.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != member.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(member.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(member.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(member.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(member.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(member.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(member.FieldProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProviderID(); ok {
		_spec.SetField(member.FieldProviderID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProfileImageURL(); ok {
		_spec.SetField(member.FieldProfileImageURL, field.TypeString, value)
	}
	if _u.mutation.ProfileImageURLCleared() {
		_spec.ClearField(member.FieldProfileImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.SkinType(); ok {
		_spec.SetField(member.FieldSkinType, field.TypeString, value)
	}
	if _u.mutation.SkinTypeCleared() {
		_spec.ClearField(member.FieldSkinType, field.TypeString)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(member.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(member.FieldLastLoginAt, field.TypeTime)
	}
	if _u.mutation.DiagnosesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDiagnosesIDs(); len(nodes) > 0 && !_u.mutation.DiagnosesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DiagnosesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Member{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{member.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
