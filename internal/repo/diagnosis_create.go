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

// DiagnosisCreate is the builder for creating a Diagnosis entity.
type DiagnosisCreate struct {
	config
	mutation *DiagnosisMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DiagnosisCreate) SetCreatedAt(v time.Time) *DiagnosisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DiagnosisCreate) SetNillableCreatedAt(v *time.Time) *DiagnosisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DiagnosisCreate) SetUpdatedAt(v time.Time) *DiagnosisCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DiagnosisCreate) SetNillableUpdatedAt(v *time.Time) *DiagnosisCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DiagnosisCreate) SetDeletedAt(v time.Time) *DiagnosisCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *DiagnosisCreate) SetNillableDeletedAt(v *time.Time) *DiagnosisCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetMemberID sets the "member_id" field.
func (_c *DiagnosisCreate) SetMemberID(v uuid.UUID) *DiagnosisCreate {
	_c.mutation.SetMemberID(v)
	return _c
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_c *DiagnosisCreate) SetNillableMemberID(v *uuid.UUID) *DiagnosisCreate {
	if v != nil {
		_c.SetMemberID(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *DiagnosisCreate) SetSource(v diagnosis.Source) *DiagnosisCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetSkinType sets the "skin_type" field.
func (_c *DiagnosisCreate) SetSkinType(v string) *DiagnosisCreate {
	_c.mutation.SetSkinType(v)
	return _c
}

// SetImageKey sets the "image_key" field.
func (_c *DiagnosisCreate) SetImageKey(v string) *DiagnosisCreate {
	_c.mutation.SetImageKey(v)
	return _c
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_c *DiagnosisCreate) SetNillableImageKey(v *string) *DiagnosisCreate {
	if v != nil {
		_c.SetImageKey(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DiagnosisCreate) SetConfidence(v float64) *DiagnosisCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *DiagnosisCreate) SetNillableConfidence(v *float64) *DiagnosisCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetScores sets the "scores" field.
func (_c *DiagnosisCreate) SetScores(v map[string]int) *DiagnosisCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetCategoryScores sets the "category_scores" field.
func (_c *DiagnosisCreate) SetCategoryScores(v map[string]int) *DiagnosisCreate {
	_c.mutation.SetCategoryScores(v)
	return _c
}

// SetTotalScore sets the "total_score" field.
func (_c *DiagnosisCreate) SetTotalScore(v int) *DiagnosisCreate {
	_c.mutation.SetTotalScore(v)
	return _c
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_c *DiagnosisCreate) SetNillableTotalScore(v *int) *DiagnosisCreate {
	if v != nil {
		_c.SetTotalScore(*v)
	}
	return _c
}

// SetVideoData sets the "video_data" field.
func (_c *DiagnosisCreate) SetVideoData(v []map[string]interface{}) *DiagnosisCreate {
	_c.mutation.SetVideoData(v)
	return _c
}

// SetProductData sets the "product_data" field.
func (_c *DiagnosisCreate) SetProductData(v []map[string]interface{}) *DiagnosisCreate {
	_c.mutation.SetProductData(v)
	return _c
}

// SetIsPublic sets the "is_public" field.
func (_c *DiagnosisCreate) SetIsPublic(v bool) *DiagnosisCreate {
	_c.mutation.SetIsPublic(v)
	return _c
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_c *DiagnosisCreate) SetNillableIsPublic(v *bool) *DiagnosisCreate {
	if v != nil {
		_c.SetIsPublic(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DiagnosisCreate) SetID(v uuid.UUID) *DiagnosisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DiagnosisCreate) SetNillableID(v *uuid.UUID) *DiagnosisCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMember sets the "member" edge to the Member entity.
func (_c *DiagnosisCreate) SetMember(v *Member) *DiagnosisCreate {
	return _c.SetMemberID(v.ID)
}

// Mutation returns the DiagnosisMutation object of the builder.
func (_c *DiagnosisCreate) Mutation() *DiagnosisMutation {
	return _c.mutation
}

// Save creates the Diagnosis in the database.
func (_c *DiagnosisCreate) Save(ctx context.Context) (*Diagnosis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiagnosisCreate) SaveX(ctx context.Context) *Diagnosis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiagnosisCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := diagnosis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := diagnosis.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsPublic(); !ok {
		v := diagnosis.DefaultIsPublic
		_c.mutation.SetIsPublic(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := diagnosis.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiagnosisCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Diagnosis.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Diagnosis.updated_at"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`repo: missing required field "Diagnosis.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := diagnosis.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "Diagnosis.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkinType(); !ok {
		return &ValidationError{Name: "skin_type", err: errors.New(`repo: missing required field "Diagnosis.skin_type"`)}
	}
	if v, ok := _c.mutation.SkinType(); ok {
		if err := diagnosis.SkinTypeValidator(v); err != nil {
			return &ValidationError{Name: "skin_type", err: fmt.Errorf(`repo: validator failed for field "Diagnosis.skin_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ImageKey(); ok {
		if err := diagnosis.ImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "image_key", err: fmt.Errorf(`repo: validator failed for field "Diagnosis.image_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPublic(); !ok {
		return &ValidationError{Name: "is_public", err: errors.New(`repo: missing required field "Diagnosis.is_public"`)}
	}
	return nil
}

func (_c *DiagnosisCreate) sqlSave(ctx context.Context) (*Diagnosis, error) {
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

func (_c *DiagnosisCreate) createSpec() (*Diagnosis, *sqlgraph.CreateSpec) {
	var (
		_node = &Diagnosis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diagnosis.Table, sqlgraph.NewFieldSpec(diagnosis.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(diagnosis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(diagnosis.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(diagnosis.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(diagnosis.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.SkinType(); ok {
		_spec.SetField(diagnosis.FieldSkinType, field.TypeString, value)
		_node.SkinType = value
	}
	if value, ok := _c.mutation.ImageKey(); ok {
		_spec.SetField(diagnosis.FieldImageKey, field.TypeString, value)
		_node.ImageKey = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(diagnosis.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(diagnosis.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.CategoryScores(); ok {
		_spec.SetField(diagnosis.FieldCategoryScores, field.TypeJSON, value)
		_node.CategoryScores = value
	}
	if value, ok := _c.mutation.TotalScore(); ok {
		_spec.SetField(diagnosis.FieldTotalScore, field.TypeInt, value)
		_node.TotalScore = &value
	}
	if value, ok := _c.mutation.VideoData(); ok {
		_spec.SetField(diagnosis.FieldVideoData, field.TypeJSON, value)
		_node.VideoData = value
	}
	if value, ok := _c.mutation.ProductData(); ok {
		_spec.SetField(diagnosis.FieldProductData, field.TypeJSON, value)
		_node.ProductData = value
	}
	if value, ok := _c.mutation.IsPublic(); ok {
		_spec.SetField(diagnosis.FieldIsPublic, field.TypeBool, value)
		_node.IsPublic = value
	}
	if nodes := _c.mutation.MemberIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   diagnosis.MemberTable,
			Columns: []string{diagnosis.MemberColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(member.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MemberID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Diagnosis.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DiagnosisUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DiagnosisCreate) OnConflict(opts ...sql.ConflictOption) *DiagnosisUpsertOne {
	_c.conflict = opts
	return &DiagnosisUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Diagnosis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DiagnosisCreate) OnConflictColumns(columns ...string) *DiagnosisUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DiagnosisUpsertOne{
		create: _c,
	}
}

type (
	// DiagnosisUpsertOne is the builder for "upsert"-ing
	//  one Diagnosis node.
	DiagnosisUpsertOne struct {
		create *DiagnosisCreate
	}

	// DiagnosisUpsert is the "OnConflict" setter.
	DiagnosisUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DiagnosisUpsert) SetUpdatedAt(v time.Time) *DiagnosisUpsert {
	u.Set(diagnosis.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateUpdatedAt() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DiagnosisUpsert) SetDeletedAt(v time.Time) *DiagnosisUpsert {
	u.Set(diagnosis.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateDeletedAt() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DiagnosisUpsert) ClearDeletedAt() *DiagnosisUpsert {
	u.SetNull(diagnosis.FieldDeletedAt)
	return u
}

// SetMemberID sets the "member_id" field.
func (u *DiagnosisUpsert) SetMemberID(v uuid.UUID) *DiagnosisUpsert {
	u.Set(diagnosis.FieldMemberID, v)
	return u
}

// UpdateMemberID sets the "member_id" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateMemberID() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldMemberID)
	return u
}

// ClearMemberID clears the value of the "member_id" field.
func (u *DiagnosisUpsert) ClearMemberID() *DiagnosisUpsert {
	u.SetNull(diagnosis.FieldMemberID)
	return u
}

// SetSource sets the "source" field.
func (u *DiagnosisUpsert) SetSource(v diagnosis.Source) *DiagnosisUpsert {
	u.Set(diagnosis.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateSource() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldSource)
	return u
}

// SetSkinType sets the "skin_type" field.
func (u *DiagnosisUpsert) SetSkinType(v string) *DiagnosisUpsert {
	u.Set(diagnosis.FieldSkinType, v)
	return u
}

// UpdateSkinType sets the "skin_type" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateSkinType() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldSkinType)
	return u
}

// SetImageKey sets the "image_key" field.
func (u *DiagnosisUpsert) SetImageKey(v string) *DiagnosisUpsert {
	u.Set(diagnosis.FieldImageKey, v)
	return u
}

// UpdateImageKey sets the "image_key" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateImageKey() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldImageKey)
	return u
}

// ClearImageKey clears the value of the "image_key" field.
func (u *DiagnosisUpsert) ClearImageKey() *DiagnosisUpsert {
	u.SetNull(diagnosis.FieldImageKey)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *DiagnosisUpsert) SetConfidence(v float64) *DiagnosisUpsert {
	u.Set(diagnosis.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateConfidence() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *DiagnosisUpsert) AddConfidence(v float64) *DiagnosisUpsert {
	u.Add(diagnosis.FieldConfidence, v)
	return u
}

// ClearConfidence clears the value of the "confidence" field.
func (u *DiagnosisUpsert) ClearConfidence() *DiagnosisUpsert {
	u.SetNull(diagnosis.FieldConfidence)
	return u
}

// SetScores sets the "scores" field.
func (u *DiagnosisUpsert) SetScores(v map[string]int) *DiagnosisUpsert {
	u.Set(diagnosis.FieldScores, v)
	return u
}

// UpdateScores sets the "scores" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateScores() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldScores)
	return u
}

// ClearScores clears the value of the "scores" field.
func (u *DiagnosisUpsert) ClearScores() *DiagnosisUpsert {
	u.SetNull(diagnosis.FieldScores)
	return u
}

// SetCategoryScores sets the "category_scores" field.
func (u *DiagnosisUpsert) SetCategoryScores(v map[string]int) *DiagnosisUpsert {
	u.Set(diagnosis.FieldCategoryScores, v)
	return u
}

// UpdateCategoryScores sets the "category_scores" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateCategoryScores() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldCategoryScores)
	return u
}

// ClearCategoryScores clears the value of the "category_scores" field.
func (u *DiagnosisUpsert) ClearCategoryScores() *DiagnosisUpsert {
	u.SetNull(diagnosis.FieldCategoryScores)
	return u
}

// SetTotalScore sets the "total_score" field.
func (u *DiagnosisUpsert) SetTotalScore(v int) *DiagnosisUpsert {
	u.Set(diagnosis.FieldTotalScore, v)
	return u
}

// UpdateTotalScore sets the "total_score" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateTotalScore() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldTotalScore)
	return u
}

// AddTotalScore adds v to the "total_score" field.
func (u *DiagnosisUpsert) AddTotalScore(v int) *DiagnosisUpsert {
	u.Add(diagnosis.FieldTotalScore, v)
	return u
}

// ClearTotalScore clears the value of the "total_score" field.
func (u *DiagnosisUpsert) ClearTotalScore() *DiagnosisUpsert {
	u.SetNull(diagnosis.FieldTotalScore)
	return u
}

// SetVideoData sets the "video_data" field.
func (u *DiagnosisUpsert) SetVideoData(v []map[string]interface{}) *DiagnosisUpsert {
	u.Set(diagnosis.FieldVideoData, v)
	return u
}

// UpdateVideoData sets the "video_data" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateVideoData() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldVideoData)
	return u
}

// ClearVideoData clears the value of the "video_data" field.
func (u *DiagnosisUpsert) ClearVideoData() *DiagnosisUpsert {
	u.SetNull(diagnosis.FieldVideoData)
	return u
}

// SetProductData sets the "product_data" field.
func (u *DiagnosisUpsert) SetProductData(v []map[string]interface{}) *DiagnosisUpsert {
	u.Set(diagnosis.FieldProductData, v)
	return u
}

// UpdateProductData sets the "product_data" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateProductData() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldProductData)
	return u
}

// ClearProductData clears the value of the "product_data" field.
func (u *DiagnosisUpsert) ClearProductData() *DiagnosisUpsert {
	u.SetNull(diagnosis.FieldProductData)
	return u
}

// SetIsPublic sets the "is_public" field.
func (u *DiagnosisUpsert) SetIsPublic(v bool) *DiagnosisUpsert {
	u.Set(diagnosis.FieldIsPublic, v)
	return u
}

// UpdateIsPublic sets the "is_public" field to the value that was provided on create.
func (u *DiagnosisUpsert) UpdateIsPublic() *DiagnosisUpsert {
	u.SetExcluded(diagnosis.FieldIsPublic)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Diagnosis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(diagnosis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DiagnosisUpsertOne) UpdateNewValues() *DiagnosisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(diagnosis.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(diagnosis.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Diagnosis.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DiagnosisUpsertOne) Ignore() *DiagnosisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DiagnosisUpsertOne) DoNothing() *DiagnosisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DiagnosisCreate.OnConflict
// documentation for more info.
func (u *DiagnosisUpsertOne) Update(set func(*DiagnosisUpsert)) *DiagnosisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DiagnosisUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DiagnosisUpsertOne) SetUpdatedAt(v time.Time) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateUpdatedAt() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DiagnosisUpsertOne) SetDeletedAt(v time.Time) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateDeletedAt() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DiagnosisUpsertOne) ClearDeletedAt() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearDeletedAt()
	})
}

// SetMemberID sets the "member_id" field.
func (u *DiagnosisUpsertOne) SetMemberID(v uuid.UUID) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetMemberID(v)
	})
}

// UpdateMemberID sets the "member_id" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateMemberID() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateMemberID()
	})
}

// ClearMemberID clears the value of the "member_id" field.
func (u *DiagnosisUpsertOne) ClearMemberID() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearMemberID()
	})
}

// SetSource sets the "source" field.
func (u *DiagnosisUpsertOne) SetSource(v diagnosis.Source) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateSource() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateSource()
	})
}

// SetSkinType sets the "skin_type" field.
func (u *DiagnosisUpsertOne) SetSkinType(v string) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetSkinType(v)
	})
}

// UpdateSkinType sets the "skin_type" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateSkinType() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateSkinType()
	})
}

// SetImageKey sets the "image_key" field.
func (u *DiagnosisUpsertOne) SetImageKey(v string) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetImageKey(v)
	})
}

// UpdateImageKey sets the "image_key" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateImageKey() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateImageKey()
	})
}

// ClearImageKey clears the value of the "image_key" field.
func (u *DiagnosisUpsertOne) ClearImageKey() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearImageKey()
	})
}

// SetConfidence sets the "confidence" field.
func (u *DiagnosisUpsertOne) SetConfidence(v float64) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *DiagnosisUpsertOne) AddConfidence(v float64) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateConfidence() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *DiagnosisUpsertOne) ClearConfidence() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearConfidence()
	})
}

// SetScores sets the "scores" field.
func (u *DiagnosisUpsertOne) SetScores(v map[string]int) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetScores(v)
	})
}

// UpdateScores sets the "scores" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateScores() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateScores()
	})
}

// ClearScores clears the value of the "scores" field.
func (u *DiagnosisUpsertOne) ClearScores() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearScores()
	})
}

// SetCategoryScores sets the "category_scores" field.
func (u *DiagnosisUpsertOne) SetCategoryScores(v map[string]int) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetCategoryScores(v)
	})
}

// UpdateCategoryScores sets the "category_scores" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateCategoryScores() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateCategoryScores()
	})
}

// ClearCategoryScores clears the value of the "category_scores" field.
func (u *DiagnosisUpsertOne) ClearCategoryScores() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearCategoryScores()
	})
}

// SetTotalScore sets the "total_score" field.
func (u *DiagnosisUpsertOne) SetTotalScore(v int) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetTotalScore(v)
	})
}

// AddTotalScore adds v to the "total_score" field.
func (u *DiagnosisUpsertOne) AddTotalScore(v int) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.AddTotalScore(v)
	})
}

// UpdateTotalScore sets the "total_score" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateTotalScore() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateTotalScore()
	})
}

// ClearTotalScore clears the value of the "total_score" field.
func (u *DiagnosisUpsertOne) ClearTotalScore() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearTotalScore()
	})
}

// SetVideoData sets the "video_data" field.
func (u *DiagnosisUpsertOne) SetVideoData(v []map[string]interface{}) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetVideoData(v)
	})
}

// UpdateVideoData sets the "video_data" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateVideoData() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateVideoData()
	})
}

// ClearVideoData clears the value of the "video_data" field.
func (u *DiagnosisUpsertOne) ClearVideoData() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearVideoData()
	})
}

// SetProductData sets the "product_data" field.
func (u *DiagnosisUpsertOne) SetProductData(v []map[string]interface{}) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetProductData(v)
	})
}

// UpdateProductData sets the "product_data" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateProductData() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateProductData()
	})
}

// ClearProductData clears the value of the "product_data" field.
func (u *DiagnosisUpsertOne) ClearProductData() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearProductData()
	})
}

// SetIsPublic sets the "is_public" field.
func (u *DiagnosisUpsertOne) SetIsPublic(v bool) *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetIsPublic(v)
	})
}

// UpdateIsPublic sets the "is_public" field to the value that was provided on create.
func (u *DiagnosisUpsertOne) UpdateIsPublic() *DiagnosisUpsertOne {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateIsPublic()
	})
}

// Exec executes the query.
func (u *DiagnosisUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DiagnosisCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DiagnosisUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DiagnosisUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DiagnosisUpsertOne.ID is not supported by MySQL driver. Use DiagnosisUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DiagnosisUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DiagnosisCreateBulk is the builder for creating many Diagnosis entities in bulk.
type DiagnosisCreateBulk struct {
	config
	err      error
	builders []*DiagnosisCreate
	conflict []sql.ConflictOption
}

// Save creates the Diagnosis entities in the database.
func (_c *DiagnosisCreateBulk) Save(ctx context.Context) ([]*Diagnosis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Diagnosis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiagnosisMutation)
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
func (_c *DiagnosisCreateBulk) SaveX(ctx context.Context) []*Diagnosis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Diagnosis.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DiagnosisUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DiagnosisCreateBulk) OnConflict(opts ...sql.ConflictOption) *DiagnosisUpsertBulk {
	_c.conflict = opts
	return &DiagnosisUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Diagnosis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DiagnosisCreateBulk) OnConflictColumns(columns ...string) *DiagnosisUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DiagnosisUpsertBulk{
		create: _c,
	}
}

// DiagnosisUpsertBulk is the builder for "upsert"-ing
// a bulk of Diagnosis nodes.
type DiagnosisUpsertBulk struct {
	create *DiagnosisCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Diagnosis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(diagnosis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DiagnosisUpsertBulk) UpdateNewValues() *DiagnosisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(diagnosis.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(diagnosis.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Diagnosis.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DiagnosisUpsertBulk) Ignore() *DiagnosisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DiagnosisUpsertBulk) DoNothing() *DiagnosisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DiagnosisCreateBulk.OnConflict
// documentation for more info.
func (u *DiagnosisUpsertBulk) Update(set func(*DiagnosisUpsert)) *DiagnosisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DiagnosisUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DiagnosisUpsertBulk) SetUpdatedAt(v time.Time) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateUpdatedAt() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DiagnosisUpsertBulk) SetDeletedAt(v time.Time) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateDeletedAt() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DiagnosisUpsertBulk) ClearDeletedAt() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearDeletedAt()
	})
}

// SetMemberID sets the "member_id" field.
func (u *DiagnosisUpsertBulk) SetMemberID(v uuid.UUID) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetMemberID(v)
	})
}

// UpdateMemberID sets the "member_id" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateMemberID() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateMemberID()
	})
}

// ClearMemberID clears the value of the "member_id" field.
func (u *DiagnosisUpsertBulk) ClearMemberID() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearMemberID()
	})
}

// SetSource sets the "source" field.
func (u *DiagnosisUpsertBulk) SetSource(v diagnosis.Source) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateSource() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateSource()
	})
}

// SetSkinType sets the "skin_type" field.
func (u *DiagnosisUpsertBulk) SetSkinType(v string) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetSkinType(v)
	})
}

// UpdateSkinType sets the "skin_type" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateSkinType() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateSkinType()
	})
}

// SetImageKey sets the "image_key" field.
func (u *DiagnosisUpsertBulk) SetImageKey(v string) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetImageKey(v)
	})
}

// UpdateImageKey sets the "image_key" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateImageKey() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateImageKey()
	})
}

// ClearImageKey clears the value of the "image_key" field.
func (u *DiagnosisUpsertBulk) ClearImageKey() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearImageKey()
	})
}

// SetConfidence sets the "confidence" field.
func (u *DiagnosisUpsertBulk) SetConfidence(v float64) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *DiagnosisUpsertBulk) AddConfidence(v float64) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateConfidence() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *DiagnosisUpsertBulk) ClearConfidence() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearConfidence()
	})
}

// SetScores sets the "scores" field.
func (u *DiagnosisUpsertBulk) SetScores(v map[string]int) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetScores(v)
	})
}

// UpdateScores sets the "scores" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateScores() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateScores()
	})
}

// ClearScores clears the value of the "scores" field.
func (u *DiagnosisUpsertBulk) ClearScores() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearScores()
	})
}

// SetCategoryScores sets the "category_scores" field.
func (u *DiagnosisUpsertBulk) SetCategoryScores(v map[string]int) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetCategoryScores(v)
	})
}

// UpdateCategoryScores sets the "category_scores" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateCategoryScores() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateCategoryScores()
	})
}

// ClearCategoryScores clears the value of the "category_scores" field.
func (u *DiagnosisUpsertBulk) ClearCategoryScores() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearCategoryScores()
	})
}

// SetTotalScore sets the "total_score" field.
func (u *DiagnosisUpsertBulk) SetTotalScore(v int) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetTotalScore(v)
	})
}

// AddTotalScore adds v to the "total_score" field.
func (u *DiagnosisUpsertBulk) AddTotalScore(v int) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.AddTotalScore(v)
	})
}

// UpdateTotalScore sets the "total_score" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateTotalScore() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateTotalScore()
	})
}

// ClearTotalScore clears the value of the "total_score" field.
func (u *DiagnosisUpsertBulk) ClearTotalScore() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearTotalScore()
	})
}

// SetVideoData sets the "video_data" field.
func (u *DiagnosisUpsertBulk) SetVideoData(v []map[string]interface{}) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetVideoData(v)
	})
}

// UpdateVideoData sets the "video_data" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateVideoData() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateVideoData()
	})
}

// ClearVideoData clears the value of the "video_data" field.
func (u *DiagnosisUpsertBulk) ClearVideoData() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearVideoData()
	})
}

// SetProductData sets the "product_data" field.
func (u *DiagnosisUpsertBulk) SetProductData(v []map[string]interface{}) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetProductData(v)
	})
}

// UpdateProductData sets the "product_data" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateProductData() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateProductData()
	})
}

// ClearProductData clears the value of the "product_data" field.
func (u *DiagnosisUpsertBulk) ClearProductData() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.ClearProductData()
	})
}

// SetIsPublic sets the "is_public" field.
func (u *DiagnosisUpsertBulk) SetIsPublic(v bool) *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.SetIsPublic(v)
	})
}

// UpdateIsPublic sets the "is_public" field to the value that was provided on create.
func (u *DiagnosisUpsertBulk) UpdateIsPublic() *DiagnosisUpsertBulk {
	return u.Update(func(s *DiagnosisUpsert) {
		s.UpdateIsPublic()
	})
}

// Exec executes the query.
func (u *DiagnosisUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DiagnosisCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DiagnosisCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DiagnosisUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
