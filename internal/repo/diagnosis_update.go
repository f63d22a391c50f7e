// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hongik-triple/acnelog_backend/internal/repo/diagnosis"
	"github.com/hongik-triple/acnelog_backend/internal/repo/member"
	"github.com/hongik-triple/acnelog_backend/internal/repo/predicate"
)

// DiagnosisUpdate is the builder for updating Diagnosis entities.
type DiagnosisUpdate struct {
	config
	hooks    []Hook
	mutation *DiagnosisMutation
}

// Where appends a list predicates to the DiagnosisUpdate builder.
func (_u *DiagnosisUpdate) Where(ps ...predicate.Diagnosis) *DiagnosisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiagnosisUpdate) SetUpdatedAt(v time.Time) *DiagnosisUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DiagnosisUpdate) SetDeletedAt(v time.Time) *DiagnosisUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DiagnosisUpdate) SetNillableDeletedAt(v *time.Time) *DiagnosisUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DiagnosisUpdate) ClearDeletedAt() *DiagnosisUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *DiagnosisUpdate) SetMemberID(v uuid.UUID) *DiagnosisUpdate {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *DiagnosisUpdate) SetNillableMemberID(v *uuid.UUID) *DiagnosisUpdate {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// ClearMemberID clears the value of the "member_id" field.
func (_u *DiagnosisUpdate) ClearMemberID() *DiagnosisUpdate {
	_u.mutation.ClearMemberID()
	return _u
}

// SetSource sets the "source" field.
func (_u *DiagnosisUpdate) SetSource(v diagnosis.Source) *DiagnosisUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DiagnosisUpdate) SetNillableSource(v *diagnosis.Source) *DiagnosisUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSkinType sets the "skin_type" field.
func (_u *DiagnosisUpdate) SetSkinType(v string) *DiagnosisUpdate {
	_u.mutation.SetSkinType(v)
	return _u
}

// SetNillableSkinType sets the "skin_type" field if the given value is not nil.
func (_u *DiagnosisUpdate) SetNillableSkinType(v *string) *DiagnosisUpdate {
	if v != nil {
		_u.SetSkinType(*v)
	}
	return _u
}

// SetImageKey sets the "image_key" field.
func (_u *DiagnosisUpdate) SetImageKey(v string) *DiagnosisUpdate {
	_u.mutation.SetImageKey(v)
	return _u
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_u *DiagnosisUpdate) SetNillableImageKey(v *string) *DiagnosisUpdate {
	if v != nil {
		_u.SetImageKey(*v)
	}
	return _u
}

// ClearImageKey clears the value of the "image_key" field.
func (_u *DiagnosisUpdate) ClearImageKey() *DiagnosisUpdate {
	_u.mutation.ClearImageKey()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DiagnosisUpdate) SetConfidence(v float64) *DiagnosisUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DiagnosisUpdate) SetNillableConfidence(v *float64) *DiagnosisUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DiagnosisUpdate) AddConfidence(v float64) *DiagnosisUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *DiagnosisUpdate) ClearConfidence() *DiagnosisUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetScores sets the "scores" field.
func (_u *DiagnosisUpdate) SetScores(v map[string]int) *DiagnosisUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *DiagnosisUpdate) ClearScores() *DiagnosisUpdate {
	_u.mutation.ClearScores()
	return _u
}

// SetCategoryScores sets the "category_scores" field.
func (_u *DiagnosisUpdate) SetCategoryScores(v map[string]int) *DiagnosisUpdate {
	_u.mutation.SetCategoryScores(v)
	return _u
}

// ClearCategoryScores clears the value of the "category_scores" field.
func (_u *DiagnosisUpdate) ClearCategoryScores() *DiagnosisUpdate {
	_u.mutation.ClearCategoryScores()
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *DiagnosisUpdate) SetTotalScore(v int) *DiagnosisUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *DiagnosisUpdate) SetNillableTotalScore(v *int) *DiagnosisUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *DiagnosisUpdate) AddTotalScore(v int) *DiagnosisUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// ClearTotalScore clears the value of the "total_score" field.
func (_u *DiagnosisUpdate) ClearTotalScore() *DiagnosisUpdate {
	_u.mutation.ClearTotalScore()
	return _u
}

// SetVideoData sets the "video_data" field.
func (_u *DiagnosisUpdate) SetVideoData(v []map[string]interface{}) *DiagnosisUpdate {
	_u.mutation.SetVideoData(v)
	return _u
}

// AppendVideoData appends value to the "video_data" field.
func (_u *DiagnosisUpdate) AppendVideoData(v []map[string]interface{}) *DiagnosisUpdate {
	_u.mutation.AppendVideoData(v)
	return _u
}

// ClearVideoData clears the value of the "video_data" field.
func (_u *DiagnosisUpdate) ClearVideoData() *DiagnosisUpdate {
	_u.mutation.ClearVideoData()
	return _u
}

// SetProductData sets the "product_data" field.
func (_u *DiagnosisUpdate) SetProductData(v []map[string]interface{}) *DiagnosisUpdate {
	_u.mutation.SetProductData(v)
	return _u
}

// AppendProductData appends value to the "product_data" field.
func (_u *DiagnosisUpdate) AppendProductData(v []map[string]interface{}) *DiagnosisUpdate {
	_u.mutation.AppendProductData(v)
	return _u
}

// ClearProductData clears the value of the "product_data" field.
func (_u *DiagnosisUpdate) ClearProductData() *DiagnosisUpdate {
	_u.mutation.ClearProductData()
	return _u
}

// SetIsPublic sets the "is_public" field.
func (_u *DiagnosisUpdate) SetIsPublic(v bool) *DiagnosisUpdate {
	_u.mutation.SetIsPublic(v)
	return _u
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_u *DiagnosisUpdate) SetNillableIsPublic(v *bool) *DiagnosisUpdate {
	if v != nil {
		_u.SetIsPublic(*v)
	}
	return _u
}

// SetMember sets the "member" edge to the Member entity.
func (_u *DiagnosisUpdate) SetMember(v *Member) *DiagnosisUpdate {
	return _u.SetMemberID(v.ID)
}

// Mutation returns the DiagnosisMutation object of the builder.
func (_u *DiagnosisUpdate) Mutation() *DiagnosisMutation {
	return _u.mutation
}

// ClearMember clears the "member" edge to the Member entity.
func (_u *DiagnosisUpdate) ClearMember() *DiagnosisUpdate {
	_u.mutation.ClearMember()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosisUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiagnosisUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := diagnosis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := diagnosis.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "Diagnosis.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkinType(); ok {
		if err := diagnosis.SkinTypeValidator(v); err != nil {
			return &ValidationError{Name: "skin_type", err: fmt.Errorf(`repo: validator failed for field "Diagnosis.skin_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageKey(); ok {
		if err := diagnosis.ImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "image_key", err: fmt.Errorf(`repo: validator failed for field "Diagnosis.image_key": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosis.Table, diagnosis.Columns, sqlgraph.NewFieldSpec(diagnosis.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(diagnosis.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(diagnosis.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(diagnosis.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(diagnosis.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkinType(); ok {
		_spec.SetField(diagnosis.FieldSkinType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageKey(); ok {
		_spec.SetField(diagnosis.FieldImageKey, field.TypeString, value)
	}
	if _u.mutation.ImageKeyCleared() {
		_spec.ClearField(diagnosis.FieldImageKey, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(diagnosis.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(diagnosis.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(diagnosis.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(diagnosis.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(diagnosis.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.CategoryScores(); ok {
		_spec.SetField(diagnosis.FieldCategoryScores, field.TypeJSON, value)
	}
	if _u.mutation.CategoryScoresCleared() {
		_spec.ClearField(diagnosis.FieldCategoryScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(diagnosis.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(diagnosis.FieldTotalScore, field.TypeInt, value)
	}
	if _u.mutation.TotalScoreCleared() {
		_spec.ClearField(diagnosis.FieldTotalScore, field.TypeInt)
	}
	if value, ok := _u.mutation.VideoData(); ok {
		_spec.SetField(diagnosis.FieldVideoData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVideoData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosis.FieldVideoData, value)
		})
	}
	if _u.mutation.VideoDataCleared() {
		_spec.ClearField(diagnosis.FieldVideoData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProductData(); ok {
		_spec.SetField(diagnosis.FieldProductData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProductData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosis.FieldProductData, value)
		})
	}
	if _u.mutation.ProductDataCleared() {
		_spec.ClearField(diagnosis.FieldProductData, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsPublic(); ok {
		_spec.SetField(diagnosis.FieldIsPublic, field.TypeBool, value)
	}
	if _u.mutation.MemberCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemberIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosisUpdateOne is the builder for updating a single Diagnosis entity.
type DiagnosisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosisMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DiagnosisUpdateOne) SetUpdatedAt(v time.Time) *DiagnosisUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DiagnosisUpdateOne) SetDeletedAt(v time.Time) *DiagnosisUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DiagnosisUpdateOne) SetNillableDeletedAt(v *time.Time) *DiagnosisUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DiagnosisUpdateOne) ClearDeletedAt() *DiagnosisUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetMemberID sets the "member_id" field.
func (_u *DiagnosisUpdateOne) SetMemberID(v uuid.UUID) *DiagnosisUpdateOne {
	_u.mutation.SetMemberID(v)
	return _u
}

// SetNillableMemberID sets the "member_id" field if the given value is not nil.
func (_u *DiagnosisUpdateOne) SetNillableMemberID(v *uuid.UUID) *DiagnosisUpdateOne {
	if v != nil {
		_u.SetMemberID(*v)
	}
	return _u
}

// ClearMemberID clears the value of the "member_id" field.
func (_u *DiagnosisUpdateOne) ClearMemberID() *DiagnosisUpdateOne {
	_u.mutation.ClearMemberID()
	return _u
}

// SetSource sets the "source" field.
func (_u *DiagnosisUpdateOne) SetSource(v diagnosis.Source) *DiagnosisUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DiagnosisUpdateOne) SetNillableSource(v *diagnosis.Source) *DiagnosisUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSkinType sets the "skin_type" field.
func (_u *DiagnosisUpdateOne) SetSkinType(v string) *DiagnosisUpdateOne {
	_u.mutation.SetSkinType(v)
	return _u
}

// SetNillableSkinType sets the "skin_type" field if the given value is not nil.
func (_u *DiagnosisUpdateOne) SetNillableSkinType(v *string) *DiagnosisUpdateOne {
	if v != nil {
		_u.SetSkinType(*v)
	}
	return _u
}

// SetImageKey sets the "image_key" field.
func (_u *DiagnosisUpdateOne) SetImageKey(v string) *DiagnosisUpdateOne {
	_u.mutation.SetImageKey(v)
	return _u
}

// SetNillableImageKey sets the "image_key" field if the given value is not nil.
func (_u *DiagnosisUpdateOne) SetNillableImageKey(v *string) *DiagnosisUpdateOne {
	if v != nil {
		_u.SetImageKey(*v)
	}
	return _u
}

// ClearImageKey clears the value of the "image_key" field.
func (_u *DiagnosisUpdateOne) ClearImageKey() *DiagnosisUpdateOne {
	_u.mutation.ClearImageKey()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DiagnosisUpdateOne) SetConfidence(v float64) *DiagnosisUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DiagnosisUpdateOne) SetNillableConfidence(v *float64) *DiagnosisUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DiagnosisUpdateOne) AddConfidence(v float64) *DiagnosisUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *DiagnosisUpdateOne) ClearConfidence() *DiagnosisUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetScores sets the "scores" field.
func (_u *DiagnosisUpdateOne) SetScores(v map[string]int) *DiagnosisUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *DiagnosisUpdateOne) ClearScores() *DiagnosisUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// SetCategoryScores sets the "category_scores" field.
func (_u *DiagnosisUpdateOne) SetCategoryScores(v map[string]int) *DiagnosisUpdateOne {
	_u.mutation.SetCategoryScores(v)
	return _u
}

// ClearCategoryScores clears the value of the "category_scores" field.
func (_u *DiagnosisUpdateOne) ClearCategoryScores() *DiagnosisUpdateOne {
	_u.mutation.ClearCategoryScores()
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *DiagnosisUpdateOne) SetTotalScore(v int) *DiagnosisUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *DiagnosisUpdateOne) SetNillableTotalScore(v *int) *DiagnosisUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *DiagnosisUpdateOne) AddTotalScore(v int) *DiagnosisUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// ClearTotalScore clears the value of the "total_score" field.
func (_u *DiagnosisUpdateOne) ClearTotalScore() *DiagnosisUpdateOne {
	_u.mutation.ClearTotalScore()
	return _u
}

// SetVideoData sets the "video_data" field.
func (_u *DiagnosisUpdateOne) SetVideoData(v []map[string]interface{}) *DiagnosisUpdateOne {
	_u.mutation.SetVideoData(v)
	return _u
}

// AppendVideoData appends value to the "video_data" field.
func (_u *DiagnosisUpdateOne) AppendVideoData(v []map[string]interface{}) *DiagnosisUpdateOne {
	_u.mutation.AppendVideoData(v)
	return _u
}

// ClearVideoData clears the value of the "video_data" field.
func (_u *DiagnosisUpdateOne) ClearVideoData() *DiagnosisUpdateOne {
	_u.mutation.ClearVideoData()
	return _u
}

// SetProductData sets the "product_data" field.
func (_u *DiagnosisUpdateOne) SetProductData(v []map[string]interface{}) *DiagnosisUpdateOne {
	_u.mutation.SetProductData(v)
	return _u
}

// AppendProductData appends value to the "product_data" field.
func (_u *DiagnosisUpdateOne) AppendProductData(v []map[string]interface{}) *DiagnosisUpdateOne {
	_u.mutation.AppendProductData(v)
	return _u
}

// ClearProductData clears the value of the "product_data" field.
func (_u *DiagnosisUpdateOne) ClearProductData() *DiagnosisUpdateOne {
	_u.mutation.ClearProductData()
	return _u
}

// SetIsPublic sets the "is_public" field.
func (_u *DiagnosisUpdateOne) SetIsPublic(v bool) *DiagnosisUpdateOne {
	_u.mutation.SetIsPublic(v)
	return _u
}

// SetNillableIsPublic sets the "is_public" field if the given value is not nil.
func (_u *DiagnosisUpdateOne) SetNillableIsPublic(v *bool) *DiagnosisUpdateOne {
	if v != nil {
		_u.SetIsPublic(*v)
	}
	return _u
}

// SetMember sets the "member" edge to the Member entity.
func (_u *DiagnosisUpdateOne) SetMember(v *Member) *DiagnosisUpdateOne {
	return _u.SetMemberID(v.ID)
}

// Mutation returns the DiagnosisMutation object of the builder.
func (_u *DiagnosisUpdateOne) Mutation() *DiagnosisMutation {
	return _u.mutation
}

// ClearMember clears the "member" edge to the Member entity.
func (_u *DiagnosisUpdateOne) ClearMember() *DiagnosisUpdateOne {
	_u.mutation.ClearMember()
	return _u
}

// Where appends a list predicates to the DiagnosisUpdate builder.
func (_u *DiagnosisUpdateOne) Where(ps ...predicate.Diagnosis) *DiagnosisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosisUpdateOne) Select(field string, fields ...string) *DiagnosisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Diagnosis entity.
func (_u *DiagnosisUpdateOne) Save(ctx context.Context) (*Diagnosis, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosisUpdateOne) SaveX(ctx context.Context) *Diagnosis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DiagnosisUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := diagnosis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosisUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := diagnosis.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "Diagnosis.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkinType(); ok {
		if err := diagnosis.SkinTypeValidator(v); err != nil {
			return &ValidationError{Name: "skin_type", err: fmt.Errorf(`repo: validator failed for field "Diagnosis.skin_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ImageKey(); ok {
		if err := diagnosis.ImageKeyValidator(v); err != nil {
			return &ValidationError{Name: "image_key", err: fmt.Errorf(`repo: validator failed for field "Diagnosis.image_key": %w`, err)}
		}
	}
	return nil
}

func (_u *DiagnosisUpdateOne) sqlSave(ctx context.Context) (_node *Diagnosis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosis.Table, diagnosis.Columns, sqlgraph.NewFieldSpec(diagnosis.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Diagnosis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosis.FieldID)
		for _, f := range fields {
			if !diagnosis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != diagnosis.FieldID {
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
		_spec.SetField(diagnosis.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(diagnosis.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(diagnosis.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(diagnosis.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkinType(); ok {
		_spec.SetField(diagnosis.FieldSkinType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageKey(); ok {
		_spec.SetField(diagnosis.FieldImageKey, field.TypeString, value)
	}
	if _u.mutation.ImageKeyCleared() {
		_spec.ClearField(diagnosis.FieldImageKey, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(diagnosis.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(diagnosis.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(diagnosis.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(diagnosis.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(diagnosis.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.CategoryScores(); ok {
		_spec.SetField(diagnosis.FieldCategoryScores, field.TypeJSON, value)
	}
	if _u.mutation.CategoryScoresCleared() {
		_spec.ClearField(diagnosis.FieldCategoryScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(diagnosis.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(diagnosis.FieldTotalScore, field.TypeInt, value)
	}
	if _u.mutation.TotalScoreCleared() {
		_spec.ClearField(diagnosis.FieldTotalScore, field.TypeInt)
	}
	if value, ok := _u.mutation.VideoData(); ok {
		_spec.SetField(diagnosis.FieldVideoData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVideoData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosis.FieldVideoData, value)
		})
	}
	if _u.mutation.VideoDataCleared() {
		_spec.ClearField(diagnosis.FieldVideoData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProductData(); ok {
		_spec.SetField(diagnosis.FieldProductData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProductData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosis.FieldProductData, value)
		})
	}
	if _u.mutation.ProductDataCleared() {
		_spec.ClearField(diagnosis.FieldProductData, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsPublic(); ok {
		_spec.SetField(diagnosis.FieldIsPublic, field.TypeBool, value)
	}
	if _u.mutation.MemberCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemberIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Diagnosis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
