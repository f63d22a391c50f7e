// Code generated by ent, DO NOT EDIT.

package diagnosis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hongik-triple/acnelog_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldDeletedAt, v))
}

// MemberID applies equality check predicate on the "member_id" field. It's identical to MemberIDEQ.
func MemberID(v uuid.UUID) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldMemberID, v))
}

// SkinType applies equality check predicate on the "skin_type" field. It's identical to SkinTypeEQ.
func SkinType(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldSkinType, v))
}

// ImageKey applies equality check predicate on the "image_key" field. It's identical to ImageKeyEQ.
func ImageKey(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldImageKey, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldConfidence, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v int) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldTotalScore, v))
}

// IsPublic applies equality check predicate on the "is_public" field. It's identical to IsPublicEQ.
func IsPublic(v bool) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldIsPublic, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotNull(FieldDeletedAt))
}

// MemberIDEQ applies the EQ predicate on the "member_id" field.
func MemberIDEQ(v uuid.UUID) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldMemberID, v))
}

// MemberIDNEQ applies the NEQ predicate on the "member_id" field.
func MemberIDNEQ(v uuid.UUID) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNEQ(FieldMemberID, v))
}

// MemberIDIn applies the In predicate on the "member_id" field.
func MemberIDIn(vs ...uuid.UUID) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIn(FieldMemberID, vs...))
}

// MemberIDNotIn applies the NotIn predicate on the "member_id" field.
func MemberIDNotIn(vs ...uuid.UUID) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotIn(FieldMemberID, vs...))
}

// MemberIDIsNil applies the IsNil predicate on the "member_id" field.
func MemberIDIsNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIsNull(FieldMemberID))
}

// MemberIDNotNil applies the NotNil predicate on the "member_id" field.
func MemberIDNotNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotNull(FieldMemberID))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v Source) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v Source) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...Source) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...Source) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotIn(FieldSource, vs...))
}

// SkinTypeEQ applies the EQ predicate on the "skin_type" field.
func SkinTypeEQ(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldSkinType, v))
}

// SkinTypeNEQ applies the NEQ predicate on the "skin_type" field.
func SkinTypeNEQ(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNEQ(FieldSkinType, v))
}

// SkinTypeIn applies the In predicate on the "skin_type" field.
func SkinTypeIn(vs ...string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIn(FieldSkinType, vs...))
}

// SkinTypeNotIn applies the NotIn predicate on the "skin_type" field.
func SkinTypeNotIn(vs ...string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotIn(FieldSkinType, vs...))
}

// SkinTypeGT applies the GT predicate on the "skin_type" field.
func SkinTypeGT(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGT(FieldSkinType, v))
}

// SkinTypeGTE applies the GTE predicate on the "skin_type" field.
func SkinTypeGTE(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGTE(FieldSkinType, v))
}

// SkinTypeLT applies the LT predicate on the "skin_type" field.
func SkinTypeLT(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLT(FieldSkinType, v))
}

// SkinTypeLTE applies the LTE predicate on the "skin_type" field.
func SkinTypeLTE(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLTE(FieldSkinType, v))
}

// SkinTypeContains applies the Contains predicate on the "skin_type" field.
func SkinTypeContains(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldContains(FieldSkinType, v))
}

// SkinTypeHasPrefix applies the HasPrefix predicate on the "skin_type" field.
func SkinTypeHasPrefix(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldHasPrefix(FieldSkinType, v))
}

// SkinTypeHasSuffix applies the HasSuffix predicate on the "skin_type" field.
func SkinTypeHasSuffix(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldHasSuffix(FieldSkinType, v))
}

// SkinTypeEqualFold applies the EqualFold predicate on the "skin_type" field.
func SkinTypeEqualFold(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEqualFold(FieldSkinType, v))
}

// SkinTypeContainsFold applies the ContainsFold predicate on the "skin_type" field.
func SkinTypeContainsFold(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldContainsFold(FieldSkinType, v))
}

// ImageKeyEQ applies the EQ predicate on the "image_key" field.
func ImageKeyEQ(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldImageKey, v))
}

// ImageKeyNEQ applies the NEQ predicate on the "image_key" field.
func ImageKeyNEQ(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNEQ(FieldImageKey, v))
}

// ImageKeyIn applies the In predicate on the "image_key" field.
func ImageKeyIn(vs ...string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIn(FieldImageKey, vs...))
}

// ImageKeyNotIn applies the NotIn predicate on the "image_key" field.
func ImageKeyNotIn(vs ...string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotIn(FieldImageKey, vs...))
}

// ImageKeyGT applies the GT predicate on the "image_key" field.
func ImageKeyGT(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGT(FieldImageKey, v))
}

// ImageKeyGTE applies the GTE predicate on the "image_key" field.
func ImageKeyGTE(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGTE(FieldImageKey, v))
}

// ImageKeyLT applies the LT predicate on the "image_key" field.
func ImageKeyLT(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLT(FieldImageKey, v))
}

// ImageKeyLTE applies the LTE predicate on the "image_key" field.
func ImageKeyLTE(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLTE(FieldImageKey, v))
}

// ImageKeyContains applies the Contains predicate on the "image_key" field.
func ImageKeyContains(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldContains(FieldImageKey, v))
}

// ImageKeyHasPrefix applies the HasPrefix predicate on the "image_key" field.
func ImageKeyHasPrefix(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldHasPrefix(FieldImageKey, v))
}

// ImageKeyHasSuffix applies the HasSuffix predicate on the "image_key" field.
func ImageKeyHasSuffix(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldHasSuffix(FieldImageKey, v))
}

// ImageKeyIsNil applies the IsNil predicate on the "image_key" field.
func ImageKeyIsNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIsNull(FieldImageKey))
}

// ImageKeyNotNil applies the NotNil predicate on the "image_key" field.
func ImageKeyNotNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotNull(FieldImageKey))
}

// ImageKeyEqualFold applies the EqualFold predicate on the "image_key" field.
func ImageKeyEqualFold(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEqualFold(FieldImageKey, v))
}

// ImageKeyContainsFold applies the ContainsFold predicate on the "image_key" field.
func ImageKeyContainsFold(v string) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldContainsFold(FieldImageKey, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotNull(FieldConfidence))
}

// ScoresIsNil applies the IsNil predicate on the "scores" field.
func ScoresIsNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIsNull(FieldScores))
}

// ScoresNotNil applies the NotNil predicate on the "scores" field.
func ScoresNotNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotNull(FieldScores))
}

// CategoryScoresIsNil applies the IsNil predicate on the "category_scores" field.
func CategoryScoresIsNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIsNull(FieldCategoryScores))
}

// CategoryScoresNotNil applies the NotNil predicate on the "category_scores" field.
func CategoryScoresNotNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotNull(FieldCategoryScores))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v int) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v int) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...int) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...int) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v int) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v int) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v int) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v int) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldLTE(FieldTotalScore, v))
}

// TotalScoreIsNil applies the IsNil predicate on the "total_score" field.
func TotalScoreIsNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIsNull(FieldTotalScore))
}

// TotalScoreNotNil applies the NotNil predicate on the "total_score" field.
func TotalScoreNotNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotNull(FieldTotalScore))
}

// VideoDataIsNil applies the IsNil predicate on the "video_data" field.
func VideoDataIsNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIsNull(FieldVideoData))
}

// VideoDataNotNil applies the NotNil predicate on the "video_data" field.
func VideoDataNotNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotNull(FieldVideoData))
}

// ProductDataIsNil applies the IsNil predicate on the "product_data" field.
func ProductDataIsNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldIsNull(FieldProductData))
}

// ProductDataNotNil applies the NotNil predicate on the "product_data" field.
func ProductDataNotNil() predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNotNull(FieldProductData))
}

// IsPublicEQ applies the EQ predicate on the "is_public" field.
func IsPublicEQ(v bool) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldEQ(FieldIsPublic, v))
}

// IsPublicNEQ applies the NEQ predicate on the "is_public" field.
func IsPublicNEQ(v bool) predicate.Diagnosis {
	return predicate.Diagnosis(sql.FieldNEQ(FieldIsPublic, v))
}

// HasMember applies the HasEdge predicate on the "member" edge.
func HasMember() predicate.Diagnosis {
	return predicate.Diagnosis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MemberTable, MemberColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMemberWith applies the HasEdge predicate on the "member" edge with a given conditions (other predicates).
func HasMemberWith(preds ...predicate.Member) predicate.Diagnosis {
	return predicate.Diagnosis(func(s *sql.Selector) {
		step := newMemberStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Diagnosis) predicate.Diagnosis {
	return predicate.Diagnosis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Diagnosis) predicate.Diagnosis {
	return predicate.Diagnosis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Diagnosis) predicate.Diagnosis {
	return predicate.Diagnosis(sql.NotPredicates(p))
}
