// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/hongik-triple/acnelog_backend/internal/repo/board"
	"github.com/hongik-triple/acnelog_backend/internal/repo/diagnosis"
	"github.com/hongik-triple/acnelog_backend/internal/repo/member"
	"github.com/hongik-triple/acnelog_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	boardMixin := schema.Board{}.Mixin()
	boardMixinFields0 := boardMixin[0].Fields()
	_ = boardMixinFields0
	boardMixinFields1 := boardMixin[1].Fields()
	_ = boardMixinFields1
	boardFields := schema.Board{}.Fields()
	_ = boardFields
	// boardDescCreatedAt is the schema descriptor for created_at field.
	boardDescCreatedAt := boardMixinFields1[0].Descriptor()
	// board.DefaultCreatedAt holds the default value on creation for the created_at field.
	board.DefaultCreatedAt = boardDescCreatedAt.Default.(func() time.Time)
	// boardDescUpdatedAt is the schema descriptor for updated_at field.
	boardDescUpdatedAt := boardMixinFields1[1].Descriptor()
	// board.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	board.DefaultUpdatedAt = boardDescUpdatedAt.Default.(func() time.Time)
	// board.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	board.UpdateDefaultUpdatedAt = boardDescUpdatedAt.UpdateDefault.(func() time.Time)
	// boardDescTitle is the schema descriptor for title field.
	boardDescTitle := boardFields[0].Descriptor()
	// board.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	board.TitleValidator = boardDescTitle.Validators[0].(func(string) error)
	// boardDescPinned is the schema descriptor for pinned field.
	boardDescPinned := boardFields[2].Descriptor()
	// board.DefaultPinned holds the default value on creation for the pinned field.
	board.DefaultPinned = boardDescPinned.Default.(bool)
	// boardDescID is the schema descriptor for id field.
	boardDescID := boardMixinFields0[0].Descriptor()
	// board.DefaultID holds the default value on creation for the id field.
	board.DefaultID = boardDescID.Default.(func() uuid.UUID)
	diagnosisMixin := schema.Diagnosis{}.Mixin()
	diagnosisMixinFields0 := diagnosisMixin[0].Fields()
	_ = diagnosisMixinFields0
	diagnosisMixinFields1 := diagnosisMixin[1].Fields()
	_ = diagnosisMixinFields1
	diagnosisFields := schema.Diagnosis{}.Fields()
	_ = diagnosisFields
	// diagnosisDescCreatedAt is the schema descriptor for created_at field.
	diagnosisDescCreatedAt := diagnosisMixinFields1[0].Descriptor()
	// diagnosis.DefaultCreatedAt holds the default value on creation for the created_at field.
	diagnosis.DefaultCreatedAt = diagnosisDescCreatedAt.Default.(func() time.Time)
	// diagnosisDescUpdatedAt is the schema descriptor for updated_at field.
	diagnosisDescUpdatedAt := diagnosisMixinFields1[1].Descriptor()
	// diagnosis.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	diagnosis.DefaultUpdatedAt = diagnosisDescUpdatedAt.Default.(func() time.Time)
	// diagnosis.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	diagnosis.UpdateDefaultUpdatedAt = diagnosisDescUpdatedAt.UpdateDefault.(func() time.Time)
	// diagnosisDescSkinType is the schema descriptor for skin_type field.
	diagnosisDescSkinType := diagnosisFields[2].Descriptor()
	// diagnosis.SkinTypeValidator is a validator for the "skin_type" field. It is called by the builders before save.
	diagnosis.SkinTypeValidator = diagnosisDescSkinType.Validators[0].(func(string) error)
	// diagnosisDescImageKey is the schema descriptor for image_key field.
	diagnosisDescImageKey := diagnosisFields[3].Descriptor()
	// diagnosis.ImageKeyValidator is a validator for the "image_key" field. It is called by the builders before save.
	diagnosis.ImageKeyValidator = diagnosisDescImageKey.Validators[0].(func(string) error)
	// diagnosisDescIsPublic is the schema descriptor for is_public field.
	diagnosisDescIsPublic := diagnosisFields[10].Descriptor()
	// diagnosis.DefaultIsPublic holds the default value on creation for the is_public field.
	diagnosis.DefaultIsPublic = diagnosisDescIsPublic.Default.(bool)
	// diagnosisDescID is the schema descriptor for id field.
	diagnosisDescID := diagnosisMixinFields0[0].Descriptor()
	// diagnosis.DefaultID holds the default value on creation for the id field.
	diagnosis.DefaultID = diagnosisDescID.Default.(func() uuid.UUID)
	memberMixin := schema.Member{}.Mixin()
	memberMixinFields0 := memberMixin[0].Fields()
	_ = memberMixinFields0
	memberMixinFields1 := memberMixin[1].Fields()
	_ = memberMixinFields1
	memberFields := schema.Member{}.Fields()
	_ = memberFields
	// memberDescCreatedAt is the schema descriptor for created_at field.
	memberDescCreatedAt := memberMixinFields1[0].Descriptor()
	// member.DefaultCreatedAt holds the default value on creation for the created_at field.
	member.DefaultCreatedAt = memberDescCreatedAt.Default.(func() time.Time)
	// memberDescUpdatedAt is the schema descriptor for updated_at field.
	memberDescUpdatedAt := memberMixinFields1[1].Descriptor()
	// member.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	member.DefaultUpdatedAt = memberDescUpdatedAt.Default.(func() time.Time)
	// member.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	member.UpdateDefaultUpdatedAt = memberDescUpdatedAt.UpdateDefault.(func() time.Time)
	// memberDescName is the schema descriptor for name field.
	memberDescName := memberFields[0].Descriptor()
	// member.NameValidator is a validator for the "name" field. It is called by the builders before save.
	member.NameValidator = memberDescName.Validators[0].(func(string) error)
	// memberDescEmail is the schema descriptor for email field.
	memberDescEmail := memberFields[1].Descriptor()
	// member.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	member.EmailValidator = memberDescEmail.Validators[0].(func(string) error)
	// memberDescProviderID is the schema descriptor for provider_id field.
	memberDescProviderID := memberFields[3].Descriptor()
	// member.ProviderIDValidator is a validator for the "provider_id" field. It is called by the builders before save.
	member.ProviderIDValidator = memberDescProviderID.Validators[0].(func(string) error)
	// memberDescProfileImageURL is the schema descriptor for profile_image_url field.
	memberDescProfileImageURL := memberFields[4].Descriptor()
	// member.ProfileImageURLValidator is a validator for the "profile_image_url" field. It is called by the builders before save.
	member.ProfileImageURLValidator = memberDescProfileImageURL.Validators[0].(func(string) error)
	// memberDescSkinType is the schema descriptor for skin_type field.
	memberDescSkinType := memberFields[5].Descriptor()
	// member.SkinTypeValidator is a validator for the "skin_type" field. It is called by the builders before save.
	member.SkinTypeValidator = memberDescSkinType.Validators[0].(func(string) error)
	// memberDescID is the schema descriptor for id field.
	memberDescID := memberMixinFields0[0].Descriptor()
	// member.DefaultID holds the default value on creation for the id field.
	member.DefaultID = memberDescID.Default.(func() uuid.UUID)
}
