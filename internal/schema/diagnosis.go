package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Diagnosis is one persisted diagnosis record, produced either by the
// questionnaire scoring engine or by the image inference pipeline.
type Diagnosis struct {
	ent.Schema
}

func (Diagnosis) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Diagnosis) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("member_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("NULL for anonymous submissions"),

		field.Enum("source").
			Values("survey", "image"),

		field.String("skin_type").
			MaxLen(32).
			Comment("Classification code, stored as a bare string"),

		field.String("image_key").
			Optional().
			Nillable().
			MaxLen(512).
			Comment("Object storage key, image-sourced records only"),

		field.Float("confidence").
			Optional().
			Nillable(),

		field.JSON("scores", map[string]int{}).
			Optional().
			Comment("Per-question scores, survey-sourced records only"),

		field.JSON("category_scores", map[string]int{}).
			Optional(),

		field.Int("total_score").
			Optional().
			Nillable(),

		field.JSON("video_data", []map[string]any{}).
			Optional().
			Comment("Enrichment snapshot captured at diagnosis time"),

		field.JSON("product_data", []map[string]any{}).
			Optional(),

		field.Bool("is_public").
			Default(true),
	}
}

func (Diagnosis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("member", Member.Type).
			Ref("diagnoses").
			Unique().
			Field("member_id"),
	}
}

func (Diagnosis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("member_id", "created_at"),
		index.Fields("is_public", "skin_type"),
	}
}
