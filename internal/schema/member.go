package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

type Member struct {
	ent.Schema
}

func (Member) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Member) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(100),

		field.String("email").
			Unique().
			MaxLen(255),

		field.Enum("provider").
			Values("kakao", "google").
			Comment("OAuth provider the account was registered through"),

		field.String("provider_id").
			MaxLen(255).
			Comment("Subject identifier issued by the OAuth provider"),

		field.String("profile_image_url").
			Optional().
			Nillable().
			MaxLen(2048),

		field.String("skin_type").
			Optional().
			Nillable().
			MaxLen(32).
			Comment("Latest survey classification, last write wins"),

		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

func (Member) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("diagnoses", Diagnosis.Type),
	}
}
