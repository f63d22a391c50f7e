package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Board is an operator-authored notice shown in the app.
type Board struct {
	ent.Schema
}

func (Board) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Board) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			MaxLen(255),

		field.Text("content"),

		field.Bool("pinned").
			Default(false),
	}
}
