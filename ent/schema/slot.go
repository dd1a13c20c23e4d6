package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Slot is a single named entry in the persistent key-value medium.
// The session layer owns exactly two slots: the serialized profile and
// the authentication token.
type Slot struct {
	ent.Schema
}

func (Slot) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Immutable().
			Comment("Slot name, e.g. prepnova_user"),
		field.Text("value").
			Comment("Raw stored string; the session layer decides the encoding"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}
