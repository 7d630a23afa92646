package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Invite struct{ ent.Schema }

func (Invite) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invites"},
	}
}

func (Invite) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("user_id", uuid.UUID{}).Unique(),
		field.String("email").NotEmpty(),
		field.String("first_name").Optional(),
		field.String("last_name").Optional(),
		field.Time("invited_at").Default(time.Now),
	}
}

func (Invite) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE invite -> ONE user (FK: invites.user_id)
		edge.From("user", User.Type).
			Ref("invites").
			Field("user_id").
			Required().
			Unique(),
	}
}
