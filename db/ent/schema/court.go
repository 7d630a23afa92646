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

type Court struct{ ent.Schema }

func (Court) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "courts"},
	}
}

func (Court) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty().Unique(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Court) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("cases", CourtCase.Type),
	}
}
