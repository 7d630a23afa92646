package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/db/ent/schema/utils"

	"github.com/google/uuid"
)

type CourtCase struct{ ent.Schema }

func (CourtCase) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "cases"},
	}
}

func (CourtCase) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("court_id", uuid.UUID{}),
		field.String("reference").NotEmpty(),
		field.String("state").
			Default(string(constants.CaseStateOpen)).
			Validate(utils.EnumValidator(constants.CaseStates...)),
		field.String("origin").NotEmpty(),
		field.Bool("test").Default(false),
		field.Time("closed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CourtCase) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY cases -> ONE court (FK: cases.court_id)
		edge.From("court", Court.Type).
			Ref("cases").
			Field("court_id").
			Required().
			Unique(),
		// ONE case -> MANY participants
		edge.To("participants", Participant.Type),
		// ONE case -> MANY bookings
		edge.To("bookings", Booking.Type),
	}
}

func (CourtCase) Indexes() []ent.Index {
	return []ent.Index{
		// one case per reference per court
		index.Fields("reference", "court_id").Unique(),
	}
}
