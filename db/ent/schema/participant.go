package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/courtrec/archive-migrator/constants"
	"github.com/courtrec/archive-migrator/db/ent/schema/utils"

	"github.com/google/uuid"
)

type Participant struct{ ent.Schema }

func (Participant) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "participants"},
	}
}

func (Participant) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("case_id", uuid.UUID{}),
		field.String("participant_type").NotEmpty().
			Validate(utils.EnumValidator(constants.ParticipantTypes...)),
		field.String("first_name").Optional(),
		field.String("last_name").Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Participant) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY participants -> ONE case (FK: participants.case_id)
		edge.From("court_case", CourtCase.Type).
			Ref("participants").
			Field("case_id").
			Required().
			Unique(),
		// MANY participants <-> MANY bookings
		edge.From("bookings", Booking.Type).
			Ref("participants"),
	}
}
