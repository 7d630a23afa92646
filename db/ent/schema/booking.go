package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Booking struct{ ent.Schema }

func (Booking) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "bookings"},
	}
}

func (Booking) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("case_id", uuid.UUID{}),
		field.Time("scheduled_for").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Booking) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY bookings -> ONE case (FK: bookings.case_id)
		edge.From("court_case", CourtCase.Type).
			Ref("bookings").
			Field("case_id").
			Required().
			Unique(),
		// MANY bookings <-> MANY participants
		edge.To("participants", Participant.Type),
		// ONE booking -> MANY capture sessions
		edge.To("capture_sessions", CaptureSession.Type),
		// ONE booking -> MANY shares
		edge.To("shares", ShareBooking.Type),
	}
}
