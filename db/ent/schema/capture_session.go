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

type CaptureSession struct{ ent.Schema }

func (CaptureSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "capture_sessions"},
	}
}

func (CaptureSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("booking_id", uuid.UUID{}),
		field.Time("started_at"),
		field.Time("finished_at").Optional().Nillable(),
		field.UUID("started_by", uuid.UUID{}).Optional().Nillable(),
		field.UUID("finished_by", uuid.UUID{}).Optional().Nillable(),
		field.String("status").NotEmpty(),
		field.String("origin").NotEmpty(),
		field.Time("created_at").Default(time.Now),
	}
}

func (CaptureSession) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY capture sessions -> ONE booking (FK: capture_sessions.booking_id)
		edge.From("booking", Booking.Type).
			Ref("capture_sessions").
			Field("booking_id").
			Required().
			Unique(),
		// ONE capture session -> MANY recordings
		edge.To("recordings", Recording.Type),
	}
}
