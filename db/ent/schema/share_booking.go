package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ShareBooking struct{ ent.Schema }

func (ShareBooking) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "share_bookings"},
	}
}

func (ShareBooking) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("booking_id", uuid.UUID{}),
		field.UUID("shared_with_user_id", uuid.UUID{}),
		field.UUID("shared_by_user_id", uuid.UUID{}),
		field.Time("created_at").Default(time.Now),
	}
}

func (ShareBooking) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY shares -> ONE booking (FK: share_bookings.booking_id)
		edge.From("booking", Booking.Type).
			Ref("shares").
			Field("booking_id").
			Required().
			Unique(),
		// MANY shares -> ONE recipient user
		edge.From("shared_with", User.Type).
			Ref("shares_received").
			Field("shared_with_user_id").
			Required().
			Unique(),
	}
}

func (ShareBooking) Indexes() []ent.Index {
	return []ent.Index{
		// at most one share per booking and recipient
		index.Fields("booking_id", "shared_with_user_id").Unique(),
	}
}
