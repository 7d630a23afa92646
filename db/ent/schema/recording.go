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

type Recording struct{ ent.Schema }

func (Recording) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "recordings"},
	}
}

func (Recording) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("capture_session_id", uuid.UUID{}),
		field.UUID("parent_recording_id", uuid.UUID{}).Optional().Nillable(),
		field.Int("version").Positive(),
		field.String("filename").Optional(),
		// whole seconds
		field.Int("duration").NonNegative().Default(0),
		field.Time("created_at").Default(time.Now),
	}
}

func (Recording) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY recordings -> ONE capture session (FK: recordings.capture_session_id)
		edge.From("capture_session", CaptureSession.Type).
			Ref("recordings").
			Field("capture_session_id").
			Required().
			Unique(),
		// version chain: MANY child recordings -> ONE parent recording
		edge.To("children", Recording.Type).
			From("parent").
			Field("parent_recording_id").
			Unique(),
	}
}

func (Recording) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("capture_session_id", "version"),
	}
}
