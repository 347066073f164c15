package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CourseContent caches one week's generated study material for a student.
// Generated lazily on first visit and reused on every later visit.
type CourseContent struct {
	ent.Schema
}

func (CourseContent) Fields() []ent.Field {
	return []ent.Field{
		field.String("roll_no").
			NotEmpty(),
		field.Int("week_no").
			Min(1),
		field.Text("body"),
		field.Time("created_at").
			Default(time.Now),
	}
}

func (CourseContent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("roll_no", "week_no").Unique(),
		index.Fields("roll_no"),
	}
}
