package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Performance is the derived overall summary, 1:1 with Student.
// It is always recomputed from scratch, never incrementally patched.
type Performance struct {
	ent.Schema
}

func (Performance) Fields() []ent.Field {
	return []ent.Field{
		field.String("roll_no").
			Unique().
			NotEmpty(),
		field.Text("topics_excellented").
			Default(""),
		field.String("outcome_of_course").
			Default(""),
		field.String("student_progress").
			Default(""),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Performance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("roll_no").Unique(),
	}
}
