package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WeekQuiz is one week's quiz result for a student. One row per
// (roll_no, week_no); re-submitting overwrites, no history is kept.
type WeekQuiz struct {
	ent.Schema
}

func (WeekQuiz) Fields() []ent.Field {
	return []ent.Field{
		field.String("roll_no").
			NotEmpty(),
		field.Int("week_no").
			Min(1),
		field.Int("score").
			Default(0).
			Comment("Percentage 0-100"),
		field.Int("iq").
			Default(0),
		field.String("strong_areas").
			Default(""),
		field.String("weak_areas").
			Default(""),
		field.Text("analysis").
			Default(""),
		field.Time("taken_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (WeekQuiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("roll_no", "week_no").Unique(),
		index.Fields("roll_no"),
	}
}
