package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Student is the root record for one learner, keyed by roll number.
// Scores default to 0 and are written exactly once by their assessment.
type Student struct {
	ent.Schema
}

func (Student) Fields() []ent.Field {
	return []ent.Field{
		field.String("roll_no").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Enrollment id: <YY><DOMAIN_CODE><SEQ:3><BRANCH>, e.g. 25PY007CSE"),
		field.String("name").
			NotEmpty(),
		field.String("domain").
			NotEmpty().
			Comment("One of the fixed course catalog entries"),
		field.Int("hours_per_day").
			Default(3),
		field.Int("weeks").
			Default(4),
		field.Int("knowledge_scale").
			Default(2).
			Min(1).
			Max(4).
			Comment("Self-reported level: 1 beginner through 4 expert"),
		field.Int("current_week_no").
			Default(1).
			Comment("Monotone, bounded by weeks"),
		field.Int("current_step").
			Default(1).
			Min(1).
			Max(7).
			Comment("Persisted progression step (1 Background .. 7 Analysis)"),
		field.Int("cognitive_score").
			Default(0),
		field.Int("cognitive_iq").
			Default(0),
		field.Int("domain_score").
			Default(0),
		field.Int("domain_iq").
			Default(0),
		field.Int("viva_score").
			Default(0),
		field.Text("viva_response").
			Default(""),
		field.Bool("course_configured").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Student) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("roll_no").Unique(),
		index.Fields("domain"),
	}
}
