package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Account is an email/password login. It only gates access; learner
// state hangs off the roll number, not the account.
type Account struct {
	ent.Schema
}

func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty(),
		field.String("password_hash").
			NotEmpty().
			Sensitive(),
		field.Int("total_logins").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_login").
			Optional().
			Nillable(),
	}
}

func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
