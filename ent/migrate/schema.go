// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "total_logins", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_login", Type: field.TypeTime, Nullable: true},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "account_email",
				Unique:  true,
				Columns: []*schema.Column{AccountsColumns[1]},
			},
		},
	}
	// CourseContentsColumns holds the columns for the "course_contents" table.
	CourseContentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "roll_no", Type: field.TypeString},
		{Name: "week_no", Type: field.TypeInt},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CourseContentsTable holds the schema information for the "course_contents" table.
	CourseContentsTable = &schema.Table{
		Name:       "course_contents",
		Columns:    CourseContentsColumns,
		PrimaryKey: []*schema.Column{CourseContentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "coursecontent_roll_no_week_no",
				Unique:  true,
				Columns: []*schema.Column{CourseContentsColumns[1], CourseContentsColumns[2]},
			},
			{
				Name:    "coursecontent_roll_no",
				Unique:  false,
				Columns: []*schema.Column{CourseContentsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
		},
	}
	// PerformancesColumns holds the columns for the "performances" table.
	PerformancesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "roll_no", Type: field.TypeString, Unique: true},
		{Name: "topics_excellented", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "outcome_of_course", Type: field.TypeString, Default: ""},
		{Name: "student_progress", Type: field.TypeString, Default: ""},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// PerformancesTable holds the schema information for the "performances" table.
	PerformancesTable = &schema.Table{
		Name:       "performances",
		Columns:    PerformancesColumns,
		PrimaryKey: []*schema.Column{PerformancesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "performance_roll_no",
				Unique:  true,
				Columns: []*schema.Column{PerformancesColumns[1]},
			},
		},
	}
	// StudentsColumns holds the columns for the "students" table.
	StudentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "roll_no", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString},
		{Name: "hours_per_day", Type: field.TypeInt, Default: 3},
		{Name: "weeks", Type: field.TypeInt, Default: 4},
		{Name: "knowledge_scale", Type: field.TypeInt, Default: 2},
		{Name: "current_week_no", Type: field.TypeInt, Default: 1},
		{Name: "current_step", Type: field.TypeInt, Default: 1},
		{Name: "cognitive_score", Type: field.TypeInt, Default: 0},
		{Name: "cognitive_iq", Type: field.TypeInt, Default: 0},
		{Name: "domain_score", Type: field.TypeInt, Default: 0},
		{Name: "domain_iq", Type: field.TypeInt, Default: 0},
		{Name: "viva_score", Type: field.TypeInt, Default: 0},
		{Name: "viva_response", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "course_configured", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudentsTable holds the schema information for the "students" table.
	StudentsTable = &schema.Table{
		Name:       "students",
		Columns:    StudentsColumns,
		PrimaryKey: []*schema.Column{StudentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "student_roll_no",
				Unique:  true,
				Columns: []*schema.Column{StudentsColumns[1]},
			},
			{
				Name:    "student_domain",
				Unique:  false,
				Columns: []*schema.Column{StudentsColumns[3]},
			},
		},
	}
	// WeekQuizsColumns holds the columns for the "week_quizs" table.
	WeekQuizsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "roll_no", Type: field.TypeString},
		{Name: "week_no", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "iq", Type: field.TypeInt, Default: 0},
		{Name: "strong_areas", Type: field.TypeString, Default: ""},
		{Name: "weak_areas", Type: field.TypeString, Default: ""},
		{Name: "analysis", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "taken_at", Type: field.TypeTime},
	}
	// WeekQuizsTable holds the schema information for the "week_quizs" table.
	WeekQuizsTable = &schema.Table{
		Name:       "week_quizs",
		Columns:    WeekQuizsColumns,
		PrimaryKey: []*schema.Column{WeekQuizsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "weekquiz_roll_no_week_no",
				Unique:  true,
				Columns: []*schema.Column{WeekQuizsColumns[1], WeekQuizsColumns[2]},
			},
			{
				Name:    "weekquiz_roll_no",
				Unique:  false,
				Columns: []*schema.Column{WeekQuizsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		CourseContentsTable,
		LlmRequestEventsTable,
		PerformancesTable,
		StudentsTable,
		WeekQuizsTable,
	}
)

func init() {
}
