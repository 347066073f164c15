package app

import (
	"context"
	"fmt"

	"github.com/abhisek/studyflow/internal/fault"
	"github.com/abhisek/studyflow/internal/progression"
)

// Course configuration bounds.
const (
	MinHoursPerDay = 1
	MaxHoursPerDay = 8
	MinWeeks       = 2
	MaxWeeks       = 12
)

// ConfigureInput is the course configuration form.
type ConfigureInput struct {
	HoursPerDay int `json:"hours_per_day"`
	Weeks       int `json:"weeks"`
}

// Configure sets the study plan and begins the weekly loop at week 1.
// Reconfiguring after the course has started is rejected.
func (a *App) Configure(ctx context.Context, rollNo string, in ConfigureInput) (*StudentView, error) {
	st, err := a.load(ctx, rollNo)
	if err != nil {
		return nil, err
	}
	if err := a.requireReached(ctx, st, progression.StepConfigure); err != nil {
		return nil, err
	}
	if st.CourseConfigured {
		return nil, &fault.State{Msg: "course already configured"}
	}
	if in.HoursPerDay < MinHoursPerDay || in.HoursPerDay > MaxHoursPerDay {
		return nil, &fault.Validation{
			Field: "hours_per_day",
			Msg:   fmt.Sprintf("must be between %d and %d", MinHoursPerDay, MaxHoursPerDay),
		}
	}
	if in.Weeks < MinWeeks || in.Weeks > MaxWeeks {
		return nil, &fault.Validation{
			Field: "weeks",
			Msg:   fmt.Sprintf("must be between %d and %d", MinWeeks, MaxWeeks),
		}
	}

	if err := a.students.Configure(ctx, rollNo, in.HoursPerDay, in.Weeks); err != nil {
		return nil, &fault.Persistence{Op: "configure course", Err: err}
	}
	st.HoursPerDay, st.Weeks = in.HoursPerDay, in.Weeks
	st.CourseConfigured = true

	if _, err := a.steps.JumpTo(ctx, st, progression.StepWeekly); err != nil {
		return nil, err
	}
	return studentView(st), nil
}
