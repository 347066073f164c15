package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studyflow/ent"
	"github.com/abhisek/studyflow/ent/coursecontent"
)

// contentRepo implements ContentRepo using the ent client.
type contentRepo struct {
	client *ent.Client
}

func (r *contentRepo) Get(ctx context.Context, roll string, week int) (*CourseContent, error) {
	c, err := r.client.CourseContent.Query().
		Where(coursecontent.RollNo(roll), coursecontent.WeekNo(week)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query course content %s/%d: %w", roll, week, err)
	}
	return &CourseContent{
		RollNo:    c.RollNo,
		WeekNo:    c.WeekNo,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
	}, nil
}

func (r *contentRepo) Save(ctx context.Context, roll string, week int, body string) error {
	err := r.client.CourseContent.Create().
		SetRollNo(roll).
		SetWeekNo(week).
		SetBody(body).
		OnConflictColumns(coursecontent.FieldRollNo, coursecontent.FieldWeekNo).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save course content %s/%d: %w", roll, week, err)
	}
	return nil
}
