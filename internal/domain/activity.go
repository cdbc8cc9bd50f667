package domain

import (
	"context"
	"time"
)

// Activity is a scheduled teaching event shown on the public schedule.
type Activity struct {
	ID          string
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Speaker     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActivityRepository defines persistence operations for activities.
// List returns activities ordered by start time ascending, which is the
// display order everywhere in the application.
type ActivityRepository interface {
	Create(ctx context.Context, activity *Activity) error
	GetByID(ctx context.Context, id string) (*Activity, error)
	List(ctx context.Context) ([]Activity, error)
	Update(ctx context.Context, activity *Activity) error
	Delete(ctx context.Context, id string) error
}
