package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/yunxiao-dev/teachboard/internal/domain"
)

// ActivityRepository implements domain.ActivityRepository using SQLite.
// Activity IDs are ULIDs assigned on insert, so they are opaque to callers
// and sort by creation time.
type ActivityRepository struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewActivityRepository creates a new SQLite-backed ActivityRepository.
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{
		db:      db.SqlDB,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (r *ActivityRepository) newID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), r.entropy).String()
}

func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	now := time.Now().UTC()
	id := r.newID()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO teaching_activities (id, title, start_time, end_time, location, speaker, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, activity.Title, activity.StartTime.UTC(), activity.EndTime.UTC(),
		activity.Location, activity.Speaker, activity.Description, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}

	activity.ID = id
	activity.CreatedAt = now
	activity.UpdatedAt = now
	return nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	a := &domain.Activity{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, start_time, end_time, location, speaker, description, created_at, updated_at
		 FROM teaching_activities WHERE id = ?`, id,
	).Scan(&a.ID, &a.Title, &a.StartTime, &a.EndTime, &a.Location, &a.Speaker, &a.Description, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query activity by id: %w", err)
	}
	return a, nil
}

// List returns all activities ordered by start time ascending.
func (r *ActivityRepository) List(ctx context.Context) ([]domain.Activity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, start_time, end_time, location, speaker, description, created_at, updated_at
		 FROM teaching_activities ORDER BY start_time ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.Title, &a.StartTime, &a.EndTime, &a.Location, &a.Speaker, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// Update rewrites all mutable fields of an existing activity and refreshes
// updated_at. The ID is never changed.
func (r *ActivityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE teaching_activities
		 SET title = ?, start_time = ?, end_time = ?, location = ?, speaker = ?, description = ?, updated_at = ?
		 WHERE id = ?`,
		activity.Title, activity.StartTime.UTC(), activity.EndTime.UTC(),
		activity.Location, activity.Speaker, activity.Description, now, activity.ID,
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	activity.UpdatedAt = now
	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM teaching_activities WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
