package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/yunxiao-dev/teachboard/internal/domain"
)

// ActivityService handles activity CRUD and validation. Validation runs
// before any repository call, so an invalid write never reaches the store.
type ActivityService struct {
	activities domain.ActivityRepository
}

// NewActivityService creates a new ActivityService.
func NewActivityService(activities domain.ActivityRepository) *ActivityService {
	return &ActivityService{activities: activities}
}

// List returns all activities ordered by start time ascending.
func (s *ActivityService) List(ctx context.Context) ([]domain.Activity, error) {
	return s.activities.List(ctx)
}

// GetByID returns an activity by ID.
func (s *ActivityService) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

// Create validates and persists a new activity. The repository assigns the ID.
func (s *ActivityService) Create(ctx context.Context, activity *domain.Activity) error {
	if err := validateActivity(activity); err != nil {
		return err
	}

	if err := s.activities.Create(ctx, activity); err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

// Update validates and persists changes to an existing activity.
func (s *ActivityService) Update(ctx context.Context, activity *domain.Activity) error {
	if activity.ID == "" {
		return fmt.Errorf("%w: missing activity id", domain.ErrInvalidInput)
	}
	if err := validateActivity(activity); err != nil {
		return err
	}

	if err := s.activities.Update(ctx, activity); err != nil {
		return err
	}
	return nil
}

// Delete removes an activity by ID.
func (s *ActivityService) Delete(ctx context.Context, id string) error {
	return s.activities.Delete(ctx, id)
}

func validateActivity(a *domain.Activity) error {
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(a.Location) == "" {
		return fmt.Errorf("%w: location is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(a.Speaker) == "" {
		return fmt.Errorf("%w: speaker is required", domain.ErrInvalidInput)
	}
	if a.StartTime.IsZero() || a.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end time are required", domain.ErrInvalidInput)
	}
	if !a.EndTime.After(a.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", domain.ErrInvalidInput)
	}
	return nil
}
