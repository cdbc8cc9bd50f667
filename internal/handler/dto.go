package handler

import (
	"time"

	"github.com/yunxiao-dev/teachboard/internal/domain"
)

// ActivityDTO is the JSON representation of an activity.
type ActivityDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
	Speaker     string `json:"speaker"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func toActivityDTO(a *domain.Activity) ActivityDTO {
	return ActivityDTO{
		ID:          a.ID,
		Title:       a.Title,
		StartTime:   a.StartTime.UTC().Format(time.RFC3339),
		EndTime:     a.EndTime.UTC().Format(time.RFC3339),
		Location:    a.Location,
		Speaker:     a.Speaker,
		Description: a.Description,
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toActivityDTOs(activities []domain.Activity) []ActivityDTO {
	dtos := make([]ActivityDTO, len(activities))
	for i := range activities {
		dtos[i] = toActivityDTO(&activities[i])
	}
	return dtos
}

// activityRequest is the JSON body accepted by the create and update
// endpoints. Times are RFC 3339.
type activityRequest struct {
	Title       string    `json:"title"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Location    string    `json:"location"`
	Speaker     string    `json:"speaker"`
	Description string    `json:"description"`
}

func (req *activityRequest) toActivity() *domain.Activity {
	return &domain.Activity{
		Title:       req.Title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Speaker:     req.Speaker,
		Description: req.Description,
	}
}
