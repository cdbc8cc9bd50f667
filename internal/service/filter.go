package service

import (
	"strings"
	"time"

	"github.com/yunxiao-dev/teachboard/internal/domain"
)

// Criteria is the user-supplied filter input from the browse page. Date
// fields carry "2006-01-02" strings straight from the date inputs; text
// fields match as case-insensitive substrings. An empty field imposes no
// constraint.
type Criteria struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Title     string `json:"title"`
	Speaker   string `json:"speaker"`
}

// IsZero reports whether no criteria are set.
func (c Criteria) IsZero() bool {
	return c.StartDate == "" && c.EndDate == "" && c.Title == "" && c.Speaker == ""
}

const dateLayout = "2006-01-02"

// Filter returns the activities satisfying every supplied criterion, in the
// input order. It is a pure function: the input slice is never modified, and
// identical inputs always produce identical output.
//
// Date semantics are deliberately asymmetric: the start date compares
// against the start of its day, the end date against the end of its day
// (23:59:59.999), so an activity ending any time on the boundary date is
// still included. Dates are interpreted as UTC calendar days; a string that
// does not parse imposes no constraint.
func Filter(activities []domain.Activity, c Criteria) []domain.Activity {
	result := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if matches(a, c) {
			result = append(result, a)
		}
	}
	return result
}

func matches(a domain.Activity, c Criteria) bool {
	if from, ok := parseDay(c.StartDate); ok && a.StartTime.Before(from) {
		return false
	}
	if from, ok := parseDay(c.EndDate); ok {
		endOfDay := from.Add(24*time.Hour - time.Millisecond)
		if a.EndTime.After(endOfDay) {
			return false
		}
	}
	if !containsFold(a.Title, c.Title) {
		return false
	}
	if !containsFold(a.Speaker, c.Speaker) {
		return false
	}
	return true
}

func parseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
