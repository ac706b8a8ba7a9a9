package domain

import (
	"slices"
	"strings"
	"time"
)

// DueDateFilter buckets cards by how close their due date is.
type DueDateFilter string

// Due date buckets.
const (
	DueOverdue DueDateFilter = "overdue" // due strictly before now
	DueToday   DueDateFilter = "today"   // due on the current calendar day
	DueWeek    DueDateFilter = "week"    // due within the next 7 days, today included
	DueMonth   DueDateFilter = "month"   // due within the next 30 days, today included
	DueNone    DueDateFilter = "none"    // no due date set
)

// BoardFilters is the active filter set applied to the working card
// collection. Individual filters compose with logical AND; zero values mean
// "not filtering on this dimension".
type BoardFilters struct {
	Search     string        `json:"search,omitempty"`
	AssignedTo []string      `json:"assignedTo,omitempty"`
	Labels     []string      `json:"labels,omitempty"`
	DueDate    DueDateFilter `json:"dueDate,omitempty"`
}

// Clone returns a deep copy of the filter set.
func (f BoardFilters) Clone() BoardFilters {
	f.AssignedTo = slices.Clone(f.AssignedTo)
	f.Labels = slices.Clone(f.Labels)
	return f
}

// IsZero reports whether no filter is active.
func (f BoardFilters) IsZero() bool {
	return f.Search == "" && len(f.AssignedTo) == 0 && len(f.Labels) == 0 && f.DueDate == ""
}

// Match reports whether the card passes every active filter, evaluated
// against the given current time.
func (f BoardFilters) Match(card Card, now time.Time) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(card.Title), q) &&
			!strings.Contains(strings.ToLower(card.Description), q) {
			return false
		}
	}

	if len(f.AssignedTo) > 0 && !intersects(card.AssignedUserIDs, f.AssignedTo) {
		return false
	}

	if len(f.Labels) > 0 && !intersects(card.LabelIDs, f.Labels) {
		return false
	}

	if f.DueDate != "" && !matchDueDate(card.DueDate, f.DueDate, now) {
		return false
	}

	return true
}

func intersects(have, want []string) bool {
	for _, h := range have {
		if slices.Contains(want, h) {
			return true
		}
	}
	return false
}

func matchDueDate(due *time.Time, bucket DueDateFilter, now time.Time) bool {
	if due == nil {
		return bucket == DueNone
	}

	switch bucket {
	case DueOverdue:
		return due.Before(now)
	case DueToday:
		return calendarDaysUntil(now, *due) == 0
	case DueWeek:
		d := calendarDaysUntil(now, *due)
		return d >= 0 && d <= 7
	case DueMonth:
		d := calendarDaysUntil(now, *due)
		return d >= 0 && d <= 30
	case DueNone:
		return false
	default:
		return true
	}
}

// calendarDaysUntil counts whole calendar days from now's local date to the
// due date's local date. Negative when the due date's day is in the past.
func calendarDaysUntil(now, due time.Time) int {
	ny, nm, nd := now.Local().Date()
	dy, dm, dd := due.Local().Date()
	from := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	to := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
