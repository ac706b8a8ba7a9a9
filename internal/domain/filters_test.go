package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestFilters_SearchMatchesTitleAndDescription(t *testing.T) {
	now := time.Now()
	card := Card{Title: "Fix pagination bug", Description: "Broken on mobile"}

	assert.True(t, BoardFilters{Search: "pagination"}.Match(card, now))
	assert.True(t, BoardFilters{Search: "MOBILE"}.Match(card, now))
	assert.False(t, BoardFilters{Search: "unrelated"}.Match(card, now))
}

func TestFilters_AssignedTo(t *testing.T) {
	now := time.Now()
	card := Card{AssignedUserIDs: []string{"u1", "u2"}}

	assert.True(t, BoardFilters{AssignedTo: []string{"u2", "u9"}}.Match(card, now))
	assert.False(t, BoardFilters{AssignedTo: []string{"u9"}}.Match(card, now))
	assert.False(t, BoardFilters{AssignedTo: []string{"u1"}}.Match(Card{}, now))
}

func TestFilters_Labels(t *testing.T) {
	now := time.Now()
	card := Card{LabelIDs: []string{"l1"}}

	assert.True(t, BoardFilters{Labels: []string{"l1"}}.Match(card, now))
	assert.False(t, BoardFilters{Labels: []string{"l2"}}.Match(card, now))
}

func TestFilters_ComposeWithAnd(t *testing.T) {
	now := time.Now()
	card := Card{Title: "Review PR", LabelIDs: []string{"l1"}, AssignedUserIDs: []string{"u1"}}

	both := BoardFilters{Search: "review", Labels: []string{"l1"}}
	assert.True(t, both.Match(card, now))

	mixed := BoardFilters{Search: "review", Labels: []string{"l2"}}
	assert.False(t, mixed.Match(card, now))
}

func TestFilters_DueOverdue(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	f := BoardFilters{DueDate: DueOverdue}

	assert.True(t, f.Match(Card{DueDate: datePtr(time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC))}, now))
	assert.False(t, f.Match(Card{DueDate: datePtr(time.Date(2025, 1, 10, 23, 0, 0, 0, time.UTC))}, now))
	assert.False(t, f.Match(Card{}, now))
}

func TestFilters_DueToday(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.Local)
	f := BoardFilters{DueDate: DueToday}

	assert.True(t, f.Match(Card{DueDate: datePtr(time.Date(2025, 1, 10, 23, 30, 0, 0, time.Local))}, now))
	assert.False(t, f.Match(Card{DueDate: datePtr(time.Date(2025, 1, 11, 0, 30, 0, 0, time.Local))}, now))
}

func TestFilters_DueWeekInclusiveBounds(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.Local)
	f := BoardFilters{DueDate: DueWeek}

	assert.True(t, f.Match(Card{DueDate: datePtr(now)}, now))
	assert.True(t, f.Match(Card{DueDate: datePtr(now.AddDate(0, 0, 7))}, now))
	assert.False(t, f.Match(Card{DueDate: datePtr(now.AddDate(0, 0, 8))}, now))
	assert.False(t, f.Match(Card{DueDate: datePtr(now.AddDate(0, 0, -1))}, now))
}

func TestFilters_DueMonthInclusiveBounds(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.Local)
	f := BoardFilters{DueDate: DueMonth}

	assert.True(t, f.Match(Card{DueDate: datePtr(now.AddDate(0, 0, 30))}, now))
	assert.False(t, f.Match(Card{DueDate: datePtr(now.AddDate(0, 0, 31))}, now))
}

func TestFilters_DueNone(t *testing.T) {
	now := time.Now()
	f := BoardFilters{DueDate: DueNone}

	assert.True(t, f.Match(Card{}, now))
	assert.False(t, f.Match(Card{DueDate: datePtr(now)}, now))
}

func TestFilters_IsZero(t *testing.T) {
	assert.True(t, BoardFilters{}.IsZero())
	assert.False(t, BoardFilters{Search: "x"}.IsZero())
	assert.False(t, BoardFilters{DueDate: DueNone}.IsZero())
}
