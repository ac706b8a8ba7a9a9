package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() *BoardState {
	due := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return &BoardState{
		Boards: []Board{
			{ID: "b1", Title: "Roadmap", MemberIDs: []string{"u1", "u2"}},
		},
		CurrentBoardID: "b1",
		Columns: []Column{
			{ID: "c2", BoardID: "b1", Title: "Doing", Position: 1},
			{ID: "c1", BoardID: "b1", Title: "Todo", Position: 0},
		},
		Cards: []Card{
			{ID: "k2", BoardID: "b1", ColumnID: "c1", Title: "Second", Position: 1},
			{ID: "k1", BoardID: "b1", ColumnID: "c1", Title: "First", Position: 0,
				LabelIDs: []string{"l1"}, AssignedUserIDs: []string{"u1"}, DueDate: &due},
			{ID: "k3", BoardID: "b1", ColumnID: "c2", Title: "Third", Position: 0},
		},
		Users: []User{
			{ID: "u1", Name: "Jean Dupont"},
			{ID: "u2", Name: "Marie Martin"},
		},
		Labels: []Label{
			{ID: "l1", Name: "Urgent", Color: "#ef4444"},
		},
	}
}

func TestNewState_Defaults(t *testing.T) {
	s := NewState()

	assert.NotNil(t, s.Boards)
	assert.NotNil(t, s.Columns)
	assert.NotNil(t, s.Cards)
	assert.NotNil(t, s.Users)
	assert.NotNil(t, s.Labels)
	assert.Empty(t, s.CurrentBoardID)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Error)
	assert.True(t, s.Filters.IsZero())
}

func TestClone_IsDeep(t *testing.T) {
	s := sampleState()
	s.Filters = BoardFilters{Labels: []string{"l1"}}

	clone := s.Clone()

	clone.Boards[0].Title = "Renamed"
	clone.Boards[0].MemberIDs[0] = "changed"
	clone.Cards[1].LabelIDs[0] = "changed"
	clone.Cards[1].AssignedUserIDs[0] = "changed"
	*clone.Cards[1].DueDate = clone.Cards[1].DueDate.Add(time.Hour)
	clone.Filters.Labels[0] = "changed"

	assert.Equal(t, "Roadmap", s.Boards[0].Title)
	assert.Equal(t, "u1", s.Boards[0].MemberIDs[0])
	assert.Equal(t, "l1", s.Cards[1].LabelIDs[0])
	assert.Equal(t, "u1", s.Cards[1].AssignedUserIDs[0])
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *s.Cards[1].DueDate)
	assert.Equal(t, "l1", s.Filters.Labels[0])
}

func TestLookups(t *testing.T) {
	s := sampleState()

	b, ok := s.BoardByID("b1")
	require.True(t, ok)
	assert.Equal(t, "Roadmap", b.Title)

	_, ok = s.BoardByID("missing")
	assert.False(t, ok)

	c, ok := s.ColumnByID("c2")
	require.True(t, ok)
	assert.Equal(t, "Doing", c.Title)

	card, ok := s.CardByID("k3")
	require.True(t, ok)
	assert.Equal(t, "Third", card.Title)

	_, ok = s.UserByID("u9")
	assert.False(t, ok)

	l, ok := s.LabelByID("l1")
	require.True(t, ok)
	assert.Equal(t, "Urgent", l.Name)
}

func TestBoardColumns_SortedByPosition(t *testing.T) {
	s := sampleState()

	cols := s.BoardColumns("b1")
	require.Len(t, cols, 2)
	assert.Equal(t, "c1", cols[0].ID)
	assert.Equal(t, "c2", cols[1].ID)

	assert.Empty(t, s.BoardColumns("missing"))
}

func TestColumnCards_SortedByPosition(t *testing.T) {
	s := sampleState()

	cards := s.ColumnCards("c1")
	require.Len(t, cards, 2)
	assert.Equal(t, "k1", cards[0].ID)
	assert.Equal(t, "k2", cards[1].ID)
}

func TestCurrentViews_EmptyWithoutSelection(t *testing.T) {
	s := sampleState()
	s.CurrentBoardID = ""

	assert.Empty(t, s.CurrentColumns())
	assert.Empty(t, s.CurrentCards())
}

func TestCurrentCards_ScopedToSelection(t *testing.T) {
	s := sampleState()
	s.Cards = append(s.Cards, Card{ID: "other", BoardID: "b2", ColumnID: "cx"})

	cards := s.CurrentCards()
	assert.Len(t, cards, 3)
	for _, c := range cards {
		assert.Equal(t, "b1", c.BoardID)
	}
}

func TestProjectBoard(t *testing.T) {
	s := sampleState()

	view, ok := s.ProjectBoard("b1")
	require.True(t, ok)
	assert.Equal(t, "Roadmap", view.Board.Title)
	require.Len(t, view.Columns, 2)
	require.Len(t, view.Cards, 3)
	// Grouped by column: c1's cards come before c2's.
	assert.Equal(t, []string{"k1", "k2", "k3"}, []string{view.Cards[0].ID, view.Cards[1].ID, view.Cards[2].ID})
	require.Len(t, view.Members, 2)

	_, ok = s.ProjectBoard("missing")
	assert.False(t, ok)
}

func TestResolve_DropsUnknownReferences(t *testing.T) {
	s := sampleState()

	labels := s.ResolveLabels([]string{"l1", "ghost"})
	require.Len(t, labels, 1)
	assert.Equal(t, "Urgent", labels[0].Name)

	users := s.ResolveUsers([]string{"ghost", "u2"})
	require.Len(t, users, 1)
	assert.Equal(t, "Marie Martin", users[0].Name)
}

func TestKnownIDs_SilentDropPreservesOrder(t *testing.T) {
	s := sampleState()

	assert.Equal(t, []string{"l1"}, s.KnownLabelIDs([]string{"ghost", "l1", "ghost2"}))
	assert.Equal(t, []string{"u2", "u1"}, s.KnownUserIDs([]string{"u2", "ghost", "u1"}))
	assert.Empty(t, s.KnownLabelIDs(nil))
}
