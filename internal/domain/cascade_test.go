package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveColumn_CascadesToCards(t *testing.T) {
	s := twoColumnState()

	require.True(t, s.RemoveColumn("c1"))

	for _, c := range s.Cards {
		assert.NotEqual(t, "c1", c.ColumnID, "cards of the deleted column must be gone")
	}
	assert.Len(t, s.Cards, 1)
	assert.Equal(t, "k4", s.Cards[0].ID)
}

func TestRemoveColumn_RenumbersSiblings(t *testing.T) {
	s := twoColumnState()

	require.True(t, s.RemoveColumn("c1"))

	cols := s.BoardColumns("b1")
	require.Len(t, cols, 1)
	assert.Equal(t, "c2", cols[0].ID)
	assert.Equal(t, 0, cols[0].Position)
}

func TestRemoveColumn_Unknown(t *testing.T) {
	s := twoColumnState()
	assert.False(t, s.RemoveColumn("nope"))
	assert.Len(t, s.Columns, 2)
}

func TestRemoveBoard_CascadesToColumnsAndCards(t *testing.T) {
	s := twoColumnState()

	require.True(t, s.RemoveBoard("b1"))

	assert.Empty(t, s.Boards)
	assert.Empty(t, s.Columns)
	assert.Empty(t, s.Cards)
}

func TestRemoveBoard_ClearsCurrentSelection(t *testing.T) {
	s := twoColumnState()
	require.Equal(t, "b1", s.CurrentBoardID)

	require.True(t, s.RemoveBoard("b1"))

	assert.Empty(t, s.CurrentBoardID)
}

func TestRemoveBoard_LeavesOtherSelectionUntouched(t *testing.T) {
	s := twoColumnState()
	s.Boards = append(s.Boards, Board{ID: "b2", Title: "Other"})

	require.True(t, s.RemoveBoard("b2"))

	assert.Equal(t, "b1", s.CurrentBoardID)
	assert.Len(t, s.Columns, 2)
}

func TestRemoveCard_RenumbersColumn(t *testing.T) {
	s := twoColumnState()

	require.True(t, s.RemoveCard("k2"))

	assert.Equal(t, []string{"k1", "k3"}, columnOrder(t, s, "c1"))
}
