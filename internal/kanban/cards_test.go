package kanban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npaulus/kanban-server/internal/domain"
)

func seedReferenceData(c *Container) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Users = []domain.User{
		{ID: "u1", Name: "Jean Dupont"},
		{ID: "u2", Name: "Marie Martin"},
	}
	c.state.Labels = []domain.Label{
		{ID: "l1", Name: "Urgent", Color: "#ef4444"},
	}
}

func TestCreateCard_ThreeCardsGetPositionsZeroOneTwo(t *testing.T) {
	c, _ := newTestContainer(t)
	boardID := seedBoard(t, c, "B1")
	columnID := seedColumn(t, c, boardID, "C1")

	for range 3 {
		require.True(t, c.CreateCard(domain.CreateCardRequest{Title: "X", ColumnID: columnID}, "u1"))
	}

	cards := c.Snapshot().ColumnCards(columnID)
	require.Len(t, cards, 3)
	for i, card := range cards {
		assert.Equal(t, i, card.Position)
	}
}

func TestCreateCard_PositionsIndependentAcrossColumns(t *testing.T) {
	c, _ := newTestContainer(t)
	boardID := seedBoard(t, c, "B1")
	c1 := seedColumn(t, c, boardID, "C1")
	c2 := seedColumn(t, c, boardID, "C2")

	seedCard(t, c, c1, "a")
	seedCard(t, c, c1, "b")
	last := seedCard(t, c, c2, "c")

	card, ok := c.GetCardByID(last)
	require.True(t, ok)
	assert.Equal(t, 0, card.Position)
}

func TestCreateCard_DerivesBoardFromColumn(t *testing.T) {
	c, _ := newTestContainer(t)
	boardID := seedBoard(t, c, "B1")
	columnID := seedColumn(t, c, boardID, "C1")

	cardID := seedCard(t, c, columnID, "Task")

	card, ok := c.GetCardByID(cardID)
	require.True(t, ok)
	assert.Equal(t, boardID, card.BoardID)
	assert.Equal(t, columnID, card.ColumnID)
	assert.Equal(t, "user-1", card.CreatedBy)
}

func TestCreateCard_SilentlyDropsUnknownReferences(t *testing.T) {
	c, _ := newTestContainer(t)
	seedReferenceData(c)
	boardID := seedBoard(t, c, "B1")
	columnID := seedColumn(t, c, boardID, "C1")

	ok := c.CreateCard(domain.CreateCardRequest{
		Title:           "Task",
		ColumnID:        columnID,
		LabelIDs:        []string{"l1", "ghost-label"},
		AssignedUserIDs: []string{"ghost-user", "u2"},
	}, "u1")

	require.True(t, ok)
	snap := c.Snapshot()
	card := snap.Cards[0]
	assert.Equal(t, []string{"l1"}, card.LabelIDs)
	assert.Equal(t, []string{"u2"}, card.AssignedUserIDs)
	assert.Empty(t, c.LastError())
}

func TestCreateCard_UnknownColumnFails(t *testing.T) {
	c, _ := newTestContainer(t)

	assert.False(t, c.CreateCard(domain.CreateCardRequest{Title: "X", ColumnID: "missing"}, "u1"))
	assert.Contains(t, c.LastError(), "does not exist")
}

func TestUpdateCard_NilSlicesKeepReferences(t *testing.T) {
	c, _ := newTestContainer(t)
	seedReferenceData(c)
	boardID := seedBoard(t, c, "B1")
	columnID := seedColumn(t, c, boardID, "C1")
	require.True(t, c.CreateCard(domain.CreateCardRequest{
		Title: "Task", ColumnID: columnID, LabelIDs: []string{"l1"},
	}, "u1"))
	cardID := c.Snapshot().Cards[0].ID

	title := "Renamed"
	require.True(t, c.UpdateCard(cardID, domain.UpdateCardRequest{Title: &title}))

	card, ok := c.GetCardByID(cardID)
	require.True(t, ok)
	assert.Equal(t, "Renamed", card.Title)
	assert.Equal(t, []string{"l1"}, card.LabelIDs)
}

func TestUpdateCard_ReplacementListsDropUnknownReferences(t *testing.T) {
	c, _ := newTestContainer(t)
	seedReferenceData(c)
	boardID := seedBoard(t, c, "B1")
	columnID := seedColumn(t, c, boardID, "C1")
	cardID := seedCard(t, c, columnID, "Task")

	require.True(t, c.UpdateCard(cardID, domain.UpdateCardRequest{
		AssignedUserIDs: []string{"u1", "ghost"},
	}))

	card, _ := c.GetCardByID(cardID)
	assert.Equal(t, []string{"u1"}, card.AssignedUserIDs)
}

func TestUpdateCard_UnknownCardFails(t *testing.T) {
	c, _ := newTestContainer(t)

	title := "x"
	assert.False(t, c.UpdateCard("missing", domain.UpdateCardRequest{Title: &title}))
}

func TestDeleteCard_ClosesPositionGap(t *testing.T) {
	c, _ := newTestContainer(t)
	boardID := seedBoard(t, c, "B1")
	columnID := seedColumn(t, c, boardID, "C1")
	first := seedCard(t, c, columnID, "a")
	seedCard(t, c, columnID, "b")
	seedCard(t, c, columnID, "c")

	require.True(t, c.DeleteCard(first))

	cards := c.Snapshot().ColumnCards(columnID)
	require.Len(t, cards, 2)
	assert.Equal(t, "b", cards[0].Title)
	assert.Equal(t, 0, cards[0].Position)
	assert.Equal(t, 1, cards[1].Position)
}

func TestMoveCard_WithinColumnToEnd(t *testing.T) {
	c, _ := newTestContainer(t)
	boardID := seedBoard(t, c, "B1")
	columnID := seedColumn(t, c, boardID, "C1")
	a := seedCard(t, c, columnID, "a")
	seedCard(t, c, columnID, "b")
	seedCard(t, c, columnID, "c")

	require.True(t, c.MoveCard(domain.MoveCardRequest{
		CardID: a, TargetColumnID: columnID, TargetPosition: 2,
	}))

	cards := c.Snapshot().ColumnCards(columnID)
	require.Len(t, cards, 3)
	assert.Equal(t, "b", cards[0].Title)
	assert.Equal(t, "c", cards[1].Title)
	assert.Equal(t, "a", cards[2].Title)
	for i, card := range cards {
		assert.Equal(t, i, card.Position)
	}
}

func TestMoveCard_AcrossColumns(t *testing.T) {
	c, _ := newTestContainer(t)
	boardID := seedBoard(t, c, "B1")
	src := seedColumn(t, c, boardID, "Src")
	dst := seedColumn(t, c, boardID, "Dst")
	moved := seedCard(t, c, src, "moved")
	seedCard(t, c, src, "stays")
	seedCard(t, c, dst, "existing")

	require.True(t, c.MoveCard(domain.MoveCardRequest{
		CardID: moved, TargetColumnID: dst, TargetPosition: 0,
	}))

	snap := c.Snapshot()
	dstCards := snap.ColumnCards(dst)
	require.Len(t, dstCards, 2)
	assert.Equal(t, "moved", dstCards[0].Title)
	assert.Equal(t, "existing", dstCards[1].Title)

	// Source column closed its gap.
	srcCards := snap.ColumnCards(src)
	require.Len(t, srcCards, 1)
	assert.Equal(t, 0, srcCards[0].Position)

	movedCard, _ := c.GetCardByID(moved)
	assert.Equal(t, dst, movedCard.ColumnID)
}

func TestMoveCard_UnknownTargetColumnFails(t *testing.T) {
	c, _ := newTestContainer(t)
	boardID := seedBoard(t, c, "B1")
	columnID := seedColumn(t, c, boardID, "C1")
	cardID := seedCard(t, c, columnID, "a")

	ok := c.MoveCard(domain.MoveCardRequest{
		CardID: cardID, TargetColumnID: "missing", TargetPosition: 0,
	})

	assert.False(t, ok)
	card, _ := c.GetCardByID(cardID)
	assert.Equal(t, columnID, card.ColumnID)
}
