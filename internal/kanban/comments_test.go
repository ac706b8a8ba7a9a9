package kanban

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npaulus/kanban-server/internal/domain"
)

func seedCardWithComment(t *testing.T, c *Container) (cardID, commentID string) {
	t.Helper()
	boardID := seedBoard(t, c, "B1")
	columnID := seedColumn(t, c, boardID, "C1")
	cardID = seedCard(t, c, columnID, "Task")
	require.True(t, c.AddComment(cardID, domain.CreateCommentRequest{Content: "Premier commentaire", UserID: "u1"}))
	card, ok := c.GetCardByID(cardID)
	require.True(t, ok)
	require.Len(t, card.Comments, 1)
	return cardID, card.Comments[0].ID
}

func TestAddComment(t *testing.T) {
	c, _ := newTestContainer(t)
	cardID, _ := seedCardWithComment(t, c)

	require.True(t, c.AddComment(cardID, domain.CreateCommentRequest{Content: "Deuxième", UserID: "u2"}))

	card, _ := c.GetCardByID(cardID)
	require.Len(t, card.Comments, 2)
	// Append order is preserved.
	assert.Equal(t, "Premier commentaire", card.Comments[0].Content)
	assert.Equal(t, "Deuxième", card.Comments[1].Content)
	assert.Equal(t, cardID, card.Comments[1].CardID)
	assert.Equal(t, testClock, card.Comments[1].CreatedAt)
}

func TestAddComment_EmptyContentFails(t *testing.T) {
	c, _ := newTestContainer(t)
	cardID, _ := seedCardWithComment(t, c)

	assert.False(t, c.AddComment(cardID, domain.CreateCommentRequest{}))
}

func TestAddComment_UnknownCardFails(t *testing.T) {
	c, _ := newTestContainer(t)

	assert.False(t, c.AddComment("missing", domain.CreateCommentRequest{Content: "x"}))
	assert.Contains(t, c.LastError(), "does not exist")
}

func TestUpdateComment(t *testing.T) {
	c, _ := newTestContainer(t)
	cardID, commentID := seedCardWithComment(t, c)

	require.True(t, c.UpdateComment(cardID, commentID, domain.UpdateCommentRequest{Content: "Corrigé"}))

	card, _ := c.GetCardByID(cardID)
	require.Len(t, card.Comments, 1)
	assert.Equal(t, "Corrigé", card.Comments[0].Content)
}

func TestUpdateComment_UnknownCommentFails(t *testing.T) {
	c, _ := newTestContainer(t)
	cardID, _ := seedCardWithComment(t, c)

	assert.False(t, c.UpdateComment(cardID, "missing", domain.UpdateCommentRequest{Content: "x"}))
}

func TestDeleteComment(t *testing.T) {
	c, _ := newTestContainer(t)
	cardID, commentID := seedCardWithComment(t, c)

	require.True(t, c.DeleteComment(cardID, commentID))

	card, _ := c.GetCardByID(cardID)
	assert.Empty(t, card.Comments)
}

func TestDeleteComment_UnknownCommentFails(t *testing.T) {
	c, _ := newTestContainer(t)
	cardID, _ := seedCardWithComment(t, c)

	assert.False(t, c.DeleteComment(cardID, "missing"))

	// The existing comment is untouched.
	card, _ := c.GetCardByID(cardID)
	assert.Len(t, card.Comments, 1)
}
