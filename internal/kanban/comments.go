package kanban

import (
	"github.com/npaulus/kanban-server/internal/domain"
	"github.com/npaulus/kanban-server/internal/errors"
	"github.com/npaulus/kanban-server/internal/id"
)

// AddComment appends a comment to a card's discussion thread.
func (c *Container) AddComment(cardID string, req domain.CreateCommentRequest) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validate.Validate(req); err != nil {
		return c.fail(err)
	}
	if _, ok := c.state.CardByID(cardID); !ok {
		return c.fail(errors.NotFoundf("card %s does not exist", cardID))
	}

	now := c.now()
	next := c.state.Clone()
	for i := range next.Cards {
		if next.Cards[i].ID != cardID {
			continue
		}
		next.Cards[i].Comments = append(next.Cards[i].Comments, domain.Comment{
			ID:        id.MustGenerate(id.PrefixComment),
			CardID:    cardID,
			UserID:    req.UserID,
			Content:   req.Content,
			CreatedAt: now,
			UpdatedAt: now,
		})
		next.Cards[i].UpdatedAt = now
		break
	}
	return c.commit(next)
}

// UpdateComment replaces the content of an existing comment.
func (c *Container) UpdateComment(cardID, commentID string, req domain.UpdateCommentRequest) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validate.Validate(req); err != nil {
		return c.fail(err)
	}

	next := c.state.Clone()
	card := findCard(next, cardID)
	if card == nil {
		return c.fail(errors.NotFoundf("card %s does not exist", cardID))
	}
	for i := range card.Comments {
		if card.Comments[i].ID != commentID {
			continue
		}
		card.Comments[i].Content = req.Content
		card.Comments[i].UpdatedAt = c.now()
		return c.commit(next)
	}
	return c.fail(errors.NotFoundf("comment %s does not exist on card %s", commentID, cardID))
}

// DeleteComment removes a comment from a card's thread.
func (c *Container) DeleteComment(cardID, commentID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Clone()
	card := findCard(next, cardID)
	if card == nil {
		return c.fail(errors.NotFoundf("card %s does not exist", cardID))
	}
	for i := range card.Comments {
		if card.Comments[i].ID != commentID {
			continue
		}
		card.Comments = append(card.Comments[:i], card.Comments[i+1:]...)
		card.UpdatedAt = c.now()
		return c.commit(next)
	}
	return c.fail(errors.NotFoundf("comment %s does not exist on card %s", commentID, cardID))
}

func findCard(s *domain.BoardState, cardID string) *domain.Card {
	for i := range s.Cards {
		if s.Cards[i].ID == cardID {
			return &s.Cards[i]
		}
	}
	return nil
}
