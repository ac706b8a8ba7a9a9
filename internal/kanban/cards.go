package kanban

import (
	"github.com/npaulus/kanban-server/internal/domain"
	"github.com/npaulus/kanban-server/internal/errors"
	"github.com/npaulus/kanban-server/internal/id"
)

// CreateCard appends a new card to the end of the target column. Label and
// user references that do not resolve against the known collections are
// dropped silently.
func (c *Container) CreateCard(req domain.CreateCardRequest, createdBy string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validate.Validate(req); err != nil {
		return c.fail(err)
	}
	column, ok := c.state.ColumnByID(req.ColumnID)
	if !ok {
		return c.fail(errors.NotFoundf("column %s does not exist", req.ColumnID))
	}

	now := c.now()
	next := c.state.Clone()
	next.Cards = append(next.Cards, domain.Card{
		ID:              id.MustGenerate(id.PrefixCard),
		Title:           req.Title,
		Description:     req.Description,
		ColumnID:        column.ID,
		BoardID:         column.BoardID,
		Position:        next.NextCardPosition(column.ID),
		LabelIDs:        next.KnownLabelIDs(req.LabelIDs),
		AssignedUserIDs: next.KnownUserIDs(req.AssignedUserIDs),
		DueDate:         req.DueDate,
		Comments:        []domain.Comment{},
		Attachments:     []domain.Attachment{},
		CreatedAt:       now,
		UpdatedAt:       now,
		CreatedBy:       createdBy,
	})
	return c.commit(next)
}

// UpdateCard applies a partial update to an existing card. Nil ID slices
// keep the current references; non-nil slices replace them, again with
// silent dropping of unresolved references.
func (c *Container) UpdateCard(cardID string, req domain.UpdateCardRequest) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validate.Validate(req); err != nil {
		return c.fail(err)
	}
	if _, ok := c.state.CardByID(cardID); !ok {
		return c.fail(errors.NotFoundf("card %s does not exist", cardID))
	}

	next := c.state.Clone()
	for i := range next.Cards {
		if next.Cards[i].ID != cardID {
			continue
		}
		if req.Title != nil {
			next.Cards[i].Title = *req.Title
		}
		if req.Description != nil {
			next.Cards[i].Description = *req.Description
		}
		if req.DueDate != nil {
			next.Cards[i].DueDate = req.DueDate
		}
		if req.LabelIDs != nil {
			next.Cards[i].LabelIDs = next.KnownLabelIDs(req.LabelIDs)
		}
		if req.AssignedUserIDs != nil {
			next.Cards[i].AssignedUserIDs = next.KnownUserIDs(req.AssignedUserIDs)
		}
		next.Cards[i].UpdatedAt = c.now()
		break
	}
	return c.commit(next)
}

// DeleteCard removes a card and closes the position gap in its column.
func (c *Container) DeleteCard(cardID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Clone()
	if !next.RemoveCard(cardID) {
		return c.fail(errors.NotFoundf("card %s does not exist", cardID))
	}
	return c.commit(next)
}

// MoveCard moves a card into a target column at a target position,
// shifting the cards at or after that slot down by one. Positions in both
// the source and destination columns stay dense.
func (c *Container) MoveCard(req domain.MoveCardRequest) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validate.Validate(req); err != nil {
		return c.fail(err)
	}
	if _, ok := c.state.CardByID(req.CardID); !ok {
		return c.fail(errors.NotFoundf("card %s does not exist", req.CardID))
	}
	if _, ok := c.state.ColumnByID(req.TargetColumnID); !ok {
		return c.fail(errors.NotFoundf("column %s does not exist", req.TargetColumnID))
	}

	next := c.state.Clone()
	if !next.MoveCard(req.CardID, req.TargetColumnID, req.TargetPosition, c.now()) {
		return c.fail(errors.NotFoundf("card %s does not exist", req.CardID))
	}
	return c.commit(next)
}
