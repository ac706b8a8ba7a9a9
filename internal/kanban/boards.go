package kanban

import (
	"github.com/npaulus/kanban-server/internal/domain"
	"github.com/npaulus/kanban-server/internal/errors"
	"github.com/npaulus/kanban-server/internal/id"
)

// CreateBoard adds a new board. The creator becomes the owner and sole
// member.
func (c *Container) CreateBoard(req domain.CreateBoardRequest, ownerID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validate.Validate(req); err != nil {
		return c.fail(err)
	}

	now := c.now()
	board := domain.Board{
		ID:          id.MustGenerate(id.PrefixBoard),
		Title:       req.Title,
		Description: req.Description,
		MemberIDs:   []string{},
		OwnerID:     ownerID,
		IsPublic:    req.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if ownerID != "" {
		board.MemberIDs = append(board.MemberIDs, ownerID)
	}

	next := c.state.Clone()
	next.Boards = append(next.Boards, board)
	return c.commit(next)
}

// UpdateBoard applies a partial update to an existing board.
func (c *Container) UpdateBoard(boardID string, req domain.UpdateBoardRequest) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validate.Validate(req); err != nil {
		return c.fail(err)
	}
	if _, ok := c.state.BoardByID(boardID); !ok {
		return c.fail(errors.NotFoundf("board %s does not exist", boardID))
	}

	next := c.state.Clone()
	for i := range next.Boards {
		if next.Boards[i].ID != boardID {
			continue
		}
		if req.Title != nil {
			next.Boards[i].Title = *req.Title
		}
		if req.Description != nil {
			next.Boards[i].Description = *req.Description
		}
		if req.IsPublic != nil {
			next.Boards[i].IsPublic = *req.IsPublic
		}
		next.Boards[i].UpdatedAt = c.now()
		break
	}
	return c.commit(next)
}

// DeleteBoard removes a board and cascades to its columns and cards.
// Deleting the currently selected board clears the selection.
func (c *Container) DeleteBoard(boardID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Clone()
	if !next.RemoveBoard(boardID) {
		return c.fail(errors.NotFoundf("board %s does not exist", boardID))
	}
	return c.commit(next)
}

// SetCurrentBoard selects the working board. Selecting an unknown id
// clears the selection; that is a valid request, not an error.
func (c *Container) SetCurrentBoard(boardID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Clone()
	if _, ok := next.BoardByID(boardID); ok {
		next.CurrentBoardID = boardID
	} else {
		next.CurrentBoardID = ""
	}
	return c.commit(next)
}
