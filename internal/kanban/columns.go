package kanban

import (
	"github.com/npaulus/kanban-server/internal/color"
	"github.com/npaulus/kanban-server/internal/domain"
	"github.com/npaulus/kanban-server/internal/errors"
	"github.com/npaulus/kanban-server/internal/id"
)

// CreateColumn appends a new column to the end of a board's lane order.
func (c *Container) CreateColumn(boardID string, req domain.CreateColumnRequest) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validate.Validate(req); err != nil {
		return c.fail(err)
	}
	if _, ok := c.state.BoardByID(boardID); !ok {
		return c.fail(errors.NotFoundf("board %s does not exist", boardID))
	}

	now := c.now()
	columnID := id.MustGenerate(id.PrefixColumn)
	columnColor := req.Color
	if columnColor == "" {
		columnColor = color.For(columnID)
	}

	next := c.state.Clone()
	next.Columns = append(next.Columns, domain.Column{
		ID:        columnID,
		Title:     req.Title,
		BoardID:   boardID,
		Position:  next.NextColumnPosition(boardID),
		Color:     columnColor,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return c.commit(next)
}

// UpdateColumn applies a partial update to an existing column.
func (c *Container) UpdateColumn(columnID string, req domain.UpdateColumnRequest) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.validate.Validate(req); err != nil {
		return c.fail(err)
	}
	if _, ok := c.state.ColumnByID(columnID); !ok {
		return c.fail(errors.NotFoundf("column %s does not exist", columnID))
	}

	next := c.state.Clone()
	for i := range next.Columns {
		if next.Columns[i].ID != columnID {
			continue
		}
		if req.Title != nil {
			next.Columns[i].Title = *req.Title
		}
		if req.Color != nil {
			next.Columns[i].Color = *req.Color
		}
		next.Columns[i].UpdatedAt = c.now()
		break
	}
	return c.commit(next)
}

// DeleteColumn removes a column, cascades to every card in it, and closes
// the position gap among the board's remaining columns.
func (c *Container) DeleteColumn(columnID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Clone()
	if !next.RemoveColumn(columnID) {
		return c.fail(errors.NotFoundf("column %s does not exist", columnID))
	}
	return c.commit(next)
}
