package kanban

import (
	"github.com/npaulus/kanban-server/internal/domain"
)

// Query operations are pure reads over the current snapshot.

// GetBoardByID returns a board by id.
func (c *Container) GetBoardByID(boardID string) (domain.Board, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.BoardByID(boardID)
}

// GetBoardView returns the embedded view of a board assembled from the
// normalized collections.
func (c *Container) GetBoardView(boardID string) (domain.BoardView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	view, ok := c.state.ProjectBoard(boardID)
	if !ok {
		return domain.BoardView{}, false
	}
	return view, true
}

// GetColumnByID returns a column by id.
func (c *Container) GetColumnByID(columnID string) (domain.Column, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.ColumnByID(columnID)
}

// GetCardByID returns a card by id.
func (c *Container) GetCardByID(cardID string) (domain.Card, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.CardByID(cardID)
}

// GetUserByID returns a user by id.
func (c *Container) GetUserByID(userID string) (domain.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.UserByID(userID)
}

// GetLabelByID returns a label by id.
func (c *Container) GetLabelByID(labelID string) (domain.Label, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.LabelByID(labelID)
}

// GetFilteredCards returns the current board's cards that pass the active
// filter set, evaluated against the container clock. With no active
// filters it returns all of the current board's cards.
func (c *Container) GetFilteredCards() []domain.Card {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	out := []domain.Card{}
	for _, card := range c.state.CurrentCards() {
		if c.state.Filters.Match(card, now) {
			out = append(out, card)
		}
	}
	return out
}

// SetFilters replaces the active filter set.
func (c *Container) SetFilters(filters domain.BoardFilters) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Clone()
	next.Filters = filters.Clone()
	return c.commit(next)
}

// ClearFilters resets the filter set to no filtering.
func (c *Container) ClearFilters() bool {
	return c.SetFilters(domain.BoardFilters{})
}
