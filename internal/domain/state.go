package domain

import (
	"slices"
)

// BoardState is the complete in-memory representation of all kanban entities
// and UI-transient fields at one instant. The flat Columns and Cards
// collections hold every board's children, keyed by parent ID; they are the
// single source of truth. Board-scoped and column-scoped views are computed
// on read and never stored a second time.
type BoardState struct {
	Boards         []Board      `json:"boards"`
	CurrentBoardID string       `json:"currentBoardId"`
	Columns        []Column     `json:"columns"`
	Cards          []Card       `json:"cards"`
	Users          []User       `json:"users"`
	Labels         []Label      `json:"labels"`
	Loading        bool         `json:"loading"`
	Error          string       `json:"error"`
	Filters        BoardFilters `json:"filters"`
}

// NewState returns the defined empty state: empty collections, no selection,
// loading false, no error, no filters.
func NewState() *BoardState {
	return &BoardState{
		Boards:  []Board{},
		Columns: []Column{},
		Cards:   []Card{},
		Users:   []User{},
		Labels:  []Label{},
	}
}

// Clone returns a deep copy of the state. Mutations always operate on a
// clone and replace the whole snapshot, so published copies are never
// mutated in place.
func (s *BoardState) Clone() *BoardState {
	out := *s

	out.Boards = make([]Board, len(s.Boards))
	for i, b := range s.Boards {
		b.MemberIDs = slices.Clone(b.MemberIDs)
		out.Boards[i] = b
	}

	out.Columns = slices.Clone(s.Columns)

	out.Cards = make([]Card, len(s.Cards))
	for i, c := range s.Cards {
		c.LabelIDs = slices.Clone(c.LabelIDs)
		c.AssignedUserIDs = slices.Clone(c.AssignedUserIDs)
		c.Comments = slices.Clone(c.Comments)
		c.Attachments = slices.Clone(c.Attachments)
		if c.DueDate != nil {
			due := *c.DueDate
			c.DueDate = &due
		}
		out.Cards[i] = c
	}

	out.Users = slices.Clone(s.Users)
	out.Labels = slices.Clone(s.Labels)
	out.Filters = s.Filters.Clone()

	return &out
}

// BoardByID returns the board with the given ID.
func (s *BoardState) BoardByID(id string) (Board, bool) {
	for _, b := range s.Boards {
		if b.ID == id {
			return b, true
		}
	}
	return Board{}, false
}

// ColumnByID returns the column with the given ID.
func (s *BoardState) ColumnByID(id string) (Column, bool) {
	for _, c := range s.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return Column{}, false
}

// CardByID returns the card with the given ID.
func (s *BoardState) CardByID(id string) (Card, bool) {
	for _, c := range s.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// UserByID returns the user with the given ID.
func (s *BoardState) UserByID(id string) (User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// LabelByID returns the label with the given ID.
func (s *BoardState) LabelByID(id string) (Label, bool) {
	for _, l := range s.Labels {
		if l.ID == id {
			return l, true
		}
	}
	return Label{}, false
}

// BoardColumns returns the columns of a board ordered by position.
func (s *BoardState) BoardColumns(boardID string) []Column {
	cols := []Column{}
	for _, c := range s.Columns {
		if c.BoardID == boardID {
			cols = append(cols, c)
		}
	}
	slices.SortStableFunc(cols, func(a, b Column) int { return a.Position - b.Position })
	return cols
}

// BoardCards returns the cards of a board, grouped by column and ordered by
// position within each column.
func (s *BoardState) BoardCards(boardID string) []Card {
	cards := []Card{}
	for _, col := range s.BoardColumns(boardID) {
		cards = append(cards, s.ColumnCards(col.ID)...)
	}
	return cards
}

// ColumnCards returns the cards of a column ordered by position.
func (s *BoardState) ColumnCards(columnID string) []Card {
	cards := []Card{}
	for _, c := range s.Cards {
		if c.ColumnID == columnID {
			cards = append(cards, c)
		}
	}
	slices.SortStableFunc(cards, func(a, b Card) int { return a.Position - b.Position })
	return cards
}

// CurrentColumns returns the working column set: columns of the currently
// selected board. Empty when no board is selected.
func (s *BoardState) CurrentColumns() []Column {
	if s.CurrentBoardID == "" {
		return []Column{}
	}
	return s.BoardColumns(s.CurrentBoardID)
}

// CurrentCards returns the working card set: cards of the currently selected
// board. Empty when no board is selected.
func (s *BoardState) CurrentCards() []Card {
	if s.CurrentBoardID == "" {
		return []Card{}
	}
	cards := []Card{}
	for _, c := range s.Cards {
		if c.BoardID == s.CurrentBoardID {
			cards = append(cards, c)
		}
	}
	return cards
}

// ProjectBoard assembles the embedded view of a board from the normalized
// collections.
func (s *BoardState) ProjectBoard(id string) (BoardView, bool) {
	board, ok := s.BoardByID(id)
	if !ok {
		return BoardView{}, false
	}
	return BoardView{
		Board:   board,
		Columns: s.BoardColumns(id),
		Cards:   s.BoardCards(id),
		Members: s.ResolveUsers(board.MemberIDs),
	}, true
}

// ResolveLabels maps label IDs to labels, dropping any reference that does
// not resolve.
func (s *BoardState) ResolveLabels(ids []string) []Label {
	out := []Label{}
	for _, lid := range ids {
		if l, ok := s.LabelByID(lid); ok {
			out = append(out, l)
		}
	}
	return out
}

// ResolveUsers maps user IDs to users, dropping any reference that does not
// resolve.
func (s *BoardState) ResolveUsers(ids []string) []User {
	out := []User{}
	for _, uid := range ids {
		if u, ok := s.UserByID(uid); ok {
			out = append(out, u)
		}
	}
	return out
}

// KnownLabelIDs filters ids down to those that resolve against the label
// collection, preserving input order. Unresolved references are dropped
// silently.
func (s *BoardState) KnownLabelIDs(ids []string) []string {
	out := []string{}
	for _, lid := range ids {
		if _, ok := s.LabelByID(lid); ok {
			out = append(out, lid)
		}
	}
	return out
}

// KnownUserIDs filters ids down to those that resolve against the user
// collection, preserving input order. Unresolved references are dropped
// silently.
func (s *BoardState) KnownUserIDs(ids []string) []string {
	out := []string{}
	for _, uid := range ids {
		if _, ok := s.UserByID(uid); ok {
			out = append(out, uid)
		}
	}
	return out
}
