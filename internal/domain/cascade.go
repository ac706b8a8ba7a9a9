package domain

// Cascade deletes. Dependent entities are removed explicitly when their
// owner goes away; nothing relies on dangling references being ignored.

// RemoveColumn deletes a column, removes every card referencing it, and
// renumbers the remaining columns of the board so positions stay dense.
// Returns false if the column does not exist.
func (s *BoardState) RemoveColumn(id string) bool {
	col, ok := s.ColumnByID(id)
	if !ok {
		return false
	}

	cols := s.Columns[:0:0]
	for _, c := range s.Columns {
		if c.ID != id {
			cols = append(cols, c)
		}
	}
	s.Columns = cols

	cards := s.Cards[:0:0]
	for _, c := range s.Cards {
		if c.ColumnID != id {
			cards = append(cards, c)
		}
	}
	s.Cards = cards

	s.NormalizeColumnPositions(col.BoardID)
	return true
}

// RemoveBoard deletes a board and cascades to its columns and cards. If the
// board was the current selection, the selection is cleared. Returns false
// if the board does not exist.
func (s *BoardState) RemoveBoard(id string) bool {
	if _, ok := s.BoardByID(id); !ok {
		return false
	}

	boards := s.Boards[:0:0]
	for _, b := range s.Boards {
		if b.ID != id {
			boards = append(boards, b)
		}
	}
	s.Boards = boards

	cols := s.Columns[:0:0]
	for _, c := range s.Columns {
		if c.BoardID != id {
			cols = append(cols, c)
		}
	}
	s.Columns = cols

	cards := s.Cards[:0:0]
	for _, c := range s.Cards {
		if c.BoardID != id {
			cards = append(cards, c)
		}
	}
	s.Cards = cards

	if s.CurrentBoardID == id {
		s.CurrentBoardID = ""
	}
	return true
}

// RemoveCard deletes a single card and renumbers its column. Returns false
// if the card does not exist.
func (s *BoardState) RemoveCard(id string) bool {
	card, ok := s.CardByID(id)
	if !ok {
		return false
	}

	cards := s.Cards[:0:0]
	for _, c := range s.Cards {
		if c.ID != id {
			cards = append(cards, c)
		}
	}
	s.Cards = cards

	s.NormalizeCardPositions(card.ColumnID)
	return true
}
