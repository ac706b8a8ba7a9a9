package domain

import "time"

// Position maintenance. Positions are zero-based, dense, and unique within
// their scope (columns within a board, cards within a column).

// NextColumnPosition returns the append-to-end position for a new column on
// the board: the current column count.
func (s *BoardState) NextColumnPosition(boardID string) int {
	n := 0
	for _, c := range s.Columns {
		if c.BoardID == boardID {
			n++
		}
	}
	return n
}

// NextCardPosition returns the append-to-end position for a new card in the
// column: the count of cards already there, independent of other columns.
func (s *BoardState) NextCardPosition(columnID string) int {
	n := 0
	for _, c := range s.Cards {
		if c.ColumnID == columnID {
			n++
		}
	}
	return n
}

// NormalizeColumnPositions renumbers the board's columns 0..n-1, preserving
// their current order.
func (s *BoardState) NormalizeColumnPositions(boardID string) {
	for i, col := range s.BoardColumns(boardID) {
		s.setColumnPosition(col.ID, i)
	}
}

// NormalizeCardPositions renumbers the column's cards 0..n-1, preserving
// their current order.
func (s *BoardState) NormalizeCardPositions(columnID string) {
	for i, card := range s.ColumnCards(columnID) {
		s.setCardPosition(card.ID, i)
	}
}

// MoveCard reassigns a card to the target column at the target position.
// Siblings at or after the slot shift down by one, and both the source and
// destination columns come out dense and gap-free. The target position is
// clamped to the destination column's bounds. Returns false when the card or
// the target column does not exist.
func (s *BoardState) MoveCard(cardID, targetColumnID string, targetPosition int, now time.Time) bool {
	card, ok := s.CardByID(cardID)
	if !ok {
		return false
	}
	if _, ok := s.ColumnByID(targetColumnID); !ok {
		return false
	}

	sourceColumnID := card.ColumnID

	// Destination order without the moving card, then insert at the slot.
	dest := []Card{}
	for _, c := range s.ColumnCards(targetColumnID) {
		if c.ID != cardID {
			dest = append(dest, c)
		}
	}
	if targetPosition < 0 {
		targetPosition = 0
	}
	if targetPosition > len(dest) {
		targetPosition = len(dest)
	}

	for i := range s.Cards {
		if s.Cards[i].ID == cardID {
			s.Cards[i].ColumnID = targetColumnID
			s.Cards[i].Position = targetPosition
			s.Cards[i].UpdatedAt = now
			break
		}
	}

	// Shift destination siblings occupying or following the slot.
	for i, c := range dest {
		pos := i
		if i >= targetPosition {
			pos = i + 1
		}
		s.setCardPosition(c.ID, pos)
	}

	if sourceColumnID != targetColumnID {
		s.NormalizeCardPositions(sourceColumnID)
	}
	return true
}

func (s *BoardState) setColumnPosition(id string, pos int) {
	for i := range s.Columns {
		if s.Columns[i].ID == id {
			s.Columns[i].Position = pos
			return
		}
	}
}

func (s *BoardState) setCardPosition(id string, pos int) {
	for i := range s.Cards {
		if s.Cards[i].ID == id {
			s.Cards[i].Position = pos
			return
		}
	}
}
