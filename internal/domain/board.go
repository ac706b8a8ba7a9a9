package domain

import "time"

// Board is the top-level container of columns and cards. Boards reference
// their columns and cards by board ID only; the flat collections on
// BoardState are the single source of truth, and embedded views are computed
// on read via BoardState.ProjectBoard.
type Board struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	MemberIDs   []string  `json:"memberIds"`
	OwnerID     string    `json:"ownerId"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BoardView is a board together with its columns and cards, assembled from
// the normalized collections. Columns are ordered by position; cards are
// grouped per column and ordered by position.
type BoardView struct {
	Board   Board    `json:"board"`
	Columns []Column `json:"columns"`
	Cards   []Card   `json:"cards"`
	Members []User   `json:"members"`
}

// CreateBoardRequest carries the caller-supplied fields for a new board.
type CreateBoardRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"max=2000"`
	IsPublic    bool   `json:"isPublic,omitempty"`
}

// UpdateBoardRequest carries a partial board update. Nil fields are left
// unchanged.
type UpdateBoardRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
}
