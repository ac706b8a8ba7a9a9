package domain

import "time"

// Column is an ordered lane within a board. Positions within a board form a
// contiguous ascending sequence starting at zero; every mutation that touches
// column membership keeps the sequence dense.
type Column struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	BoardID   string    `json:"boardId"`
	Position  int       `json:"position"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateColumnRequest carries the caller-supplied fields for a new column.
// Position is assigned by the container (append to end).
type CreateColumnRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Color string `json:"color,omitempty" validate:"omitempty,max=32"`
}

// UpdateColumnRequest carries a partial column update. Nil fields are left
// unchanged.
type UpdateColumnRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Color *string `json:"color,omitempty" validate:"omitempty,max=32"`
}
