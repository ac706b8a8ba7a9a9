package domain

import "time"

// Card is a unit of work belonging to exactly one column at a time. Position
// is zero-based and meaningful only relative to sibling cards in the same
// column. Labels and assignees are stored as ID references into the shared
// label/user collections; comments and attachments are owned by the card.
type Card struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description,omitempty"`
	ColumnID        string       `json:"columnId"`
	BoardID         string       `json:"boardId"`
	Position        int          `json:"position"`
	LabelIDs        []string     `json:"labelIds"`
	AssignedUserIDs []string     `json:"assignedUserIds"`
	DueDate         *time.Time   `json:"dueDate,omitempty"`
	Comments        []Comment    `json:"comments"`
	Attachments     []Attachment `json:"attachments"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
	CreatedBy       string       `json:"createdBy"`
}

// AttachmentType enumerates the supported attachment kinds.
type AttachmentType string

// Attachment kinds.
const (
	AttachmentImage    AttachmentType = "image"
	AttachmentDocument AttachmentType = "document"
	AttachmentLink     AttachmentType = "link"
)

// Attachment is a file or link attached to a card.
type Attachment struct {
	ID        string         `json:"id"`
	CardID    string         `json:"cardId"`
	Name      string         `json:"name"`
	URL       string         `json:"url"`
	Type      AttachmentType `json:"type"`
	Size      int64          `json:"size,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// CreateCardRequest carries the caller-supplied fields for a new card.
// Position and board are derived from the target column; label and user
// references that do not resolve are dropped silently.
type CreateCardRequest struct {
	Title           string     `json:"title" validate:"required,max=200"`
	Description     string     `json:"description,omitempty" validate:"max=5000"`
	ColumnID        string     `json:"columnId" validate:"required"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	LabelIDs        []string   `json:"labelIds,omitempty"`
	AssignedUserIDs []string   `json:"assignedUserIds,omitempty"`
}

// UpdateCardRequest carries a partial card update. Nil fields are left
// unchanged; nil ID slices mean "keep the current references".
type UpdateCardRequest struct {
	Title           *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	LabelIDs        []string   `json:"labelIds,omitempty"`
	AssignedUserIDs []string   `json:"assignedUserIds,omitempty"`
}

// MoveCardRequest moves a card to a position within a target column.
type MoveCardRequest struct {
	CardID         string `json:"cardId" validate:"required"`
	TargetColumnID string `json:"targetColumnId" validate:"required"`
	TargetPosition int    `json:"targetPosition" validate:"min=0"`
}
