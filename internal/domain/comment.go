package domain

import "time"

// Comment is an entry in a card's discussion thread. The list on the card is
// append-only for additions; ordering is append order.
type Comment struct {
	ID        string    `json:"id"`
	CardID    string    `json:"cardId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCommentRequest carries the content for a new comment.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
	UserID  string `json:"userId,omitempty"`
}

// UpdateCommentRequest replaces a comment's content.
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}
