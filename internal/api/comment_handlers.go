package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/npaulus/kanban-server/internal/domain"
	"github.com/npaulus/kanban-server/internal/errors"
)

func (s *Server) registerCommentRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "addComment",
		Method:      http.MethodPost,
		Path:        "/api/v1/cards/{cardId}/comments",
		Summary:     "Add comment",
		Tags:        []string{"Comments"},
	}, s.handleAddComment)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateComment",
		Method:      http.MethodPatch,
		Path:        "/api/v1/cards/{cardId}/comments/{commentId}",
		Summary:     "Update comment",
		Tags:        []string{"Comments"},
	}, s.handleUpdateComment)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteComment",
		Method:      http.MethodDelete,
		Path:        "/api/v1/cards/{cardId}/comments/{commentId}",
		Summary:     "Delete comment",
		Tags:        []string{"Comments"},
	}, s.handleDeleteComment)
}

// AddCommentInput wraps the add comment request for Huma.
type AddCommentInput struct {
	CardID string `path:"cardId" doc:"Card ID"`
	Body   domain.CreateCommentRequest
}

// CommentOutput wraps a single comment for Huma.
type CommentOutput struct {
	Body domain.Comment
}

func (s *Server) handleAddComment(_ context.Context, input *AddCommentInput) (*CommentOutput, error) {
	if !s.container.AddComment(input.CardID, input.Body) {
		return nil, s.container.LastFailure()
	}
	card, ok := s.container.GetCardByID(input.CardID)
	if !ok || len(card.Comments) == 0 {
		return nil, errors.Internal("comment not found after add")
	}
	return &CommentOutput{Body: card.Comments[len(card.Comments)-1]}, nil
}

// UpdateCommentInput wraps the update comment request for Huma.
type UpdateCommentInput struct {
	CardID    string `path:"cardId" doc:"Card ID"`
	CommentID string `path:"commentId" doc:"Comment ID"`
	Body      domain.UpdateCommentRequest
}

func (s *Server) handleUpdateComment(_ context.Context, input *UpdateCommentInput) (*CommentOutput, error) {
	if !s.container.UpdateComment(input.CardID, input.CommentID, input.Body) {
		return nil, s.container.LastFailure()
	}
	card, _ := s.container.GetCardByID(input.CardID)
	for _, comment := range card.Comments {
		if comment.ID == input.CommentID {
			return &CommentOutput{Body: comment}, nil
		}
	}
	return nil, errors.Internal("comment not found after update")
}

// DeleteCommentInput identifies a comment to delete.
type DeleteCommentInput struct {
	CardID    string `path:"cardId" doc:"Card ID"`
	CommentID string `path:"commentId" doc:"Comment ID"`
}

func (s *Server) handleDeleteComment(_ context.Context, input *DeleteCommentInput) (*struct{}, error) {
	if !s.container.DeleteComment(input.CardID, input.CommentID) {
		return nil, s.container.LastFailure()
	}
	return &struct{}{}, nil
}
