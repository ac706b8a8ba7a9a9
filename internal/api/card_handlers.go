package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/npaulus/kanban-server/internal/domain"
	"github.com/npaulus/kanban-server/internal/errors"
)

func (s *Server) registerCardRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listFilteredCards",
		Method:      http.MethodGet,
		Path:        "/api/v1/cards",
		Summary:     "List filtered cards",
		Description: "Returns the current board's cards that pass the active filter set",
		Tags:        []string{"Cards"},
	}, s.handleListFilteredCards)

	huma.Register(s.api, huma.Operation{
		OperationID: "createCard",
		Method:      http.MethodPost,
		Path:        "/api/v1/cards",
		Summary:     "Create card",
		Description: "Appends a card to the end of the target column",
		Tags:        []string{"Cards"},
	}, s.handleCreateCard)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCard",
		Method:      http.MethodGet,
		Path:        "/api/v1/cards/{id}",
		Summary:     "Get card",
		Tags:        []string{"Cards"},
	}, s.handleGetCard)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateCard",
		Method:      http.MethodPatch,
		Path:        "/api/v1/cards/{id}",
		Summary:     "Update card",
		Tags:        []string{"Cards"},
	}, s.handleUpdateCard)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteCard",
		Method:      http.MethodDelete,
		Path:        "/api/v1/cards/{id}",
		Summary:     "Delete card",
		Tags:        []string{"Cards"},
	}, s.handleDeleteCard)

	huma.Register(s.api, huma.Operation{
		OperationID: "moveCard",
		Method:      http.MethodPost,
		Path:        "/api/v1/cards/{id}/move",
		Summary:     "Move card",
		Description: "Moves a card into a target column at a target position",
		Tags:        []string{"Cards"},
	}, s.handleMoveCard)
}

// ListCardsResponse contains cards passing the active filters.
type ListCardsResponse struct {
	Cards []domain.Card `json:"cards"`
}

// ListCardsOutput wraps the card list for Huma.
type ListCardsOutput struct {
	Body ListCardsResponse
}

func (s *Server) handleListFilteredCards(_ context.Context, _ *struct{}) (*ListCardsOutput, error) {
	return &ListCardsOutput{Body: ListCardsResponse{Cards: s.container.GetFilteredCards()}}, nil
}

// CreateCardInput wraps the create card request for Huma.
type CreateCardInput struct {
	Body domain.CreateCardRequest
}

// CardOutput wraps a single card for Huma.
type CardOutput struct {
	Body domain.Card
}

func (s *Server) handleCreateCard(_ context.Context, input *CreateCardInput) (*CardOutput, error) {
	before := s.container.Snapshot()
	if !s.container.CreateCard(input.Body, "") {
		return nil, s.container.LastFailure()
	}

	// Identify our card by diffing against the pre-create snapshot; a
	// concurrent create may have appended another card in between.
	known := make(map[string]struct{}, len(before.Cards))
	for _, c := range before.Cards {
		known[c.ID] = struct{}{}
	}
	snap := s.container.Snapshot()
	for i := len(snap.Cards) - 1; i >= 0; i-- {
		c := snap.Cards[i]
		if _, seen := known[c.ID]; !seen && c.ColumnID == input.Body.ColumnID && c.Title == input.Body.Title {
			return &CardOutput{Body: c}, nil
		}
	}
	return nil, errors.Internal("card not found after create")
}

// GetCardInput identifies a card.
type GetCardInput struct {
	ID string `path:"id" doc:"Card ID"`
}

func (s *Server) handleGetCard(_ context.Context, input *GetCardInput) (*CardOutput, error) {
	card, ok := s.container.GetCardByID(input.ID)
	if !ok {
		return nil, errors.NotFoundf("card %s does not exist", input.ID)
	}
	return &CardOutput{Body: card}, nil
}

// UpdateCardInput wraps the update card request for Huma.
type UpdateCardInput struct {
	ID   string `path:"id" doc:"Card ID"`
	Body domain.UpdateCardRequest
}

func (s *Server) handleUpdateCard(_ context.Context, input *UpdateCardInput) (*CardOutput, error) {
	if !s.container.UpdateCard(input.ID, input.Body) {
		return nil, s.container.LastFailure()
	}
	card, _ := s.container.GetCardByID(input.ID)
	return &CardOutput{Body: card}, nil
}

// DeleteCardInput identifies a card to delete.
type DeleteCardInput struct {
	ID string `path:"id" doc:"Card ID"`
}

func (s *Server) handleDeleteCard(_ context.Context, input *DeleteCardInput) (*struct{}, error) {
	if !s.container.DeleteCard(input.ID) {
		return nil, s.container.LastFailure()
	}
	return &struct{}{}, nil
}

// MoveCardInput wraps the move request for Huma. The card id in the path
// wins over any id in the body.
type MoveCardInput struct {
	ID   string `path:"id" doc:"Card ID"`
	Body struct {
		TargetColumnID string `json:"targetColumnId" doc:"Destination column"`
		TargetPosition int    `json:"targetPosition" doc:"Zero-based slot in the destination column"`
	}
}

func (s *Server) handleMoveCard(_ context.Context, input *MoveCardInput) (*CardOutput, error) {
	ok := s.container.MoveCard(domain.MoveCardRequest{
		CardID:         input.ID,
		TargetColumnID: input.Body.TargetColumnID,
		TargetPosition: input.Body.TargetPosition,
	})
	if !ok {
		return nil, s.container.LastFailure()
	}
	card, _ := s.container.GetCardByID(input.ID)
	return &CardOutput{Body: card}, nil
}
