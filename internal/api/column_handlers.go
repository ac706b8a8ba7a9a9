package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/npaulus/kanban-server/internal/domain"
	"github.com/npaulus/kanban-server/internal/errors"
)

func (s *Server) registerColumnRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listColumns",
		Method:      http.MethodGet,
		Path:        "/api/v1/boards/{boardId}/columns",
		Summary:     "List columns",
		Description: "Returns a board's columns ordered by position",
		Tags:        []string{"Columns"},
	}, s.handleListColumns)

	huma.Register(s.api, huma.Operation{
		OperationID: "createColumn",
		Method:      http.MethodPost,
		Path:        "/api/v1/boards/{boardId}/columns",
		Summary:     "Create column",
		Description: "Appends a column to the end of the board's lane order",
		Tags:        []string{"Columns"},
	}, s.handleCreateColumn)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateColumn",
		Method:      http.MethodPatch,
		Path:        "/api/v1/columns/{id}",
		Summary:     "Update column",
		Tags:        []string{"Columns"},
	}, s.handleUpdateColumn)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteColumn",
		Method:      http.MethodDelete,
		Path:        "/api/v1/columns/{id}",
		Summary:     "Delete column",
		Description: "Deletes a column and every card in it",
		Tags:        []string{"Columns"},
	}, s.handleDeleteColumn)
}

// ListColumnsInput identifies the board whose columns to list.
type ListColumnsInput struct {
	BoardID string `path:"boardId" doc:"Board ID"`
}

// ListColumnsResponse contains a board's columns in lane order.
type ListColumnsResponse struct {
	Columns []domain.Column `json:"columns"`
}

// ListColumnsOutput wraps the column list for Huma.
type ListColumnsOutput struct {
	Body ListColumnsResponse
}

func (s *Server) handleListColumns(_ context.Context, input *ListColumnsInput) (*ListColumnsOutput, error) {
	snap := s.container.Snapshot()
	if _, ok := snap.BoardByID(input.BoardID); !ok {
		return nil, errors.NotFoundf("board %s does not exist", input.BoardID)
	}
	return &ListColumnsOutput{Body: ListColumnsResponse{Columns: snap.BoardColumns(input.BoardID)}}, nil
}

// CreateColumnInput wraps the create column request for Huma.
type CreateColumnInput struct {
	BoardID string `path:"boardId" doc:"Board ID"`
	Body    domain.CreateColumnRequest
}

// ColumnOutput wraps a single column for Huma.
type ColumnOutput struct {
	Body domain.Column
}

func (s *Server) handleCreateColumn(_ context.Context, input *CreateColumnInput) (*ColumnOutput, error) {
	if !s.container.CreateColumn(input.BoardID, input.Body) {
		return nil, s.container.LastFailure()
	}
	snap := s.container.Snapshot()
	return &ColumnOutput{Body: snap.Columns[len(snap.Columns)-1]}, nil
}

// UpdateColumnInput wraps the update column request for Huma.
type UpdateColumnInput struct {
	ID   string `path:"id" doc:"Column ID"`
	Body domain.UpdateColumnRequest
}

func (s *Server) handleUpdateColumn(_ context.Context, input *UpdateColumnInput) (*ColumnOutput, error) {
	if !s.container.UpdateColumn(input.ID, input.Body) {
		return nil, s.container.LastFailure()
	}
	column, _ := s.container.GetColumnByID(input.ID)
	return &ColumnOutput{Body: column}, nil
}

// DeleteColumnInput identifies a column to delete.
type DeleteColumnInput struct {
	ID string `path:"id" doc:"Column ID"`
}

func (s *Server) handleDeleteColumn(_ context.Context, input *DeleteColumnInput) (*struct{}, error) {
	if !s.container.DeleteColumn(input.ID) {
		return nil, s.container.LastFailure()
	}
	return &struct{}{}, nil
}
