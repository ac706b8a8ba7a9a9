package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/npaulus/kanban-server/internal/domain"
	"github.com/npaulus/kanban-server/internal/errors"
)

func (s *Server) registerBoardRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBoards",
		Method:      http.MethodGet,
		Path:        "/api/v1/boards",
		Summary:     "List boards",
		Description: "Returns all boards",
		Tags:        []string{"Boards"},
	}, s.handleListBoards)

	huma.Register(s.api, huma.Operation{
		OperationID: "createBoard",
		Method:      http.MethodPost,
		Path:        "/api/v1/boards",
		Summary:     "Create board",
		Tags:        []string{"Boards"},
	}, s.handleCreateBoard)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBoard",
		Method:      http.MethodGet,
		Path:        "/api/v1/boards/{id}",
		Summary:     "Get board",
		Description: "Returns a board with its columns, cards, and members",
		Tags:        []string{"Boards"},
	}, s.handleGetBoard)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateBoard",
		Method:      http.MethodPatch,
		Path:        "/api/v1/boards/{id}",
		Summary:     "Update board",
		Tags:        []string{"Boards"},
	}, s.handleUpdateBoard)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteBoard",
		Method:      http.MethodDelete,
		Path:        "/api/v1/boards/{id}",
		Summary:     "Delete board",
		Description: "Deletes a board and everything in it",
		Tags:        []string{"Boards"},
	}, s.handleDeleteBoard)

	huma.Register(s.api, huma.Operation{
		OperationID: "selectBoard",
		Method:      http.MethodPut,
		Path:        "/api/v1/boards/current",
		Summary:     "Select current board",
		Description: "Sets the working board; an unknown id clears the selection",
		Tags:        []string{"Boards"},
	}, s.handleSelectBoard)
}

// ListBoardsResponse contains all boards.
type ListBoardsResponse struct {
	Boards []domain.Board `json:"boards"`
}

// ListBoardsOutput wraps the board list for Huma.
type ListBoardsOutput struct {
	Body ListBoardsResponse
}

func (s *Server) handleListBoards(_ context.Context, _ *struct{}) (*ListBoardsOutput, error) {
	return &ListBoardsOutput{Body: ListBoardsResponse{Boards: s.container.Snapshot().Boards}}, nil
}

// CreateBoardInput wraps the create board request for Huma.
type CreateBoardInput struct {
	Body domain.CreateBoardRequest
}

// BoardOutput wraps a single board for Huma.
type BoardOutput struct {
	Body domain.Board
}

func (s *Server) handleCreateBoard(_ context.Context, input *CreateBoardInput) (*BoardOutput, error) {
	before := s.container.Snapshot()
	if !s.container.CreateBoard(input.Body, "") {
		return nil, s.container.LastFailure()
	}

	// Identify our board by diffing against the pre-create snapshot; a
	// concurrent create may have appended another board in between.
	known := make(map[string]struct{}, len(before.Boards))
	for _, b := range before.Boards {
		known[b.ID] = struct{}{}
	}
	snap := s.container.Snapshot()
	for i := len(snap.Boards) - 1; i >= 0; i-- {
		b := snap.Boards[i]
		if _, seen := known[b.ID]; !seen && b.Title == input.Body.Title {
			return &BoardOutput{Body: b}, nil
		}
	}
	return nil, errors.Internal("board not found after create")
}

// GetBoardInput identifies a board.
type GetBoardInput struct {
	ID string `path:"id" doc:"Board ID"`
}

// BoardViewOutput wraps the embedded board view for Huma.
type BoardViewOutput struct {
	Body domain.BoardView
}

func (s *Server) handleGetBoard(_ context.Context, input *GetBoardInput) (*BoardViewOutput, error) {
	view, ok := s.container.GetBoardView(input.ID)
	if !ok {
		return nil, errors.NotFoundf("board %s does not exist", input.ID)
	}
	return &BoardViewOutput{Body: view}, nil
}

// UpdateBoardInput wraps the update board request for Huma.
type UpdateBoardInput struct {
	ID   string `path:"id" doc:"Board ID"`
	Body domain.UpdateBoardRequest
}

func (s *Server) handleUpdateBoard(_ context.Context, input *UpdateBoardInput) (*BoardOutput, error) {
	if !s.container.UpdateBoard(input.ID, input.Body) {
		return nil, s.container.LastFailure()
	}
	board, _ := s.container.GetBoardByID(input.ID)
	return &BoardOutput{Body: board}, nil
}

// DeleteBoardInput identifies a board to delete.
type DeleteBoardInput struct {
	ID string `path:"id" doc:"Board ID"`
}

func (s *Server) handleDeleteBoard(_ context.Context, input *DeleteBoardInput) (*struct{}, error) {
	if !s.container.DeleteBoard(input.ID) {
		return nil, s.container.LastFailure()
	}
	return &struct{}{}, nil
}

// SelectBoardInput carries the board selection request.
type SelectBoardInput struct {
	Body struct {
		BoardID string `json:"boardId" doc:"Board to select; empty or unknown clears the selection"`
	}
}

// SelectBoardOutput reports the resulting selection.
type SelectBoardOutput struct {
	Body struct {
		CurrentBoardID string `json:"currentBoardId"`
	}
}

func (s *Server) handleSelectBoard(_ context.Context, input *SelectBoardInput) (*SelectBoardOutput, error) {
	if !s.container.SetCurrentBoard(input.Body.BoardID) {
		return nil, s.container.LastFailure()
	}
	out := &SelectBoardOutput{}
	out.Body.CurrentBoardID = s.container.Snapshot().CurrentBoardID
	return out, nil
}
