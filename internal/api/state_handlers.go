package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/npaulus/kanban-server/internal/domain"
)

func (s *Server) registerStateRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getState",
		Method:      http.MethodGet,
		Path:        "/api/v1/state",
		Summary:     "Get full state",
		Description: "Returns the complete board state snapshot",
		Tags:        []string{"State"},
	}, s.handleGetState)

	huma.Register(s.api, huma.Operation{
		OperationID: "setFilters",
		Method:      http.MethodPut,
		Path:        "/api/v1/state/filters",
		Summary:     "Set filters",
		Description: "Replaces the active card filter set",
		Tags:        []string{"State"},
	}, s.handleSetFilters)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearFilters",
		Method:      http.MethodDelete,
		Path:        "/api/v1/state/filters",
		Summary:     "Clear filters",
		Description: "Resets the card filter set to no filtering",
		Tags:        []string{"State"},
	}, s.handleClearFilters)
}

// StateOutput wraps the full snapshot for Huma.
type StateOutput struct {
	Body domain.BoardState
}

func (s *Server) handleGetState(_ context.Context, _ *struct{}) (*StateOutput, error) {
	return &StateOutput{Body: *s.container.Snapshot()}, nil
}

// SetFiltersInput wraps the filter replacement request for Huma.
type SetFiltersInput struct {
	Body domain.BoardFilters
}

// FiltersOutput wraps the active filter set for Huma.
type FiltersOutput struct {
	Body domain.BoardFilters
}

func (s *Server) handleSetFilters(_ context.Context, input *SetFiltersInput) (*FiltersOutput, error) {
	if !s.container.SetFilters(input.Body) {
		return nil, s.container.LastFailure()
	}
	return &FiltersOutput{Body: s.container.Snapshot().Filters}, nil
}

func (s *Server) handleClearFilters(_ context.Context, _ *struct{}) (*FiltersOutput, error) {
	if !s.container.ClearFilters() {
		return nil, s.container.LastFailure()
	}
	return &FiltersOutput{Body: domain.BoardFilters{}}, nil
}
