package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health and storage support",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// HealthResponse reports server liveness.
type HealthResponse struct {
	Status           string `json:"status" doc:"Server status"`
	StorageSupported bool   `json:"storageSupported" doc:"Whether local persistence is available"`
	Phase            string `json:"phase" doc:"Bootstrap phase of the board state"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{
		Body: HealthResponse{
			Status:           "healthy",
			StorageSupported: s.store.IsSupported(),
			Phase:            string(s.container.Phase()),
		},
	}, nil
}
