package api

import (
	"context"
	"encoding/json/jsontext"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/npaulus/kanban-server/internal/errors"
)

// Settings are small free-form JSON values persisted per name, separate
// from the board snapshot. They survive a board state clear.

func (s *Server) registerSettingsRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listSettings",
		Method:      http.MethodGet,
		Path:        "/api/v1/settings",
		Summary:     "List settings",
		Tags:        []string{"Settings"},
	}, s.handleListSettings)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearSettings",
		Method:      http.MethodDelete,
		Path:        "/api/v1/settings",
		Summary:     "Clear settings",
		Description: "Removes every stored setting",
		Tags:        []string{"Settings"},
	}, s.handleClearSettings)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSetting",
		Method:      http.MethodGet,
		Path:        "/api/v1/settings/{name}",
		Summary:     "Get setting",
		Tags:        []string{"Settings"},
	}, s.handleGetSetting)

	huma.Register(s.api, huma.Operation{
		OperationID: "putSetting",
		Method:      http.MethodPut,
		Path:        "/api/v1/settings/{name}",
		Summary:     "Store setting",
		Tags:        []string{"Settings"},
	}, s.handlePutSetting)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteSetting",
		Method:      http.MethodDelete,
		Path:        "/api/v1/settings/{name}",
		Summary:     "Delete setting",
		Tags:        []string{"Settings"},
	}, s.handleDeleteSetting)
}

// ListSettingsOutput contains every stored setting keyed by name.
type ListSettingsOutput struct {
	Body map[string]jsontext.Value
}

func (s *Server) handleListSettings(ctx context.Context, _ *struct{}) (*ListSettingsOutput, error) {
	all, err := s.store.AllSettings(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]jsontext.Value, len(all))
	for name, value := range all {
		out[name] = jsontext.Value(value)
	}
	return &ListSettingsOutput{Body: out}, nil
}

func (s *Server) handleClearSettings(ctx context.Context, _ *struct{}) (*struct{}, error) {
	if err := s.store.ClearSettings(ctx); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

// SettingInput identifies a setting by name.
type SettingInput struct {
	Name string `path:"name" maxLength:"128" doc:"Setting name"`
}

// SettingOutput wraps a single setting value for Huma.
type SettingOutput struct {
	Body jsontext.Value
}

func (s *Server) handleGetSetting(ctx context.Context, input *SettingInput) (*SettingOutput, error) {
	value, ok, err := s.store.GetSetting(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.NotFoundf("setting %s does not exist", input.Name)
	}
	return &SettingOutput{Body: jsontext.Value(value)}, nil
}

// PutSettingInput carries a setting value to store.
type PutSettingInput struct {
	Name string `path:"name" maxLength:"128" doc:"Setting name"`
	Body jsontext.Value
}

func (s *Server) handlePutSetting(ctx context.Context, input *PutSettingInput) (*SettingOutput, error) {
	if !s.store.IsSupported() {
		return nil, errors.StorageUnavailable("no data path configured")
	}
	if err := s.store.SetSetting(ctx, input.Name, []byte(input.Body)); err != nil {
		return nil, err
	}
	return &SettingOutput{Body: input.Body}, nil
}

func (s *Server) handleDeleteSetting(ctx context.Context, input *SettingInput) (*struct{}, error) {
	if err := s.store.DeleteSetting(ctx, input.Name); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}
