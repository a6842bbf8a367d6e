package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tagtrail/tagtrail/internal/timetagger"
	"github.com/tagtrail/tagtrail/internal/track"
)

// --- manage_settings tool ---

// SettingView is a setting reshaped for tool output.
type SettingView struct {
	Key   string          `json:"key"   jsonschema:"setting key"`
	Value json.RawMessage `json:"value" jsonschema:"setting value, any JSON shape"`
	MT    int64           `json:"mt"    jsonschema:"modified time, Unix seconds"`
}

// ManageSettingsInput is the input for the manage_settings tool.
type ManageSettingsInput struct {
	Action string          `json:"action,omitempty" jsonschema:"one of: get, update (default get)"`
	Key    string          `json:"key,omitempty"    jsonschema:"setting key; required for update"`
	Value  json.RawMessage `json:"value,omitempty"  jsonschema:"new value, any JSON shape; required for update"`
}

// ManageSettingsOutput is the output for the manage_settings tool.
type ManageSettingsOutput struct {
	Action   string        `json:"action"             jsonschema:"the action performed"`
	Count    int           `json:"count,omitempty"    jsonschema:"number of settings (get only)"`
	Settings []SettingView `json:"settings,omitempty" jsonschema:"all settings (get only)"`
	Setting  *SettingView  `json:"setting,omitempty"  jsonschema:"the written setting (update only)"`
}

func handleManageSettings(svc *track.Service) mcp.ToolHandlerFor[ManageSettingsInput, ManageSettingsOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ManageSettingsInput) (*mcp.CallToolResult, ManageSettingsOutput, error) {
		switch input.Action {
		case "", "get":
			settings, err := svc.GetSettings(ctx)
			if err != nil {
				return nil, ManageSettingsOutput{}, err
			}
			views, err := toSettingViews(settings)
			if err != nil {
				return nil, ManageSettingsOutput{}, err
			}
			return nil, ManageSettingsOutput{
				Action:   "get",
				Count:    len(views),
				Settings: views,
			}, nil

		case "update":
			var value timetagger.SettingValue
			if len(input.Value) > 0 {
				if err := json.Unmarshal(input.Value, &value); err != nil {
					return nil, ManageSettingsOutput{}, timetagger.NewValidationError(
						fmt.Sprintf("invalid setting value: %v", err))
				}
			}

			setting, err := svc.UpdateSetting(ctx, input.Key, value)
			if err != nil {
				return nil, ManageSettingsOutput{}, err
			}
			view, err := toSettingView(setting)
			if err != nil {
				return nil, ManageSettingsOutput{}, err
			}
			return nil, ManageSettingsOutput{
				Action:  "update",
				Setting: &view,
			}, nil

		default:
			return nil, ManageSettingsOutput{}, timetagger.NewValidationError(
				fmt.Sprintf("unknown action %q", input.Action))
		}
	}
}

func toSettingView(s timetagger.Setting) (SettingView, error) {
	raw, err := json.Marshal(s.Value)
	if err != nil {
		return SettingView{}, fmt.Errorf("marshaling setting %q: %w", s.Key, err)
	}
	return SettingView{Key: s.Key, Value: raw, MT: s.MT}, nil
}

func toSettingViews(settings []timetagger.Setting) ([]SettingView, error) {
	views := make([]SettingView, len(settings))
	for i, s := range settings {
		view, err := toSettingView(s)
		if err != nil {
			return nil, err
		}
		views[i] = view
	}
	return views, nil
}
