package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/Sain-Biswas/gemini-bot/core/types"
)

const DefaultWeatherURL = "https://api.open-meteo.com"

// NewGetWeather constructs the weather lookup tool. baseURL is overridable
// for tests; empty means the public Open-Meteo endpoint.
func NewGetWeather(baseURL string) *GetWeatherTool {
	if baseURL == "" {
		baseURL = DefaultWeatherURL
	}
	return &GetWeatherTool{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

type GetWeatherTool struct {
	baseURL string
	client  *http.Client
}

func (t *GetWeatherTool) Run(ctx context.Context, session *types.SessionState, params types.ToolParams) (types.ToolResult, error) {
	type input struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	var in input
	if err := params.Unmarshal(&in); err != nil {
		return types.ToolResult{}, err
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%v", in.Latitude))
	q.Set("longitude", fmt.Sprintf("%v", in.Longitude))
	q.Set("current", "temperature_2m")
	q.Set("hourly", "temperature_2m")
	q.Set("daily", "sunrise,sunset")
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/v1/forecast?"+q.Encode(), nil)
	if err != nil {
		return types.ToolResult{}, err
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return types.ToolResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.ToolResult{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return types.ToolResult{}, fmt.Errorf("weather upstream returned status %d", resp.StatusCode)
	}

	// The upstream payload is passed through untouched.
	return types.ToolResult{
		Result: string(body),
		Metadata: map[string]interface{}{
			"statusCode": resp.StatusCode,
		},
	}, nil
}

func (t *GetWeatherTool) Definition() types.ToolDefinition {
	return types.ToolDefinition{
		Name:        "getWeather",
		Description: "Get the current weather at a location",
		Properties: map[string]jsonschema.Definition{
			"latitude": {
				Type:        jsonschema.Number,
				Description: "Latitude of the location",
			},
			"longitude": {
				Type:        jsonschema.Number,
				Description: "Longitude of the location",
			},
		},
		Required: []string{"latitude", "longitude"},
	}
}
