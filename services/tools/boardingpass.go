package tools

import (
	"context"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/Sain-Biswas/gemini-bot/core/types"
)

func NewDisplayBoardingPass() *DisplayBoardingPassTool {
	return &DisplayBoardingPassTool{}
}

// DisplayBoardingPassTool echoes the provided structured data for rendering.
// The boarding pass is a derived view; nothing is persisted.
type DisplayBoardingPassTool struct{}

func (t *DisplayBoardingPassTool) Run(ctx context.Context, session *types.SessionState, params types.ToolParams) (types.ToolResult, error) {
	return jsonResult(map[string]interface{}(params), nil)
}

func (t *DisplayBoardingPassTool) Definition() types.ToolDefinition {
	stop := func(desc string) jsonschema.Definition {
		return jsonschema.Definition{
			Type:        jsonschema.Object,
			Description: desc,
			Properties: map[string]jsonschema.Definition{
				"cityName":    {Type: jsonschema.String},
				"airportCode": {Type: jsonschema.String},
				"airportName": {Type: jsonschema.String},
				"timestamp":   {Type: jsonschema.String},
				"gate":        {Type: jsonschema.String},
				"terminal":    {Type: jsonschema.String},
			},
			Required: []string{"cityName", "airportCode", "airportName", "timestamp"},
		}
	}
	return types.ToolDefinition{
		Name:        "displayBoardingPass",
		Description: "Display a boarding pass",
		Properties: map[string]jsonschema.Definition{
			"reservationId": {Type: jsonschema.String, Description: "Unique identifier for the reservation"},
			"passengerName": {Type: jsonschema.String, Description: "Name of the passenger"},
			"flightNumber":  {Type: jsonschema.String, Description: "Flight number"},
			"seat":          {Type: jsonschema.String, Description: "Seat number"},
			"departure":     stop("Departure details"),
			"arrival":       stop("Arrival details"),
		},
		Required: []string{"reservationId", "passengerName", "flightNumber", "seat", "departure", "arrival"},
	}
}
