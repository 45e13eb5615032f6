package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/Sain-Biswas/gemini-bot/core/types"
)

func NewSearchFlights() *SearchFlightsTool {
	return &SearchFlightsTool{now: time.Now}
}

// SearchFlightsTool returns a synthetic list of flights between two cities.
// The same origin/destination pair yields the same flights for a given day.
type SearchFlightsTool struct {
	now func() time.Time
}

type flightStop struct {
	CityName    string `json:"cityName"`
	AirportCode string `json:"airportCode"`
	Timestamp   string `json:"timestamp"`
}

type flightOffer struct {
	ID           string     `json:"id"`
	FlightNumber string     `json:"flightNumber"`
	Airlines     string     `json:"airlines"`
	Departure    flightStop `json:"departure"`
	Arrival      flightStop `json:"arrival"`
	PriceInUSD   float64    `json:"priceInUSD"`
}

type flightSearchResults struct {
	Flights []flightOffer `json:"flights"`
}

func (t *SearchFlightsTool) Run(ctx context.Context, session *types.SessionState, params types.ToolParams) (types.ToolResult, error) {
	type input struct {
		Origin      string `json:"origin"`
		Destination string `json:"destination"`
	}
	var in input
	if err := params.Unmarshal(&in); err != nil {
		return types.ToolResult{}, err
	}
	if in.Origin == "" || in.Destination == "" {
		return types.ToolResult{}, fmt.Errorf("origin and destination are required")
	}

	day := t.now().UTC().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	r := seededRand(in.Origin, in.Destination, day.Format("2006-01-02"))

	originCode := airportCode(in.Origin)
	destinationCode := airportCode(in.Destination)

	results := flightSearchResults{}
	for i := 0; i < 4; i++ {
		airline := airlines[r.Intn(len(airlines))]
		number := fmt.Sprintf("%c%c%d", airline[0], 'A'+rune(r.Intn(26)), 100+r.Intn(900))

		departure := day.Add(time.Duration(5+i*4+r.Intn(3)) * time.Hour).Add(time.Duration(r.Intn(12)*5) * time.Minute)
		arrival := departure.Add(time.Duration(80+r.Intn(240)) * time.Minute)

		results.Flights = append(results.Flights, flightOffer{
			ID:           fmt.Sprintf("%s-%s-%d", originCode, destinationCode, i+1),
			FlightNumber: number,
			Airlines:     airline,
			Departure: flightStop{
				CityName:    in.Origin,
				AirportCode: originCode,
				Timestamp:   departure.Format(time.RFC3339),
			},
			Arrival: flightStop{
				CityName:    in.Destination,
				AirportCode: destinationCode,
				Timestamp:   arrival.Format(time.RFC3339),
			},
			PriceInUSD: float64(79+r.Intn(420)) + 0.99,
		})
	}

	return jsonResult(results, map[string]interface{}{
		"origin":      in.Origin,
		"destination": in.Destination,
		"count":       len(results.Flights),
	})
}

func (t *SearchFlightsTool) Definition() types.ToolDefinition {
	return types.ToolDefinition{
		Name:        "searchFlights",
		Description: "Search for flights based on the given parameters",
		Properties: map[string]jsonschema.Definition{
			"origin": {
				Type:        jsonschema.String,
				Description: "Origin airport or city",
			},
			"destination": {
				Type:        jsonschema.String,
				Description: "Destination airport or city",
			},
		},
		Required: []string{"origin", "destination"},
	}
}
