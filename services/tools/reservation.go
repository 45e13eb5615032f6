package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/Sain-Biswas/gemini-bot/core/types"
	models "github.com/Sain-Biswas/gemini-bot/dbmodels"
)

// notSignedInMessage is returned as a structured payload when a reservation
// is attempted without an authenticated session. It is a tool result, not a
// failure: the model is expected to explain it to the user.
const notSignedInMessage = "User is not signed in to perform this action!"

func NewCreateReservation(reservations types.ReservationStore) *CreateReservationTool {
	return &CreateReservationTool{reservations: reservations}
}

type CreateReservationTool struct {
	reservations types.ReservationStore
}

type reservationStop struct {
	CityName    string `json:"cityName"`
	AirportCode string `json:"airportCode"`
	Timestamp   string `json:"timestamp"`
	Gate        string `json:"gate"`
	Terminal    string `json:"terminal"`
}

type reservationDetails struct {
	Seats           []string        `json:"seats"`
	FlightNumber    string          `json:"flightNumber"`
	Departure       reservationStop `json:"departure"`
	Arrival         reservationStop `json:"arrival"`
	PassengerName   string          `json:"passengerName"`
	TotalPriceInUSD float64         `json:"totalPriceInUSD"`
}

func (t *CreateReservationTool) Run(ctx context.Context, session *types.SessionState, params types.ToolParams) (types.ToolResult, error) {
	if !session.Authenticated() {
		return jsonResult(map[string]string{"error": notSignedInMessage}, map[string]interface{}{
			"error": notSignedInMessage,
		})
	}

	var details reservationDetails
	if err := params.Unmarshal(&details); err != nil {
		return types.ToolResult{}, err
	}
	if details.FlightNumber == "" || details.PassengerName == "" || len(details.Seats) == 0 {
		return types.ToolResult{}, fmt.Errorf("flightNumber, passengerName and at least one seat are required")
	}

	// Unparsable timestamps leave zero times; pricing falls back to its
	// default duration.
	departure, _ := parseTimestamp(details.Departure.Timestamp)
	arrival, _ := parseTimestamp(details.Arrival.Timestamp)

	details.TotalPriceInUSD = ReservationPrice(details.FlightNumber, len(details.Seats), departure, arrival)

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return types.ToolResult{}, err
	}

	reservation := &models.Reservation{
		ID:      uuid.New(),
		UserID:  session.User.ID,
		Details: detailsJSON,
	}
	if err := t.reservations.Create(ctx, reservation); err != nil {
		return types.ToolResult{}, err
	}

	payload := map[string]interface{}{
		"id":                  reservation.ID.String(),
		"seats":               details.Seats,
		"flightNumber":        details.FlightNumber,
		"departure":           details.Departure,
		"arrival":             details.Arrival,
		"passengerName":       details.PassengerName,
		"totalPriceInUSD":     details.TotalPriceInUSD,
		"hasCompletedPayment": false,
	}
	return jsonResult(payload, map[string]interface{}{
		"reservationId":   reservation.ID.String(),
		"totalPriceInUSD": details.TotalPriceInUSD,
	})
}

func (t *CreateReservationTool) Definition() types.ToolDefinition {
	stop := func(desc string) jsonschema.Definition {
		return jsonschema.Definition{
			Type:        jsonschema.Object,
			Description: desc,
			Properties: map[string]jsonschema.Definition{
				"cityName":    {Type: jsonschema.String},
				"airportCode": {Type: jsonschema.String},
				"timestamp":   {Type: jsonschema.String},
				"gate":        {Type: jsonschema.String},
				"terminal":    {Type: jsonschema.String},
			},
			Required: []string{"cityName", "airportCode", "timestamp"},
		}
	}
	return types.ToolDefinition{
		Name:        "createReservation",
		Description: "Display pending reservation details",
		Properties: map[string]jsonschema.Definition{
			"seats": {
				Type:        jsonschema.Array,
				Description: "Seat numbers",
				Items:       &jsonschema.Definition{Type: jsonschema.String},
			},
			"flightNumber": {
				Type:        jsonschema.String,
				Description: "Flight number",
			},
			"departure":     stop("Departure details"),
			"arrival":       stop("Arrival details"),
			"passengerName": {Type: jsonschema.String, Description: "Name of the passenger"},
		},
		Required: []string{"seats", "flightNumber", "departure", "arrival", "passengerName"},
	}
}
