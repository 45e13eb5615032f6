package tools

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/Sain-Biswas/gemini-bot/core/types"
)

func NewAuthorizePayment() *AuthorizePaymentTool {
	return &AuthorizePaymentTool{}
}

// AuthorizePaymentTool echoes the reservation id back. It performs no
// payment itself: the result signals the model to pause and wait for the
// out-of-band payment flow to complete.
type AuthorizePaymentTool struct{}

func (t *AuthorizePaymentTool) Run(ctx context.Context, session *types.SessionState, params types.ToolParams) (types.ToolResult, error) {
	type input struct {
		ReservationID string `json:"reservationId"`
	}
	var in input
	if err := params.Unmarshal(&in); err != nil {
		return types.ToolResult{}, err
	}

	return jsonResult(map[string]string{"reservationId": in.ReservationID}, map[string]interface{}{
		"reservationId": in.ReservationID,
	})
}

func (t *AuthorizePaymentTool) Definition() types.ToolDefinition {
	return types.ToolDefinition{
		Name:        "authorizePayment",
		Description: "User will enter credentials to authorize payment, wait for user to repond when they are done",
		Properties: map[string]jsonschema.Definition{
			"reservationId": {
				Type:        jsonschema.String,
				Description: "Unique identifier for the reservation",
			},
		},
		Required: []string{"reservationId"},
	}
}

func NewVerifyPayment(reservations types.ReservationStore) *VerifyPaymentTool {
	return &VerifyPaymentTool{reservations: reservations}
}

// VerifyPaymentTool is a pure read: it reports the current payment flag of
// the reservation on every call, never a cached value. The flag is flipped
// by the external payment collaborator, not by this process.
type VerifyPaymentTool struct {
	reservations types.ReservationStore
}

func (t *VerifyPaymentTool) Run(ctx context.Context, session *types.SessionState, params types.ToolParams) (types.ToolResult, error) {
	type input struct {
		ReservationID string `json:"reservationId"`
	}
	var in input
	if err := params.Unmarshal(&in); err != nil {
		return types.ToolResult{}, err
	}

	id, err := uuid.Parse(in.ReservationID)
	if err != nil {
		return types.ToolResult{}, fmt.Errorf("invalid reservation id %q", in.ReservationID)
	}

	reservation, err := t.reservations.Get(ctx, id)
	if err != nil {
		return types.ToolResult{}, err
	}

	return jsonResult(map[string]bool{"hasCompletedPayment": reservation.HasCompletedPayment}, map[string]interface{}{
		"hasCompletedPayment": reservation.HasCompletedPayment,
	})
}

func (t *VerifyPaymentTool) Definition() types.ToolDefinition {
	return types.ToolDefinition{
		Name:        "verifyPayment",
		Description: "Verify payment status of a reservation",
		Properties: map[string]jsonschema.Definition{
			"reservationId": {
				Type:        jsonschema.String,
				Description: "Unique identifier for the reservation",
			},
		},
		Required: []string{"reservationId"},
	}
}
