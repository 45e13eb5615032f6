package types

import (
	"context"
	"errors"

	"github.com/google/uuid"

	models "github.com/Sain-Biswas/gemini-bot/dbmodels"
)

// ErrNotFound is returned by stores when the referenced id has no row.
var ErrNotFound = errors.New("record not found")

type ChatStore interface {
	Save(ctx context.Context, chat *models.Chat) error
	Get(ctx context.Context, id string) (*models.Chat, error)
	ByUser(ctx context.Context, userID uuid.UUID) ([]models.Chat, error)
	Delete(ctx context.Context, id string) error
}

type ReservationStore interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	Get(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	CompletePayment(ctx context.Context, id uuid.UUID) error
}

type UsageStore interface {
	Record(ctx context.Context, usage *models.LLMUsage) error
}

type UserStore interface {
	FindOrCreateByEmail(ctx context.Context, email string) (*models.User, error)
}
