package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Sain-Biswas/gemini-bot/core/types"
	models "github.com/Sain-Biswas/gemini-bot/dbmodels"
)

type Reservations struct {
	db *gorm.DB
}

func NewReservations(gdb *gorm.DB) *Reservations {
	return &Reservations{db: gdb}
}

func (r *Reservations) Create(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *Reservations) Get(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).First(&reservation, "ID = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

// CompletePayment flips the payment flag. Idempotent: repeating the call on
// an already-paid reservation succeeds (the connection reports matched rows,
// see ConnectDB). Details, including the price computed at creation time,
// are never touched.
func (r *Reservations) CompletePayment(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("ID = ?", id).
		Update("HasCompletedPayment", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return types.ErrNotFound
	}
	return nil
}
