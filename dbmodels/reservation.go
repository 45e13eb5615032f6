package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Reservation holds a flight booking and its payment flag. Details carries
// the trip parameters plus totalPriceInUSD, which is computed once at
// creation time and never rewritten.
type Reservation struct {
	ID                  uuid.UUID      `gorm:"type:char(36);primaryKey" json:"id"`
	UserID              uuid.UUID      `gorm:"type:char(36);index;not null" json:"userId"`
	Details             datatypes.JSON `gorm:"type:json;not null" json:"details"`
	HasCompletedPayment bool           `gorm:"type:boolean;default:false;not null" json:"hasCompletedPayment"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
