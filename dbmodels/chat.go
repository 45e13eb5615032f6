package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Chat is a persisted transcript. The ID is supplied by the client on the
// first POST and reused for every later turn of the same conversation.
type Chat struct {
	ID        string         `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:char(36);index;not null" json:"userId"`
	Messages  datatypes.JSON `gorm:"type:json;not null" json:"messages"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}
