package models

import (
	"time"

	"github.com/google/uuid"
)

type LLMUsage struct {
	ID               uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:char(36);index;not null;constraint:OnDelete:CASCADE" json:"userId"`
	ChatID           string    `gorm:"type:varchar(64);index;not null" json:"chatId"`
	Model            string    `gorm:"type:varchar(100);not null" json:"model"`
	PromptTokens     int       `gorm:"not null" json:"promptTokens"`
	CompletionTokens int       `gorm:"not null" json:"completionTokens"`
	TotalTokens      int       `gorm:"not null" json:"totalTokens"`
	RequestType      string    `gorm:"type:varchar(50);not null" json:"requestType"` // e.g., "chat"
	GenID            string    `gorm:"type:varchar(100)" json:"genId"`
	CreatedAt        time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}
