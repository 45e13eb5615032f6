package db

import (
	"context"

	"gorm.io/gorm"

	models "github.com/Sain-Biswas/gemini-bot/dbmodels"
)

type Usage struct {
	db *gorm.DB
}

func NewUsage(gdb *gorm.DB) *Usage {
	return &Usage{db: gdb}
}

func (u *Usage) Record(ctx context.Context, usage *models.LLMUsage) error {
	return u.db.WithContext(ctx).Create(usage).Error
}
