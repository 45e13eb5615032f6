package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Sain-Biswas/gemini-bot/core/types"
	models "github.com/Sain-Biswas/gemini-bot/dbmodels"
)

// Chats persists chat transcripts. Save is an upsert keyed by the
// client-supplied chat id: the whole message array is replaced on every
// completed turn, last writer wins.
type Chats struct {
	db *gorm.DB
}

func NewChats(gdb *gorm.DB) *Chats {
	return &Chats{db: gdb}
}

func (c *Chats) Save(ctx context.Context, chat *models.Chat) error {
	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ID"}},
			DoUpdates: clause.AssignmentColumns([]string{"Messages", "UpdatedAt"}),
		}).
		Create(chat).Error
}

func (c *Chats) Get(ctx context.Context, id string) (*models.Chat, error) {
	var chat models.Chat
	if err := c.db.WithContext(ctx).First(&chat, "ID = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	return &chat, nil
}

func (c *Chats) ByUser(ctx context.Context, userID uuid.UUID) ([]models.Chat, error) {
	var chats []models.Chat
	if err := c.db.WithContext(ctx).
		Where("UserID = ?", userID).
		Order("CreatedAt DESC").
		Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

func (c *Chats) Delete(ctx context.Context, id string) error {
	res := c.db.WithContext(ctx).Delete(&models.Chat{}, "ID = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return types.ErrNotFound
	}
	return nil
}
