package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	models "github.com/Sain-Biswas/gemini-bot/dbmodels"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(gdb *gorm.DB) *Users {
	return &Users{db: gdb}
}

func (u *Users) FindOrCreateByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.db.WithContext(ctx).First(&user, "Email = ?", email).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{Email: email}
	if err := u.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
