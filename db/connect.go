package db

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	models "github.com/Sain-Biswas/gemini-bot/dbmodels"
)

var DB *gorm.DB

func ConnectDB() {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := os.Getenv("DB_HOST")
	name := os.Getenv("DB_NAME")

	// clientFoundRows: RowsAffected counts matched rows, not changed ones,
	// so a no-op update on an existing row is not mistaken for a missing row.
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&clientFoundRows=true", user, pass, host, name)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
			NoLowerCase:   true, // preserve camelCase column names
		},
	})
	if err != nil {
		log.Fatal("Failed to connect to MySQL:", err)
	}

	if err := DB.AutoMigrate(&models.User{}, &models.Chat{}, &models.Reservation{}, &models.LLMUsage{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
}
