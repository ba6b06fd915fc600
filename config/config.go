package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Mamora-sema/Food-diary/logger"
	"github.com/Mamora-sema/Food-diary/models"
)

var DB *gorm.DB

func InitDB() {
	log := logger.L()

	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, using system env")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.MealEntry{},
		&models.DailyGoal{},
		&models.DailyProgress{},
	)
	if err != nil {
		log.Fatal("AutoMigrate failed", zap.Error(err))
	}
}
