package main

import (
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Mamora-sema/Food-diary/config"
	"github.com/Mamora-sema/Food-diary/logger"
	"github.com/Mamora-sema/Food-diary/routes"
	"github.com/Mamora-sema/Food-diary/services"
	"github.com/Mamora-sema/Food-diary/utils"
)

func main() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	log := logger.L()
	defer log.Sync()

	config.InitDB()
	utils.InitS3()

	// Nightly rollup of the previous day into daily_progress.
	schedule := os.Getenv("SNAPSHOT_CRON")
	if schedule == "" {
		schedule = "10 0 * * *"
	}
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		day := time.Now().AddDate(0, 0, -1)
		if err := services.SnapshotDailyProgress(day); err != nil {
			log.Error("daily progress snapshot failed", zap.Error(err))
		}
	}); err != nil {
		log.Fatal("invalid snapshot schedule", zap.Error(err))
	}
	c.Start()

	r := routes.SetupRouter()
	if err := r.Run(":8080"); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
