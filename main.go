package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"citytick/api"
	"citytick/config"
	"citytick/game/recalc"
	"citytick/game/settings"
	"citytick/game/snapshot"
	"citytick/game/tick"
	"citytick/migrations"
)

func main() {
	// set timezone to utc
	time.Local = time.UTC

	// load environment variables
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	config.Init()

	// database connection
	config.ConnectDatabase()
	// migrations and seeders
	migrations.Migrate(config.DB)

	provider := settings.NewProvider(config.DB)
	tracker := recalc.NewTracker(config.DB)
	orchestrator := &tick.Orchestrator{
		DB:       config.DB,
		Provider: provider,
		Tracker:  tracker,
		Archiver: &snapshot.Archiver{Dir: config.SnapshotDir, Every: config.SnapshotEveryTicks},
		Workers:  config.TickWorkers,
	}

	// admin and reporting API
	server := &api.Server{
		DB:       config.DB,
		Settings: provider,
		Port:     config.HTTPPort,
	}
	server.Start()

	// tick loop
	scheduler := tick.NewScheduler(config.TickInterval, orchestrator)
	scheduler.Run()
}
