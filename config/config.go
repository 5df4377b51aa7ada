package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	DB *gorm.DB

	HTTPPort           int
	TickInterval       time.Duration
	TickWorkers        int
	SnapshotDir        string
	SnapshotEveryTicks int
)

func Init() {
	HTTPPort = envInt("HTTP_PORT", 8080)
	TickInterval = time.Duration(envInt("TICK_INTERVAL_SECONDS", 600)) * time.Second
	TickWorkers = envInt("TICK_WORKERS", 1)
	SnapshotDir = os.Getenv("SNAPSHOT_DIR")
	SnapshotEveryTicks = envInt("SNAPSHOT_EVERY_TICKS", 6)
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s value: %v", key, err)
	}
	return value
}

func ConnectDatabase() {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		host,
		user,
		password,
		dbname,
		port,
	)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Connection pool configuration
	sqlDB, err := database.DB()
	if err != nil {
		log.Fatal("Failed to get database object:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = database
}

func GetDBStats() sql.DBStats {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return sql.DBStats{}
	}
	return sqlDB.Stats()
}
