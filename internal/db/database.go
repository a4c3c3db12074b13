package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cinelog/cinelog-backend/config"
	"github.com/cinelog/cinelog-backend/pkg/logger"
)

var database *gorm.DB

// Initialize opens the postgres connection and configures the pool.
func Initialize(cfg *config.Config) error {
	logLevel := gormlogger.Warn
	if cfg.Server.GinMode == "debug" {
		logLevel = gormlogger.Info
	}

	// Raw driver errors keep the violated constraint name, which the
	// errors package parses; TranslateError would erase it.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	database = db

	logger.Info("database connection established", map[string]interface{}{
		"host": cfg.Database.Host,
		"name": cfg.Database.DBName,
	})
	return nil
}

// GetDB returns the shared connection. Initialize must have been called.
func GetDB() *gorm.DB {
	return database
}

// Close releases the underlying connection pool.
func Close() error {
	if database == nil {
		return nil
	}
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
