package db

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cinelog/cinelog-backend/internal/app/model"
)

// SetupTestDB opens an in-memory sqlite database with the full schema.
// Each call gets an isolated database.
func SetupTestDB() (*gorm.DB, error) {
	// TranslateError stays off for the same reason as in production: the
	// errors package reads constraint names out of raw driver messages.
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// A second pool connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Country{},
		&model.Language{},
		&model.Genre{},
		&model.Keyword{},
		&model.Company{},
		&model.Movie{},
		&model.Person{},
		&model.MovieGenre{},
		&model.MovieKeyword{},
		&model.MovieCompany{},
		&model.MovieLanguage{},
		&model.MovieCountry{},
		&model.Staff{},
		&model.Review{},
		&model.Reply{},
		&model.Like{},
		&model.Following{},
		&model.PasswordReset{},
		&model.Notification{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// CleanupTestDB closes the test database.
func CleanupTestDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
