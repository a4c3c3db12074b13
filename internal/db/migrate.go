package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/pkg/logger"
)

// Migrate runs auto-migration for every model. Join tables are migrated
// explicitly so their unique pair indexes exist.
func Migrate(db *gorm.DB) error {
	models := []interface{}{
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
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("database migration completed", nil)
	return nil
}
