package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/db"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })
	return database
}

func seedUser(t *testing.T, database *gorm.DB, username string) *model.User {
	t.Helper()
	user := model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, database.Create(&user).Error)
	return &user
}

func seedCategory(t *testing.T, database *gorm.DB, name string) *model.Category {
	t.Helper()
	category := model.Category{Name: name}
	require.NoError(t, database.Create(&category).Error)
	return &category
}

func seedCategoryChild(t *testing.T, database *gorm.DB, name string, parentID uint) *model.Category {
	t.Helper()
	category := model.Category{Name: name, ParentID: &parentID}
	require.NoError(t, database.Create(&category).Error)
	return &category
}

func seedMovie(t *testing.T, database *gorm.DB, categoryID uint, name, url string) *model.Movie {
	t.Helper()
	movie := model.Movie{Name: name, URL: url, CategoryID: categoryID}
	require.NoError(t, database.Create(&movie).Error)
	return &movie
}

func seedPerson(t *testing.T, database *gorm.DB, name, url string) *model.Person {
	t.Helper()
	person := model.Person{Name: name, URL: url}
	require.NoError(t, database.Create(&person).Error)
	return &person
}

func seedReview(t *testing.T, database *gorm.DB, userID, movieID uint, score int) *model.Review {
	t.Helper()
	review := model.Review{
		Content: fmt.Sprintf("review by %d", userID),
		Score:   score,
		UserID:  userID,
		MovieID: movieID,
	}
	require.NoError(t, database.Create(&review).Error)
	return &review
}

func seedLike(t *testing.T, database *gorm.DB, userID uint, likeableType model.LikeableType, likeableID uint, isLiked bool) {
	t.Helper()
	require.NoError(t, database.Create(&model.Like{
		UserID:       userID,
		LikeableType: likeableType,
		LikeableID:   likeableID,
		IsLiked:      isLiked,
	}).Error)
}
