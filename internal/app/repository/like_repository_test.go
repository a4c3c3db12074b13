package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
)

func TestLikeRepositoryOneRowPerTarget(t *testing.T) {
	database := setupDB(t)
	repo := NewLikeRepository(database)

	user := seedUser(t, database, "fan")
	category := seedCategory(t, database, "Feature")
	movie := seedMovie(t, database, category.ID, "Alpha Dog", "alpha-dog")

	require.NoError(t, repo.Create(&model.Like{
		UserID: user.ID, LikeableType: model.LikeableMovie, LikeableID: movie.ID, IsLiked: true,
	}))

	t.Run("duplicate reaction hits the unique index", func(t *testing.T) {
		err := repo.Create(&model.Like{
			UserID: user.ID, LikeableType: model.LikeableMovie, LikeableID: movie.ID, IsLiked: false,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsDuplicateKey(err))
	})

	t.Run("same target id under another type is a separate row", func(t *testing.T) {
		err := repo.Create(&model.Like{
			UserID: user.ID, LikeableType: model.LikeableReview, LikeableID: movie.ID, IsLiked: true,
		})
		assert.NoError(t, err)
	})
}

func TestLikeRepositoryRecreateAfterDelete(t *testing.T) {
	database := setupDB(t)
	repo := NewLikeRepository(database)

	user := seedUser(t, database, "fan")
	category := seedCategory(t, database, "Feature")
	movie := seedMovie(t, database, category.ID, "Alpha Dog", "alpha-dog")

	require.NoError(t, repo.Create(&model.Like{
		UserID: user.ID, LikeableType: model.LikeableMovie, LikeableID: movie.ID, IsLiked: true,
	}))
	require.NoError(t, repo.Delete(user.ID, model.LikeableMovie, movie.ID))

	// The unique index no longer blocks a fresh row for the pair.
	require.NoError(t, repo.Create(&model.Like{
		UserID: user.ID, LikeableType: model.LikeableMovie, LikeableID: movie.ID, IsLiked: false,
	}))

	likes, err := repo.Count(model.LikeableMovie, movie.ID, true)
	require.NoError(t, err)
	assert.EqualValues(t, 0, likes)

	dislikes, err := repo.Count(model.LikeableMovie, movie.ID, false)
	require.NoError(t, err)
	assert.EqualValues(t, 1, dislikes)
}

func TestLikeRepositoryDelete(t *testing.T) {
	database := setupDB(t)
	repo := NewLikeRepository(database)

	user := seedUser(t, database, "fan")
	category := seedCategory(t, database, "Feature")
	movie := seedMovie(t, database, category.ID, "Alpha Dog", "alpha-dog")

	t.Run("deleting a reaction that never existed", func(t *testing.T) {
		err := repo.Delete(user.ID, model.LikeableMovie, movie.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		seedLike(t, database, user.ID, model.LikeableMovie, movie.ID, true)
		require.NoError(t, repo.Delete(user.ID, model.LikeableMovie, movie.ID))

		_, err := repo.Get(user.ID, model.LikeableMovie, movie.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
