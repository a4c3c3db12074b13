package repository

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
)

func TestReviewRepositoryOnePerUserPerMovie(t *testing.T) {
	database := setupDB(t)
	repo := NewReviewRepository(database)

	user := seedUser(t, database, "critic")
	category := seedCategory(t, database, "Feature")
	movie := seedMovie(t, database, category.ID, "Alpha Dog", "alpha-dog")

	seedReview(t, database, user.ID, movie.ID, 70)

	err := repo.Create(&model.Review{Content: "again", Score: 80, UserID: user.ID, MovieID: movie.ID})
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateKey(err))
}

func TestReviewRepositoryList(t *testing.T) {
	database := setupDB(t)
	repo := NewReviewRepository(database)

	critic := seedUser(t, database, "critic")
	viewer := seedUser(t, database, "viewer")
	category := seedCategory(t, database, "Feature")
	alpha := seedMovie(t, database, category.ID, "Alpha Dog", "alpha-dog")
	beta := seedMovie(t, database, category.ID, "Beta Ray", "beta-ray")

	low := seedReview(t, database, critic.ID, alpha.ID, 40)
	high := seedReview(t, database, viewer.ID, alpha.ID, 95)
	seedReview(t, database, critic.ID, beta.ID, 60)

	seedLike(t, database, critic.ID, model.LikeableReview, high.ID, true)

	list := func(t *testing.T, rawQuery string) []model.Review {
		t.Helper()
		values, err := url.ParseQuery(rawQuery)
		require.NoError(t, err)
		reviews, _, err := repo.List(query.ParamsFromValues(values))
		require.NoError(t, err)
		return reviews
	}

	t.Run("filter by movie", func(t *testing.T) {
		reviews := list(t, "movie="+uintString(alpha.ID))
		assert.Len(t, reviews, 2)
	})

	t.Run("filter by user", func(t *testing.T) {
		reviews := list(t, "user="+uintString(viewer.ID))
		require.Len(t, reviews, 1)
		assert.Equal(t, high.ID, reviews[0].ID)
	})

	t.Run("score filter takes the client scale", func(t *testing.T) {
		reviews := list(t, "score=9.5")
		require.Len(t, reviews, 1)
		assert.Equal(t, high.ID, reviews[0].ID)
	})

	t.Run("out of range score is ignored", func(t *testing.T) {
		assert.Len(t, list(t, "score=11"), 3)
	})

	t.Run("sort best", func(t *testing.T) {
		reviews := list(t, "sort=best&movie="+uintString(alpha.ID))
		require.Len(t, reviews, 2)
		assert.Equal(t, high.ID, reviews[0].ID)
		assert.Equal(t, low.ID, reviews[1].ID)
	})

	t.Run("sort most liked", func(t *testing.T) {
		reviews := list(t, "sort=most-likes")
		assert.Equal(t, high.ID, reviews[0].ID)
	})

	t.Run("rows carry like and reply counts", func(t *testing.T) {
		reviews := list(t, "user=" + uintString(viewer.ID))
		require.Len(t, reviews, 1)
		require.NotNil(t, reviews[0].LikeCount)
		assert.EqualValues(t, 1, *reviews[0].LikeCount)
		require.NotNil(t, reviews[0].ReplyCount)
		assert.EqualValues(t, 0, *reviews[0].ReplyCount)
	})

	t.Run("preloads the author", func(t *testing.T) {
		reviews := list(t, "user=" + uintString(critic.ID))
		require.NotEmpty(t, reviews)
		require.NotNil(t, reviews[0].User)
		assert.Equal(t, "critic", reviews[0].User.Username)
	})
}

func TestReviewRepositoryDeleteOwned(t *testing.T) {
	database := setupDB(t)
	repo := NewReviewRepository(database)

	owner := seedUser(t, database, "owner")
	stranger := seedUser(t, database, "stranger")
	category := seedCategory(t, database, "Feature")
	movie := seedMovie(t, database, category.ID, "Alpha Dog", "alpha-dog")
	review := seedReview(t, database, owner.ID, movie.ID, 70)

	t.Run("someone else's review looks missing", func(t *testing.T) {
		err := repo.DeleteOwned(review.ID, stranger.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("owner can delete", func(t *testing.T) {
		require.NoError(t, repo.DeleteOwned(review.ID, owner.ID))
		_, err := repo.GetByID(review.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		err := repo.DeleteOwned(review.ID, owner.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
