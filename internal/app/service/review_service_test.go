package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
)

func TestReviewServiceCreate(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReviewService(env.reviews, env.movies)

	user := env.seedUser(t, "critic")
	movie := env.seedMovie(t, "Alpha Dog", "alpha-dog")

	t.Run("stores the client score times ten", func(t *testing.T) {
		review, err := svc.Create(user.ID, movie.ID, &model.CreateReviewRequest{
			Content: "really good", Score: 8.5,
		})
		require.NoError(t, err)
		assert.Equal(t, 85, review.Score)
		assert.InDelta(t, 8.5, review.ToResponse().Score, 0.001)
	})

	t.Run("second review of the same movie conflicts", func(t *testing.T) {
		_, err := svc.Create(user.ID, movie.ID, &model.CreateReviewRequest{
			Content: "changed my mind", Score: 2,
		})
		assert.ErrorIs(t, err, ErrReviewAlreadyExists)
	})

	t.Run("reviewing a missing movie", func(t *testing.T) {
		_, err := svc.Create(user.ID, 9999, &model.CreateReviewRequest{
			Content: "ghost", Score: 5,
		})
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})
}

func TestReviewServiceOwnership(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReviewService(env.reviews, env.movies)

	owner := env.seedUser(t, "owner")
	stranger := env.seedUser(t, "stranger")
	movie := env.seedMovie(t, "Alpha Dog", "alpha-dog")
	review := env.seedReview(t, owner.ID, movie.ID, 70)

	newContent := "edited"

	t.Run("stranger update reads as not found", func(t *testing.T) {
		_, err := svc.Update(review.ID, stranger.ID, &model.UpdateReviewRequest{Content: &newContent})
		assert.ErrorIs(t, err, ErrReviewNotOwned)
	})

	t.Run("missing review reads the same way", func(t *testing.T) {
		_, err := svc.Update(9999, owner.ID, &model.UpdateReviewRequest{Content: &newContent})
		assert.ErrorIs(t, err, ErrReviewNotOwned)
	})

	t.Run("owner can update content and score", func(t *testing.T) {
		score := 9.0
		updated, err := svc.Update(review.ID, owner.ID, &model.UpdateReviewRequest{
			Content: &newContent, Score: &score,
		})
		require.NoError(t, err)
		assert.Equal(t, "edited", updated.Content)
		assert.Equal(t, 90, updated.Score)
	})

	t.Run("stranger delete reads as not found", func(t *testing.T) {
		err := svc.Delete(review.ID, stranger.ID, model.RoleUser)
		assert.ErrorIs(t, err, ErrReviewNotOwned)
	})

	t.Run("admin can delete anyone's review", func(t *testing.T) {
		require.NoError(t, svc.Delete(review.ID, stranger.ID, model.RoleAdmin))
		_, err := svc.GetByID(review.ID)
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})
}

func TestReviewServiceListForMovie(t *testing.T) {
	env := newTestEnv(t)
	svc := NewReviewService(env.reviews, env.movies)

	alpha := env.seedMovie(t, "Alpha Dog", "alpha-dog")
	beta := env.seedMovie(t, "Beta Ray", "beta-ray")
	user := env.seedUser(t, "critic")
	env.seedReview(t, user.ID, alpha.ID, 70)
	env.seedReview(t, user.ID, beta.ID, 50)

	params := query.Params{Pagination: query.Pagination{Page: 1, PerPage: 10}}

	t.Run("scopes to the movie even against a conflicting filter", func(t *testing.T) {
		params.Filters = query.Filters{"movie": "9999"}
		reviews, total, err := svc.ListForMovie(alpha.ID, params)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, reviews, 1)
		assert.Equal(t, alpha.ID, reviews[0].MovieID)
	})

	t.Run("missing movie", func(t *testing.T) {
		_, _, err := svc.ListForMovie(9999, params)
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})
}
