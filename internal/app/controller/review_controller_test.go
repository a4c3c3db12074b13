package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog-backend/internal/app/model"
)

func TestReviewController_Create(t *testing.T) {
	env := newTestEnv(t)
	controller := NewReviewController(env.reviewService)

	movie := env.seedMovie(t, "Reviewed", "reviewed")
	user := env.seedUser(t, "alice")

	router := newTestRouter(user.ID, model.RoleUser)
	router.POST("/movies/:id/reviews", controller.Create)

	path := fmt.Sprintf("/movies/%d/reviews", movie.ID)
	w := doJSON(t, router, http.MethodPost, path, model.CreateReviewRequest{
		Content: "A quiet, devastating film.",
		Score:   8.5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, 8.5, body["score"])
	assert.Equal(t, "A quiet, devastating film.", body["content"])

	// Second review of the same movie by the same user conflicts.
	w = doJSON(t, router, http.MethodPost, path, model.CreateReviewRequest{
		Content: "Changed my mind.",
		Score:   3,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "REVIEW_ALREADY_EXISTS", decodeBody(t, w)["error"])
}

func TestReviewController_Create_MovieMissing(t *testing.T) {
	env := newTestEnv(t)
	controller := NewReviewController(env.reviewService)

	user := env.seedUser(t, "bob")
	router := newTestRouter(user.ID, model.RoleUser)
	router.POST("/movies/:id/reviews", controller.Create)

	w := doJSON(t, router, http.MethodPost, "/movies/424242/reviews", model.CreateReviewRequest{
		Content: "ghost review",
		Score:   5,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "MOVIE_NOT_FOUND", decodeBody(t, w)["error"])
}

func TestReviewController_Update_ForeignReviewReads404(t *testing.T) {
	env := newTestEnv(t)
	controller := NewReviewController(env.reviewService)

	movie := env.seedMovie(t, "Contested", "contested")
	author := env.seedUser(t, "author")
	stranger := env.seedUser(t, "stranger")
	review := env.seedReview(t, author.ID, movie.ID, 70)

	router := newTestRouter(stranger.ID, model.RoleUser)
	router.PATCH("/reviews/:id", controller.Update)

	content := "hijacked"
	w := doJSON(t, router, http.MethodPatch, fmt.Sprintf("/reviews/%d", review.ID), model.UpdateReviewRequest{
		Content: &content,
	})
	// Foreign reviews read as missing.
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewController_Delete_AdminOverride(t *testing.T) {
	env := newTestEnv(t)
	controller := NewReviewController(env.reviewService)

	movie := env.seedMovie(t, "Moderated", "moderated")
	author := env.seedUser(t, "author")
	admin := env.seedUser(t, "moderator")
	review := env.seedReview(t, author.ID, movie.ID, 20)

	router := newTestRouter(admin.ID, model.RoleAdmin)
	router.DELETE("/reviews/:id", controller.Delete)

	w := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/reviews/%d", review.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/reviews/%d", review.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewController_ListForMovie(t *testing.T) {
	env := newTestEnv(t)
	controller := NewReviewController(env.reviewService)

	movie := env.seedMovie(t, "Popular", "popular")
	other := env.seedMovie(t, "Other", "other")
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	env.seedReview(t, alice.ID, movie.ID, 90)
	env.seedReview(t, bob.ID, movie.ID, 60)
	env.seedReview(t, alice.ID, other.ID, 40)

	router := newTestRouter(0, "")
	router.GET("/movies/:id/reviews", controller.ListForMovie)

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/movies/%d/reviews", movie.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["total"])

	// A conflicting movie filter in the query string cannot leak other
	// movies' reviews into the listing.
	w = doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/movies/%d/reviews?movie=%d", movie.ID, other.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decodeBody(t, w)["total"])
}
