package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog-backend/internal/app/model"
)

func TestMovieController_List_Envelope(t *testing.T) {
	env := newTestEnv(t)
	controller := NewMovieController(env.movieService)

	env.seedMovie(t, "The Long Night", "the-long-night")
	env.seedMovie(t, "Paper Cranes", "paper-cranes")

	router := newTestRouter(0, "")
	router.GET("/movies", controller.List)

	w := doJSON(t, router, http.MethodGet, "/movies", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data := body["data"].([]interface{})
	assert.Len(t, data, 2)
	assert.Equal(t, float64(2), body["total"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(10), body["per_page"])
	assert.Equal(t, float64(1), body["last_page"])
}

func TestMovieController_List_InvalidSort(t *testing.T) {
	env := newTestEnv(t)
	controller := NewMovieController(env.movieService)

	router := newTestRouter(0, "")
	router.GET("/movies", controller.List)

	w := doJSON(t, router, http.MethodGet, "/movies?sort=bogus", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "VALIDATION_INVALID_SORT", body["error"])
	assert.Contains(t, body["message"], "valid sorts are")
	assert.Contains(t, body["message"], "newest")
}

func TestMovieController_List_PerPageCapped(t *testing.T) {
	env := newTestEnv(t)
	controller := NewMovieController(env.movieService)

	env.seedMovie(t, "Glass Harbor", "glass-harbor")

	router := newTestRouter(0, "")
	router.GET("/movies", controller.List)

	w := doJSON(t, router, http.MethodGet, "/movies?per_page=5000", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(100), body["per_page"])
}

func TestMovieController_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)
	controller := NewMovieController(env.movieService)

	router := newTestRouter(0, "")
	router.GET("/movies/:id", controller.Get)

	w := doJSON(t, router, http.MethodGet, "/movies/9999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "MOVIE_NOT_FOUND", decodeBody(t, w)["error"])
}

func TestMovieController_Get_InvalidID(t *testing.T) {
	env := newTestEnv(t)
	controller := NewMovieController(env.movieService)

	router := newTestRouter(0, "")
	router.GET("/movies/:id", controller.Get)

	w := doJSON(t, router, http.MethodGet, "/movies/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_INVALID_ID", decodeBody(t, w)["error"])
}

func TestMovieController_Create(t *testing.T) {
	env := newTestEnv(t)
	controller := NewMovieController(env.movieService)

	seeded := env.seedMovie(t, "Existing", "existing")
	admin := env.seedUser(t, "admin")

	router := newTestRouter(admin.ID, model.RoleAdmin)
	router.POST("/movies", controller.Create)

	w := doJSON(t, router, http.MethodPost, "/movies", model.CreateMovieRequest{
		Name:       "New Movie",
		URL:        "new-movie",
		CategoryID: seeded.CategoryID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "new-movie", decodeBody(t, w)["url"])

	// Slug collision answers 409.
	w = doJSON(t, router, http.MethodPost, "/movies", model.CreateMovieRequest{
		Name:       "Another",
		URL:        "existing",
		CategoryID: seeded.CategoryID,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "MOVIE_URL_EXISTS", decodeBody(t, w)["error"])
}

func TestMovieController_AverageScoreString(t *testing.T) {
	env := newTestEnv(t)
	controller := NewMovieController(env.movieService)

	movie := env.seedMovie(t, "Scored", "scored")
	user := env.seedUser(t, "reviewer")
	env.seedReview(t, user.ID, movie.ID, 85)

	router := newTestRouter(0, "")
	router.GET("/movies", controller.List)

	w := doJSON(t, router, http.MethodGet, "/movies", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	first := body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "8.50", first["average_score"])
}
