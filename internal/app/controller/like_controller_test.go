package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog-backend/internal/app/model"
)

func boolPtr(v bool) *bool { return &v }

func TestLikeController_ReactLifecycle(t *testing.T) {
	env := newTestEnv(t)
	controller := NewLikeController(env.likeService)

	movie := env.seedMovie(t, "Divisive", "divisive")
	user := env.seedUser(t, "viewer")

	router := newTestRouter(user.ID, model.RoleUser)
	router.POST("/likes", controller.React)
	router.GET("/likes/:type/:id", controller.Counts)
	router.DELETE("/likes/:type/:id", controller.Unreact)

	react := model.ReactionRequest{
		LikeableType: "movies",
		LikeableID:   movie.ID,
		IsLiked:      boolPtr(true),
	}
	w := doJSON(t, router, http.MethodPost, "/likes", react)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["is_liked"])

	// Any existing reaction is a conflict, whichever way it points.
	w = doJSON(t, router, http.MethodPost, "/likes", react)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "LIKE_ALREADY_EXISTS", decodeBody(t, w)["error"])

	react.IsLiked = boolPtr(false)
	w = doJSON(t, router, http.MethodPost, "/likes", react)
	require.Equal(t, http.StatusConflict, w.Code)

	// Switching sides is remove, then react again.
	countsPath := fmt.Sprintf("/likes/movies/%d", movie.ID)
	w = doJSON(t, router, http.MethodDelete, countsPath, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/likes", react)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["is_liked"])
	w = doJSON(t, router, http.MethodGet, countsPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["likes"])
	assert.Equal(t, float64(1), body["dislikes"])

	w = doJSON(t, router, http.MethodDelete, countsPath, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Nothing left to remove.
	w = doJSON(t, router, http.MethodDelete, countsPath, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "LIKE_NOT_FOUND", decodeBody(t, w)["error"])
}

func TestLikeController_React_TargetMissing(t *testing.T) {
	env := newTestEnv(t)
	controller := NewLikeController(env.likeService)

	user := env.seedUser(t, "viewer")
	router := newTestRouter(user.ID, model.RoleUser)
	router.POST("/likes", controller.React)

	w := doJSON(t, router, http.MethodPost, "/likes", model.ReactionRequest{
		LikeableType: "reviews",
		LikeableID:   987654,
		IsLiked:      boolPtr(true),
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLikeController_React_UnknownType(t *testing.T) {
	env := newTestEnv(t)
	controller := NewLikeController(env.likeService)

	user := env.seedUser(t, "viewer")
	router := newTestRouter(user.ID, model.RoleUser)
	router.POST("/likes", controller.React)

	// The binding's oneof rejects unknown target types before the service runs.
	w := doJSON(t, router, http.MethodPost, "/likes", map[string]interface{}{
		"likeable_type": "users",
		"likeable_id":   1,
		"is_liked":      true,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
