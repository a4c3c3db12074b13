package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog-backend/internal/app/model"
)

func TestAuthController_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	controller := NewAuthController(env.authService)

	router := newTestRouter(0, "")
	router.POST("/auth/register", controller.Register)
	router.POST("/auth/login", controller.Login)

	w := doJSON(t, router, http.MethodPost, "/auth/register", model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "alice", body["username"])
	assert.NotContains(t, body, "password_hash")

	// Username collision
	w = doJSON(t, router, http.MethodPost, "/auth/register", model.RegisterRequest{
		Username: "alice",
		Email:    "alice2@example.com",
		Password: "correct-horse",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "AUTH_USERNAME_EXISTS", decodeBody(t, w)["error"])

	w = doJSON(t, router, http.MethodPost, "/auth/login", model.LoginRequest{
		Username: "alice",
		Password: "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.NotEmpty(t, body["access_token"])
	assert.NotEmpty(t, body["refresh_token"])

	w = doJSON(t, router, http.MethodPost, "/auth/login", model.LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_INVALID_CREDENTIALS", decodeBody(t, w)["error"])
}

func TestAuthController_PasswordResetFlow(t *testing.T) {
	env := newTestEnv(t)
	controller := NewAuthController(env.authService)

	router := newTestRouter(0, "")
	router.POST("/auth/register", controller.Register)
	router.POST("/auth/forgot-password", controller.ForgotPassword)
	router.POST("/auth/reset-password", controller.ResetPassword)
	router.POST("/auth/login", controller.Login)

	w := doJSON(t, router, http.MethodPost, "/auth/register", model.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "first-password",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// The endpoint never reveals whether the account exists.
	w = doJSON(t, router, http.MethodPost, "/auth/forgot-password", model.ForgotPasswordRequest{
		Email: "nobody@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/auth/forgot-password", model.ForgotPasswordRequest{
		Email: "bob@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// The token is delivered out of band; fetch it straight from storage.
	var reset model.PasswordReset
	require.NoError(t, env.db.Order("id DESC").First(&reset).Error)

	w = doJSON(t, router, http.MethodPost, "/auth/reset-password", model.ResetPasswordRequest{
		Token:    reset.Token,
		Password: "second-password",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Tokens are single use.
	w = doJSON(t, router, http.MethodPost, "/auth/reset-password", model.ResetPasswordRequest{
		Token:    reset.Token,
		Password: "third-password",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "AUTH_RESET_TOKEN_EXPIRED", decodeBody(t, w)["error"])

	w = doJSON(t, router, http.MethodPost, "/auth/login", model.LoginRequest{
		Username: "bob",
		Password: "second-password",
	})
	require.Equal(t, http.StatusOK, w.Code)
}
