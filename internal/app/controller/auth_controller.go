package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/service"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
	"github.com/cinelog/cinelog-backend/internal/middleware"
)

type AuthController struct {
	service service.AuthService
}

func NewAuthController(service service.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "signup payload"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/v1/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req model.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	user, err := c.service.Register(&req)
	if err != nil {
		switch err {
		case service.ErrUsernameAlreadyExists:
			apperrors.Conflict(ctx, apperrors.AuthUsernameExists, err.Error())
		case service.ErrEmailAlreadyExists:
			apperrors.Conflict(ctx, apperrors.AuthEmailExists, err.Error())
		default:
			apperrors.InternalError(ctx, "")
		}
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "login payload"
// @Success 200 {object} gin.H{user=model.User,access_token=string,refresh_token=string}
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req model.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	user, tokens, err := c.service.Login(&req)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			apperrors.RespondWithError(ctx, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, err.Error())
			return
		}
		apperrors.InternalError(ctx, "")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":          user,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

// Logout godoc
// @Summary Revoke the presented access token
// @Tags auth
// @Produce json
// @Success 200 {object} gin.H{message=string}
// @Security BearerAuth
// @Router /api/v1/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	token := ""
	if len(header) > 7 {
		token = header[7:] // strip "Bearer "
	}

	if err := c.service.Logout(ctx.Request.Context(), token); err != nil {
		apperrors.InternalError(ctx, "")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}

	user, err := c.service.GetMe(userID)
	if err != nil {
		if err == service.ErrUserNotFound {
			apperrors.NotFound(ctx, apperrors.ResourceNotFound, err.Error())
			return
		}
		apperrors.InternalError(ctx, "")
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update the authenticated user's profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.UpdateMeRequest true "profile changes"
// @Success 200 {object} model.User
// @Security BearerAuth
// @Router /api/v1/auth/me [patch]
func (c *AuthController) UpdateMe(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}

	var req model.UpdateMeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	user, err := c.service.UpdateMe(userID, &req)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			apperrors.NotFound(ctx, apperrors.ResourceNotFound, err.Error())
		case service.ErrEmailAlreadyExists:
			apperrors.Conflict(ctx, apperrors.AuthEmailExists, err.Error())
		default:
			apperrors.InternalError(ctx, "")
		}
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// ForgotPassword godoc
// @Summary Request a password reset token
// @Description Always answers 200 so account existence cannot be probed.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.ForgotPasswordRequest true "account email"
// @Success 200 {object} gin.H{message=string}
// @Router /api/v1/auth/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req model.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	// TODO: deliver the token by email once an SMTP sender is configured.
	if _, err := c.service.ForgotPassword(req.Email); err != nil && err != service.ErrUserNotFound {
		apperrors.InternalError(ctx, "")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "if the account exists, a reset link has been sent"})
}

// ResetPassword godoc
// @Summary Redeem a password reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.ResetPasswordRequest true "token and new password"
// @Success 200 {object} gin.H{message=string}
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/auth/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req model.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	if err := c.service.ResetPassword(&req); err != nil {
		switch err {
		case service.ErrResetTokenInvalid:
			apperrors.BadRequest(ctx, apperrors.AuthResetTokenInvalid, err.Error())
		case service.ErrResetTokenExpired:
			apperrors.BadRequest(ctx, apperrors.AuthResetTokenExpired, err.Error())
		default:
			apperrors.InternalError(ctx, "")
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
