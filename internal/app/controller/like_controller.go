package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/service"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
	"github.com/cinelog/cinelog-backend/internal/middleware"
)

type LikeController struct {
	service service.LikeService
}

func NewLikeController(service service.LikeService) *LikeController {
	return &LikeController{service: service}
}

func respondLikeError(ctx *gin.Context, err error) {
	switch err {
	case service.ErrLikeTargetInvalid:
		apperrors.BadRequest(ctx, apperrors.LikeInvalidTarget, err.Error())
	case service.ErrLikeTargetNotFound:
		apperrors.NotFound(ctx, apperrors.ResourceNotFound, err.Error())
	case service.ErrAlreadyReacted:
		apperrors.Conflict(ctx, apperrors.LikeAlreadyExists, err.Error())
	case service.ErrNoReaction:
		apperrors.BadRequest(ctx, apperrors.LikeNotFound, err.Error())
	default:
		apperrors.InternalError(ctx, "")
	}
}

// React godoc
// @Summary Like or dislike a movie, review or reply
// @Description Any existing reaction on the target is a conflict; remove
// @Description it first to react the other way.
// @Tags likes
// @Accept json
// @Produce json
// @Param request body model.ReactionRequest true "reaction payload"
// @Success 201 {object} model.Like
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/likes [post]
func (c *LikeController) React(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}

	var req model.ReactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	like, err := c.service.React(userID, &req)
	if err != nil {
		respondLikeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, like)
}

// Unreact godoc
// @Summary Remove your reaction from a target
// @Tags likes
// @Produce json
// @Param type path string true "target type: movies, reviews or replies"
// @Param id path int true "target id"
// @Success 200 {object} gin.H{message=string}
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/likes/{type}/{id} [delete]
func (c *LikeController) Unreact(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Unreact(userID, ctx.Param("type"), id); err != nil {
		respondLikeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "reaction removed"})
}

// Counts godoc
// @Summary Get the like/dislike totals of a target
// @Tags likes
// @Produce json
// @Param type path string true "target type: movies, reviews or replies"
// @Param id path int true "target id"
// @Success 200 {object} service.ReactionCounts
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/likes/{type}/{id} [get]
func (c *LikeController) Counts(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	counts, err := c.service.Counts(ctx.Param("type"), id)
	if err != nil {
		respondLikeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, counts)
}
