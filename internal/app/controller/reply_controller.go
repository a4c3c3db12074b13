package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
	"github.com/cinelog/cinelog-backend/internal/app/service"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
	"github.com/cinelog/cinelog-backend/internal/middleware"
)

type ReplyController struct {
	service service.ReplyService
}

func NewReplyController(service service.ReplyService) *ReplyController {
	return &ReplyController{service: service}
}

func respondReplyError(ctx *gin.Context, err error) {
	switch err {
	case service.ErrReviewNotFound:
		apperrors.NotFound(ctx, apperrors.ReviewNotFound, err.Error())
	case service.ErrReplyNotFound:
		apperrors.NotFound(ctx, apperrors.ReplyNotFound, err.Error())
	case service.ErrReplyParentInvalid:
		apperrors.BadRequest(ctx, apperrors.ReplyParentInvalid, err.Error())
	case service.ErrReplyNotOwned:
		apperrors.NotFound(ctx, apperrors.ReplyNotOwned, err.Error())
	default:
		apperrors.InternalError(ctx, "")
	}
}

// Create godoc
// @Summary Post a reply under a review or another reply
// @Description Exactly one of review_id and reply_id must be set.
// @Tags replies
// @Accept json
// @Produce json
// @Param request body model.CreateReplyRequest true "reply payload"
// @Success 201 {object} model.Reply
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/replies [post]
func (c *ReplyController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}

	var req model.CreateReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	reply, err := c.service.Create(userID, &req)
	if err != nil {
		respondReplyError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, reply)
}

// Get godoc
// @Summary Get one reply
// @Tags replies
// @Produce json
// @Param id path int true "reply id"
// @Success 200 {object} model.Reply
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/replies/{id} [get]
func (c *ReplyController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	reply, err := c.service.GetByID(id)
	if err != nil {
		respondReplyError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reply)
}

// ListForReview godoc
// @Summary List the top-level replies of a review
// @Tags replies
// @Produce json
// @Param id path int true "review id"
// @Success 200 {object} gin.H{data=[]model.Reply,total=int}
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/reviews/{id}/replies [get]
func (c *ReplyController) ListForReview(ctx *gin.Context) {
	reviewID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	params := query.ParamsFromValues(ctx.Request.URL.Query())
	replies, total, err := c.service.ListForReview(reviewID, params)
	if err != nil {
		if respondSortError(ctx, err) {
			return
		}
		respondReplyError(ctx, err)
		return
	}
	respondList(ctx, replies, params.Pagination.MetaFor(total))
}

// ListChildren godoc
// @Summary List the direct children of a reply
// @Tags replies
// @Produce json
// @Param id path int true "parent reply id"
// @Success 200 {object} gin.H{data=[]model.Reply,total=int}
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/replies/{id}/replies [get]
func (c *ReplyController) ListChildren(ctx *gin.Context) {
	parentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	params := query.ParamsFromValues(ctx.Request.URL.Query())
	replies, total, err := c.service.ListChildren(parentID, params)
	if err != nil {
		if respondSortError(ctx, err) {
			return
		}
		respondReplyError(ctx, err)
		return
	}
	respondList(ctx, replies, params.Pagination.MetaFor(total))
}

// Update godoc
// @Summary Update your own reply (admins can update any)
// @Tags replies
// @Accept json
// @Produce json
// @Param id path int true "reply id"
// @Param request body model.UpdateReplyRequest true "new content"
// @Success 200 {object} model.Reply
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/replies/{id} [patch]
func (c *ReplyController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req model.UpdateReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	role, _ := middleware.GetUserRole(ctx)
	reply, err := c.service.Update(id, userID, role, &req)
	if err != nil {
		respondReplyError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reply)
}

// Delete godoc
// @Summary Delete your own reply (admins can delete any)
// @Tags replies
// @Produce json
// @Param id path int true "reply id"
// @Success 200 {object} gin.H{message=string}
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/replies/{id} [delete]
func (c *ReplyController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	role, _ := middleware.GetUserRole(ctx)
	if err := c.service.Delete(id, userID, role); err != nil {
		respondReplyError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "reply deleted"})
}
