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

type ReviewController struct {
	service service.ReviewService
}

func NewReviewController(service service.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

func respondReviewError(ctx *gin.Context, err error) {
	switch err {
	case service.ErrMovieNotFound:
		apperrors.NotFound(ctx, apperrors.MovieNotFound, err.Error())
	case service.ErrReviewNotFound:
		apperrors.NotFound(ctx, apperrors.ReviewNotFound, err.Error())
	case service.ErrReviewAlreadyExists:
		apperrors.Conflict(ctx, apperrors.ReviewAlreadyExists, err.Error())
	case service.ErrReviewNotOwned:
		// Not-found on purpose: foreign reviews are indistinguishable
		// from missing ones.
		apperrors.NotFound(ctx, apperrors.ReviewNotOwned, err.Error())
	default:
		apperrors.InternalError(ctx, "")
	}
}

func reviewResponses(reviews []model.Review) []model.ReviewResponse {
	responses := make([]model.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, review.ToResponse())
	}
	return responses
}

// List godoc
// @Summary List reviews across all movies
// @Description Supports filtering (movie, user, username, search_term, score,
// @Description likes_count, dislikes_count, replies_count), sorting and paging.
// @Tags reviews
// @Produce json
// @Success 200 {object} gin.H{data=[]model.ReviewResponse,total=int}
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/reviews [get]
func (c *ReviewController) List(ctx *gin.Context) {
	params := query.ParamsFromValues(ctx.Request.URL.Query())

	reviews, total, err := c.service.List(params)
	if err != nil {
		if respondSortError(ctx, err) {
			return
		}
		apperrors.InternalError(ctx, "")
		return
	}
	respondList(ctx, reviewResponses(reviews), params.Pagination.MetaFor(total))
}

// ListForMovie godoc
// @Summary List the reviews of one movie
// @Tags reviews
// @Produce json
// @Param id path int true "movie id"
// @Success 200 {object} gin.H{data=[]model.ReviewResponse,total=int}
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/movies/{id}/reviews [get]
func (c *ReviewController) ListForMovie(ctx *gin.Context) {
	movieID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	params := query.ParamsFromValues(ctx.Request.URL.Query())
	reviews, total, err := c.service.ListForMovie(movieID, params)
	if err != nil {
		if respondSortError(ctx, err) {
			return
		}
		respondReviewError(ctx, err)
		return
	}
	respondList(ctx, reviewResponses(reviews), params.Pagination.MetaFor(total))
}

// Get godoc
// @Summary Get one review
// @Tags reviews
// @Produce json
// @Param id path int true "review id"
// @Success 200 {object} model.ReviewResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/reviews/{id} [get]
func (c *ReviewController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	review, err := c.service.GetByID(id)
	if err != nil {
		respondReviewError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, review.ToResponse())
}

// Create godoc
// @Summary Review a movie
// @Description One review per user per movie; the score is on a 0-10 scale.
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "movie id"
// @Param request body model.CreateReviewRequest true "review payload"
// @Success 201 {object} model.ReviewResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/movies/{id}/reviews [post]
func (c *ReviewController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}
	movieID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req model.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	review, err := c.service.Create(userID, movieID, &req)
	if err != nil {
		respondReviewError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, review.ToResponse())
}

// Update godoc
// @Summary Update your own review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "review id"
// @Param request body model.UpdateReviewRequest true "fields to change"
// @Success 200 {object} model.ReviewResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/reviews/{id} [patch]
func (c *ReviewController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req model.UpdateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	review, err := c.service.Update(id, userID, &req)
	if err != nil {
		respondReviewError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, review.ToResponse())
}

// Delete godoc
// @Summary Delete your own review (admins can delete any)
// @Tags reviews
// @Produce json
// @Param id path int true "review id"
// @Success 200 {object} gin.H{message=string}
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/reviews/{id} [delete]
func (c *ReviewController) Delete(ctx *gin.Context) {
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
		respondReviewError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
