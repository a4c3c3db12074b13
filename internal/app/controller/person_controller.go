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

type PersonController struct {
	service service.PersonService
}

func NewPersonController(service service.PersonService) *PersonController {
	return &PersonController{service: service}
}

func respondPersonError(ctx *gin.Context, err error) {
	switch err {
	case service.ErrPersonNotFound:
		apperrors.NotFound(ctx, apperrors.PersonNotFound, err.Error())
	case service.ErrPersonURLExists:
		apperrors.Conflict(ctx, apperrors.PersonURLExists, err.Error())
	case service.ErrAlreadyFollowing:
		apperrors.Conflict(ctx, apperrors.FollowAlreadyExists, err.Error())
	case service.ErrNotFollowing:
		apperrors.BadRequest(ctx, apperrors.FollowNotFound, err.Error())
	default:
		apperrors.InternalError(ctx, "")
	}
}

// List godoc
// @Summary List people
// @Description Supports filtering (search_term, url, gender,
// @Description followers_count, medias_count), sorting and paging.
// @Tags people
// @Produce json
// @Success 200 {object} gin.H{data=[]model.Person,total=int}
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/people [get]
func (c *PersonController) List(ctx *gin.Context) {
	params := query.ParamsFromValues(ctx.Request.URL.Query())

	people, total, err := c.service.List(params)
	if err != nil {
		if respondSortError(ctx, err) {
			return
		}
		apperrors.InternalError(ctx, "")
		return
	}
	respondList(ctx, people, params.Pagination.MetaFor(total))
}

// Get godoc
// @Summary Get one person with their credits
// @Tags people
// @Produce json
// @Param id path int true "person id"
// @Success 200 {object} model.Person
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/people/{id} [get]
func (c *PersonController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	person, err := c.service.GetByID(id)
	if err != nil {
		respondPersonError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, person)
}

// GetByURL godoc
// @Summary Get one person by url slug
// @Tags people
// @Produce json
// @Param url path string true "person url slug"
// @Success 200 {object} model.Person
// @Router /api/v1/people/by-url/{url} [get]
func (c *PersonController) GetByURL(ctx *gin.Context) {
	person, err := c.service.GetByURL(ctx.Param("url"))
	if err != nil {
		respondPersonError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, person)
}

// Create godoc
// @Summary Create a person
// @Tags people
// @Accept json
// @Produce json
// @Param request body model.CreatePersonRequest true "person payload"
// @Success 201 {object} model.Person
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/people [post]
func (c *PersonController) Create(ctx *gin.Context) {
	var req model.CreatePersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	person, err := c.service.Create(&req)
	if err != nil {
		respondPersonError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, person)
}

// Update godoc
// @Summary Update a person
// @Tags people
// @Accept json
// @Produce json
// @Param id path int true "person id"
// @Param request body model.UpdatePersonRequest true "fields to change"
// @Success 200 {object} model.Person
// @Security BearerAuth
// @Router /api/v1/people/{id} [patch]
func (c *PersonController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req model.UpdatePersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	person, err := c.service.Update(id, &req)
	if err != nil {
		respondPersonError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, person)
}

// Delete godoc
// @Summary Delete a person
// @Tags people
// @Produce json
// @Param id path int true "person id"
// @Success 200 {object} gin.H{message=string}
// @Security BearerAuth
// @Router /api/v1/people/{id} [delete]
func (c *PersonController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(id); err != nil {
		respondPersonError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "person deleted"})
}

// ==================== Follow APIs ====================

// Follow godoc
// @Summary Follow a person
// @Tags people
// @Produce json
// @Param id path int true "person id"
// @Success 201 {object} gin.H{message=string}
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/people/{id}/follow [post]
func (c *PersonController) Follow(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}
	personID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Follow(userID, personID); err != nil {
		respondPersonError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "now following"})
}

// Unfollow godoc
// @Summary Unfollow a person
// @Tags people
// @Produce json
// @Param id path int true "person id"
// @Success 200 {object} gin.H{message=string}
// @Security BearerAuth
// @Router /api/v1/people/{id}/follow [delete]
func (c *PersonController) Unfollow(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}
	personID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Unfollow(userID, personID); err != nil {
		respondPersonError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "unfollowed"})
}

// ListFollowings godoc
// @Summary List the people the authenticated user follows
// @Tags people
// @Produce json
// @Success 200 {object} gin.H{data=[]model.Following,total=int}
// @Security BearerAuth
// @Router /api/v1/me/followings [get]
func (c *PersonController) ListFollowings(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}

	p := query.PaginationFromValues(ctx.Request.URL.Query())
	followings, total, err := c.service.ListFollowings(userID, p)
	if err != nil {
		apperrors.InternalError(ctx, "")
		return
	}
	respondList(ctx, followings, p.MetaFor(total))
}
