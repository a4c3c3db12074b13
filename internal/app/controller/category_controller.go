package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
	"github.com/cinelog/cinelog-backend/internal/app/service"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
)

type CategoryController struct {
	service service.CategoryService
}

func NewCategoryController(service service.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

func respondCategoryError(ctx *gin.Context, err error) {
	switch err {
	case service.ErrCategoryNotFound:
		apperrors.NotFound(ctx, apperrors.CategoryNotFound, err.Error())
	case service.ErrCategoryNameExists:
		apperrors.Conflict(ctx, apperrors.CategoryNameExists, err.Error())
	default:
		apperrors.InternalError(ctx, "")
	}
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param page query int false "page number"
// @Param per_page query int false "page size"
// @Param sort query string false "sort token"
// @Success 200 {object} gin.H{data=[]model.Category}
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	params := query.ParamsFromValues(ctx.Request.URL.Query())

	categories, total, err := c.service.List(params)
	if err != nil {
		if respondSortError(ctx, err) {
			return
		}
		apperrors.InternalError(ctx, "")
		return
	}
	respondList(ctx, categories, params.Pagination.MetaFor(total))
}

// Tree godoc
// @Summary List the category tree
// @Tags categories
// @Produce json
// @Success 200 {object} gin.H{data=[]model.Category}
// @Router /api/v1/categories/tree [get]
func (c *CategoryController) Tree(ctx *gin.Context) {
	categories, err := c.service.Tree()
	if err != nil {
		apperrors.InternalError(ctx, "")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": categories})
}

// Get godoc
// @Summary Get one category with its children
// @Tags categories
// @Produce json
// @Param id path int true "category id"
// @Success 200 {object} model.Category
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/categories/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	category, err := c.service.GetByID(id)
	if err != nil {
		respondCategoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body model.CreateCategoryRequest true "category payload"
// @Success 201 {object} model.Category
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req model.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	category, err := c.service.Create(&req)
	if err != nil {
		respondCategoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// Update godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "category id"
// @Param request body model.UpdateCategoryRequest true "fields to change"
// @Success 200 {object} model.Category
// @Security BearerAuth
// @Router /api/v1/categories/{id} [patch]
func (c *CategoryController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req model.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	category, err := c.service.Update(id, &req)
	if err != nil {
		respondCategoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// Delete godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Param id path int true "category id"
// @Success 200 {object} gin.H{message=string}
// @Security BearerAuth
// @Router /api/v1/categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(id); err != nil {
		respondCategoryError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
