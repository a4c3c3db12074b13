package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
	"github.com/cinelog/cinelog-backend/internal/app/service"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
)

type MovieController struct {
	service service.MovieService
}

func NewMovieController(service service.MovieService) *MovieController {
	return &MovieController{service: service}
}

func respondMovieError(ctx *gin.Context, err error) {
	switch err {
	case service.ErrMovieNotFound:
		apperrors.NotFound(ctx, apperrors.MovieNotFound, err.Error())
	case service.ErrCategoryNotFound:
		apperrors.NotFound(ctx, apperrors.CategoryNotFound, err.Error())
	case service.ErrPersonNotFound:
		apperrors.NotFound(ctx, apperrors.PersonNotFound, err.Error())
	case service.ErrMovieURLExists:
		apperrors.Conflict(ctx, apperrors.MovieURLExists, err.Error())
	case service.ErrTermNotFound:
		apperrors.NotFound(ctx, apperrors.TermNotFound, err.Error())
	case service.ErrTermAlreadyAttached:
		apperrors.Conflict(ctx, apperrors.TermAlreadyAttached, err.Error())
	case service.ErrTermNotAttached:
		apperrors.BadRequest(ctx, apperrors.TermNotAttached, err.Error())
	case service.ErrInvalidStaffJob:
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidJob, err.Error())
	case service.ErrStaffAlreadyAssigned:
		apperrors.Conflict(ctx, apperrors.StaffAlreadyAssigned, err.Error())
	case service.ErrStaffNotAssigned:
		apperrors.BadRequest(ctx, apperrors.StaffNotAssigned, err.Error())
	default:
		apperrors.InternalError(ctx, "")
	}
}

// ==================== Movie APIs ====================

// List godoc
// @Summary List movies
// @Description Supports filtering (search_term, url, category, release_date,
// @Description score, likes_count, dislikes_count, reviews_count), sorting and paging.
// @Tags movies
// @Produce json
// @Param sort query string false "sort token"
// @Param page query int false "page number"
// @Param per_page query int false "page size, capped at 100"
// @Success 200 {object} gin.H{data=[]model.MovieResponse,total=int}
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/v1/movies [get]
func (c *MovieController) List(ctx *gin.Context) {
	params := query.ParamsFromValues(ctx.Request.URL.Query())

	movies, total, err := c.service.List(params)
	if err != nil {
		if respondSortError(ctx, err) {
			return
		}
		apperrors.InternalError(ctx, "")
		return
	}

	responses := make([]model.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		responses = append(responses, movie.ToResponse())
	}
	respondList(ctx, responses, params.Pagination.MetaFor(total))
}

// Get godoc
// @Summary Get one movie by id
// @Tags movies
// @Produce json
// @Param id path int true "movie id"
// @Success 200 {object} model.MovieResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/movies/{id} [get]
func (c *MovieController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	movie, err := c.service.GetByID(id)
	if err != nil {
		respondMovieError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movie.ToResponse())
}

// GetByURL godoc
// @Summary Get one movie by its url slug
// @Tags movies
// @Produce json
// @Param url path string true "movie url slug"
// @Success 200 {object} model.MovieResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/movies/by-url/{url} [get]
func (c *MovieController) GetByURL(ctx *gin.Context) {
	movie, err := c.service.GetByURL(ctx.Param("url"))
	if err != nil {
		respondMovieError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movie.ToResponse())
}

// Create godoc
// @Summary Create a movie
// @Tags movies
// @Accept json
// @Produce json
// @Param request body model.CreateMovieRequest true "movie payload"
// @Success 201 {object} model.Movie
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/movies [post]
func (c *MovieController) Create(ctx *gin.Context) {
	var req model.CreateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	movie, err := c.service.Create(&req)
	if err != nil {
		respondMovieError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, movie)
}

// Update godoc
// @Summary Update a movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "movie id"
// @Param request body model.UpdateMovieRequest true "fields to change"
// @Success 200 {object} model.Movie
// @Security BearerAuth
// @Router /api/v1/movies/{id} [patch]
func (c *MovieController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req model.UpdateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	movie, err := c.service.Update(id, &req)
	if err != nil {
		respondMovieError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movie)
}

// Delete godoc
// @Summary Delete a movie
// @Tags movies
// @Produce json
// @Param id path int true "movie id"
// @Success 200 {object} gin.H{message=string}
// @Security BearerAuth
// @Router /api/v1/movies/{id} [delete]
func (c *MovieController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(id); err != nil {
		respondMovieError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "movie deleted"})
}

// ==================== Taxonomy APIs ====================

type attachFunc func(movieID uint, name string) (interface{}, error)
type detachFunc func(movieID, termID uint) error

func (c *MovieController) attachTerm(ctx *gin.Context, attach attachFunc) {
	movieID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req model.AttachTermRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	term, err := attach(movieID, req.Name)
	if err != nil {
		respondMovieError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, term)
}

func (c *MovieController) detachTerm(ctx *gin.Context, paramName string, detach detachFunc) {
	movieID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	termID, ok := parseIDParam(ctx, paramName)
	if !ok {
		return
	}

	if err := detach(movieID, termID); err != nil {
		respondMovieError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "term detached"})
}

// AttachGenre godoc
// @Summary Attach a genre to a movie, creating the genre on first use
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "movie id"
// @Param request body model.AttachTermRequest true "term name"
// @Success 201 {object} model.Genre
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/movies/{id}/genres [post]
func (c *MovieController) AttachGenre(ctx *gin.Context) {
	c.attachTerm(ctx, func(movieID uint, name string) (interface{}, error) {
		return c.service.AttachGenre(movieID, name)
	})
}

// DetachGenre godoc
// @Summary Detach a genre from a movie
// @Tags movies
// @Produce json
// @Param id path int true "movie id"
// @Param genreID path int true "genre id"
// @Success 200 {object} gin.H{message=string}
// @Security BearerAuth
// @Router /api/v1/movies/{id}/genres/{genreID} [delete]
func (c *MovieController) DetachGenre(ctx *gin.Context) {
	c.detachTerm(ctx, "genreID", c.service.DetachGenre)
}

// AttachKeyword attaches a keyword, creating it on first use.
func (c *MovieController) AttachKeyword(ctx *gin.Context) {
	c.attachTerm(ctx, func(movieID uint, name string) (interface{}, error) {
		return c.service.AttachKeyword(movieID, name)
	})
}

func (c *MovieController) DetachKeyword(ctx *gin.Context) {
	c.detachTerm(ctx, "keywordID", c.service.DetachKeyword)
}

// AttachCompany attaches a production company, creating it on first use.
func (c *MovieController) AttachCompany(ctx *gin.Context) {
	c.attachTerm(ctx, func(movieID uint, name string) (interface{}, error) {
		return c.service.AttachCompany(movieID, name)
	})
}

func (c *MovieController) DetachCompany(ctx *gin.Context) {
	c.detachTerm(ctx, "companyID", c.service.DetachCompany)
}

// AttachLanguage links an existing language; unknown names are 404s.
func (c *MovieController) AttachLanguage(ctx *gin.Context) {
	c.attachTerm(ctx, func(movieID uint, name string) (interface{}, error) {
		return c.service.AttachLanguage(movieID, name)
	})
}

func (c *MovieController) DetachLanguage(ctx *gin.Context) {
	c.detachTerm(ctx, "languageID", c.service.DetachLanguage)
}

// AttachCountry links an existing country; unknown names are 404s.
func (c *MovieController) AttachCountry(ctx *gin.Context) {
	c.attachTerm(ctx, func(movieID uint, name string) (interface{}, error) {
		return c.service.AttachCountry(movieID, name)
	})
}

func (c *MovieController) DetachCountry(ctx *gin.Context) {
	c.detachTerm(ctx, "countryID", c.service.DetachCountry)
}

// ==================== Staff APIs ====================

// ListStaff godoc
// @Summary List the cast and crew of a movie
// @Tags movies
// @Produce json
// @Param id path int true "movie id"
// @Success 200 {object} gin.H{data=[]model.Staff}
// @Router /api/v1/movies/{id}/staff [get]
func (c *MovieController) ListStaff(ctx *gin.Context) {
	movieID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	staff, err := c.service.ListStaff(movieID)
	if err != nil {
		respondMovieError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": staff})
}

// AssignStaff godoc
// @Summary Assign a person to a movie in a job
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "movie id"
// @Param request body model.AssignStaffRequest true "person and job"
// @Success 201 {object} model.Staff
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/movies/{id}/staff [post]
func (c *MovieController) AssignStaff(ctx *gin.Context) {
	movieID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req model.AssignStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	staff, err := c.service.AssignStaff(movieID, &req)
	if err != nil {
		respondMovieError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, staff)
}

// RemoveStaff godoc
// @Summary Remove a person from a movie's staff for one job
// @Tags movies
// @Produce json
// @Param id path int true "movie id"
// @Param personID path int true "person id"
// @Param job query string true "job token"
// @Success 200 {object} gin.H{message=string}
// @Security BearerAuth
// @Router /api/v1/movies/{id}/staff/{personID} [delete]
func (c *MovieController) RemoveStaff(ctx *gin.Context) {
	movieID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	personID, ok := parseIDParam(ctx, "personID")
	if !ok {
		return
	}

	if err := c.service.RemoveStaff(movieID, personID, ctx.Query("job")); err != nil {
		respondMovieError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "staff removed"})
}
