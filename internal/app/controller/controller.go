package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog-backend/internal/app/query"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
)

// parseIDParam reads a positive integer path parameter, answering 400 on
// anything else. The caller must return when ok is false.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidID, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// respondList writes the standard paged envelope.
func respondList(ctx *gin.Context, data interface{}, meta query.Meta) {
	ctx.JSON(http.StatusOK, gin.H{
		"data":      data,
		"total":     meta.Total,
		"page":      meta.Page,
		"per_page":  meta.PerPage,
		"last_page": meta.LastPage,
	})
}

// respondSortError answers an unknown sort token with the accepted set,
// reporting whether err was a sort error.
func respondSortError(ctx *gin.Context, err error) bool {
	var sortErr *query.InvalidSortError
	if errors.As(err, &sortErr) {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidSort, sortErr.Error())
		return true
	}
	return false
}
