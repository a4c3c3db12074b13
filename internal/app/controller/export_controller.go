package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog-backend/internal/app/service"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportController struct {
	service service.ExportService
}

func NewExportController(service service.ExportService) *ExportController {
	return &ExportController{service: service}
}

// ExportMovies godoc
// @Summary Download the movie catalog as an XLSX file
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/export/movies [get]
func (c *ExportController) ExportMovies(ctx *gin.Context) {
	buf, filename, err := c.service.ExportMovies()
	if err != nil {
		apperrors.RespondWithError(ctx, http.StatusInternalServerError,
			apperrors.InternalExportError, "failed to generate export")
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
