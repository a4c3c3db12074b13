package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
	"github.com/cinelog/cinelog-backend/internal/storage"
)

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(storage *storage.S3Storage) *UploadController {
	return &UploadController{storage: storage}
}

type PresignUploadRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Size        int64  `json:"size" binding:"required,min=1"`
	Folder      string `json:"folder" binding:"required"`
}

// Presign godoc
// @Summary Request a presigned S3 upload URL
// @Description The client PUTs the file to upload_url and stores file_url.
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body PresignUploadRequest true "upload metadata"
// @Success 200 {object} storage.PresignedUpload
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/uploads/presign [post]
func (c *UploadController) Presign(ctx *gin.Context) {
	var req PresignUploadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	if !storage.UploadFolders[req.Folder] {
		apperrors.BadRequest(ctx, apperrors.ValidationInvalidInput, "unknown upload folder")
		return
	}
	if err := c.storage.ValidateUpload(req.ContentType, req.Size); err != nil {
		code := apperrors.UploadInvalidFileType
		if strings.Contains(err.Error(), "size") {
			code = apperrors.UploadFileTooLarge
		}
		apperrors.BadRequest(ctx, code, err.Error())
		return
	}

	upload, err := c.storage.PresignUpload(req.Filename, req.ContentType, req.Folder)
	if err != nil {
		apperrors.RespondWithError(ctx, http.StatusInternalServerError, apperrors.UploadFailed, "failed to presign upload")
		return
	}
	ctx.JSON(http.StatusOK, upload)
}
