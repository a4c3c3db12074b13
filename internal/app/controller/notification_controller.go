package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog-backend/internal/app/query"
	"github.com/cinelog/cinelog-backend/internal/app/service"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
	"github.com/cinelog/cinelog-backend/internal/middleware"
	"github.com/cinelog/cinelog-backend/internal/websocket"
)

type NotificationController struct {
	service service.NotificationService
	hub     *websocket.Hub
}

func NewNotificationController(service service.NotificationService, hub *websocket.Hub) *NotificationController {
	return &NotificationController{service: service, hub: hub}
}

// List godoc
// @Summary List the authenticated user's notifications
// @Tags notifications
// @Produce json
// @Param unread query bool false "only unread notifications"
// @Success 200 {object} gin.H{data=[]model.Notification,total=int}
// @Security BearerAuth
// @Router /api/v1/notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}

	p := query.PaginationFromValues(ctx.Request.URL.Query())
	unreadOnly := ctx.Query("unread") == "true"

	notifications, total, err := c.service.List(userID, unreadOnly, p)
	if err != nil {
		apperrors.InternalError(ctx, "")
		return
	}
	respondList(ctx, notifications, p.MetaFor(total))
}

// UnreadCount godoc
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} gin.H{count=int}
// @Security BearerAuth
// @Router /api/v1/notifications/unread-count [get]
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}

	count, err := c.service.CountUnread(userID)
	if err != nil {
		apperrors.InternalError(ctx, "")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Produce json
// @Param id path int true "notification id"
// @Success 200 {object} gin.H{message=string}
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/notifications/{id}/read [post]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.MarkRead(id, userID); err != nil {
		if err == service.ErrNotificationNotFound {
			apperrors.NotFound(ctx, apperrors.NotificationNotFound, err.Error())
			return
		}
		apperrors.InternalError(ctx, "")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "marked as read"})
}

// MarkAllRead godoc
// @Summary Mark every notification as read
// @Tags notifications
// @Produce json
// @Success 200 {object} gin.H{message=string}
// @Security BearerAuth
// @Router /api/v1/notifications/read-all [post]
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}

	if err := c.service.MarkAllRead(userID); err != nil {
		apperrors.InternalError(ctx, "")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "all notifications marked as read"})
}

// Delete godoc
// @Summary Delete one notification
// @Tags notifications
// @Produce json
// @Param id path int true "notification id"
// @Success 200 {object} gin.H{message=string}
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/notifications/{id} [delete]
func (c *NotificationController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(id, userID); err != nil {
		if err == service.ErrNotificationNotFound {
			apperrors.NotFound(ctx, apperrors.NotificationNotFound, err.Error())
			return
		}
		apperrors.InternalError(ctx, "")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "notification deleted"})
}

// Stream godoc
// @Summary Open the live notification websocket
// @Tags notifications
// @Success 101 {string} string "switching protocols"
// @Security BearerAuth
// @Router /api/v1/notifications/stream [get]
func (c *NotificationController) Stream(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		apperrors.Unauthorized(ctx, "")
		return
	}

	if err := websocket.ServeWS(c.hub, ctx.Writer, ctx.Request, userID); err != nil {
		apperrors.InternalError(ctx, "websocket upgrade failed")
	}
}
