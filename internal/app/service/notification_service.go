package service

import (
	"errors"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
	"github.com/cinelog/cinelog-backend/internal/app/repository"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
	"github.com/cinelog/cinelog-backend/internal/websocket"
	"github.com/cinelog/cinelog-backend/pkg/logger"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService interface {
	Notify(notification *model.Notification) error
	List(userID uint, unreadOnly bool, p query.Pagination) ([]model.Notification, int64, error)
	CountUnread(userID uint) (int64, error)
	MarkRead(id, userID uint) error
	MarkAllRead(userID uint) error
	Delete(id, userID uint) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	hub              *websocket.Hub
}

// NewNotificationService wires persistence with the live push hub. hub
// may be nil, e.g. in tests; notifications are then store-only.
func NewNotificationService(notificationRepo repository.NotificationRepository, hub *websocket.Hub) NotificationService {
	return &notificationService{notificationRepo: notificationRepo, hub: hub}
}

// Notify stores the notification and pushes it to the recipient's open
// websocket connections, if any.
func (s *notificationService) Notify(notification *model.Notification) error {
	if err := s.notificationRepo.Create(notification); err != nil {
		return err
	}

	if s.hub != nil {
		if err := s.hub.SendToUser(notification.UserID, notification); err != nil {
			// Live push is best effort; the row is already stored.
			logger.Warn("websocket push failed", map[string]interface{}{
				"user_id": notification.UserID,
				"error":   err.Error(),
			})
		}
	}
	return nil
}

func (s *notificationService) List(userID uint, unreadOnly bool, p query.Pagination) ([]model.Notification, int64, error) {
	return s.notificationRepo.ListByUser(userID, unreadOnly, p)
}

func (s *notificationService) CountUnread(userID uint) (int64, error) {
	return s.notificationRepo.CountUnread(userID)
}

func (s *notificationService) MarkRead(id, userID uint) error {
	if err := s.notificationRepo.MarkRead(id, userID); err != nil {
		if apperrors.IsNotFound(err) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *notificationService) MarkAllRead(userID uint) error {
	return s.notificationRepo.MarkAllRead(userID)
}

func (s *notificationService) Delete(id, userID uint) error {
	if err := s.notificationRepo.Delete(id, userID); err != nil {
		if apperrors.IsNotFound(err) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}
