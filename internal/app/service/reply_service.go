package service

import (
	"errors"
	"fmt"

	"github.com/cinelog/cinelog-backend/internal/app/model"
	"github.com/cinelog/cinelog-backend/internal/app/query"
	"github.com/cinelog/cinelog-backend/internal/app/repository"
	apperrors "github.com/cinelog/cinelog-backend/internal/errors"
	"github.com/cinelog/cinelog-backend/pkg/logger"
)

var (
	ErrReplyNotFound = errors.New("reply not found")

	// ErrReplyParentInvalid means the request named zero or two parents;
	// a reply hangs off exactly one review or one other reply.
	ErrReplyParentInvalid = errors.New("exactly one of review_id and reply_id must be set")

	// ErrReplyNotOwned covers both a missing reply and someone else's
	// reply, mirroring ErrReviewNotOwned.
	ErrReplyNotOwned = errors.New("reply not found or not created by you")
)

type ReplyService interface {
	Create(userID uint, req *model.CreateReplyRequest) (*model.Reply, error)
	GetByID(id uint) (*model.Reply, error)
	ListForReview(reviewID uint, params query.Params) ([]model.Reply, int64, error)
	ListChildren(parentID uint, params query.Params) ([]model.Reply, int64, error)
	Update(id, userID uint, role model.UserRole, req *model.UpdateReplyRequest) (*model.Reply, error)
	Delete(id, userID uint, role model.UserRole) error
}

type replyService struct {
	replyRepo     repository.ReplyRepository
	reviewRepo    repository.ReviewRepository
	notifications NotificationService
}

func NewReplyService(
	replyRepo repository.ReplyRepository,
	reviewRepo repository.ReviewRepository,
	notifications NotificationService,
) ReplyService {
	return &replyService{
		replyRepo:     replyRepo,
		reviewRepo:    reviewRepo,
		notifications: notifications,
	}
}

func (s *replyService) Create(userID uint, req *model.CreateReplyRequest) (*model.Reply, error) {
	if (req.ReviewID == nil) == (req.ReplyID == nil) {
		return nil, ErrReplyParentInvalid
	}

	reply := &model.Reply{
		Content: req.Content,
		UserID:  userID,
	}

	var recipient uint
	var kind model.NotificationType

	if req.ReviewID != nil {
		review, err := s.reviewRepo.GetByID(*req.ReviewID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return nil, ErrReviewNotFound
			}
			return nil, err
		}
		reply.ReviewID = &review.ID
		recipient = review.UserID
		kind = model.NotificationReviewReply
	} else {
		parent, err := s.replyRepo.GetByID(*req.ReplyID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				return nil, ErrReplyNotFound
			}
			return nil, err
		}
		reply.ParentID = &parent.ID
		recipient = parent.UserID
		kind = model.NotificationReplyReply
	}

	if err := s.replyRepo.Create(reply); err != nil {
		return nil, err
	}

	if recipient != userID && s.notifications != nil {
		notification := &model.Notification{
			UserID:          recipient,
			Type:            kind,
			Message:         notificationMessage(kind),
			RelatedReviewID: reply.ReviewID,
			RelatedReplyID:  reply.ParentID,
		}
		if err := s.notifications.Notify(notification); err != nil {
			// The reply is already in; losing the notification is not fatal.
			logger.Warn("reply notification failed", map[string]interface{}{
				"reply_id": reply.ID,
				"error":    err.Error(),
			})
		}
	}

	return s.replyRepo.GetByID(reply.ID)
}

func notificationMessage(kind model.NotificationType) string {
	switch kind {
	case model.NotificationReviewReply:
		return "someone replied to your review"
	case model.NotificationReplyReply:
		return "someone replied to your reply"
	}
	return fmt.Sprintf("notification: %s", kind)
}

func (s *replyService) GetByID(id uint) (*model.Reply, error) {
	reply, err := s.replyRepo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrReplyNotFound
		}
		return nil, err
	}
	return reply, nil
}

func (s *replyService) ListForReview(reviewID uint, params query.Params) ([]model.Reply, int64, error) {
	exists, err := s.reviewRepo.Exists(reviewID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, ErrReviewNotFound
	}
	return s.replyRepo.ListForReview(reviewID, params)
}

func (s *replyService) ListChildren(parentID uint, params query.Params) ([]model.Reply, int64, error) {
	exists, err := s.replyRepo.Exists(parentID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, ErrReplyNotFound
	}
	return s.replyRepo.ListChildren(parentID, params)
}

// Update edits the caller's own reply; admins can edit anyone's.
func (s *replyService) Update(id, userID uint, role model.UserRole, req *model.UpdateReplyRequest) (*model.Reply, error) {
	reply, err := s.replyRepo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			if role == model.RoleAdmin {
				return nil, ErrReplyNotFound
			}
			return nil, ErrReplyNotOwned
		}
		return nil, err
	}
	if reply.UserID != userID && role != model.RoleAdmin {
		return nil, ErrReplyNotOwned
	}

	reply.Content = req.Content
	if err := s.replyRepo.Update(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// Delete removes the caller's own reply; admins can remove anyone's.
// Children stay in place and keep rendering under the removed parent's id.
func (s *replyService) Delete(id, userID uint, role model.UserRole) error {
	var err error
	if role == model.RoleAdmin {
		err = s.replyRepo.Delete(id)
	} else {
		err = s.replyRepo.DeleteOwned(id, userID)
	}
	if err != nil {
		if apperrors.IsNotFound(err) {
			if role == model.RoleAdmin {
				return ErrReplyNotFound
			}
			return ErrReplyNotOwned
		}
		return err
	}
	return nil
}
