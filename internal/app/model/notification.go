package model

import (
	"time"

	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationReviewReply NotificationType = "review_reply" // someone replied to your review
	NotificationReplyReply  NotificationType = "reply_reply"  // someone replied to your reply
)

// Notification is an in-app message, also pushed over websocket when the
// recipient is connected.
type Notification struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID  uint             `gorm:"not null;index" json:"user_id"`
	Type    NotificationType `gorm:"type:varchar(50);not null" json:"type"`
	Message string           `gorm:"type:text;not null" json:"message"`
	IsRead  bool             `gorm:"default:false;index" json:"is_read"`

	RelatedReviewID *uint `json:"related_review_id,omitempty"`
	RelatedReplyID  *uint `json:"related_reply_id,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}
