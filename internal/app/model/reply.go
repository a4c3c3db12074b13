package model

import (
	"time"

	"gorm.io/gorm"
)

// Reply is a threaded comment. A top-level reply points at a review, a
// nested reply points at its parent reply; exactly one of the two is set.
type Reply struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Content string `gorm:"type:varchar(1000);not null" json:"content"`

	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	ReviewID *uint   `gorm:"index" json:"review_id,omitempty"`
	Review   *Review `gorm:"foreignKey:ReviewID" json:"-"`

	ParentID *uint  `gorm:"index" json:"parent_id,omitempty"`
	Parent   *Reply `gorm:"foreignKey:ParentID" json:"-"`

	Children []Reply `gorm:"foreignKey:ParentID" json:"-"`

	// Populated by list/detail queries only
	LikeCount    *int64 `gorm:"->;-:migration" json:"like_count,omitempty"`
	DislikeCount *int64 `gorm:"->;-:migration" json:"dislike_count,omitempty"`
	ReplyCount   *int64 `gorm:"->;-:migration" json:"reply_count,omitempty"`
}

func (Reply) TableName() string {
	return "replies"
}

// CreateReplyRequest posts a reply under a review or under another reply.
// Exactly one of review_id and reply_id must be given.
type CreateReplyRequest struct {
	Content  string `json:"content" binding:"required,min=1,max=1000"`
	ReviewID *uint  `json:"review_id,omitempty"`
	ReplyID  *uint  `json:"reply_id,omitempty"`
}

// UpdateReplyRequest edits the caller's own reply.
type UpdateReplyRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}
