package model

import "time"

type LikeableType string // kind of record a reaction points at

const (
	LikeableMovie  LikeableType = "movies"
	LikeableReview LikeableType = "reviews"
	LikeableReply  LikeableType = "replies"
)

// ParseLikeableType validates a target-type token from client input.
func ParseLikeableType(s string) (LikeableType, bool) {
	switch LikeableType(s) {
	case LikeableMovie, LikeableReview, LikeableReply:
		return LikeableType(s), true
	}
	return "", false
}

// Like is a single user reaction, positive or negative, at any likeable
// record. One row per (user, target); rows are never updated in place,
// so switching like to dislike means deleting the row and creating a
// fresh one.
type Like struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID       uint         `gorm:"not null;uniqueIndex:idx_user_likeable" json:"user_id"`
	LikeableType LikeableType `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_likeable" json:"likeable_type"`
	LikeableID   uint         `gorm:"not null;uniqueIndex:idx_user_likeable" json:"likeable_id"`
	IsLiked      bool         `gorm:"not null" json:"is_liked"` // true = like, false = dislike

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Like) TableName() string {
	return "likes"
}

// ReactionRequest records or clears a like/dislike.
type ReactionRequest struct {
	LikeableType string `json:"likeable_type" binding:"required,oneof=movies reviews replies"`
	LikeableID   uint   `json:"likeable_id" binding:"required"`
	IsLiked      *bool  `json:"is_liked" binding:"required"`
}
