package model

import (
	"time"

	"gorm.io/gorm"
)

// Review is a scored write-up of a movie. One review per user per movie.
// Scores are stored as integers 0-100; clients see a 0-10 scale.
type Review struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Content string `gorm:"type:text;not null" json:"content"`
	Score   int    `gorm:"not null" json:"-"` // 0-100

	UserID  uint `gorm:"not null;uniqueIndex:idx_user_movie_review" json:"user_id"`
	MovieID uint `gorm:"not null;uniqueIndex:idx_user_movie_review" json:"movie_id"`

	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Movie *Movie `gorm:"foreignKey:MovieID" json:"movie,omitempty"`

	Replies []Reply `gorm:"foreignKey:ReviewID" json:"-"`

	// Populated by list/detail queries only
	LikeCount    *int64 `gorm:"->;-:migration" json:"like_count,omitempty"`
	DislikeCount *int64 `gorm:"->;-:migration" json:"dislike_count,omitempty"`
	ReplyCount   *int64 `gorm:"->;-:migration" json:"reply_count,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewResponse exposes the score on the client-facing 0-10 scale.
type ReviewResponse struct {
	Review
	Score float64 `json:"score"`
}

func (r Review) ToResponse() ReviewResponse {
	return ReviewResponse{
		Review: r,
		Score:  float64(r.Score) / 10,
	}
}

// CreateReviewRequest posts a review of a movie. Score is on the 0-10 scale.
type CreateReviewRequest struct {
	Content string  `json:"content" binding:"required,min=1"`
	Score   float64 `json:"score" binding:"min=0,max=10"`
}

// UpdateReviewRequest edits the caller's own review.
type UpdateReviewRequest struct {
	Content *string  `json:"content,omitempty" binding:"omitempty,min=1"`
	Score   *float64 `json:"score,omitempty" binding:"omitempty,min=0,max=10"`
}
