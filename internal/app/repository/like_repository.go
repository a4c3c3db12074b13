package repository

import (
	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
)

type LikeRepository interface {
	Create(like *model.Like) error
	Get(userID uint, likeableType model.LikeableType, likeableID uint) (*model.Like, error)
	Delete(userID uint, likeableType model.LikeableType, likeableID uint) error
	Count(likeableType model.LikeableType, likeableID uint, isLiked bool) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(like *model.Like) error {
	return r.db.Create(like).Error
}

func (r *likeRepository) Get(userID uint, likeableType model.LikeableType, likeableID uint) (*model.Like, error) {
	var like model.Like
	err := r.db.Where("user_id = ? AND likeable_type = ? AND likeable_id = ?",
		userID, likeableType, likeableID).First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) Delete(userID uint, likeableType model.LikeableType, likeableID uint) error {
	result := r.db.Where("user_id = ? AND likeable_type = ? AND likeable_id = ?",
		userID, likeableType, likeableID).Delete(&model.Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *likeRepository) Count(likeableType model.LikeableType, likeableID uint, isLiked bool) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("likeable_type = ? AND likeable_id = ? AND is_liked = ?", likeableType, likeableID, isLiked).
		Count(&count).Error
	return count, err
}
