package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/cinelog/cinelog-backend/internal/app/model"
)

type PasswordResetRepository interface {
	Create(reset *model.PasswordReset) error
	GetByToken(token string) (*model.PasswordReset, error)
	MarkUsed(id uint) error
	DeleteForUser(userID uint) error
	DeleteExpired(before time.Time) (int64, error)
}

type passwordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) Create(reset *model.PasswordReset) error {
	return r.db.Create(reset).Error
}

func (r *passwordResetRepository) GetByToken(token string) (*model.PasswordReset, error) {
	var reset model.PasswordReset
	if err := r.db.Where("token = ?", token).First(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *passwordResetRepository) MarkUsed(id uint) error {
	return r.db.Model(&model.PasswordReset{}).Where("id = ?", id).Update("used", true).Error
}

// DeleteForUser drops any outstanding tokens before issuing a new one.
func (r *passwordResetRepository) DeleteForUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.PasswordReset{}).Error
}

// DeleteExpired removes tokens that expired before the cutoff. Called by
// the scheduler.
func (r *passwordResetRepository) DeleteExpired(before time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", before).Delete(&model.PasswordReset{})
	return result.RowsAffected, result.Error
}
