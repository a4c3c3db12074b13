package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cinelog/cinelog-backend/internal/app/repository"
	"github.com/cinelog/cinelog-backend/pkg/logger"
)

// PasswordResetScheduler purges expired password reset tokens once a day.
type PasswordResetScheduler struct {
	cron      *cron.Cron
	resetRepo repository.PasswordResetRepository
}

func NewPasswordResetScheduler(resetRepo repository.PasswordResetRepository) *PasswordResetScheduler {
	return &PasswordResetScheduler{
		cron:      cron.New(),
		resetRepo: resetRepo,
	}
}

func (s *PasswordResetScheduler) Start() error {
	// Daily at 03:00, server local time.
	_, err := s.cron.AddFunc("0 3 * * *", func() {
		deleted, err := s.resetRepo.DeleteExpired(time.Now())
		if err != nil {
			logger.Error("Failed to purge expired password reset tokens", err)
			return
		}
		logger.Info("Purged expired password reset tokens", map[string]interface{}{
			"deleted": deleted,
		})
	})
	if err != nil {
		logger.Error("Failed to register password reset purge job", err)
		return err
	}

	s.cron.Start()
	logger.Info("Password reset scheduler started (daily at 3:00 AM)", nil)
	return nil
}

func (s *PasswordResetScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Password reset scheduler stopped", nil)
}
