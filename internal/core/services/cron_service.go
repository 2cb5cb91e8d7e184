package services

import (
	"context"
	"log"
	"time"

	"insureportal/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs background maintenance jobs
type CronService struct {
	cron     *cron.Cron
	userRepo repositories.UserRepository
}

// NewCronService creates a new cron service
func NewCronService(userRepo repositories.UserRepository) *CronService {
	return &CronService{
		cron:     cron.New(),
		userRepo: userRepo,
	}
}

// Start registers the scheduled jobs and starts the scheduler
func (s *CronService) Start() error {
	// Expired password-reset tokens every 15 minutes. Expiry is also
	// enforced at lookup time; this just keeps stale digests out of
	// the table.
	if _, err := s.cron.AddFunc("*/15 * * * *", s.cleanupExpiredResetTokens); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("✅ Cron service started")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Cron service stopped")
}

func (s *CronService) cleanupExpiredResetTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cleared, err := s.userRepo.ClearExpiredResetTokens(ctx, time.Now())
	if err != nil {
		log.Printf("❌ Reset token cleanup failed: %v", err)
		return
	}
	if cleared > 0 {
		log.Printf("✅ Cleared %d expired password reset tokens", cleared)
	}
}
