package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"insureportal/internal/adapters/persistence/models"
	"insureportal/internal/core/domain"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// dashboardCacheKey is the Redis key holding the cached stats payload.
const dashboardCacheKey = "dashboard:stats"

// dashboardCacheTTL bounds staleness of the admin dashboard. Counts
// are informational, so a short window is fine.
const dashboardCacheTTL = 30 * time.Second

// DashboardStats is the admin overview payload
type DashboardStats struct {
	TotalUsers     int64   `json:"total_users"`
	TotalPolicies  int64   `json:"total_policies"`
	ActivePolicies int64   `json:"active_policies"`
	TotalClaims    int64   `json:"total_claims"`
	PendingClaims  int64   `json:"pending_claims"`
	ApprovedClaims int64   `json:"approved_claims"`
	RejectedClaims int64   `json:"rejected_claims"`
	PaidClaims     int64   `json:"paid_claims"`
	TotalPayments  int64   `json:"total_payments"`
	PaymentsVolume float64 `json:"payments_volume"`
	GeneratedAt    string  `json:"generated_at"`
}

// DashboardService aggregates cross-table counts for the admin
// overview, with a short Redis cache in front of the database.
type DashboardService struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewDashboardService creates a new dashboard service. A nil cache
// client disables caching; every read hits the database.
func NewDashboardService(db *gorm.DB, cache *redis.Client) *DashboardService {
	return &DashboardService{db: db, cache: cache}
}

// Stats returns the dashboard counters, served from cache when fresh
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, dashboardCacheKey).Result()
		if err == nil {
			var stats DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		} else if err != redis.Nil {
			log.Printf("⚠️ Dashboard cache read failed: %v", err)
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL).Err(); err != nil {
				log.Printf("⚠️ Dashboard cache write failed: %v", err)
			}
		}
	}

	return stats, nil
}

func (s *DashboardService) compute(ctx context.Context) (*DashboardStats, error) {
	db := s.db.WithContext(ctx)
	stats := &DashboardStats{GeneratedAt: time.Now().UTC().Format(time.RFC3339)}

	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Policy{}).Count(&stats.TotalPolicies).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Policy{}).Where("is_active = ?", true).Count(&stats.ActivePolicies).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Claim{}).Count(&stats.TotalClaims).Error; err != nil {
		return nil, err
	}

	claimCounts := map[string]*int64{
		string(domain.ClaimStatusPending):  &stats.PendingClaims,
		string(domain.ClaimStatusApproved): &stats.ApprovedClaims,
		string(domain.ClaimStatusRejected): &stats.RejectedClaims,
		string(domain.ClaimStatusPaid):     &stats.PaidClaims,
	}
	for status, dest := range claimCounts {
		if err := db.Model(&models.Claim{}).Where("status = ?", status).Count(dest).Error; err != nil {
			return nil, err
		}
	}

	if err := db.Model(&models.Payment{}).Count(&stats.TotalPayments).Error; err != nil {
		return nil, err
	}
	row := db.Model(&models.Payment{}).
		Where("status = ?", string(domain.PaymentStatusCompleted)).
		Select("COALESCE(SUM(amount), 0)").
		Row()
	if err := row.Scan(&stats.PaymentsVolume); err != nil {
		return nil, err
	}

	return stats, nil
}
