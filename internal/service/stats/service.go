package stats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"bumblebee-api/internal/model"
	"bumblebee-api/internal/repository"
)

const (
	cacheKey = "dashboard:stats"
	cacheTTL = 30 * time.Second
)

type Service struct {
	statsRepo *repository.StatsRepository
	rdb       *redis.Client
	logger    *zap.Logger
}

func NewService(statsRepo *repository.StatsRepository, rdb *redis.Client, logger *zap.Logger) *Service {
	return &Service{
		statsRepo: statsRepo,
		rdb:       rdb,
		logger:    logger,
	}
}

// Dashboard returns the aggregate counts, served from a short-lived
// redis cache when possible. Cache failures fall through to the database.
func (s *Service) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var stats model.DashboardStats
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := s.statsRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
			s.logger.Warn("failed to cache dashboard stats", zap.Error(err))
		}
	}

	return stats, nil
}
