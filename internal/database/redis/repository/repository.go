package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 Redis repository
type RedisRepository struct {
	rateLimitRepo *RateLimiterRepository
	sessionRepo   *SessionRepository
}

// 建立 Redis repository 物件
func NewRedisRepository(
	rateLimitRepo *RateLimiterRepository,
	sessionRepo *SessionRepository,
) *RedisRepository {
	return &RedisRepository{
		rateLimitRepo: rateLimitRepo,
		sessionRepo:   sessionRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewRateLimiterRepository,
	NewSessionRepository,
	NewRedisRepository)
