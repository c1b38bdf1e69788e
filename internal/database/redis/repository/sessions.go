package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"simpleeval/internal/core"
	client "simpleeval/internal/database/client"
	"simpleeval/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// SessionRepository 管理 refresh token 與登出黑名單
type SessionRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewSessionRepository(trace *telemetry.Trace, client *client.RedisClient) *SessionRepository {
	return &SessionRepository{trace: trace, client: client.Client()}
}

var ErrSessionNotFound = errors.New("session not found")

// StoreRefreshToken 以 tokenID 為 key 寫入 userID，TTL 到期自動失效
func (repository *SessionRepository) StoreRefreshToken(contextValue context.Context, tokenIdentifier string, userIdentifier string, timeToLive time.Duration) (returnedError error) {
	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	redisKey := fmt.Sprintf("%s:%s", core.RedisKeyRefreshToken, tokenIdentifier)
	returnedError = repository.client.Set(contextValue, redisKey, userIdentifier, timeToLive).Err()
	return returnedError
}

// GetRefreshToken 查詢 refresh token 對應的 userID，不存在回傳 ErrSessionNotFound
func (repository *SessionRepository) GetRefreshToken(contextValue context.Context, tokenIdentifier string) (returnedUserID string, returnedError error) {
	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	redisKey := fmt.Sprintf("%s:%s", core.RedisKeyRefreshToken, tokenIdentifier)
	value, getError := repository.client.Get(contextValue, redisKey).Result()
	if getError == redis.Nil {
		returnedError = ErrSessionNotFound
		return "", returnedError
	}
	if getError != nil {
		returnedError = getError
		return "", returnedError
	}
	return value, nil
}

// DeleteRefreshToken 作廢 refresh token（登出或換發後呼叫）
func (repository *SessionRepository) DeleteRefreshToken(contextValue context.Context, tokenIdentifier string) (returnedError error) {
	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	redisKey := fmt.Sprintf("%s:%s", core.RedisKeyRefreshToken, tokenIdentifier)
	returnedError = repository.client.Del(contextValue, redisKey).Err()
	return returnedError
}

// BlacklistToken 將 access token 加入黑名單，TTL 對齊 token 剩餘效期即可
func (repository *SessionRepository) BlacklistToken(contextValue context.Context, tokenIdentifier string, timeToLive time.Duration) (returnedError error) {
	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	if timeToLive <= 0 {
		// token 已過期，不需要留紀錄
		return nil
	}
	redisKey := fmt.Sprintf("%s:%s", core.RedisKeyBlacklist, tokenIdentifier)
	returnedError = repository.client.Set(contextValue, redisKey, 1, timeToLive).Err()
	return returnedError
}

// IsTokenBlacklisted 檢查 access token 是否已登出
func (repository *SessionRepository) IsTokenBlacklisted(contextValue context.Context, tokenIdentifier string) (returnedBlacklisted bool, returnedError error) {
	contextValue, _, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	redisKey := fmt.Sprintf("%s:%s", core.RedisKeyBlacklist, tokenIdentifier)
	count, existsError := repository.client.Exists(contextValue, redisKey).Result()
	if existsError != nil {
		returnedError = existsError
		return false, returnedError
	}
	return count > 0, nil
}
