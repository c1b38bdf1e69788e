package database

import (
	client "simpleeval/internal/database/client"
	fluentdRepo "simpleeval/internal/database/fluentd/repository"
	mongoRepo "simpleeval/internal/database/mongodb/repository"
	redisRepo "simpleeval/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
