package redis

import (
	"context"
	"sync"
	"time"

	"afyacare-service/internal/app/contracts"

	goredis "github.com/redis/go-redis/v9"
)

type redisRepository struct {
	Client *goredis.Client
}

var (
	redisRepositoryInstance contracts.RedisRepository
	onceRedisRepository     sync.Once
)

func NewRedisRepository(client *goredis.Client) contracts.RedisRepository {
	onceRedisRepository.Do(func() {
		redisRepositoryInstance = &redisRepository{
			Client: client,
		}
	})
	return redisRepositoryInstance
}

func (repo *redisRepository) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return repo.Client.Set(ctx, key, value, expiration).Err()
}

func (repo *redisRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := repo.Client.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (repo *redisRepository) Delete(ctx context.Context, key string) error {
	return repo.Client.Del(ctx, key).Err()
}
