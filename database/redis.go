// file: database/redis.go
package database

import (
	"context"
	"time"

	"github.com/Julius10-hub/UEB/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RDB 保存服务端会话，key 形如 ueb:session:<id>
var RDB *redis.Client

func InitRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.C.RedisAddr,
		Password: config.C.RedisPassword,
		DB:       0,
		PoolSize: 100,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := RDB.Ping(ctx).Result(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}

	logrus.Info("Redis connection successfully established")
}
