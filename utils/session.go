// file: utils/session.go
package utils

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Julius10-hub/UEB/database"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionCookie 是客户端会话 cookie 的名字
const SessionCookie = "ueb_session"

const sessionKeyPrefix = "ueb:session:"

var ErrSessionNotFound = errors.New("session not found")

type SessionData struct {
	UserID  uint32 `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

// CreateSession 在 Redis 中创建一条带 TTL 的服务端会话，返回会话 ID
func CreateSession(ctx context.Context, userID uint32, isAdmin bool, ttl time.Duration) (string, error) {
	sid := uuid.New().String()
	payload, err := json.Marshal(SessionData{UserID: userID, IsAdmin: isAdmin})
	if err != nil {
		return "", err
	}
	if err := database.RDB.Set(ctx, sessionKeyPrefix+sid, payload, ttl).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

func GetSession(ctx context.Context, sid string) (*SessionData, error) {
	raw, err := database.RDB.Get(ctx, sessionKeyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var data SessionData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func DestroySession(ctx context.Context, sid string) error {
	return database.RDB.Del(ctx, sessionKeyPrefix+sid).Err()
}
