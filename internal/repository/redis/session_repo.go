package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

// SessionRepo хранит сессии в Redis: session:<id> -> id пользователя, с TTL.
type SessionRepo struct {
	client *clients.RedisClient
}

func NewSessionRepo(client *clients.RedisClient) *SessionRepo {
	return &SessionRepo{client: client}
}

func (s *SessionRepo) Create(ctx context.Context, sessionID string, userID int64, ttl time.Duration) error {
	if err := s.client.Client.Set(ctx, sessionKey(sessionID), userID, ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// GetUserID возвращает владельца сессии. Истёкшая или неизвестная сессия даёт e.ErrNotLoggedIn.
func (s *SessionRepo) GetUserID(ctx context.Context, sessionID string) (int64, error) {
	val, err := s.client.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, e.Wrap(whereami.WhereAmI(), e.ErrNotLoggedIn)
		}
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), fmt.Errorf("corrupted session %s: %w", sessionID, err))
	}

	return userID, nil
}

func (s *SessionRepo) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func sessionKey(id string) string {
	return "session:" + id
}
