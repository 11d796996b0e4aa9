package session

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/student-admin-panel/pkg/config"
)

const (
	redisKeyPrefix   = "session:"
	redisDialTimeout = 5 * time.Second
)

// NewRedisClient dials the configured redis and verifies connectivity before
// the store backed by it is handed out.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(redisOptions(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func redisOptions(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// RedisStore keeps the upstream token server-side; the cookie only carries an
// opaque session id.
type RedisStore struct {
	name   string
	ttl    time.Duration
	client *redis.Client
}

// NewRedisStore constructs the redis-backed store.
func NewRedisStore(cfg config.SessionConfig, client *redis.Client) *RedisStore {
	return &RedisStore{
		name:   cfg.CookieName,
		ttl:    cfg.TTL,
		client: client,
	}
}

// Token resolves the session id cookie against redis.
func (s *RedisStore) Token(c *gin.Context) string {
	id, err := c.Cookie(s.name)
	if err != nil || id == "" {
		return ""
	}

	token, err := s.client.Get(c.Request.Context(), redisKeyPrefix+id).Result()
	if err != nil {
		return ""
	}
	return token
}

// Login allocates a fresh session id and stores the token under it.
func (s *RedisStore) Login(c *gin.Context, token string) error {
	id := uuid.NewString()
	if err := s.client.Set(c.Request.Context(), redisKeyPrefix+id, token, s.ttl).Err(); err != nil {
		return err
	}

	c.SetCookie(s.name, id, int(s.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Logout removes the server-side token and expires the cookie.
func (s *RedisStore) Logout(c *gin.Context) {
	if id, err := c.Cookie(s.name); err == nil && id != "" {
		s.client.Del(c.Request.Context(), redisKeyPrefix+id)
	}
	c.SetCookie(s.name, "", -1, "/", "", false, true)
}
