package session

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/student-admin-panel/pkg/config"
)

// Store is the narrow session surface handed to handlers and middleware.
// Presence of a token is the sole authentication signal; no validation or
// expiry check happens here. A stale token only surfaces when an upstream
// call rejects it.
type Store interface {
	// Token returns the current bearer token, or "" when unauthenticated.
	Token(c *gin.Context) string
	// Login persists the token for subsequent requests.
	Login(c *gin.Context, token string) error
	// Logout clears the token and its persisted copy.
	Logout(c *gin.Context)
}

// New selects the configured backend.
func New(cfg config.SessionConfig, redisClient *redis.Client) Store {
	if cfg.Backend == config.SessionBackendRedis && redisClient != nil {
		return NewRedisStore(cfg, redisClient)
	}
	return NewCookieStore(cfg)
}
