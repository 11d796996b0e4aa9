package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/student-admin-panel/pkg/config"
)

func TestRedisOptionsFromConfig(t *testing.T) {
	opts := redisOptions(config.RedisConfig{
		Host:     "cache.internal",
		Port:     6380,
		Password: "hunter2",
		DB:       3,
	})

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "hunter2", opts.Password)
	assert.Equal(t, 3, opts.DB)
}
