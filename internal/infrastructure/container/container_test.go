package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harunmuya/gs-app/internal/config"
)

func TestNewContainer_UnknownPolicyOpensNothing(t *testing.T) {
	// The database host is unreachable; an error naming the policy shows
	// construction stopped before any connection was attempted.
	cfg := &config.Config{
		Database: config.DatabaseConfig{Host: "db.invalid", Port: 1},
		Redis:    config.RedisConfig{Host: "redis.invalid", Port: 1},
		Matching: config.MatchingConfig{Policy: "bogus"},
	}

	c, err := NewContainer(cfg)
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), `unknown match policy "bogus"`)
}
