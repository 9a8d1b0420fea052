package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPgxPool_EmptyURL(t *testing.T) {
	pool, err := NewPgxPool(context.Background(), "")
	assert.Nil(t, pool)
	assert.Error(t, err)
}

func TestNewRedisClient_EmptyURLDisablesRedis(t *testing.T) {
	client, err := NewRedisClient(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "http://not-redis")
	assert.Error(t, err)
}
