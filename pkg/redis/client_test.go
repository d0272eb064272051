package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient("http://localhost:6379")
	assert.ErrorContains(t, err, "invalid REDIS_URL")
}

func TestNewClient_UnreachableIsLazy(t *testing.T) {
	client, err := NewClient("redis://127.0.0.1:1/0")
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.Error(t, client.Ping(ctx).Err())
}
