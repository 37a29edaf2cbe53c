package infra

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"menuboard/internal/config"
)

func TestNewRedisClient_Ping(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := &config.Config{Draft: config.DraftConfig{RedisAddr: mr.Addr()}}
	client := NewRedisClient(cfg)
	defer client.Close()

	require.NoError(t, PingRedis(context.Background(), client))

	mr.Close()
	require.Error(t, PingRedis(context.Background(), client))
}
