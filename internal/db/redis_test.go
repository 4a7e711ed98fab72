package db

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration test (requires running Redis)
func TestRedisSlot_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping integration test")
	}
	ctx := context.Background()
	client, err := NewRedisClient(ctx, addr, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		t.Skipf("failed to connect: %v, skipping integration test", err)
	}
	defer client.Close()

	slot := &RedisSlot{Client: client, Key: "test:tripplan:slot"}
	client.Del(ctx, slot.Key)

	_, err = slot.Read(ctx)
	assert.True(t, errors.Is(err, ErrSlotEmpty))

	require.NoError(t, slot.Write(ctx, []byte(`{"days":[]}`)))
	data, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"days":[]}`, string(data))
}
