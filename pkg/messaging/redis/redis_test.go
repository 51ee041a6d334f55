package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestBroker(t *testing.T) (*miniredis.Miniredis, *RedisBroker) {
	t.Helper()
	mr := miniredis.RunT(t)
	broker, err := NewRedisBroker(Config{URL: "redis://" + mr.Addr()}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { broker.Close() })
	return mr, broker.(*RedisBroker)
}

func TestNewRedisBroker_InvalidURL(t *testing.T) {
	broker, err := NewRedisBroker(Config{URL: "not-a-redis-url"}, zerolog.Nop())
	assert.Nil(t, broker)
	assert.ErrorContains(t, err, "failed to parse Redis URL")
}

func TestNewRedisBroker_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	broker, err := NewRedisBroker(Config{URL: "redis://" + addr}, zerolog.Nop())
	assert.Nil(t, broker)
	assert.ErrorContains(t, err, "failed to connect to Redis")
}

func TestPublishSubscribe(t *testing.T) {
	_, broker := setupTestBroker(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := broker.Subscribe(ctx, "doacao.*")
	require.NoError(t, err)

	require.NoError(t, broker.Publish(ctx, "doacao.doadores.created", map[string]string{"resource_id": "1"}))
	require.NoError(t, broker.Publish(ctx, "outro.canal", "ignored"))

	select {
	case msg := <-msgs:
		assert.JSONEq(t, `{"resource_id":"1"}`, string(msg))
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}

	select {
	case msg := <-msgs:
		t.Fatalf("unexpected message %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscribeClosesOnCancel(t *testing.T) {
	_, broker := setupTestBroker(t)
	ctx, cancel := context.WithCancel(context.Background())

	msgs, err := broker.Subscribe(ctx, "doacao.*")
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-msgs:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed")
	}
}

func TestPublishUnmarshalable(t *testing.T) {
	_, broker := setupTestBroker(t)
	err := broker.Publish(context.Background(), "doacao.x", make(chan int))
	assert.ErrorContains(t, err, "failed to marshal message")
}
