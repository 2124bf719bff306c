package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leafsmp/internal/application/chat/dto"
	"leafsmp/internal/shared/logger"
)

func receive(t *testing.T, ch <-chan *dto.MessageDTO) *dto.MessageDTO {
	t.Helper()
	select {
	case m, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return m
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestLocalChatBus_DeliversOnlyMatchingTicket(t *testing.T) {
	bus := NewLocalChatBus(4, logger.NewDiscard())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	one, err := bus.Subscribe(ctx, 1)
	require.NoError(t, err)
	two, err := bus.Subscribe(ctx, 2)
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, &dto.MessageDTO{ID: 10, TicketID: 1}))

	assert.Equal(t, uint(10), receive(t, one).ID)
	select {
	case m := <-two:
		t.Fatalf("unexpected message %v", m)
	default:
	}
}

func TestLocalChatBus_ClosesOnCancel(t *testing.T) {
	bus := NewLocalChatBus(4, logger.NewDiscard())
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := bus.Subscribe(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, bus.SubscriberCount(1))

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription was not closed")
	}
	assert.Eventually(t, func() bool { return bus.SubscriberCount(1) == 0 }, time.Second, 10*time.Millisecond)
}

func TestLocalChatBus_DropsSlowSubscriber(t *testing.T) {
	bus := NewLocalChatBus(2, logger.NewDiscard())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := bus.Subscribe(ctx, 1)
	require.NoError(t, err)

	for i := uint(1); i <= 3; i++ {
		require.NoError(t, bus.Publish(ctx, &dto.MessageDTO{ID: i, TicketID: 1}))
	}

	assert.Equal(t, uint(1), receive(t, ch).ID)
	assert.Equal(t, uint(2), receive(t, ch).ID)
	_, ok := <-ch
	assert.False(t, ok, "overflowed subscriber must be closed")
	assert.Equal(t, 0, bus.SubscriberCount(1))
}

func TestLocalChatBus_SubscribersGetIndependentCopies(t *testing.T) {
	bus := NewLocalChatBus(4, logger.NewDiscard())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := bus.Subscribe(ctx, 1)
	require.NoError(t, err)
	b, err := bus.Subscribe(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, &dto.MessageDTO{ID: 5, TicketID: 1, SenderName: "Steve"}))

	first := receive(t, a)
	first.SenderName = "changed"
	assert.Equal(t, "Steve", receive(t, b).SenderName)
}

func TestRedisChatBus_HandleSkipsOwnInstance(t *testing.T) {
	local := NewLocalChatBus(4, logger.NewDiscard())
	bus := NewRedisChatBus(nil, local, logger.NewDiscard())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := bus.Subscribe(ctx, 1)
	require.NoError(t, err)

	bus.handle(`{"message":{"id":1,"ticketId":1},"instance_id":"` + bus.instanceID + `"}`)
	bus.handle(`not json`)
	bus.handle(`{"message":{"id":2,"ticketId":1},"instance_id":"other"}`)

	assert.Equal(t, uint(2), receive(t, ch).ID)
}
