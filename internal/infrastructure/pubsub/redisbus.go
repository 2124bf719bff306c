package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"leafsmp/internal/application/chat/dto"
	"leafsmp/internal/shared/constants"
	"leafsmp/internal/shared/logger"
)

// ChatEvent is the wire form of a chat message relayed between instances.
type ChatEvent struct {
	Message    *dto.MessageDTO `json:"message"`
	InstanceID string          `json:"instance_id"`
}

// RedisChatBus delivers messages to local subscribers immediately and relays
// them to other instances over Redis Pub/Sub.
type RedisChatBus struct {
	client     *redis.Client
	channel    string
	local      *LocalChatBus
	logger     logger.Interface
	instanceID string
}

func NewRedisChatBus(client *redis.Client, local *LocalChatBus, log logger.Interface) *RedisChatBus {
	return &RedisChatBus{
		client:     client,
		channel:    constants.RedisChannelChatEvent,
		local:      local,
		logger:     log,
		instanceID: uuid.NewString(),
	}
}

func (b *RedisChatBus) Publish(ctx context.Context, message *dto.MessageDTO) error {
	b.local.dispatch(message)

	data, err := json.Marshal(ChatEvent{Message: message, InstanceID: b.instanceID})
	if err != nil {
		return fmt.Errorf("failed to marshal chat event: %w", err)
	}

	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish chat event",
			"ticket_id", message.TicketID,
			"message_id", message.ID,
			"error", err,
		)
		return fmt.Errorf("failed to publish chat event: %w", err)
	}

	b.logger.Debugw("chat event published to Redis",
		"ticket_id", message.TicketID,
		"message_id", message.ID,
	)
	return nil
}

func (b *RedisChatBus) Subscribe(ctx context.Context, ticketID uint) (<-chan *dto.MessageDTO, error) {
	return b.local.Subscribe(ctx, ticketID)
}

// Run relays events from other instances to local subscribers until ctx
// ends, reconnecting with exponential backoff.
func (b *RedisChatBus) Run(ctx context.Context) error {
	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := b.subscribe(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		b.logger.Warnw("chat subscription disconnected, reconnecting",
			"channel", b.channel,
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (b *RedisChatBus) subscribe(ctx context.Context) error {
	ps := b.client.Subscribe(ctx, b.channel)
	defer ps.Close()

	if _, err := ps.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel %s: %w", b.channel, err)
	}

	b.logger.Infow("subscribed to chat event channel", "channel", b.channel)

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.handle(msg.Payload)
		}
	}
}

func (b *RedisChatBus) handle(payload string) {
	var event ChatEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		b.logger.Warnw("failed to unmarshal chat event",
			"payload", payload,
			"error", err,
		)
		return
	}

	if event.InstanceID == b.instanceID || event.Message == nil {
		return
	}

	b.local.dispatch(event.Message)
}
