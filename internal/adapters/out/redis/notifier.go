// Package redis provides the pub/sub implementation of the Notifier port.
// Every committed order mutation is published as a JSON envelope on a single
// channel; subscribers (websocket fan-out, audit consumers) receive the event
// type together with a full order snapshot.
package redis

import (
	"context"
	"encoding/json"

	"orders/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// envelope is the published wire shape: the event type plus the order state
// after the mutation.
type envelope struct {
	Type  string              `json:"type"`
	Order ports.OrderSnapshot `json:"order"`
}

// PubSubNotifier broadcasts order events over a Redis channel.
type PubSubNotifier struct {
	client  *goredis.Client
	channel string
}

// NewPubSubNotifier creates a notifier publishing to the given channel on the
// Redis instance at addr.
func NewPubSubNotifier(addr, channel string) *PubSubNotifier {
	return &PubSubNotifier{
		client:  goredis.NewClient(&goredis.Options{Addr: addr}),
		channel: channel,
	}
}

// Broadcast publishes one order event. Delivery is fire-and-forget: Redis
// pub/sub has no persistence, so a subscriber that is down misses the event.
func (n *PubSubNotifier) Broadcast(ctx context.Context, eventType string, snapshot ports.OrderSnapshot) error {
	payload, err := json.Marshal(envelope{
		Type:  eventType,
		Order: snapshot,
	})
	if err != nil {
		return err
	}

	return n.client.Publish(ctx, n.channel, payload).Err()
}

// Close releases the underlying Redis connection.
func (n *PubSubNotifier) Close() error {
	return n.client.Close()
}
