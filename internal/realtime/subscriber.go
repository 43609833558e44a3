package realtime

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"missing-person-tracker/internal/service/location"
)

// Subscribe relays every message on the location updates channel to the
// hub until ctx ends.
func Subscribe(ctx context.Context, rdb *redis.Client, hub *Hub) error {
	pubsub := rdb.Subscribe(ctx, location.UpdatesChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}
	logrus.WithField("channel", location.UpdatesChannel).Info("subscribed to location updates")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			hub.Publish(MessageLocationUpdate, []byte(msg.Payload))
		}
	}
}
