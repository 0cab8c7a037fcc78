package events

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/pubsub"
	"github.com/Aryan1212a/TripSync/config"
)

// PubSubPublisher publishes events to Google Cloud Pub/Sub topics, one
// topic per event channel. Topics must exist ahead of time.
type PubSubPublisher struct {
	client *pubsub.Client
}

// NewPubSubPublisher constructs a Pub/Sub publisher from config.
func NewPubSubPublisher(ctx context.Context, cfg config.EventsConfig) (*PubSubPublisher, error) {
	if strings.TrimSpace(cfg.ProjectID) == "" {
		return nil, errors.New("gcp project id is required")
	}

	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, err
	}
	return &PubSubPublisher{client: client}, nil
}

// Publish sends the payload to the channel's topic and waits for the
// server acknowledgement.
func (p *PubSubPublisher) Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) error {
	topic := p.client.Topic(topicID(channel))
	defer topic.Stop()

	result := topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attrs,
	})
	_, err := result.Get(ctx)
	return err
}

// Close closes the underlying client.
func (p *PubSubPublisher) Close() error {
	return p.client.Close()
}

// topicID maps a channel name to a Pub/Sub topic id; dots are not valid
// in topic ids.
func topicID(channel string) string {
	return strings.ReplaceAll(channel, ".", "-")
}
