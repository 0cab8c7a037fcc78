package events

import (
	"context"
	"errors"
	"strings"

	"github.com/Aryan1212a/TripSync/config"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQPublisher publishes events to RabbitMQ queues, one queue per
// event channel.
type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewRabbitMQPublisher constructs a RabbitMQ publisher from config.
func NewRabbitMQPublisher(cfg config.EventsConfig) (*RabbitMQPublisher, error) {
	if strings.TrimSpace(cfg.AMQPURL) == "" {
		return nil, errors.New("amqp url is required")
	}

	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &RabbitMQPublisher{conn: conn, channel: ch}, nil
}

// Publish declares the channel's queue and sends the payload to it.
func (p *RabbitMQPublisher) Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) error {
	queue, err := p.channel.QueueDeclare(channel, true, false, false, false, nil)
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for k, v := range attrs {
		headers[k] = v
	}

	return p.channel.PublishWithContext(ctx, "", queue.Name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         data,
		Headers:      headers,
		DeliveryMode: amqp.Persistent,
	})
}

// Close closes the channel and connection.
func (p *RabbitMQPublisher) Close() error {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
