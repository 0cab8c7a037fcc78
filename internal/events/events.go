package events

import (
	"context"
	"encoding/json"
	"time"
)

// Channel names.
const (
	ChannelBookingCreated = "booking.created"
)

// BookingCreated is published after a booking document is inserted.
type BookingCreated struct {
	BookingID    string    `json:"booking_id"`
	PackageID    string    `json:"package_id"`
	PackageTitle string    `json:"package_title"`
	UserEmail    string    `json:"user_email"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}

// Publisher delivers events to a broker. Publishing is best-effort: the
// booking flow logs failures but never rolls back the insert.
type Publisher interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) error
	Close() error
}

// PublishBookingCreated marshals and publishes a BookingCreated event.
func PublishBookingCreated(ctx context.Context, pub Publisher, event BookingCreated) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return pub.Publish(ctx, ChannelBookingCreated, data, map[string]string{
		"user_email": event.UserEmail,
	})
}
