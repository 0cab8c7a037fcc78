package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package approval statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Package is a travel package offered for booking. Agent-created packages
// start out pending and become bookable once an admin approves them.
type Package struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Location    string             `json:"location" bson:"location"`
	Price       float64            `json:"price" bson:"price"`
	Days        int                `json:"days" bson:"days"`
	Category    string             `json:"category" bson:"category"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Offers      []string           `json:"offers" bson:"offers"`
	Inclusions  []string           `json:"inclusions" bson:"inclusions"`
	Highlights  []string           `json:"highlights" bson:"highlights"`
	Itinerary   []string           `json:"itinerary" bson:"itinerary"`
	Gallery     []string           `json:"gallery" bson:"gallery"`

	// Status is one of "pending", "approved", or "rejected".
	Status string `json:"status" bson:"status"`

	// CreatedBy is the creator's email. Seed packages have no creator.
	CreatedBy string `json:"created_by,omitempty" bson:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// PackageFilter narrows public package listings.
type PackageFilter struct {
	// Status restricts results to a single status; empty means any.
	Status string

	// Category restricts results to an exact category match.
	Category string

	// Query is a case-insensitive substring match on title or location.
	Query string
}
