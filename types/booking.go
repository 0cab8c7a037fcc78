package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking records a traveler's reservation of a package. Bookings are
// immutable once created; the package title and location are snapshotted
// at booking time so later package edits do not rewrite history.
type Booking struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PackageID string             `json:"package_id" bson:"package_id"`
	UserEmail string             `json:"user_email" bson:"user_email"`
	Date      string             `json:"date" bson:"date"`
	Persons   int                `json:"persons" bson:"persons"`
	Total     float64            `json:"total" bson:"total"`

	PaymentID     string `json:"payment_id" bson:"payment_id"`
	PaymentStatus string `json:"payment_status" bson:"payment_status"`

	PackageTitle    string `json:"package_title" bson:"package_title"`
	PackageLocation string `json:"package_location" bson:"package_location"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
