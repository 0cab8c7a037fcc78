package store

import (
	"context"
	"time"

	"github.com/Aryan1212a/TripSync/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const bookingsCollection = "bookings"

// BookingRepository handles persistence for bookings. Bookings are
// insert-only; there is no update or delete path.
type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(bookingsCollection)}
}

func (r *BookingRepository) Create(ctx context.Context, booking types.Booking) (types.Booking, error) {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()

	if _, err := r.col.InsertOne(ctx, booking); err != nil {
		return types.Booking{}, err
	}
	return booking, nil
}

func (r *BookingRepository) ListByUserEmail(ctx context.Context, email string) ([]types.Booking, error) {
	return r.find(ctx, bson.M{"user_email": email})
}

// ListByPackageIDs returns all bookings referencing any of the given
// package ids. An empty id set yields an empty result, not an error.
func (r *BookingRepository) ListByPackageIDs(ctx context.Context, packageIDs []string) ([]types.Booking, error) {
	if len(packageIDs) == 0 {
		return []types.Booking{}, nil
	}
	return r.find(ctx, bson.M{"package_id": bson.M{"$in": packageIDs}})
}

func (r *BookingRepository) List(ctx context.Context) ([]types.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *BookingRepository) find(ctx context.Context, query bson.M) ([]types.Booking, error) {
	cursor, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []types.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
