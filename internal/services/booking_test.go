package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Aryan1212a/TripSync/internal/events"
	"github.com/Aryan1212a/TripSync/internal/store"
	"github.com/Aryan1212a/TripSync/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type capturingPublisher struct {
	channel string
	data    []byte
}

func (p *capturingPublisher) Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) error {
	p.channel = channel
	p.data = data
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

type stubPackageRepo struct {
	pkg types.Package
	err error
}

func (s *stubPackageRepo) GetByID(ctx context.Context, id string) (types.Package, error) {
	if s.err != nil {
		return types.Package{}, s.err
	}
	return s.pkg, nil
}

func (s *stubPackageRepo) List(ctx context.Context, filter types.PackageFilter) ([]types.Package, error) {
	return nil, nil
}

func (s *stubPackageRepo) ListByCreator(ctx context.Context, email string) ([]types.Package, error) {
	return nil, nil
}

func (s *stubPackageRepo) Create(ctx context.Context, pkg types.Package) (types.Package, error) {
	return pkg, nil
}

func (s *stubPackageRepo) Update(ctx context.Context, id string, pkg types.Package) (types.Package, error) {
	return pkg, nil
}

func (s *stubPackageRepo) SetStatus(ctx context.Context, id, status string) (types.Package, error) {
	return types.Package{}, nil
}

func (s *stubPackageRepo) AddGalleryURL(ctx context.Context, id, url string) (types.Package, error) {
	return types.Package{}, nil
}

func (s *stubPackageRepo) Delete(ctx context.Context, id string) error { return nil }

type stubBookingRepo struct {
	created *types.Booking
}

func (s *stubBookingRepo) Create(ctx context.Context, booking types.Booking) (types.Booking, error) {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	s.created = &booking
	return booking, nil
}

func (s *stubBookingRepo) ListByUserEmail(ctx context.Context, email string) ([]types.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) ListByPackageIDs(ctx context.Context, packageIDs []string) ([]types.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) List(ctx context.Context) ([]types.Booking, error) {
	return nil, nil
}

func TestBookingCreatePublishesEvent(t *testing.T) {
	pub := &capturingPublisher{}
	bookings := &stubBookingRepo{}
	packages := &stubPackageRepo{pkg: types.Package{Title: "Goa Beach", Location: "Goa"}}

	svc := NewBookingService(bookings, packages, pub)
	booking, err := svc.Create(context.Background(), "t@x.com", BookingRequest{
		PackageID: "64b0c8c2a7f9a1b2c3d4e5f6",
		Date:      "2026-09-15",
		Persons:   2,
		Total:     36000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if pub.channel != events.ChannelBookingCreated {
		t.Errorf("channel = %q, want %q", pub.channel, events.ChannelBookingCreated)
	}

	var event events.BookingCreated
	if err := json.Unmarshal(pub.data, &event); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if event.BookingID != booking.ID.Hex() {
		t.Errorf("event booking id = %q, want %q", event.BookingID, booking.ID.Hex())
	}
	if event.UserEmail != "t@x.com" || event.PackageTitle != "Goa Beach" {
		t.Errorf("event = %+v", event)
	}
}

// A missing package aborts the booking before payment or insert.
func TestBookingCreateMissingPackage(t *testing.T) {
	pub := &capturingPublisher{}
	bookings := &stubBookingRepo{}
	packages := &stubPackageRepo{err: store.ErrNotFound}

	svc := NewBookingService(bookings, packages, pub)
	_, err := svc.Create(context.Background(), "t@x.com", BookingRequest{
		PackageID: "64b0c8c2a7f9a1b2c3d4e5f6",
	})
	if err != store.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if bookings.created != nil {
		t.Error("booking was inserted despite missing package")
	}
	if pub.channel != "" {
		t.Error("event was published despite missing package")
	}
}
