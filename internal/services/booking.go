package services

import (
	"context"
	"log"

	"github.com/Aryan1212a/TripSync/internal/events"
	"github.com/Aryan1212a/TripSync/internal/payment"
	"github.com/Aryan1212a/TripSync/types"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking types.Booking) (types.Booking, error)
	ListByUserEmail(ctx context.Context, email string) ([]types.Booking, error)
	ListByPackageIDs(ctx context.Context, packageIDs []string) ([]types.Booking, error)
	List(ctx context.Context) ([]types.Booking, error)
}

// BookingRequest carries the caller-supplied fields of a new booking.
type BookingRequest struct {
	PackageID string  `json:"package_id"`
	Date      string  `json:"date"`
	Persons   int     `json:"persons"`
	Total     float64 `json:"total"`
}

// BookingService encapsulates booking use-cases.
type BookingService struct {
	bookings  BookingRepository
	packages  PackageRepository
	publisher events.Publisher
}

func NewBookingService(bookings BookingRepository, packages PackageRepository, publisher events.Publisher) *BookingService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &BookingService{
		bookings:  bookings,
		packages:  packages,
		publisher: publisher,
	}
}

// Create books a package for userEmail. The referenced package must exist
// at booking time; the mock payment always succeeds. The package title and
// location are snapshotted onto the booking.
func (s *BookingService) Create(ctx context.Context, userEmail string, req BookingRequest) (types.Booking, error) {
	pkg, err := s.packages.GetByID(ctx, req.PackageID)
	if err != nil {
		return types.Booking{}, err
	}

	pay := payment.Process(req.Total)

	booking, err := s.bookings.Create(ctx, types.Booking{
		PackageID:       req.PackageID,
		UserEmail:       userEmail,
		Date:            req.Date,
		Persons:         req.Persons,
		Total:           req.Total,
		PaymentID:       pay.PaymentID,
		PaymentStatus:   pay.Status,
		PackageTitle:    pkg.Title,
		PackageLocation: pkg.Location,
	})
	if err != nil {
		return types.Booking{}, err
	}

	// Best effort: a broker outage must not fail the booking.
	if err := events.PublishBookingCreated(ctx, s.publisher, events.BookingCreated{
		BookingID:    booking.ID.Hex(),
		PackageID:    booking.PackageID,
		PackageTitle: booking.PackageTitle,
		UserEmail:    booking.UserEmail,
		Total:        booking.Total,
		CreatedAt:    booking.CreatedAt,
	}); err != nil {
		log.Printf("publish booking.created: %v", err)
	}

	return booking, nil
}

// MyBookings returns the caller's own bookings.
func (s *BookingService) MyBookings(ctx context.Context, userEmail string) ([]types.Booking, error) {
	return s.bookings.ListByUserEmail(ctx, userEmail)
}

// AllBookings returns every booking in the system.
func (s *BookingService) AllBookings(ctx context.Context) ([]types.Booking, error) {
	return s.bookings.List(ctx)
}

// AgentBookings returns bookings for packages created by agentEmail. This
// is a filter, not a gate: an agent with no packages gets an empty list.
func (s *BookingService) AgentBookings(ctx context.Context, agentEmail string) ([]types.Booking, error) {
	pkgs, err := s.packages.ListByCreator(ctx, agentEmail)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		ids = append(ids, pkg.ID.Hex())
	}
	return s.bookings.ListByPackageIDs(ctx, ids)
}
