// Package seed loads the curated destination catalog into the packages
// collection. Seed packages are approved immediately and have no creator,
// so they are visible to everyone and managed only by admins.
package seed

import (
	"context"

	"github.com/Aryan1212a/TripSync/internal/store"
	"github.com/Aryan1212a/TripSync/types"
)

// Packages replaces the package collection with the seed catalog and
// returns how many packages were written.
func Packages(ctx context.Context, repo *store.PackageRepository) (int, error) {
	pkgs := Catalog()
	if err := repo.ReplaceAll(ctx, pkgs); err != nil {
		return 0, err
	}
	return len(pkgs), nil
}

// Catalog returns the built-in destination packages.
func Catalog() []types.Package {
	return []types.Package{
		{
			Title:       "Dubai Premium Tour",
			Image:       "https://images.unsplash.com/photo-1518684079-3c830dcef090?auto=format&fit=crop&w=1600&q=80",
			Description: "5-star luxury stay, desert safari, marina cruise, and Dubai Frame included.",
			Price:       55000,
			Days:        5,
			Category:    "Luxury",
			Location:    "Dubai, UAE",
			Status:      types.StatusApproved,
		},
		{
			Title:       "Maldives Honeymoon Escape",
			Image:       "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?auto=format&fit=crop&w=1600&q=80",
			Description: "Romantic water villa, candlelight dinner, snorkeling and island hopping.",
			Price:       78000,
			Days:        6,
			Category:    "Honeymoon",
			Location:    "Maldives",
			Status:      types.StatusApproved,
		},
		{
			Title:       "Bali Adventure Retreat",
			Image:       "https://images.unsplash.com/photo-1537225228614-b4fad34a2b08?auto=format&fit=crop&w=1600&q=80",
			Description: "Temples, waterfalls, rice terraces, and Ubud cultural experiences.",
			Price:       42000,
			Days:        5,
			Category:    "Adventure",
			Location:    "Bali, Indonesia",
			Status:      types.StatusApproved,
		},
		{
			Title:       "Paris Romantic Gateway",
			Image:       "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?auto=format&fit=crop&w=1600&q=80",
			Description: "Eiffel Tower, Louvre Museum, Seine River cruise with fine dining.",
			Price:       99000,
			Days:        7,
			Category:    "Luxury",
			Location:    "Paris, France",
			Status:      types.StatusApproved,
		},
		{
			Title:       "Thailand Family Package",
			Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=1600&q=80",
			Description: "Phuket beaches, theme parks, elephant sanctuary, and Thai cultural shows.",
			Price:       38000,
			Days:        6,
			Category:    "Family",
			Location:    "Phuket, Thailand",
			Status:      types.StatusApproved,
		},
		{
			Title:       "Switzerland Scenic Tour",
			Image:       "https://images.unsplash.com/photo-1501785888041-af3ef285b470?auto=format&fit=crop&w=1600&q=80",
			Description: "Snow peaks, panoramic trains, and luxury alpine resorts.",
			Price:       150000,
			Days:        8,
			Category:    "Luxury",
			Location:    "Interlaken, Switzerland",
			Status:      types.StatusApproved,
		},
		{
			Title:       "Singapore City Experience",
			Image:       "https://images.unsplash.com/photo-1506152983158-b4a74a01c721?auto=format&fit=crop&w=1600&q=80",
			Description: "Gardens by the Bay, Universal Studios, Marina Bay Sands skydeck.",
			Price:       52000,
			Days:        4,
			Category:    "Family",
			Location:    "Singapore",
			Status:      types.StatusApproved,
		},
		{
			Title:       "Goa Beach Getaway",
			Image:       "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2?auto=format&fit=crop&w=1600&q=80",
			Description: "North Goa beaches, water sports, beach shacks and nightlife.",
			Price:       18000,
			Days:        4,
			Category:    "Adventure",
			Location:    "Goa, India",
			Status:      types.StatusApproved,
		},
	}
}
