package services

import (
	"context"

	"github.com/Aryan1212a/TripSync/types"
)

// PackageRepository defines persistence operations for packages.
type PackageRepository interface {
	GetByID(ctx context.Context, id string) (types.Package, error)
	List(ctx context.Context, filter types.PackageFilter) ([]types.Package, error)
	ListByCreator(ctx context.Context, email string) ([]types.Package, error)
	Create(ctx context.Context, pkg types.Package) (types.Package, error)
	Update(ctx context.Context, id string, pkg types.Package) (types.Package, error)
	SetStatus(ctx context.Context, id, status string) (types.Package, error)
	AddGalleryURL(ctx context.Context, id, url string) (types.Package, error)
	Delete(ctx context.Context, id string) error
}

// PackageService encapsulates travel package use-cases.
type PackageService struct {
	repo PackageRepository
}

func NewPackageService(repo PackageRepository) *PackageService {
	return &PackageService{repo: repo}
}

// ListPublic returns approved packages, optionally narrowed by category
// and a title/location search term. Pending and rejected packages never
// appear here.
func (s *PackageService) ListPublic(ctx context.Context, category, query string) ([]types.Package, error) {
	return s.repo.List(ctx, types.PackageFilter{
		Status:   types.StatusApproved,
		Category: category,
		Query:    query,
	})
}

// ListPending returns packages awaiting admin review.
func (s *PackageService) ListPending(ctx context.Context) ([]types.Package, error) {
	return s.repo.List(ctx, types.PackageFilter{Status: types.StatusPending})
}

// ListAll returns every package regardless of status.
func (s *PackageService) ListAll(ctx context.Context) ([]types.Package, error) {
	return s.repo.List(ctx, types.PackageFilter{})
}

func (s *PackageService) Get(ctx context.Context, id string) (types.Package, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new package on behalf of creatorEmail. Agent packages
// start pending; admin-created packages are approved immediately.
func (s *PackageService) Create(ctx context.Context, pkg types.Package, creatorEmail, creatorRole string) (types.Package, error) {
	pkg.CreatedBy = creatorEmail
	if creatorRole == types.RoleAdmin {
		pkg.Status = types.StatusApproved
	} else {
		pkg.Status = types.StatusPending
	}
	return s.repo.Create(ctx, pkg)
}

func (s *PackageService) Update(ctx context.Context, id string, pkg types.Package) (types.Package, error) {
	return s.repo.Update(ctx, id, pkg)
}

func (s *PackageService) Approve(ctx context.Context, id string) (types.Package, error) {
	return s.repo.SetStatus(ctx, id, types.StatusApproved)
}

func (s *PackageService) Reject(ctx context.Context, id string) (types.Package, error) {
	return s.repo.SetStatus(ctx, id, types.StatusRejected)
}

func (s *PackageService) AddGalleryURL(ctx context.Context, id, url string) (types.Package, error) {
	return s.repo.AddGalleryURL(ctx, id, url)
}

func (s *PackageService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
