package store

import (
	"context"
	"errors"
	"time"

	"github.com/Aryan1212a/TripSync/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const packagesCollection = "packages"

// PackageRepository handles persistence for travel packages.
type PackageRepository struct {
	col *mongo.Collection
}

func NewPackageRepository(db *mongo.Database) *PackageRepository {
	return &PackageRepository{col: db.Collection(packagesCollection)}
}

func (r *PackageRepository) GetByID(ctx context.Context, id string) (types.Package, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return types.Package{}, ErrInvalidID
	}

	var pkg types.Package
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&pkg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Package{}, ErrNotFound
		}
		return types.Package{}, err
	}
	return pkg, nil
}

// List returns packages matching the filter. Query matches title or
// location as a case-insensitive substring, mirroring the search box.
func (r *PackageRepository) List(ctx context.Context, filter types.PackageFilter) ([]types.Package, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Query != "" {
		query["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": filter.Query, "$options": "i"}},
			bson.M{"location": bson.M{"$regex": filter.Query, "$options": "i"}},
		}
	}
	return r.find(ctx, query)
}

// ListByCreator returns all packages created by the given email.
func (r *PackageRepository) ListByCreator(ctx context.Context, email string) ([]types.Package, error) {
	return r.find(ctx, bson.M{"created_by": email})
}

func (r *PackageRepository) Create(ctx context.Context, pkg types.Package) (types.Package, error) {
	pkg.ID = primitive.NewObjectID()
	pkg.CreatedAt = time.Now()

	if _, err := r.col.InsertOne(ctx, pkg); err != nil {
		return types.Package{}, err
	}
	return pkg, nil
}

// Update overwrites the editable fields of a package. Status and creator
// are not touched here; status changes go through SetStatus.
func (r *PackageRepository) Update(ctx context.Context, id string, pkg types.Package) (types.Package, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return types.Package{}, ErrInvalidID
	}

	update := bson.M{"$set": bson.M{
		"title":       pkg.Title,
		"description": pkg.Description,
		"location":    pkg.Location,
		"price":       pkg.Price,
		"days":        pkg.Days,
		"category":    pkg.Category,
		"image":       pkg.Image,
		"offers":      pkg.Offers,
		"inclusions":  pkg.Inclusions,
		"highlights":  pkg.Highlights,
		"itinerary":   pkg.Itinerary,
		"gallery":     pkg.Gallery,
	}}
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return types.Package{}, err
	}
	if result.MatchedCount == 0 {
		return types.Package{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PackageRepository) SetStatus(ctx context.Context, id, status string) (types.Package, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return types.Package{}, ErrInvalidID
	}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return types.Package{}, err
	}
	if result.MatchedCount == 0 {
		return types.Package{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PackageRepository) AddGalleryURL(ctx context.Context, id, url string) (types.Package, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return types.Package{}, ErrInvalidID
	}

	result, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"gallery": url}})
	if err != nil {
		return types.Package{}, err
	}
	if result.MatchedCount == 0 {
		return types.Package{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PackageRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceAll clears the collection and inserts the given packages. Used by
// the seed command only.
func (r *PackageRepository) ReplaceAll(ctx context.Context, pkgs []types.Package) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	docs := make([]any, 0, len(pkgs))
	for _, pkg := range pkgs {
		if pkg.ID.IsZero() {
			pkg.ID = primitive.NewObjectID()
		}
		docs = append(docs, pkg)
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func (r *PackageRepository) find(ctx context.Context, query bson.M) ([]types.Package, error) {
	cursor, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	pkgs := []types.Package{}
	if err := cursor.All(ctx, &pkgs); err != nil {
		return nil, err
	}
	return pkgs, nil
}
