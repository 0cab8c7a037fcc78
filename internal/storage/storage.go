package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType is returned for uploads that are not images.
var ErrUnsupportedType = errors.New("unsupported media type")

// ObjectStorage defines common object operations across backends.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Bucket() string
	// ObjectURL returns the public URL under which an uploaded object is
	// reachable.
	ObjectURL(key string) string
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// MediaStorage stores package gallery images in an object storage backend.
type MediaStorage struct {
	backend ObjectStorage
}

// NewMediaStorage constructs a MediaStorage over the provided backend.
func NewMediaStorage(backend ObjectStorage) *MediaStorage {
	return &MediaStorage{backend: backend}
}

// EnsureBucket ensures the configured bucket exists.
func (s *MediaStorage) EnsureBucket(ctx context.Context) error {
	return s.backend.EnsureBucket(ctx)
}

// UploadPackageImage stores an image for the given package and returns its
// public URL. Keys are namespaced per package so images can be cleaned up
// together when a package is deleted.
func (s *MediaStorage) UploadPackageImage(ctx context.Context, packageID string, r io.Reader, size int64, contentType string) (string, error) {
	ext, ok := imageExtensions[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		return "", ErrUnsupportedType
	}

	key := path.Join("packages", packageID, uuid.NewString()+ext)
	if err := s.backend.Put(ctx, key, r, size, contentType); err != nil {
		return "", err
	}
	return s.backend.ObjectURL(key), nil
}

// Delete removes an object from the configured bucket.
func (s *MediaStorage) Delete(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, key)
}

// Bucket returns the configured bucket name.
func (s *MediaStorage) Bucket() string {
	return s.backend.Bucket()
}

func joinURL(base, key string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), key)
}
