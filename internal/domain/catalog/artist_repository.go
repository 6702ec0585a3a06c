package catalog

import (
	"context"

	"github.com/baerenfell/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ArtistRepository defines the interface for artist persistence
type ArtistRepository interface {
	// FindByID finds an artist by its ID, active products preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*Artist, error)

	// FindBySlug finds an artist by its slug, active products preloaded
	FindBySlug(ctx context.Context, slug string) (*Artist, error)

	// FindAll finds all artists matching the filter
	// Supported filter key: active
	FindAll(ctx context.Context, filter shared.Filter) ([]Artist, error)

	// Save creates or updates an artist
	Save(ctx context.Context, artist *Artist) error

	// Delete deletes an artist
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts artists matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsBySlug checks if an artist with the given slug exists
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
