package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/baerenfell/backend/internal/domain/catalog"
	"github.com/baerenfell/backend/internal/domain/shared"
)

// GormArtistRepository implements ArtistRepository using GORM
type GormArtistRepository struct {
	db *gorm.DB
}

// NewGormArtistRepository creates a new GormArtistRepository
func NewGormArtistRepository(db *gorm.DB) *GormArtistRepository {
	return &GormArtistRepository{db: db}
}

// activeProducts preloads the artist's active products in display order
func activeProducts(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true).Order("sort_order ASC, created_at DESC")
}

// FindByID finds an artist by its ID, active products preloaded
func (r *GormArtistRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Artist, error) {
	var artist catalog.Artist
	if err := r.db.WithContext(ctx).
		Preload("Products", activeProducts).
		First(&artist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

// FindBySlug finds an artist by its slug, active products preloaded
func (r *GormArtistRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Artist, error) {
	var artist catalog.Artist
	if err := r.db.WithContext(ctx).
		Preload("Products", activeProducts).
		First(&artist, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

// FindAll finds all artists matching the filter
func (r *GormArtistRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Artist, error) {
	var artists []catalog.Artist
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Artist{}), filter)

	if err := query.Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

// Save creates or updates an artist
func (r *GormArtistRepository) Save(ctx context.Context, artist *catalog.Artist) error {
	return r.db.WithContext(ctx).Omit("Products").Save(artist).Error
}

// Delete deletes an artist. Products keep their rows; the artist reference
// is cleared so they become unattributed rather than vanish.
func (r *GormArtistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&catalog.Product{}).
			Where("artist_id = ?", id).
			Update("artist_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&catalog.Artist{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts artists matching the filter
func (r *GormArtistRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&catalog.Artist{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsBySlug checks if an artist with the given slug exists
func (r *GormArtistRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Artist{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormArtistRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		order := filter.OrderBy + " " + orderDir
		// sort_order ties are broken alphabetically
		if filter.OrderBy == "sort_order" {
			order += ", name ASC"
		}
		query = query.Order(order)
	} else {
		query = query.Order("sort_order ASC, name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormArtistRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR bio ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("is_active = ?", value)
		}
	}

	return query
}

// Ensure GormArtistRepository implements ArtistRepository
var _ catalog.ArtistRepository = (*GormArtistRepository)(nil)
