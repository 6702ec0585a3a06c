package catalog

import (
	"time"

	"github.com/baerenfell/backend/internal/domain/shared"
)

// DefaultArtistLocation is assigned when no location is provided
const DefaultArtistLocation = "Bern"

// Artist represents a member of the collective
// It is the aggregate root for artist-related operations
type Artist struct {
	shared.BaseAggregateRoot
	Name      string    `gorm:"type:varchar(200);not null"`
	Slug      string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	Bio       string    `gorm:"type:text"`
	Image     string    `gorm:"type:varchar(500)"`
	Instagram string    `gorm:"type:varchar(200)"`
	Location  string    `gorm:"type:varchar(200);not null;default:'Bern'"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortOrder int       `gorm:"not null;default:0"`
	Products  []Product `gorm:"foreignKey:ArtistID"`
}

// TableName returns the table name for GORM
func (Artist) TableName() string {
	return "artists"
}

// NewArtist creates a new artist
// An empty slug is derived from the name
func NewArtist(name, slug string) (*Artist, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if slug == "" {
		slug = Slugify(name)
	}
	if !IsValidSlug(slug) {
		return nil, shared.NewDomainError("INVALID_SLUG", "Slug must be lowercase alphanumeric with single hyphens")
	}

	artist := &Artist{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              slug,
		Location:          DefaultArtistLocation,
		IsActive:          true,
	}

	artist.AddDomainEvent(NewArtistCreatedEvent(artist))

	return artist, nil
}

// Rename changes the artist's name and slug
// An empty slug is re-derived from the new name
func (a *Artist) Rename(name, slug string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if slug == "" {
		slug = Slugify(name)
	}
	if !IsValidSlug(slug) {
		return shared.NewDomainError("INVALID_SLUG", "Slug must be lowercase alphanumeric with single hyphens")
	}

	oldSlug := a.Slug
	a.Name = name
	a.Slug = slug
	a.touch()

	a.AddDomainEvent(NewArtistUpdatedEvent(a, oldSlug))

	return nil
}

// UpdateProfile updates the artist's bio, instagram handle and location
func (a *Artist) UpdateProfile(bio, instagram, location string) {
	a.Bio = bio
	a.Instagram = instagram
	if location != "" {
		a.Location = location
	}
	a.touch()

	a.AddDomainEvent(NewArtistUpdatedEvent(a, a.Slug))
}

// SetImage sets the artist's portrait image URL
func (a *Artist) SetImage(image string) {
	a.Image = image
	a.touch()

	a.AddDomainEvent(NewArtistUpdatedEvent(a, a.Slug))
}

// SetActive toggles whether the artist appears in public listings
func (a *Artist) SetActive(active bool) {
	a.IsActive = active
	a.touch()

	a.AddDomainEvent(NewArtistUpdatedEvent(a, a.Slug))
}

// SetSortOrder sets the display order of the artist
func (a *Artist) SetSortOrder(order int) {
	a.SortOrder = order
	a.touch()
}

func (a *Artist) touch() {
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// validateName validates an artist or product display name
func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
