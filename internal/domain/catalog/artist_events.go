package catalog

import (
	"github.com/baerenfell/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeArtist = "Artist"

// Event type constants
const (
	EventTypeArtistCreated = "ArtistCreated"
	EventTypeArtistUpdated = "ArtistUpdated"
	EventTypeArtistDeleted = "ArtistDeleted"
)

// ArtistCreatedEvent is published when a new artist is created
type ArtistCreatedEvent struct {
	shared.BaseDomainEvent
	ArtistID uuid.UUID `json:"artist_id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
}

// NewArtistCreatedEvent creates a new ArtistCreatedEvent
func NewArtistCreatedEvent(artist *Artist) *ArtistCreatedEvent {
	return &ArtistCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeArtistCreated, AggregateTypeArtist, artist.ID),
		ArtistID:        artist.ID,
		Name:            artist.Name,
		Slug:            artist.Slug,
	}
}

// ArtistUpdatedEvent is published when an artist is updated
// OldSlug carries the slug before the update so stale pages can be removed
type ArtistUpdatedEvent struct {
	shared.BaseDomainEvent
	ArtistID uuid.UUID `json:"artist_id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	OldSlug  string    `json:"old_slug"`
}

// NewArtistUpdatedEvent creates a new ArtistUpdatedEvent
func NewArtistUpdatedEvent(artist *Artist, oldSlug string) *ArtistUpdatedEvent {
	return &ArtistUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeArtistUpdated, AggregateTypeArtist, artist.ID),
		ArtistID:        artist.ID,
		Name:            artist.Name,
		Slug:            artist.Slug,
		OldSlug:         oldSlug,
	}
}

// ArtistDeletedEvent is published when an artist is deleted
type ArtistDeletedEvent struct {
	shared.BaseDomainEvent
	ArtistID uuid.UUID `json:"artist_id"`
	Slug     string    `json:"slug"`
}

// NewArtistDeletedEvent creates a new ArtistDeletedEvent
func NewArtistDeletedEvent(artist *Artist) *ArtistDeletedEvent {
	return &ArtistDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeArtistDeleted, AggregateTypeArtist, artist.ID),
		ArtistID:        artist.ID,
		Slug:            artist.Slug,
	}
}
