package catalog

import (
	"github.com/baerenfell/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeProduct = "Product"

// Event type constants
const (
	EventTypeProductCreated = "ProductCreated"
	EventTypeProductUpdated = "ProductUpdated"
	EventTypeProductDeleted = "ProductDeleted"
)

// ProductCreatedEvent is published when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID  `json:"product_id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	ArtistID  *uuid.UUID `json:"artist_id,omitempty"`
}

// NewProductCreatedEvent creates a new ProductCreatedEvent
func NewProductCreatedEvent(product *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Name:            product.Name,
		Slug:            product.Slug,
		ArtistID:        product.ArtistID,
	}
}

// ProductUpdatedEvent is published when a product is updated
// OldSlug carries the slug before the update so stale pages can be removed.
// OldArtistID carries the previous owner so the artist page that listed the
// product can be regenerated when the product changes hands.
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	ProductID   uuid.UUID  `json:"product_id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	OldSlug     string     `json:"old_slug"`
	ArtistID    *uuid.UUID `json:"artist_id,omitempty"`
	OldArtistID *uuid.UUID `json:"old_artist_id,omitempty"`
}

// NewProductUpdatedEvent creates a new ProductUpdatedEvent
func NewProductUpdatedEvent(product *Product, oldSlug string) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductUpdated, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Name:            product.Name,
		Slug:            product.Slug,
		OldSlug:         oldSlug,
		ArtistID:        product.ArtistID,
		OldArtistID:     product.ArtistID,
	}
}

// ProductDeletedEvent is published when a product is deleted
type ProductDeletedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID  `json:"product_id"`
	Slug      string     `json:"slug"`
	ArtistID  *uuid.UUID `json:"artist_id,omitempty"`
}

// NewProductDeletedEvent creates a new ProductDeletedEvent
func NewProductDeletedEvent(product *Product) *ProductDeletedEvent {
	return &ProductDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductDeleted, AggregateTypeProduct, product.ID),
		ProductID:       product.ID,
		Slug:            product.Slug,
		ArtistID:        product.ArtistID,
	}
}
