package catalog

import (
	"time"

	"github.com/baerenfell/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateArtistRequest represents a request to create a new artist
type CreateArtistRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=200"`
	Slug      string `json:"slug" binding:"omitempty,slug,max=200"`
	Bio       string `json:"bio" binding:"max=5000"`
	Image     string `json:"image" binding:"max=500"`
	Instagram string `json:"instagram" binding:"max=200"`
	Location  string `json:"location" binding:"max=200"`
	IsActive  *bool  `json:"isActive"`
	SortOrder *int   `json:"sortOrder"`
}

// UpdateArtistRequest represents a request to update an artist
type UpdateArtistRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=200"`
	Slug      *string `json:"slug" binding:"omitempty,slug,max=200"`
	Bio       *string `json:"bio" binding:"omitempty,max=5000"`
	Image     *string `json:"image" binding:"omitempty,max=500"`
	Instagram *string `json:"instagram" binding:"omitempty,max=200"`
	Location  *string `json:"location" binding:"omitempty,max=200"`
	IsActive  *bool   `json:"isActive"`
	SortOrder *int    `json:"sortOrder"`
}

// ArtistListFilter represents filter options for listing artists
type ArtistListFilter struct {
	// Active is nil for the public default of active-only listings;
	// set it explicitly to list inactive artists as well
	Active *bool
}

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	Slug        string           `json:"slug" binding:"omitempty,slug,max=200"`
	Description string           `json:"description" binding:"max=5000"`
	Story       string           `json:"story" binding:"max=10000"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	Category    string           `json:"category" binding:"omitempty,oneof=tshirt hoodie bag other"`
	Sizes       []string         `json:"sizes"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
	MainImage   string           `json:"mainImage" binding:"max=500"`
	HoverImage  string           `json:"hoverImage" binding:"max=500"`
	IsActive    *bool            `json:"isActive"`
	IsFeatured  *bool            `json:"isFeatured"`
	SortOrder   *int             `json:"sortOrder"`
	ArtistID    *uuid.UUID       `json:"artistId"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Slug        *string          `json:"slug" binding:"omitempty,slug,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=5000"`
	Story       *string          `json:"story" binding:"omitempty,max=10000"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category" binding:"omitempty,oneof=tshirt hoodie bag other"`
	Sizes       []string         `json:"sizes"`
	MainImage   *string          `json:"mainImage" binding:"omitempty,max=500"`
	HoverImage  *string          `json:"hoverImage" binding:"omitempty,max=500"`
	IsActive    *bool            `json:"isActive"`
	IsFeatured  *bool            `json:"isFeatured"`
	SortOrder   *int             `json:"sortOrder"`
	ArtistID    *uuid.UUID       `json:"artistId"`
}

// UpdateStockRequest represents a request to set a product's absolute stock
type UpdateStockRequest struct {
	Stock int `json:"stock" binding:"min=0"`
}

// ProductListFilter represents filter options for listing products
type ProductListFilter struct {
	// Active is nil for the public default of active-only listings
	Active   *bool
	Category string
	ArtistID *uuid.UUID
	Featured *bool
	Search   string
	Page     int
	PageSize int
}

// ArtistInfo is the compact artist representation embedded in product responses
type ArtistInfo struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Image     string    `json:"image"`
	Instagram string    `json:"instagram"`
	Location  string    `json:"location"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Story       string          `json:"story"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Sizes       []string        `json:"sizes"`
	Stock       int             `json:"stock"`
	MainImage   string          `json:"mainImage"`
	HoverImage  string          `json:"hoverImage"`
	IsActive    bool            `json:"isActive"`
	IsFeatured  bool            `json:"isFeatured"`
	SortOrder   int             `json:"sortOrder"`
	ArtistID    *uuid.UUID      `json:"artistId"`
	Artist      *ArtistInfo     `json:"artist,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ArtistResponse represents an artist in API responses
type ArtistResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Slug      string            `json:"slug"`
	Bio       string            `json:"bio"`
	Image     string            `json:"image"`
	Instagram string            `json:"instagram"`
	Location  string            `json:"location"`
	IsActive  bool              `json:"isActive"`
	SortOrder int               `json:"sortOrder"`
	Products  []ProductResponse `json:"products,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// ToArtistInfo converts an artist to its compact representation
func ToArtistInfo(artist *catalog.Artist) *ArtistInfo {
	if artist == nil {
		return nil
	}
	return &ArtistInfo{
		ID:        artist.ID,
		Name:      artist.Name,
		Slug:      artist.Slug,
		Image:     artist.Image,
		Instagram: artist.Instagram,
		Location:  artist.Location,
	}
}

// ToProductResponse converts a product to its API representation
func ToProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		Story:       product.Story,
		Price:       product.Price,
		Category:    string(product.Category),
		Sizes:       product.Sizes,
		Stock:       product.Stock,
		MainImage:   product.MainImage,
		HoverImage:  product.HoverImage,
		IsActive:    product.IsActive,
		IsFeatured:  product.IsFeatured,
		SortOrder:   product.SortOrder,
		ArtistID:    product.ArtistID,
		Artist:      ToArtistInfo(product.Artist),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ToProductResponses converts a product slice to API representations
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// ToArtistResponse converts an artist to its API representation
func ToArtistResponse(artist *catalog.Artist) ArtistResponse {
	return ArtistResponse{
		ID:        artist.ID,
		Name:      artist.Name,
		Slug:      artist.Slug,
		Bio:       artist.Bio,
		Image:     artist.Image,
		Instagram: artist.Instagram,
		Location:  artist.Location,
		IsActive:  artist.IsActive,
		SortOrder: artist.SortOrder,
		Products:  ToProductResponses(artist.Products),
		CreatedAt: artist.CreatedAt,
		UpdatedAt: artist.UpdatedAt,
	}
}

// ToArtistResponses converts an artist slice to API representations
func ToArtistResponses(artists []catalog.Artist) []ArtistResponse {
	responses := make([]ArtistResponse, len(artists))
	for i := range artists {
		responses[i] = ToArtistResponse(&artists[i])
	}
	return responses
}
