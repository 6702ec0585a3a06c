package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/baerenfell/backend/internal/domain/shared"
	"github.com/baerenfell/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductCategory represents the merchandise category of a product
type ProductCategory string

const (
	CategoryTShirt ProductCategory = "tshirt"
	CategoryHoodie ProductCategory = "hoodie"
	CategoryBag    ProductCategory = "bag"
	CategoryOther  ProductCategory = "other"
)

// DefaultSizes is assigned when no sizes are provided
var DefaultSizes = SizeList{"S", "M", "L", "XL"}

// SizeList is an ordered list of size labels stored as a JSON column
type SizeList []string

// Value implements driver.Valuer for database storage
func (s SizeList) Value() (driver.Value, error) {
	if s == nil {
		s = SizeList{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for database retrieval
func (s *SizeList) Scan(value any) error {
	if value == nil {
		*s = SizeList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into SizeList", value)
	}
	return json.Unmarshal(data, s)
}

// Product represents a piece of merchandise in the catalog
// It is the aggregate root for product-related operations
type Product struct {
	shared.BaseAggregateRoot
	Name        string          `gorm:"type:varchar(200);not null"`
	Slug        string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description string          `gorm:"type:text"`
	Story       string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Category    ProductCategory `gorm:"type:varchar(20);not null;default:'other'"`
	Sizes       SizeList        `gorm:"type:jsonb"`
	Stock       int             `gorm:"not null;default:0"`
	MainImage   string          `gorm:"type:varchar(500)"`
	HoverImage  string          `gorm:"type:varchar(500)"`
	IsActive    bool            `gorm:"not null;default:true"`
	IsFeatured  bool            `gorm:"not null;default:false"`
	SortOrder   int             `gorm:"not null;default:0"`
	ArtistID    *uuid.UUID      `gorm:"type:uuid;index"`
	Artist      *Artist         `gorm:"foreignKey:ArtistID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
// An empty slug is derived from the name, an empty category defaults to
// "other" and an empty size list defaults to S/M/L/XL
func NewProduct(name, slug string, price valueobject.Money, category ProductCategory) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if slug == "" {
		slug = Slugify(name)
	}
	if !IsValidSlug(slug) {
		return nil, shared.NewDomainError("INVALID_SLUG", "Slug must be lowercase alphanumeric with single hyphens")
	}
	if category == "" {
		category = CategoryOther
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category must be one of tshirt, hoodie, bag, other")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              slug,
		Price:             price.Amount(),
		Category:          category,
		Sizes:             append(SizeList{}, DefaultSizes...),
		IsActive:          true,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// IsValid returns true for a known category value
func (c ProductCategory) IsValid() bool {
	switch c {
	case CategoryTShirt, CategoryHoodie, CategoryBag, CategoryOther:
		return true
	}
	return false
}

// Rename changes the product's name and slug
// An empty slug is re-derived from the new name
func (p *Product) Rename(name, slug string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if slug == "" {
		slug = Slugify(name)
	}
	if !IsValidSlug(slug) {
		return shared.NewDomainError("INVALID_SLUG", "Slug must be lowercase alphanumeric with single hyphens")
	}

	oldSlug := p.Slug
	p.Name = name
	p.Slug = slug
	p.touch()

	p.AddDomainEvent(NewProductUpdatedEvent(p, oldSlug))

	return nil
}

// UpdateDetails updates the product's description and story
func (p *Product) UpdateDetails(description, story string) {
	p.Description = description
	p.Story = story
	p.touch()

	p.AddDomainEvent(NewProductUpdatedEvent(p, p.Slug))
}

// UpdatePrice updates the product's price
func (p *Product) UpdatePrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	p.Price = price.Amount()
	p.touch()

	p.AddDomainEvent(NewProductUpdatedEvent(p, p.Slug))

	return nil
}

// SetCategory sets the product category
func (p *Product) SetCategory(category ProductCategory) error {
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Category must be one of tshirt, hoodie, bag, other")
	}

	p.Category = category
	p.touch()

	p.AddDomainEvent(NewProductUpdatedEvent(p, p.Slug))

	return nil
}

// SetSizes sets the available size labels
func (p *Product) SetSizes(sizes SizeList) {
	if len(sizes) == 0 {
		sizes = append(SizeList{}, DefaultSizes...)
	}
	p.Sizes = sizes
	p.touch()

	p.AddDomainEvent(NewProductUpdatedEvent(p, p.Slug))
}

// SetImages sets the main and hover image URLs
func (p *Product) SetImages(mainImage, hoverImage string) {
	p.MainImage = mainImage
	p.HoverImage = hoverImage
	p.touch()

	p.AddDomainEvent(NewProductUpdatedEvent(p, p.Slug))
}

// AssignArtist links the product to an artist, nil unlinks it
func (p *Product) AssignArtist(artistID *uuid.UUID) {
	oldArtistID := p.ArtistID
	p.ArtistID = artistID
	p.touch()

	event := NewProductUpdatedEvent(p, p.Slug)
	event.OldArtistID = oldArtistID
	p.AddDomainEvent(event)
}

// SetActive toggles whether the product appears in public listings
func (p *Product) SetActive(active bool) {
	p.IsActive = active
	p.touch()

	p.AddDomainEvent(NewProductUpdatedEvent(p, p.Slug))
}

// SetFeatured toggles the featured flag
func (p *Product) SetFeatured(featured bool) {
	p.IsFeatured = featured
	p.touch()

	p.AddDomainEvent(NewProductUpdatedEvent(p, p.Slug))
}

// SetSortOrder sets the display order of the product
func (p *Product) SetSortOrder(order int) {
	p.SortOrder = order
	p.touch()
}

// SetStock sets the absolute stock quantity
func (p *Product) SetStock(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	p.Stock = quantity
	p.touch()

	return nil
}

// DecrementStock reduces the stock by the ordered quantity
// Returns an INSUFFICIENT_STOCK error naming the product and the quantity
// still available when the order cannot be covered
func (p *Product) DecrementStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if p.Stock < quantity {
		return shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Insufficient stock for %s. Available: %d", p.Name, p.Stock))
	}

	p.Stock -= quantity
	p.touch()

	return nil
}

// GetPriceMoney returns the price as a Money value object
func (p *Product) GetPriceMoney() valueobject.Money {
	return valueobject.NewMoneyCHF(p.Price)
}

func (p *Product) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}
