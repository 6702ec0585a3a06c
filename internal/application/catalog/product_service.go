package catalog

import (
	"context"
	"errors"

	"github.com/baerenfell/backend/internal/domain/catalog"
	"github.com/baerenfell/backend/internal/domain/shared"
	"github.com/baerenfell/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo    catalog.ProductRepository
	artistRepo     catalog.ArtistRepository
	eventPublisher shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	artistRepo catalog.ArtistRepository,
	eventPublisher shared.EventPublisher,
) *ProductService {
	return &ProductService{
		productRepo:    productRepo,
		artistRepo:     artistRepo,
		eventPublisher: eventPublisher,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = catalog.Slugify(req.Name)
	}
	exists, err := s.productRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this slug already exists")
	}

	if req.ArtistID != nil {
		if err := s.ensureArtistExists(ctx, *req.ArtistID); err != nil {
			return nil, err
		}
	}

	product, err := catalog.NewProduct(req.Name, req.Slug, valueobject.NewMoneyCHF(req.Price), catalog.ProductCategory(req.Category))
	if err != nil {
		return nil, err
	}

	if req.Description != "" || req.Story != "" {
		product.UpdateDetails(req.Description, req.Story)
	}
	if len(req.Sizes) > 0 {
		product.SetSizes(catalog.SizeList(req.Sizes))
	}
	if req.MainImage != "" || req.HoverImage != "" {
		product.SetImages(req.MainImage, req.HoverImage)
	}
	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}
	if req.ArtistID != nil {
		product.AssignArtist(req.ArtistID)
	}
	if req.IsActive != nil {
		product.SetActive(*req.IsActive)
	}
	if req.IsFeatured != nil {
		product.SetFeatured(*req.IsFeatured)
	}
	if req.SortOrder != nil {
		product.SetSortOrder(*req.SortOrder)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// GetByIDOrSlug retrieves a product by UUID or slug, artist attached
func (s *ProductService) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*ProductResponse, error) {
	var product *catalog.Product
	var err error

	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		product, err = s.productRepo.FindByID(ctx, id)
	} else {
		product, err = s.productRepo.FindBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination, ordered by sort
// order then newest first
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "sort_order",
		OrderDir: "asc",
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}

	// Public listings default to active products only
	active := true
	if filter.Active != nil {
		active = *filter.Active
	}
	if active {
		domainFilter.Filters["active"] = true
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	if filter.ArtistID != nil {
		domainFilter.Filters["artist_id"] = *filter.ArtistID
	}
	if filter.Featured != nil {
		domainFilter.Filters["featured"] = *filter.Featured
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// Update updates a product
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Slug != nil {
		name := product.Name
		if req.Name != nil {
			name = *req.Name
		}
		slug := ""
		if req.Slug != nil {
			slug = *req.Slug
		}
		newSlug := slug
		if newSlug == "" {
			newSlug = catalog.Slugify(name)
		}
		if newSlug != product.Slug {
			exists, err := s.productRepo.ExistsBySlug(ctx, newSlug)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this slug already exists")
			}
		}
		if err := product.Rename(name, slug); err != nil {
			return nil, err
		}
	}

	if req.Description != nil || req.Story != nil {
		description := product.Description
		story := product.Story
		if req.Description != nil {
			description = *req.Description
		}
		if req.Story != nil {
			story = *req.Story
		}
		product.UpdateDetails(description, story)
	}

	if req.Price != nil {
		if err := product.UpdatePrice(valueobject.NewMoneyCHF(*req.Price)); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		if err := product.SetCategory(catalog.ProductCategory(*req.Category)); err != nil {
			return nil, err
		}
	}
	if req.Sizes != nil {
		product.SetSizes(catalog.SizeList(req.Sizes))
	}
	if req.MainImage != nil || req.HoverImage != nil {
		mainImage := product.MainImage
		hoverImage := product.HoverImage
		if req.MainImage != nil {
			mainImage = *req.MainImage
		}
		if req.HoverImage != nil {
			hoverImage = *req.HoverImage
		}
		product.SetImages(mainImage, hoverImage)
	}
	if req.ArtistID != nil {
		if err := s.ensureArtistExists(ctx, *req.ArtistID); err != nil {
			return nil, err
		}
		product.AssignArtist(req.ArtistID)
	}
	if req.IsActive != nil {
		product.SetActive(*req.IsActive)
	}
	if req.IsFeatured != nil {
		product.SetFeatured(*req.IsFeatured)
	}
	if req.SortOrder != nil {
		product.SetSortOrder(*req.SortOrder)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	response := ToProductResponse(product)
	return &response, nil
}

// UpdateStock sets a product's absolute stock quantity
func (s *ProductService) UpdateStock(ctx context.Context, productID uuid.UUID, req UpdateStockRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := product.SetStock(req.Stock); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		// Log-and-continue: page cleanup must not fail the deletion
		_ = s.eventPublisher.Publish(ctx, catalog.NewProductDeletedEvent(product))
	}

	return nil
}

func (s *ProductService) ensureArtistExists(ctx context.Context, artistID uuid.UUID) error {
	_, err := s.artistRepo.FindByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_ARTIST", "Artist not found")
		}
		return err
	}
	return nil
}

func (s *ProductService) publishEvents(ctx context.Context, product *catalog.Product) {
	if s.eventPublisher != nil {
		for _, event := range product.GetDomainEvents() {
			_ = s.eventPublisher.Publish(ctx, event)
		}
	}
	product.ClearDomainEvents()
}
