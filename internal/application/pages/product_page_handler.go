package pages

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/baerenfell/backend/internal/domain/catalog"
	"github.com/baerenfell/backend/internal/domain/shared"
)

// ProductPageHandler regenerates a product's static page when the product
// changes and removes it when the product is deleted.
type ProductPageHandler struct {
	logger      *zap.Logger
	productRepo catalog.ProductRepository
	renderer    Renderer
	store       PageStore
}

// NewProductPageHandler creates a handler for product page synchronization.
func NewProductPageHandler(logger *zap.Logger, productRepo catalog.ProductRepository, renderer Renderer, store PageStore) *ProductPageHandler {
	return &ProductPageHandler{
		logger:      logger,
		productRepo: productRepo,
		renderer:    renderer,
		store:       store,
	}
}

// EventTypes returns the event types this handler is interested in.
func (h *ProductPageHandler) EventTypes() []string {
	return []string{
		catalog.EventTypeProductCreated,
		catalog.EventTypeProductUpdated,
		catalog.EventTypeProductDeleted,
	}
}

// Handle processes a product lifecycle event.
func (h *ProductPageHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *catalog.ProductCreatedEvent:
		return h.regenerate(ctx, e.ProductID, e.Slug, "")
	case *catalog.ProductUpdatedEvent:
		oldSlug := ""
		if e.OldSlug != e.Slug {
			oldSlug = e.OldSlug
		}
		return h.regenerate(ctx, e.ProductID, e.Slug, oldSlug)
	case *catalog.ProductDeletedEvent:
		if err := h.store.DeletePage(ctx, productPagePath(e.Slug)); err != nil {
			h.logger.Error("failed to delete product page",
				zap.String("slug", e.Slug),
				zap.Error(err),
			)
			return err
		}
		h.logger.Info("product page deleted", zap.String("slug", e.Slug))
		return nil
	default:
		h.logger.Error("unexpected event type",
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}
}

// regenerate refetches the product so the page always reflects the latest
// persisted state, including the artist association. When the slug changed
// the stale page is removed first.
func (h *ProductPageHandler) regenerate(ctx context.Context, productID uuid.UUID, slug, oldSlug string) error {
	if oldSlug != "" {
		if err := h.store.DeletePage(ctx, productPagePath(oldSlug)); err != nil {
			h.logger.Warn("failed to delete stale product page",
				zap.String("old_slug", oldSlug),
				zap.Error(err),
			)
		}
	}

	product, err := h.productRepo.FindByID(ctx, productID)
	if err != nil {
		h.logger.Error("failed to load product for page generation",
			zap.String("slug", slug),
			zap.Error(err),
		)
		return err
	}

	html, err := h.renderer.ProductPage(product)
	if err != nil {
		h.logger.Error("failed to render product page",
			zap.String("slug", product.Slug),
			zap.Error(err),
		)
		return err
	}

	if err := h.store.WritePage(ctx, productPagePath(product.Slug), html); err != nil {
		h.logger.Error("failed to write product page",
			zap.String("slug", product.Slug),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("product page generated", zap.String("slug", product.Slug))
	return nil
}
