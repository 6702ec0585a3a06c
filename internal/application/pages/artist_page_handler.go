package pages

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/baerenfell/backend/internal/domain/catalog"
	"github.com/baerenfell/backend/internal/domain/shared"
)

// ArtistPageHandler regenerates an artist's static page when the artist
// changes and removes it when the artist is deleted. It also listens to
// product events because the artist page embeds the product grid: any
// change to an artist's products refreshes the owning artist's page.
type ArtistPageHandler struct {
	logger     *zap.Logger
	artistRepo catalog.ArtistRepository
	renderer   Renderer
	store      PageStore
}

// NewArtistPageHandler creates a handler for artist page synchronization.
func NewArtistPageHandler(logger *zap.Logger, artistRepo catalog.ArtistRepository, renderer Renderer, store PageStore) *ArtistPageHandler {
	return &ArtistPageHandler{
		logger:     logger,
		artistRepo: artistRepo,
		renderer:   renderer,
		store:      store,
	}
}

// EventTypes returns the event types this handler is interested in.
func (h *ArtistPageHandler) EventTypes() []string {
	return []string{
		catalog.EventTypeArtistCreated,
		catalog.EventTypeArtistUpdated,
		catalog.EventTypeArtistDeleted,
		catalog.EventTypeProductCreated,
		catalog.EventTypeProductUpdated,
		catalog.EventTypeProductDeleted,
	}
}

// Handle processes an artist lifecycle event.
func (h *ArtistPageHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *catalog.ArtistCreatedEvent:
		return h.regenerate(ctx, e.ArtistID, e.Slug, "")
	case *catalog.ArtistUpdatedEvent:
		oldSlug := ""
		if e.OldSlug != e.Slug {
			oldSlug = e.OldSlug
		}
		return h.regenerate(ctx, e.ArtistID, e.Slug, oldSlug)
	case *catalog.ArtistDeletedEvent:
		if err := h.store.DeletePage(ctx, artistPagePath(e.Slug)); err != nil {
			h.logger.Error("failed to delete artist page",
				zap.String("slug", e.Slug),
				zap.Error(err),
			)
			return err
		}
		h.logger.Info("artist page deleted", zap.String("slug", e.Slug))
		return nil
	case *catalog.ProductCreatedEvent:
		return h.regenerateOwner(ctx, e.ArtistID)
	case *catalog.ProductUpdatedEvent:
		if e.OldArtistID != nil && !sameArtist(e.OldArtistID, e.ArtistID) {
			if err := h.regenerateOwner(ctx, e.OldArtistID); err != nil {
				return err
			}
		}
		return h.regenerateOwner(ctx, e.ArtistID)
	case *catalog.ProductDeletedEvent:
		return h.regenerateOwner(ctx, e.ArtistID)
	default:
		h.logger.Error("unexpected event type",
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}
}

// regenerateOwner refreshes the page of the artist owning a product so the
// embedded product grid reflects the change. Unattributed products and
// artists that no longer exist are skipped.
func (h *ArtistPageHandler) regenerateOwner(ctx context.Context, artistID *uuid.UUID) error {
	if artistID == nil {
		return nil
	}
	err := h.regenerate(ctx, *artistID, "", "")
	if errors.Is(err, shared.ErrNotFound) {
		return nil
	}
	return err
}

func sameArtist(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (h *ArtistPageHandler) regenerate(ctx context.Context, artistID uuid.UUID, slug, oldSlug string) error {
	if oldSlug != "" {
		if err := h.store.DeletePage(ctx, artistPagePath(oldSlug)); err != nil {
			h.logger.Warn("failed to delete stale artist page",
				zap.String("old_slug", oldSlug),
				zap.Error(err),
			)
		}
	}

	artist, err := h.artistRepo.FindByID(ctx, artistID)
	if err != nil {
		h.logger.Error("failed to load artist for page generation",
			zap.String("slug", slug),
			zap.Error(err),
		)
		return err
	}

	html, err := h.renderer.ArtistPage(artist)
	if err != nil {
		h.logger.Error("failed to render artist page",
			zap.String("slug", artist.Slug),
			zap.Error(err),
		)
		return err
	}

	if err := h.store.WritePage(ctx, artistPagePath(artist.Slug), html); err != nil {
		h.logger.Error("failed to write artist page",
			zap.String("slug", artist.Slug),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("artist page generated", zap.String("slug", artist.Slug))
	return nil
}
