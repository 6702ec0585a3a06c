package catalog

import (
	"context"

	"github.com/baerenfell/backend/internal/domain/catalog"
	"github.com/baerenfell/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ArtistService handles artist-related business operations
type ArtistService struct {
	artistRepo     catalog.ArtistRepository
	eventPublisher shared.EventPublisher
}

// NewArtistService creates a new ArtistService
func NewArtistService(artistRepo catalog.ArtistRepository, eventPublisher shared.EventPublisher) *ArtistService {
	return &ArtistService{
		artistRepo:     artistRepo,
		eventPublisher: eventPublisher,
	}
}

// Create creates a new artist
func (s *ArtistService) Create(ctx context.Context, req CreateArtistRequest) (*ArtistResponse, error) {
	slug := req.Slug
	if slug == "" {
		slug = catalog.Slugify(req.Name)
	}
	exists, err := s.artistRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Artist with this slug already exists")
	}

	artist, err := catalog.NewArtist(req.Name, req.Slug)
	if err != nil {
		return nil, err
	}

	if req.Bio != "" || req.Instagram != "" || req.Location != "" {
		artist.UpdateProfile(req.Bio, req.Instagram, req.Location)
	}
	if req.Image != "" {
		artist.SetImage(req.Image)
	}
	if req.IsActive != nil {
		artist.SetActive(*req.IsActive)
	}
	if req.SortOrder != nil {
		artist.SetSortOrder(*req.SortOrder)
	}

	if err := s.artistRepo.Save(ctx, artist); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, artist)

	response := ToArtistResponse(artist)
	return &response, nil
}

// GetByIDOrSlug retrieves an artist by UUID or slug, active products attached
func (s *ArtistService) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*ArtistResponse, error) {
	var artist *catalog.Artist
	var err error

	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		artist, err = s.artistRepo.FindByID(ctx, id)
	} else {
		artist, err = s.artistRepo.FindBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, err
	}

	response := ToArtistResponse(artist)
	return &response, nil
}

// List retrieves artists ordered by sort order then name
func (s *ArtistService) List(ctx context.Context, filter ArtistListFilter) ([]ArtistResponse, int64, error) {
	domainFilter := shared.Filter{
		OrderBy:  "sort_order",
		OrderDir: "asc",
		Filters:  make(map[string]interface{}),
	}

	// Public listings default to active artists only
	active := true
	if filter.Active != nil {
		active = *filter.Active
	}
	if active {
		domainFilter.Filters["active"] = true
	}

	artists, err := s.artistRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.artistRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToArtistResponses(artists), total, nil
}

// Update updates an artist
func (s *ArtistService) Update(ctx context.Context, artistID uuid.UUID, req UpdateArtistRequest) (*ArtistResponse, error) {
	artist, err := s.artistRepo.FindByID(ctx, artistID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Slug != nil {
		name := artist.Name
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
		if newSlug != artist.Slug {
			exists, err := s.artistRepo.ExistsBySlug(ctx, newSlug)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "Artist with this slug already exists")
			}
		}
		if err := artist.Rename(name, slug); err != nil {
			return nil, err
		}
	}

	if req.Bio != nil || req.Instagram != nil || req.Location != nil {
		bio := artist.Bio
		instagram := artist.Instagram
		location := artist.Location
		if req.Bio != nil {
			bio = *req.Bio
		}
		if req.Instagram != nil {
			instagram = *req.Instagram
		}
		if req.Location != nil {
			location = *req.Location
		}
		artist.UpdateProfile(bio, instagram, location)
	}

	if req.Image != nil {
		artist.SetImage(*req.Image)
	}
	if req.IsActive != nil {
		artist.SetActive(*req.IsActive)
	}
	if req.SortOrder != nil {
		artist.SetSortOrder(*req.SortOrder)
	}

	if err := s.artistRepo.Save(ctx, artist); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, artist)

	response := ToArtistResponse(artist)
	return &response, nil
}

// Delete deletes an artist
func (s *ArtistService) Delete(ctx context.Context, artistID uuid.UUID) error {
	artist, err := s.artistRepo.FindByID(ctx, artistID)
	if err != nil {
		return err
	}

	if err := s.artistRepo.Delete(ctx, artistID); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		// Log-and-continue: page cleanup must not fail the deletion
		_ = s.eventPublisher.Publish(ctx, catalog.NewArtistDeletedEvent(artist))
	}

	return nil
}

func (s *ArtistService) publishEvents(ctx context.Context, artist *catalog.Artist) {
	if s.eventPublisher != nil {
		for _, event := range artist.GetDomainEvents() {
			_ = s.eventPublisher.Publish(ctx, event)
		}
	}
	artist.ClearDomainEvents()
}
