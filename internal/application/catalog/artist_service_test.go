package catalog

import (
	"context"
	"testing"

	"github.com/baerenfell/backend/internal/domain/catalog"
	"github.com/baerenfell/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newArtistService(t *testing.T) (*ArtistService, *MockArtistRepository, *MockEventPublisher) {
	t.Helper()
	artistRepo := new(MockArtistRepository)
	publisher := new(MockEventPublisher)
	return NewArtistService(artistRepo, publisher), artistRepo, publisher
}

func TestArtistServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates artist with derived slug", func(t *testing.T) {
		service, artistRepo, publisher := newArtistService(t)

		artistRepo.On("ExistsBySlug", ctx, "mara-keller").Return(false, nil)
		artistRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Artist")).Return(nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		resp, err := service.Create(ctx, CreateArtistRequest{
			Name:      "Mara Keller",
			Bio:       "Printmaker from the old town.",
			Instagram: "@marak",
		})
		require.NoError(t, err)

		assert.Equal(t, "mara-keller", resp.Slug)
		assert.Equal(t, "Bern", resp.Location)
		artistRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		service, artistRepo, _ := newArtistService(t)

		artistRepo.On("ExistsBySlug", ctx, "mara-keller").Return(true, nil)

		_, err := service.Create(ctx, CreateArtistRequest{Name: "Mara Keller"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "slug already exists")
	})
}

func TestArtistServiceList(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to active-only ordered by sort order", func(t *testing.T) {
		service, artistRepo, _ := newArtistService(t)

		expectedFilter := mock.MatchedBy(func(f shared.Filter) bool {
			return f.OrderBy == "sort_order" && f.OrderDir == "asc" && f.Filters["active"] == true
		})
		artistRepo.On("FindAll", ctx, expectedFilter).Return([]catalog.Artist{}, nil)
		artistRepo.On("Count", ctx, expectedFilter).Return(int64(0), nil)

		_, _, err := service.List(ctx, ArtistListFilter{})
		require.NoError(t, err)
		artistRepo.AssertExpectations(t)
	})

	t.Run("explicit active=false lists everything", func(t *testing.T) {
		service, artistRepo, _ := newArtistService(t)
		inactive := false

		expectedFilter := mock.MatchedBy(func(f shared.Filter) bool {
			_, hasActive := f.Filters["active"]
			return !hasActive
		})
		artistRepo.On("FindAll", ctx, expectedFilter).Return([]catalog.Artist{}, nil)
		artistRepo.On("Count", ctx, expectedFilter).Return(int64(0), nil)

		_, _, err := service.List(ctx, ArtistListFilter{Active: &inactive})
		require.NoError(t, err)
	})
}

func TestArtistServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("renames and carries old slug in event", func(t *testing.T) {
		service, artistRepo, publisher := newArtistService(t)
		artist, err := catalog.NewArtist("Mara Keller", "")
		require.NoError(t, err)
		artist.ClearDomainEvents()

		artistRepo.On("FindByID", ctx, artist.ID).Return(artist, nil)
		artistRepo.On("ExistsBySlug", ctx, "mara-steiner").Return(false, nil)
		artistRepo.On("Save", ctx, artist).Return(nil)

		var published []shared.DomainEvent
		publisher.On("Publish", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			published = append(published, args.Get(1).([]shared.DomainEvent)...)
		}).Return(nil)

		name := "Mara Steiner"
		resp, err := service.Update(ctx, artist.ID, UpdateArtistRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "mara-steiner", resp.Slug)

		require.NotEmpty(t, published)
		event, ok := published[0].(*catalog.ArtistUpdatedEvent)
		require.True(t, ok)
		assert.Equal(t, "mara-keller", event.OldSlug)
	})

	t.Run("applies explicit slug without a name change", func(t *testing.T) {
		service, artistRepo, publisher := newArtistService(t)
		artist, err := catalog.NewArtist("Mara Keller", "")
		require.NoError(t, err)
		artist.ClearDomainEvents()

		artistRepo.On("FindByID", ctx, artist.ID).Return(artist, nil)
		artistRepo.On("ExistsBySlug", ctx, "mara-k").Return(false, nil)
		artistRepo.On("Save", ctx, artist).Return(nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		slug := "mara-k"
		resp, err := service.Update(ctx, artist.ID, UpdateArtistRequest{Slug: &slug})
		require.NoError(t, err)
		assert.Equal(t, "mara-k", resp.Slug)
		assert.Equal(t, "Mara Keller", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		service, artistRepo, _ := newArtistService(t)
		id := uuid.New()

		artistRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, id, UpdateArtistRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestArtistServiceDelete(t *testing.T) {
	ctx := context.Background()
	service, artistRepo, publisher := newArtistService(t)
	artist, err := catalog.NewArtist("Mara Keller", "")
	require.NoError(t, err)

	artistRepo.On("FindByID", ctx, artist.ID).Return(artist, nil)
	artistRepo.On("Delete", ctx, artist.ID).Return(nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(events []shared.DomainEvent) bool {
		return len(events) == 1 && events[0].EventType() == catalog.EventTypeArtistDeleted
	})).Return(nil)

	require.NoError(t, service.Delete(ctx, artist.ID))
	publisher.AssertExpectations(t)
}
