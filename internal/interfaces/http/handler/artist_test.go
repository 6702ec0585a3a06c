package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	catalogapp "github.com/baerenfell/backend/internal/application/catalog"
	"github.com/baerenfell/backend/internal/domain/catalog"
	"github.com/baerenfell/backend/internal/domain/shared"
)

func setupArtistHandler(artistRepo *MockArtistRepository) *ArtistHandler {
	service := catalogapp.NewArtistService(artistRepo, nil)
	return NewArtistHandler(service)
}

func TestArtistHandler_List_Success(t *testing.T) {
	artistRepo := new(MockArtistRepository)
	h := setupArtistHandler(artistRepo)

	artist := newTestArtist(t)
	artistRepo.On("FindAll", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return([]catalog.Artist{*artist}, nil)
	artistRepo.On("Count", mock.Anything, mock.AnythingOfType("shared.Filter")).
		Return(int64(1), nil)

	router := newTestRouter()
	router.GET("/artists", h.List)

	w := performRequest(router, http.MethodGet, "/artists", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	assert.True(t, response.Success)
	assert.Equal(t, int64(1), *response.Count)
	artistRepo.AssertExpectations(t)
}

func TestArtistHandler_Get_BySlug(t *testing.T) {
	artistRepo := new(MockArtistRepository)
	h := setupArtistHandler(artistRepo)

	artist := newTestArtist(t)
	artistRepo.On("FindBySlug", mock.Anything, "mara-keller").Return(artist, nil)

	router := newTestRouter()
	router.GET("/artists/:id", h.Get)

	w := performRequest(router, http.MethodGet, "/artists/mara-keller", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	artistRepo.AssertExpectations(t)
}

func TestArtistHandler_Get_NotFound(t *testing.T) {
	artistRepo := new(MockArtistRepository)
	h := setupArtistHandler(artistRepo)

	artistID := uuid.New()
	artistRepo.On("FindByID", mock.Anything, artistID).Return(nil, shared.ErrNotFound)

	router := newTestRouter()
	router.GET("/artists/:id", h.Get)

	w := performRequest(router, http.MethodGet, "/artists/"+artistID.String(), nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestArtistHandler_Create_Success(t *testing.T) {
	artistRepo := new(MockArtistRepository)
	h := setupArtistHandler(artistRepo)

	artistRepo.On("ExistsBySlug", mock.Anything, "mara-keller").Return(false, nil)
	artistRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Artist")).Return(nil)

	router := newTestRouter()
	router.POST("/artists", h.Create)

	body, _ := json.Marshal(catalogapp.CreateArtistRequest{Name: "Mara Keller"})
	w := performRequest(router, http.MethodPost, "/artists", bytes.NewReader(body), nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	artistRepo.AssertExpectations(t)
}

func TestArtistHandler_Create_DuplicateSlug(t *testing.T) {
	artistRepo := new(MockArtistRepository)
	h := setupArtistHandler(artistRepo)

	artistRepo.On("ExistsBySlug", mock.Anything, "mara-keller").Return(true, nil)

	router := newTestRouter()
	router.POST("/artists", h.Create)

	body, _ := json.Marshal(catalogapp.CreateArtistRequest{Name: "Mara Keller"})
	w := performRequest(router, http.MethodPost, "/artists", bytes.NewReader(body), nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestArtistHandler_Create_MissingName(t *testing.T) {
	h := setupArtistHandler(new(MockArtistRepository))

	router := newTestRouter()
	router.POST("/artists", h.Create)

	body, _ := json.Marshal(catalogapp.CreateArtistRequest{})
	w := performRequest(router, http.MethodPost, "/artists", bytes.NewReader(body), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArtistHandler_Update_Success(t *testing.T) {
	artistRepo := new(MockArtistRepository)
	h := setupArtistHandler(artistRepo)

	artist := newTestArtist(t)
	artistRepo.On("FindByID", mock.Anything, artist.ID).Return(artist, nil)
	artistRepo.On("Save", mock.Anything, artist).Return(nil)

	router := newTestRouter()
	router.PUT("/artists/:id", h.Update)

	bio := "Printmaker from Bern"
	body, _ := json.Marshal(catalogapp.UpdateArtistRequest{Bio: &bio})
	w := performRequest(router, http.MethodPut, "/artists/"+artist.ID.String(), bytes.NewReader(body), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, bio, artist.Bio)
	artistRepo.AssertExpectations(t)
}

func TestArtistHandler_Delete_Success(t *testing.T) {
	artistRepo := new(MockArtistRepository)
	h := setupArtistHandler(artistRepo)

	artist := newTestArtist(t)
	artistRepo.On("FindByID", mock.Anything, artist.ID).Return(artist, nil)
	artistRepo.On("Delete", mock.Anything, artist.ID).Return(nil)

	router := newTestRouter()
	router.DELETE("/artists/:id", h.Delete)

	w := performRequest(router, http.MethodDelete, "/artists/"+artist.ID.String(), nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	artistRepo.AssertExpectations(t)
}

func TestArtistHandler_Delete_InvalidID(t *testing.T) {
	h := setupArtistHandler(new(MockArtistRepository))

	router := newTestRouter()
	router.DELETE("/artists/:id", h.Delete)

	w := performRequest(router, http.MethodDelete, "/artists/not-a-uuid", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
