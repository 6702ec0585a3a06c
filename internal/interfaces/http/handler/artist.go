package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/baerenfell/backend/internal/application/catalog"
	"github.com/baerenfell/backend/internal/interfaces/http/dto"
)

// ArtistHandler handles artist HTTP requests
type ArtistHandler struct {
	BaseHandler
	artistService *catalogapp.ArtistService
}

// NewArtistHandler creates a new artist handler
func NewArtistHandler(artistService *catalogapp.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService}
}

// List handles GET /api/artists
func (h *ArtistHandler) List(c *gin.Context) {
	var filter catalogapp.ArtistListFilter
	if all, ok := c.GetQuery("all"); ok && all == "true" {
		active := false
		filter.Active = &active
	}

	artists, total, err := h.artistService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	response := dto.NewSuccessResponse(artists)
	response.Count = &total
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/artists/:id, accepting a UUID or slug
func (h *ArtistHandler) Get(c *gin.Context) {
	artist, err := h.artistService.GetByIDOrSlug(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, artist)
}

// Create handles POST /api/artists
func (h *ArtistHandler) Create(c *gin.Context) {
	var req catalogapp.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	artist, err := h.artistService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, artist)
}

// Update handles PUT /api/artists/:id
func (h *ArtistHandler) Update(c *gin.Context) {
	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid artist ID")
		return
	}

	var req catalogapp.UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	artist, err := h.artistService.Update(c.Request.Context(), artistID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, artist)
}

// Delete handles DELETE /api/artists/:id
func (h *ArtistHandler) Delete(c *gin.Context) {
	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid artist ID")
		return
	}

	if err := h.artistService.Delete(c.Request.Context(), artistID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Artist deleted"})
}
