package handler

import (
	"net/http"

	"github.com/fritz-immanuel/luxtrack/internal/dto"
	"github.com/fritz-immanuel/luxtrack/internal/service"

	"github.com/gin-gonic/gin"
)

type SourceHandler struct {
	svc service.SourceService
}

func NewSourceHandler(svc service.SourceService) *SourceHandler {
	return &SourceHandler{svc: svc}
}

// Create godoc
// @Summary  Create an acquisition source
// @Tags     sources
// @Accept   json
// @Produce  json
// @Param    request body dto.SourceRequest true "Source"
// @Success  200 {object} dto.SourceResponse
// @Router   /api/sources [post]
func (h *SourceHandler) Create(c *gin.Context) {
	var req dto.SourceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	source, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, source)
}

// List godoc
// @Summary  List active sources
// @Tags     sources
// @Produce  json
// @Success  200 {array} dto.SourceResponse
// @Router   /api/sources [get]
func (h *SourceHandler) List(c *gin.Context) {
	sources, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sources)
}

// Get godoc
// @Summary  Fetch one source
// @Tags     sources
// @Produce  json
// @Param    id path string true "Source id"
// @Success  200 {object} dto.SourceResponse
// @Router   /api/sources/{id} [get]
func (h *SourceHandler) Get(c *gin.Context) {
	source, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, source)
}

// Update godoc
// @Summary  Update a source
// @Tags     sources
// @Accept   json
// @Produce  json
// @Param    id path string true "Source id"
// @Param    request body dto.SourceRequest true "Source"
// @Success  200 {object} dto.SourceResponse
// @Router   /api/sources/{id} [put]
func (h *SourceHandler) Update(c *gin.Context) {
	var req dto.SourceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	source, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, source)
}
