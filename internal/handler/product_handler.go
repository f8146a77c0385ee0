package handler

import (
	"net/http"

	"github.com/fritz-immanuel/luxtrack/internal/apierror"
	"github.com/fritz-immanuel/luxtrack/internal/dto"
	"github.com/fritz-immanuel/luxtrack/internal/middleware"
	"github.com/fritz-immanuel/luxtrack/internal/model"
	"github.com/fritz-immanuel/luxtrack/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	svc service.ProductService
}

func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create godoc
// @Summary  Register a product in inventory
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    request body dto.ProductRequest true "Product"
// @Success  200 {object} dto.ProductResponse
// @Router   /api/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.CurrentUser(c)
	product, err := h.svc.Create(c.Request.Context(), actor.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// List godoc
// @Summary  List all products
// @Tags     products
// @Produce  json
// @Success  200 {array} dto.ProductResponse
// @Router   /api/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary  Fetch one product
// @Tags     products
// @Produce  json
// @Param    id path string true "Product id"
// @Success  200 {object} dto.ProductResponse
// @Router   /api/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Update godoc
// @Summary  Update a product
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    id path string true "Product id"
// @Param    request body dto.ProductRequest true "Product"
// @Success  200 {object} dto.ProductResponse
// @Router   /api/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.ProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.CurrentUser(c)
	product, err := h.svc.Update(c.Request.Context(), actor.ID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// SetStatus godoc
// @Summary  Change a product's status
// @Tags     products
// @Produce  json
// @Param    id     path  string true "Product id"
// @Param    status query string true "New status"
// @Success  200 {object} dto.ProductResponse
// @Router   /api/products/{id}/status [put]
func (h *ProductHandler) SetStatus(c *gin.Context) {
	status := model.ProductStatus(c.Query("status"))
	if !status.Valid() {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{"status": "oneof"}))
		return
	}
	actor := middleware.CurrentUser(c)
	product, err := h.svc.SetStatus(c.Request.Context(), actor.ID, c.Param("id"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Logs godoc
// @Summary  Product audit trail, newest first
// @Tags     products
// @Produce  json
// @Param    id path string true "Product id"
// @Success  200 {array} dto.ProductLogResponse
// @Router   /api/products/{id}/logs [get]
func (h *ProductHandler) Logs(c *gin.Context) {
	logs, err := h.svc.ListLogs(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// Details godoc
// @Summary  Product with source, seller, creator, logs and transactions
// @Tags     products
// @Produce  json
// @Param    id path string true "Product id"
// @Success  200 {object} dto.ProductDetailsResponse
// @Router   /api/products/{id}/details [get]
func (h *ProductHandler) Details(c *gin.Context) {
	details, err := h.svc.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}
