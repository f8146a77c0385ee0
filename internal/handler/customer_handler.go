package handler

import (
	"net/http"

	"github.com/fritz-immanuel/luxtrack/internal/dto"
	"github.com/fritz-immanuel/luxtrack/internal/service"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	svc service.CustomerService
}

func NewCustomerHandler(svc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// Create godoc
// @Summary  Create a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    request body dto.CustomerRequest true "Customer"
// @Success  200 {object} dto.CustomerResponse
// @Router   /api/customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	customer, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// List godoc
// @Summary  List active customers
// @Tags     customers
// @Produce  json
// @Success  200 {array} dto.CustomerResponse
// @Router   /api/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// Get godoc
// @Summary  Fetch one customer
// @Tags     customers
// @Produce  json
// @Param    id path string true "Customer id"
// @Success  200 {object} dto.CustomerResponse
// @Router   /api/customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Update godoc
// @Summary  Update a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    id path string true "Customer id"
// @Param    request body dto.CustomerRequest true "Customer"
// @Success  200 {object} dto.CustomerResponse
// @Router   /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	customer, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Details godoc
// @Summary  Customer with transaction history and total spent
// @Tags     customers
// @Produce  json
// @Param    id path string true "Customer id"
// @Success  200 {object} dto.CustomerDetailsResponse
// @Router   /api/customers/{id}/details [get]
func (h *CustomerHandler) Details(c *gin.Context) {
	details, err := h.svc.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}
