package handler

import (
	"fmt"
	"net/http"

	"github.com/fritz-immanuel/luxtrack/internal/apierror"
	"github.com/fritz-immanuel/luxtrack/internal/dto"
	"github.com/fritz-immanuel/luxtrack/internal/middleware"
	"github.com/fritz-immanuel/luxtrack/internal/model"
	"github.com/fritz-immanuel/luxtrack/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	svc service.TransactionService
}

func NewTransactionHandler(svc service.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// Create godoc
// @Summary  Create a purchase or sale transaction
// @Tags     transactions
// @Accept   json
// @Produce  json
// @Param    request body dto.CreateTransactionRequest true "Transaction"
// @Success  200 {object} dto.TransactionResponse
// @Router   /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	actor := middleware.CurrentUser(c)
	transaction, err := h.svc.Create(c.Request.Context(), actor.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// List godoc
// @Summary  List transactions, newest first
// @Tags     transactions
// @Produce  json
// @Success  200 {array} dto.TransactionResponse
// @Router   /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// Get godoc
// @Summary  Fetch one transaction
// @Tags     transactions
// @Produce  json
// @Param    id path string true "Transaction id"
// @Success  200 {object} dto.TransactionResponse
// @Router   /api/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	transaction, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// Items godoc
// @Summary  Line items of a transaction
// @Tags     transactions
// @Produce  json
// @Param    id path string true "Transaction id"
// @Success  200 {array} dto.TransactionItemResponse
// @Router   /api/transactions/{id}/items [get]
func (h *TransactionHandler) Items(c *gin.Context) {
	items, err := h.svc.ListItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// SetStatus godoc
// @Summary  Change a transaction's status
// @Tags     transactions
// @Produce  json
// @Param    id     path  string true "Transaction id"
// @Param    status query string true "New status"
// @Success  200 {object} dto.TransactionResponse
// @Router   /api/transactions/{id}/status [put]
func (h *TransactionHandler) SetStatus(c *gin.Context) {
	status := model.TransactionStatus(c.Query("status"))
	if !status.Valid() {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{"status": "oneof"}))
		return
	}
	transaction, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// Details godoc
// @Summary  Transaction with customer, creator and itemized products
// @Tags     transactions
// @Produce  json
// @Param    id path string true "Transaction id"
// @Success  200 {object} dto.TransactionDetailsResponse
// @Router   /api/transactions/{id}/details [get]
func (h *TransactionHandler) Details(c *gin.Context) {
	details, err := h.svc.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// Receipt godoc
// @Summary  Printable PDF receipt
// @Tags     transactions
// @Produce  application/pdf
// @Param    id path string true "Transaction id"
// @Success  200 {file} binary
// @Router   /api/transactions/{id}/receipt [get]
func (h *TransactionHandler) Receipt(c *gin.Context) {
	pdf, err := h.svc.Receipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=receipt-%s.pdf", c.Param("id")))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
