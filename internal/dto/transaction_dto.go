package dto

import (
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/model"
	"github.com/shopspring/decimal"
)

type TransactionItemInput struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  int             `json:"quantity"   validate:"omitempty,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
}

type CreateTransactionRequest struct {
	TransactionType model.TransactionType  `json:"transaction_type" validate:"required,oneof=purchase sale"`
	CustomerID      string                 `json:"customer_id"      validate:"required"`
	PaymentMethod   string                 `json:"payment_method"   validate:"required"`
	ShippingMethod  *string                `json:"shipping_method"`
	Notes           *string                `json:"notes"`
	ArrivalAt       *time.Time             `json:"arrival_at"`
	Items           []TransactionItemInput `json:"items" validate:"required,min=1,dive"`
}

type TransactionResponse struct {
	ID              string                  `json:"id"`
	TransactionType model.TransactionType   `json:"transaction_type"`
	Status          model.TransactionStatus `json:"status"`
	CustomerID      string                  `json:"customer_id"`
	TotalAmount     decimal.Decimal         `json:"total_amount"`
	PaymentMethod   string                  `json:"payment_method"`
	ShippingMethod  *string                 `json:"shipping_method"`
	Notes           *string                 `json:"notes"`
	ArrivalAt       *time.Time              `json:"arrival_at"`
	DeliveredAt     *time.Time              `json:"delivered_at"`
	CreatedBy       string                  `json:"created_by"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

type TransactionItemResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	ProductID     string          `json:"product_id"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// TransactionItemDetail pairs a line item with its product for the details
// view; Product is nil when the product row has since vanished.
type TransactionItemDetail struct {
	TransactionItemResponse
	Product *ProductResponse `json:"product"`
}

type TransactionDetailsResponse struct {
	Transaction TransactionResponse     `json:"transaction"`
	Customer    *CustomerResponse       `json:"customer"`
	Creator     *UserResponse           `json:"creator"`
	Items       []TransactionItemDetail `json:"items"`
}
