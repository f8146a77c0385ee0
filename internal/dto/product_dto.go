package dto

import (
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/model"
	"github.com/shopspring/decimal"
)

// ProductRequest is used for both create and update: updates overwrite all
// mutable fields (code, status and created_by are not caller-settable on
// update; status changes go through the dedicated status route).
type ProductRequest struct {
	Code          string                 `json:"code"           validate:"required,min=1,max=100"`
	Name          string                 `json:"name"           validate:"required,min=1,max=255"`
	Brand         string                 `json:"brand"          validate:"required"`
	Category      string                 `json:"category"       validate:"required"`
	Condition     model.ProductCondition `json:"condition"      validate:"required,oneof=excellent very_good good fair poor"`
	PurchasePrice decimal.Decimal        `json:"purchase_price" validate:"required"`
	SellingPrice  *decimal.Decimal       `json:"selling_price"`
	Description   *string                `json:"description"`
	Images        []string               `json:"images"`
	SellerID      *string                `json:"seller_id"`
	SourceID      *string                `json:"source_id"`
}

type ProductResponse struct {
	ID            string                 `json:"id"`
	Code          string                 `json:"code"`
	Name          string                 `json:"name"`
	Brand         string                 `json:"brand"`
	Category      string                 `json:"category"`
	Condition     model.ProductCondition `json:"condition"`
	Status        model.ProductStatus    `json:"status"`
	PurchasePrice decimal.Decimal        `json:"purchase_price"`
	SellingPrice  *decimal.Decimal       `json:"selling_price"`
	Description   *string                `json:"description"`
	Images        []string               `json:"images"`
	SellerID      *string                `json:"seller_id"`
	SourceID      *string                `json:"source_id"`
	CreatedBy     string                 `json:"created_by"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type ProductLogResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Action    string          `json:"action"`
	OldValue  *model.Snapshot `json:"old_value"`
	NewValue  *model.Snapshot `json:"new_value"`
	UserID    string          `json:"user_id"`
	Timestamp time.Time       `json:"timestamp"`
}

// ProductDetailsResponse joins the product with its weak references and
// audit trail for the /products/{id}/details view.
type ProductDetailsResponse struct {
	Product      ProductResponse       `json:"product"`
	Source       *SourceResponse       `json:"source"`
	Seller       *CustomerResponse     `json:"seller"`
	Creator      *UserResponse         `json:"creator"`
	Logs         []ProductLogResponse  `json:"logs"`
	Transactions []TransactionResponse `json:"transactions"`
}
