package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a purchase (stock in) or sale (stock out) composed of one
// or more line items. TotalAmount is always derived from the items; callers
// can never set it.
type Transaction struct {
	ID              string            `gorm:"type:varchar(36);primaryKey"`
	TransactionType TransactionType   `gorm:"type:varchar(50);not null"`
	Status          TransactionStatus `gorm:"type:varchar(50);not null;default:'pending'"`
	CustomerID      string            `gorm:"type:varchar(36);index;not null"`
	TotalAmount     decimal.Decimal   `gorm:"type:decimal(12,2);not null"`
	PaymentMethod   string            `gorm:"not null"`
	ShippingMethod  *string
	Notes           *string
	ArrivalAt       *time.Time
	DeliveredAt     *time.Time
	CreatedBy       string `gorm:"type:varchar(36)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []TransactionItem `gorm:"foreignKey:TransactionID"`
}

// TransactionItem is one line of a transaction. Created only by the
// transaction workflow and immutable thereafter.
type TransactionItem struct {
	ID            string          `gorm:"type:varchar(36);primaryKey"`
	TransactionID string          `gorm:"type:varchar(36);index;not null"`
	ProductID     string          `gorm:"type:varchar(36);index;not null"`
	Quantity      int             `gorm:"not null;default:1"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
