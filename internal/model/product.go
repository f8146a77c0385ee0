package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a single luxury item in inventory. Code is the globally unique
// human-facing identifier (e.g. "LV-3F9A22B1"). SellerID points at the
// customer who consigned the item (legacy field), SourceID at the supply
// partner. Both are weak references, resolved on the details endpoint.
type Product struct {
	ID            string           `gorm:"type:varchar(36);primaryKey"`
	Code          string           `gorm:"uniqueIndex;not null"`
	Name          string           `gorm:"index;not null"`
	Brand         string           `gorm:"not null"`
	Category      string           `gorm:"not null"`
	Condition     ProductCondition `gorm:"type:varchar(50);not null"`
	Status        ProductStatus    `gorm:"type:varchar(50);not null;default:'available'"`
	PurchasePrice decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	SellingPrice  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Description   *string
	Images        StringList `gorm:"type:jsonb"`
	SellerID      *string    `gorm:"type:varchar(36);index"`
	SourceID      *string    `gorm:"type:varchar(36);index"`
	CreatedBy     string     `gorm:"type:varchar(36)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
