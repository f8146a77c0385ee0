package model

import "time"

// Customer is a buyer (and, for consigned goods, sometimes the seller
// referenced by Product.SellerID). Never hard-deleted; listing filters on
// IsActive.
type Customer struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	FullName  string `gorm:"not null"`
	Email     *string
	Phone     *string
	Address   *string
	Notes     *string
	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
