package model

import "time"

// Source is a supply partner: consignor, estate sale, auction house, etc.
// CommissionRate is a fraction in [0,1], not a currency amount.
type Source struct {
	ID             string     `gorm:"type:varchar(36);primaryKey"`
	Name           string     `gorm:"not null"`
	SourceType     SourceType `gorm:"type:varchar(64)"`
	ContactPerson  *string
	Email          *string
	Phone          *string
	Address        *string
	CommissionRate *float64
	PaymentTerms   *string
	Notes          *string
	IsActive       bool `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
