package model

import "time"

// ProductLog is an append-only audit record of a state change on a product.
// Rows are never updated or deleted; services write one entry per mutation.
type ProductLog struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	ProductID string    `gorm:"type:varchar(36);index;not null"`
	Action    string    `gorm:"type:varchar(100);not null"`
	OldValue  *Snapshot `gorm:"type:jsonb"`
	NewValue  *Snapshot `gorm:"type:jsonb"`
	UserID    string    `gorm:"type:varchar(36)"`
	Timestamp time.Time `gorm:"index;not null"`
}
