package dto

import (
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/model"
)

type SourceRequest struct {
	Name           string           `json:"name"            validate:"required,min=2,max=255"`
	SourceType     model.SourceType `json:"source_type"     validate:"required,oneof=consigner estate_sale auction private_seller wholesale other"`
	ContactPerson  *string          `json:"contact_person"`
	Email          *string          `json:"email"           validate:"omitempty,email"`
	Phone          *string          `json:"phone"`
	Address        *string          `json:"address"`
	CommissionRate *float64         `json:"commission_rate" validate:"omitempty,gte=0,lte=1"`
	PaymentTerms   *string          `json:"payment_terms"`
	Notes          *string          `json:"notes"`
}

type SourceResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	SourceType     model.SourceType `json:"source_type"`
	ContactPerson  *string          `json:"contact_person"`
	Email          *string          `json:"email"`
	Phone          *string          `json:"phone"`
	Address        *string          `json:"address"`
	CommissionRate *float64         `json:"commission_rate"`
	PaymentTerms   *string          `json:"payment_terms"`
	Notes          *string          `json:"notes"`
	IsActive       bool             `json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
