package dto

import "time"

type CustomerRequest struct {
	FullName string  `json:"full_name" validate:"required,min=2,max=255"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Notes    *string `json:"notes"`
}

type CustomerResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	Notes     *string   `json:"notes"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerDetailsResponse aggregates the customer with their transaction
// history for the /customers/{id}/details view.
type CustomerDetailsResponse struct {
	Customer         CustomerResponse      `json:"customer"`
	Transactions     []TransactionResponse `json:"transactions"`
	TransactionCount int                   `json:"transaction_count"`
	TotalSpent       string                `json:"total_spent"`
}
