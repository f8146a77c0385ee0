package service

import (
	"context"
	"errors"
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/apierror"
	"github.com/fritz-immanuel/luxtrack/internal/dto"
	"github.com/fritz-immanuel/luxtrack/internal/model"
	"github.com/fritz-immanuel/luxtrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CustomerService interface {
	Create(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error)
	Update(ctx context.Context, id string, req dto.CustomerRequest) (*dto.CustomerResponse, error)
	Details(ctx context.Context, id string) (*dto.CustomerDetailsResponse, error)
}

type customerService struct {
	repo   repository.CustomerRepository
	txRepo repository.TransactionRepository
}

func NewCustomerService(repo repository.CustomerRepository, txRepo repository.TransactionRepository) CustomerService {
	return &customerService{repo: repo, txRepo: txRepo}
}

func (s *customerService) Create(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	now := time.Now().UTC()
	c := &model.Customer{
		ID:        uuid.NewString(),
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Notes:     req.Notes,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := customerToResponse(c)
	return &resp, nil
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CustomerResponse, len(customers))
	for i := range customers {
		resp[i] = customerToResponse(&customers[i])
	}
	return resp, nil
}

func (s *customerService) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := customerToResponse(c)
	return &resp, nil
}

func (s *customerService) Update(ctx context.Context, id string, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	c.FullName = req.FullName
	c.Email = req.Email
	c.Phone = req.Phone
	c.Address = req.Address
	c.Notes = req.Notes
	c.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := customerToResponse(c)
	return &resp, nil
}

// Details returns the customer together with their transaction history and
// the total spent across sale transactions.
func (s *customerService) Details(ctx context.Context, id string) (*dto.CustomerDetailsResponse, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	transactions, err := s.txRepo.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	totalSpent := decimal.Zero
	txResp := make([]dto.TransactionResponse, len(transactions))
	for i := range transactions {
		txResp[i] = transactionToResponse(&transactions[i])
		if transactions[i].TransactionType == model.TransactionSale {
			totalSpent = totalSpent.Add(transactions[i].TotalAmount)
		}
	}
	return &dto.CustomerDetailsResponse{
		Customer:         customerToResponse(c),
		Transactions:     txResp,
		TransactionCount: len(transactions),
		TotalSpent:       totalSpent.String(),
	}, nil
}

func (s *customerService) find(ctx context.Context, id string) (*model.Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Customer not found")
		}
		return nil, err
	}
	return c, nil
}

func customerToResponse(c *model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Notes:     c.Notes,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
