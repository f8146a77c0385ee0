package service

import (
	"context"

	"github.com/fritz-immanuel/luxtrack/internal/dto"
	"github.com/fritz-immanuel/luxtrack/internal/model"
	"github.com/fritz-immanuel/luxtrack/internal/repository"
)

const recentTransactionLimit = 5

type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	sourceRepo   repository.SourceRepository
	txRepo       repository.TransactionRepository
}

func NewDashboardService(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	sourceRepo repository.SourceRepository,
	txRepo repository.TransactionRepository,
) DashboardService {
	return &dashboardService{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		sourceRepo:   sourceRepo,
		txRepo:       txRepo,
	}
}

// Stats recomputes every figure on each call; there is no caching layer.
// Revenue counts completed sales only, so pending transactions do not move it.
func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	stats := &dto.DashboardStatsResponse{}

	var err error
	if stats.TotalProducts, err = s.productRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.AvailableProducts, err = s.productRepo.CountByStatus(ctx, model.StatusAvailable); err != nil {
		return nil, err
	}
	if stats.SoldProducts, err = s.productRepo.CountByStatus(ctx, model.StatusSold); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = s.customerRepo.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.TotalSources, err = s.sourceRepo.CountActive(ctx); err != nil {
		return nil, err
	}
	if stats.TotalTransactions, err = s.txRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = s.txRepo.CompletedSalesRevenue(ctx); err != nil {
		return nil, err
	}

	recent, err := s.txRepo.Recent(ctx, recentTransactionLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentTransactions = make([]dto.TransactionResponse, len(recent))
	for i := range recent {
		stats.RecentTransactions[i] = transactionToResponse(&recent[i])
	}
	return stats, nil
}
