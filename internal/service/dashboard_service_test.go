package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	products := newMemProductRepo()
	customers := newMemCustomerRepo()
	sources := newMemSourceRepo()
	txs := newMemTransactionRepo()
	svc := NewDashboardService(products, customers, sources, txs)
	ctx := context.Background()
	now := time.Now().UTC()

	for i, status := range []model.ProductStatus{
		model.StatusAvailable, model.StatusAvailable, model.StatusSold, model.StatusReserved,
	} {
		require.NoError(t, products.Create(ctx, &model.Product{
			ID: fmt.Sprintf("prod-%d", i), Code: fmt.Sprintf("LX-%03d", i),
			Status: status, CreatedAt: now,
		}))
	}
	require.NoError(t, customers.Create(ctx, &model.Customer{ID: "cust-1", IsActive: true}))
	require.NoError(t, customers.Create(ctx, &model.Customer{ID: "cust-2", IsActive: false}))
	require.NoError(t, sources.Create(ctx, &model.Source{ID: "src-1", IsActive: true}))

	// Only the completed sale moves revenue.
	seed := []struct {
		id     string
		typ    model.TransactionType
		status model.TransactionStatus
		amount int64
	}{
		{"tx-1", model.TransactionSale, model.TransactionCompleted, 150},
		{"tx-2", model.TransactionSale, model.TransactionPending, 999},
		{"tx-3", model.TransactionPurchase, model.TransactionCompleted, 4000},
		{"tx-4", model.TransactionSale, model.TransactionCancelled, 777},
	}
	for _, s := range seed {
		require.NoError(t, txs.CreateTx(nil, &model.Transaction{
			ID: s.id, TransactionType: s.typ, Status: s.status,
			TotalAmount: decimal.NewFromInt(s.amount), CreatedAt: now,
		}))
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalProducts)
	assert.EqualValues(t, 2, stats.AvailableProducts)
	assert.EqualValues(t, 1, stats.SoldProducts)
	assert.EqualValues(t, 1, stats.TotalCustomers, "inactive customers are not counted")
	assert.EqualValues(t, 1, stats.TotalSources)
	assert.EqualValues(t, 4, stats.TotalTransactions)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(150)),
		"revenue = %s", stats.TotalRevenue)
	assert.Len(t, stats.RecentTransactions, 4)
}

func TestDashboardRecentTransactionsLimit(t *testing.T) {
	txs := newMemTransactionRepo()
	svc := NewDashboardService(newMemProductRepo(), newMemCustomerRepo(), newMemSourceRepo(), txs)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		require.NoError(t, txs.CreateTx(nil, &model.Transaction{
			ID:              fmt.Sprintf("tx-%d", i),
			TransactionType: model.TransactionSale,
			Status:          model.TransactionPending,
			TotalAmount:     decimal.NewFromInt(int64(i)),
			CreatedAt:       time.Now().UTC(),
		}))
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats.RecentTransactions, recentTransactionLimit)
	assert.Equal(t, "tx-7", stats.RecentTransactions[0].ID, "newest first")
}
