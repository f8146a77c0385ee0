package service

import (
	"context"
	"testing"
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/apierror"
	"github.com/fritz-immanuel/luxtrack/internal/dto"
	"github.com/fritz-immanuel/luxtrack/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCRUD(t *testing.T) {
	repo := newMemCustomerRepo()
	svc := NewCustomerService(repo, newMemTransactionRepo())
	ctx := context.Background()

	email := "jane@example.com"
	created, err := svc.Create(ctx, dto.CustomerRequest{FullName: "Jane Doe", Email: &email})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	phone := "+1-555-0100"
	updated, err := svc.Update(ctx, created.ID, dto.CustomerRequest{FullName: "Jane A. Doe", Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Jane A. Doe", updated.FullName)
	require.NotNil(t, updated.Phone)
	assert.Nil(t, updated.Email, "update overwrites all mutable fields")

	_, err = svc.GetByID(ctx, "ghost")
	require.ErrorIs(t, err, apierror.ErrNotFound)
	assert.Equal(t, "Customer not found", err.Error())
}

func TestCustomerDetailsTotalSpent(t *testing.T) {
	customers := newMemCustomerRepo()
	txs := newMemTransactionRepo()
	svc := NewCustomerService(customers, txs)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, customers.Create(ctx, &model.Customer{
		ID: "cust-1", FullName: "Jane Doe", IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))

	require.NoError(t, txs.CreateTx(nil, &model.Transaction{
		ID: "tx-1", TransactionType: model.TransactionSale, Status: model.TransactionPending,
		CustomerID: "cust-1", TotalAmount: decimal.NewFromInt(150), CreatedAt: now,
	}))
	require.NoError(t, txs.CreateTx(nil, &model.Transaction{
		ID: "tx-2", TransactionType: model.TransactionPurchase, Status: model.TransactionCompleted,
		CustomerID: "cust-1", TotalAmount: decimal.NewFromInt(4000), CreatedAt: now,
	}))

	details, err := svc.Details(ctx, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, 2, details.TransactionCount)
	// Only sales count toward spend; purchases pay the customer.
	assert.Equal(t, "150", details.TotalSpent)
}
