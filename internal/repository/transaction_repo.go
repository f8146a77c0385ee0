package repository

import (
	"context"
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/model"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	// CreateTx inserts the transaction and its line items inside the
	// caller's transaction.
	CreateTx(tx *gorm.DB, t *model.Transaction) error
	FindByID(ctx context.Context, id string) (*model.Transaction, error)
	List(ctx context.Context) ([]model.Transaction, error)
	ListByCustomer(ctx context.Context, customerID string) ([]model.Transaction, error)
	// ListByProduct returns transactions containing the product among
	// their line items.
	ListByProduct(ctx context.Context, productID string) ([]model.Transaction, error)
	ListItems(ctx context.Context, transactionID string) ([]model.TransactionItem, error)
	UpdateStatus(ctx context.Context, id string, status model.TransactionStatus) error

	Count(ctx context.Context) (int64, error)
	// CompletedSalesRevenue sums total_amount over completed sales.
	CompletedSalesRevenue(ctx context.Context) (decimal.Decimal, error)
	Recent(ctx context.Context, limit int) ([]model.Transaction, error)

	DB() *gorm.DB
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository { return &transactionRepo{db: db} }

func (r *transactionRepo) CreateTx(tx *gorm.DB, t *model.Transaction) error {
	return tx.Create(t).Error
}

func (r *transactionRepo) FindByID(ctx context.Context, id string) (*model.Transaction, error) {
	var t model.Transaction
	err := r.db.WithContext(ctx).Preload("Items").First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transactionRepo) List(ctx context.Context) ([]model.Transaction, error) {
	var ts []model.Transaction
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ts).Error
	return ts, err
}

func (r *transactionRepo) ListByCustomer(ctx context.Context, customerID string) ([]model.Transaction, error) {
	var ts []model.Transaction
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&ts).Error
	return ts, err
}

func (r *transactionRepo) ListByProduct(ctx context.Context, productID string) ([]model.Transaction, error) {
	var ts []model.Transaction
	err := r.db.WithContext(ctx).
		Joins("JOIN transaction_items ON transaction_items.transaction_id = transactions.id").
		Where("transaction_items.product_id = ?", productID).
		Order("transactions.created_at DESC").
		Find(&ts).Error
	return ts, err
}

func (r *transactionRepo) ListItems(ctx context.Context, transactionID string) ([]model.TransactionItem, error) {
	var items []model.TransactionItem
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Find(&items).Error
	return items, err
}

func (r *transactionRepo) UpdateStatus(ctx context.Context, id string, status model.TransactionStatus) error {
	return r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()}).Error
}

func (r *transactionRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).Count(&n).Error
	return n, err
}

func (r *transactionRepo) CompletedSalesRevenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("transaction_type = ? AND status = ?", model.TransactionSale, model.TransactionCompleted).
		Scan(&revenue).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !revenue.Valid {
		return decimal.Zero, nil
	}
	return revenue.Decimal, nil
}

func (r *transactionRepo) Recent(ctx context.Context, limit int) ([]model.Transaction, error) {
	var ts []model.Transaction
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&ts).Error
	return ts, err
}

func (r *transactionRepo) DB() *gorm.DB { return r.db }
