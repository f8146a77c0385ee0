package repository

import (
	"context"

	"github.com/fritz-immanuel/luxtrack/internal/model"

	"gorm.io/gorm"
)

// ProductLogRepository is append-only: entries are never updated or deleted.
type ProductLogRepository interface {
	Append(ctx context.Context, entry *model.ProductLog) error
	// AppendTx inserts inside the caller's transaction, so audit entries
	// commit or roll back together with the mutation they describe.
	AppendTx(tx *gorm.DB, entry *model.ProductLog) error
	ListByProduct(ctx context.Context, productID string) ([]model.ProductLog, error)
}

type productLogRepo struct{ db *gorm.DB }

func NewProductLogRepository(db *gorm.DB) ProductLogRepository { return &productLogRepo{db: db} }

func (r *productLogRepo) Append(ctx context.Context, entry *model.ProductLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *productLogRepo) AppendTx(tx *gorm.DB, entry *model.ProductLog) error {
	return tx.Create(entry).Error
}

func (r *productLogRepo) ListByProduct(ctx context.Context, productID string) ([]model.ProductLog, error) {
	var logs []model.ProductLog
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("timestamp DESC").
		Find(&logs).Error
	return logs, err
}
