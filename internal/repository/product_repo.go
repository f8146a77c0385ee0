package repository

import (
	"context"
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/model"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindByCode(ctx context.Context, code string) (*model.Product, error)
	// List returns all products regardless of status.
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	UpdateStatus(ctx context.Context, id string, status model.ProductStatus) error

	// MarkSoldTx transitions a product to sold only if it is still
	// available, inside the caller's transaction. Returns false when the
	// row was already taken; the caller must roll back.
	MarkSoldTx(tx *gorm.DB, id string) (bool, error)

	CountByStatus(ctx context.Context, status model.ProductStatus) (int64, error)
	Count(ctx context.Context) (int64, error)

	// DB exposes the underlying handle so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByCode(ctx context.Context, code string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) UpdateStatus(ctx context.Context, id string, status model.ProductStatus) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()}).Error
}

func (r *productRepo) MarkSoldTx(tx *gorm.DB, id string) (bool, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND status = ?", id, model.StatusAvailable).
		Updates(map[string]any{"status": model.StatusSold, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *productRepo) CountByStatus(ctx context.Context, status model.ProductStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error
	return n, err
}

func (r *productRepo) DB() *gorm.DB { return r.db }
