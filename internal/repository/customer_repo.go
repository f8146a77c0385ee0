package repository

import (
	"context"

	"github.com/fritz-immanuel/luxtrack/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	// ListActive returns active customers only; there is no hard delete.
	ListActive(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	CountActive(ctx context.Context) (int64, error)
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) ListActive(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("created_at DESC").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) Update(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *customerRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}
