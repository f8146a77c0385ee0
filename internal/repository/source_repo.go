package repository

import (
	"context"

	"github.com/fritz-immanuel/luxtrack/internal/model"

	"gorm.io/gorm"
)

type SourceRepository interface {
	Create(ctx context.Context, s *model.Source) error
	FindByID(ctx context.Context, id string) (*model.Source, error)
	ListActive(ctx context.Context) ([]model.Source, error)
	Update(ctx context.Context, s *model.Source) error
	CountActive(ctx context.Context) (int64, error)
}

type sourceRepo struct{ db *gorm.DB }

func NewSourceRepository(db *gorm.DB) SourceRepository { return &sourceRepo{db: db} }

func (r *sourceRepo) Create(ctx context.Context, s *model.Source) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sourceRepo) FindByID(ctx context.Context, id string) (*model.Source, error) {
	var s model.Source
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sourceRepo) ListActive(ctx context.Context) ([]model.Source, error) {
	var sources []model.Source
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("created_at DESC").Find(&sources).Error
	return sources, err
}

func (r *sourceRepo) Update(ctx context.Context, s *model.Source) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *sourceRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Source{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}
