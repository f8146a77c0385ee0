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
	"gorm.io/gorm"
)

type SourceService interface {
	Create(ctx context.Context, req dto.SourceRequest) (*dto.SourceResponse, error)
	List(ctx context.Context) ([]dto.SourceResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SourceResponse, error)
	Update(ctx context.Context, id string, req dto.SourceRequest) (*dto.SourceResponse, error)
}

type sourceService struct {
	repo repository.SourceRepository
}

func NewSourceService(repo repository.SourceRepository) SourceService {
	return &sourceService{repo: repo}
}

func (s *sourceService) Create(ctx context.Context, req dto.SourceRequest) (*dto.SourceResponse, error) {
	now := time.Now().UTC()
	src := &model.Source{
		ID:             uuid.NewString(),
		Name:           req.Name,
		SourceType:     req.SourceType,
		ContactPerson:  req.ContactPerson,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		CommissionRate: req.CommissionRate,
		PaymentTerms:   req.PaymentTerms,
		Notes:          req.Notes,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, src); err != nil {
		return nil, err
	}
	resp := sourceToResponse(src)
	return &resp, nil
}

func (s *sourceService) List(ctx context.Context) ([]dto.SourceResponse, error) {
	sources, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SourceResponse, len(sources))
	for i := range sources {
		resp[i] = sourceToResponse(&sources[i])
	}
	return resp, nil
}

func (s *sourceService) GetByID(ctx context.Context, id string) (*dto.SourceResponse, error) {
	src, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := sourceToResponse(src)
	return &resp, nil
}

func (s *sourceService) Update(ctx context.Context, id string, req dto.SourceRequest) (*dto.SourceResponse, error) {
	src, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	src.Name = req.Name
	src.SourceType = req.SourceType
	src.ContactPerson = req.ContactPerson
	src.Email = req.Email
	src.Phone = req.Phone
	src.Address = req.Address
	src.CommissionRate = req.CommissionRate
	src.PaymentTerms = req.PaymentTerms
	src.Notes = req.Notes
	src.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, src); err != nil {
		return nil, err
	}
	resp := sourceToResponse(src)
	return &resp, nil
}

func (s *sourceService) find(ctx context.Context, id string) (*model.Source, error) {
	src, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Source not found")
		}
		return nil, err
	}
	return src, nil
}

func sourceToResponse(s *model.Source) dto.SourceResponse {
	return dto.SourceResponse{
		ID:             s.ID,
		Name:           s.Name,
		SourceType:     s.SourceType,
		ContactPerson:  s.ContactPerson,
		Email:          s.Email,
		Phone:          s.Phone,
		Address:        s.Address,
		CommissionRate: s.CommissionRate,
		PaymentTerms:   s.PaymentTerms,
		Notes:          s.Notes,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
