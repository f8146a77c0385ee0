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

type ProductService interface {
	Create(ctx context.Context, actorID string, req dto.ProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ProductResponse, error)
	Update(ctx context.Context, actorID, id string, req dto.ProductRequest) (*dto.ProductResponse, error)
	// SetStatus applies an arbitrary status transition; eligibility is only
	// enforced at sale time, so sold → available is deliberately allowed.
	SetStatus(ctx context.Context, actorID, id string, status model.ProductStatus) (*dto.ProductResponse, error)
	ListLogs(ctx context.Context, id string) ([]dto.ProductLogResponse, error)
	Details(ctx context.Context, id string) (*dto.ProductDetailsResponse, error)
}

type productService struct {
	repo         repository.ProductRepository
	logRepo      repository.ProductLogRepository
	customerRepo repository.CustomerRepository
	sourceRepo   repository.SourceRepository
	userRepo     repository.UserRepository
	txRepo       repository.TransactionRepository
}

func NewProductService(
	repo repository.ProductRepository,
	logRepo repository.ProductLogRepository,
	customerRepo repository.CustomerRepository,
	sourceRepo repository.SourceRepository,
	userRepo repository.UserRepository,
	txRepo repository.TransactionRepository,
) ProductService {
	return &productService{
		repo:         repo,
		logRepo:      logRepo,
		customerRepo: customerRepo,
		sourceRepo:   sourceRepo,
		userRepo:     userRepo,
		txRepo:       txRepo,
	}
}

func (s *productService) Create(ctx context.Context, actorID string, req dto.ProductRequest) (*dto.ProductResponse, error) {
	if _, err := s.repo.FindByCode(ctx, req.Code); err == nil {
		return nil, apierror.Conflict("Product code already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	p := &model.Product{
		ID:            uuid.NewString(),
		Code:          req.Code,
		Name:          req.Name,
		Brand:         req.Brand,
		Category:      req.Category,
		Condition:     req.Condition,
		Status:        model.StatusAvailable,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		Description:   req.Description,
		Images:        model.StringList(req.Images),
		SellerID:      req.SellerID,
		SourceID:      req.SourceID,
		CreatedBy:     actorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if err := s.appendLog(ctx, p.ID, model.LogActionCreated, actorID, nil, model.SnapshotOfProduct(p)); err != nil {
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, len(products))
	for i := range products {
		resp[i] = productToResponse(&products[i])
	}
	return resp, nil
}

func (s *productService) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) Update(ctx context.Context, actorID, id string, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	old := model.SnapshotOfProduct(p)

	p.Name = req.Name
	p.Brand = req.Brand
	p.Category = req.Category
	p.Condition = req.Condition
	p.PurchasePrice = req.PurchasePrice
	p.SellingPrice = req.SellingPrice
	p.Description = req.Description
	p.Images = model.StringList(req.Images)
	p.SellerID = req.SellerID
	p.SourceID = req.SourceID
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if err := s.appendLog(ctx, p.ID, model.LogActionUpdated, actorID, old, model.SnapshotOfProduct(p)); err != nil {
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) SetStatus(ctx context.Context, actorID, id string, status model.ProductStatus) (*dto.ProductResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := p.Status
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	if err := s.appendLog(ctx, id, model.LogActionStatusChanged, actorID,
		model.SnapshotOfStatus(previous), model.SnapshotOfStatus(status)); err != nil {
		return nil, err
	}
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
	resp := productToResponse(p)
	return &resp, nil
}

func (s *productService) ListLogs(ctx context.Context, id string) ([]dto.ProductLogResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	logs, err := s.logRepo.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductLogResponse, len(logs))
	for i := range logs {
		resp[i] = logToResponse(&logs[i])
	}
	return resp, nil
}

// Details resolves the product's weak references (source, consigning
// customer, creating user), its audit trail and the transactions that
// include it. Dangling references resolve to nil rather than failing.
func (s *productService) Details(ctx context.Context, id string) (*dto.ProductDetailsResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &dto.ProductDetailsResponse{Product: productToResponse(p)}

	if p.SourceID != nil {
		if src, err := s.sourceRepo.FindByID(ctx, *p.SourceID); err == nil {
			resp := sourceToResponse(src)
			details.Source = &resp
		}
	}
	if p.SellerID != nil {
		if c, err := s.customerRepo.FindByID(ctx, *p.SellerID); err == nil {
			resp := customerToResponse(c)
			details.Seller = &resp
		}
	}
	if p.CreatedBy != "" {
		if u, err := s.userRepo.FindByID(ctx, p.CreatedBy); err == nil {
			resp := userToResponse(u)
			details.Creator = &resp
		}
	}

	logs, err := s.logRepo.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	details.Logs = make([]dto.ProductLogResponse, len(logs))
	for i := range logs {
		details.Logs[i] = logToResponse(&logs[i])
	}

	transactions, err := s.txRepo.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	details.Transactions = make([]dto.TransactionResponse, len(transactions))
	for i := range transactions {
		details.Transactions[i] = transactionToResponse(&transactions[i])
	}
	return details, nil
}

// appendLog writes one audit entry. Audit writes are required for success:
// a failed append fails the triggering operation.
func (s *productService) appendLog(ctx context.Context, productID, action, actorID string, oldVal, newVal *model.Snapshot) error {
	return s.logRepo.Append(ctx, &model.ProductLog{
		ID:        uuid.NewString(),
		ProductID: productID,
		Action:    action,
		OldValue:  oldVal,
		NewValue:  newVal,
		UserID:    actorID,
		Timestamp: time.Now().UTC(),
	})
}

func (s *productService) find(ctx context.Context, id string) (*model.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Product not found")
		}
		return nil, err
	}
	return p, nil
}

func productToResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Brand:         p.Brand,
		Category:      p.Category,
		Condition:     p.Condition,
		Status:        p.Status,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		Description:   p.Description,
		Images:        []string(p.Images),
		SellerID:      p.SellerID,
		SourceID:      p.SourceID,
		CreatedBy:     p.CreatedBy,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func logToResponse(l *model.ProductLog) dto.ProductLogResponse {
	return dto.ProductLogResponse{
		ID:        l.ID,
		ProductID: l.ProductID,
		Action:    l.Action,
		OldValue:  l.OldValue,
		NewValue:  l.NewValue,
		UserID:    l.UserID,
		Timestamp: l.Timestamp,
	}
}
