package service

import (
	"context"
	"errors"
	"time"

	"github.com/fritz-immanuel/luxtrack/internal/apierror"
	"github.com/fritz-immanuel/luxtrack/internal/dto"
	"github.com/fritz-immanuel/luxtrack/internal/infra"
	"github.com/fritz-immanuel/luxtrack/internal/model"
	"github.com/fritz-immanuel/luxtrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionService interface {
	Create(ctx context.Context, actorID string, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	List(ctx context.Context) ([]dto.TransactionResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error)
	ListItems(ctx context.Context, id string) ([]dto.TransactionItemResponse, error)
	SetStatus(ctx context.Context, id string, status model.TransactionStatus) (*dto.TransactionResponse, error)
	Details(ctx context.Context, id string) (*dto.TransactionDetailsResponse, error)
	Receipt(ctx context.Context, id string) ([]byte, error)
}

type transactionService struct {
	repo         repository.TransactionRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
	logRepo      repository.ProductLogRepository
}

func NewTransactionService(
	repo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
	logRepo repository.ProductLogRepository,
) TransactionService {
	return &transactionService{
		repo:         repo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		logRepo:      logRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode with in-memory stubs).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Create runs the transaction-creation workflow:
//  1. resolve the customer,
//  2. pre-flight: resolve every product and, for sales, require it to be
//     available; accumulate the server-computed total,
//  3. inside ONE storage transaction: insert the transaction + items and,
//     for sales, transition each product to sold via a conditional update
//     plus an audit entry.
//
// The sold-transition re-checks availability at write time (status guard in
// the UPDATE), so two concurrent sales of the same product cannot both
// succeed: the loser's conditional update affects zero rows and the whole
// creation rolls back.
func (s *transactionService) Create(ctx context.Context, actorID string, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Customer not found")
		}
		return nil, err
	}

	type resolvedItem struct {
		product   *model.Product
		quantity  int
		unitPrice decimal.Decimal
		lineTotal decimal.Decimal
	}

	resolved := make([]resolvedItem, 0, len(req.Items))
	total := decimal.Zero
	for _, item := range req.Items {
		p, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NotFound("Product %s not found", item.ProductID)
			}
			return nil, err
		}
		if req.TransactionType == model.TransactionSale && p.Status != model.StatusAvailable {
			return nil, apierror.InvalidState("Product %s is not available for sale", p.Code)
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
		total = total.Add(lineTotal)
		resolved = append(resolved, resolvedItem{
			product:   p,
			quantity:  qty,
			unitPrice: item.UnitPrice,
			lineTotal: lineTotal,
		})
	}

	now := time.Now().UTC()
	t := &model.Transaction{
		ID:              uuid.NewString(),
		TransactionType: req.TransactionType,
		Status:          model.TransactionPending,
		CustomerID:      req.CustomerID,
		TotalAmount:     total,
		PaymentMethod:   req.PaymentMethod,
		ShippingMethod:  req.ShippingMethod,
		Notes:           req.Notes,
		ArrivalAt:       req.ArrivalAt,
		CreatedBy:       actorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, r := range resolved {
		t.Items = append(t.Items, model.TransactionItem{
			ID:            uuid.NewString(),
			TransactionID: t.ID,
			ProductID:     r.product.ID,
			Quantity:      r.quantity,
			UnitPrice:     r.unitPrice,
			TotalPrice:    r.lineTotal,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, t); err != nil {
			return err
		}
		if req.TransactionType != model.TransactionSale {
			return nil
		}
		for _, r := range resolved {
			sold, err := s.productRepo.MarkSoldTx(tx, r.product.ID)
			if err != nil {
				return err
			}
			if !sold {
				// Lost the race since pre-flight: another transaction
				// took the product. Roll everything back.
				return apierror.InvalidState("Product %s is not available for sale", r.product.Code)
			}
			entry := &model.ProductLog{
				ID:        uuid.NewString(),
				ProductID: r.product.ID,
				Action:    model.LogActionSold,
				NewValue:  model.SnapshotOfTransaction(t.ID),
				UserID:    actorID,
				Timestamp: time.Now().UTC(),
			}
			if err := s.logRepo.AppendTx(tx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := transactionToResponse(t)
	return &resp, nil
}

func (s *transactionService) List(ctx context.Context) ([]dto.TransactionResponse, error) {
	transactions, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TransactionResponse, len(transactions))
	for i := range transactions {
		resp[i] = transactionToResponse(&transactions[i])
	}
	return resp, nil
}

func (s *transactionService) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	t, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := transactionToResponse(t)
	return &resp, nil
}

func (s *transactionService) ListItems(ctx context.Context, id string) ([]dto.TransactionItemResponse, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TransactionItemResponse, len(items))
	for i := range items {
		resp[i] = itemToResponse(&items[i])
	}
	return resp, nil
}

func (s *transactionService) SetStatus(ctx context.Context, id string, status model.TransactionStatus) (*dto.TransactionResponse, error) {
	t, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	resp := transactionToResponse(t)
	return &resp, nil
}

func (s *transactionService) Details(ctx context.Context, id string) (*dto.TransactionDetailsResponse, error) {
	t, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	details := &dto.TransactionDetailsResponse{Transaction: transactionToResponse(t)}

	if c, err := s.customerRepo.FindByID(ctx, t.CustomerID); err == nil {
		resp := customerToResponse(c)
		details.Customer = &resp
	}
	if t.CreatedBy != "" {
		if u, err := s.userRepo.FindByID(ctx, t.CreatedBy); err == nil {
			resp := userToResponse(u)
			details.Creator = &resp
		}
	}

	items, err := s.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	details.Items = make([]dto.TransactionItemDetail, len(items))
	for i := range items {
		details.Items[i] = dto.TransactionItemDetail{TransactionItemResponse: itemToResponse(&items[i])}
		if p, err := s.productRepo.FindByID(ctx, items[i].ProductID); err == nil {
			resp := productToResponse(p)
			details.Items[i].Product = &resp
		}
	}
	return details, nil
}

// Receipt renders a printable PDF for the transaction.
func (s *transactionService) Receipt(ctx context.Context, id string) ([]byte, error) {
	details, err := s.Details(ctx, id)
	if err != nil {
		return nil, err
	}

	data := infra.ReceiptData{
		TransactionID:   details.Transaction.ID,
		TransactionType: string(details.Transaction.TransactionType),
		PaymentMethod:   details.Transaction.PaymentMethod,
		Total:           details.Transaction.TotalAmount,
		CreatedAt:       details.Transaction.CreatedAt,
	}
	if details.Customer != nil {
		data.CustomerName = details.Customer.FullName
	}
	for _, item := range details.Items {
		name := item.ProductID
		if item.Product != nil {
			name = item.Product.Name
		}
		data.Lines = append(data.Lines, infra.ReceiptLine{
			Name:     name,
			Quantity: item.Quantity,
			Total:    item.TotalPrice,
		})
	}
	return infra.RenderReceiptPDF(data)
}

func (s *transactionService) find(ctx context.Context, id string) (*model.Transaction, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Transaction not found")
		}
		return nil, err
	}
	return t, nil
}

func transactionToResponse(t *model.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              t.ID,
		TransactionType: t.TransactionType,
		Status:          t.Status,
		CustomerID:      t.CustomerID,
		TotalAmount:     t.TotalAmount,
		PaymentMethod:   t.PaymentMethod,
		ShippingMethod:  t.ShippingMethod,
		Notes:           t.Notes,
		ArrivalAt:       t.ArrivalAt,
		DeliveredAt:     t.DeliveredAt,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func itemToResponse(i *model.TransactionItem) dto.TransactionItemResponse {
	return dto.TransactionItemResponse{
		ID:            i.ID,
		TransactionID: i.TransactionID,
		ProductID:     i.ProductID,
		Quantity:      i.Quantity,
		UnitPrice:     i.UnitPrice,
		TotalPrice:    i.TotalPrice,
	}
}
