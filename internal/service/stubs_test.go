package service

import (
	"context"
	"sort"
	"sync"

	"github.com/fritz-immanuel/luxtrack/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. They return nil from DB(), which makes the
// services run their transactional closures directly against the stores.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*model.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memUserRepo) CountByRole(_ context.Context, role model.Role) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type memCustomerRepo struct {
	mu        sync.Mutex
	customers map[string]*model.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[string]*model.Customer)}
}

func (r *memCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) FindByID(_ context.Context, id string) (*model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) ListActive(_ context.Context) ([]model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Customer
	for _, c := range r.customers {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) CountActive(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, c := range r.customers {
		if c.IsActive {
			n++
		}
	}
	return n, nil
}

type memSourceRepo struct {
	mu      sync.Mutex
	sources map[string]*model.Source
}

func newMemSourceRepo() *memSourceRepo {
	return &memSourceRepo{sources: make(map[string]*model.Source)}
}

func (r *memSourceRepo) Create(_ context.Context, s *model.Source) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sources[s.ID] = &cp
	return nil
}

func (r *memSourceRepo) FindByID(_ context.Context, id string) (*model.Source, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sources[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSourceRepo) ListActive(_ context.Context) ([]model.Source, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Source
	for _, s := range r.sources {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memSourceRepo) Update(_ context.Context, s *model.Source) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sources[s.ID] = &cp
	return nil
}

func (r *memSourceRepo) CountActive(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, s := range r.sources {
		if s.IsActive {
			n++
		}
	}
	return n, nil
}

type memProductRepo struct {
	mu       sync.Mutex
	products map[string]*model.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*model.Product)}
}

func (r *memProductRepo) Create(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) FindByCode(_ context.Context, code string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memProductRepo) List(_ context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateStatus(_ context.Context, id string, status model.ProductStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Status = status
	return nil
}

// MarkSoldTx is the stub's only conditional write; the check and the write
// share one critical section, matching the atomicity of the real
// conditional UPDATE.
func (r *memProductRepo) MarkSoldTx(_ *gorm.DB, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || p.Status != model.StatusAvailable {
		return false, nil
	}
	p.Status = model.StatusSold
	return true, nil
}

func (r *memProductRepo) CountByStatus(_ context.Context, status model.ProductStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.products {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memProductRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

func (r *memProductRepo) DB() *gorm.DB { return nil }

type memLogRepo struct {
	mu      sync.Mutex
	entries []model.ProductLog
}

func newMemLogRepo() *memLogRepo { return &memLogRepo{} }

func (r *memLogRepo) Append(_ context.Context, entry *model.ProductLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memLogRepo) AppendTx(_ *gorm.DB, entry *model.ProductLog) error {
	return r.Append(context.Background(), entry)
}

func (r *memLogRepo) ListByProduct(_ context.Context, productID string) ([]model.ProductLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.ProductLog
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].ProductID == productID {
			out = append(out, r.entries[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

type memTransactionRepo struct {
	mu           sync.Mutex
	transactions map[string]*model.Transaction
	order        []string
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{transactions: make(map[string]*model.Transaction)}
}

func (r *memTransactionRepo) CreateTx(_ *gorm.DB, t *model.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	cp.Items = append([]model.TransactionItem(nil), t.Items...)
	r.transactions[t.ID] = &cp
	r.order = append(r.order, t.ID)
	return nil
}

func (r *memTransactionRepo) FindByID(_ context.Context, id string) (*model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	cp.Items = append([]model.TransactionItem(nil), t.Items...)
	return &cp, nil
}

func (r *memTransactionRepo) List(_ context.Context) ([]model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Transaction, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, *r.transactions[r.order[i]])
	}
	return out, nil
}

func (r *memTransactionRepo) ListByCustomer(_ context.Context, customerID string) ([]model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Transaction
	for i := len(r.order) - 1; i >= 0; i-- {
		t := r.transactions[r.order[i]]
		if t.CustomerID == customerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTransactionRepo) ListByProduct(_ context.Context, productID string) ([]model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Transaction
	for i := len(r.order) - 1; i >= 0; i-- {
		t := r.transactions[r.order[i]]
		for _, item := range t.Items {
			if item.ProductID == productID {
				out = append(out, *t)
				break
			}
		}
	}
	return out, nil
}

func (r *memTransactionRepo) ListItems(_ context.Context, transactionID string) ([]model.TransactionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[transactionID]
	if !ok {
		return nil, nil
	}
	return append([]model.TransactionItem(nil), t.Items...), nil
}

func (r *memTransactionRepo) UpdateStatus(_ context.Context, id string, status model.TransactionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Status = status
	return nil
}

func (r *memTransactionRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.transactions)), nil
}

func (r *memTransactionRepo) CompletedSalesRevenue(_ context.Context) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, t := range r.transactions {
		if t.TransactionType == model.TransactionSale && t.Status == model.TransactionCompleted {
			total = total.Add(t.TotalAmount)
		}
	}
	return total, nil
}

func (r *memTransactionRepo) Recent(_ context.Context, limit int) ([]model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Transaction
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *r.transactions[r.order[i]])
	}
	return out, nil
}

func (r *memTransactionRepo) DB() *gorm.DB { return nil }
