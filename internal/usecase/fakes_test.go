package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/hugohenrick/pos-vendas/internal/domain/customer"
	"github.com/hugohenrick/pos-vendas/internal/domain/product"
	"github.com/hugohenrick/pos-vendas/internal/domain/sale"
	"github.com/hugohenrick/pos-vendas/internal/domain/stock"
	"github.com/hugohenrick/pos-vendas/internal/domain/uow"
	"github.com/hugohenrick/pos-vendas/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type decrement struct {
	productID int64
	amount    decimal.Decimal
}

// memState é o "banco" em memória; cada Tx trabalha numa cópia
type memState struct {
	nextSaleID    int64
	nextItemID    int64
	nextProductID int64
	nextEntryID   int64
	sales         map[int64]sale.Sale
	items         []sale.LineItem
	decrements    []decrement
	products      map[int64]product.Product
	customers     map[int64]customer.Customer
	provisional   []stock.ProvisionalEntry
	merges        []stock.Merge
}

func newMemState() *memState {
	return &memState{
		sales:     map[int64]sale.Sale{},
		products:  map[int64]product.Product{},
		customers: map[int64]customer.Customer{},
	}
}

func (s *memState) clone() *memState {
	c := *s
	c.sales = make(map[int64]sale.Sale, len(s.sales))
	for k, v := range s.sales {
		c.sales[k] = v
	}
	c.products = make(map[int64]product.Product, len(s.products))
	for k, v := range s.products {
		c.products[k] = v
	}
	c.customers = make(map[int64]customer.Customer, len(s.customers))
	for k, v := range s.customers {
		c.customers[k] = v
	}
	c.items = append([]sale.LineItem(nil), s.items...)
	c.decrements = append([]decrement(nil), s.decrements...)
	c.provisional = append([]stock.ProvisionalEntry(nil), s.provisional...)
	c.merges = append([]stock.Merge(nil), s.merges...)
	return &c
}

// fakeUnitOfWork simula begin/commit/rollback com injeção de falhas por operação
type fakeUnitOfWork struct {
	mu          sync.Mutex
	state       *memState
	begins      int
	commits     int
	rollbacks   int
	ledgerCalls int
	beginErr    error
	failures    map[string]error
	onOp        func(op string)
	// onTxOp enxerga o estado da transação, simulando escritas concorrentes
	onTxOp func(tx *fakeTx, op string)
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{state: newMemState(), failures: map[string]error{}}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) (uow.Tx, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.begins++
	if u.beginErr != nil {
		return nil, u.beginErr
	}
	return &fakeTx{u: u, state: u.state.clone()}, nil
}

func (u *fakeUnitOfWork) addProduct(id int64, sku string, stockQty, salePrice, purchasePrice string) {
	u.state.products[id] = product.Product{
		ID:            id,
		SKU:           sku,
		Name:          "Produto " + sku,
		SalePrice:     decimal.RequireFromString(salePrice),
		PurchasePrice: decimal.RequireFromString(purchasePrice),
		Stock:         decimal.RequireFromString(stockQty),
		UnitOfMeasure: product.UnitOfMeasureUnit,
	}
	if id > u.state.nextProductID {
		u.state.nextProductID = id
	}
}

func (u *fakeUnitOfWork) addCustomer(id int64, balance string) {
	u.state.customers[id] = customer.Customer{
		ID:             id,
		TaxCode:        "TAX-" + decimal.NewFromInt(id).String(),
		Name:           "Cliente",
		PendingBalance: decimal.RequireFromString(balance),
	}
}

func (u *fakeUnitOfWork) stage(sessionID, sku, added string) {
	u.state.provisional = append(u.state.provisional, u.state.newEntry(sessionID, sku, added))
}

func (s *memState) newEntry(sessionID, sku, added string) stock.ProvisionalEntry {
	s.nextEntryID++
	return stock.ProvisionalEntry{
		ID:            s.nextEntryID,
		SessionID:     sessionID,
		SKU:           sku,
		Name:          "Produto " + sku,
		AddedStock:    decimal.RequireFromString(added),
		PurchasePrice: decimal.NewFromInt(500),
		SalePrice:     decimal.NewFromInt(900),
		UnitOfMeasure: product.UnitOfMeasureUnit,
	}
}

func (u *fakeUnitOfWork) committed() *memState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

type fakeTx struct {
	u     *fakeUnitOfWork
	state *memState
}

func (t *fakeTx) op(name string) error {
	if t.u.onOp != nil {
		t.u.onOp(name)
	}
	if t.u.onTxOp != nil {
		t.u.onTxOp(t, name)
	}
	return t.u.failures[name]
}

func (t *fakeTx) Sales() sale.Repository              { return fakeSales{t} }
func (t *fakeTx) Products() product.Catalog           { return fakeCatalog{t} }
func (t *fakeTx) Customers() customer.Ledger          { return fakeLedger{t} }
func (t *fakeTx) Provisional() stock.ProvisionalStore { return fakeProvisional{t} }
func (t *fakeTx) Merges() stock.MergeLog              { return fakeMerges{t} }

func (t *fakeTx) Commit(ctx context.Context) error {
	if err := t.op("Commit"); err != nil {
		return err
	}
	t.u.mu.Lock()
	defer t.u.mu.Unlock()
	t.u.commits++
	t.u.state = t.state
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.u.mu.Lock()
	t.u.rollbacks++
	t.u.mu.Unlock()
	return t.op("Rollback")
}

type fakeSales struct{ tx *fakeTx }

func (r fakeSales) Create(ctx context.Context, s *sale.Sale) (int64, error) {
	if err := r.tx.op("CreateSale"); err != nil {
		return 0, err
	}
	r.tx.state.nextSaleID++
	id := r.tx.state.nextSaleID
	stored := *s
	stored.ID = id
	stored.Items = nil
	r.tx.state.sales[id] = stored
	return id, nil
}

func (r fakeSales) AddItem(ctx context.Context, saleID int64, item sale.LineItem) (int64, error) {
	if err := r.tx.op("AddItem"); err != nil {
		return 0, err
	}
	r.tx.state.nextItemID++
	item.ID = r.tx.state.nextItemID
	item.SaleID = saleID
	r.tx.state.items = append(r.tx.state.items, item)
	return item.ID, nil
}

func (r fakeSales) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	out := make([]*sale.Sale, 0, len(r.tx.state.sales))
	for _, s := range r.tx.state.sales {
		s := s
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r fakeSales) FindItems(ctx context.Context, saleID int64) ([]sale.LineItem, error) {
	var out []sale.LineItem
	for _, item := range r.tx.state.items {
		if item.SaleID == saleID {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeCatalog struct{ tx *fakeTx }

func (r fakeCatalog) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	if err := r.tx.op("FindBySKU"); err != nil {
		return nil, err
	}
	for _, p := range r.tx.state.products {
		if p.SKU == sku {
			p := p
			return &p, nil
		}
	}
	return nil, product.ErrProductNotFound
}

func (r fakeCatalog) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	p, ok := r.tx.state.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	return &p, nil
}

func (r fakeCatalog) List(ctx context.Context) ([]*product.Product, error) {
	out := make([]*product.Product, 0, len(r.tx.state.products))
	for _, p := range r.tx.state.products {
		p := p
		out = append(out, &p)
	}
	return out, nil
}

func (r fakeCatalog) DecrementStock(ctx context.Context, productID int64, amount decimal.Decimal) error {
	if err := r.tx.op("DecrementStock"); err != nil {
		return err
	}
	p, ok := r.tx.state.products[productID]
	if !ok {
		return product.ErrProductNotFound
	}
	if p.Stock.LessThan(amount) {
		return product.ErrInsufficientStock
	}
	p.Stock = p.Stock.Sub(amount)
	r.tx.state.products[productID] = p
	r.tx.state.decrements = append(r.tx.state.decrements, decrement{productID: productID, amount: amount})
	return nil
}

func (r fakeCatalog) UpsertAccumulate(ctx context.Context, delta product.Delta) (*product.UpsertResult, error) {
	if err := r.tx.op("UpsertAccumulate"); err != nil {
		return nil, err
	}
	now := time.Now()
	for id, p := range r.tx.state.products {
		if p.SKU == delta.SKU {
			p.Stock = p.Stock.Add(delta.AddedStock)
			p.SalePrice = delta.SalePrice
			p.PurchasePrice = delta.PurchasePrice
			p.LastUpdated = now
			r.tx.state.products[id] = p
			return &product.UpsertResult{ProductID: id, SKU: p.SKU, Stock: p.Stock}, nil
		}
	}
	r.tx.state.nextProductID++
	id := r.tx.state.nextProductID
	r.tx.state.products[id] = product.Product{
		ID:            id,
		SKU:           delta.SKU,
		Name:          delta.Name,
		Description:   delta.Description,
		SalePrice:     delta.SalePrice,
		PurchasePrice: delta.PurchasePrice,
		Stock:         delta.AddedStock,
		UnitOfMeasure: delta.UnitOfMeasure,
		CategoryID:    delta.CategoryID,
		UserID:        delta.UserID,
		LastUpdated:   now,
	}
	return &product.UpsertResult{ProductID: id, SKU: delta.SKU, Stock: delta.AddedStock, Created: true}, nil
}

type fakeLedger struct{ tx *fakeTx }

func (r fakeLedger) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	c, ok := r.tx.state.customers[id]
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	return &c, nil
}

func (r fakeLedger) IncrementPendingBalance(ctx context.Context, customerID int64, amount decimal.Decimal) error {
	r.tx.u.mu.Lock()
	r.tx.u.ledgerCalls++
	r.tx.u.mu.Unlock()
	if err := r.tx.op("IncrementPendingBalance"); err != nil {
		return err
	}
	c, ok := r.tx.state.customers[customerID]
	if !ok {
		return customer.ErrCustomerNotFound
	}
	c.PendingBalance = c.PendingBalance.Add(amount)
	r.tx.state.customers[customerID] = c
	return nil
}

type fakeProvisional struct{ tx *fakeTx }

func (r fakeProvisional) Add(ctx context.Context, entry *stock.ProvisionalEntry) (int64, error) {
	r.tx.state.nextEntryID++
	stored := *entry
	stored.ID = r.tx.state.nextEntryID
	r.tx.state.provisional = append(r.tx.state.provisional, stored)
	return stored.ID, nil
}

func (r fakeProvisional) ListBySession(ctx context.Context, sessionID string) ([]stock.ProvisionalEntry, error) {
	if err := r.tx.op("ListBySession"); err != nil {
		return nil, err
	}
	out := []stock.ProvisionalEntry{}
	for _, e := range r.tx.state.provisional {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r fakeProvisional) ClaimSession(ctx context.Context, sessionID string) ([]stock.ProvisionalEntry, error) {
	if err := r.tx.op("ClaimSession"); err != nil {
		return nil, err
	}
	out := []stock.ProvisionalEntry{}
	for _, e := range r.tx.state.provisional {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r fakeProvisional) DeleteEntries(ctx context.Context, sessionID string, ids []int64) (int64, error) {
	if err := r.tx.op("DeleteEntries"); err != nil {
		return 0, err
	}
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	kept := r.tx.state.provisional[:0:0]
	var removed int64
	for _, e := range r.tx.state.provisional {
		if e.SessionID == sessionID && wanted[e.ID] {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.tx.state.provisional = kept
	return removed, nil
}

func (r fakeProvisional) ClearSession(ctx context.Context, sessionID string) (int64, error) {
	if err := r.tx.op("ClearSession"); err != nil {
		return 0, err
	}
	kept := r.tx.state.provisional[:0:0]
	var removed int64
	for _, e := range r.tx.state.provisional {
		if e.SessionID == sessionID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.tx.state.provisional = kept
	return removed, nil
}

type fakeMerges struct{ tx *fakeTx }

func (r fakeMerges) Record(ctx context.Context, m *stock.Merge) error {
	if err := r.tx.op("RecordMerge"); err != nil {
		return err
	}
	for _, prev := range r.tx.state.merges {
		if m.RequestKey != "" && prev.RequestKey == m.RequestKey {
			return stock.ErrMergeAlreadyApplied
		}
	}
	r.tx.state.merges = append(r.tx.state.merges, *m)
	return nil
}

// observedLogger devolve um Logger que grava as entradas em memória
func observedLogger() (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.NewFromZap(zap.New(core)), logs
}

func dec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "esperado %s, obtido %s", want, got.String())
}
