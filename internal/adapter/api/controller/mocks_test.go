package controller

import (
	"context"

	"github.com/hugohenrick/pos-vendas/internal/domain/customer"
	"github.com/hugohenrick/pos-vendas/internal/domain/product"
	"github.com/hugohenrick/pos-vendas/internal/domain/sale"
	"github.com/hugohenrick/pos-vendas/internal/domain/stock"
	"github.com/hugohenrick/pos-vendas/internal/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockCommitter struct {
	mock.Mock
}

func (m *mockCommitter) CommitSale(ctx context.Context, req usecase.CommitSaleRequest) (*usecase.CommitSaleResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*usecase.CommitSaleResult)
	return res, args.Error(1)
}

type mockMerger struct {
	mock.Mock
}

func (m *mockMerger) MergeStock(ctx context.Context, req usecase.MergeStockRequest) (*usecase.MergeStockResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*usecase.MergeStockResult)
	return res, args.Error(1)
}

func (m *mockMerger) MergeSession(ctx context.Context, sessionID, requestKey string, operatorID int64) (*usecase.MergeStockResult, error) {
	args := m.Called(ctx, sessionID, requestKey, operatorID)
	res, _ := args.Get(0).(*usecase.MergeStockResult)
	return res, args.Error(1)
}

type mockSaleRepository struct {
	mock.Mock
}

func (m *mockSaleRepository) Create(ctx context.Context, s *sale.Sale) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSaleRepository) AddItem(ctx context.Context, saleID int64, item sale.LineItem) (int64, error) {
	args := m.Called(ctx, saleID, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	args := m.Called(ctx, limit, offset)
	res, _ := args.Get(0).([]*sale.Sale)
	return res, args.Error(1)
}

func (m *mockSaleRepository) FindItems(ctx context.Context, saleID int64) ([]sale.LineItem, error) {
	args := m.Called(ctx, saleID)
	res, _ := args.Get(0).([]sale.LineItem)
	return res, args.Error(1)
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	args := m.Called(ctx, sku)
	res, _ := args.Get(0).(*product.Product)
	return res, args.Error(1)
}

func (m *mockCatalog) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*product.Product)
	return res, args.Error(1)
}

func (m *mockCatalog) List(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]*product.Product)
	return res, args.Error(1)
}

func (m *mockCatalog) DecrementStock(ctx context.Context, productID int64, amount decimal.Decimal) error {
	return m.Called(ctx, productID, amount).Error(0)
}

func (m *mockCatalog) UpsertAccumulate(ctx context.Context, delta product.Delta) (*product.UpsertResult, error) {
	args := m.Called(ctx, delta)
	res, _ := args.Get(0).(*product.UpsertResult)
	return res, args.Error(1)
}

type mockProvisional struct {
	mock.Mock
}

func (m *mockProvisional) Add(ctx context.Context, entry *stock.ProvisionalEntry) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProvisional) ListBySession(ctx context.Context, sessionID string) ([]stock.ProvisionalEntry, error) {
	args := m.Called(ctx, sessionID)
	res, _ := args.Get(0).([]stock.ProvisionalEntry)
	return res, args.Error(1)
}

func (m *mockProvisional) ClaimSession(ctx context.Context, sessionID string) ([]stock.ProvisionalEntry, error) {
	args := m.Called(ctx, sessionID)
	res, _ := args.Get(0).([]stock.ProvisionalEntry)
	return res, args.Error(1)
}

func (m *mockProvisional) ClearSession(ctx context.Context, sessionID string) (int64, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProvisional) DeleteEntries(ctx context.Context, sessionID string, ids []int64) (int64, error) {
	args := m.Called(ctx, sessionID, ids)
	return args.Get(0).(int64), args.Error(1)
}

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*customer.Customer)
	return res, args.Error(1)
}

func (m *mockLedger) IncrementPendingBalance(ctx context.Context, customerID int64, amount decimal.Decimal) error {
	return m.Called(ctx, customerID, amount).Error(0)
}
