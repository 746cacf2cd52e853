package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/pos-vendas/internal/domain/customer"
	"github.com/hugohenrick/pos-vendas/internal/domain/product"
	"github.com/hugohenrick/pos-vendas/internal/domain/sale"
	"github.com/hugohenrick/pos-vendas/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

func int64Ptr(v int64) *int64 {
	return &v
}

type spyRecorder struct {
	committed int
	merged    int
	failures  []string
}

func (r *spyRecorder) SaleCommitted(int, time.Duration) { r.committed++ }
func (r *spyRecorder) StockMerged(int, time.Duration)   { r.merged++ }
func (r *spyRecorder) WorkflowFailed(workflow, class, step string, _ time.Duration) {
	r.failures = append(r.failures, workflow+"/"+class+"/"+step)
}

func newSaleFixture() (*fakeUnitOfWork, *SaleService) {
	unit := newFakeUnitOfWork()
	unit.addProduct(7, "7891000100103", "10", "1000", "600")
	unit.addProduct(8, "7891000100110", "5", "250", "100")
	unit.addCustomer(42, "0")
	return unit, NewSaleService(unit, logger.NewNop(), nil, Config{})
}

func cashSale(items ...CartLine) CommitSaleRequest {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Quantity.Mul(item.UnitPrice))
	}
	return CommitSaleRequest{
		Total:         total,
		Received:      total,
		Change:        decimal.Zero,
		PaymentMethod: "cash",
		OperatorID:    1,
		Items:         items,
	}
}

func TestCommitSale_CashWithoutCustomer(t *testing.T) {
	unit, svc := newSaleFixture()

	req := CommitSaleRequest{
		Total:         d("2000"),
		Received:      d("2000"),
		Change:        d("0"),
		PaymentMethod: "Cash",
		OperatorID:    1,
		Items:         []CartLine{{ProductID: 7, Quantity: d("2"), UnitPrice: d("1000")}},
	}

	res, err := svc.CommitSale(context.Background(), req)
	require.NoError(t, err)

	state := unit.committed()
	require.Len(t, state.sales, 1)
	stored := state.sales[res.SaleID]
	dec(t, "0", stored.Debt)
	assert.Equal(t, sale.PaymentCash, stored.PaymentMethod)
	dec(t, "8", state.products[7].Stock)
	assert.Equal(t, 0, unit.ledgerCalls)
	assert.False(t, res.DebtRecorded)
	assert.Equal(t, 1, unit.commits)
	assert.Equal(t, 0, unit.rollbacks)
}

func TestCommitSale_RecordsCustomerDebt(t *testing.T) {
	unit, svc := newSaleFixture()
	unit.addCustomer(42, "150.50")

	req := CommitSaleRequest{
		Total:         d("5000"),
		Received:      d("3000"),
		Change:        d("-2000"),
		PaymentMethod: "credit",
		CustomerID:    int64Ptr(42),
		Debt:          d("2000"),
		OperatorID:    1,
		Items:         []CartLine{{ProductID: 7, Quantity: d("5"), UnitPrice: d("1000")}},
	}

	res, err := svc.CommitSale(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, res.DebtRecorded)
	dec(t, "2000", res.Debt)
	dec(t, "2150.50", unit.committed().customers[42].PendingBalance)
	assert.Equal(t, 1, unit.ledgerCalls)
}

func TestCommitSale_DebtWithoutCustomerSkipsLedger(t *testing.T) {
	unit, svc := newSaleFixture()

	req := CommitSaleRequest{
		Total:         d("1000"),
		Received:      d("400"),
		Change:        d("-600"),
		PaymentMethod: "transfer",
		Debt:          d("600"),
		OperatorID:    1,
		Items:         []CartLine{{ProductID: 7, Quantity: d("1"), UnitPrice: d("1000")}},
	}

	_, err := svc.CommitSale(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, unit.ledgerCalls)
}

func TestCommitSale_ItemsAndDecrementsMatchCart(t *testing.T) {
	tests := []struct {
		name  string
		items []CartLine
	}{
		{"sem itens", []CartLine{}},
		{"um item", []CartLine{{ProductID: 7, Quantity: d("1"), UnitPrice: d("1000")}}},
		{"vários itens", []CartLine{
			{ProductID: 7, Quantity: d("3"), UnitPrice: d("1000")},
			{ProductID: 8, Quantity: d("2"), UnitPrice: d("250")},
			{ProductID: 7, Quantity: d("1"), UnitPrice: d("990")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, svc := newSaleFixture()
			req := cashSale(tt.items...)
			if len(tt.items) == 0 {
				req.Total, req.Received = d("10"), d("10")
			}

			res, err := svc.CommitSale(context.Background(), req)
			require.NoError(t, err)

			state := unit.committed()
			assert.Len(t, state.sales, 1)
			assert.Len(t, state.items, len(tt.items))
			require.Len(t, state.decrements, len(tt.items))
			for i, item := range tt.items {
				assert.Equal(t, item.ProductID, state.decrements[i].productID)
				dec(t, item.Quantity.String(), state.decrements[i].amount)
				assert.Equal(t, res.SaleID, state.items[i].SaleID)
				dec(t, item.UnitPrice.String(), state.items[i].UnitPrice)
			}
			assert.Equal(t, len(tt.items), res.Items)
		})
	}
}

func TestCommitSale_FailureRollsBackEverything(t *testing.T) {
	storageErr := errors.New("conexão perdida")

	tests := []struct {
		op   string
		step Step
	}{
		{"CreateSale", StepSaleInsert},
		{"AddItem", StepLineItem},
		{"DecrementStock", StepStockUpdate},
		{"IncrementPendingBalance", StepDebtUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			unit, svc := newSaleFixture()
			unit.failures[tt.op] = storageErr

			req := CommitSaleRequest{
				Total:         d("3000"),
				Received:      d("1000"),
				Change:        d("-2000"),
				PaymentMethod: "credit",
				CustomerID:    int64Ptr(42),
				Debt:          d("2000"),
				OperatorID:    1,
				Items: []CartLine{
					{ProductID: 7, Quantity: d("2"), UnitPrice: d("1000")},
					{ProductID: 8, Quantity: d("4"), UnitPrice: d("250")},
				},
			}

			res, err := svc.CommitSale(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, res)

			wfErr, ok := AsWorkflowError(err)
			require.True(t, ok)
			assert.Equal(t, ClassStorage, wfErr.Class)
			assert.Equal(t, tt.step, wfErr.Step)
			assert.Equal(t, workflowSaleCommit, wfErr.Workflow)
			assert.True(t, wfErr.Recoverable())
			assert.ErrorIs(t, err, storageErr)

			state := unit.committed()
			assert.Empty(t, state.sales)
			assert.Empty(t, state.items)
			dec(t, "10", state.products[7].Stock)
			dec(t, "5", state.products[8].Stock)
			dec(t, "0", state.customers[42].PendingBalance)
			assert.Equal(t, 1, unit.rollbacks)
			assert.Equal(t, 0, unit.commits)
		})
	}
}

func TestCommitSale_InsufficientStock(t *testing.T) {
	unit, svc := newSaleFixture()

	req := cashSale(
		CartLine{ProductID: 7, Quantity: d("1"), UnitPrice: d("1000")},
		CartLine{ProductID: 8, Quantity: d("6"), UnitPrice: d("250")},
	)

	_, err := svc.CommitSale(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, product.ErrInsufficientStock)

	wfErr, ok := AsWorkflowError(err)
	require.True(t, ok)
	assert.Equal(t, StepStockUpdate, wfErr.Step)

	state := unit.committed()
	assert.Empty(t, state.sales)
	dec(t, "10", state.products[7].Stock)
}

func TestCommitSale_UnknownCustomer(t *testing.T) {
	unit, svc := newSaleFixture()

	req := CommitSaleRequest{
		Total:         d("1000"),
		Received:      d("500"),
		Change:        d("-500"),
		PaymentMethod: "credit",
		CustomerID:    int64Ptr(99),
		Debt:          d("500"),
		OperatorID:    1,
		Items:         []CartLine{{ProductID: 7, Quantity: d("1"), UnitPrice: d("1000")}},
	}

	_, err := svc.CommitSale(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
	assert.Empty(t, unit.committed().sales)
}

func TestCommitSale_InvalidInputNeverOpensTransaction(t *testing.T) {
	valid := func() CommitSaleRequest {
		return cashSale(CartLine{ProductID: 7, Quantity: d("1"), UnitPrice: d("1000")})
	}

	tests := []struct {
		name   string
		mutate func(*CommitSaleRequest)
		want   error
	}{
		{"total ausente", func(r *CommitSaleRequest) { r.Total = decimal.Zero }, sale.ErrNonPositiveTotal},
		{"recebido ausente", func(r *CommitSaleRequest) { r.Received = decimal.Zero }, sale.ErrNonPositiveReceived},
		{"pagamento inválido", func(r *CommitSaleRequest) { r.PaymentMethod = "cheque" }, sale.ErrInvalidPayment},
		{"sem operador", func(r *CommitSaleRequest) { r.OperatorID = 0 }, sale.ErrMissingOperator},
		{"itens nil", func(r *CommitSaleRequest) { r.Items = nil }, sale.ErrMissingItems},
		{"troco divergente", func(r *CommitSaleRequest) { r.Change = d("5") }, sale.ErrChangeMismatch},
		{"dívida divergente", func(r *CommitSaleRequest) {
			r.Received = d("400")
			r.Change = d("-600")
			r.Debt = d("100")
		}, sale.ErrDebtMismatch},
		{"quantidade zero", func(r *CommitSaleRequest) { r.Items[0].Quantity = decimal.Zero }, sale.ErrInvalidItem},
		{"cliente inválido", func(r *CommitSaleRequest) { r.CustomerID = int64Ptr(-1) }, sale.ErrInvalidCustomer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := newFakeUnitOfWork()
			recorder := &spyRecorder{}
			svc := NewSaleService(unit, logger.NewNop(), recorder, Config{})

			for i := 0; i < 3; i++ {
				req := valid()
				tt.mutate(&req)
				_, err := svc.CommitSale(context.Background(), req)
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				assert.ErrorIs(t, err, tt.want)
			}

			assert.Equal(t, 0, unit.begins)
			assert.Empty(t, unit.committed().sales)
			assert.Len(t, recorder.failures, 3)
			assert.Equal(t, "sale_commit/validation/validate", recorder.failures[0])
		})
	}
}

func TestCommitSale_RecordsMetrics(t *testing.T) {
	unit, _ := newSaleFixture()
	recorder := &spyRecorder{}
	svc := NewSaleService(unit, logger.NewNop(), recorder, Config{})

	_, err := svc.CommitSale(context.Background(), cashSale(CartLine{ProductID: 7, Quantity: d("1"), UnitPrice: d("1000")}))
	require.NoError(t, err)

	unit.failures["AddItem"] = errors.New("falha")
	_, err = svc.CommitSale(context.Background(), cashSale(CartLine{ProductID: 7, Quantity: d("1"), UnitPrice: d("1000")}))
	require.Error(t, err)

	assert.Equal(t, 1, recorder.committed)
	assert.Equal(t, []string{"sale_commit/storage/line_item"}, recorder.failures)
}
