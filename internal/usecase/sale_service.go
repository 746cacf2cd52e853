package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/pos-vendas/internal/domain/sale"
	"github.com/hugohenrick/pos-vendas/internal/domain/uow"
	"github.com/hugohenrick/pos-vendas/pkg/logger"
	"github.com/shopspring/decimal"
)

// CartLine representa uma linha do carrinho enviada pelo caixa
type CartLine struct {
	ProductID int64
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// CommitSaleRequest contém os dados de fechamento de uma venda
type CommitSaleRequest struct {
	Total         decimal.Decimal
	Received      decimal.Decimal
	Change        decimal.Decimal
	PaymentMethod string
	CustomerID    *int64
	Debt          decimal.Decimal
	OperatorID    int64
	Items         []CartLine
}

// CommitSaleResult é o resultado de uma venda confirmada
type CommitSaleResult struct {
	SaleID       int64
	Items        int
	Debt         decimal.Decimal
	DebtRecorded bool
}

// SaleService executa o fluxo de fechamento de vendas
type SaleService struct {
	runner   *txRunner
	logger   logger.Logger
	recorder Recorder
}

// NewSaleService cria uma nova instância de SaleService
func NewSaleService(unit uow.UnitOfWork, log logger.Logger, recorder Recorder, cfg Config) *SaleService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &SaleService{
		runner:   newTxRunner(unit, log, cfg),
		logger:   log,
		recorder: recorder,
	}
}

// CommitSale registra a venda, seus itens, a baixa de estoque e a dívida do
// cliente numa única transação. Entrada inválida é rejeitada antes de abrir
// a transação.
func (s *SaleService) CommitSale(ctx context.Context, req CommitSaleRequest) (*CommitSaleResult, error) {
	start := time.Now()

	newSale, err := buildSale(req)
	if err != nil {
		wfErr := validationError(workflowSaleCommit, err)
		s.recorder.WorkflowFailed(workflowSaleCommit, string(wfErr.Class), string(wfErr.Step), time.Since(start))
		return nil, wfErr
	}

	var saleID int64
	err = s.runner.run(ctx, workflowSaleCommit, func(ctx context.Context, tx uow.Tx) error {
		id, err := tx.Sales().Create(ctx, newSale)
		if err != nil {
			return stepError(StepSaleInsert, "erro ao registrar venda", err)
		}

		for idx, item := range newSale.Items {
			if _, err := tx.Sales().AddItem(ctx, id, item); err != nil {
				return stepError(StepLineItem,
					fmt.Sprintf("erro ao registrar item %d (produto %d)", idx+1, item.ProductID), err)
			}
			if err := tx.Products().DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return stepError(StepStockUpdate,
					fmt.Sprintf("erro ao atualizar estoque do produto %d", item.ProductID), err)
			}
		}

		if newSale.HasDebtToRecord() {
			if err := tx.Customers().IncrementPendingBalance(ctx, *newSale.CustomerID, newSale.Debt); err != nil {
				return stepError(StepDebtUpdate,
					fmt.Sprintf("erro ao atualizar dívida do cliente %d", *newSale.CustomerID), err)
			}
		}

		saleID = id
		return nil
	})
	if err != nil {
		s.failed(err, start)
		return nil, err
	}

	s.recorder.SaleCommitted(len(newSale.Items), time.Since(start))
	s.logger.Info("venda registrada",
		"sale_id", saleID,
		"items", len(newSale.Items),
		"total", newSale.Total.String(),
		"debt", newSale.Debt.String(),
		"user_id", newSale.UserID,
	)

	return &CommitSaleResult{
		SaleID:       saleID,
		Items:        len(newSale.Items),
		Debt:         newSale.Debt,
		DebtRecorded: newSale.HasDebtToRecord(),
	}, nil
}

func (s *SaleService) failed(err error, start time.Time) {
	wfErr, ok := AsWorkflowError(err)
	if !ok {
		return
	}
	s.recorder.WorkflowFailed(wfErr.Workflow, string(wfErr.Class), string(wfErr.Step), time.Since(start))
	if !wfErr.Fatal() {
		s.logger.Error("erro ao registrar venda", "class", string(wfErr.Class), "step", string(wfErr.Step), "error", err)
	}
}

func buildSale(req CommitSaleRequest) (*sale.Sale, error) {
	method, err := sale.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var items []sale.LineItem
	if req.Items != nil {
		items = make([]sale.LineItem, 0, len(req.Items))
		for _, line := range req.Items {
			items = append(items, sale.LineItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			})
		}
	}

	return sale.NewSale(
		req.Total,
		req.Received,
		req.Change,
		method,
		req.CustomerID,
		req.Debt,
		req.OperatorID,
		items,
	)
}
