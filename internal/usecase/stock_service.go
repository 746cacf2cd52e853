package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/pos-vendas/internal/domain/product"
	"github.com/hugohenrick/pos-vendas/internal/domain/stock"
	"github.com/hugohenrick/pos-vendas/internal/domain/uow"
	"github.com/hugohenrick/pos-vendas/pkg/logger"
)

// ErrNoStagedEntries ocorre ao finalizar uma sessão sem entradas provisórias
var ErrNoStagedEntries = errors.New("nenhuma entrada provisória para a sessão")

// MergeStockRequest contém as entradas de uma sessão a serem finalizadas.
// RequestKey é opcional; repetida, a finalização é recusada.
type MergeStockRequest struct {
	SessionID  string
	RequestKey string
	Entries    []stock.ProvisionalEntry
	OperatorID int64
}

// MergeStockResult é o resultado de uma finalização de estoque
type MergeStockResult struct {
	SessionID    string
	MergeID      uuid.UUID
	MergedCount  int
	ClearedCount int64
	Products     []product.UpsertResult
}

// StockService executa o fluxo de finalização de estoque
type StockService struct {
	runner   *txRunner
	logger   logger.Logger
	recorder Recorder
}

// NewStockService cria uma nova instância de StockService
func NewStockService(unit uow.UnitOfWork, log logger.Logger, recorder Recorder, cfg Config) *StockService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &StockService{
		runner:   newTxRunner(unit, log, cfg),
		logger:   log,
		recorder: recorder,
	}
}

// MergeStock aplica as entradas informadas ao catálogo somando o estoque e
// limpa as entradas provisórias da sessão, tudo numa única transação.
func (s *StockService) MergeStock(ctx context.Context, req MergeStockRequest) (*MergeStockResult, error) {
	start := time.Now()

	sessionID, entries, err := normalizeMerge(req.SessionID, req.Entries, req.OperatorID)
	if err != nil {
		return nil, s.rejected(err, start)
	}

	var result *MergeStockResult
	err = s.runner.run(ctx, workflowStockMerge, func(ctx context.Context, tx uow.Tx) error {
		var err error
		marker := stock.NewMerge(sessionID, req.RequestKey, len(entries), req.OperatorID)
		result, err = applyMerge(ctx, tx, marker, entries, func(ctx context.Context) (int64, error) {
			return tx.Provisional().ClearSession(ctx, sessionID)
		})
		return err
	})
	if err != nil {
		s.failed(err, start)
		return nil, err
	}

	s.merged(result, start)
	return result, nil
}

// MergeSession finaliza as entradas provisórias já gravadas para a sessão.
// Apenas as entradas lidas aqui são removidas; as gravadas depois ficam para
// a próxima finalização.
func (s *StockService) MergeSession(ctx context.Context, sessionID, requestKey string, operatorID int64) (*MergeStockResult, error) {
	start := time.Now()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, s.rejected(stock.ErrEmptySession, start)
	}

	var result *MergeStockResult
	err := s.runner.run(ctx, workflowStockMerge, func(ctx context.Context, tx uow.Tx) error {
		staged, err := tx.Provisional().ClaimSession(ctx, sessionID)
		if err != nil {
			return stepError(StepProvisionalList, "erro ao listar entradas provisórias", err)
		}
		if len(staged) == 0 {
			return validationError(workflowStockMerge, ErrNoStagedEntries)
		}

		_, entries, err := normalizeMerge(sessionID, staged, operatorID)
		if err != nil {
			return validationError(workflowStockMerge, err)
		}

		ids := make([]int64, 0, len(staged))
		for _, e := range staged {
			ids = append(ids, e.ID)
		}

		marker := stock.NewMerge(sessionID, requestKey, len(entries), operatorID)
		result, err = applyMerge(ctx, tx, marker, entries, func(ctx context.Context) (int64, error) {
			deleted, err := tx.Provisional().DeleteEntries(ctx, sessionID, ids)
			if err != nil {
				return 0, err
			}
			if deleted != int64(len(ids)) {
				return 0, fmt.Errorf("%w: %d de %d removidas", stock.ErrStagedEntriesChanged, deleted, len(ids))
			}
			return deleted, nil
		})
		return err
	})
	if err != nil {
		s.failed(err, start)
		return nil, err
	}

	s.merged(result, start)
	return result, nil
}

// applyMerge grava o marcador, aplica cada entrada na ordem recebida e
// remove as entradas provisórias com clearStaged.
func applyMerge(ctx context.Context, tx uow.Tx, marker *stock.Merge, entries []stock.ProvisionalEntry, clearStaged func(context.Context) (int64, error)) (*MergeStockResult, error) {
	if err := tx.Merges().Record(ctx, marker); err != nil {
		return nil, stepError(StepMergeMarker, "erro ao registrar finalização da sessão", err)
	}

	results := make([]product.UpsertResult, 0, len(entries))
	for idx, entry := range entries {
		if err := checkCatalogUnit(ctx, tx.Products(), entry); err != nil {
			return nil, stepError(StepCatalogLookup,
				fmt.Sprintf("erro ao conferir entrada %d (sku %s)", idx+1, entry.SKU), err)
		}

		res, err := tx.Products().UpsertAccumulate(ctx, entry.Delta())
		if err != nil {
			return nil, stepError(StepCatalogUpsert,
				fmt.Sprintf("erro ao aplicar entrada %d (sku %s)", idx+1, entry.SKU), err)
		}
		results = append(results, *res)
	}

	cleared, err := clearStaged(ctx)
	if err != nil {
		return nil, stepError(StepProvisionalClear, "erro ao limpar entradas provisórias", err)
	}

	return &MergeStockResult{
		SessionID:    marker.SessionID,
		MergeID:      marker.MergeID,
		MergedCount:  len(entries),
		ClearedCount: cleared,
		Products:     results,
	}, nil
}

// checkCatalogUnit recusa a entrada quando o SKU já existe com outra unidade;
// a quantidade foi validada contra a unidade da entrada, não a do catálogo.
func checkCatalogUnit(ctx context.Context, catalog product.Catalog, entry stock.ProvisionalEntry) error {
	existing, err := catalog.FindBySKU(ctx, entry.SKU)
	if errors.Is(err, product.ErrProductNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.UnitOfMeasure != entry.UnitOfMeasure {
		return fmt.Errorf("%w: %s é %s, entrada em %s",
			product.ErrUnitMismatch, entry.SKU, existing.UnitOfMeasure, entry.UnitOfMeasure)
	}
	return nil
}

// normalizeMerge valida a sessão e as entradas, aplicando a unidade padrão
// e o operador quando ausentes.
func normalizeMerge(sessionID string, entries []stock.ProvisionalEntry, operatorID int64) (string, []stock.ProvisionalEntry, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", nil, stock.ErrEmptySession
	}
	if entries == nil {
		return "", nil, stock.ErrMissingList
	}

	normalized := make([]stock.ProvisionalEntry, 0, len(entries))
	for idx, entry := range entries {
		unit, err := product.ParseUnitOfMeasure(string(entry.UnitOfMeasure))
		if err != nil {
			return "", nil, fmt.Errorf("entrada %d: %w", idx+1, err)
		}
		entry.UnitOfMeasure = unit
		entry.SKU = strings.TrimSpace(entry.SKU)
		if entry.UserID == nil && operatorID > 0 {
			op := operatorID
			entry.UserID = &op
		}
		if err := entry.Validate(); err != nil {
			return "", nil, fmt.Errorf("entrada %d (sku %q): %w", idx+1, entry.SKU, err)
		}
		normalized = append(normalized, entry)
	}

	return sessionID, normalized, nil
}

func (s *StockService) rejected(err error, start time.Time) error {
	wfErr := validationError(workflowStockMerge, err)
	s.recorder.WorkflowFailed(workflowStockMerge, string(wfErr.Class), string(wfErr.Step), time.Since(start))
	return wfErr
}

func (s *StockService) failed(err error, start time.Time) {
	wfErr, ok := AsWorkflowError(err)
	if !ok {
		return
	}
	s.recorder.WorkflowFailed(wfErr.Workflow, string(wfErr.Class), string(wfErr.Step), time.Since(start))
	if !wfErr.Fatal() {
		s.logger.Error("erro ao finalizar estoque", "class", string(wfErr.Class), "step", string(wfErr.Step), "error", err)
	}
}

func (s *StockService) merged(result *MergeStockResult, start time.Time) {
	s.recorder.StockMerged(result.MergedCount, time.Since(start))
	s.logger.Info("estoque finalizado",
		"session_id", result.SessionID,
		"merge_id", result.MergeID.String(),
		"merged", result.MergedCount,
		"cleared", result.ClearedCount,
	)
}
