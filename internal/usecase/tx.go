package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/hugohenrick/pos-vendas/internal/domain/uow"
	"github.com/hugohenrick/pos-vendas/pkg/logger"
)

const defaultRollbackTimeout = 5 * time.Second

// Config contém os limites de tempo das transações
type Config struct {
	// TxTimeout limita a duração de cada fluxo; zero desativa
	TxTimeout time.Duration
	// RollbackTimeout limita o rollback, executado mesmo com o contexto cancelado
	RollbackTimeout time.Duration
}

// Recorder recebe os eventos dos fluxos para métricas
type Recorder interface {
	SaleCommitted(items int, elapsed time.Duration)
	StockMerged(entries int, elapsed time.Duration)
	WorkflowFailed(workflow, class, step string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) SaleCommitted(int, time.Duration)                     {}
func (nopRecorder) StockMerged(int, time.Duration)                       {}
func (nopRecorder) WorkflowFailed(string, string, string, time.Duration) {}

// txRunner abre, confirma e desfaz transações para os fluxos
type txRunner struct {
	unit            uow.UnitOfWork
	logger          logger.Logger
	txTimeout       time.Duration
	rollbackTimeout time.Duration
}

func newTxRunner(unit uow.UnitOfWork, log logger.Logger, cfg Config) *txRunner {
	rollbackTimeout := cfg.RollbackTimeout
	if rollbackTimeout <= 0 {
		rollbackTimeout = defaultRollbackTimeout
	}
	return &txRunner{
		unit:            unit,
		logger:          log,
		txTimeout:       cfg.TxTimeout,
		rollbackTimeout: rollbackTimeout,
	}
}

// run executa fn dentro de uma transação. Toda Tx aberta termina em Commit
// ou Rollback, inclusive em cancelamento de contexto e panic.
func (r *txRunner) run(ctx context.Context, workflow string, fn func(ctx context.Context, tx uow.Tx) error) error {
	if r.txTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.txTimeout)
		defer cancel()
	}

	tx, err := r.unit.Begin(ctx)
	if err != nil {
		return &WorkflowError{
			Workflow: workflow,
			Class:    ClassStorage,
			Step:     StepBegin,
			Message:  "erro ao iniciar transação",
			Err:      err,
		}
	}

	defer func() {
		if p := recover(); p != nil {
			r.rollback(ctx, tx, &WorkflowError{
				Workflow: workflow,
				Class:    ClassStorage,
				Step:     StepUnknown,
				Message:  "panic durante a transação",
			})
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return r.rollback(ctx, tx, asWorkflowError(workflow, err))
	}

	if err := ctx.Err(); err != nil {
		return r.rollback(ctx, tx, &WorkflowError{
			Workflow: workflow,
			Class:    ClassStorage,
			Step:     StepCommit,
			Message:  "operação cancelada antes do commit",
			Err:      err,
		})
	}

	if err := tx.Commit(ctx); err != nil {
		return r.rollback(ctx, tx, &WorkflowError{
			Workflow: workflow,
			Class:    ClassCommit,
			Step:     StepCommit,
			Message:  "erro ao finalizar a transação",
			Err:      err,
		})
	}

	return nil
}

// rollback desfaz a transação num contexto desacoplado do chamador.
// Se o rollback falhar, o erro fatal substitui a causa original.
func (r *txRunner) rollback(ctx context.Context, tx uow.Tx, cause *WorkflowError) error {
	rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.rollbackTimeout)
	defer cancel()

	if err := tx.Rollback(rbCtx); err != nil {
		fatal := &WorkflowError{
			Workflow: cause.Workflow,
			Class:    ClassRollback,
			Step:     StepRollback,
			Message:  "falha ao desfazer a transação, consistência dos dados não garantida",
			Err:      err,
			Cause:    cause,
		}
		r.logger.Critical("rollback falhou",
			"workflow", cause.Workflow,
			"failed_step", string(cause.Step),
			"cause", cause.Error(),
			"error", err,
		)
		return fatal
	}

	r.logger.Warn("transação desfeita",
		"workflow", cause.Workflow,
		"class", string(cause.Class),
		"step", string(cause.Step),
		"error", cause.Error(),
	)
	return cause
}

func asWorkflowError(workflow string, err error) *WorkflowError {
	var wfErr *WorkflowError
	if errors.As(err, &wfErr) {
		if wfErr.Workflow == "" {
			wfErr.Workflow = workflow
		}
		return wfErr
	}
	return &WorkflowError{
		Workflow: workflow,
		Class:    ClassStorage,
		Step:     StepUnknown,
		Message:  "erro inesperado na transação",
		Err:      err,
	}
}
