package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/pos-vendas/internal/domain/customer"
	"github.com/hugohenrick/pos-vendas/internal/domain/product"
	"github.com/hugohenrick/pos-vendas/internal/domain/sale"
	"github.com/hugohenrick/pos-vendas/internal/domain/stock"
	"github.com/hugohenrick/pos-vendas/internal/domain/uow"
	"github.com/hugohenrick/pos-vendas/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// PostgresUnitOfWork implementa uow.UnitOfWork sobre transações pgx
type PostgresUnitOfWork struct {
	db database.TxBeginner
}

// NewPostgresUnitOfWork cria uma nova instância de PostgresUnitOfWork
func NewPostgresUnitOfWork(db database.TxBeginner) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{db: db}
}

// Begin implementa uow.UnitOfWork.Begin
func (u *PostgresUnitOfWork) Begin(ctx context.Context) (uow.Tx, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	return &postgresTx{tx: tx}, nil
}

// postgresTx liga os repositórios à transação aberta
type postgresTx struct {
	tx pgx.Tx
}

func (t *postgresTx) Sales() sale.Repository {
	return NewSaleRepository(t.tx)
}

func (t *postgresTx) Products() product.Catalog {
	return NewProductRepository(t.tx)
}

func (t *postgresTx) Customers() customer.Ledger {
	return NewCustomerRepository(t.tx)
}

func (t *postgresTx) Provisional() stock.ProvisionalStore {
	return NewProvisionalRepository(t.tx)
}

func (t *postgresTx) Merges() stock.MergeLog {
	return NewStockMergeRepository(t.tx)
}

func (t *postgresTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}
	return nil
}

// Rollback trata ErrTxClosed como sucesso: o pgx já encerrou a transação
// após um commit com falha.
func (t *postgresTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("erro ao fazer rollback: %w", err)
	}
	return nil
}
