// Package uow define a unidade de trabalho transacional usada pelos fluxos
// de venda e de finalização de estoque.
package uow

import (
	"context"

	"github.com/hugohenrick/pos-vendas/internal/domain/customer"
	"github.com/hugohenrick/pos-vendas/internal/domain/product"
	"github.com/hugohenrick/pos-vendas/internal/domain/sale"
	"github.com/hugohenrick/pos-vendas/internal/domain/stock"
)

// UnitOfWork abre transações
type UnitOfWork interface {
	Begin(ctx context.Context) (Tx, error)
}

// Tx é uma transação aberta. Os repositórios retornados executam seus
// comandos dentro dela. Depois de Commit ou Rollback a Tx não deve ser usada.
type Tx interface {
	Sales() sale.Repository
	Products() product.Catalog
	Customers() customer.Ledger
	Provisional() stock.ProvisionalStore
	Merges() stock.MergeLog

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
