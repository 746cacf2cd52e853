package customer

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrCustomerNotFound ocorre quando o cliente referenciado não existe
var ErrCustomerNotFound = errors.New("cliente não encontrado")

// Ledger define as operações de conta corrente usadas pelas vendas
type Ledger interface {
	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id int64) (*Customer, error)

	// IncrementPendingBalance soma a dívida ao saldo pendente do cliente
	IncrementPendingBalance(ctx context.Context, customerID int64, amount decimal.Decimal) error
}
