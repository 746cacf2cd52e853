package customer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCustomerID = errors.New("id do cliente inválido")
	ErrNonPositiveDebt   = errors.New("valor da dívida deve ser maior que zero")
)

// Customer representa a conta corrente de um cliente
type Customer struct {
	ID             int64           `json:"id"`              // ID do Cliente
	TaxCode        string          `json:"tax_code"`        // Documento fiscal (único)
	Name           string          `json:"name"`            // Nome
	Phone          string          `json:"phone"`           // Telefone
	Email          string          `json:"email"`           // Email
	Address        string          `json:"address"`         // Endereço
	PendingBalance decimal.Decimal `json:"pending_balance"` // Saldo pendente
	CreatedAt      time.Time       `json:"created_at"`      // Data de Criação
	UpdatedAt      time.Time       `json:"updated_at"`      // Data de Atualização
}

// HasDebt verifica se o cliente possui saldo pendente
func (c *Customer) HasDebt() bool {
	return c.PendingBalance.IsPositive()
}
