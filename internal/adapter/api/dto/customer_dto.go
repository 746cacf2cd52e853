package dto

import (
	"time"

	"github.com/hugohenrick/pos-vendas/internal/domain/customer"
	"github.com/shopspring/decimal"
)

// CustomerResponse representa a conta corrente do cliente
type CustomerResponse struct {
	ID             int64           `json:"id"`
	TaxCode        string          `json:"tax_code"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Address        string          `json:"address,omitempty"`
	PendingBalance decimal.Decimal `json:"pending_balance" swaggertype:"string"`
	HasDebt        bool            `json:"has_debt"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToCustomerResponse converte um cliente para a resposta
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:             c.ID,
		TaxCode:        c.TaxCode,
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		PendingBalance: c.PendingBalance,
		HasDebt:        c.HasDebt(),
		UpdatedAt:      c.UpdatedAt,
	}
}
