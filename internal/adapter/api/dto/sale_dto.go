package dto

import (
	"time"

	"github.com/hugohenrick/pos-vendas/internal/domain/sale"
	"github.com/hugohenrick/pos-vendas/internal/usecase"
	"github.com/shopspring/decimal"
)

// SaleItemRequest representa um item do carrinho
type SaleItemRequest struct {
	ProductID int64           `json:"product_id" binding:"required,gt=0"`
	Quantity  decimal.Decimal `json:"quantity" swaggertype:"string" example:"2"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"1000"`
}

// SaleRequest representa a requisição de fechamento de venda.
// UserID só é usado quando a requisição não traz token de operador.
type SaleRequest struct {
	Total         decimal.Decimal   `json:"total" swaggertype:"string" example:"2000"`
	Received      decimal.Decimal   `json:"received" swaggertype:"string" example:"2000"`
	Change        decimal.Decimal   `json:"change" swaggertype:"string" example:"0"`
	PaymentMethod string            `json:"payment_method" binding:"required" example:"cash"`
	CustomerID    *int64            `json:"customer_id,omitempty"`
	Debt          decimal.Decimal   `json:"debt" swaggertype:"string" example:"0"`
	UserID        int64             `json:"user_id,omitempty"`
	Items         []SaleItemRequest `json:"items" binding:"required,dive"`
}

// ToCommitRequest converte a requisição para o fluxo de venda
func (r SaleRequest) ToCommitRequest(operatorID int64) usecase.CommitSaleRequest {
	if operatorID <= 0 {
		operatorID = r.UserID
	}

	items := make([]usecase.CartLine, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, usecase.CartLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return usecase.CommitSaleRequest{
		Total:         r.Total,
		Received:      r.Received,
		Change:        r.Change,
		PaymentMethod: r.PaymentMethod,
		CustomerID:    r.CustomerID,
		Debt:          r.Debt,
		OperatorID:    operatorID,
		Items:         items,
	}
}

// SaleCommitResponse representa a venda registrada
type SaleCommitResponse struct {
	SaleID       int64           `json:"sale_id"`
	Items        int             `json:"items"`
	Debt         decimal.Decimal `json:"debt" swaggertype:"string"`
	DebtRecorded bool            `json:"debt_recorded"`
}

// ToSaleCommitResponse converte o resultado do fluxo para a resposta
func ToSaleCommitResponse(res *usecase.CommitSaleResult) SaleCommitResponse {
	return SaleCommitResponse{
		SaleID:       res.SaleID,
		Items:        res.Items,
		Debt:         res.Debt,
		DebtRecorded: res.DebtRecorded,
	}
}

// SaleResponse representa uma venda na listagem
type SaleResponse struct {
	ID              int64           `json:"id"`
	Total           decimal.Decimal `json:"total" swaggertype:"string"`
	Received        decimal.Decimal `json:"received" swaggertype:"string"`
	Change          decimal.Decimal `json:"change" swaggertype:"string"`
	PaymentMethod   string          `json:"payment_method"`
	CustomerID      *int64          `json:"customer_id,omitempty"`
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerTaxCode string          `json:"customer_tax_code,omitempty"`
	Debt            decimal.Decimal `json:"debt" swaggertype:"string"`
	UserID          int64           `json:"user_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

// SaleListResponse representa uma página de vendas
type SaleListResponse struct {
	Sales    []SaleResponse `json:"sales"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ToSaleResponse converte uma venda para a resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	return SaleResponse{
		ID:              s.ID,
		Total:           s.Total,
		Received:        s.Received,
		Change:          s.Change,
		PaymentMethod:   string(s.PaymentMethod),
		CustomerID:      s.CustomerID,
		CustomerName:    s.CustomerName,
		CustomerTaxCode: s.CustomerTaxCode,
		Debt:            s.Debt,
		UserID:          s.UserID,
		CreatedAt:       s.CreatedAt,
	}
}

// ToSaleListResponse converte uma página de vendas
func ToSaleListResponse(sales []*sale.Sale, p Pagination) SaleListResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, ToSaleResponse(s))
	}
	return SaleListResponse{Sales: out, Page: p.Page, PageSize: p.PageSize}
}

// SaleItemResponse representa um item de venda com os dados do produto
type SaleItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"string"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Subtotal    decimal.Decimal `json:"subtotal" swaggertype:"string"`
}

// ToSaleItemResponses converte os itens de uma venda
func ToSaleItemResponses(items []sale.LineItem) []SaleItemResponse {
	out := make([]SaleItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, SaleItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal(),
		})
	}
	return out
}
