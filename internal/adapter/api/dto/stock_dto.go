package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/pos-vendas/internal/domain/product"
	"github.com/hugohenrick/pos-vendas/internal/domain/stock"
	"github.com/hugohenrick/pos-vendas/internal/usecase"
	"github.com/shopspring/decimal"
)

// StockEntryRequest representa uma entrada de estoque
type StockEntryRequest struct {
	SKU           string          `json:"sku" binding:"required" example:"7891000100103"`
	Name          string          `json:"name" example:"Arroz 5kg"`
	Description   string          `json:"description"`
	AddedStock    decimal.Decimal `json:"added_stock" swaggertype:"string" example:"5"`
	PurchasePrice decimal.Decimal `json:"purchase_price" swaggertype:"string" example:"13.50"`
	SalePrice     decimal.Decimal `json:"sale_price" swaggertype:"string" example:"22.90"`
	UnitOfMeasure string          `json:"unit_of_measure" example:"unit"`
	CategoryID    *int64          `json:"category_id,omitempty"`
	UserID        *int64          `json:"user_id,omitempty"`
}

// ToEntry converte a requisição para uma entrada provisória
func (r StockEntryRequest) ToEntry(sessionID string) stock.ProvisionalEntry {
	return stock.ProvisionalEntry{
		SessionID:     sessionID,
		SKU:           r.SKU,
		Name:          r.Name,
		Description:   r.Description,
		AddedStock:    r.AddedStock,
		PurchasePrice: r.PurchasePrice,
		SalePrice:     r.SalePrice,
		UnitOfMeasure: product.UnitOfMeasure(r.UnitOfMeasure),
		CategoryID:    r.CategoryID,
		UserID:        r.UserID,
	}
}

// ProvisionalEntryRequest representa a inclusão de uma entrada na sessão
type ProvisionalEntryRequest struct {
	SessionID string `json:"session_id" binding:"required" example:"caixa-1-20240510"`
	StockEntryRequest
}

// FinalizeRequest representa a finalização de uma sessão com as entradas no corpo
type FinalizeRequest struct {
	SessionID  string              `json:"session_id" binding:"required"`
	RequestKey string              `json:"request_key,omitempty" example:"4f1c2a9e-caixa-1"`
	Products   []StockEntryRequest `json:"products" binding:"required,dive"`
}

// ToMergeRequest converte a requisição para o fluxo de estoque
func (r FinalizeRequest) ToMergeRequest(operatorID int64) usecase.MergeStockRequest {
	entries := make([]stock.ProvisionalEntry, 0, len(r.Products))
	for _, p := range r.Products {
		entries = append(entries, p.ToEntry(r.SessionID))
	}
	return usecase.MergeStockRequest{
		SessionID:  r.SessionID,
		RequestKey: r.RequestKey,
		Entries:    entries,
		OperatorID: operatorID,
	}
}

// ProvisionalEntryResponse representa uma entrada provisória
type ProvisionalEntryResponse struct {
	ID            int64           `json:"id"`
	SessionID     string          `json:"session_id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	AddedStock    decimal.Decimal `json:"added_stock" swaggertype:"string"`
	PurchasePrice decimal.Decimal `json:"purchase_price" swaggertype:"string"`
	SalePrice     decimal.Decimal `json:"sale_price" swaggertype:"string"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	CategoryID    *int64          `json:"category_id,omitempty"`
	UserID        *int64          `json:"user_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToProvisionalEntryResponse converte uma entrada provisória
func ToProvisionalEntryResponse(e stock.ProvisionalEntry) ProvisionalEntryResponse {
	return ProvisionalEntryResponse{
		ID:            e.ID,
		SessionID:     e.SessionID,
		SKU:           e.SKU,
		Name:          e.Name,
		Description:   e.Description,
		AddedStock:    e.AddedStock,
		PurchasePrice: e.PurchasePrice,
		SalePrice:     e.SalePrice,
		UnitOfMeasure: string(e.UnitOfMeasure),
		CategoryID:    e.CategoryID,
		UserID:        e.UserID,
		CreatedAt:     e.CreatedAt,
	}
}

// ToProvisionalEntryResponses converte as entradas de uma sessão
func ToProvisionalEntryResponses(entries []stock.ProvisionalEntry) []ProvisionalEntryResponse {
	out := make([]ProvisionalEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToProvisionalEntryResponse(e))
	}
	return out
}

// MergeResponse representa o resultado da finalização
type MergeResponse struct {
	SessionID    string                 `json:"session_id"`
	MergeID      uuid.UUID              `json:"merge_id" swaggertype:"string"`
	MergedCount  int                    `json:"merged_count"`
	ClearedCount int64                  `json:"cleared_count"`
	Products     []product.UpsertResult `json:"products"`
}

// ToMergeResponse converte o resultado do fluxo de estoque
func ToMergeResponse(res *usecase.MergeStockResult) MergeResponse {
	products := res.Products
	if products == nil {
		products = []product.UpsertResult{}
	}
	return MergeResponse{
		SessionID:    res.SessionID,
		MergeID:      res.MergeID,
		MergedCount:  res.MergedCount,
		ClearedCount: res.ClearedCount,
		Products:     products,
	}
}

// ProductResponse representa um produto do catálogo
type ProductResponse struct {
	ID            int64           `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	SalePrice     decimal.Decimal `json:"sale_price" swaggertype:"string"`
	PurchasePrice decimal.Decimal `json:"purchase_price" swaggertype:"string"`
	Stock         decimal.Decimal `json:"stock" swaggertype:"string"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	CategoryID    *int64          `json:"category_id,omitempty"`
	CategoryName  string          `json:"category_name,omitempty"`
	LastUpdated   time.Time       `json:"last_updated"`
}

// ToProductResponse converte um produto para a resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		SalePrice:     p.SalePrice,
		PurchasePrice: p.PurchasePrice,
		Stock:         p.Stock,
		UnitOfMeasure: string(p.UnitOfMeasure),
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		LastUpdated:   p.LastUpdated,
	}
}

// ToProductResponses converte uma lista de produtos
func ToProductResponses(products []*product.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
