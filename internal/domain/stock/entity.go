package stock

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/pos-vendas/internal/domain/product"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptySession = errors.New("sessão não informada")
	ErrMissingList  = errors.New("lista de produtos não informada")
)

// ProvisionalEntry representa uma entrada de estoque pendente de uma sessão
type ProvisionalEntry struct {
	ID            int64                 `json:"id"`
	SessionID     string                `json:"session_id"`
	SKU           string                `json:"sku"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	AddedStock    decimal.Decimal       `json:"added_stock"`
	PurchasePrice decimal.Decimal       `json:"purchase_price"`
	SalePrice     decimal.Decimal       `json:"sale_price"`
	UnitOfMeasure product.UnitOfMeasure `json:"unit_of_measure"`
	CategoryID    *int64                `json:"category_id,omitempty"`
	UserID        *int64                `json:"user_id,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

// Delta converte a entrada para os campos aplicados ao catálogo
func (e ProvisionalEntry) Delta() product.Delta {
	return product.Delta{
		SKU:           strings.TrimSpace(e.SKU),
		Name:          e.Name,
		Description:   e.Description,
		SalePrice:     e.SalePrice,
		PurchasePrice: e.PurchasePrice,
		AddedStock:    e.AddedStock,
		UnitOfMeasure: e.UnitOfMeasure,
		CategoryID:    e.CategoryID,
		UserID:        e.UserID,
	}
}

// Validate verifica se a entrada pode ser aplicada ao catálogo
func (e ProvisionalEntry) Validate() error {
	return e.Delta().Validate()
}

// Merge registra uma finalização. A mesma sessão pode ser finalizada várias
// vezes; RequestKey, quando informada, impede que a mesma requisição seja
// aplicada duas vezes.
type Merge struct {
	SessionID  string    `json:"session_id"`
	MergeID    uuid.UUID `json:"merge_id"`
	RequestKey string    `json:"request_key,omitempty"`
	Entries    int       `json:"entries"`
	UserID     int64     `json:"user_id"`
	MergedAt   time.Time `json:"merged_at"`
}

// NewMerge cria o registro de finalização de uma sessão
func NewMerge(sessionID, requestKey string, entries int, userID int64) *Merge {
	return &Merge{
		SessionID:  sessionID,
		MergeID:    uuid.New(),
		RequestKey: strings.TrimSpace(requestKey),
		Entries:    entries,
		UserID:     userID,
		MergedAt:   time.Now(),
	}
}
