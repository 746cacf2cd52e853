package product

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptySKU          = errors.New("sku não pode ser vazio")
	ErrInvalidUnit       = errors.New("unidade de medida inválida")
	ErrFractionalUnit    = errors.New("produto vendido por unidade não aceita quantidade fracionada")
	ErrNegativePrice     = errors.New("preço não pode ser negativo")
	ErrNonPositiveAmount = errors.New("quantidade deve ser maior que zero")
	ErrUnitMismatch      = errors.New("unidade de medida diferente da cadastrada no produto")
)

// UnitOfMeasure define como o produto é vendido
type UnitOfMeasure string

const (
	UnitOfMeasureUnit   UnitOfMeasure = "unit"   // Unidade
	UnitOfMeasureWeight UnitOfMeasure = "weight" // Peso
)

// ParseUnitOfMeasure normaliza a unidade recebida, assumindo unidade quando vazia
func ParseUnitOfMeasure(raw string) (UnitOfMeasure, error) {
	switch UnitOfMeasure(strings.ToLower(strings.TrimSpace(raw))) {
	case "", UnitOfMeasureUnit:
		return UnitOfMeasureUnit, nil
	case UnitOfMeasureWeight:
		return UnitOfMeasureWeight, nil
	default:
		return "", ErrInvalidUnit
	}
}

// IsValid verifica se a unidade é conhecida
func (u UnitOfMeasure) IsValid() bool {
	return u == UnitOfMeasureUnit || u == UnitOfMeasureWeight
}

// ValidateQuantity verifica se a quantidade é compatível com a unidade
func (u UnitOfMeasure) ValidateQuantity(qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return ErrNonPositiveAmount
	}
	if u == UnitOfMeasureUnit && !qty.IsInteger() {
		return ErrFractionalUnit
	}
	return nil
}

// Product representa um produto do catálogo
type Product struct {
	ID            int64           `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Stock         decimal.Decimal `json:"stock"`
	UnitOfMeasure UnitOfMeasure   `json:"unit_of_measure"`
	CategoryID    *int64          `json:"category_id,omitempty"`
	CategoryName  string          `json:"category_name,omitempty"`
	UserID        *int64          `json:"user_id,omitempty"`
	LastUpdated   time.Time       `json:"last_updated"`
}

// Delta representa os campos aplicados ao catálogo por uma entrada de estoque
type Delta struct {
	SKU           string
	Name          string
	Description   string
	SalePrice     decimal.Decimal
	PurchasePrice decimal.Decimal
	AddedStock    decimal.Decimal
	UnitOfMeasure UnitOfMeasure
	CategoryID    *int64
	UserID        *int64
}

// Validate verifica os campos obrigatórios de um delta
func (d Delta) Validate() error {
	if strings.TrimSpace(d.SKU) == "" {
		return ErrEmptySKU
	}
	if !d.UnitOfMeasure.IsValid() {
		return ErrInvalidUnit
	}
	if d.SalePrice.IsNegative() || d.PurchasePrice.IsNegative() {
		return ErrNegativePrice
	}
	return d.UnitOfMeasure.ValidateQuantity(d.AddedStock)
}

// UpsertResult descreve o efeito de um upsert acumulativo
type UpsertResult struct {
	ProductID int64           `json:"product_id"`
	SKU       string          `json:"sku"`
	Stock     decimal.Decimal `json:"stock"`
	Created   bool            `json:"created"`
}
