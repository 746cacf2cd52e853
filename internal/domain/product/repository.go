package product

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)

// Catalog define a superfície de leitura e escrita do catálogo de produtos
type Catalog interface {
	// FindBySKU busca um produto pelo SKU
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// List lista os produtos com o nome da categoria
	List(ctx context.Context) ([]*Product, error)

	// DecrementStock baixa o estoque apenas se houver saldo suficiente
	DecrementStock(ctx context.Context, productID int64, amount decimal.Decimal) error

	// UpsertAccumulate insere o produto ou soma o estoque ao existente pelo SKU
	UpsertAccumulate(ctx context.Context, delta Delta) (*UpsertResult, error)
}
