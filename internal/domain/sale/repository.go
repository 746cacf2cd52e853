package sale

import (
	"context"
	"errors"
)

// ErrSaleNotFound ocorre quando a venda não existe
var ErrSaleNotFound = errors.New("venda não encontrada")

// Repository define as operações de persistência de vendas
type Repository interface {
	// Create insere o cabeçalho da venda e retorna o ID gerado
	Create(ctx context.Context, s *Sale) (int64, error)

	// AddItem insere um item vinculado à venda
	AddItem(ctx context.Context, saleID int64, item LineItem) (int64, error)

	// List lista as vendas mais recentes com os dados do cliente
	List(ctx context.Context, limit, offset int) ([]*Sale, error)

	// FindItems lista os itens de uma venda com nome e SKU do produto
	FindItems(ctx context.Context, saleID int64) ([]LineItem, error)
}
