package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/pos-vendas/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const productSelect = `SELECT
		p.id, p.sku, p.name, COALESCE(p.description, ''), p.sale_price, p.purchase_price,
		p.stock, p.unit_of_measure, p.category_id, COALESCE(c.name, ''), p.user_id, p.last_updated
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id`

// ProductRepository implementa a interface product.Catalog
type ProductRepository struct {
	db DBTX
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

// FindBySKU implementa product.Catalog.FindBySKU
func (r *ProductRepository) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, productSelect+` WHERE p.sku = $1`, strings.TrimSpace(sku)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto por sku: %w", err)
	}
	return p, nil
}

// FindByID implementa product.Catalog.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return p, nil
}

// List implementa product.Catalog.List
func (r *ProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx, productSelect+` ORDER BY p.name`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	products := []*product.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar produtos: %w", err)
	}

	return products, nil
}

// DecrementStock implementa product.Catalog.DecrementStock. A baixa só
// acontece se stock >= amount; nenhuma linha afetada é erro.
func (r *ProductRepository) DecrementStock(ctx context.Context, productID int64, amount decimal.Decimal) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET stock = stock - $1, last_updated = NOW()
		WHERE id = $2 AND stock >= $1`,
		amount, productID)
	if err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return product.ErrInsufficientStock
		}
		return fmt.Errorf("erro ao baixar estoque: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("erro ao verificar produto: %w", err)
	}
	if !exists {
		return product.ErrProductNotFound
	}
	return product.ErrInsufficientStock
}

// UpsertAccumulate implementa product.Catalog.UpsertAccumulate. Para um SKU
// existente soma o estoque e sobrescreve os preços; os demais campos ficam.
func (r *ProductRepository) UpsertAccumulate(ctx context.Context, delta product.Delta) (*product.UpsertResult, error) {
	res := product.UpsertResult{SKU: strings.TrimSpace(delta.SKU)}

	err := r.db.QueryRow(ctx,
		`INSERT INTO products (
			sku, name, description, sale_price, purchase_price, stock,
			unit_of_measure, category_id, user_id, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (sku) DO UPDATE SET
			stock = products.stock + EXCLUDED.stock,
			sale_price = EXCLUDED.sale_price,
			purchase_price = EXCLUDED.purchase_price,
			last_updated = EXCLUDED.last_updated
		RETURNING id, stock, (xmax = 0) AS inserted`,
		res.SKU, delta.Name, delta.Description, delta.SalePrice, delta.PurchasePrice,
		delta.AddedStock, string(delta.UnitOfMeasure), delta.CategoryID, delta.UserID,
	).Scan(&res.ProductID, &res.Stock, &res.Created)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, fmt.Errorf("categoria inexistente para o sku %s: %w", res.SKU, err)
		}
		return nil, fmt.Errorf("erro ao aplicar entrada no catálogo: %w", err)
	}

	return &res, nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	var unit string
	var categoryID, userID pgtype.Int8

	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.SalePrice, &p.PurchasePrice,
		&p.Stock, &unit, &categoryID, &p.CategoryName, &userID, &p.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	p.UnitOfMeasure = product.UnitOfMeasure(unit)
	p.CategoryID = int8Ptr(categoryID)
	p.UserID = int8Ptr(userID)
	return &p, nil
}

func int8Ptr(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}
