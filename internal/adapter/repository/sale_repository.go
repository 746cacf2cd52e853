package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/pos-vendas/internal/domain/customer"
	"github.com/hugohenrick/pos-vendas/internal/domain/product"
	"github.com/hugohenrick/pos-vendas/internal/domain/sale"
	"github.com/jackc/pgx/v5/pgtype"
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db DBTX
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db DBTX) *SaleRepository {
	return &SaleRepository{
		db: db,
	}
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) (int64, error) {
	var id int64

	err := r.db.QueryRow(ctx,
		`INSERT INTO sales (
			total, received, change_amount, payment_method, customer_id, debt, user_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		s.Total, s.Received, s.Change, string(s.PaymentMethod), s.CustomerID,
		s.Debt, s.UserID, s.CreatedAt,
	).Scan(&id)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return 0, customer.ErrCustomerNotFound
		}
		return 0, fmt.Errorf("erro ao registrar venda: %w", err)
	}

	return id, nil
}

// AddItem implementa sale.Repository.AddItem
func (r *SaleRepository) AddItem(ctx context.Context, saleID int64, item sale.LineItem) (int64, error) {
	var id int64

	err := r.db.QueryRow(ctx,
		`INSERT INTO sale_items (sale_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		saleID, item.ProductID, item.Quantity, item.UnitPrice,
	).Scan(&id)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			if pgConstraint(err) == "sale_items_sale_id_fkey" {
				return 0, sale.ErrSaleNotFound
			}
			return 0, product.ErrProductNotFound
		}
		return 0, fmt.Errorf("erro ao registrar item da venda: %w", err)
	}

	return id, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT
			s.id, s.total, s.received, s.change_amount, s.payment_method, s.customer_id,
			COALESCE(c.name, ''), COALESCE(c.tax_code, ''), s.debt, s.user_id, s.created_at
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := []*sale.Sale{}
	for rows.Next() {
		var s sale.Sale
		var method string
		var customerID pgtype.Int8

		if err := rows.Scan(
			&s.ID, &s.Total, &s.Received, &s.Change, &method, &customerID,
			&s.CustomerName, &s.CustomerTaxCode, &s.Debt, &s.UserID, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}

		s.PaymentMethod = sale.PaymentMethod(method)
		s.CustomerID = int8Ptr(customerID)
		sales = append(sales, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar vendas: %w", err)
	}

	return sales, nil
}

// FindItems implementa sale.Repository.FindItems
func (r *SaleRepository) FindItems(ctx context.Context, saleID int64) ([]sale.LineItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.id, i.sale_id, i.product_id, p.name, p.sku, i.quantity, i.unit_price
		FROM sale_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.sale_id = $1
		ORDER BY i.id`,
		saleID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da venda: %w", err)
	}
	defer rows.Close()

	items := []sale.LineItem{}
	for rows.Next() {
		var item sale.LineItem
		if err := rows.Scan(
			&item.ID, &item.SaleID, &item.ProductID, &item.ProductName,
			&item.SKU, &item.Quantity, &item.UnitPrice,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler item da venda: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar itens da venda: %w", err)
	}

	return items, nil
}
