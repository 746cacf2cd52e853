package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/pos-vendas/internal/domain/customer"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CustomerRepository implementa a interface customer.Ledger
type CustomerRepository struct {
	db DBTX
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db DBTX) *CustomerRepository {
	return &CustomerRepository{
		db: db,
	}
}

// FindByID implementa customer.Ledger.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	var c customer.Customer

	err := r.db.QueryRow(ctx,
		`SELECT
			id, tax_code, name, COALESCE(phone, ''), COALESCE(email, ''),
			COALESCE(address, ''), pending_balance, created_at, updated_at
		FROM customers WHERE id = $1`,
		id).Scan(
		&c.ID, &c.TaxCode, &c.Name, &c.Phone, &c.Email,
		&c.Address, &c.PendingBalance, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return &c, nil
}

// IncrementPendingBalance implementa customer.Ledger.IncrementPendingBalance
func (r *CustomerRepository) IncrementPendingBalance(ctx context.Context, customerID int64, amount decimal.Decimal) error {
	if customerID <= 0 {
		return customer.ErrInvalidCustomerID
	}
	if !amount.IsPositive() {
		return customer.ErrNonPositiveDebt
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE customers SET pending_balance = pending_balance + $1, updated_at = NOW()
		WHERE id = $2`,
		amount, customerID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar saldo pendente: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}
