package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/pos-vendas/internal/domain/product"
	"github.com/hugohenrick/pos-vendas/internal/domain/stock"
	"github.com/jackc/pgx/v5/pgtype"
)

// ProvisionalRepository implementa a interface stock.ProvisionalStore
type ProvisionalRepository struct {
	db DBTX
}

// NewProvisionalRepository cria uma nova instância de ProvisionalRepository
func NewProvisionalRepository(db DBTX) *ProvisionalRepository {
	return &ProvisionalRepository{
		db: db,
	}
}

// Add implementa stock.ProvisionalStore.Add
func (r *ProvisionalRepository) Add(ctx context.Context, e *stock.ProvisionalEntry) (int64, error) {
	var id int64
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO provisional_stock_entries (
			session_id, sku, name, description, added_stock, purchase_price,
			sale_price, unit_of_measure, category_id, user_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		strings.TrimSpace(e.SessionID), strings.TrimSpace(e.SKU), e.Name, e.Description,
		e.AddedStock, e.PurchasePrice, e.SalePrice, string(e.UnitOfMeasure),
		e.CategoryID, e.UserID, createdAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("erro ao registrar entrada provisória: %w", err)
	}

	return id, nil
}

// ListBySession implementa stock.ProvisionalStore.ListBySession
func (r *ProvisionalRepository) ListBySession(ctx context.Context, sessionID string) ([]stock.ProvisionalEntry, error) {
	return r.list(ctx, selectProvisional+` ORDER BY id`, sessionID)
}

// ClaimSession implementa stock.ProvisionalStore.ClaimSession. As linhas
// ficam bloqueadas até o fim da transação, então duas finalizações da mesma
// sessão não aplicam a mesma entrada.
func (r *ProvisionalRepository) ClaimSession(ctx context.Context, sessionID string) ([]stock.ProvisionalEntry, error) {
	return r.list(ctx, selectProvisional+` ORDER BY id FOR UPDATE`, sessionID)
}

const selectProvisional = `SELECT
		id, session_id, sku, name, COALESCE(description, ''), added_stock,
		purchase_price, sale_price, unit_of_measure, category_id, user_id, created_at
	FROM provisional_stock_entries
	WHERE session_id = $1`

func (r *ProvisionalRepository) list(ctx context.Context, query, sessionID string) ([]stock.ProvisionalEntry, error) {
	rows, err := r.db.Query(ctx, query, strings.TrimSpace(sessionID))
	if err != nil {
		return nil, fmt.Errorf("erro ao listar entradas provisórias: %w", err)
	}
	defer rows.Close()

	entries := []stock.ProvisionalEntry{}
	for rows.Next() {
		var e stock.ProvisionalEntry
		var unit string
		var categoryID, userID pgtype.Int8

		if err := rows.Scan(
			&e.ID, &e.SessionID, &e.SKU, &e.Name, &e.Description, &e.AddedStock,
			&e.PurchasePrice, &e.SalePrice, &unit, &categoryID, &userID, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler entrada provisória: %w", err)
		}

		e.UnitOfMeasure = product.UnitOfMeasure(unit)
		e.CategoryID = int8Ptr(categoryID)
		e.UserID = int8Ptr(userID)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar entradas provisórias: %w", err)
	}

	return entries, nil
}

// ClearSession implementa stock.ProvisionalStore.ClearSession
func (r *ProvisionalRepository) ClearSession(ctx context.Context, sessionID string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM provisional_stock_entries WHERE session_id = $1`,
		strings.TrimSpace(sessionID))
	if err != nil {
		return 0, fmt.Errorf("erro ao limpar entradas provisórias: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeleteEntries implementa stock.ProvisionalStore.DeleteEntries
func (r *ProvisionalRepository) DeleteEntries(ctx context.Context, sessionID string, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM provisional_stock_entries WHERE session_id = $1 AND id = ANY($2)`,
		strings.TrimSpace(sessionID), ids)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover entradas provisórias: %w", err)
	}

	return tag.RowsAffected(), nil
}
