package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/pos-vendas/internal/domain/stock"
	"github.com/jackc/pgx/v5/pgtype"
)

// StockMergeRepository implementa a interface stock.MergeLog
type StockMergeRepository struct {
	db DBTX
}

// NewStockMergeRepository cria uma nova instância de StockMergeRepository
func NewStockMergeRepository(db DBTX) *StockMergeRepository {
	return &StockMergeRepository{
		db: db,
	}
}

// Record implementa stock.MergeLog.Record. Cada finalização gera uma linha;
// só a chave de requisição é única, e sem ela nunca há conflito.
func (r *StockMergeRepository) Record(ctx context.Context, m *stock.Merge) error {
	requestKey := pgtype.Text{String: m.RequestKey, Valid: m.RequestKey != ""}

	tag, err := r.db.Exec(ctx,
		`INSERT INTO stock_merges (merge_id, session_id, request_key, entries, user_id, merged_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (request_key) DO NOTHING`,
		m.MergeID, m.SessionID, requestKey, m.Entries, m.UserID, m.MergedAt)
	if err != nil {
		return fmt.Errorf("erro ao registrar finalização: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return stock.ErrMergeAlreadyApplied
	}

	return nil
}
