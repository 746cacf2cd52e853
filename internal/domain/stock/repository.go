package stock

import (
	"context"
	"errors"
)

// ErrMergeAlreadyApplied ocorre quando a finalização com a mesma chave de
// requisição já foi aplicada
var ErrMergeAlreadyApplied = errors.New("finalização de estoque já aplicada")

// ErrStagedEntriesChanged ocorre quando as entradas reservadas mudaram antes da limpeza
var ErrStagedEntriesChanged = errors.New("entradas provisórias alteradas durante a finalização")

// ProvisionalStore define as operações sobre entradas provisórias
type ProvisionalStore interface {
	// Add registra uma entrada provisória e retorna o ID gerado
	Add(ctx context.Context, entry *ProvisionalEntry) (int64, error)

	// ListBySession lista as entradas da sessão na ordem de inclusão
	ListBySession(ctx context.Context, sessionID string) ([]ProvisionalEntry, error)

	// ClaimSession lista as entradas da sessão bloqueando-as até o fim da transação
	ClaimSession(ctx context.Context, sessionID string) ([]ProvisionalEntry, error)

	// ClearSession remove as entradas da sessão e retorna quantas foram removidas
	ClearSession(ctx context.Context, sessionID string) (int64, error)

	// DeleteEntries remove apenas as entradas informadas da sessão
	DeleteEntries(ctx context.Context, sessionID string, ids []int64) (int64, error)
}

// MergeLog registra as finalizações aplicadas
type MergeLog interface {
	// Record grava a finalização; retorna ErrMergeAlreadyApplied se a chave
	// de requisição já foi usada
	Record(ctx context.Context, m *Merge) error
}
