package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-vendas/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-vendas/internal/domain/product"
	"github.com/hugohenrick/pos-vendas/internal/domain/stock"
	"github.com/hugohenrick/pos-vendas/internal/usecase"
	"github.com/hugohenrick/pos-vendas/pkg/auth"
	"github.com/hugohenrick/pos-vendas/pkg/logger"
)

// StockMerger finaliza sessões de entrada de estoque
type StockMerger interface {
	MergeStock(ctx context.Context, req usecase.MergeStockRequest) (*usecase.MergeStockResult, error)
	MergeSession(ctx context.Context, sessionID, requestKey string, operatorID int64) (*usecase.MergeStockResult, error)
}

// IdempotencyKeyHeader identifica a requisição de finalização; repetida, a
// finalização é recusada com 409
const IdempotencyKeyHeader = "Idempotency-Key"

// StockController gerencia as requisições de catálogo e entrada de estoque
type StockController struct {
	merger      StockMerger
	catalog     product.Catalog
	provisional stock.ProvisionalStore
	logger      logger.Logger
}

// NewStockController cria uma nova instância de StockController
func NewStockController(merger StockMerger, catalog product.Catalog, provisional stock.ProvisionalStore, log logger.Logger) *StockController {
	return &StockController{
		merger:      merger,
		catalog:     catalog,
		provisional: provisional,
		logger:      log,
	}
}

// ListProducts lista o catálogo
// @Summary Lista produtos
// @Description Lista os produtos do catálogo com o nome da categoria
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock/products [get]
func (c *StockController) ListProducts(ctx *gin.Context) {
	products, err := c.catalog.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// GetProductBySKU busca um produto pelo SKU
// @Summary Busca produto por SKU
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Param sku path string true "SKU do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock/products/by-sku/{sku} [get]
func (c *StockController) GetProductBySKU(ctx *gin.Context) {
	sku := strings.TrimSpace(ctx.Param("sku"))
	if sku == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "SKU não fornecido", ""))
		return
	}

	p, err := c.catalog.FindBySKU(ctx.Request.Context(), sku)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar produto", "sku", sku, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// AddProvisional inclui uma entrada provisória na sessão
// @Summary Inclui entrada provisória
// @Description Registra uma entrada de estoque pendente para a sessão informada
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body dto.ProvisionalEntryRequest true "Entrada de estoque"
// @Success 201 {object} dto.ProvisionalEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock/provisional [post]
func (c *StockController) AddProvisional(ctx *gin.Context) {
	var request dto.ProvisionalEntryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	entry := request.ToEntry(strings.TrimSpace(request.SessionID))
	if entry.SessionID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", stock.ErrEmptySession.Error()))
		return
	}

	unit, err := product.ParseUnitOfMeasure(string(entry.UnitOfMeasure))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}
	entry.UnitOfMeasure = unit
	entry.SKU = strings.TrimSpace(entry.SKU)
	if entry.UserID == nil {
		if operator := auth.OperatorID(ctx); operator > 0 {
			entry.UserID = &operator
		}
	}

	if err := entry.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	id, err := c.provisional.Add(ctx.Request.Context(), &entry)
	if err != nil {
		c.logger.Error("erro ao registrar entrada provisória", "session_id", entry.SessionID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao registrar entrada provisória", err.Error()))
		return
	}
	entry.ID = id

	ctx.JSON(http.StatusCreated, dto.ToProvisionalEntryResponse(entry))
}

// ListProvisional lista as entradas provisórias da sessão
// @Summary Lista entradas provisórias
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "ID da sessão"
// @Success 200 {array} dto.ProvisionalEntryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock/provisional/{sessionId} [get]
func (c *StockController) ListProvisional(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")

	entries, err := c.provisional.ListBySession(ctx.Request.Context(), sessionID)
	if err != nil {
		c.logger.Error("erro ao listar entradas provisórias", "session_id", sessionID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar entradas provisórias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProvisionalEntryResponses(entries))
}

// ClearProvisional descarta as entradas provisórias da sessão
// @Summary Descarta entradas provisórias
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "ID da sessão"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock/provisional/{sessionId} [delete]
func (c *StockController) ClearProvisional(ctx *gin.Context) {
	sessionID := ctx.Param("sessionId")

	removed, err := c.provisional.ClearSession(ctx.Request.Context(), sessionID)
	if err != nil {
		c.logger.Error("erro ao limpar entradas provisórias", "session_id", sessionID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao limpar entradas provisórias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Entradas provisórias removidas", gin.H{"removed": removed}))
}

// Finalize aplica as entradas informadas ao catálogo
// @Summary Finaliza entrada de estoque
// @Description Soma o estoque das entradas ao catálogo, sobrescreve os preços e limpa a sessão numa única transação
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Chave da requisição"
// @Param finalize body dto.FinalizeRequest true "Sessão e entradas"
// @Success 200 {object} dto.MergeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock/finalize [post]
func (c *StockController) Finalize(ctx *gin.Context) {
	var request dto.FinalizeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	if key := strings.TrimSpace(ctx.GetHeader(IdempotencyKeyHeader)); key != "" {
		request.RequestKey = key
	}

	res, err := c.merger.MergeStock(ctx.Request.Context(), request.ToMergeRequest(auth.OperatorID(ctx)))
	if err != nil {
		respondWorkflowError(ctx, c.logger, "Erro ao finalizar estoque", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMergeResponse(res))
}

// FinalizeSession aplica ao catálogo as entradas já gravadas na sessão
// @Summary Finaliza sessão de estoque
// @Description Aplica as entradas provisórias gravadas para a sessão e as remove
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "ID da sessão"
// @Param Idempotency-Key header string false "Chave da requisição"
// @Success 200 {object} dto.MergeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock/finalize/{sessionId} [post]
func (c *StockController) FinalizeSession(ctx *gin.Context) {
	res, err := c.merger.MergeSession(ctx.Request.Context(), ctx.Param("sessionId"),
		strings.TrimSpace(ctx.GetHeader(IdempotencyKeyHeader)), auth.OperatorID(ctx))
	if err != nil {
		respondWorkflowError(ctx, c.logger, "Erro ao finalizar estoque", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMergeResponse(res))
}
