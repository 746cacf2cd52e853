package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-vendas/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-vendas/internal/domain/sale"
	"github.com/hugohenrick/pos-vendas/internal/usecase"
	"github.com/hugohenrick/pos-vendas/pkg/auth"
	"github.com/hugohenrick/pos-vendas/pkg/logger"
)

// SaleCommitter fecha vendas numa única transação
type SaleCommitter interface {
	CommitSale(ctx context.Context, req usecase.CommitSaleRequest) (*usecase.CommitSaleResult, error)
}

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	committer      SaleCommitter
	saleRepository sale.Repository
	logger         logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(committer SaleCommitter, saleRepository sale.Repository, log logger.Logger) *SaleController {
	return &SaleController{
		committer:      committer,
		saleRepository: saleRepository,
		logger:         log,
	}
}

// Create registra uma venda
// @Summary Registra uma venda
// @Description Registra a venda, os itens, a baixa de estoque e a dívida do cliente numa única transação
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleCommitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var request dto.SaleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	res, err := c.committer.CommitSale(ctx.Request.Context(), request.ToCommitRequest(auth.OperatorID(ctx)))
	if err != nil {
		respondWorkflowError(ctx, c.logger, "Erro ao registrar venda", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleCommitResponse(res))
}

// List lista as vendas mais recentes
// @Summary Lista vendas
// @Description Lista as vendas mais recentes com nome e documento do cliente
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param page query int false "Número da página" default(1)
// @Param page_size query int false "Tamanho da página" default(10)
// @Success 200 {object} dto.SaleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	sales, err := c.saleRepository.List(ctx.Request.Context(), pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, pagination))
}

// GetItems lista os itens de uma venda
// @Summary Itens da venda
// @Description Lista os itens de uma venda com nome e SKU do produto
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da venda"
// @Success 200 {array} dto.SaleItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/items [get]
func (c *SaleController) GetItems(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID da venda inválido", ""))
		return
	}

	items, err := c.saleRepository.FindItems(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sale.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar itens da venda", "sale_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar itens da venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleItemResponses(items))
}
