package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-vendas/internal/adapter/api/dto"
	"github.com/hugohenrick/pos-vendas/internal/domain/customer"
	"github.com/hugohenrick/pos-vendas/internal/domain/product"
	"github.com/hugohenrick/pos-vendas/internal/domain/sale"
	"github.com/hugohenrick/pos-vendas/internal/domain/stock"
	"github.com/hugohenrick/pos-vendas/internal/usecase"
	"github.com/hugohenrick/pos-vendas/pkg/logger"
)

// workflowStatus traduz a falha de um fluxo para o status HTTP
func workflowStatus(wfErr *usecase.WorkflowError) int {
	switch {
	case wfErr.Fatal():
		return http.StatusInternalServerError
	case wfErr.Class == usecase.ClassValidation:
		return http.StatusBadRequest
	case errors.Is(wfErr, product.ErrProductNotFound),
		errors.Is(wfErr, customer.ErrCustomerNotFound),
		errors.Is(wfErr, sale.ErrSaleNotFound):
		return http.StatusNotFound
	case errors.Is(wfErr, product.ErrInsufficientStock),
		errors.Is(wfErr, product.ErrUnitMismatch),
		errors.Is(wfErr, stock.ErrMergeAlreadyApplied),
		errors.Is(wfErr, stock.ErrStagedEntriesChanged):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondWorkflowError escreve a resposta de erro de um fluxo transacional
func respondWorkflowError(ctx *gin.Context, log logger.Logger, message string, err error) {
	wfErr, ok := usecase.AsWorkflowError(err)
	if !ok {
		log.Error(message, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, err.Error()))
		return
	}

	status := workflowStatus(wfErr)
	if wfErr.Fatal() {
		message = "Falha grave ao desfazer a operação, contate o administrador"
	}

	ctx.JSON(status, dto.NewWorkflowErrorResponse(
		status,
		message,
		wfErr.Error(),
		string(wfErr.Class),
		string(wfErr.Step),
		wfErr.Fatal(),
	))
}
