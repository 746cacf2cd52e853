package controller

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-vendas/internal/domain/customer"
	"github.com/hugohenrick/pos-vendas/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCustomerController_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ledger := &mockLedger{}
	ledger.On("FindByID", mock.Anything, int64(42)).Return(&customer.Customer{
		ID: 42, TaxCode: "12345678900", Name: "Maria", PendingBalance: decimal.RequireFromString("150.50"),
	}, nil)
	ledger.On("FindByID", mock.Anything, int64(43)).Return(nil, customer.ErrCustomerNotFound)
	ledger.On("FindByID", mock.Anything, int64(44)).Return(nil, errors.New("conn refused"))

	router := gin.New()
	router.GET("/customers/:id", NewCustomerController(ledger, logger.NewNop()).GetByID)

	tests := []struct {
		path   string
		status int
	}{
		{"/customers/42", http.StatusOK},
		{"/customers/43", http.StatusNotFound},
		{"/customers/44", http.StatusInternalServerError},
		{"/customers/0", http.StatusBadRequest},
		{"/customers/xyz", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := doRequest(router, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"pending_balance":"150.5"`)
				assert.Contains(t, rec.Body.String(), `"has_debt":true`)
			}
		})
	}
}
