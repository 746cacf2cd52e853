package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-vendas/internal/adapter/api/controller"
)

// RegisterSaleRoutes registra as rotas do módulo de vendas
func RegisterSaleRoutes(r *gin.RouterGroup, saleController *controller.SaleController, middlewares ...gin.HandlerFunc) {
	sales := r.Group("/sales")
	sales.Use(middlewares...)
	{
		sales.POST("", saleController.Create)
		sales.GET("", saleController.List)
		sales.GET("/:id/items", saleController.GetItems)
	}
}
