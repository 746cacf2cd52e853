package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-vendas/internal/adapter/api/controller"
)

// RegisterStockRoutes registra as rotas de catálogo e entrada de estoque
func RegisterStockRoutes(r *gin.RouterGroup, stockController *controller.StockController, middlewares ...gin.HandlerFunc) {
	stockRouter := r.Group("/stock")
	stockRouter.Use(middlewares...)
	{
		// Catálogo
		stockRouter.GET("/products", stockController.ListProducts)
		stockRouter.GET("/products/by-sku/:sku", stockController.GetProductBySKU)

		// Sessão de entrada provisória
		stockRouter.POST("/provisional", stockController.AddProvisional)
		stockRouter.GET("/provisional/:sessionId", stockController.ListProvisional)
		stockRouter.DELETE("/provisional/:sessionId", stockController.ClearProvisional)

		// Finalização
		stockRouter.POST("/finalize", stockController.Finalize)
		stockRouter.POST("/finalize/:sessionId", stockController.FinalizeSession)
	}
}
