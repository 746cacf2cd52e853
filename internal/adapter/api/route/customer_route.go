package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-vendas/internal/adapter/api/controller"
)

// RegisterCustomerRoutes registra as rotas do módulo de clientes
func RegisterCustomerRoutes(r *gin.RouterGroup, customerController *controller.CustomerController, middlewares ...gin.HandlerFunc) {
	customers := r.Group("/customers")
	customers.Use(middlewares...)
	{
		customers.GET("/:id", customerController.GetByID)
	}
}
