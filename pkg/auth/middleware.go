package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-vendas/internal/adapter/api/dto"
)

const (
	ctxUserID   = "user_id"
	ctxUserName = "user_name"
	ctxUserRole = "user_role"
)

// JWTAuthMiddleware cria um middleware para autenticação JWT
func JWTAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"O cabeçalho Authorization não foi fornecido",
			))
			return
		}

		// Verificar o formato "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Formato de token inválido",
				"Use o formato 'Bearer <token>'",
			))
			return
		}

		claims, err := jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			message := "Token inválido"
			if errors.Is(err, ErrExpiredToken) {
				message = "Token expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserName, claims.Name)
		c.Set(ctxUserRole, claims.Role)

		c.Next()
	}
}

// MiddlewareFromEnv monta a autenticação das rotas a partir do ambiente.
// Sem JWT_SECRET_KEY a aplicação não sobe, a não ser que AUTH_DISABLED=true
// libere explicitamente as rotas (desenvolvimento); nesse caso o retorno é
// vazio e disabled é true.
func MiddlewareFromEnv() (handlers []gin.HandlerFunc, disabled bool, err error) {
	jwtService, err := NewJWTService()
	if err == nil {
		return []gin.HandlerFunc{JWTAuthMiddleware(jwtService)}, false, nil
	}
	if !errors.Is(err, ErrMissingJWTKey) {
		return nil, false, err
	}

	allow, _ := strconv.ParseBool(os.Getenv("AUTH_DISABLED"))
	if !allow {
		return nil, false, fmt.Errorf("%w; defina AUTH_DISABLED=true para subir sem autenticação", err)
	}
	return nil, true, nil
}

// OperatorID retorna o operador autenticado, ou zero sem autenticação
func OperatorID(c *gin.Context) int64 {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return 0
	}
	id, _ := userID.(int64)
	return id
}
