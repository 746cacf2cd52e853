package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/pos-vendas/docs"
	"github.com/hugohenrick/pos-vendas/internal/adapter/api/controller"
	"github.com/hugohenrick/pos-vendas/internal/adapter/api/route"
	"github.com/hugohenrick/pos-vendas/internal/adapter/repository"
	"github.com/hugohenrick/pos-vendas/internal/infrastructure/database"
	"github.com/hugohenrick/pos-vendas/internal/infrastructure/metrics"
	"github.com/hugohenrick/pos-vendas/internal/usecase"
	"github.com/hugohenrick/pos-vendas/pkg/auth"
	"github.com/hugohenrick/pos-vendas/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const version = "1.0.0"

// App representa a aplicação e suas dependências
type App struct {
	router   *gin.Engine
	server   *http.Server
	db       *database.PostgresDB
	logger   logger.Logger
	registry *prometheus.Registry
	basePath string

	saleController     *controller.SaleController
	stockController    *controller.StockController
	customerController *controller.CustomerController
	authMiddleware     []gin.HandlerFunc
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, log logger.Logger) (*App, error) {
	// Configurar banco de dados
	dbConfig := database.NewPostgresConfigFromEnv()

	if getEnv("RUN_MIGRATIONS", "false") == "true" {
		v, err := database.RunMigrations(dbConfig.MigrationURL(), getEnv("MIGRATIONS_PATH", database.DefaultMigrationsPath))
		if err != nil {
			return nil, err
		}
		log.Info("migrações aplicadas", "version", v)
	}

	db, err := database.NewPostgresDB(ctx, dbConfig)
	if err != nil {
		return nil, err
	}

	// Métricas
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	workflowMetrics := metrics.NewWorkflowMetrics(registry)

	// Unidade de trabalho e repositórios de leitura
	unit := repository.NewPostgresUnitOfWork(db)
	saleRepo := repository.NewSaleRepository(db.Pool())
	productRepo := repository.NewProductRepository(db.Pool())
	customerRepo := repository.NewCustomerRepository(db.Pool())
	provisionalRepo := repository.NewProvisionalRepository(db.Pool())

	// Serviços
	txConfig := usecase.Config{
		TxTimeout:       getEnvSeconds("TX_TIMEOUT_SECONDS", 30),
		RollbackTimeout: getEnvSeconds("ROLLBACK_TIMEOUT_SECONDS", 5),
	}
	saleService := usecase.NewSaleService(unit, log.With("workflow", "sale_commit"), workflowMetrics, txConfig)
	stockService := usecase.NewStockService(unit, log.With("workflow", "stock_merge"), workflowMetrics, txConfig)

	// Autenticação do operador
	authMiddleware, authDisabled, err := auth.MiddlewareFromEnv()
	if err != nil {
		db.Close()
		return nil, err
	}
	if authDisabled {
		log.Warn("AUTH_DISABLED=true, rotas sem autenticação e operador lido do corpo da requisição")
	}

	gin.SetMode(getEnv("GIN_MODE", gin.ReleaseMode))
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(cors.New(corsConfig()))

	return &App{
		router:             router,
		db:                 db,
		logger:             log,
		registry:           registry,
		basePath:           getEnv("API_BASE_PATH", "/api/v1"),
		saleController:     controller.NewSaleController(saleService, saleRepo, log),
		stockController:    controller.NewStockController(stockService, productRepo, provisionalRepo, log),
		customerController: controller.NewCustomerController(customerRepo, log),
		authMiddleware:     authMiddleware,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes() {
	a.router.GET("/health", a.health)
	a.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))

	docs.SwaggerInfo.BasePath = a.basePath
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := a.router.Group(a.basePath)
	api.GET("/health", a.health)

	route.RegisterSaleRoutes(api, a.saleController, a.authMiddleware...)
	route.RegisterStockRoutes(api, a.stockController, a.authMiddleware...)
	route.RegisterCustomerRoutes(api, a.customerController, a.authMiddleware...)
}

// Start inicia o servidor HTTP e bloqueia até o contexto ser cancelado
func (a *App) Start(ctx context.Context) error {
	a.SetupRoutes()

	port := getEnv("PORT", "8080")
	a.server = &http.Server{
		Addr:              ":" + port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor iniciado", "port", port, "base_path", a.basePath)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("encerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return a.server.Shutdown(shutdownCtx)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

func (a *App) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unavailable",
			"version": version,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version,
	})
}

// requestLogger registra cada requisição no logger da aplicação
func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("requisição",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", controller.IdempotencyKeyHeader)

	origins := getEnv("CORS_ALLOWED_ORIGINS", "*")
	if origins == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}
	return cfg
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvSeconds(key string, defaultValue int) time.Duration {
	seconds, err := strconv.Atoi(os.Getenv(key))
	if err != nil || seconds < 0 {
		seconds = defaultValue
	}
	return time.Duration(seconds) * time.Second
}
