package main

import (
	"flag"
	"log"
	"os"

	"github.com/hugohenrick/pos-vendas/internal/infrastructure/database"
	"github.com/hugohenrick/pos-vendas/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	down := flag.Int("down", 0, "quantidade de migrações a desfazer")
	path := flag.String("path", os.Getenv("MIGRATIONS_PATH"), "diretório dos arquivos de migração")
	flag.Parse()

	appLogger := logger.NewLogger()
	defer appLogger.Sync() //nolint:errcheck

	dbURL := database.NewPostgresConfigFromEnv().MigrationURL()

	if *down > 0 {
		version, err := database.RollbackMigrations(dbURL, *path, *down)
		if err != nil {
			appLogger.Error("erro ao desfazer migrações", "steps", *down, "error", err)
			os.Exit(1)
		}
		appLogger.Info("migrações desfeitas", "steps", *down, "version", version)
		return
	}

	version, err := database.RunMigrations(dbURL, *path)
	if err != nil {
		appLogger.Error("erro ao executar migrações", "error", err)
		os.Exit(1)
	}

	appLogger.Info("migrações executadas com sucesso", "version", version)
}
