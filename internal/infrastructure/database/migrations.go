package database

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// DefaultMigrationsPath é o diretório padrão dos arquivos .sql
const DefaultMigrationsPath = "migrations"

// RunMigrations aplica todas as migrações pendentes do diretório informado
func RunMigrations(dbURL, migrationsPath string) (uint, error) {
	m, err := newMigrate(dbURL, migrationsPath)
	if err != nil {
		return 0, err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	return currentVersion(m)
}

// RollbackMigrations desfaz a quantidade informada de migrações
func RollbackMigrations(dbURL, migrationsPath string, steps int) (uint, error) {
	if steps <= 0 {
		return 0, errors.New("quantidade de passos deve ser maior que zero")
	}

	m, err := newMigrate(dbURL, migrationsPath)
	if err != nil {
		return 0, err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("erro ao desfazer migrações: %w", err)
	}

	return currentVersion(m)
}

func newMigrate(dbURL, migrationsPath string) (*migrate.Migrate, error) {
	if migrationsPath == "" {
		migrationsPath = DefaultMigrationsPath
	}
	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao resolver caminho das migrações: %w", err)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(absPath), dbURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar migrate: %w", err)
	}
	return m, nil
}

func currentVersion(m *migrate.Migrate) (uint, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("erro ao ler versão das migrações: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("migração %d ficou em estado inconsistente", version)
	}
	return version, nil
}
