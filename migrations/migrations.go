package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/psqlbuilder"
)

//go:embed *.sql
var files embed.FS

const tableName = "schema_migrations"

const createTableSQL = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    TEXT PRIMARY KEY,
    name       TEXT        NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

var (
	// ErrInvalidFileName файл миграции не в формате NNN_name.sql
	ErrInvalidFileName = errors.New("migrations: invalid file name")

	// ErrApply миграция не применилась
	ErrApply = errors.New("migrations: failed to apply")
)

// Migration один SQL-файл
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// Status состояние миграции
type Status struct {
	Migration
	Applied bool
}

// TransactionManager выполняет функцию в транзакции
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator применяет встроенные миграции по порядку версий
type Migrator struct {
	db        dbmetrics.DBExecutor
	txManager TransactionManager
	source    fs.FS
	logger    Logger
}

func NewMigrator(db dbmetrics.DBExecutor, txManager TransactionManager, logger Logger) *Migrator {
	return &Migrator{db: db, txManager: txManager, source: files, logger: logger}
}

// Load читает миграции, отсортированные по версии
func Load(source fs.FS) ([]Migration, error) {
	names, err := fs.Glob(source, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, file := range names {
		version, name, ok := strings.Cut(strings.TrimSuffix(path.Base(file), ".sql"), "_")
		if !ok || version == "" || name == "" {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFileName, file)
		}

		body, err := fs.ReadFile(source, file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}

		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(body)})
	}
	return migrations, nil
}

// Up применяет все непримененные миграции, каждую в своей транзакции
func (m *Migrator) Up(ctx context.Context) (int, error) {
	statuses, err := m.Status(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, st := range statuses {
		if st.Applied {
			continue
		}

		migration := st.Migration
		err := m.txManager.Do(ctx, func(txCtx context.Context) error {
			executor := dbmetrics.GetExecutor(txCtx, m.db)

			if _, err := executor.ExecContext(txCtx, migration.SQL); err != nil {
				return err
			}

			query, args, err := psqlbuilder.Insert(tableName).
				Columns("version", "name").
				Values(migration.Version, migration.Name).
				ToSql()
			if err != nil {
				return err
			}
			_, err = executor.ExecContext(txCtx, query, args...)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("%w: %s_%s: %v", ErrApply, migration.Version, migration.Name, err)
		}

		m.logger.Info("Migration %s_%s applied", migration.Version, migration.Name)
		applied++
	}

	return applied, nil
}

// Status возвращает список миграций с отметкой о применении
func (m *Migrator) Status(ctx context.Context) ([]Status, error) {
	migrations, err := Load(m.source)
	if err != nil {
		return nil, err
	}

	if _, err := m.db.ExecContext(ctx, createTableSQL); err != nil {
		return nil, fmt.Errorf("create %s: %w", tableName, err)
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, 0, len(migrations))
	for _, migration := range migrations {
		statuses = append(statuses, Status{Migration: migration, Applied: applied[migration.Version]})
	}
	return statuses, nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[string]bool, error) {
	query, args, err := psqlbuilder.Select("version").From(tableName).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", tableName, err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}
