// Package schema создает таблицы users и cats и наполняет их начальными данными.
// Это не система миграций: DDL идемпотентен, а Recreate просто пересоздает таблицы с нуля.
package schema

import (
	"context"
	_ "embed"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

var (
	//go:embed sql/create_tables.sql
	createTablesSQL string

	//go:embed sql/drop_tables.sql
	dropTablesSQL string
)

// CreateTables создает таблицы, если их еще нет.
func CreateTables(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, createTablesSQL); err != nil {
		return fmt.Errorf("ошибка создания таблиц: %w", err)
	}
	log.Println("[Schema] Таблицы users и cats созданы")
	return nil
}

// DropTables удаляет таблицы вместе с данными.
func DropTables(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, dropTablesSQL); err != nil {
		return fmt.Errorf("ошибка удаления таблиц: %w", err)
	}
	log.Println("[Schema] Таблицы users и cats удалены")
	return nil
}

// Recreate удаляет и заново создает таблицы в одной транзакции.
// Счетчики id после этого начинаются с 1.
func Recreate(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer func() {
		// После Commit откат вернет sql.ErrTxDone, это ожидаемо
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, dropTablesSQL); err != nil {
		return fmt.Errorf("ошибка удаления таблиц: %w", err)
	}
	if _, err = tx.ExecContext(ctx, createTablesSQL); err != nil {
		return fmt.Errorf("ошибка создания таблиц: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	log.Println("[Schema] Таблицы users и cats пересозданы")
	return nil
}
