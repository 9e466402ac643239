package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/maynagashev/famouscats/internal/repository"
	"github.com/maynagashev/famouscats/internal/schema"
	"github.com/maynagashev/famouscats/internal/services"
)

const (
	databaseURLFlag    = "database-url"
	passwordHasherFlag = "password-hasher"
	databaseURLEnv     = "DATABASE_URL"
)

// Подменяется в тестах.
var openDB = repository.NewPostgresDB

type dbAction func(ctx context.Context, db *sqlx.DB, opts *options) error

type options struct {
	databaseURL    string
	passwordHasher string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "catsdb",
		Short:         "Управление схемой и начальными данными Famous Cats",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.databaseURL, databaseURLFlag, "",
		"Строка подключения к PostgreSQL (по умолчанию из "+databaseURLEnv+")")
	root.PersistentFlags().StringVar(&opts.passwordHasher, passwordHasherFlag, services.HasherBcrypt,
		"Алгоритм хранения паролей начальных пользователей: bcrypt или plain")

	root.AddCommand(
		newDBCommand("create-tables", "Создать таблицы users и cats", opts, createTables),
		newDBCommand("drop-tables", "Удалить таблицы users и cats", opts, dropTables),
		newDBCommand("recreate-tables", "Пересоздать пустые таблицы", opts, recreateTables),
		newDBCommand("seed", "Загрузить начальных пользователей и котов", opts, seed),
		newDBCommand("setup-db", "Пересоздать таблицы и загрузить начальные данные", opts, setupDB),
	)
	return root
}

func newDBCommand(use, short string, opts *options, action dbAction) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), opts, action)
		},
	}
}

// withDB открывает соединение, выполняет действие и закрывает соединение.
func withDB(ctx context.Context, opts *options, action dbAction) error {
	if ctx == nil {
		ctx = context.Background()
	}
	dsn := opts.databaseURL
	if dsn == "" {
		dsn = os.Getenv(databaseURLEnv)
	}
	if dsn == "" {
		return errors.New("не указана строка подключения к БД (--database-url или " + databaseURLEnv + ")")
	}

	db, err := openDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	return action(ctx, db, opts)
}

func createTables(ctx context.Context, db *sqlx.DB, _ *options) error {
	return schema.CreateTables(ctx, db)
}

func dropTables(ctx context.Context, db *sqlx.DB, _ *options) error {
	return schema.DropTables(ctx, db)
}

func recreateTables(ctx context.Context, db *sqlx.DB, _ *options) error {
	return schema.Recreate(ctx, db)
}

func seed(ctx context.Context, db *sqlx.DB, opts *options) error {
	hasher, err := services.NewPasswordHasher(opts.passwordHasher)
	if err != nil {
		return err
	}
	return schema.Seed(ctx, db, hasher)
}

func setupDB(ctx context.Context, db *sqlx.DB, opts *options) error {
	if err := schema.Recreate(ctx, db); err != nil {
		return err
	}
	if err := seed(ctx, db, opts); err != nil {
		return fmt.Errorf("таблицы пересозданы, но данные не загружены: %w", err)
	}
	return nil
}
