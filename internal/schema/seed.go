package schema

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

// PasswordHasher хеширует пароли пользователей из начальных данных.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// SeedUser - пользователь из начальных данных.
type SeedUser struct {
	Name     string
	Email    string
	Password string
}

// SeedCat - кот из начальных данных. Owner - индекс владельца в Users.
type SeedCat struct {
	Name       string `db:"name"`
	Type       string `db:"type"`
	URL        string `db:"url"`
	Year       int    `db:"year"`
	Lives      int    `db:"lives"`
	IsSidekick bool   `db:"is_sidekick"`
	Owner      int    `db:"-"`
	UserID     int64  `db:"user_id"`
}

// Users - начальные пользователи. Первый из них получает id 1 и становится
// владельцем по умолчанию для котов, созданных без userId.
var Users = []SeedUser{
	{Name: "Famous Cats", Email: "admin@famouscats.dev", Password: "meow"},
	{Name: "Bill Watterson", Email: "bill@famouscats.dev", Password: "tiger"},
}

// Cats - восемь знаменитых котов.
var Cats = []SeedCat{
	{Name: "Felix", Type: "Tuxedo", URL: "cats/felix.png", Year: 1892, Lives: 3, IsSidekick: false, Owner: 0},
	{Name: "Garfield", Type: "Orange Tabby", URL: "cats/garfield.jpeg", Year: 1978, Lives: 7, IsSidekick: false, Owner: 0},
	{Name: "Duchess", Type: "Angora", URL: "cats/duchess.jpeg", Year: 1970, Lives: 9, IsSidekick: false, Owner: 0},
	{Name: "Stimpy", Type: "Manx", URL: "cats/stimpy.jpeg", Year: 1990, Lives: 1, IsSidekick: true, Owner: 0},
	{Name: "Sylvester", Type: "Tuxedo", URL: "cats/sylvester.jpeg", Year: 1945, Lives: 1, IsSidekick: true, Owner: 0},
	{Name: "Tigger", Type: "Orange Tabby", URL: "cats/tigger.jpeg", Year: 1928, Lives: 8, IsSidekick: false, Owner: 0},
	{Name: "Hello Kitty", Type: "Angora", URL: "cats/hello-kitty.jpeg", Year: 1974, Lives: 9, IsSidekick: false, Owner: 0},
	{Name: "Hobbs", Type: "Orange Tabby", URL: "cats/hobbs.jpeg", Year: 1985, Lives: 6, IsSidekick: true, Owner: 1},
}

const (
	insertSeedUserSQL = `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id`
	insertSeedCatSQL  = `INSERT INTO cats (name, type, url, year, lives, is_sidekick, user_id)
	                     VALUES (:name, :type, :url, :year, :lives, :is_sidekick, :user_id)`
)

// Seed вставляет начальных пользователей и котов в одной транзакции.
func Seed(ctx context.Context, db *sqlx.DB, hasher PasswordHasher) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	userIDs := make([]int64, 0, len(Users))
	for _, u := range Users {
		hash, hashErr := hasher.Hash(u.Password)
		if hashErr != nil {
			return fmt.Errorf("ошибка хеширования пароля для '%s': %w", u.Email, hashErr)
		}
		var id int64
		if err = tx.QueryRowxContext(ctx, insertSeedUserSQL, u.Name, u.Email, hash).Scan(&id); err != nil {
			return fmt.Errorf("ошибка вставки пользователя '%s': %w", u.Email, err)
		}
		userIDs = append(userIDs, id)
	}

	for _, c := range Cats {
		if c.Owner < 0 || c.Owner >= len(userIDs) {
			return fmt.Errorf("кот '%s' ссылается на несуществующего владельца #%d", c.Name, c.Owner)
		}
		c.UserID = userIDs[c.Owner]
		if _, err = tx.NamedExecContext(ctx, insertSeedCatSQL, c); err != nil {
			return fmt.Errorf("ошибка вставки кота '%s': %w", c.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	log.Printf("[Schema] Загружено %d пользователей и %d котов", len(Users), len(Cats))
	return nil
}
