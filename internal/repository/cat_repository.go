package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/maynagashev/famouscats/internal/models"
)

// Колонки кота в том порядке, в котором их возвращают все запросы.
const catColumns = `id, name, type, url, year, lives, is_sidekick, user_id`

// Проекция JOIN кота с владельцем. Имя владельца вычисляется при каждом запросе.
const catWithOwnerSelect = `SELECT c.id, c.name, c.type, c.url, c.year, c.lives, c.is_sidekick, c.user_id,
	u.name AS user_name
	FROM cats c
	JOIN users u ON c.user_id = u.id`

// likeEscaper экранирует спецсимволы шаблона LIKE (экранирующий символ по умолчанию - обратный слеш).
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CatRepository определяет методы для работы с котами в хранилище.
type CatRepository interface {
	CreateCat(ctx context.Context, cat *models.Cat) (*models.Cat, error)
	UpdateCat(ctx context.Context, cat *models.Cat) (*models.Cat, error)
	UpdateCatURL(ctx context.Context, id int64, url string) (*models.Cat, error)
	DeleteCat(ctx context.Context, id int64) (*models.Cat, error)
	ListCats(ctx context.Context, nameFilter string) ([]models.CatWithOwner, error)
	GetCatByID(ctx context.Context, id int64) (*models.CatWithOwner, error)
}

// postgresCatRepository реализует CatRepository для PostgreSQL.
type postgresCatRepository struct {
	db *sqlx.DB
}

// NewPostgresCatRepository создает новый экземпляр репозитория котов.
func NewPostgresCatRepository(db *sqlx.DB) CatRepository {
	return &postgresCatRepository{db: db}
}

// CreateCat вставляет кота и возвращает сохраненную запись со сгенерированным ID.
func (r *postgresCatRepository) CreateCat(ctx context.Context, cat *models.Cat) (*models.Cat, error) {
	query := `INSERT INTO cats (name, type, url, year, lives, is_sidekick, user_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING ` + catColumns
	var created models.Cat

	err := r.db.GetContext(ctx, &created, query,
		cat.Name, cat.Type, cat.URL, cat.Year, cat.Lives, cat.IsSidekick, cat.UserID,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolationCode {
			log.Printf("[CatRepo] Ошибка создания кота '%s': владелец ID %d не существует", cat.Name, cat.UserID)
			return nil, fmt.Errorf("%w: %d", ErrOwnerNotFound, cat.UserID)
		}
		log.Printf("[CatRepo] Непредвиденная ошибка при создании кота '%s': %v", cat.Name, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на создание кота: %w", err)
	}

	log.Printf("[CatRepo] Кот '%s' успешно создан с ID %d (владелец ID %d)", created.Name, created.ID, created.UserID)
	return &created, nil
}

// UpdateCat перезаписывает все изменяемые поля кота. Владелец (user_id) не меняется.
// Возвращает ErrCatNotFound, если кота с таким ID нет.
func (r *postgresCatRepository) UpdateCat(ctx context.Context, cat *models.Cat) (*models.Cat, error) {
	query := `UPDATE cats
	          SET name = $1, type = $2, url = $3, year = $4, lives = $5, is_sidekick = $6
	          WHERE id = $7
	          RETURNING ` + catColumns
	var updated models.Cat

	err := r.db.GetContext(ctx, &updated, query,
		cat.Name, cat.Type, cat.URL, cat.Year, cat.Lives, cat.IsSidekick, cat.ID,
	)
	if err != nil {
		return nil, r.wrapRowError("обновление", cat.ID, err)
	}

	log.Printf("[CatRepo] Кот ID %d успешно обновлен", updated.ID)
	return &updated, nil
}

// UpdateCatURL меняет только путь к изображению кота.
func (r *postgresCatRepository) UpdateCatURL(ctx context.Context, id int64, url string) (*models.Cat, error) {
	query := `UPDATE cats SET url = $1 WHERE id = $2 RETURNING ` + catColumns
	var updated models.Cat

	if err := r.db.GetContext(ctx, &updated, query, url, id); err != nil {
		return nil, r.wrapRowError("обновление изображения", id, err)
	}

	log.Printf("[CatRepo] Изображение кота ID %d изменено на '%s'", id, url)
	return &updated, nil
}

// DeleteCat удаляет кота и возвращает удаленную запись.
func (r *postgresCatRepository) DeleteCat(ctx context.Context, id int64) (*models.Cat, error) {
	query := `DELETE FROM cats WHERE id = $1 RETURNING ` + catColumns
	var deleted models.Cat

	if err := r.db.GetContext(ctx, &deleted, query, id); err != nil {
		return nil, r.wrapRowError("удаление", id, err)
	}

	log.Printf("[CatRepo] Кот ID %d ('%s') удален", deleted.ID, deleted.Name)
	return &deleted, nil
}

// ListCats возвращает всех котов с именами владельцев.
// Если nameFilter не пустой, возвращаются только коты, в имени которых
// встречается эта подстрока (без учета регистра).
func (r *postgresCatRepository) ListCats(ctx context.Context, nameFilter string) ([]models.CatWithOwner, error) {
	query := catWithOwnerSelect
	var args []any
	if nameFilter != "" {
		query += ` WHERE c.name ILIKE $1`
		args = append(args, "%"+likeEscaper.Replace(nameFilter)+"%")
	}
	query += ` ORDER BY c.id`

	cats := make([]models.CatWithOwner, 0)
	if err := r.db.SelectContext(ctx, &cats, query, args...); err != nil {
		log.Printf("[CatRepo] Ошибка при получении списка котов (фильтр '%s'): %v", nameFilter, err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение списка котов: %w", err)
	}

	log.Printf("[CatRepo] Получено %d котов (фильтр '%s')", len(cats), nameFilter)
	return cats, nil
}

// GetCatByID находит кота по ID вместе с именем владельца.
func (r *postgresCatRepository) GetCatByID(ctx context.Context, id int64) (*models.CatWithOwner, error) {
	query := catWithOwnerSelect + ` WHERE c.id = $1`
	var cat models.CatWithOwner

	if err := r.db.GetContext(ctx, &cat, query, id); err != nil {
		return nil, r.wrapRowError("получение", id, err)
	}

	log.Printf("[CatRepo] Найден кот ID %d (владелец '%s')", cat.ID, cat.UserName)
	return &cat, nil
}

// wrapRowError превращает sql.ErrNoRows в ErrCatNotFound, остальные ошибки оборачивает.
func (r *postgresCatRepository) wrapRowError(op string, id int64, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		log.Printf("[CatRepo] %s: кот ID %d не найден", op, id)
		return ErrCatNotFound
	}
	log.Printf("[CatRepo] %s: ошибка для кота ID %d: %v", op, id, err)
	return fmt.Errorf("ошибка выполнения запроса (%s кота): %w", op, err)
}
