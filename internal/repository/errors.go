package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL.
const (
	pgUniqueViolationCode     = "23505"
	pgForeignKeyViolationCode = "23503"
)

// Кастомные ошибки репозитория.
var (
	ErrEmailTaken    = errors.New("пользователь с таким email уже существует")
	ErrCatNotFound   = errors.New("кот не найден")
	ErrOwnerNotFound = errors.New("владелец кота не найден")
)

// pgErrorCode возвращает код ошибки PostgreSQL или пустую строку.
func pgErrorCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}
