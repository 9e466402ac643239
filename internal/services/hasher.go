package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Имена реализаций PasswordHasher для конфигурации.
const (
	HasherBcrypt = "bcrypt"
	HasherPlain  = "plain"
)

// PasswordHasher превращает пароль в значение для колонки password_hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// BcryptHasher хеширует пароли с помощью bcrypt.
type BcryptHasher struct {
	Cost int
}

// Hash возвращает bcrypt-хеш пароля.
func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("ошибка хеширования пароля: %w", err)
	}
	return string(hashed), nil
}

// PlainHasher сохраняет пароль как есть.
// Нужен только для совместимости со старыми данными, где в password_hash лежит открытый пароль.
type PlainHasher struct{}

// Hash возвращает пароль без изменений.
func (PlainHasher) Hash(password string) (string, error) {
	return password, nil
}

// NewPasswordHasher возвращает реализацию по имени из конфигурации.
func NewPasswordHasher(name string) (PasswordHasher, error) {
	switch name {
	case HasherBcrypt, "":
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	case HasherPlain:
		return PlainHasher{}, nil
	default:
		return nil, fmt.Errorf("неизвестный алгоритм хеширования паролей: %q", name)
	}
}
