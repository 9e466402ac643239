package services

import "errors"

// Кастомные ошибки сервисов.
var (
	ErrEmailTaken    = errors.New("пользователь с таким email уже существует")
	ErrOwnerNotFound = errors.New("владелец кота не найден")
	ErrImageNotFound = errors.New("изображение не найдено")
)
