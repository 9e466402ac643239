package models

// Cat представляет запись о коте.
// Тэги `db` совпадают с псевдонимами колонок в запросах репозитория.
type Cat struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Type       string `db:"type" json:"type"`              // Порода
	URL        string `db:"url" json:"url"`                // Путь к изображению
	Year       int    `db:"year" json:"year"`              // Год появления
	Lives      int    `db:"lives" json:"lives"`            // Оставшиеся жизни
	IsSidekick bool   `db:"is_sidekick" json:"isSidekick"` // Кот-помощник
	UserID     int64  `db:"user_id" json:"userId"`         // Владелец
}

// CatWithOwner - кот вместе с именем владельца (результат JOIN с users).
// Имя владельца нигде не хранится, оно вычисляется при запросе.
type CatWithOwner struct {
	Cat
	UserName string `db:"user_name" json:"userName"`
}

// CatRequest представляет тело запроса на создание или обновление кота.
type CatRequest struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	URL        string `json:"url"`
	Year       int    `json:"year"`
	Lives      int    `json:"lives"`
	IsSidekick bool   `json:"isSidekick"`
	// UserID учитывается только при создании. 0 означает "не указан".
	UserID int64 `json:"userId,omitempty"`
}
