// Команда catsdb создает таблицы Famous Cats и загружает начальные данные.
//
// Примеры:
//
//	catsdb setup-db --database-url postgres://localhost/famous_cats
//	DATABASE_URL=postgres://... catsdb recreate-tables
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		log.Printf("Ошибка: %v", err)
		os.Exit(1)
	}
}
