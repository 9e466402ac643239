package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

const corsMaxAge = 300 // Время кеширования preflight-ответа браузером, в секундах

// CORS разрешает кросс-доменные запросы с указанных источников.
// Пустой список или "*" разрешает любой источник.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length"},
		MaxAge:         corsMaxAge,
	})
}
