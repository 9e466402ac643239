package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// config хранит конфигурацию сервера.
// Значения берутся из переменных окружения, флаги командной строки имеют приоритет.
type config struct {
	Port           string      `env:"PORT" envDefault:"7890"`
	DatabaseURL    string      `env:"DATABASE_URL"`
	CertFile       string      `env:"TLS_CERT_FILE"`
	KeyFile        string      `env:"TLS_KEY_FILE"`
	PasswordHasher string      `env:"PASSWORD_HASHER" envDefault:"bcrypt"`
	CORSOrigins    []string    `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	Minio          minioConfig `envPrefix:"MINIO_"`
}

// minioConfig - параметры хранилища изображений. Пустой Endpoint отключает изображения.
type minioConfig struct {
	Endpoint string `env:"ENDPOINT"`
	User     string `env:"USER" envDefault:"minioadmin"`
	Password string `env:"PASSWORD" envDefault:"minioadmin"`
	Bucket   string `env:"BUCKET" envDefault:"famous-cats"`
	UseSSL   bool   `env:"USE_SSL"`
}

// useTLS сообщает, заданы ли сертификат и ключ.
func (c *config) useTLS() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

// loadDotEnv подгружает переменные из файла .env, если он есть.
// Уже установленные переменные окружения не перезаписываются.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("Ошибка чтения %s: %v", path, err)
		}
		return
	}
	log.Printf("Переменные окружения загружены из %s", path)
}

// parseFlags разбирает переменные окружения и флаги, возвращает config или ошибку.
func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора переменных окружения: %w", err)
	}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&cfg.Port, "port", cfg.Port, "Порт HTTP-сервера (env: PORT)")
	fs.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL,
		"Строка подключения к PostgreSQL (env: DATABASE_URL)")
	fs.StringVar(&cfg.CertFile, "cert-file", cfg.CertFile, "Путь к файлу TLS-сертификата (env: TLS_CERT_FILE)")
	fs.StringVar(&cfg.KeyFile, "key-file", cfg.KeyFile, "Путь к файлу TLS-ключа (env: TLS_KEY_FILE)")
	fs.StringVar(&cfg.PasswordHasher, "password-hasher", cfg.PasswordHasher,
		"Алгоритм хранения паролей: bcrypt или plain (env: PASSWORD_HASHER)")
	fs.StringVar(&cfg.Minio.Endpoint, "minio-endpoint", cfg.Minio.Endpoint,
		"Адрес MinIO для изображений котов, пусто - отключено (env: MINIO_ENDPOINT)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("ошибка разбора флагов: %w", err)
	}

	// Проверяем обязательные параметры
	if cfg.DatabaseURL == "" {
		return nil, errors.New("не указана строка подключения к БД (--database-url или DATABASE_URL)")
	}
	if (cfg.CertFile == "") != (cfg.KeyFile == "") {
		return nil, errors.New("для TLS нужно указать и сертификат (--cert-file), и ключ (--key-file)")
	}

	return cfg, nil
}
