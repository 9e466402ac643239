package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"

	"github.com/maynagashev/famouscats/internal/handlers"
	appmiddleware "github.com/maynagashev/famouscats/internal/middleware"
	"github.com/maynagashev/famouscats/internal/repository"
	"github.com/maynagashev/famouscats/internal/services"
	"github.com/maynagashev/famouscats/internal/storage"
)

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second

	heartbeatText = "Famous Cats API"
)

// Подменяются в тестах.
var (
	newPostgresDB  = repository.NewPostgresDB
	newFileStorage = func(ctx context.Context, cfg storage.MinioConfig) (storage.FileStorage, error) {
		return storage.NewMinioClient(ctx, cfg)
	}
)

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db           *sqlx.DB
	authHandler  *handlers.AuthHandler
	catHandler   *handlers.CatHandler
	imageHandler *handlers.ImageHandler // nil, если хранилище изображений не настроено
}

func main() {
	loadDotEnv(".env")
	if err := run(os.Args[1:]); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setupDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	defer func() {
		if closeErr := deps.db.Close(); closeErr != nil {
			log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
		}
	}()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      setupRouter(deps, cfg.CORSOrigins),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if cfg.useTLS() {
			log.Printf("Запуск HTTPS-сервера на порту %s...", cfg.Port)
			errCh <- server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
			return
		}
		log.Printf("Запуск HTTP-сервера на порту %s...", cfg.Port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ошибка запуска сервера: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Получен сигнал завершения, останавливаем сервер...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("ошибка остановки сервера: %w", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(ctx context.Context, cfg *config) (*dependencies, error) {
	hasher, err := services.NewPasswordHasher(cfg.PasswordHasher)
	if err != nil {
		return nil, err
	}
	if cfg.PasswordHasher == services.HasherPlain {
		log.Println("ВНИМАНИЕ: пароли сохраняются в открытом виде (PASSWORD_HASHER=plain)")
	}

	db, err := newPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}

	userRepo := repository.NewPostgresUserRepository(db)
	catRepo := repository.NewPostgresCatRepository(db)

	deps := &dependencies{
		db:          db,
		authHandler: handlers.NewAuthHandler(services.NewAuthService(userRepo, hasher)),
		catHandler:  handlers.NewCatHandler(services.NewCatService(catRepo)),
	}

	if cfg.Minio.Endpoint == "" {
		log.Println("MINIO_ENDPOINT не задан, загрузка изображений котов отключена")
		return deps, nil
	}

	files, err := newFileStorage(ctx, storage.MinioConfig{
		Endpoint:        cfg.Minio.Endpoint,
		AccessKeyID:     cfg.Minio.User,
		SecretAccessKey: cfg.Minio.Password,
		UseSSL:          cfg.Minio.UseSSL,
		BucketName:      cfg.Minio.Bucket,
	})
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Ошибка закрытия соединения с БД при ошибке MinIO: %v", closeErr)
		}
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}
	deps.imageHandler = handlers.NewImageHandler(services.NewImageService(catRepo, files))

	return deps, nil
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(deps *dependencies, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(appmiddleware.CORS(corsOrigins))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(heartbeatText))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", deps.authHandler.Signup)

		r.Route("/cats", func(r chi.Router) {
			r.Post("/", deps.catHandler.Create)
			r.Get("/", deps.catHandler.List)
			r.Get("/{id}", deps.catHandler.Get)
			r.Put("/{id}", deps.catHandler.Update)
			r.Delete("/{id}", deps.catHandler.Delete)
			if deps.imageHandler != nil {
				r.Put("/{id}/image", deps.imageHandler.Upload)
			}
		})

		if deps.imageHandler != nil {
			r.Get("/images/*", deps.imageHandler.Download)
		}
	})
	return r
}
