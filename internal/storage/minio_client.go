package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const minioNoSuchKey = "NoSuchKey"

// FileStorage определяет интерфейс для работы с объектным хранилищем изображений.
type FileStorage interface {
	UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	DownloadFile(ctx context.Context, objectKey string) (io.ReadCloser, *ObjectInfo, error)
	DeleteFile(ctx context.Context, objectKey string) error
}

// ObjectInfo - метаданные объекта, нужные для отдачи его по HTTP.
type ObjectInfo struct {
	Size        int64
	ContentType string
}

// MinioConfig содержит параметры для подключения к MinIO.
type MinioConfig struct {
	Endpoint        string // Адрес MinIO (например, "localhost:9000")
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	BucketName      string
	Region          string
}

// MinioClient реализует FileStorage для MinIO.
type MinioClient struct {
	client     *minio.Client
	bucketName string
}

// NewMinioClient создает клиент MinIO и при необходимости создает бакет.
func NewMinioClient(ctx context.Context, cfg MinioConfig) (*MinioClient, error) {
	log.Printf("[Minio] Инициализация клиента для эндпоинта %s...", cfg.Endpoint)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки существования бакета '%s': %w", cfg.BucketName, err)
	}
	if !exists {
		log.Printf("[Minio] Бакет '%s' не найден, создаем...", cfg.BucketName)
		if err = client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("ошибка создания бакета '%s': %w", cfg.BucketName, err)
		}
	}

	log.Printf("[Minio] Клиент инициализирован для бакета '%s'", cfg.BucketName)
	return &MinioClient{client: client, bucketName: cfg.BucketName}, nil
}

// UploadFile загружает объект в бакет.
func (c *MinioClient) UploadFile(
	ctx context.Context,
	objectKey string,
	reader io.Reader,
	size int64,
	contentType string,
) error {
	info, err := c.client.PutObject(ctx, c.bucketName, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		log.Printf("[Minio] Ошибка загрузки '%s': %v", objectKey, err)
		return fmt.Errorf("ошибка загрузки файла в MinIO: %w", err)
	}

	log.Printf("[Minio] Файл '%s' загружен, размер: %d, ETag: %s", objectKey, info.Size, info.ETag)
	return nil
}

// DownloadFile открывает объект на чтение. Возвращенный io.ReadCloser нужно закрыть.
func (c *MinioClient) DownloadFile(ctx context.Context, objectKey string) (io.ReadCloser, *ObjectInfo, error) {
	object, err := c.client.GetObject(ctx, c.bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, c.wrapError(objectKey, err)
	}

	// GetObject ленивый: об отсутствии ключа становится известно только при Stat или чтении
	stat, err := object.Stat()
	if err != nil {
		_ = object.Close()
		return nil, nil, c.wrapError(objectKey, err)
	}

	return object, &ObjectInfo{Size: stat.Size, ContentType: stat.ContentType}, nil
}

// DeleteFile удаляет объект. Удаление несуществующего ключа ошибкой не считается.
func (c *MinioClient) DeleteFile(ctx context.Context, objectKey string) error {
	if err := c.client.RemoveObject(ctx, c.bucketName, objectKey, minio.RemoveObjectOptions{}); err != nil {
		log.Printf("[Minio] Ошибка удаления '%s': %v", objectKey, err)
		return fmt.Errorf("ошибка удаления файла из MinIO: %w", err)
	}
	log.Printf("[Minio] Файл '%s' удален", objectKey)
	return nil
}

func (c *MinioClient) wrapError(objectKey string, err error) error {
	if minio.ToErrorResponse(err).Code == minioNoSuchKey {
		log.Printf("[Minio] Файл '%s' не найден в бакете '%s'", objectKey, c.bucketName)
		return ErrObjectNotFound
	}
	log.Printf("[Minio] Ошибка получения '%s': %v", objectKey, err)
	return fmt.Errorf("ошибка получения файла из MinIO: %w", err)
}

// ErrObjectNotFound возвращается, если объекта с таким ключом нет.
var ErrObjectNotFound = errors.New("объект не найден в хранилище")
