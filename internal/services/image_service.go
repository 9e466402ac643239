package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/maynagashev/famouscats/internal/models"
	"github.com/maynagashev/famouscats/internal/repository"
	"github.com/maynagashev/famouscats/internal/storage"
)

// Префикс ключей изображений котов в бакете. Совпадает с форматом url у начальных данных.
const imageKeyPrefix = "cats/"

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpeg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageService управляет изображениями котов в объектном хранилище.
type ImageService interface {
	UploadCatImage(ctx context.Context, catID int64, r io.Reader, size int64, contentType string) (*models.Cat, error)
	OpenImage(ctx context.Context, objectKey string) (io.ReadCloser, *storage.ObjectInfo, error)
}

var _ ImageService = (*imageService)(nil)

type imageService struct {
	catRepo repository.CatRepository
	files   storage.FileStorage
}

// NewImageService создает сервис изображений.
func NewImageService(catRepo repository.CatRepository, files storage.FileStorage) ImageService {
	return &imageService{catRepo: catRepo, files: files}
}

// UploadCatImage сохраняет изображение и записывает его ключ в url кота.
// Возвращает (nil, nil), если кота нет.
func (s *imageService) UploadCatImage(
	ctx context.Context,
	catID int64,
	r io.Reader,
	size int64,
	contentType string,
) (*models.Cat, error) {
	if _, err := s.catRepo.GetCatByID(ctx, catID); err != nil {
		if errors.Is(err, repository.ErrCatNotFound) {
			return nil, nil
		}
		return nil, err
	}

	objectKey := imageKeyPrefix + uuid.NewString() + imageExtensions[contentType]
	if err := s.files.UploadFile(ctx, objectKey, r, size, contentType); err != nil {
		return nil, err
	}

	cat, err := s.catRepo.UpdateCatURL(ctx, catID, objectKey)
	if err != nil {
		// Кот мог быть удален между проверкой и обновлением: файл больше никому не нужен
		if delErr := s.files.DeleteFile(ctx, objectKey); delErr != nil {
			log.Printf("[ImageService] Не удалось удалить осиротевший файл '%s': %v", objectKey, delErr)
		}
		if errors.Is(err, repository.ErrCatNotFound) {
			return nil, nil
		}
		return nil, err
	}

	log.Printf("[ImageService] Изображение '%s' привязано к коту ID %d", objectKey, catID)
	return cat, nil
}

// OpenImage открывает сохраненное изображение на чтение.
func (s *imageService) OpenImage(ctx context.Context, objectKey string) (io.ReadCloser, *storage.ObjectInfo, error) {
	clean := path.Clean("/" + objectKey)[1:]
	if clean != objectKey || !strings.HasPrefix(clean, imageKeyPrefix) {
		return nil, nil, ErrImageNotFound
	}

	rc, info, err := s.files.DownloadFile(ctx, clean)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, ErrImageNotFound
		}
		return nil, nil, fmt.Errorf("ошибка чтения изображения '%s': %w", objectKey, err)
	}
	return rc, info, nil
}

// IsImageContentType сообщает, можно ли сохранить файл с таким Content-Type.
func IsImageContentType(contentType string) bool {
	_, ok := imageExtensions[contentType]
	return ok
}
