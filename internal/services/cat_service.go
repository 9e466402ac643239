package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/maynagashev/famouscats/internal/models"
	"github.com/maynagashev/famouscats/internal/repository"
)

// DefaultOwnerID - владелец, которому достается кот, созданный без userId.
const DefaultOwnerID int64 = 1

// CatService определяет интерфейс для работы с котами.
// Методы, работающие с одним котом, возвращают (nil, nil), если кота нет.
type CatService interface {
	CreateCat(ctx context.Context, req models.CatRequest) (*models.Cat, error)
	UpdateCat(ctx context.Context, id int64, req models.CatRequest) (*models.Cat, error)
	DeleteCat(ctx context.Context, id int64) (*models.Cat, error)
	ListCats(ctx context.Context, nameFilter string) ([]models.CatWithOwner, error)
	GetCat(ctx context.Context, id int64) (*models.CatWithOwner, error)
}

var _ CatService = (*catService)(nil)

type catService struct {
	catRepo repository.CatRepository
}

// NewCatService создает новый экземпляр сервиса котов.
func NewCatService(catRepo repository.CatRepository) CatService {
	return &catService{catRepo: catRepo}
}

// CreateCat создает кота. Если userId не передан, владельцем становится DefaultOwnerID.
func (s *catService) CreateCat(ctx context.Context, req models.CatRequest) (*models.Cat, error) {
	ownerID := req.UserID
	if ownerID <= 0 {
		ownerID = DefaultOwnerID
	}

	cat := catFromRequest(req)
	cat.UserID = ownerID

	created, err := s.catRepo.CreateCat(ctx, cat)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrOwnerNotFound, ownerID)
		}
		log.Printf("[CatService] Ошибка создания кота '%s': %v", req.Name, err)
		return nil, err
	}
	return created, nil
}

// UpdateCat перезаписывает поля кота. userId из запроса игнорируется.
func (s *catService) UpdateCat(ctx context.Context, id int64, req models.CatRequest) (*models.Cat, error) {
	cat := catFromRequest(req)
	cat.ID = id

	updated, err := s.catRepo.UpdateCat(ctx, cat)
	if errors.Is(err, repository.ErrCatNotFound) {
		log.Printf("[CatService] Обновление: кот ID %d не найден", id)
		return nil, nil
	}
	if err != nil {
		log.Printf("[CatService] Ошибка обновления кота ID %d: %v", id, err)
		return nil, err
	}
	return updated, nil
}

// DeleteCat удаляет кота и возвращает удаленную запись.
func (s *catService) DeleteCat(ctx context.Context, id int64) (*models.Cat, error) {
	deleted, err := s.catRepo.DeleteCat(ctx, id)
	if errors.Is(err, repository.ErrCatNotFound) {
		log.Printf("[CatService] Удаление: кот ID %d не найден", id)
		return nil, nil
	}
	if err != nil {
		log.Printf("[CatService] Ошибка удаления кота ID %d: %v", id, err)
		return nil, err
	}
	return deleted, nil
}

// ListCats возвращает котов с именами владельцев, при необходимости фильтруя по имени.
func (s *catService) ListCats(ctx context.Context, nameFilter string) ([]models.CatWithOwner, error) {
	cats, err := s.catRepo.ListCats(ctx, nameFilter)
	if err != nil {
		log.Printf("[CatService] Ошибка получения списка котов: %v", err)
		return nil, err
	}
	if cats == nil {
		cats = []models.CatWithOwner{}
	}
	return cats, nil
}

// GetCat возвращает кота с именем владельца.
func (s *catService) GetCat(ctx context.Context, id int64) (*models.CatWithOwner, error) {
	cat, err := s.catRepo.GetCatByID(ctx, id)
	if errors.Is(err, repository.ErrCatNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("[CatService] Ошибка получения кота ID %d: %v", id, err)
		return nil, err
	}
	return cat, nil
}

func catFromRequest(req models.CatRequest) *models.Cat {
	return &models.Cat{
		Name:       req.Name,
		Type:       req.Type,
		URL:        req.URL,
		Year:       req.Year,
		Lives:      req.Lives,
		IsSidekick: req.IsSidekick,
	}
}
