package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/maynagashev/famouscats/internal/models"
	"github.com/maynagashev/famouscats/internal/repository"
)

// AuthService определяет интерфейс для сервиса регистрации.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.SignupResponse, error)
}

// Убедимся, что authService удовлетворяет интерфейсу AuthService.
var _ AuthService = (*authService)(nil)

type authService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
}

// NewAuthService создает новый экземпляр сервиса регистрации.
func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher) AuthService {
	return &authService{userRepo: userRepo, hasher: hasher}
}

// Signup сохраняет нового пользователя и возвращает его id, имя и email.
func (s *authService) Signup(ctx context.Context, req models.SignupRequest) (*models.SignupResponse, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Printf("[AuthService] Ошибка хеширования пароля для '%s': %v", req.Email, err)
		return nil, err
	}

	user, err := s.userRepo.CreateUser(ctx, &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			log.Printf("[AuthService] Попытка регистрации с занятым email: %s", req.Email)
			return nil, ErrEmailTaken
		}
		log.Printf("[AuthService] Ошибка репозитория при регистрации '%s': %v", req.Email, err)
		return nil, fmt.Errorf("ошибка регистрации пользователя: %w", err)
	}

	log.Printf("[AuthService] Пользователь '%s' зарегистрирован (ID: %d)", user.Email, user.ID)
	return &models.SignupResponse{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}
