package services_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/maynagashev/famouscats/internal/models"
	"github.com/maynagashev/famouscats/internal/storage"
)

// MockUserRepository - мок repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:errcheck // Acceptable for mocks
}

// MockCatRepository - мок repository.CatRepository.
type MockCatRepository struct {
	mock.Mock
}

func (m *MockCatRepository) CreateCat(ctx context.Context, cat *models.Cat) (*models.Cat, error) {
	args := m.Called(ctx, cat)
	return catOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCatRepository) UpdateCat(ctx context.Context, cat *models.Cat) (*models.Cat, error) {
	args := m.Called(ctx, cat)
	return catOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCatRepository) UpdateCatURL(ctx context.Context, id int64, url string) (*models.Cat, error) {
	args := m.Called(ctx, id, url)
	return catOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCatRepository) DeleteCat(ctx context.Context, id int64) (*models.Cat, error) {
	args := m.Called(ctx, id)
	return catOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCatRepository) ListCats(ctx context.Context, nameFilter string) ([]models.CatWithOwner, error) {
	args := m.Called(ctx, nameFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CatWithOwner), args.Error(1) //nolint:errcheck // Acceptable for mocks
}

func (m *MockCatRepository) GetCatByID(ctx context.Context, id int64) (*models.CatWithOwner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatWithOwner), args.Error(1) //nolint:errcheck // Acceptable for mocks
}

func catOrNil(v any) *models.Cat {
	if v == nil {
		return nil
	}
	return v.(*models.Cat) //nolint:errcheck // Acceptable for mocks
}

// MockFileStorage - мок storage.FileStorage.
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) UploadFile(
	ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string,
) error {
	args := m.Called(ctx, objectKey, reader, size, contentType)
	return args.Error(0)
}

func (m *MockFileStorage) DownloadFile(ctx context.Context, objectKey string) (io.ReadCloser, *storage.ObjectInfo, error) {
	args := m.Called(ctx, objectKey)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*storage.ObjectInfo), args.Error(2) //nolint:errcheck // mocks
}

func (m *MockFileStorage) DeleteFile(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}
