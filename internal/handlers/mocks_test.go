package handlers_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/maynagashev/famouscats/internal/models"
	"github.com/maynagashev/famouscats/internal/storage"
)

// --- Mock AuthService --- //

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.SignupResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SignupResponse), args.Error(1) //nolint:errcheck // Acceptable for mocks
}

// --- Mock CatService --- //

type MockCatService struct {
	mock.Mock
}

func (m *MockCatService) CreateCat(ctx context.Context, req models.CatRequest) (*models.Cat, error) {
	args := m.Called(ctx, req)
	return catArg(args.Get(0)), args.Error(1)
}

func (m *MockCatService) UpdateCat(ctx context.Context, id int64, req models.CatRequest) (*models.Cat, error) {
	args := m.Called(ctx, id, req)
	return catArg(args.Get(0)), args.Error(1)
}

func (m *MockCatService) DeleteCat(ctx context.Context, id int64) (*models.Cat, error) {
	args := m.Called(ctx, id)
	return catArg(args.Get(0)), args.Error(1)
}

func (m *MockCatService) ListCats(ctx context.Context, nameFilter string) ([]models.CatWithOwner, error) {
	args := m.Called(ctx, nameFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CatWithOwner), args.Error(1) //nolint:errcheck // Acceptable for mocks
}

func (m *MockCatService) GetCat(ctx context.Context, id int64) (*models.CatWithOwner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatWithOwner), args.Error(1) //nolint:errcheck // Acceptable for mocks
}

func catArg(v any) *models.Cat {
	if v == nil {
		return nil
	}
	return v.(*models.Cat) //nolint:errcheck // Acceptable for mocks
}

// --- Mock ImageService --- //

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) UploadCatImage(
	ctx context.Context, catID int64, r io.Reader, size int64, contentType string,
) (*models.Cat, error) {
	args := m.Called(ctx, catID, r, size, contentType)
	// Вычитываем тело, как это сделал бы настоящий сервис
	_, _ = io.Copy(io.Discard, r)
	return catArg(args.Get(0)), args.Error(1)
}

func (m *MockImageService) OpenImage(ctx context.Context, objectKey string) (io.ReadCloser, *storage.ObjectInfo, error) {
	args := m.Called(ctx, objectKey)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*storage.ObjectInfo), args.Error(2) //nolint:errcheck // mocks
}
