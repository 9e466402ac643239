package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maynagashev/famouscats/internal/api"
	"github.com/maynagashev/famouscats/internal/models"
	"github.com/maynagashev/famouscats/internal/schema"
	"github.com/maynagashev/famouscats/internal/services"
)

// Интеграционные тесты работают с настоящей PostgreSQL из DATABASE_URL
// и пересоздают таблицы users и cats. Без DATABASE_URL тесты пропускаются.

func setupIntegration(t *testing.T) (*dependencies, api.Client) {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL не задан, интеграционный тест пропущен")
	}

	ctx := context.Background()
	deps, err := setupDependencies(ctx, &config{DatabaseURL: dsn, PasswordHasher: services.HasherPlain})
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.db.Close() })

	require.NoError(t, schema.Recreate(ctx, deps.db))

	srv := httptest.NewServer(setupRouter(deps, []string{"*"}))
	t.Cleanup(srv.Close)

	return deps, api.NewHTTPClient(srv.URL, srv.Client())
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, status, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
}

func TestAPICatsLifecycle(t *testing.T) {
	_, client := setupIntegration(t)
	ctx := context.Background()

	user, err := client.Signup(ctx, models.SignupRequest{Name: "Jim Davis", Email: "jim@famouscats.dev", Password: "lasagna"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Jim Davis", user.Name)

	t.Run("Повторная регистрация с тем же email", func(t *testing.T) {
		_, err := client.Signup(ctx, models.SignupRequest{Name: "Other", Email: "jim@famouscats.dev", Password: "x"})
		requireStatus(t, err, http.StatusInternalServerError)
	})

	felixReq := models.CatRequest{Name: "Felix", Type: "Tuxedo", URL: "cats/felix.png", Year: 1892, Lives: 3}
	felix, err := client.CreateCat(ctx, felixReq)
	require.NoError(t, err)
	require.NotNil(t, felix)
	assert.Positive(t, felix.ID)
	assert.Equal(t, "Felix", felix.Name)
	assert.Equal(t, int64(1), felix.UserID)

	felixReq.Name = "Felix the Cat"
	felixReq.Lives = 9
	felixReq.IsSidekick = true
	updated, err := client.UpdateCat(ctx, felix.ID, felixReq)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, felix.ID, updated.ID)
	assert.Equal(t, "Felix the Cat", updated.Name)
	assert.Equal(t, 9, updated.Lives)
	assert.True(t, updated.IsSidekick)
	assert.Equal(t, int64(1), updated.UserID)

	_, err = client.CreateCat(ctx, models.CatRequest{
		Name: "Duchess", Type: "Angora", URL: "cats/duchess.jpeg", Year: 1970, Lives: 9,
	})
	require.NoError(t, err)
	hobbs, err := client.CreateCat(ctx, models.CatRequest{
		Name: "Hobbs", Type: "Orange Tabby", URL: "cats/hobbs.jpeg", Year: 1985, Lives: 6, IsSidekick: true,
	})
	require.NoError(t, err)

	all, err := client.ListCats(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, c := range all {
		assert.Equal(t, "Jim Davis", c.UserName)
	}

	got, err := client.GetCat(ctx, hobbs.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Hobbs", got.Name)
	assert.Equal(t, "Jim Davis", got.UserName)

	deleted, err := client.DeleteCat(ctx, hobbs.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, hobbs.ID, deleted.ID)

	all, err = client.ListCats(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := client.ListCats(ctx, "duch")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Duchess", filtered[0].Name)

	t.Run("Повторное удаление возвращает null", func(t *testing.T) {
		again, err := client.DeleteCat(ctx, hobbs.ID)
		require.NoError(t, err)
		assert.Nil(t, again)
	})

	t.Run("Удаленный кот не находится", func(t *testing.T) {
		missing, err := client.GetCat(ctx, hobbs.ID)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Обновление несуществующего кота возвращает null", func(t *testing.T) {
		missing, err := client.UpdateCat(ctx, 100500, felixReq)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Несуществующий владелец", func(t *testing.T) {
		_, err := client.CreateCat(ctx, models.CatRequest{Name: "Ghost", UserID: 42})
		requireStatus(t, err, http.StatusInternalServerError)
	})

	t.Run("Пустой результат фильтра - массив, а не null", func(t *testing.T) {
		empty, err := client.ListCats(ctx, "zzz")
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})
}

func TestAPISeededCats(t *testing.T) {
	deps, client := setupIntegration(t)
	require.NoError(t, schema.Seed(context.Background(), deps.db, services.PlainHasher{}))

	all, err := client.ListCats(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, len(schema.Cats))
	for _, c := range all {
		assert.Positive(t, c.UserID)
		assert.NotEmpty(t, c.UserName)
	}
}
