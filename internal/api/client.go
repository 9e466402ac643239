// Package api содержит HTTP-клиент Famous Cats API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/maynagashev/famouscats/internal/models"
)

// Error - ответ сервера со статусом, отличным от 200.
type Error struct {
	StatusCode int
	Message    string // Поле error из тела ответа, если сервер его прислал
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ошибка сервера: статус %d", e.StatusCode)
	}
	return fmt.Sprintf("ошибка сервера: статус %d: %s", e.StatusCode, e.Message)
}

// Client определяет интерфейс для взаимодействия с Famous Cats API.
// Методы, возвращающие указатель, отдают nil, если кот не найден.
type Client interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.SignupResponse, error)
	CreateCat(ctx context.Context, req models.CatRequest) (*models.Cat, error)
	UpdateCat(ctx context.Context, id int64, req models.CatRequest) (*models.Cat, error)
	DeleteCat(ctx context.Context, id int64) (*models.Cat, error)
	ListCats(ctx context.Context, nameFilter string) ([]models.CatWithOwner, error)
	GetCat(ctx context.Context, id int64) (*models.CatWithOwner, error)
	// UploadCatImage загружает изображение кота (доступно, если на сервере настроен MinIO).
	UploadCatImage(ctx context.Context, id int64, data io.Reader, size int64, contentType string) (*models.Cat, error)
}

// httpClient реализует Client поверх net/http.
type httpClient struct {
	baseURL    string // Например, "http://localhost:7890"
	httpClient *http.Client
}

// NewHTTPClient создает новый экземпляр API клиента.
// Если hc равен nil, используется http.DefaultClient.
func NewHTTPClient(baseURL string, hc *http.Client) Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &httpClient{baseURL: baseURL, httpClient: hc}
}

func (c *httpClient) Signup(ctx context.Context, req models.SignupRequest) (*models.SignupResponse, error) {
	var resp *models.SignupResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("ошибка регистрации: %w", err)
	}
	return resp, nil
}

func (c *httpClient) CreateCat(ctx context.Context, req models.CatRequest) (*models.Cat, error) {
	var cat *models.Cat
	if err := c.doJSON(ctx, http.MethodPost, "/api/cats", nil, req, &cat); err != nil {
		return nil, fmt.Errorf("ошибка создания кота: %w", err)
	}
	return cat, nil
}

func (c *httpClient) UpdateCat(ctx context.Context, id int64, req models.CatRequest) (*models.Cat, error) {
	var cat *models.Cat
	if err := c.doJSON(ctx, http.MethodPut, catPath(id), nil, req, &cat); err != nil {
		return nil, fmt.Errorf("ошибка обновления кота %d: %w", id, err)
	}
	return cat, nil
}

func (c *httpClient) DeleteCat(ctx context.Context, id int64) (*models.Cat, error) {
	var cat *models.Cat
	if err := c.doJSON(ctx, http.MethodDelete, catPath(id), nil, nil, &cat); err != nil {
		return nil, fmt.Errorf("ошибка удаления кота %d: %w", id, err)
	}
	return cat, nil
}

func (c *httpClient) ListCats(ctx context.Context, nameFilter string) ([]models.CatWithOwner, error) {
	var query url.Values
	if nameFilter != "" {
		query = url.Values{"name": {nameFilter}}
	}
	cats := []models.CatWithOwner{}
	if err := c.doJSON(ctx, http.MethodGet, "/api/cats", query, nil, &cats); err != nil {
		return nil, fmt.Errorf("ошибка получения списка котов: %w", err)
	}
	return cats, nil
}

func (c *httpClient) GetCat(ctx context.Context, id int64) (*models.CatWithOwner, error) {
	var cat *models.CatWithOwner
	if err := c.doJSON(ctx, http.MethodGet, catPath(id), nil, nil, &cat); err != nil {
		return nil, fmt.Errorf("ошибка получения кота %d: %w", id, err)
	}
	return cat, nil
}

func (c *httpClient) UploadCatImage(
	ctx context.Context, id int64, data io.Reader, size int64, contentType string,
) (*models.Cat, error) {
	req, err := c.newRequest(ctx, http.MethodPut, catPath(id)+"/image", nil, data)
	if err != nil {
		return nil, err
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", contentType)

	var cat *models.Cat
	if err = c.send(req, &cat); err != nil {
		return nil, fmt.Errorf("ошибка загрузки изображения кота %d: %w", id, err)
	}
	return cat, nil
}

func catPath(id int64) string {
	return "/api/cats/" + strconv.FormatInt(id, 10)
}

// doJSON отправляет body в формате JSON (если он не nil) и декодирует ответ в out.
func (c *httpClient) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ошибка кодирования запроса: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *httpClient) newRequest(
	ctx context.Context, method, path string, query url.Values, body io.Reader,
) (*http.Request, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования URL: %w", err)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// send выполняет запрос; при статусе, отличном от 200, возвращает *Error.
func (c *httpClient) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var errResp models.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&errResp) == nil {
			apiErr.Message = errResp.Error
		}
		return apiErr
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ошибка декодирования ответа: %w", err)
	}
	return nil
}
