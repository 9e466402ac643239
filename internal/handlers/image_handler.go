package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/maynagashev/famouscats/internal/services"
)

// ImageHandler обрабатывает загрузку и отдачу изображений котов.
type ImageHandler struct {
	service services.ImageService
}

// NewImageHandler создает новый экземпляр ImageHandler.
func NewImageHandler(s services.ImageService) *ImageHandler {
	return &ImageHandler{service: s}
}

// Upload обрабатывает PUT /api/cats/{id}/image. Тело запроса - байты изображения.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, err := catIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if r.ContentLength <= 0 {
		writeError(w, http.StatusBadRequest, errors.New("неверный или отсутствующий заголовок Content-Length"))
		return
	}

	contentType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !services.IsImageContentType(contentType) {
		writeError(w, http.StatusBadRequest,
			fmt.Errorf("неподдерживаемый Content-Type: %q", r.Header.Get("Content-Type")))
		return
	}

	cat, err := h.service.UploadCatImage(r.Context(), id, r.Body, r.ContentLength, contentType)
	if err != nil {
		log.Printf("[ImageHandler:Upload] Ошибка загрузки изображения для кота ID %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, cat)
}

// Download обрабатывает GET /api/images/*.
func (h *ImageHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")

	body, info, err := h.service.OpenImage(r.Context(), key)
	if err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		log.Printf("[ImageHandler:Download] Ошибка чтения изображения '%s': %v", key, err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer func() {
		if closeErr := body.Close(); closeErr != nil {
			log.Printf("[ImageHandler:Download] Ошибка закрытия объекта '%s': %v", key, closeErr)
		}
	}()

	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, body); err != nil {
		log.Printf("[ImageHandler:Download] Ошибка отправки '%s': %v", key, err)
	}
}
