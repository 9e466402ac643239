package handlers

import (
	"log"
	"net/http"

	"github.com/maynagashev/famouscats/internal/models"
	"github.com/maynagashev/famouscats/internal/services"
)

// CatHandler обрабатывает CRUD-запросы к /api/cats.
// Все успешные ответы имеют статус 200; отсутствующий кот отдается как null.
type CatHandler struct {
	service services.CatService
}

// NewCatHandler создает новый экземпляр CatHandler.
func NewCatHandler(s services.CatService) *CatHandler {
	return &CatHandler{service: s}
}

// Create обрабатывает POST /api/cats.
func (h *CatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CatRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Printf("[CatHandler:Create] %v", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cat, err := h.service.CreateCat(r.Context(), req)
	if err != nil {
		log.Printf("[CatHandler:Create] Ошибка создания кота '%s': %v", req.Name, err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, cat)
}

// Update обрабатывает PUT /api/cats/{id}.
func (h *CatHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := catIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var req models.CatRequest
	if err = decodeJSON(r, &req); err != nil {
		log.Printf("[CatHandler:Update] %v", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cat, err := h.service.UpdateCat(r.Context(), id, req)
	if err != nil {
		log.Printf("[CatHandler:Update] Ошибка обновления кота ID %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, cat)
}

// Delete обрабатывает DELETE /api/cats/{id}.
func (h *CatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := catIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cat, err := h.service.DeleteCat(r.Context(), id)
	if err != nil {
		log.Printf("[CatHandler:Delete] Ошибка удаления кота ID %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, cat)
}

// List обрабатывает GET /api/cats с необязательным ?name=.
func (h *CatHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.service.ListCats(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		log.Printf("[CatHandler:List] Ошибка получения списка котов: %v", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, cats)
}

// Get обрабатывает GET /api/cats/{id}.
func (h *CatHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := catIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cat, err := h.service.GetCat(r.Context(), id)
	if err != nil {
		log.Printf("[CatHandler:Get] Ошибка получения кота ID %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, cat)
}
