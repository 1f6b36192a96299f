package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/models"
	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/service"
	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/validator"
	common "github.com/Jamolkhon5/blackrock-ai/internal/handler"
)

type ProjectEstimateHandler struct {
	estimator *service.Estimator
}

func NewProjectEstimateHandler(estimator *service.Estimator) *ProjectEstimateHandler {
	return &ProjectEstimateHandler{
		estimator: estimator,
	}
}

// Generate возвращает план, бюджет, дорожную карту и оценку успеха
func (h *ProjectEstimateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	common.WriteJSON(w, http.StatusOK, h.estimator.Generate(req))
}

// Explain возвращает только оценку успеха с объяснением
func (h *ProjectEstimateHandler) Explain(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	common.WriteJSON(w, http.StatusOK, h.estimator.Explain(req))
}

func (h *ProjectEstimateHandler) decode(w http.ResponseWriter, r *http.Request) (models.GenerateRequest, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Ошибка чтения тела запроса: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return models.GenerateRequest{}, false
	}

	req, errs := validator.ValidateGenerateRequest(body)
	if len(errs) > 0 {
		common.WriteJSON(w, http.StatusUnprocessableEntity, models.ValidationErrorResponse{Detail: errs})
		return models.GenerateRequest{}, false
	}
	return req, true
}

// RegisterRoutes регистрирует маршруты оценки проекта
func (h *ProjectEstimateHandler) RegisterRoutes(r chi.Router) {
	r.Post("/v1/generate", h.Generate)
	r.Post("/v1/explain", h.Explain)
}
