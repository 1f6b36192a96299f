package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/models"
	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/validator"
	legacy "github.com/Jamolkhon5/blackrock-ai/internal/models"
)

const (
	untitled    = "Untitled"
	serviceName = "ai"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, legacy.HealthResponse{OK: true, Service: serviceName})
}

// Plan возвращает статический план. Из запроса используется только title.
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Ошибка чтения тела запроса: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req, errs := validator.ValidatePlanRequest(body)
	if len(errs) > 0 {
		WriteJSON(w, http.StatusUnprocessableEntity, models.ValidationErrorResponse{Detail: errs})
		return
	}

	WriteJSON(w, http.StatusOK, LegacyPlan(req.Title))
}

// LegacyPlan строит статический ответ /plan
func LegacyPlan(title string) legacy.PlanResponse {
	if title == "" {
		title = untitled
	}

	return legacy.PlanResponse{
		Plan: legacy.LegacyPlan{
			Workstreams: []legacy.Workstream{
				{Name: "Industrial Design", Milestones: []string{"Concept", "CMF", "DFM"}},
				{Name: "Engineering", Milestones: []string{"Architecture", "Prototype", "Validation"}},
			},
			Tasks: []legacy.Task{
				{Title: "Concept Sketches • " + title, OwnerRole: "ID", EstimateHours: 24},
			},
		},
		Budget: legacy.LegacyBudget{
			Labor:              []legacy.LaborLine{{Role: "Industrial Designer", Hours: 120, Rate: 90, Subtotal: 10800}},
			NonLabor:           []legacy.NonLaborLine{{Category: "Prototype", Amount: 5000}},
			ContingencyPercent: 15,
			Total:              18170,
		},
		Roadmap: legacy.LegacyRoadmap{
			Milestones:   []legacy.LegacyMilestone{{Title: "Concept Freeze", Start: "2025-09-01", End: "2025-09-15", OwnerUserID: ""}},
			CriticalPath: []string{"Concept Freeze", "Prototype Build", "User Test"},
		},
		Success: legacy.Success{Score: 70},
	}
}

// RegisterRoutes регистрирует служебные и устаревшие маршруты
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Post("/plan", h.Plan)
}
