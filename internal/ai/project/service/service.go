package service

import (
	"fmt"

	"github.com/Jamolkhon5/blackrock-ai/internal/ai/project/models"
)

var (
	planAssumptions = []string{"Lean iteration", "Milestone gates", "Vendor shortlists"}
	planTeam        = []string{"Product", "Design", "Engineering", "Ops"}
)

// Estimator строит план, бюджет, дорожную карту и оценку успеха проекта.
// Не хранит состояние между запросами и безопасен для параллельного использования.
type Estimator struct {
	classifier *DomainClassifier
}

func NewEstimator() *Estimator {
	return &Estimator{
		classifier: NewDomainClassifier(),
	}
}

// Normalize объединяет название и описание в один текст
func Normalize(title string, summary *string) string {
	s := ""
	if summary != nil {
		s = *summary
	}
	return fmt.Sprintf("%s. %s", title, s)
}

// BuildPlan формирует план работ по найденным категориям
func BuildPlan(domains []models.DomainTag) models.Plan {
	return models.Plan{
		Domains:     domains,
		Assumptions: append([]string(nil), planAssumptions...),
		Team:        append([]string(nil), planTeam...),
	}
}

// Generate выполняет полную оценку проекта
func (e *Estimator) Generate(req models.GenerateRequest) *models.GenerateResponse {
	text := Normalize(req.Title, req.Summary)

	domains := e.classifier.Detect(text)
	complexity := ComplexityFactor(text, domains)
	risk := RiskPenalty(text)

	score, explain := ScoreSuccess(domains, complexity, risk)

	return &models.GenerateResponse{
		Plan:         BuildPlan(domains),
		Budget:       EstimateBudget(domains, complexity),
		Roadmap:      BuildRoadmap(domains, complexity),
		SuccessScore: models.Float(score),
		Explain:      explain,
	}
}

// Explain возвращает только оценку успеха и ее объяснение
func (e *Estimator) Explain(req models.GenerateRequest) *models.ExplainResponse {
	text := Normalize(req.Title, req.Summary)

	domains := e.classifier.Detect(text)
	score, explain := ScoreSuccess(domains, ComplexityFactor(text, domains), RiskPenalty(text))

	return &models.ExplainResponse{
		SuccessScore: models.Float(score),
		Explain:      explain,
	}
}
